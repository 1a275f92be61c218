package database

import (
	"appsus/storage"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
)

// Repository is the SQLite implementation of storage.Provider.
type Repository struct {
	db *DB
}

var _ storage.Provider = (*Repository)(nil)

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Ping checks that the database is reachable
func (r *Repository) Ping() error {
	return r.db.Ping()
}

// Query returns all records of a collection in insertion order
func (r *Repository) Query(collection string) ([]storage.Record, error) {
	rows, err := r.db.Query(`
		SELECT id, data
		FROM entities
		WHERE collection = ?
		ORDER BY seq ASC
	`, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	records := make([]storage.Record, 0)
	for rows.Next() {
		var rec storage.Record
		var data string
		if err := rows.Scan(&rec.ID, &data); err != nil {
			return nil, err
		}
		rec.Data = []byte(data)
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *Repository) Get(collection, id string) (*storage.Record, error) {
	var rec storage.Record
	var data string

	err := r.db.QueryRow(`
		SELECT id, data
		FROM entities
		WHERE collection = ? AND id = ?
	`, collection, id).Scan(&rec.ID, &data)

	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rec.Data = []byte(data)
	return &rec, nil
}

func (r *Repository) Insert(collection string, rec storage.Record) error {
	if rec.ID == "" {
		return storage.ErrMissingID
	}

	now := time.Now()
	_, err := r.db.Exec(`
		INSERT INTO entities (collection, id, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, collection, rec.ID, string(rec.Data), now, now)

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%s/%s: %w", collection, rec.ID, storage.ErrDuplicateID)
	}
	return err
}

func (r *Repository) Update(collection string, rec storage.Record) error {
	result, err := r.db.Exec(`
		UPDATE entities SET
			data = ?,
			updated_at = ?
		WHERE collection = ? AND id = ?
	`, string(rec.Data), time.Now(), collection, rec.ID)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

func (r *Repository) Delete(collection, id string) error {
	result, err := r.db.Exec(`
		DELETE FROM entities
		WHERE collection = ? AND id = ?
	`, collection, id)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

func (r *Repository) Count(collection string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM entities WHERE collection = ?`, collection).Scan(&count)
	return count, err
}

func expectAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
