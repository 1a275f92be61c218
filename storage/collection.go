package storage

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Entity is implemented by every model kept in a Collection.
type Entity interface {
	EntityID() string
	SetEntityID(id string)
}

// Collection is a typed view over one collection of a Provider.
// Entities are stored as JSON documents.
type Collection[T any, PT interface {
	*T
	Entity
}] struct {
	provider Provider
	key      string
	newID    func() string
}

// NewCollection binds a collection key to a provider.
func NewCollection[T any, PT interface {
	*T
	Entity
}](provider Provider, key string) *Collection[T, PT] {
	return &Collection[T, PT]{
		provider: provider,
		key:      key,
		newID:    func() string { return uuid.New().String() },
	}
}

// Key returns the collection key.
func (c *Collection[T, PT]) Key() string {
	return c.key
}

// Query returns all entities of the collection.
func (c *Collection[T, PT]) Query() ([]T, error) {
	records, err := c.provider.Query(c.key)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", c.key, err)
	}

	entities := make([]T, 0, len(records))
	for _, rec := range records {
		var entity T
		if err := json.Unmarshal(rec.Data, &entity); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", c.key, rec.ID, err)
		}
		PT(&entity).SetEntityID(rec.ID)
		entities = append(entities, entity)
	}

	return entities, nil
}

// Get returns the entity with the given id.
func (c *Collection[T, PT]) Get(id string) (*T, error) {
	rec, err := c.provider.Get(c.key, id)
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", c.key, id, err)
	}

	var entity T
	if err := json.Unmarshal(rec.Data, &entity); err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", c.key, id, err)
	}
	PT(&entity).SetEntityID(rec.ID)

	return &entity, nil
}

// Post stores entity under a freshly generated id, overwriting any id it carried.
func (c *Collection[T, PT]) Post(entity *T) (*T, error) {
	PT(entity).SetEntityID(c.newID())

	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.key, err)
	}

	if err := c.provider.Insert(c.key, Record{ID: PT(entity).EntityID(), Data: data}); err != nil {
		return nil, fmt.Errorf("post %s: %w", c.key, err)
	}

	return entity, nil
}

// Put replaces a stored entity.
func (c *Collection[T, PT]) Put(entity *T) (*T, error) {
	id := PT(entity).EntityID()
	if id == "" {
		return nil, fmt.Errorf("put %s: %w", c.key, ErrMissingID)
	}

	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("encode %s/%s: %w", c.key, id, err)
	}

	if err := c.provider.Update(c.key, Record{ID: id, Data: data}); err != nil {
		return nil, fmt.Errorf("put %s/%s: %w", c.key, id, err)
	}

	return entity, nil
}

// Save puts entities that already have an id and posts the rest.
func (c *Collection[T, PT]) Save(entity *T) (*T, error) {
	if PT(entity).EntityID() != "" {
		return c.Put(entity)
	}
	return c.Post(entity)
}

// Remove deletes the entity with the given id.
func (c *Collection[T, PT]) Remove(id string) error {
	if err := c.provider.Delete(c.key, id); err != nil {
		return fmt.Errorf("remove %s/%s: %w", c.key, id, err)
	}
	return nil
}

// Count returns the number of stored entities.
func (c *Collection[T, PT]) Count() (int, error) {
	n, err := c.provider.Count(c.key)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.key, err)
	}
	return n, nil
}
