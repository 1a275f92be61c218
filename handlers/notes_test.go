package handlers_test

import (
	"appsus/app"
	"appsus/config/setup"
	"appsus/database"
	"appsus/models"
	"appsus/services"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserEmail = "user@appsus.com"

// setupTestApp creates a temporary database and a Fiber app with every route registered
func setupTestApp(t *testing.T) (*fiber.App, *app.App) {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "Failed to initialize test database")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(), "Failed to run migrations")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application := app.New(database.NewRepository(db), services.Mailbox{Email: testUserEmail, Name: "Appsus User"}, logger)

	fiberApp := fiber.New(fiber.Config{ErrorHandler: setup.CustomErrorHandler(logger)})
	setup.RegisterRoutes(fiberApp, application)

	return fiberApp, application
}

func doRequest(t *testing.T, fiberApp *fiber.App, method, target string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := fiberApp.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	}

	return resp.StatusCode, result
}

func createNote(t *testing.T, fiberApp *fiber.App, noteType, title, txt string) map[string]interface{} {
	t.Helper()

	status, body := doRequest(t, fiberApp, http.MethodPost, "/api/notes", fiber.Map{"type": noteType, "title": title, "txt": txt})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	return body["note"].(map[string]interface{})
}

func TestCreateNote(t *testing.T) {
	tests := []struct {
		name           string
		body           fiber.Map
		expectedStatus int
		expectedError  string
		validateBody   func(t *testing.T, note map[string]interface{})
	}{
		{
			name:           "Text note",
			body:           fiber.Map{"type": "text", "title": "Hello", "txt": "World"},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, note map[string]interface{}) {
				info := note["info"].(map[string]interface{})
				assert.Equal(t, "World", info["txt"])
				assert.Equal(t, false, note["isPinned"])
			},
		},
		{
			name:           "Type defaults to text",
			body:           fiber.Map{"title": "Hello", "txt": "World"},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, note map[string]interface{}) {
				assert.Equal(t, "text", note["type"])
			},
		},
		{
			name:           "Video note",
			body:           fiber.Map{"type": "vid", "title": "Song", "txt": "https://youtu.be/8aGhZQkoFbQ"},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, note map[string]interface{}) {
				info := note["info"].(map[string]interface{})
				assert.Equal(t, "8aGhZQkoFbQ", info["url"])
			},
		},
		{
			name:           "Todos note",
			body:           fiber.Map{"type": "todos", "title": "List", "txt": "a,b"},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, note map[string]interface{}) {
				info := note["info"].(map[string]interface{})
				assert.Len(t, info["todos"], 2)
			},
		},
		{
			name:           "Missing title",
			body:           fiber.Map{"type": "text", "txt": "World"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Inputs are required.",
		},
		{
			name:           "Missing txt",
			body:           fiber.Map{"type": "text", "title": "Hello"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Inputs are required.",
		},
		{
			name:           "Unknown type",
			body:           fiber.Map{"type": "audio", "title": "Hello", "txt": "World"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "type must be one of: text, img, vid, todos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fiberApp, application := setupTestApp(t)

			status, body := doRequest(t, fiberApp, http.MethodPost, "/api/notes", tt.body)

			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])

				notes, err := application.Notes.Query(models.NoteFilter{})
				require.NoError(t, err)
				assert.Empty(t, notes, "rejected notes are not stored")
				return
			}

			note := body["note"].(map[string]interface{})
			assert.NotEmpty(t, note["id"])
			if tt.validateBody != nil {
				tt.validateBody(t, note)
			}
		})
	}
}

func TestGetNotes(t *testing.T) {
	fiberApp, _ := setupTestApp(t)

	createNote(t, fiberApp, "text", "Groceries", "milk")
	todos := createNote(t, fiberApp, "todos", "Weekend", "hike")

	status, body := doRequest(t, fiberApp, http.MethodGet, "/api/notes", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["notes"], 2)

	status, body = doRequest(t, fiberApp, http.MethodGet, "/api/notes?type=todos", nil)
	assert.Equal(t, http.StatusOK, status)
	notes := body["notes"].([]interface{})
	require.Len(t, notes, 1)
	assert.Equal(t, todos["id"], notes[0].(map[string]interface{})["id"])

	status, body = doRequest(t, fiberApp, http.MethodGet, "/api/notes?search=milk", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["notes"], 1)

	status, _ = doRequest(t, fiberApp, http.MethodGet, "/api/notes?type=audio", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetTemplateNote(t *testing.T) {
	fiberApp, _ := setupTestApp(t)

	status, body := doRequest(t, fiberApp, http.MethodGet, "/api/notes/template", nil)
	assert.Equal(t, http.StatusOK, status)
	note := body["note"].(map[string]interface{})
	assert.Equal(t, "text", note["type"])
}

func TestGetNote_NotFound(t *testing.T) {
	fiberApp, _ := setupTestApp(t)

	status, body := doRequest(t, fiberApp, http.MethodGet, "/api/notes/missing", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Note not found", body["error"])
}

func TestNoteLifecycle(t *testing.T) {
	fiberApp, _ := setupTestApp(t)
	note := createNote(t, fiberApp, "text", "Lifecycle", "start")
	id := note["id"].(string)

	status, body := doRequest(t, fiberApp, http.MethodPost, "/api/notes/"+id+"/pin", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["note"].(map[string]interface{})["isPinned"])

	status, body = doRequest(t, fiberApp, http.MethodPost, "/api/notes/"+id+"/pin", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["note"].(map[string]interface{})["isPinned"])

	status, body = doRequest(t, fiberApp, http.MethodPut, "/api/notes/"+id+"/color", fiber.Map{"color": "#ccff99"})
	require.Equal(t, http.StatusOK, status)
	style := body["note"].(map[string]interface{})["style"].(map[string]interface{})
	assert.Equal(t, "#ccff99", style["backgroundColor"])

	status, _ = doRequest(t, fiberApp, http.MethodPut, "/api/notes/"+id+"/color", fiber.Map{"color": "blue"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = doRequest(t, fiberApp, http.MethodPut, "/api/notes/"+id, fiber.Map{"type": "img", "title": "Now an image", "txt": "https://example.com/a.png"})
	require.Equal(t, http.StatusOK, status)
	info := body["note"].(map[string]interface{})["info"].(map[string]interface{})
	assert.Equal(t, "https://example.com/a.png", info["url"])
	assert.Nil(t, info["txt"])

	status, body = doRequest(t, fiberApp, http.MethodPost, "/api/notes/"+id+"/duplicate", nil)
	require.Equal(t, http.StatusCreated, status)
	assert.NotEqual(t, id, body["note"].(map[string]interface{})["id"])

	status, _ = doRequest(t, fiberApp, http.MethodDelete, "/api/notes/"+id, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doRequest(t, fiberApp, http.MethodDelete, "/api/notes/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestTodoRoutes(t *testing.T) {
	fiberApp, _ := setupTestApp(t)
	note := createNote(t, fiberApp, "todos", "List", "one, two")
	id := note["id"].(string)

	status, body := doRequest(t, fiberApp, http.MethodPost, "/api/notes/"+id+"/todos/1/toggle", nil)
	require.Equal(t, http.StatusOK, status)
	todos := body["note"].(map[string]interface{})["info"].(map[string]interface{})["todos"].([]interface{})
	second := todos[1].(map[string]interface{})
	assert.Equal(t, true, second["isDone"])
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, second["doneAt"])

	status, body = doRequest(t, fiberApp, http.MethodPost, "/api/notes/"+id+"/todos", fiber.Map{"txt": "three"})
	require.Equal(t, http.StatusOK, status)
	todos = body["note"].(map[string]interface{})["info"].(map[string]interface{})["todos"].([]interface{})
	assert.Len(t, todos, 3)

	status, body = doRequest(t, fiberApp, http.MethodDelete, "/api/notes/"+id+"/todos/0", nil)
	require.Equal(t, http.StatusOK, status)
	todos = body["note"].(map[string]interface{})["info"].(map[string]interface{})["todos"].([]interface{})
	assert.Len(t, todos, 2)

	status, _ = doRequest(t, fiberApp, http.MethodPost, "/api/notes/"+id+"/todos/9/toggle", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = doRequest(t, fiberApp, http.MethodPost, "/api/notes/"+id+"/todos/x/toggle", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "index must be a non-negative integer", body["error"])

	text := createNote(t, fiberApp, "text", "Plain", "text")
	status, body = doRequest(t, fiberApp, http.MethodPost, "/api/notes/"+text["id"].(string)+"/todos", fiber.Map{"txt": "nope"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Note is not a todo list", body["error"])
}

func TestNoteToMail(t *testing.T) {
	fiberApp, _ := setupTestApp(t)
	note := createNote(t, fiberApp, "vid", "Watch this", "https://www.youtube.com/watch?v=8aGhZQkoFbQ")
	id := note["id"].(string)

	status, body := doRequest(t, fiberApp, http.MethodGet, "/api/notes/"+id+"/mail-params", nil)
	require.Equal(t, http.StatusOK, status)
	params := body["params"].(map[string]interface{})
	assert.Equal(t, "Watch this", params["subject"])
	assert.Equal(t, "https://www.youtube.com/watch?v=8aGhZQkoFbQ", params["body"])

	status, body = doRequest(t, fiberApp, http.MethodGet, "/api/mails/compose?"+params["query"].(string), nil)
	require.Equal(t, http.StatusOK, status)
	draft := body["draft"].(map[string]interface{})
	assert.Equal(t, "Watch this", draft["subject"])
	assert.Equal(t, "https://www.youtube.com/watch?v=8aGhZQkoFbQ", draft["body"])

	status, body = doRequest(t, fiberApp, http.MethodPost, "/api/notes/"+id+"/send", nil)
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	mail := body["mail"].(map[string]interface{})
	assert.Equal(t, testUserEmail, mail["to"])
	assert.Equal(t, "Watch this", mail["subject"])

	status, _ = doRequest(t, fiberApp, http.MethodPost, "/api/notes/"+id+"/send", fiber.Map{"to": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestNoteToMail_LongTitle(t *testing.T) {
	fiberApp, _ := setupTestApp(t)
	title := strings.Repeat("x", 300)

	note := createNote(t, fiberApp, "text", title, "body")
	id := note["id"].(string)

	status, body := doRequest(t, fiberApp, http.MethodPost, "/api/notes/"+id+"/send", nil)
	require.Equal(t, http.StatusCreated, status, "body: %v", body)
	assert.Equal(t, title, body["mail"].(map[string]interface{})["subject"])

	status, _ = doRequest(t, fiberApp, http.MethodPut, "/api/notes/"+id, fiber.Map{"type": "text", "title": title, "txt": "edited"})
	assert.Equal(t, http.StatusOK, status)

	status, body = doRequest(t, fiberApp, http.MethodPost, "/api/notes", fiber.Map{"type": "text", "title": title + "x", "txt": "body"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, body["fields"])
}
