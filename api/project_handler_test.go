package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hazemessam/portfolio-backend/models"
)

type fakeProjectStore struct {
	projects  []models.Project
	findAllFn func() ([]models.Project, error)
	addFn     func(*models.Project) error
	updateFn  func(uuid.UUID, map[string]any) error
	deleteFn  func(uuid.UUID) error

	addCalls    int
	updateCalls int
	deleteCalls int
}

func (s *fakeProjectStore) FindAll() ([]models.Project, error) {
	if s.findAllFn != nil {
		return s.findAllFn()
	}
	return s.projects, nil
}

func (s *fakeProjectStore) Add(project *models.Project) error {
	s.addCalls++
	if s.addFn != nil {
		return s.addFn(project)
	}
	project.ID = uuid.New()
	s.projects = append([]models.Project{*project}, s.projects...)
	return nil
}

func (s *fakeProjectStore) Update(id uuid.UUID, fields map[string]any) error {
	s.updateCalls++
	if s.updateFn != nil {
		return s.updateFn(id, fields)
	}
	for i := range s.projects {
		if s.projects[i].ID == id {
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *fakeProjectStore) Delete(id uuid.UUID) error {
	s.deleteCalls++
	if s.deleteFn != nil {
		return s.deleteFn(id)
	}
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func TestListProjects(t *testing.T) {
	t.Run("returns all projects", func(t *testing.T) {
		store := &fakeProjectStore{projects: []models.Project{
			{ID: uuid.New(), Title: "Newer", Description: "d", CreatedAt: time.Now()},
			{ID: uuid.New(), Title: "Older", Description: "d", CreatedAt: time.Now().Add(-time.Hour)},
		}}
		handler := newProjectHandler(store)

		w := httptest.NewRecorder()
		handler.listProjects()(w, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var got []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "Newer", got[0]["title"])
		assert.NotEmpty(t, got[0]["id"])
	})

	t.Run("returns empty array when no projects exist", func(t *testing.T) {
		handler := newProjectHandler(&fakeProjectStore{})

		w := httptest.NewRecorder()
		handler.listProjects()(w, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("returns 500 when the store fails", func(t *testing.T) {
		store := &fakeProjectStore{findAllFn: func() ([]models.Project, error) {
			return nil, assert.AnError
		}}
		handler := newProjectHandler(store)

		w := httptest.NewRecorder()
		handler.listProjects()(w, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCreateProject(t *testing.T) {
	t.Run("creates a project with defaults", func(t *testing.T) {
		store := &fakeProjectStore{}
		handler := newProjectHandler(store)

		body := `{"title":"A","description":"B","codeUrl":"c"}`
		w := httptest.NewRecorder()
		handler.createProject()(w, httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, w.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.NotEmpty(t, got["id"])
		assert.Equal(t, "A", got["title"])
		assert.Equal(t, "c", got["codeUrl"])
		assert.Equal(t, []any{}, got["tags"])
		assert.NotEmpty(t, got["createdAt"])
		assert.Equal(t, 1, store.addCalls)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		store := &fakeProjectStore{}
		handler := newProjectHandler(store)

		body := `{"description":"B"}`
		w := httptest.NewRecorder()
		handler.createProject()(w, httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, store.addCalls)
	})

	t.Run("rejects missing description", func(t *testing.T) {
		store := &fakeProjectStore{}
		handler := newProjectHandler(store)

		body := `{"title":"A"}`
		w := httptest.NewRecorder()
		handler.createProject()(w, httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "description", got["field"])
		assert.Equal(t, 0, store.addCalls)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		handler := newProjectHandler(&fakeProjectStore{})

		w := httptest.NewRecorder()
		handler.createProject()(w, httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader("{nope")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateProject(t *testing.T) {
	t.Run("rejects missing id", func(t *testing.T) {
		store := &fakeProjectStore{}
		handler := newProjectHandler(store)

		w := httptest.NewRecorder()
		handler.updateProject()(w, httptest.NewRequest(http.MethodPut, "/api/projects", strings.NewReader(`{"title":"T"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, store.updateCalls)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		store := &fakeProjectStore{}
		handler := newProjectHandler(store)

		w := httptest.NewRecorder()
		handler.updateProject()(w, httptest.NewRequest(http.MethodPut, "/api/projects", strings.NewReader(`{"id":"not-a-valid-id"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, store.updateCalls)
	})

	t.Run("returns 404 for an unknown id", func(t *testing.T) {
		store := &fakeProjectStore{}
		handler := newProjectHandler(store)

		body := `{"id":"` + uuid.NewString() + `","title":"T"}`
		w := httptest.NewRecorder()
		handler.updateProject()(w, httptest.NewRequest(http.MethodPut, "/api/projects", strings.NewReader(body)))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("updates only the provided fields", func(t *testing.T) {
		id := uuid.New()
		var gotFields map[string]any
		store := &fakeProjectStore{updateFn: func(gotID uuid.UUID, fields map[string]any) error {
			assert.Equal(t, id, gotID)
			gotFields = fields
			return nil
		}}
		handler := newProjectHandler(store)

		body := `{"id":"` + id.String() + `","title":"New title","tags":["go","chi"]}`
		w := httptest.NewRecorder()
		handler.updateProject()(w, httptest.NewRequest(http.MethodPut, "/api/projects", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, true, got["success"])
		assert.Equal(t, id.String(), got["id"])

		assert.Contains(t, gotFields, "title")
		assert.Contains(t, gotFields, "tags")
		assert.NotContains(t, gotFields, "description")
		assert.NotContains(t, gotFields, "code_url")
	})
}

func TestDeleteProject(t *testing.T) {
	t.Run("rejects missing id", func(t *testing.T) {
		store := &fakeProjectStore{}
		handler := newProjectHandler(store)

		w := httptest.NewRecorder()
		handler.deleteProject()(w, httptest.NewRequest(http.MethodDelete, "/api/projects", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, store.deleteCalls)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		store := &fakeProjectStore{}
		handler := newProjectHandler(store)

		w := httptest.NewRecorder()
		handler.deleteProject()(w, httptest.NewRequest(http.MethodDelete, "/api/projects?id=not-a-valid-id", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, store.deleteCalls)
	})

	t.Run("returns 404 when nothing matched", func(t *testing.T) {
		handler := newProjectHandler(&fakeProjectStore{})

		w := httptest.NewRecorder()
		handler.deleteProject()(w, httptest.NewRequest(http.MethodDelete, "/api/projects?id="+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Exercises the create -> delete -> list round trip against one stateful store
func TestProjectLifecycle(t *testing.T) {
	store := &fakeProjectStore{}
	handler := newProjectHandler(store)

	// Create
	w := httptest.NewRecorder()
	body := `{"title":"A","description":"B","codeUrl":"c"}`
	handler.createProject()(w, httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id, ok := created["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)

	// Delete
	w = httptest.NewRecorder()
	handler.deleteProject()(w, httptest.NewRequest(http.MethodDelete, "/api/projects?id="+id, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	// List no longer contains the id
	w = httptest.NewRecorder()
	handler.listProjects()(w, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	for _, p := range listed {
		assert.NotEqual(t, id, p["id"])
	}
}
