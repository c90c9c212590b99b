package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hazemessam/portfolio-backend/errs"
	"github.com/hazemessam/portfolio-backend/models"
)

// ProjectStore is the persistence surface the project resource needs
type ProjectStore interface {
	FindAll() ([]models.Project, error)
	Add(project *models.Project) error
	Update(id uuid.UUID, fields map[string]any) error
	Delete(id uuid.UUID) error
}

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  ProjectStore
}

func newProjectHandler(projects ProjectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

type createProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	DemoURL     *string  `json:"demoUrl"`
	CodeURL     string   `json:"codeUrl"`
	Image       *string  `json:"image"`
}

type updateProjectRequest struct {
	ID          string    `json:"id"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	DemoURL     *string   `json:"demoUrl"`
	CodeURL     *string   `json:"codeUrl"`
	Image       *string   `json:"image"`
}

// listProjects returns every project, most recently created first
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		if projects == nil {
			projects = []models.Project{}
		}

		h.responder.WriteJSON(w, projects)
	}
}

// createProject validates and persists a new project, echoing the stored
// record including its generated identifier and timestamps
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if req.Description == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("description"))
			return
		}

		tags := req.Tags
		if tags == nil {
			tags = []string{}
		}

		now := time.Now().UTC()
		project := models.Project{
			Title:       req.Title,
			Description: req.Description,
			Tags:        datatypes.NewJSONSlice(tags),
			DemoURL:     req.DemoURL,
			CodeURL:     req.CodeURL,
			Image:       req.Image,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := h.projects.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, project)
	}
}

// updateProject applies the provided fields to an existing project and
// refreshes its updated timestamp
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if req.ID == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("id"))
			return
		}

		projectID, err := uuid.Parse(req.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("id", "must be a valid project identifier"))
			return
		}

		fields := map[string]any{}
		if req.Title != nil {
			fields["title"] = *req.Title
		}
		if req.Description != nil {
			fields["description"] = *req.Description
		}
		if req.Tags != nil {
			fields["tags"] = datatypes.NewJSONSlice(*req.Tags)
		}
		if req.DemoURL != nil {
			fields["demo_url"] = *req.DemoURL
		}
		if req.CodeURL != nil {
			fields["code_url"] = *req.CodeURL
		}
		if req.Image != nil {
			fields["image"] = *req.Image
		}

		if err := h.projects.Update(projectID, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"id":      req.ID,
		})
	}
}

// deleteProject removes exactly one project by the id query parameter
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := r.URL.Query().Get("id")
		if idStr == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("id"))
			return
		}

		projectID, err := uuid.Parse(idStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("id", "must be a valid project identifier"))
			return
		}

		if err := h.projects.Delete(projectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
