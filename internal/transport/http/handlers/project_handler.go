package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/cofoundhq/cofound/internal/service"
	"github.com/cofoundhq/cofound/internal/storage"
	"github.com/cofoundhq/cofound/internal/transport/http/middleware"
	"github.com/cofoundhq/cofound/pkg/validator"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	projectService *service.ProjectService
	fileStore      storage.FileStore
}

func NewProjectHandler(projectService *service.ProjectService, fileStore storage.FileStore) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, fileStore: fileStore}
}

// Create handles the multipart pitch form with a post image and pitch deck.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FORM", "Invalid multipart form")
		return
	}

	concept := r.FormValue("concept")
	if errs := validator.ValidateProject(concept); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	// skill_set arrives as a JSON blob from the pitch form.
	var skillSet struct {
		Category    string   `json:"category"`
		Subcategory string   `json:"subcategory"`
		Skills      []string `json:"skills"`
	}
	if raw := r.FormValue("skill_set"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &skillSet); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid JSON format for skill_set")
			return
		}
	}

	postImage, err := h.saveUpload(r, "post_image")
	if err != nil {
		log.Printf("ERROR save post image: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}
	pitchDeck, err := h.saveUpload(r, "pitch_deck")
	if err != nil {
		log.Printf("ERROR save pitch deck: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	input := service.CreateProjectInput{
		Concept:          concept,
		Roles:            splitList(r.FormValue("roles")),
		Problem:          r.FormValue("problem"),
		Solution:         r.FormValue("solution"),
		StartupType:      r.FormValue("startup_type"),
		StartupStage:     r.FormValue("startup_stage"),
		Patent:           r.FormValue("patent"),
		EmploymentStatus: r.FormValue("employment_status"),
		SkillCategory:    skillSet.Category,
		SkillSubcategory: skillSet.Subcategory,
		Skills:           skillSet.Skills,
		PostImage:        postImage,
		PitchDeck:        pitchDeck,
	}

	project, err := h.projectService.CreateProject(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		} else {
			log.Printf("ERROR create project: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListProjects(r.Context())
	if err != nil {
		log.Printf("ERROR list projects: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid project ID")
		return
	}

	project, err := h.projectService.GetProject(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Project not found")
		} else {
			log.Printf("ERROR get project: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	projects, err := h.projectService.ListByOwner(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR list own projects: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) ExpressInterest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid project ID")
		return
	}

	if err := h.projectService.ExpressInterest(r.Context(), userID, projectID); err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Project not found")
		case errors.Is(err, service.ErrOwnProject):
			writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "Cannot register interest in your own project")
		case errors.Is(err, service.ErrAlreadyInterested):
			writeError(w, http.StatusConflict, "ALREADY_EXISTS", "Interest already registered")
		default:
			log.Printf("ERROR express interest: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Interest registered"})
}

func (h *ProjectHandler) Invite(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	projectID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid project ID")
		return
	}

	var input struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if input.Username == "" {
		writeError(w, http.StatusBadRequest, "MISSING_USERNAME", "Username is required")
		return
	}

	if err := h.projectService.Invite(r.Context(), userID, projectID, input.Username); err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Project not found")
		case errors.Is(err, service.ErrProfileNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, service.ErrNotProjectOwner):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the project owner can invite")
		default:
			log.Printf("ERROR invite: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Invitation sent"})
}

func (h *ProjectHandler) saveUpload(r *http.Request, name string) (string, error) {
	file, header, err := r.FormFile(name)
	if err != nil {
		// Optional upload
		return "", nil
	}
	defer file.Close()
	return h.fileStore.Save(header.Filename, file)
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
