package handlers

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/cofoundhq/cofound/internal/service"
	"github.com/cofoundhq/cofound/internal/storage"
	"github.com/cofoundhq/cofound/internal/transport/http/middleware"
	"github.com/cofoundhq/cofound/pkg/validator"
	"github.com/google/uuid"
)

const maxUploadSize = 10 << 20 // 10 MiB

type ProfileHandler struct {
	profileService *service.ProfileService
	fileStore      storage.FileStore
}

func NewProfileHandler(profileService *service.ProfileService, fileStore storage.FileStore) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, fileStore: fileStore}
}

// Create handles the one-time multipart profile form with two image uploads.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FORM", "Invalid multipart form")
		return
	}

	form := r.MultipartForm
	field := func(name string) string {
		if vals := form.Value[name]; len(vals) > 0 {
			return vals[0]
		}
		return ""
	}

	if errs := validator.ValidateProfile(
		field("username"), field("full_name"), field("bio"), field("experience"),
		field("skills"), field("education"), field("achievements"),
		field("designation"), field("company"), field("location"), field("website"),
	); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	profileImage, err := h.saveRequired(form, "profile_image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "MISSING_FILE", "Profile image is required")
		return
	}
	backgroundImage, err := h.saveRequired(form, "background_image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "MISSING_FILE", "Background image is required")
		return
	}

	var website *string
	if v := field("website"); v != "" {
		website = &v
	}

	input := service.CreateProfileInput{
		Username:        field("username"),
		FullName:        field("full_name"),
		Bio:             field("bio"),
		Experience:      field("experience"),
		Skills:          field("skills"),
		Education:       field("education"),
		Achievements:    field("achievements"),
		Designation:     field("designation"),
		Company:         field("company"),
		Location:        field("location"),
		Website:         website,
		ProfileImage:    profileImage,
		BackgroundImage: backgroundImage,
	}

	profile, err := h.profileService.CreateProfile(r.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileExists):
			writeError(w, http.StatusConflict, "ALREADY_EXISTS", "Profile already submitted")
		case errors.Is(err, service.ErrUsernameTaken):
			writeError(w, http.StatusConflict, "USERNAME_TAKEN", "Username is already taken")
		default:
			log.Printf("ERROR create profile: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

func (h *ProfileHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.profileService.GetOwnProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		} else {
			log.Printf("ERROR get own profile: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	profile, err := h.profileService.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		} else {
			log.Printf("ERROR get profile: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// CheckProfile reports whether a user completed the profile form.
func (h *ProfileHandler) CheckProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	exists, err := h.profileService.ProfileExists(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR check profile: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

func (h *ProfileHandler) saveRequired(form *multipart.Form, name string) (string, error) {
	files := form.File[name]
	if len(files) == 0 {
		return "", errors.New("missing file " + name)
	}
	src, err := files[0].Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return h.fileStore.Save(files[0].Filename, src)
}
