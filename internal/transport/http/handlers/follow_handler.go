package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/cofoundhq/cofound/internal/service"
	"github.com/cofoundhq/cofound/internal/transport/http/middleware"
)

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	username := r.PathValue("username")

	if err := h.followService.Follow(r.Context(), userID, username); err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, service.ErrCannotFollowSelf):
			writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "Cannot follow yourself")
		case errors.Is(err, service.ErrAlreadyFollowing):
			writeError(w, http.StatusConflict, "ALREADY_EXISTS", "Already following this user")
		default:
			log.Printf("ERROR follow: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User followed successfully"})
}

func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	username := r.PathValue("username")

	if err := h.followService.Unfollow(r.Context(), userID, username); err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, service.ErrNotFollowing):
			writeError(w, http.StatusConflict, "INVALID_STATE", "Not following this user")
		default:
			log.Printf("ERROR unfollow: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User unfollowed successfully"})
}

func (h *FollowHandler) FollowStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	username := r.PathValue("username")

	following, err := h.followService.FollowStatus(r.Context(), userID, username)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		} else {
			log.Printf("ERROR follow status: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"is_following": following})
}
