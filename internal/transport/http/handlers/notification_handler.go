package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/cofoundhq/cofound/internal/service"
	"github.com/cofoundhq/cofound/internal/transport/http/middleware"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notifService *service.NotificationService
}

func NewNotificationHandler(notifService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifService: notifService}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	ns, err := h.notifService.ListFor(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR list notifications: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, ns)
}

func (h *NotificationHandler) ApproveInterest(w http.ResponseWriter, r *http.Request) {
	h.approve(w, r, h.notifService.ApproveInterest)
}

func (h *NotificationHandler) ApproveInvitation(w http.ResponseWriter, r *http.Request) {
	h.approve(w, r, h.notifService.ApproveInvitation)
}

func (h *NotificationHandler) approve(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, actorID, notificationID uuid.UUID) error) {
	userID := middleware.GetUserID(r.Context())
	notificationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	if err := fn(r.Context(), userID, notificationID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotificationNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Notification not found")
		case errors.Is(err, service.ErrNotRecipient):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the recipient can act on this notification")
		case errors.Is(err, service.ErrWrongKind):
			writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "Notification kind does not allow this action")
		case errors.Is(err, service.ErrNotificationResolved):
			writeError(w, http.StatusConflict, "INVALID_STATE", "Notification already resolved")
		default:
			log.Printf("ERROR approve notification: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Approved"})
}
