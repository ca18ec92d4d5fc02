package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind tags what a notification is about. The set is open for
// extension but values are always one of the named constants; free-form
// strings are never persisted.
type NotificationKind string

const (
	KindFollow                 NotificationKind = "follow"
	KindInterestRequest        NotificationKind = "interestRequest"
	KindInterestApproval       NotificationKind = "interestApproval"
	KindInterestConfirmation   NotificationKind = "interestConfirmation"
	KindInvitationRequest      NotificationKind = "invitationRequest"
	KindInvitationConfirmation NotificationKind = "invitationConfirmation"
)

func (k NotificationKind) Valid() bool {
	switch k {
	case KindFollow, KindInterestRequest, KindInterestApproval,
		KindInterestConfirmation, KindInvitationRequest, KindInvitationConfirmation:
		return true
	}
	return false
}

type NotificationStatus string

const (
	StatusNone        NotificationStatus = "none"
	StatusRequestSent NotificationStatus = "RequestSent"
	StatusApproved    NotificationStatus = "Approved"
	StatusRejected    NotificationStatus = "Rejected"
)

// Resolved reports whether the status is terminal. A resolved notification
// accepts no further transitions.
func (s NotificationStatus) Resolved() bool {
	return s == StatusApproved || s == StatusRejected
}

// Notification is an append-mostly log entry. Only Status ever changes
// after creation.
type Notification struct {
	ID          uuid.UUID          `json:"id"`
	RecipientID uuid.UUID          `json:"recipient_id"`
	SenderID    uuid.UUID          `json:"sender_id"`
	Kind        NotificationKind   `json:"kind"`
	Status      NotificationStatus `json:"status"`
	SubjectID   *uuid.UUID         `json:"subject_id,omitempty"`
	Message     string             `json:"message"`
	CreatedAt   time.Time          `json:"created_at"`
}
