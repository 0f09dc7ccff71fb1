package entities

import "time"

// NotificationKind is the toast flavour shown to the operator.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient operator-facing message tied to a session.
type Notification struct {
	SessionID string           `json:"session_id"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}
