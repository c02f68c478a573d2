package models

import "time"

// Notification audiences.
const (
	AudienceUser  = "user"
	AudienceAdmin = "admin"
)

// Notification types written by this server.
const (
	NotifApplicationSubmitted = "application_submitted"
	NotifPaymentRecorded      = "payment_recorded"
	NotifPaymentReminder      = "payment_reminder"
	NotifDocumentVerified     = "document_verified"
	NotifStatusChanged        = "status_changed"
)

// Notification is a persisted in-app notification. Admin-facing rows carry an
// empty UserID and audience "admin".
type Notification struct {
	ID        string            `bson:"id" json:"id"`
	UserID    string            `bson:"userId" json:"userId"`
	Audience  string            `bson:"audience" json:"audience"`
	Type      string            `bson:"type" json:"type"`
	Title     string            `bson:"title" json:"title"`
	Body      string            `bson:"body" json:"body"`
	Data      map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool              `bson:"read" json:"read"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
}
