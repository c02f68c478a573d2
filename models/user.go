package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account on the portal. Profile documents are standing documents
// the user keeps on file; the wizard can copy them into a draft.
type User struct {
	ID                string             `bson:"id" json:"id"`
	FullName          string             `bson:"fullName" json:"fullName"`
	Email             string             `bson:"email" json:"email"`
	Phone             string             `bson:"phone" json:"phone"`
	PasswordHash      string             `bson:"passwordHash" json:"-"`
	Role              string             `bson:"role" json:"role"`
	Country           string             `bson:"country" json:"country"`
	PreferredLanguage string             `bson:"preferredLanguage" json:"preferredLanguage"`
	FCMToken          string             `bson:"fcmToken" json:"-"`
	TokenHash         string             `bson:"tokenHash" json:"-"`
	ProfileDocuments  []UploadedDocument `bson:"profileDocuments" json:"profileDocuments"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserRegistration is the signup payload.
type UserRegistration struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Country  string `json:"country"`
}

// UserUpdateRequest carries a partial profile update; empty fields are left
// untouched.
type UserUpdateRequest struct {
	FullName          string `json:"fullName"`
	Phone             string `json:"phone"`
	Country           string `json:"country"`
	PreferredLanguage string `json:"preferredLanguage"`
	FCMToken          string `json:"fcmToken"`
}
