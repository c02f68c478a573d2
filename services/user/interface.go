package user

import (
	userRepo "carewell/database/repository/user"
	"carewell/models"
)

// UserService manages portal accounts.
type UserService interface {
	// Register creates a new account with a hashed password.
	Register(reg models.UserRegistration) (*AuthResponse, error)
	// Authenticate verifies credentials and issues a session token.
	Authenticate(email, password string) (*AuthResponse, error)
	// RevokeToken signs the user out everywhere.
	RevokeToken(userID string) error

	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateProfile(userID string, req models.UserUpdateRequest) (*models.User, error)
	DeleteUser(userID string) error

	// AddProfileDocument stores a standing document on the user's profile so
	// later applications can reuse it.
	AddProfileDocument(userID string, doc models.UploadedDocument) (*models.User, error)
	// RemoveProfileDocument detaches a standing document and returns it.
	RemoveProfileDocument(userID, documentID string) (*models.UploadedDocument, error)

	// GetAllUsers is the admin listing.
	GetAllUsers() ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's ID, token, and profile basics.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}
