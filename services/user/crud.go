package user

import (
	"fmt"
	"time"

	"carewell/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}

// GetUserByEmail retrieves a user by its email address.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("user with email %s not found", email)
	}
	return usr, nil
}

// UpdateProfile applies a partial profile update; empty fields are skipped.
func (s *DefaultUserService) UpdateProfile(userID string, req models.UserUpdateRequest) (*models.User, error) {
	updateFields := bson.M{}
	if req.FullName != "" {
		updateFields["fullName"] = req.FullName
	}
	if req.Phone != "" {
		updateFields["phone"] = req.Phone
	}
	if req.Country != "" {
		updateFields["country"] = req.Country
	}
	if req.PreferredLanguage != "" {
		updateFields["preferredLanguage"] = req.PreferredLanguage
	}
	if req.FCMToken != "" {
		updateFields["fcmToken"] = req.FCMToken
	}
	if len(updateFields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateFields(userID, updateFields); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.Repo.GetByID(userID)
}

// DeleteUser removes an account.
func (s *DefaultUserService) DeleteUser(userID string) error {
	return s.Repo.Delete(userID)
}

// AddProfileDocument stores a standing document on the profile with replace
// semantics per declared type, mirroring the draft behavior.
func (s *DefaultUserService) AddProfileDocument(userID string, doc models.UploadedDocument) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil || usr == nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.Status == "" {
		doc.Status = models.DocStatusUploaded
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now()
	}

	kept := usr.ProfileDocuments[:0]
	for i := range usr.ProfileDocuments {
		if usr.ProfileDocuments[i].Type == doc.Type {
			continue
		}
		kept = append(kept, usr.ProfileDocuments[i])
	}
	usr.ProfileDocuments = append(kept, doc)

	if err := s.Repo.UpdateFields(userID, bson.M{"profileDocuments": usr.ProfileDocuments}); err != nil {
		return nil, fmt.Errorf("failed to store profile document: %w", err)
	}
	return usr, nil
}

// RemoveProfileDocument detaches a standing document and returns it.
func (s *DefaultUserService) RemoveProfileDocument(userID, documentID string) (*models.UploadedDocument, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil || usr == nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	var removed *models.UploadedDocument
	kept := usr.ProfileDocuments[:0]
	for i := range usr.ProfileDocuments {
		if usr.ProfileDocuments[i].ID == documentID {
			d := usr.ProfileDocuments[i]
			removed = &d
			continue
		}
		kept = append(kept, usr.ProfileDocuments[i])
	}
	if removed == nil {
		return nil, fmt.Errorf("profile document %s not found", documentID)
	}

	if err := s.Repo.UpdateFields(userID, bson.M{"profileDocuments": kept}); err != nil {
		return nil, fmt.Errorf("failed to remove profile document: %w", err)
	}
	return removed, nil
}

// GetAllUsers retrieves all users for the admin console.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}
