package user

import (
	"context"
	"fmt"
	"time"

	"carewell/models"
	"carewell/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is the session token lifetime.
const tokenDuration = 72 * time.Hour

// Register creates a new account with a hashed password and signs it in.
func (s *DefaultUserService) Register(reg models.UserRegistration) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(reg.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", reg.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		FullName:     reg.FullName,
		Email:        reg.Email,
		Phone:        reg.Phone,
		Country:      reg.Country,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return s.issueToken(usr)
}

// Authenticate verifies credentials and issues a session token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	return s.issueToken(usr)
}

// issueToken generates a JWT, persists its hash and primes the auth cache.
func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateFields(usr.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	// Priming the cache is best-effort; the middleware falls back to the DB.
	if utils.AuthCacheClient != nil {
		cacheKey := utils.AuthCachePrefix + usr.ID
		if err := utils.AuthCacheClient.Set(context.Background(), cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to prime auth cache", zap.String("userID", usr.ID), zap.Error(err))
		}
	}

	return &AuthResponse{
		ID:       usr.ID,
		Token:    token,
		FullName: usr.FullName,
		Email:    usr.Email,
		Role:     usr.Role,
	}, nil
}

// RevokeToken signs the user out by clearing the stored hash and cache entry.
func (s *DefaultUserService) RevokeToken(userID string) error {
	if err := s.Repo.UpdateFields(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	if utils.AuthCacheClient != nil {
		_ = utils.AuthCacheClient.Del(context.Background(), utils.AuthCachePrefix+userID).Err()
	}
	return nil
}
