package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"dream-journal/apperrors"
	"dream-journal/models"
)

type UserStore interface {
	Insert(ctx context.Context, u *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateAvatar(ctx context.Context, id primitive.ObjectID, avatarURL string) error
}

// UserService handles account registration, credential checks, and profile
// updates. Token issuance is the HTTP layer's job.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Register(ctx context.Context, email, password, username string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	username = strings.TrimSpace(username)
	if email == "" || password == "" || username == "" {
		return nil, apperrors.BadRequest("email, password and username are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Insert(ctx, &models.User{
		Email:    email,
		Password: string(hash),
		Username: username,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict("Email already registered")
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, apperrors.BadRequest("email and password are required")
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apperrors.Unauthorized("Incorrect email or password")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("Incorrect email or password")
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if isNoDocuments(err) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) SetAvatar(ctx context.Context, userID primitive.ObjectID, avatarURL string) error {
	return s.users.UpdateAvatar(ctx, userID, avatarURL)
}
