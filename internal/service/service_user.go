package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tchaikit/ea-dashboard/internal/audit"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/store"
	"github.com/tchaikit/ea-dashboard/models"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength is the minimum accepted plaintext password length.
const minPasswordLength = 6

// userService is the concrete implementation of [UserService].
//
// Email uniqueness is enforced twice: a friendly pre-check here, plus the
// unique index in the store as the authoritative guard against races.
// Plaintext passwords never leave this layer; only bcrypt hashes do, and
// the hash itself is excluded from JSON serialization on the model.
type userService struct {
	repository store.UserRepository
	recorder   audit.Recorder
	logger     *logger.Logger
}

func NewUserService(repository store.UserRepository, recorder audit.Recorder, logger *logger.Logger) UserService {
	return &userService{
		repository: repository,
		recorder:   recorder,
		logger:     logger,
	}
}

// Create registers a new account. Rejects duplicate emails with a conflict
// and hashes the password before anything is persisted.
func (s *userService) Create(ctx context.Context, create models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateUserCreate(create); err != nil {
		log.Err(err).Str("func", "*userService.Create").Msg("user validation failed")
		return models.User{}, err
	}

	// pre-check; the unique index remains the authoritative guard
	if _, err := s.repository.FindByEmail(ctx, create.Email); err == nil {
		return models.User{}, fmt.Errorf("email %s: %w", create.Email, store.ErrEmailAlreadyExists)
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("user lookup by email failed: %w", err)
	}

	hash, err := hashPassword(create.Password)
	if err != nil {
		return models.User{}, err
	}

	isActive := true
	if create.IsActive != nil {
		isActive = *create.IsActive
	}

	created, err := s.repository.Create(ctx, models.User{
		Email:        create.Email,
		PasswordHash: hash,
		Name:         create.Name,
		Role:         create.Role,
		Avatar:       create.Avatar,
		IsActive:     isActive,
	})
	if err != nil {
		log.Err(err).Str("func", "*userService.Create").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	s.recorder.Record(ctx, audit.Event{
		Action:     "create",
		EntityType: "user",
		EntityID:   created.ID.String(),
		Details:    created.Email,
	})

	return created, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *userService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return s.repository.FindByEmail(ctx, email)
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.repository.List(ctx)
}

// Update applies a partial merge to an existing user. An email change is
// re-validated for uniqueness against other users; a new password is
// re-hashed before storage.
func (s *userService) Update(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateUserUpdate(update); err != nil {
		log.Err(err).Str("func", "*userService.Update").Msg("user update validation failed")
		return models.User{}, err
	}

	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	if update.Email != nil && *update.Email != existing.Email {
		owner, findErr := s.repository.FindByEmail(ctx, *update.Email)
		if findErr == nil && owner.ID != id {
			return models.User{}, fmt.Errorf("email %s: %w", *update.Email, store.ErrEmailAlreadyExists)
		}
		if findErr != nil && !errors.Is(findErr, store.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("user lookup by email failed: %w", findErr)
		}
	}

	var passwordHash *string
	if update.Password != nil {
		hash, hashErr := hashPassword(*update.Password)
		if hashErr != nil {
			return models.User{}, hashErr
		}
		passwordHash = &hash
	}

	updated, err := s.repository.Update(ctx, id, update, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userService.Update").Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	s.recorder.Record(ctx, audit.Event{
		Action:     "update",
		EntityType: "user",
		EntityID:   updated.ID.String(),
		Details:    updated.Email,
	})

	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.repository.Delete(ctx, id); err != nil {
		log.Err(err).Str("func", "*userService.Delete").Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	s.recorder.Record(ctx, audit.Event{
		Action:     "delete",
		EntityType: "user",
		EntityID:   id.String(),
	})

	return nil
}

// hashPassword derives a bcrypt hash from the plaintext password.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("password hashing failed: %w", err)
	}

	return string(hash), nil
}

func validateUserCreate(create models.UserCreate) error {
	if create.Email == "" || !strings.Contains(create.Email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidDataProvided)
	}
	if len(create.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, minPasswordLength)
	}
	if !create.Role.Valid() {
		return fmt.Errorf("%w: invalid role %q", ErrInvalidDataProvided, create.Role)
	}

	return nil
}

func validateUserUpdate(update models.UserUpdate) error {
	if update.Email != nil && (*update.Email == "" || !strings.Contains(*update.Email, "@")) {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidDataProvided)
	}
	if update.Password != nil && len(*update.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, minPasswordLength)
	}
	if update.Role != nil && !update.Role.Valid() {
		return fmt.Errorf("%w: invalid role %q", ErrInvalidDataProvided, *update.Role)
	}

	return nil
}
