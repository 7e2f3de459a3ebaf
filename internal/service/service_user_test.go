package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tchaikit/ea-dashboard/internal/audit"
	"github.com/tchaikit/ea-dashboard/internal/logger"
	"github.com/tchaikit/ea-dashboard/internal/store"
	"github.com/tchaikit/ea-dashboard/models"
	"golang.org/x/crypto/bcrypt"
)

func validUserCreate() models.UserCreate {
	return models.UserCreate{
		Email:    "alice@corp.example",
		Password: "s3cret-enough",
		Name:     "Alice",
		Role:     models.RoleEditor,
	}
}

func TestUserService_Create_Success(t *testing.T) {
	// Arrange
	var stored models.User
	repo := &mockUserRepo{
		findByEmailFn: func(context.Context, string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			user.ID = uuid.New()
			stored = user
			return user, nil
		},
	}
	recorder := &recordingRecorder{}
	svc := NewUserService(repo, recorder, logger.Nop())

	create := validUserCreate()

	// Act
	created, err := svc.Create(context.Background(), create)

	// Assert
	require.NoError(t, err)
	assert.True(t, created.IsActive, "accounts default to active")
	assert.NotEqual(t, create.Password, stored.PasswordHash, "plaintext must never be stored")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(create.Password)))
	require.Len(t, recorder.events, 1)
	assert.Equal(t, "user", recorder.events[0].EntityType)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		findByEmailFn: func(context.Context, string) (models.User, error) {
			return models.User{ID: uuid.New(), Email: "alice@corp.example"}, nil
		},
	}
	svc := NewUserService(repo, audit.Nop(), logger.Nop())

	_, err := svc.Create(context.Background(), validUserCreate())

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_Create_Validation(t *testing.T) {
	svc := NewUserService(&mockUserRepo{}, audit.Nop(), logger.Nop())

	tests := []struct {
		name   string
		mutate func(c *models.UserCreate)
	}{
		{"missing email", func(c *models.UserCreate) { c.Email = "" }},
		{"malformed email", func(c *models.UserCreate) { c.Email = "not-an-email" }},
		{"short password", func(c *models.UserCreate) { c.Password = "abc" }},
		{"invalid role", func(c *models.UserCreate) { c.Role = "superuser" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			create := validUserCreate()
			tt.mutate(&create)

			_, err := svc.Create(context.Background(), create)

			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestUserService_Create_ExplicitlyInactive(t *testing.T) {
	repo := &mockUserRepo{
		findByEmailFn: func(context.Context, string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			return user, nil
		},
	}
	svc := NewUserService(repo, audit.Nop(), logger.Nop())

	inactive := false
	create := validUserCreate()
	create.IsActive = &inactive

	created, err := svc.Create(context.Background(), create)

	require.NoError(t, err)
	assert.False(t, created.IsActive)
}

func TestUserService_Update_EmailTakenByOther(t *testing.T) {
	id := uuid.New()
	otherID := uuid.New()
	repo := &mockUserRepo{
		getByIDFn: func(context.Context, uuid.UUID) (models.User, error) {
			return models.User{ID: id, Email: "alice@corp.example"}, nil
		},
		findByEmailFn: func(context.Context, string) (models.User, error) {
			return models.User{ID: otherID, Email: "bob@corp.example"}, nil
		},
	}
	svc := NewUserService(repo, audit.Nop(), logger.Nop())

	email := "bob@corp.example"
	_, err := svc.Update(context.Background(), id, models.UserUpdate{Email: &email})

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	// Arrange
	id := uuid.New()
	var passedHash *string
	repo := &mockUserRepo{
		getByIDFn: func(context.Context, uuid.UUID) (models.User, error) {
			return models.User{ID: id, Email: "alice@corp.example"}, nil
		},
		updateFn: func(_ context.Context, _ uuid.UUID, _ models.UserUpdate, passwordHash *string) (models.User, error) {
			passedHash = passwordHash
			return models.User{ID: id}, nil
		},
	}
	svc := NewUserService(repo, audit.Nop(), logger.Nop())

	password := "new-password"

	// Act
	_, err := svc.Update(context.Background(), id, models.UserUpdate{Password: &password})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, passedHash)
	assert.NotEqual(t, password, *passedHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(*passedHash), []byte(password)))
}

func TestUserService_Update_LookupError(t *testing.T) {
	repo := &mockUserRepo{
		getByIDFn: func(context.Context, uuid.UUID) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := NewUserService(repo, audit.Nop(), logger.Nop())

	name := "New Name"
	_, err := svc.Update(context.Background(), uuid.New(), models.UserUpdate{Name: &name})

	require.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_Delete_RepoError(t *testing.T) {
	repo := &mockUserRepo{
		deleteFn: func(context.Context, uuid.UUID) error {
			return errors.New("db down")
		},
	}
	recorder := &recordingRecorder{}
	svc := NewUserService(repo, recorder, logger.Nop())

	err := svc.Delete(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Empty(t, recorder.events)
}
