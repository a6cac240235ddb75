package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, username, passwordHash string) (User, error) {
	args := m.Called(ctx, username, passwordHash)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(User), args.Error(1)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, NewCredentialsValidator(), slog.Default())
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	username := "testuser"
	password := "testpassword123"

	// The hash is not predictable, check only that a non-empty one is passed
	mockRepo.On("Create", mock.Anything, username, mock.MatchedBy(func(hash string) bool {
		return hash != ""
	})).Return(User{ID: 123, Username: username}, nil)

	u, err := service.Register(context.Background(), username, password)
	assert.NoError(t, err)
	assert.Equal(t, 123, u.ID)
	assert.Equal(t, username, u.Username)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, "testuser", mock.AnythingOfType("string")).
		Return(User{}, errors.New("database error"))

	_, err := service.Register(context.Background(), "testuser", "testpassword123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")

	mockRepo.AssertExpectations(t)
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, "alice", mock.AnythingOfType("string")).
		Return(User{}, ErrAlreadyExists)

	_, err := service.Register(context.Background(), "alice", "pw123")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_ValidationFailed(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	_, err := service.Register(context.Background(), "ab", "pw123")
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Repository must never be touched on invalid input
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Authenticate_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	username := "testuser"
	password := "testpassword123"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)

	stored := User{
		ID:           123,
		Username:     username,
		PasswordHash: string(hash),
	}

	mockRepo.On("FindByUsername", mock.Anything, username).Return(stored, nil)

	authUser, err := service.Authenticate(context.Background(), username, password)
	assert.NoError(t, err)
	assert.Equal(t, stored, authUser)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_UserNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByUsername", mock.Anything, "nonexistent").
		Return(User{}, ErrNotFound)

	_, err := service.Authenticate(context.Background(), "nonexistent", "testpassword123")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidCredentials, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_InvalidPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	username := "testuser"

	hash, err := bcrypt.GenerateFromPassword([]byte("correctpassword"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	stored := User{
		ID:           123,
		Username:     username,
		PasswordHash: string(hash),
	}

	mockRepo.On("FindByUsername", mock.Anything, username).Return(stored, nil)

	_, err = service.Authenticate(context.Background(), username, "wrongpassword")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidCredentials, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_InvalidHash(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	stored := User{
		ID:           123,
		Username:     "testuser",
		PasswordHash: "invalidhash", // not a bcrypt hash
	}

	mockRepo.On("FindByUsername", mock.Anything, "testuser").Return(stored, nil)

	_, err := service.Authenticate(context.Background(), "testuser", "testpassword123")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidCredentials, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_EdgeCases(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		password    string
		expectError bool
	}{
		{
			name:        "Valid credentials",
			username:    "testuser",
			password:    "password123",
			expectError: false,
		},
		{
			name:        "Empty username",
			username:    "",
			password:    "password123",
			expectError: true,
		},
		{
			name:        "Empty password",
			username:    "testuser",
			password:    "",
			expectError: true,
		},
		{
			name:        "Short spec-scenario password",
			username:    "alice",
			password:    "pw1",
			expectError: false,
		},
		{
			name:        "Username with illegal characters",
			username:    "test user!",
			password:    "password123",
			expectError: true,
		},
		{
			name:        "Very long password (over bcrypt limit)",
			username:    "testuser",
			password:    "verylongpassword1234567890123456789012345678901234567890123456789012345678901234567890",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)

			if !tt.expectError {
				mockRepo.On("Create", mock.Anything, tt.username, mock.AnythingOfType("string")).
					Return(User{ID: 1, Username: tt.username}, nil)
			}

			_, err := service.Register(context.Background(), tt.username, tt.password)
			if tt.expectError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
				mockRepo.AssertExpectations(t)
			}
		})
	}
}
