package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error) {
	args := m.Called(ctx, email, passwordHash)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id uuid.UUID) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

const strongPassword = "P@ssw0rd123!"

func newTestService(repo Repository) *Service {
	return NewService(repo, NewPasswordValidator(), slog.Default())
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)
	id := uuid.New()

	// Email is normalized before it reaches the repository; the hash can't be predicted
	mockRepo.On("Create", mock.Anything, "ada@example.com", mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(strongPassword)) == nil
	})).Return(id, nil)

	got, err := service.Register(context.Background(), "  Ada@Example.com ", strongPassword)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_InvalidInput(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	_, err := service.Register(context.Background(), "ada@example.com", "weak")
	assert.ErrorIs(t, err, ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Register_AlreadyExists(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, "ada@example.com", mock.AnythingOfType("string")).Return(uuid.Nil, ErrAlreadyExists)

	_, err := service.Register(context.Background(), "ada@example.com", strongPassword)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestService_Register_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, "ada@example.com", mock.AnythingOfType("string")).Return(uuid.Nil, errors.New("database error"))

	_, err := service.Register(context.Background(), "ada@example.com", strongPassword)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte(strongPassword), bcrypt.MinCost)
	require.NoError(t, err)

	u := User{ID: uuid.New(), Email: "ada@example.com", Password: string(hash)}
	mockRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(u, nil)

	authUser, err := service.Authenticate(context.Background(), "ada@example.com", strongPassword)
	assert.NoError(t, err)
	assert.Equal(t, u, authUser)

	mockRepo.AssertExpectations(t)
}

func TestService_Authenticate_UserNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(User{}, ErrNotFound)

	_, err := service.Authenticate(context.Background(), "ghost@example.com", strongPassword)
	assert.Equal(t, ErrNotFound, err)
}

func TestService_Authenticate_InvalidPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte(strongPassword), bcrypt.MinCost)
	require.NoError(t, err)

	u := User{ID: uuid.New(), Email: "ada@example.com", Password: string(hash)}
	mockRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(u, nil)

	_, err = service.Authenticate(context.Background(), "ada@example.com", "wrongpassword")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestService_Authenticate_InvalidHash(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	u := User{ID: uuid.New(), Email: "ada@example.com", Password: "invalidhash"}
	mockRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(u, nil)

	_, err := service.Authenticate(context.Background(), "ada@example.com", strongPassword)
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestService_Authenticate_MalformedEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	_, err := service.Authenticate(context.Background(), "not-an-email", strongPassword)
	assert.Equal(t, ErrInvalidCredentials, err)
	mockRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}
