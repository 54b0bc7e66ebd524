package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"contenthub/internal/domain/query"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListPublic(ctx context.Context, opts query.Options) ([]Tool, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Tool), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id uuid.UUID) (*Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Tool), args.Error(1)
}

func (m *MockRepository) UpsertByTitle(ctx context.Context, t *Tool) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func TestService_List_DefaultsToAscending(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	tools := []Tool{{ID: uuid.New(), Title: "Code Generator", Status: StatusBeta, IsPublic: true}}
	mockRepo.On("ListPublic", mock.Anything, query.Options{Order: query.OrderAsc}).Return(tools, nil)

	got, err := service.List(context.Background(), query.Options{})
	require.NoError(t, err)
	assert.Equal(t, tools, got)

	mockRepo.AssertExpectations(t)
}

func TestService_List_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("ListPublic", mock.Anything, mock.Anything).Return(nil, errors.New("database error"))

	_, err := service.List(context.Background(), query.Options{Order: query.OrderDesc, Limit: 5})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "list tools")
}

func TestService_Find(t *testing.T) {
	id := uuid.New()

	t.Run("public tool", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, slog.Default())
		mockRepo.On("Get", mock.Anything, id).Return(&Tool{ID: id, IsPublic: true}, nil)

		got, err := service.Find(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})

	t.Run("private tool is hidden", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, slog.Default())
		mockRepo.On("Get", mock.Anything, id).Return(&Tool{ID: id, IsPublic: false}, nil)

		_, err := service.Find(context.Background(), id)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing tool", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, slog.Default())
		mockRepo.On("Get", mock.Anything, id).Return(nil, ErrNotFound)

		_, err := service.Find(context.Background(), id)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Seed(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	catalog := []Tool{
		{Title: "Creative Writing Assistant", Status: StatusActive, IsPublic: true},
		{Title: "Data Analyzer", Status: StatusNew, IsPublic: true},
	}
	mockRepo.On("UpsertByTitle", mock.Anything, mock.AnythingOfType("*tool.Tool")).Return(nil).Twice()

	n, err := service.Seed(context.Background(), catalog)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	mockRepo.AssertExpectations(t)
}

func TestService_Seed_InvalidEntry(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	n, err := service.Seed(context.Background(), []Tool{{Title: "Broken", Status: "retired"}})
	assert.ErrorIs(t, err, ErrInvalidData)
	assert.Equal(t, 0, n)
	mockRepo.AssertNotCalled(t, "UpsertByTitle", mock.Anything, mock.Anything)
}
