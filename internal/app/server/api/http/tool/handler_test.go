package tool

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"contenthub/internal/domain/query"
	"contenthub/internal/domain/tool"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, opts query.Options) ([]tool.Tool, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]tool.Tool), args.Error(1)
}

func (m *MockService) Find(ctx context.Context, id uuid.UUID) (*tool.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tool.Tool), args.Error(1)
}

func (m *MockService) Seed(ctx context.Context, tools []tool.Tool) (int, error) {
	args := m.Called(ctx, tools)
	return args.Int(0), args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_list(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), huma.Middlewares{})

	tools := []tool.Tool{
		{ID: uuid.New(), Title: "Blog Writer", Category: "text"},
		{ID: uuid.New(), Title: "Image Studio", Category: "image"},
	}
	svc.On("List", mock.Anything, query.Options{Order: query.OrderAsc, Limit: 10}).Return(tools, nil)

	out, err := h.list(context.Background(), &listInput{Order: "asc", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, out.Body, 2)

	out, err = h.list(context.Background(), &listInput{Order: "asc", Limit: 10, Q: "studio"})
	require.NoError(t, err)
	require.Len(t, out.Body, 1)
	assert.Equal(t, "Image Studio", out.Body[0].Title)
}

func TestHandler_list_Error(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	svc.On("List", mock.Anything, mock.Anything).Return([]tool.Tool(nil), errors.New("db down"))

	_, err := h.list(context.Background(), &listInput{})
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
}

func TestHandler_find(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		input      string
		setupMock  func(m *MockService)
		wantStatus int
	}{
		{
			name:  "found",
			input: id.String(),
			setupMock: func(m *MockService) {
				m.On("Find", mock.Anything, id).Return(&tool.Tool{ID: id, Title: "Writer"}, nil)
			},
		},
		{
			name:       "malformed id",
			input:      "not-a-uuid",
			setupMock:  func(m *MockService) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:  "not found",
			input: id.String(),
			setupMock: func(m *MockService) {
				m.On("Find", mock.Anything, id).Return(nil, tool.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)
			h := NewHandler(svc, slog.Default(), huma.Middlewares{})

			out, err := h.find(context.Background(), &findInput{ID: tt.input})
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, out.Body.ID)
		})
	}
}
