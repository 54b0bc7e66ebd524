package user

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

	"contenthub/internal/app/server/api/http/middleware/auth"
	"contenthub/internal/domain/profile"
	"contenthub/internal/domain/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email, password string) (uuid.UUID, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uuid.UUID) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Validate(ctx context.Context, token string) (uuid.UUID, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSessionService) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, userID uuid.UUID, p profile.Patch) (*profile.Profile, error) {
	args := m.Called(ctx, userID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfileService) IncrementCredits(ctx context.Context, callerID, userID uuid.UUID, amount int) (int, error) {
	args := m.Called(ctx, callerID, userID, amount)
	return args.Int(0), args.Error(1)
}

type mocks struct {
	users    *MockUserService
	sessions *MockSessionService
	profiles *MockProfileService
}

func newHandler() (*Handler, mocks) {
	m := mocks{
		users:    new(MockUserService),
		sessions: new(MockSessionService),
		profiles: new(MockProfileService),
	}
	h := NewHandler(m.users, m.sessions, m.profiles, slog.Default(), huma.Middlewares{}, huma.Middlewares{})
	return h, m
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func creds(email, password string) *credentialsInput {
	return &credentialsInput{Body: user.Credentials{Email: email, Password: password}}
}

func TestHandler_register(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		setupMock  func(m mocks)
		wantStatus int
	}{
		{
			name: "success",
			setupMock: func(m mocks) {
				m.users.On("Register", mock.Anything, "Ada@example.com", "P@ssw0rd123!").Return(id, nil)
				m.sessions.On("Create", mock.Anything, id).Return("token", nil)
			},
		},
		{
			name: "invalid input",
			setupMock: func(m mocks) {
				m.users.On("Register", mock.Anything, mock.Anything, mock.Anything).
					Return(uuid.Nil, errors.Join(user.ErrInvalidInput, errors.New("password too short")))
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "already exists",
			setupMock: func(m mocks) {
				m.users.On("Register", mock.Anything, mock.Anything, mock.Anything).Return(uuid.Nil, user.ErrAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "session failure",
			setupMock: func(m mocks) {
				m.users.On("Register", mock.Anything, mock.Anything, mock.Anything).Return(id, nil)
				m.sessions.On("Create", mock.Anything, id).Return("", errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newHandler()
			tt.setupMock(m)

			out, err := h.register(context.Background(), creds("Ada@example.com", "P@ssw0rd123!"))
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, statusOf(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token", out.Body.Token)
			assert.Equal(t, id, out.Body.UserID)
			assert.Equal(t, "ada@example.com", out.Body.Email)
			m.users.AssertExpectations(t)
			m.sessions.AssertExpectations(t)
		})
	}
}

func TestHandler_login(t *testing.T) {
	h, m := newHandler()
	u := user.User{ID: uuid.New(), Email: "ada@example.com"}

	m.users.On("Authenticate", mock.Anything, "ada@example.com", "good").Return(u, nil)
	m.users.On("Authenticate", mock.Anything, "ada@example.com", "bad").Return(user.User{}, user.ErrInvalidCredentials)
	m.sessions.On("Create", mock.Anything, u.ID).Return("tok", nil)

	out, err := h.login(context.Background(), creds("ada@example.com", "good"))
	require.NoError(t, err)
	assert.Equal(t, "tok", out.Body.Token)

	_, err = h.login(context.Background(), creds("ada@example.com", "bad"))
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestHandler_logout(t *testing.T) {
	h, m := newHandler()
	m.sessions.On("Revoke", mock.Anything, "tok").Return(nil)

	_, err := h.logout(context.Background(), &struct{}{})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	ctx := auth.WithToken(auth.WithUserID(context.Background(), uuid.New()), "tok")
	_, err = h.logout(ctx, &struct{}{})
	require.NoError(t, err)
	m.sessions.AssertExpectations(t)
}

func TestHandler_current(t *testing.T) {
	h, m := newHandler()
	u := user.User{ID: uuid.New(), Email: "ada@example.com"}
	p := &profile.Profile{ID: u.ID, PlanType: profile.PlanFree, CreditsLimit: 100}

	m.users.On("Get", mock.Anything, u.ID).Return(u, nil)
	m.profiles.On("Get", mock.Anything, u.ID).Return(p, nil)

	out, err := h.current(auth.WithUserID(context.Background(), u.ID), &struct{}{})
	require.NoError(t, err)
	assert.Equal(t, u.Email, out.Body.Email)
	assert.Equal(t, p, out.Body.Profile)

	_, err = h.current(context.Background(), &struct{}{})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}
