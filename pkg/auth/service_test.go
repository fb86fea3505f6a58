package auth

import (
	"context"
	"testing"

	"startuphub/domain"
	"startuphub/infrastructure/storage"
	apperrors "startuphub/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockBackend mocks the API slice the auth flows call.
type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResponse, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(domain.LoginResponse), args.Error(1)
}

func (m *mockBackend) Register(ctx context.Context, reg domain.Registration) (domain.LoginResponse, error) {
	args := m.Called(ctx, reg)
	return args.Get(0).(domain.LoginResponse), args.Error(1)
}

func (m *mockBackend) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestService_LoginPersistsSession(t *testing.T) {
	// Arrange
	mem := storage.NewMemoryStore()
	store := NewStore(mem, zap.NewNop())
	backend := new(mockBackend)
	creds := domain.Credentials{Email: "founder@acme.io", Password: "secret123"}
	backend.On("Login", mock.Anything, creds).Return(domain.LoginResponse{
		Token:  "tok-xyz",
		UserID: "u1",
		Email:  "founder@acme.io",
		Role:   domain.RoleStartup,
	}, nil)

	svc := NewService(store, backend, zap.NewNop())

	// Act
	resp, err := svc.Login(context.Background(), creds)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", resp.Token)
	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-xyz", token)
	current, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, domain.RoleStartup, current.Role)
	backend.AssertExpectations(t)
}

func TestService_LoginFailureStoresNothing(t *testing.T) {
	// Arrange
	mem := storage.NewMemoryStore()
	store := NewStore(mem, zap.NewNop())
	backend := new(mockBackend)
	backend.On("Login", mock.Anything, mock.Anything).
		Return(domain.LoginResponse{}, apperrors.NewUnauthorized("bad credentials"))

	svc := NewService(store, backend, zap.NewNop())

	// Act
	_, err := svc.Login(context.Background(), domain.Credentials{Email: "a@b.c", Password: "wrong"})

	// Assert
	require.Error(t, err)
	assert.Equal(t, "Incorrect email or password", apperrors.UserMessage(err))
	assert.False(t, store.IsAuthenticated())
	_, ok := mem.Get(KeyUser)
	assert.False(t, ok)
}

func TestService_LoginFailureKeepsExistingSession(t *testing.T) {
	// Arrange: a prior session is already stored.
	mem := storage.NewMemoryStore()
	store := NewStore(mem, zap.NewNop())
	require.NoError(t, store.Save("old-token", domain.User{ID: "u1"}))

	backend := new(mockBackend)
	backend.On("Login", mock.Anything, mock.Anything).
		Return(domain.LoginResponse{}, apperrors.NewUnauthorized("bad credentials"))

	svc := NewService(store, backend, zap.NewNop())

	// Act
	_, err := svc.Login(context.Background(), domain.Credentials{Email: "a@b.c", Password: "wrong"})

	// Assert
	require.Error(t, err)
	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "old-token", token)
}

func TestService_LogoutClearsDespiteBackendFailure(t *testing.T) {
	// Arrange
	mem := storage.NewMemoryStore()
	store := NewStore(mem, zap.NewNop())
	require.NoError(t, store.Save("tok", domain.User{ID: "u1"}))

	backend := new(mockBackend)
	backend.On("Logout", mock.Anything).Return(apperrors.NewNetwork("Could not reach the server", nil))

	svc := NewService(store, backend, zap.NewNop())

	// Act
	svc.Logout(context.Background())

	// Assert
	assert.False(t, store.IsAuthenticated())
}

func TestService_RegisterPersistsSession(t *testing.T) {
	// Arrange
	mem := storage.NewMemoryStore()
	store := NewStore(mem, zap.NewNop())
	backend := new(mockBackend)
	reg := domain.Registration{Email: "angel@fund.io", Password: "secret123", Role: domain.RoleInvestor}
	backend.On("Register", mock.Anything, reg).Return(domain.LoginResponse{
		Token:  "tok-new",
		UserID: "u2",
		Email:  "angel@fund.io",
		Role:   domain.RoleInvestor,
	}, nil)

	svc := NewService(store, backend, zap.NewNop())

	// Act
	resp, err := svc.Register(context.Background(), reg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "u2", resp.UserID)
	assert.True(t, store.IsAuthenticated())
}
