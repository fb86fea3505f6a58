package auth

import (
	"context"

	"startuphub/domain"
	apperrors "startuphub/pkg/errors"

	"go.uber.org/zap"
)

// Backend is the slice of the API the auth flows need.
type Backend interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.LoginResponse, error)
	Register(ctx context.Context, reg domain.Registration) (domain.LoginResponse, error)
	Logout(ctx context.Context) error
}

// Service implements the login/logout/register flows over the session
// store.
type Service struct {
	store   *Store
	backend Backend
	logger  *zap.Logger
}

// NewService creates the auth service.
func NewService(store *Store, backend Backend, logger *zap.Logger) *Service {
	return &Service{store: store, backend: backend, logger: logger}
}

// Store exposes the underlying session store.
func (s *Service) Store() *Store {
	return s.store
}

// Login authenticates and persists the session. On failure nothing is
// stored and nothing previously stored is cleared; the backend's message is
// surfaced with a credential-specific fallback.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResponse, error) {
	resp, err := s.backend.Login(ctx, creds)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			return domain.LoginResponse{}, apperrors.NewUnauthorized("Incorrect email or password")
		}
		return domain.LoginResponse{}, err
	}

	// Save overwrites both keys, so no stale fields from a prior session
	// survive.
	if err := s.store.Save(resp.Token, resp.User()); err != nil {
		return domain.LoginResponse{}, apperrors.NewInternal("failed to persist session", err)
	}

	s.logger.Info("Logged in",
		zap.String("user_id", resp.UserID),
		zap.String("role", string(resp.Role)),
	)
	return resp, nil
}

// Register creates an account and persists the resulting session.
func (s *Service) Register(ctx context.Context, reg domain.Registration) (domain.LoginResponse, error) {
	resp, err := s.backend.Register(ctx, reg)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	if err := s.store.Save(resp.Token, resp.User()); err != nil {
		return domain.LoginResponse{}, apperrors.NewInternal("failed to persist session", err)
	}
	return resp, nil
}

// Logout notifies the backend best-effort and always clears local state.
// A failed or slow backend call must never block local logout.
func (s *Service) Logout(ctx context.Context) {
	if err := s.backend.Logout(ctx); err != nil {
		s.logger.Warn("Logout notification failed", zap.Error(err))
	}
	s.store.Clear()
}
