package api

import (
	"context"

	"startuphub/domain"
)

// AuthAPI covers the session lifecycle endpoints.
type AuthAPI struct {
	c *Client
}

// NewAuthAPI creates the auth sub-client.
func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

// Login exchanges credentials for a token.
func (a *AuthAPI) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResponse, error) {
	var resp domain.LoginResponse
	if err := a.c.post(ctx, "/api/auth/login", creds, &resp); err != nil {
		return domain.LoginResponse{}, err
	}
	return resp, nil
}

// Register creates an account.
func (a *AuthAPI) Register(ctx context.Context, reg domain.Registration) (domain.LoginResponse, error) {
	var resp domain.LoginResponse
	if err := a.c.post(ctx, "/api/auth/register", reg, &resp); err != nil {
		return domain.LoginResponse{}, err
	}
	return resp, nil
}

// Logout notifies the backend that the session ends.
func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.c.post(ctx, "/api/auth/logout", nil, nil)
}

// UsersAPI covers the account profile endpoints.
type UsersAPI struct {
	c *Client
}

// NewUsersAPI creates the users sub-client.
func NewUsersAPI(c *Client) *UsersAPI {
	return &UsersAPI{c: c}
}

// Me fetches the current account profile.
func (u *UsersAPI) Me(ctx context.Context) (domain.Profile, error) {
	var p domain.Profile
	if err := u.c.get(ctx, "/api/users/me", &p); err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

// Update updates the current account profile.
func (u *UsersAPI) Update(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	var updated domain.Profile
	if err := u.c.put(ctx, "/api/users/me", p, &updated); err != nil {
		return domain.Profile{}, err
	}
	return updated, nil
}

// Delete removes the current account.
func (u *UsersAPI) Delete(ctx context.Context) error {
	return u.c.delete(ctx, "/api/users/me")
}
