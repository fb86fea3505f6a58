package pages

import (
	"context"

	"startuphub/application/controller"
	"startuphub/domain"
	"startuphub/pkg/auth"
)

// LoginPage is the credential form for the public login route.
type LoginPage struct {
	auth *auth.Service

	Form *controller.Form[domain.Credentials]
}

// NewLoginPage creates the page.
func NewLoginPage(svc *auth.Service) *LoginPage {
	p := &LoginPage{auth: svc, Form: controller.NewForm[domain.Credentials]()}
	p.Form.OpenNew(domain.Credentials{})
	return p
}

// Submit validates the credentials locally, then authenticates. On success
// the session is persisted and the caller navigates home.
func (p *LoginPage) Submit(ctx context.Context) (domain.Role, error) {
	var role domain.Role
	err := p.Form.Submit(ctx, func(ctx context.Context, creds domain.Credentials) error {
		resp, err := p.auth.Login(ctx, creds)
		if err != nil {
			return err
		}
		role = resp.Role
		return nil
	})
	return role, err
}

// RegisterPage is the account creation form for the public register route.
type RegisterPage struct {
	auth *auth.Service

	Form *controller.Form[domain.Registration]
}

// NewRegisterPage creates the page, defaulting to the startup role.
func NewRegisterPage(svc *auth.Service) *RegisterPage {
	p := &RegisterPage{auth: svc, Form: controller.NewForm[domain.Registration]()}
	p.Form.OpenNew(domain.Registration{Role: domain.RoleStartup})
	return p
}

// Submit validates the registration locally, then creates the account. On
// success the session is persisted and the caller navigates home.
func (p *RegisterPage) Submit(ctx context.Context) (domain.Role, error) {
	var role domain.Role
	err := p.Form.Submit(ctx, func(ctx context.Context, reg domain.Registration) error {
		resp, err := p.auth.Register(ctx, reg)
		if err != nil {
			return err
		}
		role = resp.Role
		return nil
	})
	return role, err
}
