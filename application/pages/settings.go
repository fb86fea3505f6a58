package pages

import (
	"context"

	"startuphub/application/controller"
	"startuphub/domain"
	apperrors "startuphub/pkg/errors"
)

// SettingsPage manages the account record: profile fields and account
// deletion.
type SettingsPage struct {
	api *API

	Profile *controller.Value[domain.Profile]
	Form    *controller.Form[domain.Profile]

	onDeleted func()
}

// NewSettingsPage creates the page. onDeleted runs after the account has
// been removed on the backend; the caller uses it to clear the session and
// leave the protected area.
func NewSettingsPage(deps Deps, onDeleted func()) *SettingsPage {
	return &SettingsPage{
		api:       deps.API,
		Profile:   controller.NewValue(deps.API.Users.Me, false, deps.opts()),
		Form:      controller.NewForm[domain.Profile](),
		onDeleted: onDeleted,
	}
}

// Load fetches the account record.
func (p *SettingsPage) Load(ctx context.Context) {
	p.Profile.Load(ctx)
}

// Edit opens the form pre-filled from the current record.
func (p *SettingsPage) Edit() {
	current, _ := p.Profile.Value()
	p.Form.OpenNew(current)
}

// Save submits the form.
func (p *SettingsPage) Save(ctx context.Context) error {
	return p.Form.Submit(ctx, func(ctx context.Context, draft domain.Profile) error {
		return p.Profile.Mutate(ctx, func(ctx context.Context) (domain.Profile, error) {
			return p.api.Users.Update(ctx, draft)
		}, "Account updated")
	})
}

// DeleteAccount removes the account on the backend, then hands control to
// the onDeleted hook. A failed deletion changes nothing locally.
func (p *SettingsPage) DeleteAccount(ctx context.Context) error {
	if err := p.api.Users.Delete(ctx); err != nil {
		p.Profile.ShowBanner(controller.BannerError, apperrors.UserMessage(err))
		return err
	}
	if p.onDeleted != nil {
		p.onDeleted()
	}
	return nil
}

// Close disposes the page.
func (p *SettingsPage) Close() {
	p.Profile.Close()
}
