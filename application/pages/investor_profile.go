package pages

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"startuphub/application/controller"
	"startuphub/domain"
	apperrors "startuphub/pkg/errors"
)

// InvestorProfilePage manages the investor's own profile. A missing
// profile opens the create form, like the startup counterpart.
type InvestorProfilePage struct {
	api *API

	Profile *controller.Value[domain.Investor]
	Form    *controller.Form[domain.InvestorDraft]

	mu       sync.Mutex
	formMode bool
}

// NewInvestorProfilePage creates the page.
func NewInvestorProfilePage(deps Deps) *InvestorProfilePage {
	return &InvestorProfilePage{
		api:     deps.API,
		Profile: controller.NewValue(deps.API.Investors.Me, true, deps.opts()),
		Form:    controller.NewForm[domain.InvestorDraft](),
	}
}

// Load fetches the profile.
func (p *InvestorProfilePage) Load(ctx context.Context) {
	p.Profile.Load(ctx)
}

// InFormMode reports whether the page shows the edit form.
func (p *InvestorProfilePage) InFormMode() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, present := p.Profile.Value(); !present {
		return true
	}
	return p.formMode
}

// Edit switches to the form, pre-filled from the current record.
func (p *InvestorProfilePage) Edit() {
	current, _ := p.Profile.Value()
	p.Form.OpenNew(domain.InvestorDraft{
		Name:            current.Name,
		Type:            current.Type,
		SectorInterests: current.SectorInterests,
		AmountMin:       current.AmountMin,
		AmountMax:       current.AmountMax,
		Description:     current.Description,
		Location:        current.Location,
		Portfolio:       current.Portfolio,
		Website:         current.Website,
		Email:           current.Email,
	})
	p.mu.Lock()
	p.formMode = true
	p.mu.Unlock()
}

// CancelEdit returns to the view mode, discarding edits.
func (p *InvestorProfilePage) CancelEdit() {
	p.Form.Cancel()
	p.mu.Lock()
	p.formMode = false
	p.mu.Unlock()
}

// SetAmountRange parses the free-text minimum and maximum ticket inputs
// into the working draft. Either side may be empty for no bound.
func (p *InvestorProfilePage) SetAmountRange(minRaw, maxRaw string) error {
	low, err := ParseAmount(minRaw)
	if err != nil {
		return err
	}
	high, err := ParseAmount(maxRaw)
	if err != nil {
		return err
	}
	if low != nil && high != nil && *high < *low {
		return apperrors.NewValidation("Maximum amount must not be below the minimum")
	}
	p.Form.Update(func(d *domain.InvestorDraft) {
		d.AmountMin = low
		d.AmountMax = high
	})
	return nil
}

// Save submits the form, creating or updating by presence.
func (p *InvestorProfilePage) Save(ctx context.Context) error {
	_, exists := p.Profile.Value()

	err := p.Form.Submit(ctx, func(ctx context.Context, draft domain.InvestorDraft) error {
		return p.Profile.Mutate(ctx, func(ctx context.Context) (domain.Investor, error) {
			if exists {
				return p.api.Investors.Update(ctx, draft)
			}
			return p.api.Investors.Create(ctx, draft)
		}, "Profile saved")
	})
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.formMode = false
	p.mu.Unlock()
	return nil
}

// Close disposes the page.
func (p *InvestorProfilePage) Close() {
	p.Profile.Close()
}

// ParseAmount converts the free-text amount field to a number. Empty input
// means no bound. Thousands separators (spaces) are tolerated.
func ParseAmount(raw string) (*float64, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if trimmed == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || v < 0 {
		return nil, apperrors.NewValidation("Amount must be a positive number")
	}
	return &v, nil
}
