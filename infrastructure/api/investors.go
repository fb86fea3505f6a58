package api

import (
	"context"

	"startuphub/domain"
)

// InvestorsAPI covers the investor profile endpoints and the startup detail
// view investors get for their connections.
type InvestorsAPI struct {
	c *Client
}

// NewInvestorsAPI creates the investors sub-client.
func NewInvestorsAPI(c *Client) *InvestorsAPI {
	return &InvestorsAPI{c: c}
}

// Me fetches the current user's investor profile.
func (i *InvestorsAPI) Me(ctx context.Context) (domain.Investor, error) {
	var inv domain.Investor
	if err := i.c.get(ctx, "/api/investors/me", &inv); err != nil {
		return domain.Investor{}, err
	}
	return inv, nil
}

// Create creates the investor profile.
func (i *InvestorsAPI) Create(ctx context.Context, draft domain.InvestorDraft) (domain.Investor, error) {
	var inv domain.Investor
	if err := i.c.post(ctx, "/api/investors", draft, &inv); err != nil {
		return domain.Investor{}, err
	}
	return inv, nil
}

// Update updates the investor profile.
func (i *InvestorsAPI) Update(ctx context.Context, draft domain.InvestorDraft) (domain.Investor, error) {
	var inv domain.Investor
	if err := i.c.put(ctx, "/api/investors/me", draft, &inv); err != nil {
		return domain.Investor{}, err
	}
	return inv, nil
}

// StartupDetails fetches the enriched view of a startup that requested a
// connection.
func (i *InvestorsAPI) StartupDetails(ctx context.Context, startupID string) (domain.StartupDetails, error) {
	var d domain.StartupDetails
	if err := i.c.get(ctx, "/api/investors/startups/"+pathEscapeID(startupID)+"/details", &d); err != nil {
		return domain.StartupDetails{}, err
	}
	return d, nil
}

// MatchingAPI covers the ranked matches endpoint.
type MatchingAPI struct {
	c *Client
}

// NewMatchingAPI creates the matching sub-client.
func NewMatchingAPI(c *Client) *MatchingAPI {
	return &MatchingAPI{c: c}
}

// ForMe fetches the ranked investor matches for the current startup.
func (m *MatchingAPI) ForMe(ctx context.Context) ([]domain.Match, error) {
	var matches []domain.Match
	if err := m.c.get(ctx, "/api/matching/for-me", &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// DashboardAPI covers the aggregate metrics endpoint.
type DashboardAPI struct {
	c *Client
}

// NewDashboardAPI creates the dashboard sub-client.
func NewDashboardAPI(c *Client) *DashboardAPI {
	return &DashboardAPI{c: c}
}

// Me fetches the dashboard aggregate for the current user.
func (d *DashboardAPI) Me(ctx context.Context) (domain.Dashboard, error) {
	var dash domain.Dashboard
	if err := d.c.get(ctx, "/api/dashboard/me", &dash); err != nil {
		return domain.Dashboard{}, err
	}
	return dash, nil
}
