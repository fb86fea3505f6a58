package pages

import (
	"context"

	"startuphub/application/controller"
	"startuphub/domain"
)

// DashboardPage shows the aggregate metrics for the current user. The same
// page serves both roles; the backend decides which counters apply.
type DashboardPage struct {
	data *controller.Value[domain.Dashboard]
}

// NewDashboardPage creates the dashboard page.
func NewDashboardPage(deps Deps) *DashboardPage {
	return &DashboardPage{
		data: controller.NewValue(deps.API.Dashboard.Me, false, deps.opts()),
	}
}

// Load fetches the metrics.
func (p *DashboardPage) Load(ctx context.Context) {
	p.data.Load(ctx)
}

// Phase returns the page lifecycle phase.
func (p *DashboardPage) Phase() controller.Phase {
	return p.data.Phase()
}

// Err returns the load error, if any.
func (p *DashboardPage) Err() error {
	return p.data.Err()
}

// Metrics returns the fetched aggregate.
func (p *DashboardPage) Metrics() (domain.Dashboard, bool) {
	return p.data.Value()
}

// Close disposes the page.
func (p *DashboardPage) Close() {
	p.data.Close()
}
