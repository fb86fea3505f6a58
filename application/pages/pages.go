// Package pages holds one controller per screen of the platform. Each page
// composes the generic list/record controllers with the typed API clients
// and exposes read methods for the renderer plus intent methods for user
// actions. Pages never touch the transport directly.
package pages

import (
	"startuphub/application/controller"
	"startuphub/infrastructure/api"

	"go.uber.org/zap"
)

// API bundles the typed sub-clients the pages draw on.
type API struct {
	Auth        *api.AuthAPI
	Users       *api.UsersAPI
	Startups    *api.StartupsAPI
	Investors   *api.InvestorsAPI
	Matching    *api.MatchingAPI
	Connections *api.ConnectionsAPI
	Meetings    *api.MeetingsAPI
	Dashboard   *api.DashboardAPI
	Pitchs      *api.PitchsAPI
}

// NewAPI wires every sub-client over one gateway client.
func NewAPI(client *api.Client) *API {
	return &API{
		Auth:        api.NewAuthAPI(client),
		Users:       api.NewUsersAPI(client),
		Startups:    api.NewStartupsAPI(client),
		Investors:   api.NewInvestorsAPI(client),
		Matching:    api.NewMatchingAPI(client),
		Connections: api.NewConnectionsAPI(client),
		Meetings:    api.NewMeetingsAPI(client),
		Dashboard:   api.NewDashboardAPI(client),
		Pitchs:      api.NewPitchsAPI(client),
	}
}

// Deps carries what every page constructor needs.
type Deps struct {
	API    *API
	Logger *zap.Logger
	Opts   controller.Options
}

func (d Deps) opts() controller.Options {
	o := d.Opts
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	return o
}
