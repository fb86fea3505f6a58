// Package term is the terminal front-end: the route table that gates
// protected screens on session presence, and the renderer that draws page
// state. It owns no state of its own beyond the current route; everything
// it shows comes from the page controllers.
package term

import (
	"context"
	"sync"

	"startuphub/domain"
	"startuphub/pkg/auth"

	"go.uber.org/zap"
)

// Route paths. The names mirror the web front-end's URLs.
const (
	RouteLogin             = "/login"
	RouteRegister          = "/register"
	RouteDashboard         = "/dashboard"
	RouteProfile           = "/profile"
	RouteInvestorProfile   = "/investor/profile"
	RouteConnections       = "/investor/connections"
	RouteInvestorCalendar  = "/investor/calendar"
	RouteCalendar          = "/calendar"
	RoutePitchGenerator    = "/generateur"
	RouteInvestorDiscovery = "/investisseurs"
	RouteSettings          = "/settings"
)

// Page is what the router manages: anything that can load itself and be
// disposed when navigated away from.
type Page interface {
	Load(ctx context.Context)
	Close()
}

// Factory builds a fresh page instance for its route. Pages are rebuilt on
// every visit; their state does not outlive the route.
type Factory func() Page

type route struct {
	factory   Factory
	protected bool
}

// Router is the route table. Protected routes require a stored session;
// without one they land on the login route instead.
type Router struct {
	mu      sync.Mutex
	routes  map[string]route
	session *auth.Store
	current string
	page    Page
	logger  *zap.Logger
}

// NewRouter creates an empty route table over the session store. The
// router subscribes to session clearing, so a global 401 lands the user on
// the login route no matter which screen was active.
func NewRouter(session *auth.Store, logger *zap.Logger) *Router {
	r := &Router{
		routes:  make(map[string]route),
		session: session,
		logger:  logger,
	}
	session.OnClear(func() {
		r.mu.Lock()
		onLogin := r.current == RouteLogin
		r.mu.Unlock()
		if !onLogin {
			r.Navigate(context.Background(), RouteLogin)
		}
	})
	return r
}

// Handle registers a public route.
func (r *Router) Handle(path string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[path] = route{factory: factory}
}

// HandleProtected registers a route that requires a session.
func (r *Router) HandleProtected(path string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[path] = route{factory: factory, protected: true}
}

// Navigate closes the current page, resolves the target route and loads
// its page. Unknown paths land on the home route; protected paths without
// a session land on login.
func (r *Router) Navigate(ctx context.Context, path string) {
	r.mu.Lock()
	target, ok := r.routes[path]
	if !ok {
		path = r.homeLocked()
		target = r.routes[path]
	}
	if target.protected && !r.session.IsAuthenticated() {
		r.logger.Debug("Protected route without session", zap.String("path", path))
		path = RouteLogin
		target = r.routes[path]
	}
	if target.factory == nil {
		r.mu.Unlock()
		return
	}

	old := r.page
	page := target.factory()
	r.page = page
	r.current = path
	r.mu.Unlock()

	if old != nil {
		old.Close()
	}
	page.Load(ctx)
}

// Current returns the active route path.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// CurrentPage returns the active page, if any.
func (r *Router) CurrentPage() Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.page
}

// Home resolves the landing route for the current session: login when
// logged out, the role's profile area otherwise.
func (r *Router) Home() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.homeLocked()
}

func (r *Router) homeLocked() string {
	user, ok := r.session.Current()
	if !ok {
		return RouteLogin
	}
	if user.Role == domain.RoleInvestor {
		return RouteInvestorProfile
	}
	return RouteDashboard
}
