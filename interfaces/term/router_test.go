package term

import (
	"bytes"
	"context"
	"testing"

	"startuphub/application/controller"
	"startuphub/domain"
	"startuphub/infrastructure/storage"
	"startuphub/pkg/auth"
	apperrors "startuphub/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubPage records lifecycle calls.
type stubPage struct {
	loaded int
	closed int
}

func (p *stubPage) Load(ctx context.Context) { p.loaded++ }
func (p *stubPage) Close()                   { p.closed++ }

func newTestRouter(t *testing.T) (*Router, *auth.Store) {
	t.Helper()
	session := auth.NewStore(storage.NewMemoryStore(), zap.NewNop())
	return NewRouter(session, zap.NewNop()), session
}

func TestRouter_ProtectedRouteWithoutSessionLandsOnLogin(t *testing.T) {
	// Arrange
	router, _ := newTestRouter(t)
	login := &stubPage{}
	dashboard := &stubPage{}
	router.Handle(RouteLogin, func() Page { return login })
	router.HandleProtected(RouteDashboard, func() Page { return dashboard })

	// Act
	router.Navigate(context.Background(), RouteDashboard)

	// Assert
	assert.Equal(t, RouteLogin, router.Current())
	assert.Equal(t, 1, login.loaded)
	assert.Zero(t, dashboard.loaded)
}

func TestRouter_ProtectedRouteWithSessionLoads(t *testing.T) {
	// Arrange
	router, session := newTestRouter(t)
	require.NoError(t, session.Save("tok", domain.User{ID: "u1", Role: domain.RoleStartup}))

	login := &stubPage{}
	dashboard := &stubPage{}
	router.Handle(RouteLogin, func() Page { return login })
	router.HandleProtected(RouteDashboard, func() Page { return dashboard })

	// Act
	router.Navigate(context.Background(), RouteDashboard)

	// Assert
	assert.Equal(t, RouteDashboard, router.Current())
	assert.Equal(t, 1, dashboard.loaded)
}

func TestRouter_NavigationClosesPreviousPage(t *testing.T) {
	// Arrange
	router, session := newTestRouter(t)
	require.NoError(t, session.Save("tok", domain.User{ID: "u1", Role: domain.RoleStartup}))

	first := &stubPage{}
	second := &stubPage{}
	router.HandleProtected(RouteProfile, func() Page { return first })
	router.HandleProtected(RouteCalendar, func() Page { return second })
	router.Navigate(context.Background(), RouteProfile)

	// Act
	router.Navigate(context.Background(), RouteCalendar)

	// Assert
	assert.Equal(t, 1, first.closed)
	assert.Equal(t, 1, second.loaded)
}

func TestRouter_SessionClearNavigatesToLogin(t *testing.T) {
	// Arrange
	router, session := newTestRouter(t)
	require.NoError(t, session.Save("tok", domain.User{ID: "u1", Role: domain.RoleStartup}))

	login := &stubPage{}
	dashboard := &stubPage{}
	router.Handle(RouteLogin, func() Page { return login })
	router.HandleProtected(RouteDashboard, func() Page { return dashboard })
	router.Navigate(context.Background(), RouteDashboard)

	// Act: the 401 interceptor clears the session.
	session.Clear()

	// Assert
	assert.Equal(t, RouteLogin, router.Current())
	assert.Equal(t, 1, dashboard.closed)
	assert.Equal(t, 1, login.loaded)
}

func TestRouter_HomeIsRoleAware(t *testing.T) {
	router, session := newTestRouter(t)
	assert.Equal(t, RouteLogin, router.Home())

	require.NoError(t, session.Save("tok", domain.User{ID: "u1", Role: domain.RoleStartup}))
	assert.Equal(t, RouteDashboard, router.Home())

	require.NoError(t, session.Save("tok", domain.User{ID: "u2", Role: domain.RoleInvestor}))
	assert.Equal(t, RouteInvestorProfile, router.Home())
}

func TestRenderer_DistinctLifecycleRenderings(t *testing.T) {
	tests := []struct {
		name  string
		phase controller.Phase
		err   error
		lines []string
		want  string
	}{
		{name: "loading", phase: controller.PhaseLoading, want: "Loading...\n"},
		{
			name:  "error",
			phase: controller.PhaseError,
			err:   apperrors.NewNetwork("Could not reach the server", nil),
			want:  "Error: Could not reach the server\n",
		},
		{name: "empty", phase: controller.PhaseContent, want: "No meetings yet\n"},
		{
			name:  "content",
			phase: controller.PhaseContent,
			lines: []string{"Acme, Tuesday 10:00"},
			want:  "  Acme, Tuesday 10:00\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewRenderer(&buf)

			r.List(tt.phase, tt.err, tt.lines, "No meetings yet")

			assert.Equal(t, tt.want, buf.String())
		})
	}
}
