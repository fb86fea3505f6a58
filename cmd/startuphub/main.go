// Command startuphub is the terminal front-end for the StartupHub
// platform. It wires configuration, storage, the session store and the
// gateway client together, registers every route and runs a small
// navigation loop.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"startuphub/application/controller"
	"startuphub/application/pages"
	"startuphub/domain"
	"startuphub/infrastructure/api"
	"startuphub/infrastructure/config"
	"startuphub/infrastructure/storage"
	"startuphub/interfaces/term"
	"startuphub/pkg/auth"
	apperrors "startuphub/pkg/errors"
	"startuphub/pkg/observability"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startuphub: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	store, err := storage.NewFileStore(cfg.StorageDir)
	if err != nil {
		return fmt.Errorf("open session storage: %w", err)
	}
	session := auth.NewStore(store, logger)

	var metrics *observability.APIMetrics
	if cfg.EnableMetrics {
		metrics = observability.NewAPIMetrics(prometheus.DefaultRegisterer)
	}

	client := api.NewClient(api.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.HTTPTimeout,
		Metrics: metrics,
		Logger:  logger,
	}, session, session)

	apiSet := pages.NewAPI(client)
	authSvc := auth.NewService(session, apiSet.Auth, logger)

	if cfg.IsDevelopment() {
		watcher, werr := config.NewWatcher(cfg, os.Getenv("CONFIG_FILE"), logger)
		if werr != nil {
			logger.Warn("Config watcher unavailable", zap.Error(werr))
		} else {
			watcher.OnChange(func(updated *config.Config) {
				logger.Info("Configuration reloaded", zap.String("base_url", updated.BaseURL))
			})
			defer watcher.Stop()
		}
	}

	deps := pages.Deps{
		API:    apiSet,
		Logger: logger,
		Opts:   controller.Options{BannerTTL: cfg.BannerTTL, Logger: logger},
	}

	router := term.NewRouter(session, logger)
	client.OnUnauthorized(func() {
		// The session store's OnClear subscription already moves the
		// router; nothing more to do here.
	})

	app := newApp(router, deps, authSvc, os.Stdout)
	app.registerRoutes()

	ctx := context.Background()
	router.Navigate(ctx, router.Home())

	logger.Info("Started",
		zap.String("base_url", cfg.BaseURL),
		zap.String("environment", cfg.Environment),
	)

	return app.loop(ctx, bufio.NewScanner(os.Stdin))
}

// app binds the router to stdin commands and stdout rendering.
type app struct {
	router *term.Router
	deps   pages.Deps
	auth   *auth.Service
	render *term.Renderer
	out    *os.File
}

func newApp(router *term.Router, deps pages.Deps, authSvc *auth.Service, out *os.File) *app {
	return &app{
		router: router,
		deps:   deps,
		auth:   authSvc,
		render: term.NewRenderer(out),
		out:    out,
	}
}

func (a *app) registerRoutes() {
	a.router.Handle(term.RouteLogin, func() term.Page {
		return &loginScreen{}
	})
	a.router.Handle(term.RouteRegister, func() term.Page {
		return &registerScreen{}
	})
	a.router.HandleProtected(term.RouteDashboard, func() term.Page {
		return pages.NewDashboardPage(a.deps)
	})
	a.router.HandleProtected(term.RouteProfile, func() term.Page {
		return pages.NewStartupProfilePage(a.deps)
	})
	a.router.HandleProtected(term.RouteInvestorProfile, func() term.Page {
		return pages.NewInvestorProfilePage(a.deps)
	})
	a.router.HandleProtected(term.RouteInvestorDiscovery, func() term.Page {
		return pages.NewDiscoveryPage(a.deps)
	})
	a.router.HandleProtected(term.RouteConnections, func() term.Page {
		return pages.NewConnectionsPage(a.deps)
	})
	a.router.HandleProtected(term.RouteCalendar, func() term.Page {
		return pages.NewStartupCalendarPage(a.deps)
	})
	a.router.HandleProtected(term.RouteInvestorCalendar, func() term.Page {
		return pages.NewInvestorCalendarPage(a.deps)
	})
	a.router.HandleProtected(term.RoutePitchGenerator, func() term.Page {
		return pages.NewPitchPage(a.deps)
	})
	a.router.HandleProtected(term.RouteSettings, func() term.Page {
		return pages.NewSettingsPage(a.deps, func() {
			a.auth.Store().Clear()
		})
	})
}

// loop reads navigation commands until stdin closes.
func (a *app) loop(ctx context.Context, in *bufio.Scanner) error {
	a.show()
	for in.Scan() {
		cmd := strings.TrimSpace(in.Text())
		switch {
		case cmd == "":
			a.show()
		case cmd == "quit" || cmd == "exit":
			return nil
		case cmd == "logout":
			a.auth.Logout(ctx)
			a.show()
		case strings.HasPrefix(cmd, "login "):
			a.login(ctx, strings.Fields(cmd)[1:])
			a.show()
		case strings.HasPrefix(cmd, "register "):
			a.registerAccount(ctx, strings.Fields(cmd)[1:])
			a.show()
		case strings.HasPrefix(cmd, "go "):
			a.router.Navigate(ctx, strings.TrimSpace(strings.TrimPrefix(cmd, "go ")))
			a.show()
		case cmd == "reload":
			a.router.Navigate(ctx, a.router.Current())
			a.show()
		default:
			fmt.Fprintln(a.out, "commands: login <email> <password> | register <email> <password> <role> | go <path> | reload | logout | quit")
		}
	}
	return in.Err()
}

func (a *app) login(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "usage: login <email> <password>")
		return
	}
	page := pages.NewLoginPage(a.auth)
	page.Form.Update(func(c *domain.Credentials) {
		c.Email = args[0]
		c.Password = args[1]
	})
	if _, err := page.Submit(ctx); err != nil {
		fmt.Fprintf(a.out, "login failed: %s\n", apperrors.UserMessage(err))
		return
	}
	a.router.Navigate(ctx, a.router.Home())
}

func (a *app) registerAccount(ctx context.Context, args []string) {
	if len(args) != 3 {
		fmt.Fprintln(a.out, "usage: register <email> <password> <role>")
		return
	}
	page := pages.NewRegisterPage(a.auth)
	page.Form.Update(func(r *domain.Registration) {
		r.Email = args[0]
		r.Password = args[1]
		r.Role = domain.Role(strings.ToUpper(args[2]))
	})
	if _, err := page.Submit(ctx); err != nil {
		fmt.Fprintf(a.out, "registration failed: %s\n", apperrors.UserMessage(err))
		return
	}
	a.router.Navigate(ctx, a.router.Home())
}

// show renders a one-line summary of the current screen. Each page knows
// how to describe itself; the renderer keeps the lifecycle states visually
// distinct.
func (a *app) show() {
	a.render.Header(a.router.Current())
	if claims, ok := a.auth.Store().Claims(); ok && !claims.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "signed in as %s until %s\n",
			claims.Email, claims.ExpiresAt.Format("15:04"))
	}
	switch page := a.router.CurrentPage().(type) {
	case *pages.DashboardPage:
		metrics, present := page.Metrics()
		lines := []string{}
		if present {
			lines = append(lines,
				fmt.Sprintf("Pitches: %d", metrics.PitchsGenerated),
				fmt.Sprintf("Matching investors: %d", metrics.MatchingInvestors),
				fmt.Sprintf("Active connections: %d", metrics.ConnectionsActive),
			)
		}
		a.render.Record(page.Phase(), page.Err(), present, lines, "No metrics yet")
	case *pages.ConnectionsPage:
		a.render.Banner(page.Cards.Banner())
		var lines []string
		for _, c := range page.Cards.Items() {
			lines = append(lines, fmt.Sprintf("%s [%s] %s", c.StartupName, c.Status, c.Message))
		}
		a.render.List(page.Cards.Phase(), page.Cards.Err(), lines, "No connection requests")
	case *pages.DiscoveryPage:
		a.render.Banner(page.Matches.Banner())
		var lines []string
		for _, m := range page.Matches.Items() {
			lines = append(lines, fmt.Sprintf("%s (%s) score %.0f", m.Name, m.Type, m.MatchScore))
		}
		a.render.List(page.Matches.Phase(), page.Matches.Err(), lines, "No matches")
	case *pages.PitchPage:
		a.render.Banner(page.History.Banner())
		var lines []string
		for _, p := range page.History.Items() {
			lines = append(lines, fmt.Sprintf("[%s] %s", p.Type, p.Generated))
		}
		a.render.List(page.History.Phase(), page.History.Err(), lines, "No pitches yet")
	case *loginScreen:
		fmt.Fprintln(a.out, "login <email> <password>, or register <email> <password> <role>")
	case *registerScreen:
		fmt.Fprintln(a.out, "register <email> <password> <role>")
	default:
		fmt.Fprintln(a.out, "(screen ready)")
	}
}

// loginScreen is the public login route. The credential form itself is
// driven by the login command.
type loginScreen struct{}

func (s *loginScreen) Load(ctx context.Context) {}
func (s *loginScreen) Close()                   {}

// registerScreen is the public register route, driven by the register
// command.
type registerScreen struct{}

func (s *registerScreen) Load(ctx context.Context) {}
func (s *registerScreen) Close()                   {}
