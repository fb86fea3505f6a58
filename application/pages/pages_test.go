package pages

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"startuphub/application/controller"
	"startuphub/domain"
	"startuphub/infrastructure/api"
	apperrors "startuphub/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newGateway builds a Deps over a fake backend served by mux.
func newGateway(t *testing.T, mux *http.ServeMux) (Deps, func()) {
	t.Helper()
	server := httptest.NewServer(mux)
	client := api.NewClient(api.Config{BaseURL: server.URL, Logger: zap.NewNop()}, nil, nil)
	deps := Deps{API: NewAPI(client), Logger: zap.NewNop()}
	return deps, server.Close
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestConnectionsPage_EmptyListHasZeroCounters(t *testing.T) {
	// Arrange
	mux := http.NewServeMux()
	mux.HandleFunc("/api/connections/received", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []domain.Connection{})
	})
	deps, closeServer := newGateway(t, mux)
	defer closeServer()

	page := NewConnectionsPage(deps)
	defer page.Close()

	// Act
	page.Load(context.Background())

	// Assert: content, not error; all counters zero.
	assert.Equal(t, controller.PhaseContent, page.Cards.Phase())
	assert.Empty(t, page.Cards.Items())
	assert.Equal(t, StatusCounters{}, page.Counters())
}

func TestConnectionsPage_EnrichesCardsAndSurvivesDetailFailure(t *testing.T) {
	// Arrange: two requests; details resolve for one and 404 for the other.
	mux := http.NewServeMux()
	mux.HandleFunc("/api/connections/received", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []domain.Connection{
			{ID: "c1", StartupID: "s1", Status: "PENDING"},
			{ID: "c2", StartupID: "s2", Status: "ACCEPTED"},
		})
	})
	mux.HandleFunc("/api/investors/startups/s1/details", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]string{"id": "s1", "nom": "Acme", "description": "rockets"})
	})
	mux.HandleFunc("/api/investors/startups/s2/details", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	deps, closeServer := newGateway(t, mux)
	defer closeServer()

	page := NewConnectionsPage(deps)
	defer page.Close()

	// Act
	page.Load(context.Background())

	// Assert: the page is content; the failed detail degrades one card.
	require.Equal(t, controller.PhaseContent, page.Cards.Phase())
	cards := page.Cards.Items()
	require.Len(t, cards, 2)
	assert.Equal(t, "Acme", cards[0].StartupName)
	require.NotNil(t, cards[0].Details)
	assert.Nil(t, cards[1].Details)
	assert.Equal(t, domain.ConnectionAccepted, cards[1].Status)

	counters := page.Counters()
	assert.Equal(t, 1, counters.Pending)
	assert.Equal(t, 1, counters.Accepted)
}

func TestConnectionsPage_StatusFilterKeepsCountersGlobal(t *testing.T) {
	// Arrange
	mux := http.NewServeMux()
	mux.HandleFunc("/api/connections/received", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []domain.Connection{
			{ID: "c1", StartupID: "s1", Status: "PENDING"},
			{ID: "c2", StartupID: "s2", Status: "ACCEPTED"},
			{ID: "c3", StartupID: "s3", Status: "PENDING"},
		})
	})
	mux.HandleFunc("/api/investors/startups/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	deps, closeServer := newGateway(t, mux)
	defer closeServer()

	page := NewConnectionsPage(deps)
	defer page.Close()
	page.Load(context.Background())

	// Act
	page.FilterStatus(domain.ConnectionPending)

	// Assert: visible list narrowed in source order, counters unchanged.
	cards := page.Cards.Items()
	require.Len(t, cards, 2)
	assert.Equal(t, "c1", cards[0].ID)
	assert.Equal(t, "c3", cards[1].ID)
	assert.Equal(t, StatusCounters{Pending: 2, Accepted: 1}, page.Counters())
}

func TestDiscoveryPage_FiltersAreSubsetInSourceOrder(t *testing.T) {
	// Arrange
	mux := http.NewServeMux()
	mux.HandleFunc("/api/matching/for-me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []domain.Match{
			{MatchID: "m1", Score: 90, Investor: domain.Investor{ID: "i1", Name: "Alpha VC", Type: domain.InvestorVC, SectorInterests: "FinTech, HealthTech"}},
			{MatchID: "m2", Score: 80, Investor: domain.Investor{ID: "i2", Name: "Beta Angels", Type: domain.InvestorBusinessAngel, SectorInterests: "FinTech"}},
			{MatchID: "m3", Score: 70, Investor: domain.Investor{ID: "i3", Name: "Gamma VC", Type: domain.InvestorVC, SectorInterests: "EdTech"}},
		})
	})
	deps, closeServer := newGateway(t, mux)
	defer closeServer()

	page := NewDiscoveryPage(deps)
	defer page.Close()
	page.Load(context.Background())
	require.Equal(t, controller.PhaseContent, page.Matches.Phase())

	// Act: sector and type filters stack.
	page.SetSector("FinTech")
	page.SetType(domain.InvestorVC)

	// Assert
	got := page.Matches.Items()
	require.Len(t, got, 1)
	assert.Equal(t, "i1", got[0].InvestorID)

	// Relaxing the type keeps source order.
	page.SetType("")
	got = page.Matches.Items()
	require.Len(t, got, 2)
	assert.Equal(t, "i1", got[0].InvestorID)
	assert.Equal(t, "i2", got[1].InvestorID)

	// Search matches names case-insensitively.
	page.SetSector("")
	page.SetSearch("gamma")
	got = page.Matches.Items()
	require.Len(t, got, 1)
	assert.Equal(t, "i3", got[0].InvestorID)
}

func TestDiscoveryPage_ConnectValidationSendsNoRequest(t *testing.T) {
	// Arrange: count gateway hits to prove the short-circuit.
	var requests atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/api/connections/request", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		writeJSON(t, w, domain.Connection{ID: "c1"})
	})
	deps, closeServer := newGateway(t, mux)
	defer closeServer()

	page := NewDiscoveryPage(deps)
	defer page.Close()

	// The investor ID is required; an empty one must never reach the wire.
	page.ConnectForm.OpenNew(domain.ConnectionRequest{})

	// Act
	err := page.SubmitConnect(context.Background())

	// Assert
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Zero(t, requests.Load())
	assert.True(t, page.ConnectForm.IsOpen())
}

func TestPitchPage_StatsFailureLeavesHistoryIntact(t *testing.T) {
	// Arrange
	mux := http.NewServeMux()
	mux.HandleFunc("/api/pitchs/me/stats", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/api/pitchs/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []domain.Pitch{{ID: "p1", Generated: "We make rockets cheap."}})
	})
	deps, closeServer := newGateway(t, mux)
	defer closeServer()

	page := NewPitchPage(deps)
	defer page.Close()

	// Act
	page.Load(context.Background())

	// Assert: the two fetches settle independently.
	assert.Equal(t, controller.PhaseError, page.Stats.Phase())
	assert.Equal(t, controller.PhaseContent, page.History.Phase())
	require.Len(t, page.History.Items(), 1)
}

func TestPitchPage_GenerateRefreshesHistoryAndStats(t *testing.T) {
	// Arrange: history and stats grow after generation.
	var generated atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ai/generate-deck", func(w http.ResponseWriter, r *http.Request) {
		generated.Store(true)
		writeJSON(t, w, domain.GeneratedPitch{Pitch: "Slide one: the problem."})
	})
	mux.HandleFunc("/api/pitchs/me", func(w http.ResponseWriter, r *http.Request) {
		if generated.Load() {
			writeJSON(t, w, []domain.Pitch{{ID: "p1"}, {ID: "p2"}})
			return
		}
		writeJSON(t, w, []domain.Pitch{{ID: "p1"}})
	})
	mux.HandleFunc("/api/pitchs/me/stats", func(w http.ResponseWriter, r *http.Request) {
		stats := domain.PitchStats{TotalPitchs: 1}
		if generated.Load() {
			stats.TotalPitchs = 2
		}
		writeJSON(t, w, stats)
	})
	deps, closeServer := newGateway(t, mux)
	defer closeServer()

	page := NewPitchPage(deps)
	defer page.Close()
	page.Load(context.Background())

	page.SetType(domain.PitchDeck)
	page.OpenGenerate()
	page.GenerateForm.Update(func(d *domain.PitchDraft) {
		d.Problem = "fundraising is slow"
		d.Solution = "automated matching"
	})

	// Act
	err := page.SubmitGenerate(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Slide one: the problem.", page.LastGenerated())
	assert.Len(t, page.History.Items(), 2)
	stats, ok := page.Stats.Value()
	require.True(t, ok)
	assert.Equal(t, 2, stats.TotalPitchs)
	assert.False(t, page.GenerateForm.IsOpen())
	assert.Equal(t, controller.PhaseContent, page.History.Phase(), "generation must not revert the page to loading")
}

func TestInvestorProfilePage_SetAmountRange(t *testing.T) {
	deps, closeServer := newGateway(t, http.NewServeMux())
	defer closeServer()

	tests := []struct {
		name    string
		minRaw  string
		maxRaw  string
		wantErr bool
		wantMin *float64
		wantMax *float64
	}{
		{
			name:   "both bounds with thousands spacing",
			minRaw: "10 000",
			maxRaw: "500000",
			wantMin: func() *float64 { v := 10000.0; return &v }(),
			wantMax: func() *float64 { v := 500000.0; return &v }(),
		},
		{name: "empty means unbounded", minRaw: "", maxRaw: ""},
		{name: "non-numeric input", minRaw: "ten", maxRaw: "", wantErr: true},
		{name: "negative amount", minRaw: "-5", maxRaw: "", wantErr: true},
		{name: "inverted range", minRaw: "100", maxRaw: "50", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewInvestorProfilePage(deps)
			defer page.Close()
			page.Form.OpenNew(domain.InvestorDraft{Name: "Alpha VC"})

			err := page.SetAmountRange(tt.minRaw, tt.maxRaw)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				// The working draft is untouched on a rejected input.
				assert.Nil(t, page.Form.Working().AmountMin)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMin, page.Form.Working().AmountMin)
			assert.Equal(t, tt.wantMax, page.Form.Working().AmountMax)
		})
	}
}

func TestFormOptionLists(t *testing.T) {
	deps, closeServer := newGateway(t, http.NewServeMux())
	defer closeServer()

	profile := NewStartupProfilePage(deps)
	defer profile.Close()
	discovery := NewDiscoveryPage(deps)
	defer discovery.Close()

	assert.Contains(t, profile.SectorOptions(), "FinTech")
	assert.Contains(t, profile.RoleOptions(), "CTO")
	assert.Equal(t, profile.SectorOptions(), discovery.SectorOptions(),
		"the profile form and the filter bar offer the same sector list")
}

func TestStartupProfilePage_MissingProfileOpensCreateForm(t *testing.T) {
	// Arrange
	mux := http.NewServeMux()
	mux.HandleFunc("/api/startups/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	deps, closeServer := newGateway(t, mux)
	defer closeServer()

	page := NewStartupProfilePage(deps)
	defer page.Close()

	// Act
	page.Load(context.Background())

	// Assert: absence is content and the create form is the active view.
	assert.Equal(t, controller.PhaseContent, page.Profile.Phase())
	assert.True(t, page.InFormMode())
	// The dependent fetches never started.
	assert.Equal(t, controller.PhaseLoading, page.Team.Phase())
}

func TestStartupProfilePage_TeamMutationPatchesLocally(t *testing.T) {
	// Arrange
	var teamFetches atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/api/startups/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, domain.Startup{ID: "s1", Name: "Acme"})
	})
	mux.HandleFunc("/api/startups/me/team", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			writeJSON(t, w, domain.TeamMember{ID: "tm2", Name: "Grace", Role: "CTO"})
			return
		}
		teamFetches.Add(1)
		writeJSON(t, w, []domain.TeamMember{{ID: "tm1", Name: "Ada", Role: "CEO"}})
	})
	mux.HandleFunc("/api/startups/me/milestones", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []domain.Milestone{})
	})
	deps, closeServer := newGateway(t, mux)
	defer closeServer()

	page := NewStartupProfilePage(deps)
	defer page.Close()
	page.Load(context.Background())
	require.Equal(t, int64(1), teamFetches.Load())

	// Act
	page.AddTeamMember()
	page.TeamForm.Update(func(d *domain.TeamMemberDraft) {
		d.Name = "Grace"
		d.Role = "CTO"
	})
	err := page.SubmitTeamMember(context.Background())

	// Assert: the roster grew locally, with no second list fetch.
	require.NoError(t, err)
	team := page.Team.Items()
	require.Len(t, team, 2)
	assert.Equal(t, "tm2", team[1].ID)
	assert.Equal(t, int64(1), teamFetches.Load())
}
