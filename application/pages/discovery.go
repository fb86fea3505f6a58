package pages

import (
	"context"
	"strings"
	"sync"

	"startuphub/application/controller"
	"startuphub/domain"
)

// DiscoveryPage is the startup's investor discovery screen: the ranked
// matches flattened to cards, narrowed by sector, investor type and free
// text. Filters are pure predicates over the one fetch; changing them
// never refetches.
type DiscoveryPage struct {
	api *API

	Matches     *controller.Resource[domain.MatchedInvestor]
	ConnectForm *controller.Form[domain.ConnectionRequest]

	mu     sync.Mutex
	sector string
	kind   domain.InvestorType
	search string
}

// NewDiscoveryPage creates the page.
func NewDiscoveryPage(deps Deps) *DiscoveryPage {
	p := &DiscoveryPage{api: deps.API}
	p.Matches = controller.NewResource(func(ctx context.Context) ([]domain.MatchedInvestor, error) {
		matches, err := deps.API.Matching.ForMe(ctx)
		if err != nil {
			return nil, err
		}
		cards := make([]domain.MatchedInvestor, 0, len(matches))
		for _, m := range matches {
			cards = append(cards, m.Flatten())
		}
		return cards, nil
	}, deps.opts())
	p.ConnectForm = controller.NewForm[domain.ConnectionRequest]()
	return p
}

// Load fetches the ranked matches.
func (p *DiscoveryPage) Load(ctx context.Context) {
	p.Matches.Load(ctx)
}

// SectorOptions lists the sectors the filter bar offers.
func (p *DiscoveryPage) SectorOptions() []string {
	return domain.Sectors
}

// SetSector narrows the list to one sector; empty shows all.
func (p *DiscoveryPage) SetSector(sector string) {
	p.mu.Lock()
	p.sector = sector
	p.mu.Unlock()
	p.applyFilter()
}

// SetType narrows the list to one investor type; empty shows all.
func (p *DiscoveryPage) SetType(kind domain.InvestorType) {
	p.mu.Lock()
	p.kind = kind
	p.mu.Unlock()
	p.applyFilter()
}

// SetSearch narrows the list to cards whose name, description or location
// contains the query, case-insensitively.
func (p *DiscoveryPage) SetSearch(query string) {
	p.mu.Lock()
	p.search = strings.ToLower(strings.TrimSpace(query))
	p.mu.Unlock()
	p.applyFilter()
}

func (p *DiscoveryPage) applyFilter() {
	p.mu.Lock()
	sector, kind, search := p.sector, p.kind, p.search
	p.mu.Unlock()

	if sector == "" && kind == "" && search == "" {
		p.Matches.SetFilter(nil)
		return
	}
	p.Matches.SetFilter(func(card domain.MatchedInvestor) bool {
		if sector != "" && !hasSector(card.Sectors, sector) {
			return false
		}
		if kind != "" && card.Type != kind {
			return false
		}
		if search != "" && !cardMatches(card, search) {
			return false
		}
		return true
	})
}

func hasSector(sectors []string, want string) bool {
	for _, s := range sectors {
		if strings.EqualFold(strings.TrimSpace(s), want) {
			return true
		}
	}
	return false
}

func cardMatches(card domain.MatchedInvestor, query string) bool {
	return strings.Contains(strings.ToLower(card.Name), query) ||
		strings.Contains(strings.ToLower(card.Description), query) ||
		strings.Contains(strings.ToLower(card.Location), query)
}

// OpenConnect opens the connection request modal for an investor card.
func (p *DiscoveryPage) OpenConnect(card domain.MatchedInvestor) {
	p.ConnectForm.OpenNew(domain.ConnectionRequest{InvestorID: card.InvestorID})
}

// SubmitConnect validates and sends the connection request. The match list
// itself is unchanged; the outcome shows as a banner.
func (p *DiscoveryPage) SubmitConnect(ctx context.Context) error {
	err := p.ConnectForm.Submit(ctx, func(ctx context.Context, req domain.ConnectionRequest) error {
		_, err := p.api.Connections.Request(ctx, req)
		return err
	})
	if err != nil {
		return err
	}
	p.Matches.ShowBanner(controller.BannerSuccess, "Connection request sent")
	return nil
}

// Close disposes the page.
func (p *DiscoveryPage) Close() {
	p.Matches.Close()
}
