package pages

import (
	"context"
	"sync"

	"startuphub/application/controller"
	"startuphub/domain"
)

// StatusCounters are the per-status totals shown above the connection
// list. They always reflect the full fetch, not the active filter.
type StatusCounters struct {
	Pending  int
	Accepted int
	Rejected int
}

// ConnectionsPage is the investor's inbox of connection requests. Each
// request is enriched with the startup's details; a failed detail fetch
// degrades that one card instead of failing the page.
type ConnectionsPage struct {
	api *API

	Cards       *controller.Resource[domain.ConnectionCard]
	MeetingForm *controller.Form[domain.MeetingDraft]

	mu       sync.Mutex
	selected *domain.ConnectionCard
}

// NewConnectionsPage creates the page.
func NewConnectionsPage(deps Deps) *ConnectionsPage {
	p := &ConnectionsPage{api: deps.API}
	p.Cards = controller.NewResource(p.fetchCards, deps.opts())
	p.MeetingForm = controller.NewForm[domain.MeetingDraft]()
	return p
}

// fetchCards loads the received requests, then the startup details for
// each, concurrently. Detail failures leave the card without details.
func (p *ConnectionsPage) fetchCards(ctx context.Context) ([]domain.ConnectionCard, error) {
	conns, err := p.api.Connections.Received(ctx)
	if err != nil {
		return nil, err
	}

	cards := make([]domain.ConnectionCard, len(conns))
	var wg sync.WaitGroup
	for i, conn := range conns {
		cards[i] = domain.ConnectionCard{
			ID:        conn.ID,
			StartupID: conn.StartupID,
			Message:   conn.Message,
			Status:    domain.ParseConnectionStatus(conn.Status),
			CreatedAt: conn.CreatedAt,
		}
		wg.Add(1)
		go func(i int, startupID string) {
			defer wg.Done()
			details, err := p.api.Investors.StartupDetails(ctx, startupID)
			if err != nil {
				return
			}
			cards[i].StartupName = details.Name
			cards[i].StartupDescription = details.Description
			cards[i].Details = &details
		}(i, conn.StartupID)
	}
	wg.Wait()
	return cards, nil
}

// Load fetches the enriched request list.
func (p *ConnectionsPage) Load(ctx context.Context) {
	p.Cards.Load(ctx)
}

// FilterStatus narrows the list to one status; empty shows all.
func (p *ConnectionsPage) FilterStatus(status domain.ConnectionStatus) {
	if status == "" {
		p.Cards.SetFilter(nil)
		return
	}
	p.Cards.SetFilter(func(c domain.ConnectionCard) bool {
		return c.Status == status
	})
}

// Counters totals the full fetch by status, independent of the filter.
func (p *ConnectionsPage) Counters() StatusCounters {
	var counters StatusCounters
	for _, c := range p.Cards.All() {
		switch c.Status {
		case domain.ConnectionAccepted:
			counters.Accepted++
		case domain.ConnectionRejected:
			counters.Rejected++
		default:
			counters.Pending++
		}
	}
	return counters
}

// Accept accepts a pending request and re-fetches the whole list.
func (p *ConnectionsPage) Accept(ctx context.Context, connectionID string) error {
	return p.Cards.MutateRefetch(ctx, func(ctx context.Context) error {
		_, err := p.api.Connections.Accept(ctx, connectionID)
		return err
	}, "Connection accepted")
}

// Reject rejects a pending request and re-fetches the whole list.
func (p *ConnectionsPage) Reject(ctx context.Context, connectionID string) error {
	return p.Cards.MutateRefetch(ctx, func(ctx context.Context) error {
		_, err := p.api.Connections.Reject(ctx, connectionID)
		return err
	}, "Connection rejected")
}

// ShowDetails opens the startup details modal for a card.
func (p *ConnectionsPage) ShowDetails(card domain.ConnectionCard) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected = &card
}

// CloseDetails closes the details modal.
func (p *ConnectionsPage) CloseDetails() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected = nil
}

// SelectedDetails returns the card in the details modal, if open.
func (p *ConnectionsPage) SelectedDetails() *domain.ConnectionCard {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selected
}

// OpenScheduleMeeting opens the meeting modal for an accepted connection.
func (p *ConnectionsPage) OpenScheduleMeeting(connectionID string) {
	p.MeetingForm.OpenNew(domain.MeetingDraft{ConnectionID: connectionID})
}

// SubmitMeeting validates and sends the meeting proposal.
func (p *ConnectionsPage) SubmitMeeting(ctx context.Context) error {
	err := p.MeetingForm.Submit(ctx, func(ctx context.Context, draft domain.MeetingDraft) error {
		_, err := p.api.Meetings.Schedule(ctx, draft)
		return err
	})
	if err != nil {
		return err
	}
	p.Cards.ShowBanner(controller.BannerSuccess, "Meeting proposed")
	return nil
}

// Close disposes the page.
func (p *ConnectionsPage) Close() {
	p.Cards.Close()
}
