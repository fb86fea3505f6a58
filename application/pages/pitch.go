package pages

import (
	"context"
	"sync"

	"startuphub/application/controller"
	"startuphub/domain"
)

// PitchPage is the pitch generator screen: aggregate stats and the pitch
// history as independent parallel fetches, plus the generation modal. A
// failed stats fetch never blanks the history, and vice versa.
type PitchPage struct {
	api *API

	Stats   *controller.Value[domain.PitchStats]
	History *controller.Resource[domain.Pitch]

	GenerateForm *controller.Form[domain.PitchDraft]

	mu       sync.Mutex
	kind     domain.PitchType
	lastText string
}

// NewPitchPage creates the page.
func NewPitchPage(deps Deps) *PitchPage {
	opts := deps.opts()
	return &PitchPage{
		api:          deps.API,
		Stats:        controller.NewValue(deps.API.Pitchs.Stats, false, opts),
		History:      controller.NewResource(deps.API.Pitchs.Me, opts),
		GenerateForm: controller.NewForm[domain.PitchDraft](),
		kind:         domain.PitchElevator,
	}
}

// Load fetches stats and history in parallel. Either may land first and
// either may fail alone.
func (p *PitchPage) Load(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		p.Stats.Load(ctx)
	}()
	go func() {
		defer wg.Done()
		p.History.Load(ctx)
	}()
	wg.Wait()
}

// SetType selects which generator the next submission targets.
func (p *PitchPage) SetType(kind domain.PitchType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.kind = kind
}

// Type returns the selected generator.
func (p *PitchPage) Type() domain.PitchType {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.kind
}

// OpenGenerate opens the generation modal.
func (p *PitchPage) OpenGenerate() {
	p.GenerateForm.OpenNew(domain.PitchDraft{})
}

// SubmitGenerate validates the inputs and asks the backend to generate.
// On success the new pitch text is kept for display and both the history
// and the stats are re-fetched.
func (p *PitchPage) SubmitGenerate(ctx context.Context) error {
	kind := p.Type()

	err := p.GenerateForm.Submit(ctx, func(ctx context.Context, draft domain.PitchDraft) error {
		generated, err := p.api.Pitchs.Generate(ctx, kind, draft)
		if err != nil {
			return err
		}
		p.mu.Lock()
		p.lastText = generated.Pitch
		p.mu.Unlock()
		return nil
	})
	if err != nil {
		return err
	}

	p.History.ShowBanner(controller.BannerSuccess, "Pitch generated")
	p.History.Refresh(ctx)
	p.refreshStats(ctx)
	return nil
}

// LastGenerated returns the most recently generated pitch text.
func (p *PitchPage) LastGenerated() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastText
}

// ToggleFavorite flips a pitch's favorite flag, then re-fetches the list
// and the stats.
func (p *PitchPage) ToggleFavorite(ctx context.Context, pitchID string) error {
	err := p.History.MutateRefetch(ctx, func(ctx context.Context) error {
		_, err := p.api.Pitchs.ToggleFavorite(ctx, pitchID)
		return err
	}, "")
	if err != nil {
		return err
	}
	p.refreshStats(ctx)
	return nil
}

// Rate records a rating on a pitch, then re-fetches the list and the
// stats.
func (p *PitchPage) Rate(ctx context.Context, pitchID string, rating int) error {
	err := p.History.MutateRefetch(ctx, func(ctx context.Context) error {
		_, err := p.api.Pitchs.Rate(ctx, pitchID, rating)
		return err
	}, "Rating saved")
	if err != nil {
		return err
	}
	p.refreshStats(ctx)
	return nil
}

// refreshStats re-fetches the aggregate without disturbing the page. A
// failure here leaves the stale numbers in place.
func (p *PitchPage) refreshStats(ctx context.Context) {
	_ = p.Stats.Mutate(ctx, func(ctx context.Context) (domain.PitchStats, error) {
		return p.api.Pitchs.Stats(ctx)
	}, "")
}

// Close disposes the page.
func (p *PitchPage) Close() {
	p.Stats.Close()
	p.History.Close()
}
