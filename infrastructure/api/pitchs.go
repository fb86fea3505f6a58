package api

import (
	"context"
	"strconv"

	"startuphub/domain"
)

// PitchsAPI covers AI pitch generation and the saved pitch library.
type PitchsAPI struct {
	c *Client
}

// NewPitchsAPI creates the pitchs sub-client.
func NewPitchsAPI(c *Client) *PitchsAPI {
	return &PitchsAPI{c: c}
}

// generatePath maps each pitch type to its generation endpoint. The type is
// carried by the URL, never by the request body.
func generatePath(t domain.PitchType) string {
	switch t {
	case domain.PitchDeck:
		return "/api/ai/generate-deck"
	case domain.PitchValueProp:
		return "/api/ai/generate-value-prop"
	default:
		return "/api/ai/generate-elevator"
	}
}

// Generate asks the backend to produce a pitch of the given type from the
// draft inputs.
func (a *PitchsAPI) Generate(ctx context.Context, t domain.PitchType, draft domain.PitchDraft) (domain.GeneratedPitch, error) {
	var g domain.GeneratedPitch
	if err := a.c.post(ctx, generatePath(t), draft, &g); err != nil {
		return domain.GeneratedPitch{}, err
	}
	return g, nil
}

// Me fetches the current user's saved pitches.
func (a *PitchsAPI) Me(ctx context.Context) ([]domain.Pitch, error) {
	var pitches []domain.Pitch
	if err := a.c.get(ctx, "/api/pitchs/me", &pitches); err != nil {
		return nil, err
	}
	return pitches, nil
}

// Stats fetches aggregate counters over the current user's pitches.
func (a *PitchsAPI) Stats(ctx context.Context) (domain.PitchStats, error) {
	var stats domain.PitchStats
	if err := a.c.get(ctx, "/api/pitchs/me/stats", &stats); err != nil {
		return domain.PitchStats{}, err
	}
	return stats, nil
}

// ToggleFavorite flips the favorite flag on a pitch.
func (a *PitchsAPI) ToggleFavorite(ctx context.Context, pitchID string) (domain.Pitch, error) {
	var p domain.Pitch
	if err := a.c.patch(ctx, "/api/pitchs/"+pathEscapeID(pitchID)+"/favorite", nil, &p); err != nil {
		return domain.Pitch{}, err
	}
	return p, nil
}

// Rate records a 1 to 5 rating on a pitch. The rating rides in the query
// string, not the body.
func (a *PitchsAPI) Rate(ctx context.Context, pitchID string, rating int) (domain.Pitch, error) {
	var p domain.Pitch
	path := "/api/pitchs/" + pathEscapeID(pitchID) + "/rate?rating=" + strconv.Itoa(rating)
	if err := a.c.post(ctx, path, nil, &p); err != nil {
		return domain.Pitch{}, err
	}
	return p, nil
}
