package domain

// PitchType selects which generator produces the pitch text.
type PitchType string

const (
	PitchElevator  PitchType = "ELEVATOR"
	PitchDeck      PitchType = "DECK"
	PitchValueProp PitchType = "VALUE_PROP"
)

// Pitch is one generated pitch from the history at /api/pitchs/me.
type Pitch struct {
	ID         string    `json:"id"`
	Problem    string    `json:"probleme"`
	Solution   string    `json:"solution"`
	Target     string    `json:"cible"`
	Advantage  string    `json:"avantage"`
	Generated  string    `json:"pitchGenere"`
	Type       PitchType `json:"type"`
	Rating     *int      `json:"rating"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  string    `json:"createdAt"`
	UpdatedAt  string    `json:"updatedAt"`
}

// PitchDraft is the generation payload. Problem and solution are required
// before the request leaves the client; the type only selects the endpoint
// and is never sent in the body.
type PitchDraft struct {
	Problem   string `json:"probleme" validate:"required"`
	Solution  string `json:"solution" validate:"required"`
	Target    string `json:"cible"`
	Advantage string `json:"avantage"`
}

// PitchStats is the aggregate behind /api/pitchs/me/stats.
type PitchStats struct {
	TotalPitchs    int     `json:"totalPitchs"`
	FavoritePitchs int     `json:"favoritePitchs"`
	AverageRating  float64 `json:"averageRating"`
}

// GeneratedPitch is the generator's response.
type GeneratedPitch struct {
	Pitch string `json:"pitch"`
}
