package domain

// MatchCriteria explains why the matching service scored an investor.
type MatchCriteria struct {
	SectorMatch      bool   `json:"secteurMatch"`
	AmountCompatible bool   `json:"montantCompatible"`
	LocationMatch    bool   `json:"localisationMatch"`
	Details          string `json:"details"`
}

// Match is one ranked entry from /api/matching/for-me.
type Match struct {
	MatchID  string        `json:"matchId"`
	Investor Investor      `json:"investor"`
	Score    float64       `json:"score"`
	Criteria MatchCriteria `json:"criteria"`
	IsViewed bool          `json:"isViewed"`
}

// MatchedInvestor is the flattened card shape the discovery page works
// with: the investor's fields plus the score, with the sector list already
// split.
type MatchedInvestor struct {
	InvestorID  string
	Name        string
	Type        InvestorType
	Sectors     []string
	AmountMin   *float64
	AmountMax   *float64
	Description string
	Location    string
	Portfolio   string
	Website     string
	Email       string
	MatchScore  float64
}

// Flatten converts a ranked match into a discovery card.
func (m Match) Flatten() MatchedInvestor {
	return MatchedInvestor{
		InvestorID:  m.Investor.ID,
		Name:        m.Investor.Name,
		Type:        m.Investor.Type,
		Sectors:     m.Investor.Sectors(),
		AmountMin:   m.Investor.AmountMin,
		AmountMax:   m.Investor.AmountMax,
		Description: m.Investor.Description,
		Location:    m.Investor.Location,
		Portfolio:   m.Investor.Portfolio,
		Website:     m.Investor.Website,
		Email:       m.Investor.Email,
		MatchScore:  m.Score,
	}
}
