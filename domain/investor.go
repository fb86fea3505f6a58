package domain

import "strings"

// InvestorType classifies an investor profile.
type InvestorType string

const (
	InvestorVC            InvestorType = "VC"
	InvestorBusinessAngel InvestorType = "BUSINESS_ANGEL"
	InvestorIncubator     InvestorType = "INCUBATOR"
	InvestorCorporateVC   InvestorType = "CORPORATE_VC"
)

// Investor is the investor profile record. SectorInterests travels as a
// comma-separated string on the wire.
type Investor struct {
	ID              string       `json:"id"`
	UserID          string       `json:"userId"`
	Name            string       `json:"nom"`
	Type            InvestorType `json:"type"`
	SectorInterests string       `json:"secteursInterets"`
	AmountMin       *float64     `json:"montantMin"`
	AmountMax       *float64     `json:"montantMax"`
	Description     string       `json:"description"`
	Location        string       `json:"localisation"`
	Portfolio       string       `json:"portfolio"`
	Website         string       `json:"siteWeb"`
	Email           string       `json:"email"`
	CreatedAt       string       `json:"createdAt,omitempty"`
}

// Sectors splits the comma-separated interest list into clean values.
func (i Investor) Sectors() []string {
	if i.SectorInterests == "" {
		return nil
	}
	parts := strings.Split(i.SectorInterests, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// InvestorDraft is the create/update payload for an investor profile.
type InvestorDraft struct {
	Name            string       `json:"nom" validate:"required"`
	Type            InvestorType `json:"type"`
	SectorInterests string       `json:"secteursInterets"`
	AmountMin       *float64     `json:"montantMin"`
	AmountMax       *float64     `json:"montantMax"`
	Description     string       `json:"description"`
	Location        string       `json:"localisation"`
	Portfolio       string       `json:"portfolio"`
	Website         string       `json:"siteWeb"`
	Email           string       `json:"email"`
}
