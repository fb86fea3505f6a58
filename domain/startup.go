package domain

// MilestoneStatus is the lifecycle state of a roadmap milestone.
type MilestoneStatus string

const (
	MilestoneTodo       MilestoneStatus = "TODO"
	MilestoneInProgress MilestoneStatus = "IN_PROGRESS"
	MilestoneCompleted  MilestoneStatus = "COMPLETED"
)

// Sectors is the fixed sector list used by profile forms and filters.
var Sectors = []string{
	"FinTech", "EdTech", "HealthTech", "E-commerce", "AgriTech",
	"CleanTech", "BioTech", "PropTech", "FoodTech",
}

// TeamRoles is the fixed role list for founder roster entries.
var TeamRoles = []string{
	"CEO", "CTO", "CMO", "CFO", "COO",
	"Developer", "Designer", "Marketing", "Sales",
}

// Startup is the startup profile record.
type Startup struct {
	ID           string `json:"id"`
	Name         string `json:"nom"`
	Sector       string `json:"secteur"`
	Description  string `json:"description"`
	Tags         string `json:"tags"`
	Website      string `json:"siteWeb"`
	FoundingDate string `json:"dateCreation"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// StartupDraft is the create/update payload for a startup profile.
type StartupDraft struct {
	Name         string `json:"nom" validate:"required"`
	Sector       string `json:"secteur"`
	Description  string `json:"description"`
	Tags         string `json:"tags"`
	Website      string `json:"siteWeb"`
	FoundingDate string `json:"dateCreation"`
}

// TeamMember is one founder roster entry.
type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"nom"`
	Role     string `json:"role"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// TeamMemberDraft is the create/update payload for a roster entry.
// Name and role are required before any request is issued.
type TeamMemberDraft struct {
	Name     string `json:"nom" validate:"required"`
	Role     string `json:"role" validate:"required"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Milestone is one roadmap entry.
type Milestone struct {
	ID          string          `json:"id"`
	Title       string          `json:"titre"`
	Description string          `json:"description,omitempty"`
	DueDate     string          `json:"dateEcheance,omitempty"`
	Status      MilestoneStatus `json:"statut"`
	CompletedAt string          `json:"completedAt,omitempty"`
	CreatedAt   string          `json:"createdAt"`
}

// MilestoneDraft is the create/update payload for a milestone. Only the
// title is required.
type MilestoneDraft struct {
	Title       string          `json:"titre" validate:"required"`
	Description string          `json:"description,omitempty"`
	DueDate     string          `json:"dateEcheance,omitempty"`
	Status      MilestoneStatus `json:"statut,omitempty"`
}

// StartupDetails is the enriched view an investor sees for a startup that
// requested a connection.
type StartupDetails struct {
	ID                string       `json:"id"`
	Name              string       `json:"nom"`
	Sector            string       `json:"secteur"`
	Description       string       `json:"description"`
	Tags              []string     `json:"tags"`
	ProfileCompletion int          `json:"profileCompletion"`
	Website           string       `json:"siteWeb"`
	Team              []TeamMember `json:"team"`
	Milestones        []Milestone  `json:"milestones"`
	MatchingScore     *float64     `json:"matchingScore"`
}
