package domain

// Activity is one recent-activity feed entry on the dashboard.
type Activity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// Dashboard is the aggregate behind /api/dashboard/me. The same shape
// serves both roles; fields simply stay zero when they do not apply.
type Dashboard struct {
	StartupName         string     `json:"startupName,omitempty"`
	UserName            string     `json:"userName,omitempty"`
	ProfileCompletion   int        `json:"profileCompletion"`
	PitchsGenerated     int        `json:"pitchsGenerated"`
	MatchingInvestors   int        `json:"matchingInvestors"`
	ConnectionsActive   int        `json:"connectionsActive"`
	MilestonesCompleted int        `json:"milestonesCompleted"`
	LastUpdated         string     `json:"lastUpdated,omitempty"`
	RecentActivities    []Activity `json:"recentActivities"`
}
