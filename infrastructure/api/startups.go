package api

import (
	"context"

	"startuphub/domain"
)

// StartupsAPI covers the startup profile, founder roster and milestone
// endpoints.
type StartupsAPI struct {
	c *Client
}

// NewStartupsAPI creates the startups sub-client.
func NewStartupsAPI(c *Client) *StartupsAPI {
	return &StartupsAPI{c: c}
}

// Me fetches the current user's startup profile.
func (s *StartupsAPI) Me(ctx context.Context) (domain.Startup, error) {
	var st domain.Startup
	if err := s.c.get(ctx, "/api/startups/me", &st); err != nil {
		return domain.Startup{}, err
	}
	return st, nil
}

// Create creates the startup profile.
func (s *StartupsAPI) Create(ctx context.Context, draft domain.StartupDraft) (domain.Startup, error) {
	var st domain.Startup
	if err := s.c.post(ctx, "/api/startups", draft, &st); err != nil {
		return domain.Startup{}, err
	}
	return st, nil
}

// Update updates the startup profile.
func (s *StartupsAPI) Update(ctx context.Context, draft domain.StartupDraft) (domain.Startup, error) {
	var st domain.Startup
	if err := s.c.put(ctx, "/api/startups/me", draft, &st); err != nil {
		return domain.Startup{}, err
	}
	return st, nil
}

// Team lists the founder roster.
func (s *StartupsAPI) Team(ctx context.Context) ([]domain.TeamMember, error) {
	var members []domain.TeamMember
	if err := s.c.get(ctx, "/api/startups/me/team", &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddTeamMember appends a roster entry.
func (s *StartupsAPI) AddTeamMember(ctx context.Context, draft domain.TeamMemberDraft) (domain.TeamMember, error) {
	var m domain.TeamMember
	if err := s.c.post(ctx, "/api/startups/me/team", draft, &m); err != nil {
		return domain.TeamMember{}, err
	}
	return m, nil
}

// UpdateTeamMember updates a roster entry.
func (s *StartupsAPI) UpdateTeamMember(ctx context.Context, id string, draft domain.TeamMemberDraft) (domain.TeamMember, error) {
	var m domain.TeamMember
	if err := s.c.put(ctx, "/api/startups/me/team/"+pathEscapeID(id), draft, &m); err != nil {
		return domain.TeamMember{}, err
	}
	return m, nil
}

// DeleteTeamMember removes a roster entry.
func (s *StartupsAPI) DeleteTeamMember(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/api/startups/me/team/"+pathEscapeID(id))
}

// Milestones lists the roadmap.
func (s *StartupsAPI) Milestones(ctx context.Context) ([]domain.Milestone, error) {
	var ms []domain.Milestone
	if err := s.c.get(ctx, "/api/startups/me/milestones", &ms); err != nil {
		return nil, err
	}
	return ms, nil
}

// AddMilestone appends a roadmap entry.
func (s *StartupsAPI) AddMilestone(ctx context.Context, draft domain.MilestoneDraft) (domain.Milestone, error) {
	var m domain.Milestone
	if err := s.c.post(ctx, "/api/startups/me/milestones", draft, &m); err != nil {
		return domain.Milestone{}, err
	}
	return m, nil
}

// UpdateMilestone updates a roadmap entry.
func (s *StartupsAPI) UpdateMilestone(ctx context.Context, id string, draft domain.MilestoneDraft) (domain.Milestone, error) {
	var m domain.Milestone
	if err := s.c.put(ctx, "/api/startups/me/milestones/"+pathEscapeID(id), draft, &m); err != nil {
		return domain.Milestone{}, err
	}
	return m, nil
}

// DeleteMilestone removes a roadmap entry.
func (s *StartupsAPI) DeleteMilestone(ctx context.Context, id string) error {
	return s.c.delete(ctx, "/api/startups/me/milestones/"+pathEscapeID(id))
}
