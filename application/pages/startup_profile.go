package pages

import (
	"context"
	"sync"

	"startuphub/application/controller"
	"startuphub/domain"
)

// StartupProfilePage manages the startup's own profile with its team
// roster and roadmap. The profile loads first; team and milestones are
// dependent fetches that only start once a profile is known to exist.
type StartupProfilePage struct {
	api *API

	Profile    *controller.Value[domain.Startup]
	Team       *controller.Resource[domain.TeamMember]
	Milestones *controller.Resource[domain.Milestone]

	ProfileForm   *controller.Form[domain.StartupDraft]
	TeamForm      *controller.Form[domain.TeamMemberDraft]
	MilestoneForm *controller.Form[domain.MilestoneDraft]

	mu       sync.Mutex
	formMode bool
}

// NewStartupProfilePage creates the page. A missing profile is content, not
// an error: the page opens straight onto the create form.
func NewStartupProfilePage(deps Deps) *StartupProfilePage {
	opts := deps.opts()
	return &StartupProfilePage{
		api:           deps.API,
		Profile:       controller.NewValue(deps.API.Startups.Me, true, opts),
		Team:          controller.NewResource(deps.API.Startups.Team, opts),
		Milestones:    controller.NewResource(deps.API.Startups.Milestones, opts),
		ProfileForm:   controller.NewForm[domain.StartupDraft](),
		TeamForm:      controller.NewForm[domain.TeamMemberDraft](),
		MilestoneForm: controller.NewForm[domain.MilestoneDraft](),
	}
}

// Load fetches the profile, then team and milestones in parallel. Without a
// profile there is nothing dependent to fetch.
func (p *StartupProfilePage) Load(ctx context.Context) {
	p.Profile.Load(ctx)

	if _, present := p.Profile.Value(); !present {
		return
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		p.Team.Load(ctx)
	}()
	go func() {
		defer wg.Done()
		p.Milestones.Load(ctx)
	}()
	wg.Wait()
}

// InFormMode reports whether the profile section shows the edit form.
func (p *StartupProfilePage) InFormMode() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, present := p.Profile.Value(); !present {
		// No profile yet: the create form is the only view.
		return true
	}
	return p.formMode
}

// EditProfile switches the profile section to the form, pre-filled from
// the current record.
func (p *StartupProfilePage) EditProfile() {
	current, _ := p.Profile.Value()
	p.ProfileForm.OpenNew(domain.StartupDraft{
		Name:         current.Name,
		Sector:       current.Sector,
		Description:  current.Description,
		Tags:         current.Tags,
		Website:      current.Website,
		FoundingDate: current.FoundingDate,
	})
	p.mu.Lock()
	p.formMode = true
	p.mu.Unlock()
}

// CancelProfileEdit returns to the view mode, discarding edits.
func (p *StartupProfilePage) CancelProfileEdit() {
	p.ProfileForm.Cancel()
	p.mu.Lock()
	p.formMode = false
	p.mu.Unlock()
}

// SaveProfile submits the profile form. A first save creates the profile,
// later saves update it; the distinction is the record's presence, not a
// user choice.
func (p *StartupProfilePage) SaveProfile(ctx context.Context) error {
	_, exists := p.Profile.Value()

	err := p.ProfileForm.Submit(ctx, func(ctx context.Context, draft domain.StartupDraft) error {
		return p.Profile.Mutate(ctx, func(ctx context.Context) (domain.Startup, error) {
			if exists {
				return p.api.Startups.Update(ctx, draft)
			}
			return p.api.Startups.Create(ctx, draft)
		}, "Profile saved")
	})
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.formMode = false
	p.mu.Unlock()

	if !exists {
		// The dependent sections become reachable after the first save.
		p.Team.Load(ctx)
		p.Milestones.Load(ctx)
	}
	return nil
}

// SectorOptions lists the sectors the profile form offers.
func (p *StartupProfilePage) SectorOptions() []string {
	return domain.Sectors
}

// RoleOptions lists the roles the team modal offers.
func (p *StartupProfilePage) RoleOptions() []string {
	return domain.TeamRoles
}

// AddTeamMember opens the team modal in create mode.
func (p *StartupProfilePage) AddTeamMember() {
	p.TeamForm.OpenNew(domain.TeamMemberDraft{})
}

// EditTeamMember opens the team modal pre-filled from an existing member.
func (p *StartupProfilePage) EditTeamMember(m domain.TeamMember) {
	p.TeamForm.OpenEdit(m.ID, domain.TeamMemberDraft{
		Name:     m.Name,
		Role:     m.Role,
		LinkedIn: m.LinkedIn,
	})
}

// SubmitTeamMember validates and sends the team modal, patching the roster
// locally on success.
func (p *StartupProfilePage) SubmitTeamMember(ctx context.Context) error {
	targetID := p.TeamForm.TargetID()
	editing := p.TeamForm.IsEdit()

	return p.TeamForm.Submit(ctx, func(ctx context.Context, draft domain.TeamMemberDraft) error {
		if editing {
			var updated domain.TeamMember
			return p.Team.MutatePatch(ctx, func(ctx context.Context) error {
				var err error
				updated, err = p.api.Startups.UpdateTeamMember(ctx, targetID, draft)
				return err
			}, func(ms []domain.TeamMember) []domain.TeamMember {
				return controller.Replace(func(m domain.TeamMember) bool { return m.ID == targetID }, updated)(ms)
			}, "Team member updated")
		}
		var created domain.TeamMember
		return p.Team.MutatePatch(ctx, func(ctx context.Context) error {
			var err error
			created, err = p.api.Startups.AddTeamMember(ctx, draft)
			return err
		}, func(ms []domain.TeamMember) []domain.TeamMember {
			return append(ms, created)
		}, "Team member added")
	})
}

// RemoveTeamMember deletes a roster entry and drops it locally.
func (p *StartupProfilePage) RemoveTeamMember(ctx context.Context, id string) error {
	return p.Team.MutatePatch(ctx, func(ctx context.Context) error {
		return p.api.Startups.DeleteTeamMember(ctx, id)
	}, controller.Remove(func(m domain.TeamMember) bool { return m.ID == id }), "Team member removed")
}

// AddMilestone opens the milestone modal in create mode.
func (p *StartupProfilePage) AddMilestone() {
	p.MilestoneForm.OpenNew(domain.MilestoneDraft{Status: domain.MilestoneTodo})
}

// EditMilestone opens the milestone modal pre-filled from an existing
// entry.
func (p *StartupProfilePage) EditMilestone(m domain.Milestone) {
	p.MilestoneForm.OpenEdit(m.ID, domain.MilestoneDraft{
		Title:       m.Title,
		Description: m.Description,
		DueDate:     m.DueDate,
		Status:      m.Status,
	})
}

// SubmitMilestone validates and sends the milestone modal, patching the
// roadmap locally on success.
func (p *StartupProfilePage) SubmitMilestone(ctx context.Context) error {
	targetID := p.MilestoneForm.TargetID()
	editing := p.MilestoneForm.IsEdit()

	return p.MilestoneForm.Submit(ctx, func(ctx context.Context, draft domain.MilestoneDraft) error {
		if editing {
			var updated domain.Milestone
			return p.Milestones.MutatePatch(ctx, func(ctx context.Context) error {
				var err error
				updated, err = p.api.Startups.UpdateMilestone(ctx, targetID, draft)
				return err
			}, func(ms []domain.Milestone) []domain.Milestone {
				return controller.Replace(func(m domain.Milestone) bool { return m.ID == targetID }, updated)(ms)
			}, "Milestone updated")
		}
		var created domain.Milestone
		return p.Milestones.MutatePatch(ctx, func(ctx context.Context) error {
			var err error
			created, err = p.api.Startups.AddMilestone(ctx, draft)
			return err
		}, func(ms []domain.Milestone) []domain.Milestone {
			return append(ms, created)
		}, "Milestone added")
	})
}

// RemoveMilestone deletes a roadmap entry and drops it locally.
func (p *StartupProfilePage) RemoveMilestone(ctx context.Context, id string) error {
	return p.Milestones.MutatePatch(ctx, func(ctx context.Context) error {
		return p.api.Startups.DeleteMilestone(ctx, id)
	}, controller.Remove(func(m domain.Milestone) bool { return m.ID == id }), "Milestone removed")
}

// Close disposes all sub-controllers.
func (p *StartupProfilePage) Close() {
	p.Profile.Close()
	p.Team.Close()
	p.Milestones.Close()
}
