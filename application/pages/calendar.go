package pages

import (
	"context"
	"sync"

	"startuphub/application/controller"
	"startuphub/domain"
)

// StartupCalendarPage shows the meetings a startup has been invited to and
// its confirmed upcoming ones. The two lists load in parallel and settle
// independently; neither waits for the other.
type StartupCalendarPage struct {
	api *API

	Received *controller.Resource[domain.Meeting]
	Upcoming *controller.Resource[domain.Meeting]
}

// NewStartupCalendarPage creates the page.
func NewStartupCalendarPage(deps Deps) *StartupCalendarPage {
	opts := deps.opts()
	return &StartupCalendarPage{
		api:      deps.API,
		Received: controller.NewResource(deps.API.Meetings.Received, opts),
		Upcoming: controller.NewResource(deps.API.Meetings.Upcoming, opts),
	}
}

// Load fetches both lists in parallel.
func (p *StartupCalendarPage) Load(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		p.Received.Load(ctx)
	}()
	go func() {
		defer wg.Done()
		p.Upcoming.Load(ctx)
	}()
	wg.Wait()
}

// Accept confirms a proposed meeting. Both lists change, so both are
// re-fetched.
func (p *StartupCalendarPage) Accept(ctx context.Context, meetingID string) error {
	err := p.Received.MutateRefetch(ctx, func(ctx context.Context) error {
		_, err := p.api.Meetings.Accept(ctx, meetingID)
		return err
	}, "Meeting confirmed")
	if err != nil {
		return err
	}
	p.Upcoming.Refresh(ctx)
	return nil
}

// Reject declines a proposed meeting.
func (p *StartupCalendarPage) Reject(ctx context.Context, meetingID string) error {
	return p.Received.MutateRefetch(ctx, func(ctx context.Context) error {
		_, err := p.api.Meetings.Reject(ctx, meetingID)
		return err
	}, "Meeting declined")
}

// Close disposes both lists.
func (p *StartupCalendarPage) Close() {
	p.Received.Close()
	p.Upcoming.Close()
}

// InvestorCalendarPage shows the meetings an investor proposed and the
// confirmed upcoming ones, with reschedule and cancel.
type InvestorCalendarPage struct {
	api *API

	Sent     *controller.Resource[domain.Meeting]
	Upcoming *controller.Resource[domain.Meeting]

	RescheduleForm *controller.Form[domain.RescheduleDraft]
}

// NewInvestorCalendarPage creates the page.
func NewInvestorCalendarPage(deps Deps) *InvestorCalendarPage {
	opts := deps.opts()
	return &InvestorCalendarPage{
		api:            deps.API,
		Sent:           controller.NewResource(deps.API.Meetings.Sent, opts),
		Upcoming:       controller.NewResource(deps.API.Meetings.Upcoming, opts),
		RescheduleForm: controller.NewForm[domain.RescheduleDraft](),
	}
}

// Load fetches both lists in parallel.
func (p *InvestorCalendarPage) Load(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		p.Sent.Load(ctx)
	}()
	go func() {
		defer wg.Done()
		p.Upcoming.Load(ctx)
	}()
	wg.Wait()
}

// OpenReschedule opens the reschedule modal pre-filled with the meeting's
// current date.
func (p *InvestorCalendarPage) OpenReschedule(m domain.Meeting) {
	p.RescheduleForm.OpenEdit(m.ID, domain.RescheduleDraft{MeetingDate: m.MeetingDate})
}

// SubmitReschedule validates and sends the new date, then re-fetches both
// lists.
func (p *InvestorCalendarPage) SubmitReschedule(ctx context.Context) error {
	meetingID := p.RescheduleForm.TargetID()

	err := p.RescheduleForm.Submit(ctx, func(ctx context.Context, draft domain.RescheduleDraft) error {
		_, err := p.api.Meetings.Reschedule(ctx, meetingID, draft)
		return err
	})
	if err != nil {
		return err
	}
	p.Sent.ShowBanner(controller.BannerSuccess, "Meeting rescheduled")
	p.Sent.Refresh(ctx)
	p.Upcoming.Refresh(ctx)
	return nil
}

// Cancel removes a meeting and re-fetches both lists.
func (p *InvestorCalendarPage) Cancel(ctx context.Context, meetingID string) error {
	err := p.Sent.MutateRefetch(ctx, func(ctx context.Context) error {
		return p.api.Meetings.Cancel(ctx, meetingID)
	}, "Meeting cancelled")
	if err != nil {
		return err
	}
	p.Upcoming.Refresh(ctx)
	return nil
}

// Close disposes both lists.
func (p *InvestorCalendarPage) Close() {
	p.Sent.Close()
	p.Upcoming.Close()
}
