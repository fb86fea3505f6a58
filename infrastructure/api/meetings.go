package api

import (
	"context"

	"startuphub/domain"
)

// MeetingsAPI covers meeting scheduling between connected parties.
type MeetingsAPI struct {
	c *Client
}

// NewMeetingsAPI creates the meetings sub-client.
func NewMeetingsAPI(c *Client) *MeetingsAPI {
	return &MeetingsAPI{c: c}
}

// Schedule proposes a meeting on an accepted connection.
func (a *MeetingsAPI) Schedule(ctx context.Context, draft domain.MeetingDraft) (domain.Meeting, error) {
	var m domain.Meeting
	if err := a.c.post(ctx, "/api/meetings/schedule", draft, &m); err != nil {
		return domain.Meeting{}, err
	}
	return m, nil
}

// Sent fetches meeting proposals sent by the current user.
func (a *MeetingsAPI) Sent(ctx context.Context) ([]domain.Meeting, error) {
	var meetings []domain.Meeting
	if err := a.c.get(ctx, "/api/meetings/sent", &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

// Received fetches meeting proposals addressed to the current user.
func (a *MeetingsAPI) Received(ctx context.Context) ([]domain.Meeting, error) {
	var meetings []domain.Meeting
	if err := a.c.get(ctx, "/api/meetings/received", &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

// Upcoming fetches accepted meetings with a future date.
func (a *MeetingsAPI) Upcoming(ctx context.Context) ([]domain.Meeting, error) {
	var meetings []domain.Meeting
	if err := a.c.get(ctx, "/api/meetings/upcoming", &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

// Accept confirms a proposed meeting.
func (a *MeetingsAPI) Accept(ctx context.Context, meetingID string) (domain.Meeting, error) {
	var m domain.Meeting
	if err := a.c.put(ctx, "/api/meetings/"+pathEscapeID(meetingID)+"/accept", nil, &m); err != nil {
		return domain.Meeting{}, err
	}
	return m, nil
}

// Reject declines a proposed meeting.
func (a *MeetingsAPI) Reject(ctx context.Context, meetingID string) (domain.Meeting, error) {
	var m domain.Meeting
	if err := a.c.put(ctx, "/api/meetings/"+pathEscapeID(meetingID)+"/reject", nil, &m); err != nil {
		return domain.Meeting{}, err
	}
	return m, nil
}

// Reschedule moves a meeting to a new date or place.
func (a *MeetingsAPI) Reschedule(ctx context.Context, meetingID string, draft domain.RescheduleDraft) (domain.Meeting, error) {
	var m domain.Meeting
	if err := a.c.put(ctx, "/api/meetings/"+pathEscapeID(meetingID)+"/reschedule", draft, &m); err != nil {
		return domain.Meeting{}, err
	}
	return m, nil
}

// Cancel removes a meeting.
func (a *MeetingsAPI) Cancel(ctx context.Context, meetingID string) error {
	return a.c.delete(ctx, "/api/meetings/"+pathEscapeID(meetingID)+"/cancel")
}
