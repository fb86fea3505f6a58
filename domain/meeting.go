package domain

// MeetingStatus is the lifecycle state of a proposed meeting.
type MeetingStatus string

const (
	MeetingPending  MeetingStatus = "PENDING"
	MeetingAccepted MeetingStatus = "ACCEPTED"
	MeetingRejected MeetingStatus = "REJECTED"
)

// Meeting is one meeting record from the /api/meetings views.
type Meeting struct {
	ID           string        `json:"id"`
	ConnectionID string        `json:"connectionId,omitempty"`
	StartupName  string        `json:"startupName,omitempty"`
	InvestorName string        `json:"investorName,omitempty"`
	MeetingDate  string        `json:"meetingDate"`
	MeetingPlace string        `json:"meetingPlace,omitempty"`
	Message      string        `json:"message,omitempty"`
	Status       MeetingStatus `json:"statut"`
}

// MeetingDraft is the payload for proposing a meeting on an accepted
// connection.
type MeetingDraft struct {
	ConnectionID string `json:"connectionId" validate:"required"`
	MeetingDate  string `json:"meetingDate" validate:"required"`
	MeetingPlace string `json:"meetingPlace,omitempty"`
	Message      string `json:"message,omitempty"`
}

// RescheduleDraft is the payload for moving an existing meeting.
type RescheduleDraft struct {
	MeetingDate string `json:"meetingDate" validate:"required"`
}
