package domain

// ConnectionStatus is the lifecycle state of a connection request.
type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "PENDING"
	ConnectionAccepted ConnectionStatus = "ACCEPTED"
	ConnectionRejected ConnectionStatus = "REJECTED"
)

// ParseConnectionStatus normalizes a raw status. Anything unknown reads as
// PENDING, the safest state to show for a request of uncertain standing.
func ParseConnectionStatus(raw string) ConnectionStatus {
	switch ConnectionStatus(raw) {
	case ConnectionAccepted:
		return ConnectionAccepted
	case ConnectionRejected:
		return ConnectionRejected
	default:
		return ConnectionPending
	}
}

// Connection is one incoming connection request as served by
// /api/connections/received.
type Connection struct {
	ID        string `json:"id"`
	StartupID string `json:"startupId"`
	Message   string `json:"message"`
	Status    string `json:"statut"`
	CreatedAt string `json:"createdAt"`
}

// ConnectionRequest is the payload a startup sends to reach an investor.
type ConnectionRequest struct {
	InvestorID string `json:"investorId" validate:"required"`
	Message    string `json:"message"`
}

// ConnectionCard is the enriched list item on the investor's connections
// page: the request plus the startup's details fetched per item.
type ConnectionCard struct {
	ID                 string
	StartupID          string
	StartupName        string
	StartupDescription string
	Message            string
	Status             ConnectionStatus
	CreatedAt          string
	Details            *StartupDetails
}
