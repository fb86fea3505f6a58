package api

import (
	"context"

	"startuphub/domain"
)

// ConnectionsAPI covers connection requests between startups and investors.
type ConnectionsAPI struct {
	c *Client
}

// NewConnectionsAPI creates the connections sub-client.
func NewConnectionsAPI(c *Client) *ConnectionsAPI {
	return &ConnectionsAPI{c: c}
}

// Request sends a connection request from the current startup to an investor.
func (a *ConnectionsAPI) Request(ctx context.Context, req domain.ConnectionRequest) (domain.Connection, error) {
	var conn domain.Connection
	if err := a.c.post(ctx, "/api/connections/request", req, &conn); err != nil {
		return domain.Connection{}, err
	}
	return conn, nil
}

// Received fetches connection requests addressed to the current investor.
func (a *ConnectionsAPI) Received(ctx context.Context) ([]domain.Connection, error) {
	var conns []domain.Connection
	if err := a.c.get(ctx, "/api/connections/received", &conns); err != nil {
		return nil, err
	}
	return conns, nil
}

// Accept marks a pending connection as accepted.
func (a *ConnectionsAPI) Accept(ctx context.Context, connectionID string) (domain.Connection, error) {
	var conn domain.Connection
	if err := a.c.put(ctx, "/api/connections/"+pathEscapeID(connectionID)+"/accept", nil, &conn); err != nil {
		return domain.Connection{}, err
	}
	return conn, nil
}

// Reject marks a pending connection as rejected.
func (a *ConnectionsAPI) Reject(ctx context.Context, connectionID string) (domain.Connection, error) {
	var conn domain.Connection
	if err := a.c.put(ctx, "/api/connections/"+pathEscapeID(connectionID)+"/reject", nil, &conn); err != nil {
		return domain.Connection{}, err
	}
	return conn, nil
}
