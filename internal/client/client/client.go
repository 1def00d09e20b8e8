package client

import (
	"context"

	"github.com/levantva/crewcenter/internal/client/models"
)

// Client is the transport contract for the flight-network API. Every
// method performs a single attempt and reports failures through the
// sentinel errors in errors.go.
type Client interface {
	Close() error
	Flights(ctx context.Context) ([]models.FlightRecord, error)
	FlightByID(ctx context.Context, id string) (*models.FlightRecord, error)
	PilotByID(ctx context.Context, id string) (*models.User, error)
	OnlinePilots(ctx context.Context) ([]models.PilotRecord, error)
	FlightsByAirport(ctx context.Context, icao string) ([]models.FlightRecord, error)
	Authenticate(ctx context.Context, callsign, password string) (*models.User, error)
}

// Credentials carries the API key and bearer token. Both are required for
// live calls.
type Credentials struct {
	APIKey      string
	BearerToken string
}

// Complete reports whether both values are present.
func (c Credentials) Complete() bool {
	return c.APIKey != "" && c.BearerToken != ""
}
