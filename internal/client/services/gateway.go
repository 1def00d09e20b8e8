// Package services holds the client-side services built over the transport
// client and the local store: the data gateway with its mock fallback, the
// session store and the events catalogue.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/levantva/crewcenter/internal/client/client"
	"github.com/levantva/crewcenter/internal/client/models"
	"github.com/levantva/crewcenter/internal/logging"
)

// DataSource is what the screens read flights and pilots through. Its
// methods never fail: a failed call degrades to a fallback value.
type DataSource interface {
	FetchFlights(ctx context.Context) []models.FlightRecord
	FetchOnlinePilots(ctx context.Context) []models.PilotRecord
	FetchFlightByID(ctx context.Context, id string) *models.FlightRecord
	FetchPilotByID(ctx context.Context, id string) *models.User
	FetchFlightsByAirport(ctx context.Context, icao string) []models.FlightRecord
	Live() bool
}

// Authenticator checks member credentials. A nil user with a nil error
// means the check could not vouch for the member.
type Authenticator interface {
	Authenticate(ctx context.Context, callsign, password string) *models.User
}

// Gateway wraps a client.Client and turns every failure into the fallback
// defined per operation: mock data for the list endpoints, nil or empty for
// the rest. Without credentials it never touches the network.
type Gateway struct {
	client client.Client
	live   bool
	log    logging.Logger
}

// NewGateway decides once whether the gateway is live. Missing credentials
// are logged as a warning and pin it to mock data for its lifetime.
func NewGateway(ctx context.Context, c client.Client, creds client.Credentials, log logging.Logger) *Gateway {
	log = log.With("module", "gateway")
	g := &Gateway{client: c, live: creds.Complete(), log: log}

	if !g.live {
		log.Warn(ctx, "IVAO API credentials not found, serving mock data",
			"required", "IVAO_API_KEY and IVAO_BEARER_TOKEN")
		return g
	}

	log.Info(ctx, "IVAO API client initialized with credentials")
	inspectToken(ctx, creds.BearerToken, log)
	return g
}

// inspectToken warns about a JWT bearer token that has expired or is about
// to. Opaque tokens are not inspected.
func inspectToken(ctx context.Context, token string, log logging.Logger) {
	info, err := client.InspectBearerToken(token)
	if err != nil {
		log.Debug(ctx, "bearer token is not a readable JWT", "error", err)
		return
	}
	now := time.Now()
	switch {
	case info.Expired(now):
		log.Warn(ctx, "bearer token has expired", "expires_at", info.ExpiresAt)
	case info.ExpiresWithin(now, 24*time.Hour):
		log.Warn(ctx, "bearer token expires within a day", "expires_at", info.ExpiresAt)
	}
}

// Live reports whether calls go to the remote API.
func (g *Gateway) Live() bool {
	return g.live
}

func (g *Gateway) FetchFlights(ctx context.Context) []models.FlightRecord {
	if !g.live {
		return client.MockFlights()
	}
	flights, err := g.client.Flights(ctx)
	if err != nil {
		g.log.Error(ctx, "fetching flights failed, falling back to mock flights", "error", err)
		return client.MockFlights()
	}
	if flights == nil {
		flights = []models.FlightRecord{}
	}
	return flights
}

func (g *Gateway) FetchOnlinePilots(ctx context.Context) []models.PilotRecord {
	if !g.live {
		return client.MockPilots()
	}
	pilots, err := g.client.OnlinePilots(ctx)
	if err != nil {
		g.log.Error(ctx, "fetching online pilots failed, falling back to mock pilots", "error", err)
		return client.MockPilots()
	}
	if pilots == nil {
		pilots = []models.PilotRecord{}
	}
	return pilots
}

func (g *Gateway) FetchFlightByID(ctx context.Context, id string) *models.FlightRecord {
	if !g.live {
		return nil
	}
	f, err := g.client.FlightByID(ctx, id)
	if err != nil {
		g.logLookup(ctx, "flight", id, err)
		return nil
	}
	return f
}

func (g *Gateway) FetchPilotByID(ctx context.Context, id string) *models.User {
	if !g.live {
		return nil
	}
	p, err := g.client.PilotByID(ctx, id)
	if err != nil {
		g.logLookup(ctx, "pilot", id, err)
		return nil
	}
	return p
}

func (g *Gateway) FetchFlightsByAirport(ctx context.Context, icao string) []models.FlightRecord {
	if !g.live {
		return []models.FlightRecord{}
	}
	flights, err := g.client.FlightsByAirport(ctx, icao)
	if err != nil {
		g.log.Error(ctx, "fetching flights by airport failed", "icao", icao, "error", err)
		return []models.FlightRecord{}
	}
	if flights == nil {
		flights = []models.FlightRecord{}
	}
	return flights
}

// Authenticate returns the member or nil. It never reports why.
func (g *Gateway) Authenticate(ctx context.Context, callsign, password string) *models.User {
	if !g.live {
		return nil
	}
	u, err := g.client.Authenticate(ctx, callsign, password)
	if err != nil {
		g.log.Error(ctx, "authenticating user failed", "callsign", callsign, "error", err)
		return nil
	}
	return u
}

func (g *Gateway) logLookup(ctx context.Context, kind, id string, err error) {
	if errors.Is(err, client.ErrNotFound) {
		g.log.Info(ctx, kind+" not found", "id", id)
		return
	}
	g.log.Error(ctx, "fetching "+kind+" failed", "id", id, "error", err)
}

// Close releases the transport.
func (g *Gateway) Close() error {
	return g.client.Close()
}
