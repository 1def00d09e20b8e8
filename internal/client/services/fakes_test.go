package services

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/levantva/crewcenter/internal/client/models"
	"github.com/levantva/crewcenter/internal/logging"
)

// fakeClient implements client.Client with canned results.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	flights    []models.FlightRecord
	flightsErr error

	flight    *models.FlightRecord
	flightErr error

	pilot    *models.User
	pilotErr error

	pilots    []models.PilotRecord
	pilotsErr error

	byAirport    []models.FlightRecord
	byAirportErr error

	user    *models.User
	userErr error
}

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Flights(ctx context.Context) ([]models.FlightRecord, error) {
	f.record("Flights")
	return f.flights, f.flightsErr
}

func (f *fakeClient) FlightByID(ctx context.Context, id string) (*models.FlightRecord, error) {
	f.record("FlightByID:" + id)
	return f.flight, f.flightErr
}

func (f *fakeClient) PilotByID(ctx context.Context, id string) (*models.User, error) {
	f.record("PilotByID:" + id)
	return f.pilot, f.pilotErr
}

func (f *fakeClient) OnlinePilots(ctx context.Context) ([]models.PilotRecord, error) {
	f.record("OnlinePilots")
	return f.pilots, f.pilotsErr
}

func (f *fakeClient) FlightsByAirport(ctx context.Context, icao string) ([]models.FlightRecord, error) {
	f.record("FlightsByAirport:" + icao)
	return f.byAirport, f.byAirportErr
}

func (f *fakeClient) Authenticate(ctx context.Context, callsign, password string) (*models.User, error) {
	f.record("Authenticate:" + callsign)
	return f.user, f.userErr
}

// fakeAuth implements Authenticator.
type fakeAuth struct {
	user *models.User
	got  []string
}

func (a *fakeAuth) Authenticate(ctx context.Context, callsign, password string) *models.User {
	a.got = append(a.got, callsign+"/"+password)
	return a.user
}

func bufferLogger(t *testing.T) (logging.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return logging.NewText(&buf, slog.LevelDebug), &buf
}
