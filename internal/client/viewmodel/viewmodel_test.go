package viewmodel

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levantva/crewcenter/internal/client/client"
	"github.com/levantva/crewcenter/internal/client/models"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestFlights_MapsRecords(t *testing.T) {
	got := Flights(client.MockFlights(), now)
	require.Len(t, got, 3)

	want := models.Flight{
		ID:            "1",
		Callsign:      "LEV001",
		Aircraft:      "Boeing 737-800",
		Route:         "OLBA - OJAI",
		Departure:     "OLBA",
		Arrival:       "OJAI",
		Status:        models.FlightStatusEnRoute,
		Altitude:      35000,
		Speed:         450,
		Heading:       90,
		Latitude:      33.8209,
		Longitude:     35.4883,
		DepartureTime: now,
		ArrivalTime:   now.Add(2 * time.Hour),
		Pilot:         models.FlightCrew{ID: "1", Name: "Ahmed Hassan", Rank: "Captain"},
	}
	assert.Empty(t, cmp.Diff(want, got[0]))

	for _, f := range got {
		assert.Equal(t, models.FlightStatusEnRoute, f.Status)
		assert.Equal(t, "Captain", f.Pilot.Rank)
		assert.Equal(t, 2*time.Hour, f.ArrivalTime.Sub(f.DepartureTime))
	}
}

func TestFlights_DoesNotMutateInput(t *testing.T) {
	in := client.MockFlights()
	in[0].Altitude = -100
	before := append([]models.FlightRecord(nil), in...)

	got := Flights(in, now)

	assert.Equal(t, before, in)
	assert.Equal(t, 0.0, got[0].Altitude)
}

func TestFlights_DropsDuplicateIDs(t *testing.T) {
	in := client.MockFlights()
	dup := in[0]
	dup.Callsign = "LEV999"
	in = append(in, dup)

	got := Flights(in, now)
	require.Len(t, got, 3)
	assert.Equal(t, "LEV001", got[0].Callsign)
}

func TestFlights_ClampsNegatives(t *testing.T) {
	got := Flights([]models.FlightRecord{{ID: "x", Altitude: -5, Speed: -1}}, now)
	assert.Equal(t, 0.0, got[0].Altitude)
	assert.Equal(t, 0.0, got[0].Speed)
}

func TestFlights_EmptyNotNil(t *testing.T) {
	assert.NotNil(t, Flights(nil, now))
	assert.Empty(t, Flights(nil, now))
	assert.NotNil(t, Pilots(nil))
}

func TestFlights_LengthMatchesUniqueInput(t *testing.T) {
	in := client.MockFlights()
	for i := 0; i < 3; i++ {
		assert.Len(t, Flights(in[:i], now), i)
	}
}

func TestPilots_MapsRecords(t *testing.T) {
	got := Pilots(client.MockPilots())
	require.Len(t, got, 5)

	p := got[1]
	assert.Equal(t, "Sarah Al-Mahmoud", p.Name)
	assert.Equal(t, "First Officer", p.Rank)
	assert.Equal(t, 890.0, p.TotalHours)
	assert.Equal(t, models.Unknown, p.Flights)
	assert.Equal(t, time.Date(2022, 7, 20, 0, 0, 0, 0, time.UTC), p.JoinDate)
	assert.Equal(t, models.PilotStatusOnline, p.Status)
}

func TestPilots_MissingOptionals(t *testing.T) {
	got := Pilots([]models.PilotRecord{
		{ID: "a", Status: "away"},
		{ID: "b", Status: models.PilotStatusFlying, JoinDate: "March 2022"},
		{ID: "a", Name: "dup"},
	})
	require.Len(t, got, 2)

	assert.Equal(t, float64(models.Unknown), got[0].TotalHours)
	assert.True(t, got[0].JoinDate.IsZero())
	assert.Equal(t, models.PilotStatusOnline, got[0].Status)

	assert.Equal(t, models.PilotStatusFlying, got[1].Status)
	assert.True(t, got[1].JoinDate.IsZero())
}
