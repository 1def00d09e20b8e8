// Package viewmodel turns API records into display values. Every function
// is pure: inputs are never modified and a new slice is always returned.
package viewmodel

import (
	"time"

	"github.com/levantva/crewcenter/internal/client/models"
)

// FlightDuration is the nominal block time given to every flight.
const FlightDuration = 2 * time.Hour

// DefaultRank is given to every flight's pilot; flight records carry no rank.
const DefaultRank = "Captain"

// Flights maps flight records to display flights as of now. Duplicate ids
// keep their first occurrence. Negative altitude and speed read as 0.
func Flights(records []models.FlightRecord, now time.Time) []models.Flight {
	out := make([]models.Flight, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, Flight(r, now))
	}
	return out
}

// Flight maps a single record.
func Flight(r models.FlightRecord, now time.Time) models.Flight {
	return models.Flight{
		ID:            r.ID,
		Callsign:      r.Callsign,
		Aircraft:      r.Aircraft,
		Route:         r.Departure + " - " + r.Arrival,
		Departure:     r.Departure,
		Arrival:       r.Arrival,
		Status:        models.FlightStatusEnRoute,
		Altitude:      max(r.Altitude, 0),
		Speed:         max(r.Speed, 0),
		Heading:       r.Heading,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		DepartureTime: now,
		ArrivalTime:   now.Add(FlightDuration),
		Pilot: models.FlightCrew{
			ID:   r.Pilot.ID,
			Name: r.Pilot.Name,
			Rank: DefaultRank,
		},
	}
}

// Pilots maps pilot records to display pilots. Duplicate ids keep their
// first occurrence.
func Pilots(records []models.PilotRecord) []models.Pilot {
	out := make([]models.Pilot, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, Pilot(r))
	}
	return out
}

// Pilot maps a single record. Counts the record does not carry are
// models.Unknown; an unparseable join date is the zero time.
func Pilot(r models.PilotRecord) models.Pilot {
	p := models.Pilot{
		ID:         r.ID,
		Name:       r.Name,
		Callsign:   r.Callsign,
		Rank:       r.Rating,
		TotalHours: models.Unknown,
		Flights:    models.Unknown,
		Status:     r.Status,
	}
	if r.TotalHours != nil {
		p.TotalHours = *r.TotalHours
	}
	if r.JoinDate != "" {
		if t, err := time.Parse(time.DateOnly, r.JoinDate); err == nil {
			p.JoinDate = t
		}
	}
	// records come from the online-pilots endpoint
	if !p.Status.Valid() {
		p.Status = models.PilotStatusOnline
	}
	return p
}
