package models

import "time"

// PilotStatus is the network presence of a pilot.
type PilotStatus string

const (
	PilotStatusOnline  PilotStatus = "online"
	PilotStatusOffline PilotStatus = "offline"
	PilotStatusFlying  PilotStatus = "flying"
)

// Valid reports whether s is one of the known statuses.
func (s PilotStatus) Valid() bool {
	switch s {
	case PilotStatusOnline, PilotStatusOffline, PilotStatusFlying:
		return true
	}
	return false
}

// PilotRecord is a pilot as returned by the remote API. TotalHours and
// JoinDate are optional on the wire.
type PilotRecord struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Callsign   string      `json:"callsign"`
	Division   string      `json:"division"`
	Rating     string      `json:"rating"`
	Status     PilotStatus `json:"status"`
	TotalHours *float64    `json:"totalHours,omitempty"`
	JoinDate   string      `json:"joinDate,omitempty"`
}

// Pilot is the display value of a pilot. TotalHours and Flights hold
// Unknown when the source carries no value.
type Pilot struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Callsign   string      `json:"callsign"`
	Rank       string      `json:"rank"`
	TotalHours float64     `json:"totalHours"`
	Flights    int         `json:"flights"`
	JoinDate   time.Time   `json:"joinDate"`
	Status     PilotStatus `json:"status"`
}
