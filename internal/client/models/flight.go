// Package models defines the records exchanged with the flight-network API
// and the display-ready values the screens render.
package models

import "time"

// Unknown marks a count the remote API does not provide.
const Unknown = -1

// FlightStatus is the display status of a flight.
type FlightStatus string

const (
	FlightStatusBoarding  FlightStatus = "boarding"
	FlightStatusDeparted  FlightStatus = "departed"
	FlightStatusEnRoute   FlightStatus = "en-route"
	FlightStatusArrived   FlightStatus = "arrived"
	FlightStatusCancelled FlightStatus = "cancelled"
)

// FlightPilot is the pilot reference embedded in a flight record.
type FlightPilot struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Callsign string `json:"callsign"`
}

// FlightRecord is a flight as returned by the remote API.
type FlightRecord struct {
	ID        string      `json:"id"`
	Callsign  string      `json:"callsign"`
	Aircraft  string      `json:"aircraft"`
	Departure string      `json:"departure"`
	Arrival   string      `json:"arrival"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Altitude  float64     `json:"altitude"`
	Speed     float64     `json:"speed"`
	Heading   float64     `json:"heading"`
	Pilot     FlightPilot `json:"pilot"`
}

// FlightCrew is the pilot reference of a display flight.
type FlightCrew struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Rank string `json:"rank"`
}

// Flight is the display value of a flight.
type Flight struct {
	ID            string       `json:"id"`
	Callsign      string       `json:"callsign"`
	Aircraft      string       `json:"aircraft"`
	Route         string       `json:"route"`
	Departure     string       `json:"departure"`
	Arrival       string       `json:"arrival"`
	Status        FlightStatus `json:"status"`
	Altitude      float64      `json:"altitude"`
	Speed         float64      `json:"speed"`
	Heading       float64      `json:"heading"`
	Latitude      float64      `json:"latitude"`
	Longitude     float64      `json:"longitude"`
	DepartureTime time.Time    `json:"departureTime"`
	ArrivalTime   time.Time    `json:"arrivalTime"`
	Pilot         FlightCrew   `json:"pilot"`
}
