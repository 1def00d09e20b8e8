package client

import "github.com/levantva/crewcenter/internal/client/models"

// MockFlights returns the built-in flight records served when the API is
// not configured or unreachable. Each call returns a fresh slice.
func MockFlights() []models.FlightRecord {
	return []models.FlightRecord{
		{
			ID: "1", Callsign: "LEV001", Aircraft: "Boeing 737-800",
			Departure: "OLBA", Arrival: "OJAI",
			Latitude: 33.8209, Longitude: 35.4883,
			Altitude: 35000, Speed: 450, Heading: 90,
			Pilot: models.FlightPilot{ID: "1", Name: "Ahmed Hassan", Callsign: "LEV001"},
		},
		{
			ID: "2", Callsign: "LEV002", Aircraft: "Airbus A320",
			Departure: "OMDB", Arrival: "OLBA",
			Latitude: 25.2532, Longitude: 55.3657,
			Altitude: 38000, Speed: 480, Heading: 270,
			Pilot: models.FlightPilot{ID: "2", Name: "Sarah Al-Mahmoud", Callsign: "LEV002"},
		},
		{
			ID: "3", Callsign: "LEV003", Aircraft: "Boeing 777-300ER",
			Departure: "OLBA", Arrival: "OMDB",
			Latitude: 33.8209, Longitude: 35.4883,
			Altitude: 41000, Speed: 520, Heading: 135,
			Pilot: models.FlightPilot{ID: "3", Name: "Mohammed Khalil", Callsign: "LEV003"},
		},
	}
}

func hours(h float64) *float64 { return &h }

// MockPilots returns the built-in online pilots. Each call returns a fresh
// slice.
func MockPilots() []models.PilotRecord {
	return []models.PilotRecord{
		{ID: "1", Name: "Ahmed Hassan", Callsign: "LEV001", Division: "Middle East", Rating: "Captain", Status: models.PilotStatusOnline, TotalHours: hours(1250), JoinDate: "2022-03-15"},
		{ID: "2", Name: "Sarah Al-Mahmoud", Callsign: "LEV002", Division: "Middle East", Rating: "First Officer", Status: models.PilotStatusOnline, TotalHours: hours(890), JoinDate: "2022-07-20"},
		{ID: "3", Name: "Mohammed Khalil", Callsign: "LEV003", Division: "Middle East", Rating: "Captain", Status: models.PilotStatusOnline, TotalHours: hours(2100), JoinDate: "2021-11-08"},
		{ID: "4", Name: "Fatima Al-Zahra", Callsign: "LEV004", Division: "Middle East", Rating: "First Officer", Status: models.PilotStatusOnline, TotalHours: hours(650), JoinDate: "2023-01-12"},
		{ID: "5", Name: "Omar Al-Rashid", Callsign: "LEV005", Division: "Middle East", Rating: "Captain", Status: models.PilotStatusOnline, TotalHours: hours(1800), JoinDate: "2021-05-30"},
	}
}
