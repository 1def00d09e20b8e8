package screens

import (
	"strings"

	"github.com/levantva/crewcenter/internal/client/format"
	"github.com/levantva/crewcenter/internal/client/models"
)

type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type PastFlight struct {
	ID       string `json:"id"`
	Callsign string `json:"callsign"`
	Route    string `json:"route"`
	Date     string `json:"date"`
	Duration string `json:"duration"`
	Status   string `json:"status"`
}

// ProfileView is the profile screen of the signed-in member.
type ProfileView struct {
	User          models.User   `json:"user"`
	Initials      string        `json:"initials"`
	Location      string        `json:"location"`
	Achievements  []Achievement `json:"achievements"`
	RecentFlights []PastFlight  `json:"recentFlights"`
}

// BuildProfile decorates u with the member's achievements and logbook.
// Neither is served by the API yet, so both are fixed.
func BuildProfile(u models.User) ProfileView {
	return ProfileView{
		User:     u,
		Initials: initials(u.FullName()),
		Location: "Beirut, Lebanon",
		Achievements: []Achievement{
			{ID: "1", Name: "First Flight", Description: "Completed your first flight", Date: "2022-03-20"},
			{ID: "2", Name: "100 Hours", Description: "Reached 100 flight hours", Date: "2022-08-15"},
			{ID: "3", Name: "Long Haul", Description: "Completed a long-haul flight", Date: "2023-01-10"},
			{ID: "4", Name: "Perfect Landing", Description: "Achieved perfect landing score", Date: "2023-06-22"},
		},
		RecentFlights: []PastFlight{
			{ID: "1", Callsign: u.Callsign, Route: "OLBA - OJAI", Date: "2024-01-15", Duration: format.Duration(150), Status: "completed"},
			{ID: "2", Callsign: u.Callsign, Route: "OJAI - OLBA", Date: "2024-01-12", Duration: format.Duration(165), Status: "completed"},
			{ID: "3", Callsign: u.Callsign, Route: "OLBA - OMDB", Date: "2024-01-10", Duration: format.Duration(195), Status: "completed"},
		},
	}
}

func initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		b.WriteRune(r[0])
	}
	return strings.ToUpper(b.String())
}
