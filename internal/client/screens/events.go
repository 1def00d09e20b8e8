package screens

import (
	"context"

	"github.com/levantva/crewcenter/internal/client/models"
)

// EventsView is the events screen.
type EventsView struct {
	Events    []models.Event `json:"events"`
	Upcoming  int            `json:"upcoming"`
	Ongoing   int            `json:"ongoing"`
	Completed int            `json:"completed"`
}

// LoadEvents reads the catalogue and counts events by status.
func LoadEvents(ctx context.Context, deps Deps) EventsView {
	v := EventsView{Events: deps.Events.Events(ctx)}
	for _, e := range v.Events {
		switch e.Status {
		case models.EventStatusUpcoming:
			v.Upcoming++
		case models.EventStatusOngoing:
			v.Ongoing++
		case models.EventStatusCompleted:
			v.Completed++
		}
	}
	return v
}
