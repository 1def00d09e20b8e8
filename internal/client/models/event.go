package models

type EventCategory string

const (
	EventCategoryTour     EventCategory = "tour"
	EventCategoryEvent    EventCategory = "event"
	EventCategoryTraining EventCategory = "training"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
)

// Event is a community event. Date is YYYY-MM-DD, Time is free text such
// as "18:00 UTC".
type Event struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Date            string        `json:"date"`
	Time            string        `json:"time"`
	Category        EventCategory `json:"category"`
	Participants    int           `json:"participants"`
	MaxParticipants int           `json:"maxParticipants"`
	Status          EventStatus   `json:"status"`
	Location        string        `json:"location"`
	Organizer       string        `json:"organizer"`
}

// Full reports whether no seats are left.
func (e Event) Full() bool {
	return e.Participants >= e.MaxParticipants
}

// Valid reports whether participation stays within capacity.
func (e Event) Valid() bool {
	return e.Participants >= 0 && e.Participants <= e.MaxParticipants
}
