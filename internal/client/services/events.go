package services

import (
	"context"
	"slices"
	"time"

	"github.com/levantva/crewcenter/internal/client/models"
	"github.com/levantva/crewcenter/internal/logging"
)

// EventSource supplies the events catalogue from somewhere remote.
type EventSource interface {
	Events(ctx context.Context) ([]models.Event, error)
}

// EventDateLayout is the layout of models.Event.Date.
const EventDateLayout = "2006-01-02"

// StaticEvents is the catalogue used when no remote source is configured or
// the remote source fails. Dates are relative to now so upcoming events stay
// ahead of the clock. Each call returns a fresh slice.
func StaticEvents(now time.Time) []models.Event {
	day := func(offset int) string {
		return now.UTC().AddDate(0, 0, offset).Format(EventDateLayout)
	}
	return []models.Event{
		{
			ID:              "1",
			Title:           "Middle East Aviation Tour",
			Description:     "Join us for an exciting tour across the beautiful airports of the Middle East. Experience the rich aviation culture and stunning landscapes.",
			Date:            day(7),
			Time:            "18:00 UTC",
			Category:        models.EventCategoryTour,
			Participants:    15,
			MaxParticipants: 25,
			Status:          models.EventStatusUpcoming,
			Location:        "Various Airports",
			Organizer:       "Levant VA Staff",
		},
		{
			ID:              "2",
			Title:           "Advanced Landing Techniques Workshop",
			Description:     "Learn advanced landing techniques and improve your piloting skills with our experienced instructors.",
			Date:            day(3),
			Time:            "20:00 UTC",
			Category:        models.EventCategoryTraining,
			Participants:    8,
			MaxParticipants: 12,
			Status:          models.EventStatusUpcoming,
			Location:        "Online",
			Organizer:       "Training Department",
		},
		{
			ID:              "3",
			Title:           "Monthly Group Flight",
			Description:     "Our monthly group flight event featuring scenic routes and community building activities.",
			Date:            day(14),
			Time:            "19:00 UTC",
			Category:        models.EventCategoryEvent,
			Participants:    22,
			MaxParticipants: 30,
			Status:          models.EventStatusUpcoming,
			Location:        "OLBA - Beirut",
			Organizer:       "Community Team",
		},
		{
			ID:              "4",
			Title:           "Cross-Country Challenge",
			Description:     "Test your navigation skills in our cross-country challenge covering multiple countries.",
			Date:            day(-7),
			Time:            "17:00 UTC",
			Category:        models.EventCategoryEvent,
			Participants:    30,
			MaxParticipants: 30,
			Status:          models.EventStatusCompleted,
			Location:        "Multiple Routes",
			Organizer:       "Events Team",
		},
	}
}

// EventService returns the events catalogue. A nil source means the static
// catalogue only.
type EventService struct {
	source EventSource
	log    logging.Logger
	now    func() time.Time
}

// EventOption configures an EventService.
type EventOption func(*EventService)

// WithEventClock sets the clock the static catalogue is dated from.
func WithEventClock(now func() time.Time) EventOption {
	return func(s *EventService) { s.now = now }
}

func NewEventService(source EventSource, log logging.Logger, opts ...EventOption) *EventService {
	s := &EventService{source: source, log: log.With("module", "events"), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Events returns the remote catalogue, or the static one when the remote
// source is absent or fails. Events over capacity are dropped.
func (s *EventService) Events(ctx context.Context) []models.Event {
	events := StaticEvents(s.now())
	if s.source != nil {
		remote, err := s.source.Events(ctx)
		if err != nil {
			s.log.Error(ctx, "loading events catalogue failed, using static catalogue", "error", err)
		} else {
			events = remote
		}
	}

	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if !e.Valid() {
			s.log.Warn(ctx, "dropping event over capacity", "id", e.ID,
				"participants", e.Participants, "max", e.MaxParticipants)
			continue
		}
		out = append(out, e)
	}
	return out
}

// Upcoming returns the events with status upcoming, soonest first.
func (s *EventService) Upcoming(ctx context.Context) []models.Event {
	all := s.Events(ctx)
	out := make([]models.Event, 0, len(all))
	for _, e := range all {
		if e.Status == models.EventStatusUpcoming {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Event) int {
		switch {
		case a.Date < b.Date:
			return -1
		case a.Date > b.Date:
			return 1
		}
		return 0
	})
	return out
}
