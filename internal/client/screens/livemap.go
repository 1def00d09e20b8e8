package screens

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/levantva/crewcenter/internal/client/models"
	"github.com/levantva/crewcenter/internal/client/poll"
	"github.com/levantva/crewcenter/internal/client/viewmodel"
	"github.com/levantva/crewcenter/internal/common"
)

// LiveMap polls flights on a short cadence and tracks one selected flight.
type LiveMap struct {
	*poll.Controller[[]models.Flight]
	deps Deps

	mu       sync.Mutex
	selected *models.Flight
}

func NewLiveMap(deps Deps, interval time.Duration) *LiveMap {
	if interval <= 0 {
		interval = DefaultLiveMapInterval
	}
	m := &LiveMap{deps: deps}
	m.Controller = poll.New("livemap", interval, m.fetch, deps.Log, deps.PollOptions...)
	m.OnUpdate(m.track)
	return m
}

func (m *LiveMap) fetch(ctx context.Context) ([]models.Flight, error) {
	records := m.deps.Data.FetchFlights(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return viewmodel.Flights(records, m.deps.now()), nil
}

// Select marks the flight with id as selected. The id must be in the
// current snapshot.
func (m *LiveMap) Select(id string) (models.Flight, error) {
	for _, f := range m.Snapshot().Data {
		if f.ID == id {
			m.mu.Lock()
			sel := f
			m.selected = &sel
			m.mu.Unlock()
			return f, nil
		}
	}
	return models.Flight{}, fmt.Errorf("%w: %s", common.ErrUnknownFlight, id)
}

// Deselect clears the selection.
func (m *LiveMap) Deselect() {
	m.mu.Lock()
	m.selected = nil
	m.mu.Unlock()
}

// Selected returns the selected flight as of the latest snapshot.
func (m *LiveMap) Selected() (models.Flight, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selected == nil {
		return models.Flight{}, false
	}
	return *m.selected, true
}

// track follows the selected flight into each new snapshot and drops the
// selection once the flight is gone.
func (m *LiveMap) track(s poll.Snapshot[[]models.Flight]) {
	if s.Err != nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selected == nil {
		return
	}
	for _, f := range s.Data {
		if f.ID == m.selected.ID {
			sel := f
			m.selected = &sel
			return
		}
	}
	m.selected = nil
}
