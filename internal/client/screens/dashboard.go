package screens

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/levantva/crewcenter/internal/client/models"
	"github.com/levantva/crewcenter/internal/client/poll"
	"github.com/levantva/crewcenter/internal/client/viewmodel"
)

// DashboardStats are the headline counters.
type DashboardStats struct {
	ActiveFlights  int     `json:"activeFlights"`
	OnlinePilots   int     `json:"onlinePilots"`
	UpcomingEvents int     `json:"upcomingEvents"`
	TotalHours     float64 `json:"totalHours"`
}

// DashboardData is one dashboard snapshot.
type DashboardData struct {
	Flights []models.Flight `json:"flights"`
	Pilots  []models.Pilot  `json:"pilots"`
	Events  []models.Event  `json:"events"`
	Stats   DashboardStats  `json:"stats"`
}

// RecentFlights returns at most n flights.
func (d DashboardData) RecentFlights(n int) []models.Flight {
	return d.Flights[:min(n, len(d.Flights))]
}

// TopPilots returns at most n pilots.
func (d DashboardData) TopPilots(n int) []models.Pilot {
	return d.Pilots[:min(n, len(d.Pilots))]
}

// Dashboard polls flights and pilots together and reports every cycle in
// the toast channel.
type Dashboard struct {
	*poll.Controller[DashboardData]
	deps Deps
}

func NewDashboard(deps Deps, interval time.Duration) *Dashboard {
	if interval <= 0 {
		interval = DefaultDashboardInterval
	}
	d := &Dashboard{deps: deps}
	d.Controller = poll.New("dashboard", interval, d.fetch, deps.Log, deps.PollOptions...)
	d.OnUpdate(d.announce)
	return d
}

func (d *Dashboard) fetch(ctx context.Context) (DashboardData, error) {
	var (
		flights []models.FlightRecord
		pilots  []models.PilotRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		flights = d.deps.Data.FetchFlights(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		pilots = d.deps.Data.FetchOnlinePilots(gctx)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return DashboardData{}, err
	}

	var events []models.Event
	if d.deps.Events != nil {
		events = d.deps.Events.Upcoming(ctx)
	}
	if events == nil {
		events = []models.Event{}
	}

	data := DashboardData{
		Flights: viewmodel.Flights(flights, d.deps.now()),
		Pilots:  viewmodel.Pilots(pilots),
		Events:  events,
	}
	data.Stats = DashboardStats{
		ActiveFlights:  len(data.Flights),
		OnlinePilots:   len(data.Pilots),
		UpcomingEvents: len(data.Events),
		TotalHours:     totalHours(data.Pilots),
	}
	return data, nil
}

func (d *Dashboard) announce(s poll.Snapshot[DashboardData]) {
	if d.deps.Toasts == nil {
		return
	}
	if s.Err != nil {
		d.deps.Toasts.Error("Data Load Error", "Failed to load dashboard data")
		return
	}
	d.deps.Toasts.Success("Data Loaded", "Dashboard data refreshed successfully")
}

// totalHours sums known hour counts.
func totalHours(pilots []models.Pilot) float64 {
	var sum float64
	for _, p := range pilots {
		if p.TotalHours > 0 {
			sum += p.TotalHours
		}
	}
	return sum
}
