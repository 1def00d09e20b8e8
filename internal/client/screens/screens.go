// Package screens assembles the data each screen shows: the dashboard and
// live map poll through the gateway, the events and profile screens load
// on demand.
package screens

import (
	"context"
	"time"

	"github.com/levantva/crewcenter/internal/client/models"
	"github.com/levantva/crewcenter/internal/client/poll"
	"github.com/levantva/crewcenter/internal/client/services"
	"github.com/levantva/crewcenter/internal/client/toast"
	"github.com/levantva/crewcenter/internal/logging"
)

const (
	DefaultDashboardInterval = 30 * time.Second
	DefaultLiveMapInterval   = 10 * time.Second
)

// Catalogue lists community events.
type Catalogue interface {
	Events(ctx context.Context) []models.Event
	Upcoming(ctx context.Context) []models.Event
}

// Deps are the collaborators shared by every screen.
type Deps struct {
	Data        services.DataSource
	Events      Catalogue
	Toasts      *toast.Channel
	Log         logging.Logger
	Now         func() time.Time
	PollOptions []poll.Option
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
