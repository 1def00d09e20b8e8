// Package api serves the crew center portal: a JSON API over the gateway,
// session store, translator and toast channel, plus a WebSocket that
// streams screen snapshots and toasts.
package api

import (
	"context"
	"slices"
	"time"

	"github.com/levantva/crewcenter/internal/client/i18n"
	"github.com/levantva/crewcenter/internal/client/poll"
	"github.com/levantva/crewcenter/internal/client/screens"
	"github.com/levantva/crewcenter/internal/client/services"
	"github.com/levantva/crewcenter/internal/logging"
	"github.com/levantva/crewcenter/internal/server/websocket"
)

// Options are the portal's collaborators.
type Options struct {
	Screens           screens.Deps
	Session           *services.SessionStore
	Translator        *i18n.Translator
	Hub               *websocket.Hub
	DashboardInterval time.Duration
	LiveMapInterval   time.Duration
}

type Handler struct {
	deps       screens.Deps
	session    *services.SessionStore
	translator *i18n.Translator
	hub        *websocket.Hub
	log        logging.Logger

	dashboardInterval time.Duration
	liveMapInterval   time.Duration
}

func NewHandler(o Options) *Handler {
	return &Handler{
		deps:              o.Screens,
		session:           o.Session,
		translator:        o.Translator,
		hub:               o.Hub,
		log:               o.Screens.Log.With("module", "api"),
		dashboardInterval: o.DashboardInterval,
		liveMapInterval:   o.LiveMapInterval,
	}
}

// oneShot returns deps whose controllers fetch only when mounted. Reads
// through the REST API raise no toasts.
func (h *Handler) oneShot() screens.Deps {
	d := h.deps
	d.Toasts = nil
	d.PollOptions = append(slices.Clone(d.PollOptions), poll.WithScheduler(poll.Manual{}))
	return d
}

func (h *Handler) loadDashboard(ctx context.Context) (poll.Snapshot[screens.DashboardData], error) {
	d := screens.NewDashboard(h.oneShot(), h.dashboardInterval)
	if err := d.Mount(ctx); err != nil {
		return poll.Snapshot[screens.DashboardData]{}, err
	}
	defer d.Unmount()
	return d.Snapshot(), nil
}

func (h *Handler) loadLiveMap(ctx context.Context) (*screens.LiveMap, error) {
	m := screens.NewLiveMap(h.oneShot(), h.liveMapInterval)
	if err := m.Mount(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (h *Handler) now() time.Time {
	if h.deps.Now != nil {
		return h.deps.Now()
	}
	return time.Now()
}
