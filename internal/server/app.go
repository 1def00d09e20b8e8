// Package server initializes and runs the crew center portal: the HTTP API
// with its WebSocket, and the gRPC health service. It handles graceful
// shutdown on SIGINT, SIGTERM and SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/levantva/crewcenter/internal/client/catalog"
	"github.com/levantva/crewcenter/internal/client/client"
	"github.com/levantva/crewcenter/internal/client/i18n"
	"github.com/levantva/crewcenter/internal/client/screens"
	"github.com/levantva/crewcenter/internal/client/services"
	"github.com/levantva/crewcenter/internal/client/toast"
	"github.com/levantva/crewcenter/internal/logging"
	"github.com/levantva/crewcenter/internal/server/api"
	"github.com/levantva/crewcenter/internal/server/config"
	"github.com/levantva/crewcenter/internal/server/websocket"

	gs "github.com/levantva/crewcenter/internal/server/grpc"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	gateway *services.Gateway
	toasts  *toast.Channel
	hub     *websocket.Hub
	handler *api.Handler
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	mode, err := services.ParseAuthMode(c.AuthMode)
	if err != nil {
		return nil, err
	}
	lang, err := i18n.Parse(c.Language)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}
	repos := client.NewRepositories(db)

	gw := services.NewGateway(ctx, client.NewHTTPClient(c.APIBaseURL, c.Credentials, nil), c.Credentials, logger)

	var source services.EventSource
	if cat := c.Catalog(); cat.Enabled() {
		s3src, err := catalog.NewS3Source(ctx, cat)
		if err != nil {
			logger.Warn(ctx, "events bucket unavailable, using static catalogue", "error", err)
		} else {
			source = s3src
		}
	}

	session := services.NewSessionStore(gw, repos.Metadata, mode, logger)
	translator := i18n.NewTranslator(repos.Metadata, lang, logger)
	if err := session.Restore(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := translator.Restore(ctx); err != nil {
		db.Close()
		return nil, err
	}

	toasts := toast.New()
	hub := websocket.NewHub(logger)

	h := api.NewHandler(api.Options{
		Screens: screens.Deps{
			Data:   gw,
			Events: services.NewEventService(source, logger),
			Toasts: toasts,
			Log:    logger,
		},
		Session:           session,
		Translator:        translator,
		Hub:               hub,
		DashboardInterval: c.DashboardInterval,
		LiveMapInterval:   c.LiveMapInterval,
	})

	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		gateway: gw,
		toasts:  toasts,
		hub:     hub,
		handler: h,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewHealthServer(app.config.EndpointAddrGRPC, app.logger, app.gateway)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	srv := &http.Server{
		Addr:              app.config.EndpointAddrHTTP,
		Handler:           api.NewRouter(app.handler),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			app.logger.Error(sctx, "HTTP shutdown failed", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until a signal arrives, ctx is done or a server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	unsubscribe := api.BroadcastToasts(app.toasts, app.hub)
	defer unsubscribe()

	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		app.hub.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.toasts.Clear()
	if err := app.gateway.Close(); err != nil {
		app.logger.Error(ctx, "closing gateway failed", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing database failed", "error", err)
	}
	app.logger.Info(ctx, "Stopped")
}
