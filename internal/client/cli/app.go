package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/levantva/crewcenter/internal/client/client"
	"github.com/levantva/crewcenter/internal/client/config"
	"github.com/levantva/crewcenter/internal/client/i18n"
	"github.com/levantva/crewcenter/internal/client/poll"
	"github.com/levantva/crewcenter/internal/client/repositories/metadata"
	"github.com/levantva/crewcenter/internal/client/screens"
	"github.com/levantva/crewcenter/internal/client/services"
	"github.com/levantva/crewcenter/internal/client/toast"
	"github.com/levantva/crewcenter/internal/logging"
)

// Mode tells whether the gateway reaches the IVAO API or serves mock data.
type Mode string

const (
	ModeLive Mode = "live"
	ModeMock Mode = "mock"
)

type screen string

const (
	screenNone      screen = ""
	screenDashboard screen = "dashboard"
	screenLiveMap   screen = "map"
)

type App struct {
	config *config.Config
	log    logging.Logger
	out    io.Writer
	reader *bufio.Reader
	db     *sql.DB

	gateway    *services.Gateway
	session    *services.SessionStore
	translator *i18n.Translator
	toasts     *toast.Channel
	deps       screens.Deps

	dashboard *screens.Dashboard
	liveMap   *screens.LiveMap

	mu      sync.Mutex
	current screen
	Mode    Mode

	stopToasts func()
}

// NewApp opens the local store and builds the services. The saved session
// and language are restored before it returns.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	mode, err := services.ParseAuthMode(c.AuthMode)
	if err != nil {
		db.Close()
		return nil, err
	}

	lang, err := i18n.Parse(c.Language)
	if err != nil {
		log.Warn(ctx, "unsupported language in config, using English", "language", c.Language)
		lang = i18n.English
	}

	repos := client.NewRepositories(db)
	api := client.NewHTTPClient(c.APIBaseURL, c.Credentials, nil)
	gw := services.NewGateway(ctx, api, c.Credentials, log)

	a := newApp(c, log, gw, repos.Metadata, mode, lang, os.Stdin, os.Stdout)
	a.db = db

	if err := a.restore(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, gw *services.Gateway, repo metadata.Repository,
	mode services.AuthMode, lang i18n.Language, in io.Reader, out io.Writer, pollOpts ...poll.Option) *App {

	toasts := toast.New()
	deps := screens.Deps{
		Data:   gw,
		Events: services.NewEventService(nil, log),
		Toasts: toasts,
		Log:    log,

		PollOptions: pollOpts,
	}

	a := &App{
		config:     c,
		log:        log.With("module", "cli"),
		out:        &syncWriter{w: out},
		reader:     bufio.NewReader(in),
		gateway:    gw,
		session:    services.NewSessionStore(gw, repo, mode, log),
		translator: i18n.NewTranslator(repo, lang, log),
		toasts:     toasts,
		deps:       deps,
		dashboard:  screens.NewDashboard(deps, c.DashboardInterval),
		liveMap:    screens.NewLiveMap(deps, c.LiveMapInterval),
	}
	a.setMode(gw.Live())
	return a
}

func (a *App) restore(ctx context.Context) error {
	if err := a.session.Restore(ctx); err != nil {
		return err
	}
	return a.translator.Restore(ctx)
}

func (a *App) setMode(live bool) {
	mode := ModeMock
	if live {
		mode = ModeLive
	}
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "gateway mode", "mode", mode)
	}
}

// Run starts the toast printer and the REPL. It returns when the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Levant VA crew center (type 'help' for commands)")
	a.stopToasts = a.toasts.Subscribe(a.printToast)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

// Close stops polling and releases the local store.
func (a *App) Close() error {
	a.switchScreen(context.Background(), screenNone)
	if a.stopToasts != nil {
		a.stopToasts()
		a.stopToasts = nil
	}
	if a.gateway != nil {
		_ = a.gateway.Close()
	}
	if a.db != nil {
		err := a.db.Close()
		a.db = nil
		return err
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	s := ""
	if u, ok := a.session.Current(); ok {
		s = u.Callsign + " "
	}
	s += string(a.Mode)
	a.mu.Lock()
	if a.current != screenNone {
		s += " " + string(a.current)
	}
	a.mu.Unlock()
	return fmt.Sprintf("(%s)", s)
}

// switchScreen unmounts the polling screen in view and mounts next.
func (a *App) switchScreen(ctx context.Context, next screen) error {
	a.mu.Lock()
	prev := a.current
	a.current = next
	a.mu.Unlock()

	if prev == next && next != screenNone {
		return nil
	}

	switch prev {
	case screenDashboard:
		a.dashboard.Unmount()
	case screenLiveMap:
		a.liveMap.Unmount()
	}

	switch next {
	case screenDashboard:
		return a.dashboard.Mount(ctx)
	case screenLiveMap:
		return a.liveMap.Mount(ctx)
	}
	return nil
}

func (a *App) screen() screen {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// syncWriter serializes writes from the REPL with those of toast and poll
// goroutines.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (a *App) printToast(e toast.Event) {
	if e.Type != toast.Added {
		return
	}
	fmt.Fprintf(a.out, "\n[%s] %s: %s\n", e.Toast.Severity, e.Toast.Title, e.Toast.Message)
}
