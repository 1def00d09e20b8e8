package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levantva/crewcenter/internal/client/client"
	"github.com/levantva/crewcenter/internal/client/config"
	"github.com/levantva/crewcenter/internal/client/i18n"
	"github.com/levantva/crewcenter/internal/client/models"
	"github.com/levantva/crewcenter/internal/client/poll"
	"github.com/levantva/crewcenter/internal/client/repositories/metadata"
	"github.com/levantva/crewcenter/internal/client/services"
	"github.com/levantva/crewcenter/internal/client/toast"
	"github.com/levantva/crewcenter/internal/common"
	"github.com/levantva/crewcenter/internal/logging"
)

// safeBuffer lets tests read output while app goroutines write it.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *safeBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

type noTicks struct{}

func (noTicks) Every(time.Duration, func()) (func(), error) { return func() {}, nil }

func newTestApp(t *testing.T, input string, mode services.AuthMode) (*App, *safeBuffer, *metadata.MemoryRepository) {
	t.Helper()
	ctx := context.Background()
	log := logging.Discard()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	gw := services.NewGateway(ctx, client.NewHTTPClient("http://127.0.0.1:1", client.Credentials{}, nil), client.Credentials{}, log)
	repo := metadata.NewMemoryRepository()
	var out safeBuffer

	a := newApp(cfg, log, gw, repo, mode, i18n.English, strings.NewReader(input), &out, poll.WithScheduler(noTicks{}))
	t.Cleanup(func() { a.Close() })
	return a, &out, repo
}

func TestApp_ModeAndStatus(t *testing.T) {
	a, _, _ := newTestApp(t, "", services.AuthModeDemo)
	assert.Equal(t, ModeMock, a.Mode)
	assert.Equal(t, "(mock)", a.getStatus())
	assert.False(t, a.isLoggedIn())
}

func TestApp_LoginDemoAndLogout(t *testing.T) {
	stubPassword(t, "pw", nil)
	a, _, repo := newTestApp(t, "LEV100\n", services.AuthModeDemo)
	ctx := context.Background()

	require.NoError(t, a.Login(ctx))
	require.True(t, a.isLoggedIn())
	assert.Equal(t, "(LEV100 mock)", a.getStatus())

	raw, err := repo.Get(ctx, common.SessionKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "LEV100")

	list := a.toasts.List()
	require.Len(t, list, 1)
	assert.Equal(t, toast.Success, list[0].Severity)
	assert.Equal(t, "Login Successful", list[0].Title)
	assert.Equal(t, "Welcome back, LEV100!", list[0].Message)

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())
	require.ErrorIs(t, a.WhoAmI(ctx), common.ErrNotAuthenticated)
}

func TestApp_LoginStrictRejectsUnknownMember(t *testing.T) {
	stubPassword(t, "pw", nil)
	a, _, _ := newTestApp(t, "LEV100\n", services.AuthModeStrict)

	err := a.Login(context.Background())
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.False(t, a.isLoggedIn())

	list := a.toasts.List()
	require.Len(t, list, 1)
	assert.Equal(t, toast.Error, list[0].Severity)
}

func TestApp_UpdateAndProfile(t *testing.T) {
	stubPassword(t, "pw", nil)
	a, out, _ := newTestApp(t, "LEV100\n", services.AuthModeDemo)
	ctx := context.Background()

	require.ErrorIs(t, a.Profile(ctx), common.ErrNotAuthenticated)
	require.ErrorIs(t, a.Update(ctx, []string{"firstName=Rami"}), common.ErrNotAuthenticated)

	require.NoError(t, a.Login(ctx))
	require.NoError(t, a.Update(ctx, []string{"firstName=Rami", "totalHours=99.5"}))

	u, _ := a.session.Current()
	assert.Equal(t, "Rami", u.FirstName)
	assert.Equal(t, 99.5, u.TotalHours)

	require.Error(t, a.Update(ctx, []string{"rank=Captain"}))
	require.Error(t, a.Update(ctx, []string{"totalHours=-1"}))

	out.Reset()
	require.NoError(t, a.Profile(ctx))
	assert.Contains(t, out.String(), "[RU] Rami User, Beirut, Lebanon")
	assert.Contains(t, out.String(), "First Flight")
}

func TestApp_DashboardMountsAndSwitches(t *testing.T) {
	a, out, _ := newTestApp(t, "", services.AuthModeDemo)
	ctx := context.Background()

	require.NoError(t, a.Dashboard(ctx))
	assert.True(t, a.dashboard.Mounted())
	assert.Contains(t, out.String(), "Active Flights: 3")
	assert.Contains(t, out.String(), "LEV001")

	titles := []string{}
	for _, n := range a.toasts.List() {
		titles = append(titles, n.Title)
	}
	assert.Contains(t, titles, "Data Loaded")

	require.NoError(t, a.LiveMap(ctx))
	assert.False(t, a.dashboard.Mounted())
	assert.True(t, a.liveMap.Mounted())
	assert.Equal(t, "(mock map)", a.getStatus())
}

func TestApp_SelectAndRefresh(t *testing.T) {
	a, out, _ := newTestApp(t, "", services.AuthModeDemo)
	ctx := context.Background()

	require.ErrorIs(t, a.Refresh(ctx), errNoScreen)

	require.NoError(t, a.Select(ctx, []string{"2"}))
	assert.Contains(t, out.String(), "LEV002")
	sel, ok := a.liveMap.Selected()
	require.True(t, ok)
	assert.Equal(t, "2", sel.ID)

	require.ErrorIs(t, a.Select(ctx, []string{"nope"}), common.ErrUnknownFlight)

	out.Reset()
	require.NoError(t, a.Refresh(ctx))
	assert.Contains(t, out.String(), "*  2")

	require.NoError(t, a.Select(ctx, nil))
	_, ok = a.liveMap.Selected()
	assert.False(t, ok)
}

func TestApp_EventsLangAndToasts(t *testing.T) {
	a, out, repo := newTestApp(t, "", services.AuthModeDemo)
	ctx := context.Background()

	require.NoError(t, a.Events(ctx))
	assert.Contains(t, out.String(), "upcoming:")

	require.NoError(t, a.Lang(ctx, []string{"ar"}))
	assert.Contains(t, out.String(), "(rtl)")
	raw, err := repo.Get(ctx, common.LanguageKey)
	require.NoError(t, err)
	assert.Equal(t, "ar", string(raw))
	require.ErrorIs(t, a.Lang(ctx, []string{"fr"}), i18n.ErrUnsupportedLanguage)

	id := a.toasts.Info("Heads up", "")
	out.Reset()
	require.NoError(t, a.Toasts(ctx))
	assert.Contains(t, out.String(), id)

	require.NoError(t, a.Dismiss(ctx, []string{id}))
	assert.Empty(t, a.toasts.List())

	a.toasts.Info("one", "")
	a.toasts.Info("two", "")
	require.NoError(t, a.Dismiss(ctx, []string{"all"}))
	assert.Empty(t, a.toasts.List())
}

func TestApp_PrintToastOnlyOnAdd(t *testing.T) {
	a, out, _ := newTestApp(t, "", services.AuthModeDemo)
	a.printToast(toast.Event{Type: toast.Added, Toast: toast.Toast{Severity: toast.Warning, Title: "T", Message: "M"}})
	a.printToast(toast.Event{Type: toast.Removed, Toast: toast.Toast{Title: "gone"}})
	assert.Equal(t, "\n[warning] T: M\n", out.String())
}

func TestApp_ToastsPrintSafelyAlongsideCommands(t *testing.T) {
	a, out, _ := newTestApp(t, "", services.AuthModeDemo)
	ctx := context.Background()
	a.stopToasts = a.toasts.Subscribe(a.printToast)

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			a.toasts.Add(toast.Info, "Heads up", "from a timer", 0)
		}()
	}
	for i := 0; i < 5; i++ {
		require.NoError(t, a.Events(ctx))
	}
	wg.Wait()

	assert.Equal(t, n, strings.Count(out.String(), "[info] Heads up: from a timer"))
	assert.Equal(t, 5, strings.Count(out.String(), "upcoming:"))
}

func TestRender_DatesAndBlockTime(t *testing.T) {
	a, out, _ := newTestApp(t, "", services.AuthModeDemo)

	renderUser(a.out, models.User{FirstName: "Rami", JoinDate: "2022-03-15", TotalHours: -1})
	assert.Contains(t, out.String(), "March 15, 2022")

	dep := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	out.Reset()
	renderFlight(a.out, a.translator, models.Flight{DepartureTime: dep, ArrivalTime: dep.Add(2 * time.Hour)})
	assert.Contains(t, out.String(), "2h 0m")

	assert.Equal(t, "-", blockTime(models.Flight{}))
}

func TestBuildPatch(t *testing.T) {
	p, err := buildPatch(map[string]string{"callsign": "LEV9", "email": "a@b.c"})
	require.NoError(t, err)
	u := p.Apply(models.User{Callsign: "LEV1"})
	assert.Equal(t, "LEV9", u.Callsign)
	assert.Equal(t, "a@b.c", u.Email)
}
