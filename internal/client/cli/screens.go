package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/levantva/crewcenter/internal/client/screens"
	"github.com/levantva/crewcenter/internal/common"
)

var errNoScreen = errors.New("no screen open, use dashboard or map")

func (a *App) Dashboard(ctx context.Context) error {
	if err := a.switchScreen(ctx, screenDashboard); err != nil {
		return err
	}
	renderDashboard(a.out, a.translator, a.dashboard.Snapshot())
	return nil
}

func (a *App) LiveMap(ctx context.Context) error {
	if err := a.switchScreen(ctx, screenLiveMap); err != nil {
		return err
	}
	a.renderMap()
	return nil
}

// Select opens the live map if needed and selects a flight by id. Without
// an id it clears the selection.
func (a *App) Select(ctx context.Context, args []string) error {
	if err := a.switchScreen(ctx, screenLiveMap); err != nil {
		return err
	}
	if len(args) == 0 {
		a.liveMap.Deselect()
		a.renderMap()
		return nil
	}
	f, err := a.liveMap.Select(args[0])
	if err != nil {
		return err
	}
	renderFlight(a.out, a.translator, f)
	return nil
}

// Refresh polls the open screen now.
func (a *App) Refresh(ctx context.Context) error {
	switch a.screen() {
	case screenDashboard:
		a.dashboard.Refresh(ctx)
		renderDashboard(a.out, a.translator, a.dashboard.Snapshot())
	case screenLiveMap:
		a.liveMap.Refresh(ctx)
		a.renderMap()
	default:
		return errNoScreen
	}
	return nil
}

func (a *App) Events(ctx context.Context) error {
	renderEvents(a.out, a.translator, screens.LoadEvents(ctx, a.deps))
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	u, ok := a.session.Current()
	if !ok {
		return common.ErrNotAuthenticated
	}
	renderProfile(a.out, screens.BuildProfile(u))
	return nil
}

func (a *App) renderMap() {
	sel, ok := a.liveMap.Selected()
	selectedID := ""
	if ok {
		selectedID = sel.ID
	}
	renderLiveMap(a.out, a.translator, a.liveMap.Snapshot(), selectedID)
}

func (a *App) Lang(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "%s: %s (%s)\n", a.translator.T("nav.language"), a.translator.Language(), a.translator.Direction())
		return nil
	}
	if err := a.translator.SetLanguage(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s: %s (%s)\n", a.translator.T("nav.language"), a.translator.Language(), a.translator.Direction())
	return nil
}

func (a *App) Toasts(ctx context.Context) error {
	renderToasts(a.out, a.toasts.List())
	return nil
}

// Dismiss removes a toast by id, or every toast with "all".
func (a *App) Dismiss(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: dismiss <id>|all")
		return nil
	}
	if args[0] == "all" {
		a.toasts.Clear()
		return nil
	}
	a.toasts.Remove(args[0])
	return nil
}
