package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/levantva/crewcenter/internal/client/models"
	"github.com/levantva/crewcenter/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	if u, ok := a.session.Current(); ok {
		fmt.Fprintf(a.out, "Already signed in as %s\n", u.Callsign)
		return nil
	}

	callsign, err := GetSimpleText(a.reader, "Callsign", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	u, err := a.session.Login(ctx, callsign, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			a.toasts.Error("Login Failed", "Invalid callsign or password")
		}
		return err
	}
	a.toasts.Success("Login Successful", fmt.Sprintf("Welcome back, %s!", u.Callsign))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.translator.T("profile.logout"), "OK")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.session.Current()
	if !ok {
		return common.ErrNotAuthenticated
	}
	renderUser(a.out, u)
	return nil
}

// Update applies field=value pairs to the signed-in member.
func (a *App) Update(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: update <field>=<value>... (fields: firstName, lastName, callsign, division, rating, status, email, joinDate, totalHours)")
		return nil
	}
	kv, err := parseAssignments(args)
	if err != nil {
		return err
	}
	patch, err := buildPatch(kv)
	if err != nil {
		return err
	}

	u, ok, err := a.session.Update(ctx, patch)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrNotAuthenticated
	}
	renderUser(a.out, u)
	return nil
}

func buildPatch(kv map[string]string) (models.UserPatch, error) {
	var p models.UserPatch
	for k, v := range kv {
		switch k {
		case "firstName":
			p.FirstName = &v
		case "lastName":
			p.LastName = &v
		case "callsign":
			p.Callsign = &v
		case "division":
			p.Division = &v
		case "rating":
			p.Rating = &v
		case "status":
			p.Status = &v
		case "email":
			p.Email = &v
		case "joinDate":
			p.JoinDate = &v
		case "totalHours":
			h, err := strconv.ParseFloat(v, 64)
			if err != nil || h < 0 {
				return models.UserPatch{}, fmt.Errorf("totalHours must be a non-negative number, got %q", v)
			}
			p.TotalHours = &h
		default:
			return models.UserPatch{}, fmt.Errorf("unknown field %q", k)
		}
	}
	return p, nil
}
