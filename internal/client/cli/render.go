package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/levantva/crewcenter/internal/client/format"
	"github.com/levantva/crewcenter/internal/client/models"
	"github.com/levantva/crewcenter/internal/client/poll"
	"github.com/levantva/crewcenter/internal/client/screens"
	"github.com/levantva/crewcenter/internal/client/toast"
)

// translator is the lookup the renderers need.
type translator interface {
	T(key string) string
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderState(w io.Writer, t translator, state poll.State, updated string, err error) bool {
	if state == poll.StateLoading {
		fmt.Fprintln(w, t.T("common.loading"))
		return false
	}
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", t.T("common.error"), err)
	}
	if updated != "" {
		fmt.Fprintf(w, "updated %s\n", updated)
	}
	return true
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return format.Time(t)
}

func renderDashboard(w io.Writer, t translator, s poll.Snapshot[screens.DashboardData]) {
	fmt.Fprintf(w, "== %s ==\n", t.T("dashboard.title"))
	if !renderState(w, t, s.State, stamp(s.UpdatedAt), s.Err) {
		return
	}

	d := s.Data
	fmt.Fprintf(w, "%s: %d  %s: %d  %s: %d  hours: %s\n",
		t.T("dashboard.activeFlights"), d.Stats.ActiveFlights,
		t.T("dashboard.onlinePilots"), d.Stats.OnlinePilots,
		t.T("dashboard.upcomingEvents"), d.Stats.UpcomingEvents,
		format.Hours(d.Stats.TotalHours))

	fmt.Fprintf(w, "\n%s\n", t.T("dashboard.recentFlights"))
	renderFlights(w, t, d.RecentFlights(5), "")

	fmt.Fprintf(w, "\n%s\n", t.T("dashboard.onlinePilots"))
	tw := newTable(w)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.T("flight.callsign"), t.T("flight.pilot"), t.T("resources.rank"), t.T("flight.status"))
	for _, p := range d.TopPilots(5) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Callsign, p.Name, p.Rank, statusLabel(t, string(p.Status)))
	}
	tw.Flush()

	if len(d.Events) > 0 {
		fmt.Fprintf(w, "\n%s\n", t.T("dashboard.upcomingEvents"))
		for _, e := range d.Events {
			fmt.Fprintf(w, "  %s %s  %s\n", format.Day(e.Date), e.Time, e.Title)
		}
	}
}

func renderLiveMap(w io.Writer, t translator, s poll.Snapshot[[]models.Flight], selectedID string) {
	fmt.Fprintf(w, "== %s ==\n", t.T("flightOps.liveMap"))
	if !renderState(w, t, s.State, stamp(s.UpdatedAt), s.Err) {
		return
	}
	renderFlights(w, t, s.Data, selectedID)
}

func renderFlights(w io.Writer, t translator, flights []models.Flight, selectedID string) {
	tw := newTable(w)
	fmt.Fprintf(tw, " \tID\t%s\t%s\t%s\t%s\t%s\t%s\n",
		t.T("flight.callsign"), t.T("flight.aircraft"), t.T("flight.route"),
		t.T("flight.altitude"), t.T("flight.speed"), t.T("flight.status"))
	for _, f := range flights {
		mark := " "
		if f.ID == selectedID {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n", mark, f.ID, f.Callsign, f.Aircraft, f.Route,
			format.Altitude(f.Altitude), format.Speed(f.Speed), statusLabel(t, string(f.Status)))
	}
	tw.Flush()
}

func renderFlight(w io.Writer, t translator, f models.Flight) {
	tw := newTable(w)
	rows := [][2]string{
		{t.T("flight.callsign"), f.Callsign},
		{t.T("flight.aircraft"), f.Aircraft},
		{t.T("flight.route"), f.Route},
		{t.T("flight.pilot"), f.Pilot.Name},
		{t.T("flight.altitude"), format.Altitude(f.Altitude)},
		{t.T("flight.speed"), format.Speed(f.Speed)},
		{t.T("flight.heading"), fmt.Sprintf("%.0f°", f.Heading)},
		{t.T("flight.status"), statusLabel(t, string(f.Status))},
		{t.T("flight.departureTime"), format.Time(f.DepartureTime)},
		{t.T("flight.arrivalTime"), format.Time(f.ArrivalTime)},
		{"Block time", blockTime(f)},
		{"Position", fmt.Sprintf("%.4f, %.4f", f.Latitude, f.Longitude)},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1])
	}
	tw.Flush()
}

// blockTime is the planned time between departure and arrival.
func blockTime(f models.Flight) string {
	if f.DepartureTime.IsZero() || !f.ArrivalTime.After(f.DepartureTime) {
		return "-"
	}
	return format.Duration(int(f.ArrivalTime.Sub(f.DepartureTime).Minutes()))
}

func renderEvents(w io.Writer, t translator, v screens.EventsView) {
	fmt.Fprintf(w, "== %s ==\n", t.T("nav.events"))
	fmt.Fprintf(w, "upcoming: %d  ongoing: %d  completed: %d\n", v.Upcoming, v.Ongoing, v.Completed)
	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tTIME\tTITLE\tCATEGORY\tSEATS\tSTATUS")
	for _, e := range v.Events {
		seats := fmt.Sprintf("%d/%d", e.Participants, e.MaxParticipants)
		if e.Full() {
			seats += " full"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", format.Day(e.Date), e.Time, e.Title, e.Category, seats, e.Status)
	}
	tw.Flush()
}

func renderUser(w io.Writer, u models.User) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Name\t%s\n", u.FullName())
	fmt.Fprintf(tw, "Callsign\t%s\n", u.Callsign)
	fmt.Fprintf(tw, "Division\t%s\n", u.Division)
	fmt.Fprintf(tw, "Rating\t%s\n", u.Rating)
	fmt.Fprintf(tw, "Status\t%s\n", u.Status)
	fmt.Fprintf(tw, "Hours\t%s\n", format.Hours(u.TotalHours))
	fmt.Fprintf(tw, "Joined\t%s\n", format.Day(u.JoinDate))
	if u.Email != "" {
		fmt.Fprintf(tw, "Email\t%s\n", u.Email)
	}
	tw.Flush()
}

func renderProfile(w io.Writer, p screens.ProfileView) {
	fmt.Fprintf(w, "[%s] %s, %s\n", p.Initials, p.User.FullName(), p.Location)
	renderUser(w, p.User)

	fmt.Fprintln(w, "\nAchievements")
	for _, a := range p.Achievements {
		fmt.Fprintf(w, "  %s  %s: %s\n", format.Day(a.Date), a.Name, a.Description)
	}

	fmt.Fprintln(w, "\nRecent flights")
	tw := newTable(w)
	for _, f := range p.RecentFlights {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", format.Day(f.Date), f.Callsign, f.Route, f.Duration, f.Status)
	}
	tw.Flush()
}

func renderToasts(w io.Writer, toasts []toast.Toast) {
	if len(toasts) == 0 {
		fmt.Fprintln(w, "No notifications")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTYPE\tTITLE\tMESSAGE")
	for _, n := range toasts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", n.ID, n.Severity, n.Title, n.Message)
	}
	tw.Flush()
}

// statusLabel translates flight and pilot statuses; unknown ones print as is.
func statusLabel(t translator, status string) string {
	key := "status." + status
	if status == string(models.FlightStatusEnRoute) {
		key = "status.enRoute"
	}
	if v := t.T(key); v != key {
		return v
	}
	return status
}
