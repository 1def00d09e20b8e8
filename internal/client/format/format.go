// Package format renders flight figures for display.
package format

import (
	"fmt"
	"math"
	"time"
)

// Time renders t as 24-hour HH:MM:SS.
func Time(t time.Time) string {
	return t.Format(time.TimeOnly)
}

// Date renders t as "January 2, 2006".
func Date(t time.Time) string {
	return t.Format("January 2, 2006")
}

// Day renders a "2006-01-02" calendar date like Date. Other input is
// returned unchanged.
func Day(s string) string {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return s
	}
	return Date(t)
}

// Duration renders whole minutes as "2h 30m".
func Duration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// Speed renders knots without decimals.
func Speed(kts float64) string {
	return fmt.Sprintf("%.0fkts", kts)
}

// Altitude renders feet as a flight level.
func Altitude(ft float64) string {
	return fmt.Sprintf("FL%d", int(math.Floor(ft/100)))
}

// Hours renders a pilot's hour count, or "-" when unknown.
func Hours(h float64) string {
	if h < 0 {
		return "-"
	}
	return fmt.Sprintf("%.0fh", h)
}
