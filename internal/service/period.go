package service

import (
	"fmt"
	"time"

	"github.com/Vizzilnt/Protracker1/internal/models"
)

const isoDate = "2006-01-02"

// Period is a resolved date range plus display label for one timeframe. Start
// and End carry day precision; both bounds are inclusive.
type Period struct {
	Start time.Time
	End   time.Time
	Label string
}

// StartDate returns the inclusive lower bound as an ISO date string.
func (p Period) StartDate() string {
	return p.Start.Format(isoDate)
}

// EndDate returns the inclusive upper bound as an ISO date string.
func (p Period) EndDate() string {
	return p.End.Format(isoDate)
}

// Contains reports whether the ISO date falls within the period.
func (p Period) Contains(date string) bool {
	return date >= p.StartDate() && date <= p.EndDate()
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart finds the Monday of the week containing t. A Sunday belongs to the
// week that ends that day, so its Monday is six days back.
func weekStart(t time.Time) time.Time {
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7
	}
	return truncateDay(t).AddDate(0, 0, -offset+1)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func yearStart(t time.Time) time.Time {
	return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
}

// ResolvePeriod computes the canonical bounds and label for the timeframe
// anchored at the given date.
func ResolvePeriod(anchor time.Time, tf models.Timeframe) Period {
	d := truncateDay(anchor)
	switch tf {
	case models.TimeframeWeekly:
		start := weekStart(d)
		return Period{
			Start: start,
			End:   start.AddDate(0, 0, 6),
			Label: "Week of " + start.Format("Jan 2"),
		}
	case models.TimeframeMonthly:
		start := monthStart(d)
		return Period{
			Start: start,
			End:   start.AddDate(0, 1, -1),
			Label: d.Format("January 2006"),
		}
	case models.TimeframeYearly:
		start := yearStart(d)
		return Period{
			Start: start,
			End:   time.Date(d.Year(), 12, 31, 0, 0, 0, 0, d.Location()),
			Label: fmt.Sprintf("%d", d.Year()),
		}
	default:
		return Period{Start: d, End: d, Label: d.Format("Mon, Jan 2, 2006")}
	}
}

// Navigate shifts the anchor by one timeframe unit in the given direction.
// The anchor must be snapped first: an end-of-month day would otherwise
// normalize past the next month. The caller re-resolves the period from the
// returned anchor.
func Navigate(anchor time.Time, tf models.Timeframe, direction int) time.Time {
	d := truncateDay(anchor)
	switch tf {
	case models.TimeframeWeekly:
		return d.AddDate(0, 0, 7*direction)
	case models.TimeframeMonthly:
		return d.AddDate(0, direction, 0)
	case models.TimeframeYearly:
		return d.AddDate(direction, 0, 0)
	default:
		return d.AddDate(0, 0, direction)
	}
}

// SnapAnchor re-anchors the view date after a timeframe switch: weekly snaps
// to that week's Monday, monthly to day 1, yearly to Jan 1, daily keeps the
// current day.
func SnapAnchor(anchor time.Time, tf models.Timeframe) time.Time {
	d := truncateDay(anchor)
	switch tf {
	case models.TimeframeWeekly:
		return weekStart(d)
	case models.TimeframeMonthly:
		return monthStart(d)
	case models.TimeframeYearly:
		return yearStart(d)
	default:
		return d
	}
}

// ResetAnchor re-anchors to today and returns the dependent default deadline:
// today's date for the daily view, empty for every other timeframe.
func ResetAnchor(now time.Time, tf models.Timeframe) (time.Time, string) {
	today := truncateDay(now)
	if tf == models.TimeframeDaily {
		return today, today.Format(isoDate)
	}
	return today, ""
}
