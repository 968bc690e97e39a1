package model

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/m-mizutani/goerr/v2"
)

// DateLayout is the only text form a calendar date takes at a boundary
const DateLayout = "2006-01-02"

const daysPerWeek = 7

// weekdayOf returns the day-of-week index (Sunday=0 ... Saturday=6) of d.
// The date is rebuilt from its components at UTC midnight, so no local
// offset can move it to a neighbouring day.
func weekdayOf(d civil.Date) int {
	return int(time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday())
}

// MondayOnOrBefore returns the Monday that starts the Monday-Sunday week containing d.
// The result r always satisfies r <= d <= r+6 and MondayOnOrBefore(r) == r.
// d must be valid (d.IsValid()); an impossible date such as 2025-02-31 is
// normalized by AddDays rather than rejected. Boundary input goes through
// ParseDate or ValidateWeekStart first.
func MondayOnOrBefore(d civil.Date) civil.Date {
	index := weekdayOf(d)
	if index == 0 {
		return d.AddDays(-6)
	}
	return d.AddDays(-(index - 1))
}

// CurrentWeekStart returns the Monday of the week containing today
func CurrentWeekStart(today civil.Date) civil.Date {
	return MondayOnOrBefore(today)
}

// PreviousWeekStart returns the Monday of the last completed week before today's week
func PreviousWeekStart(today civil.Date) civil.Date {
	return CurrentWeekStart(today).AddDays(-daysPerWeek)
}

// WeekEnd returns the Sunday closing the week that starts at weekStart
func WeekEnd(weekStart civil.Date) civil.Date {
	return weekStart.AddDays(daysPerWeek - 1)
}

// IsWeekStart reports whether d is a Monday
func IsWeekStart(d civil.Date) bool {
	return d.IsValid() && weekdayOf(d) == 1
}

// ValidateWeekStart returns a validation error unless d is a valid Monday
func ValidateWeekStart(d civil.Date) error {
	if !d.IsValid() {
		return goerr.Wrap(ErrInvalidDate, "week start is not a valid date", goerr.V("date", d))
	}
	if !IsWeekStart(d) {
		return goerr.Wrap(ErrNotWeekStart, "week start is not a Monday",
			goerr.V("date", FormatDate(d)),
			goerr.V("weekday", time.Weekday(weekdayOf(d)).String()),
		)
	}
	return nil
}

// TodayIn converts an instant into the calendar date observed in loc.
// It is the only place where a timestamp becomes a date.
func TodayIn(now time.Time, loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.UTC
	}
	return civil.DateOf(now.In(loc))
}

// ParseDate parses a strict YYYY-MM-DD string by extracting its components.
// Impossible dates such as 2025-02-30 are rejected rather than normalized.
func ParseDate(s string) (civil.Date, error) {
	if len(s) != len(DateLayout) || s[4] != '-' || s[7] != '-' {
		return civil.Date{}, goerr.Wrap(ErrInvalidDate, "date must be formatted as YYYY-MM-DD",
			goerr.V("value", s))
	}

	year, okY := parseDigits(s[0:4])
	month, okM := parseDigits(s[5:7])
	day, okD := parseDigits(s[8:10])
	if !okY || !okM || !okD {
		return civil.Date{}, goerr.Wrap(ErrInvalidDate, "date contains non-digit characters",
			goerr.V("value", s))
	}

	d := civil.Date{Year: year, Month: time.Month(month), Day: day}
	if !d.IsValid() {
		return civil.Date{}, goerr.Wrap(ErrInvalidDate, "date does not exist in the calendar",
			goerr.V("value", s))
	}

	return d, nil
}

func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// FormatDate renders d as YYYY-MM-DD
func FormatDate(d civil.Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// WeekLabel formats a week as "Sep 8-14", or "Dec 29-Jan 4" when it spans two months
func WeekLabel(weekStart civil.Date) string {
	end := WeekEnd(weekStart)
	startMonth := weekStart.Month.String()[:3]
	endMonth := end.Month.String()[:3]
	if startMonth == endMonth {
		return fmt.Sprintf("%s %d-%d", startMonth, weekStart.Day, end.Day)
	}
	return fmt.Sprintf("%s %d-%s %d", startMonth, weekStart.Day, endMonth, end.Day)
}
