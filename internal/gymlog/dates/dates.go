package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	Layout = "2006-01-02"

	MinYear = 1900
	MaxYear = 2100

	// MaxWeeksBack limits how far back the week view can be moved (2 years)
	MaxWeeksBack = 104
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrDateOutOfRange    = errors.New("date out of range")
	ErrFutureWeek        = errors.New("cannot navigate to future weeks")
	ErrTooFarBack        = fmt.Errorf("cannot navigate beyond %d weeks back", MaxWeeksBack)
)

// Parse accepts only strict YYYY-MM-DD strings and returns UTC midnight of that day.
// All day arithmetic is done on UTC midnights, so DST shifts never move a day boundary.
func Parse(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}

	// YYYY, MM, DD
	componentLens := [3]int{4, 2, 2}

	var nums [3]int
	for i, p := range parts {
		if len(p) != componentLens[i] || !isDigits(p) {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
		}
		nums[i] = n
	}

	y, m, d := nums[0], nums[1], nums[2]
	if y < MinYear || y > MaxYear {
		return time.Time{}, fmt.Errorf("%w: year %d not in [%d, %d]", ErrDateOutOfRange, y, MinYear, MaxYear)
	}
	if m < 1 || m > 12 {
		return time.Time{}, fmt.Errorf("%w: month %d", ErrDateOutOfRange, m)
	}
	if d < 1 || d > 31 {
		return time.Time{}, fmt.Errorf("%w: day %d", ErrDateOutOfRange, d)
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes Feb 30 into March, catch that here
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, fmt.Errorf("%w: %q does not exist", ErrDateOutOfRange, s)
	}

	return t, nil
}

func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Midnight returns the UTC midnight of the UTC day t falls in.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekContaining returns the Sunday..Saturday week (inclusive) containing t.
func WeekContaining(t time.Time) (start, end time.Time) {
	day := Midnight(t)
	start = day.AddDate(0, 0, -int(day.Weekday()))
	return start, start.AddDate(0, 0, 6)
}

// PreviousWeek returns the Sunday..Saturday week immediately preceding the week of t.
func PreviousWeek(t time.Time) (start, end time.Time) {
	currentStart, _ := WeekContaining(t)
	return currentStart.AddDate(0, 0, -7), currentStart.AddDate(0, 0, -1)
}

// WeekBounds returns the week shifted by offset weeks from the week containing now.
// Negative offsets are in the past, positive ones in the future.
func WeekBounds(offset int, now time.Time) (start, end time.Time) {
	thisWeekStart, _ := WeekContaining(now)
	start = thisWeekStart.AddDate(0, 0, offset*7)
	return start, start.AddDate(0, 0, 6)
}

func CurrentWeekBounds(offset int) (start, end time.Time) {
	return WeekBounds(offset, time.Now())
}

// InRange reports whether dateStr lies in [start, end].
// Unparsable dates are never in range.
func InRange(dateStr string, start, end time.Time) bool {
	date, err := Parse(dateStr)
	if err != nil {
		return false
	}
	return !date.Before(start) && !date.After(end)
}

// FormatRange renders a week range like "Jan 7, 2024 - Jan 13, 2024".
func FormatRange(start, end time.Time) string {
	const rangeLayout = "Jan 2, 2006"
	return fmt.Sprintf("%s - %s", start.UTC().Format(rangeLayout), end.UTC().Format(rangeLayout))
}

// ValidateWeekOffset checks that a week view offset is neither in the future
// nor further back than MaxWeeksBack.
func ValidateWeekOffset(offset int) error {
	if offset > 0 {
		return ErrFutureWeek
	}
	if offset < -MaxWeeksBack {
		return ErrTooFarBack
	}
	return nil
}

// IsFuture reports whether the given day is after the UTC day of now.
func IsFuture(day, now time.Time) bool {
	return Midnight(day).After(Midnight(now))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
