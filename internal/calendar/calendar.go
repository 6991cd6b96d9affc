package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	_ "time/tzdata"
)

// ReferenceZone is the timezone every participant's "day" is measured in.
const ReferenceZone = "Australia/Sydney"

// DayLayout is the canonical day format.
const DayLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

var canonicalDay = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Layouts accepted for records written by older versions of the bot,
// e.g. "Wed Dec 11 2025" from Date.toDateString().
var legacyLayouts = []string{
	"Mon Jan 2 2006",
	"Mon, Jan 2 2006",
	"Jan 2 2006",
	"January 2 2006",
	"Monday, January 2, 2006",
	"1/2/2006",
	"2006/01/02",
}

var location = mustLoadLocation(ReferenceZone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("calendar: failed to load %s: %v", name, err))
	}
	return loc
}

// Location returns the reference timezone.
func Location() *time.Location {
	return location
}

// Today returns the canonical day of now in the reference timezone.
func Today(now time.Time) string {
	return now.In(location).Format(DayLayout)
}

// IsCanonical reports whether s is already a valid YYYY-MM-DD day.
func IsCanonical(s string) bool {
	if !canonicalDay.MatchString(s) {
		return false
	}
	_, err := time.Parse(DayLayout, s)
	return err == nil
}

// Normalize converts a canonical or legacy date string into YYYY-MM-DD.
// Timestamps carrying a clock time are projected into the reference zone first.
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidDate)
	}

	if canonicalDay.MatchString(s) {
		if _, err := time.Parse(DayLayout, s); err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		return s, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Today(t), nil
	}

	for _, layout := range legacyLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DayLayout), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// DayDistance returns b - a in whole calendar days. Both inputs go through
// Normalize, so legacy strings compare on the same basis as canonical ones.
func DayDistance(a, b string) (int, error) {
	da, err := civilDay(a)
	if err != nil {
		return 0, err
	}
	db, err := civilDay(b)
	if err != nil {
		return 0, err
	}
	return int(db - da), nil
}

// civilDay maps a day string to a day number. Dates are anchored at UTC
// midnight so no DST transition can shift the count.
func civilDay(s string) (int64, error) {
	norm, err := Normalize(s)
	if err != nil {
		return 0, err
	}
	t, err := time.ParseInLocation(DayLayout, norm, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t.Unix() / 86400, nil
}
