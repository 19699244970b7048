// Package hebdate resolves a closed set of Hebrew and English date
// expressions to calendar dates without any external call. It also carries
// the fixed approximate holiday table and localized weekday names used to
// annotate resolved dates.
package hebdate

import "time"

// Lang selects the expression tables and output labels.
type Lang string

const (
	LangHebrew  Lang = "he"
	LangEnglish Lang = "en"
)

// Resolution is the result of a deterministic match.
type Resolution struct {
	Date        time.Time // start of day in now's location
	WeekdayName string    // localized
	HebrewDate  string    // approximate display string
	IsHoliday   bool
	HolidayName string
}

// Match resolves expr against the fixed pattern set, anchored at now.
// First match wins, in this order: relative-expression table, holiday name,
// weekday name, numeric date. The ordering matters because some patterns are
// substrings of others. Returns false when nothing matches; malformed input
// is a non-match, never an error.
func Match(expr string, lang Lang, now time.Time) (Resolution, bool) {
	norm := normalize(expr)
	if norm == "" {
		return Resolution{}, false
	}

	if offset, ok := relativeOffset(norm, lang); ok {
		return newResolution(startOfDay(now).AddDate(0, 0, offset), lang), true
	}

	if date, ok := matchHolidayName(norm, now); ok {
		return newResolution(date, lang), true
	}

	if date, ok := matchWeekday(norm, lang, now); ok {
		return newResolution(date, lang), true
	}

	if date, ok := matchNumeric(norm, now); ok {
		return newResolution(date, lang), true
	}

	return Resolution{}, false
}

// newResolution fills in the localized annotations for a resolved date.
func newResolution(date time.Time, lang Lang) Resolution {
	name, isHoliday := HolidayOn(date.Month(), date.Day())
	return Resolution{
		Date:        date,
		WeekdayName: WeekdayName(date.Weekday(), lang),
		HebrewDate:  ApproximateHebrewDate(date),
		IsHoliday:   isHoliday,
		HolidayName: name,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
