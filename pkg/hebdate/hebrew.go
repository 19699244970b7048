package hebdate

import (
	"fmt"
	"time"
)

// Rough Gregorian-month → Hebrew-month mapping. A Gregorian month straddles
// two Hebrew months; the dominant one is used. Display-only.
var hebrewMonthByGregorian = map[time.Month]string{
	time.January:   "טבת",
	time.February:  "שבט",
	time.March:     "אדר",
	time.April:     "ניסן",
	time.May:       "אייר",
	time.June:      "סיון",
	time.July:      "תמוז",
	time.August:    "אב",
	time.September: "אלול",
	time.October:   "תשרי",
	time.November:  "חשון",
	time.December:  "כסלו",
}

// ApproximateHebrewDate renders an approximate Hebrew calendar date for
// display. True lunisolar conversion is out of scope; the day number is
// carried over as-is and the year flips at the Gregorian October boundary.
func ApproximateHebrewDate(t time.Time) string {
	year := t.Year() + 3760
	if t.Month() >= time.October {
		year++
	}
	return fmt.Sprintf("%d %s %d", t.Day(), hebrewMonthByGregorian[t.Month()], year)
}
