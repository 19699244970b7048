package hebdate

import "time"

var weekdayNamesHE = [...]string{
	"יום ראשון",
	"יום שני",
	"יום שלישי",
	"יום רביעי",
	"יום חמישי",
	"יום שישי",
	"שבת",
}

// WeekdayName returns the localized name for a weekday.
func WeekdayName(wd time.Weekday, lang Lang) string {
	if lang == LangHebrew {
		return weekdayNamesHE[int(wd)]
	}
	return wd.String()
}

// UnknownLabel is the localized placeholder used when resolution fails and a
// default date is substituted.
func UnknownLabel(lang Lang) string {
	if lang == LangHebrew {
		return "לא מזוהה"
	}
	return "unrecognized"
}
