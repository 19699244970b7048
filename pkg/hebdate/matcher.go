package hebdate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// relative expression tables, keyed by normalized text. Offsets are whole
// days: "in a month" is +30 and "in a year" +365 by definition here, not a
// calendar-aware AddDate.
var relativeEN = map[string]int{
	"today":              0,
	"tomorrow":           1,
	"day after tomorrow": 2,
	"yesterday":          -1,
	"in a week":          7,
	"in two weeks":       14,
	"in a month":         30,
	"in a year":          365,
}

var relativeHE = map[string]int{
	"היום":        0,
	"מחר":         1,
	"מחרתיים":     2,
	"אתמול":       -1,
	"בעוד שבוע":   7,
	"בעוד שבועיים": 14,
	"בעוד חודש":   30,
	"בעוד שנה":    365,
}

// qualifier prefixes stripped before lookup: "by tomorrow", "עד מחר".
var strippedPrefixes = []string{"עד ", "until ", "by ", "on "}

var (
	weekdayRegexEN = regexp.MustCompile(`^(?:(this|next)\s+)?(sunday|monday|tuesday|wednesday|thursday|friday|saturday)$`)
	weekdayRegexHE = regexp.MustCompile(`^(?:יום\s+)?(ראשון|שני|שלישי|רביעי|חמישי|שישי|שבת)(?:\s+(הקרוב|הבא))?$`)
	numericRegex   = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})(?:[./-](\d{4}|\d{2}))?$`)
	spaceRegex     = regexp.MustCompile(`\s+`)
)

var weekdaysEN = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var weekdaysHE = map[string]time.Weekday{
	"ראשון": time.Sunday,
	"שני":   time.Monday,
	"שלישי": time.Tuesday,
	"רביעי": time.Wednesday,
	"חמישי": time.Thursday,
	"שישי":  time.Friday,
	"שבת":   time.Saturday,
}

// normalize lowercases, trims, collapses inner whitespace, and strips a
// leading qualifier so "by Tomorrow" and "עד מחר" hit the tables.
func normalize(expr string) string {
	norm := strings.ToLower(strings.TrimSpace(expr))
	norm = spaceRegex.ReplaceAllString(norm, " ")
	for _, prefix := range strippedPrefixes {
		if strings.HasPrefix(norm, prefix) {
			norm = strings.TrimPrefix(norm, prefix)
			break
		}
	}
	return strings.TrimSpace(norm)
}

func relativeOffset(norm string, lang Lang) (int, bool) {
	if lang == LangHebrew {
		if offset, ok := relativeHE[norm]; ok {
			return offset, true
		}
		return 0, false
	}
	offset, ok := relativeEN[norm]
	return offset, ok
}

// matchWeekday resolves a weekday name to its next occurrence. When today is
// the named weekday: a bare name resolves to today, a "next"/"הבא" qualifier
// pushes it a full week out.
func matchWeekday(norm string, lang Lang, now time.Time) (time.Time, bool) {
	var target time.Weekday
	var explicitNext bool

	switch lang {
	case LangHebrew:
		m := weekdayRegexHE.FindStringSubmatch(norm)
		if m == nil {
			return time.Time{}, false
		}
		target = weekdaysHE[m[1]]
		explicitNext = m[2] == "הבא"
	default:
		m := weekdayRegexEN.FindStringSubmatch(norm)
		if m == nil {
			return time.Time{}, false
		}
		target = weekdaysEN[m[2]]
		explicitNext = m[1] == "next"
	}

	daysAhead := (int(target) - int(now.Weekday()) + 7) % 7
	if daysAhead == 0 && explicitNext {
		daysAhead = 7
	}

	return startOfDay(now).AddDate(0, 0, daysAhead), true
}

// matchNumeric parses D/M, D.M, D-M with an optional 2- or 4-digit year.
// Day first: this is the Israeli convention of the source data. Out-of-range
// day or month values make the whole pattern a non-match so the expression
// can still reach the fallback.
func matchNumeric(norm string, now time.Time) (time.Time, bool) {
	m := numericRegex.FindStringSubmatch(norm)
	if m == nil {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(m[2])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}

	year := now.Year()
	if m[3] != "" {
		year, err = strconv.Atoi(m[3])
		if err != nil {
			return time.Time{}, false
		}
		if len(m[3]) == 2 {
			if year < 50 {
				year += 2000
			} else {
				year += 1900
			}
		}
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()), true
}
