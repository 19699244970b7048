package hebdate

import "time"

// holiday is one entry of the fixed approximate holiday table.
type holiday struct {
	Month  time.Month
	Day    int
	NameHE string
	NameEN string
}

// holidays is keyed by common Gregorian month/day. These dates drift year to
// year on the real lunar calendar; the approximation is a documented
// limitation of this table, not a bug. Swap this file for a lunisolar
// library if calendar fidelity is ever needed.
var holidays = []holiday{
	{time.September, 16, "ראש השנה", "Rosh Hashanah"},
	{time.September, 25, "יום כיפור", "Yom Kippur"},
	{time.September, 30, "סוכות", "Sukkot"},
	{time.December, 11, "חנוכה", "Hanukkah"},
	{time.January, 25, "ט\"ו בשבט", "Tu BiShvat"},
	{time.March, 14, "פורים", "Purim"},
	{time.April, 13, "פסח", "Passover"},
	{time.May, 14, "יום העצמאות", "Independence Day"},
	{time.May, 26, "ל\"ג בעומר", "Lag BaOmer"},
	{time.June, 2, "שבועות", "Shavuot"},
}

// holidayAliases maps normalized holiday-name expressions to table entries.
var holidayAliases = map[string]int{}

func init() {
	for i, h := range holidays {
		holidayAliases[normalize(h.NameHE)] = i
		holidayAliases[normalize(h.NameEN)] = i
	}
}

// HolidayOn returns the Hebrew holiday name recognized on the given
// Gregorian month/day, per the fixed approximate table.
func HolidayOn(month time.Month, day int) (string, bool) {
	for _, h := range holidays {
		if h.Month == month && h.Day == day {
			return h.NameHE, true
		}
	}
	return "", false
}

// matchHolidayName resolves a holiday name (either language) to its next
// occurrence: this year's date if it has not passed, otherwise next year's.
func matchHolidayName(norm string, now time.Time) (time.Time, bool) {
	i, ok := holidayAliases[norm]
	if !ok {
		return time.Time{}, false
	}

	h := holidays[i]
	date := time.Date(now.Year(), h.Month, h.Day, 0, 0, 0, 0, now.Location())
	if date.Before(startOfDay(now)) {
		date = date.AddDate(1, 0, 0)
	}
	return date, true
}
