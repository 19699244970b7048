package hebdate_test

import (
	"testing"
	"time"

	"github.com/nadavsuissa/EmailManager-sub000/pkg/hebdate"
)

// Wednesday, May 1, 2024.
var base = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestMatch_RelativeTable(t *testing.T) {
	tests := []struct {
		name string
		expr string
		lang hebdate.Lang
		want time.Time
	}{
		{"Today", "today", hebdate.LangEnglish, day(0)},
		{"Tomorrow", "tomorrow", hebdate.LangEnglish, day(1)},
		{"Day after tomorrow", "day after tomorrow", hebdate.LangEnglish, day(2)},
		{"Yesterday", "yesterday", hebdate.LangEnglish, day(-1)},
		{"In a week", "in a week", hebdate.LangEnglish, day(7)},
		{"In two weeks", "in two weeks", hebdate.LangEnglish, day(14)},
		{"In a month is 30 days", "in a month", hebdate.LangEnglish, day(30)},
		{"In a year is 365 days", "in a year", hebdate.LangEnglish, day(365)},
		{"Mixed case with padding", "  ToMoRRow  ", hebdate.LangEnglish, day(1)},
		{"By qualifier stripped", "by tomorrow", hebdate.LangEnglish, day(1)},
		{"Hayom", "היום", hebdate.LangHebrew, day(0)},
		{"Machar", "מחר", hebdate.LangHebrew, day(1)},
		{"Machratayim", "מחרתיים", hebdate.LangHebrew, day(2)},
		{"Etmol", "אתמול", hebdate.LangHebrew, day(-1)},
		{"Beod shavua", "בעוד שבוע", hebdate.LangHebrew, day(7)},
		{"Beod shvuayim", "בעוד שבועיים", hebdate.LangHebrew, day(14)},
		{"Beod chodesh", "בעוד חודש", hebdate.LangHebrew, day(30)},
		{"Beod shana", "בעוד שנה", hebdate.LangHebrew, day(365)},
		{"Ad qualifier stripped", "עד מחר", hebdate.LangHebrew, day(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := hebdate.Match(tt.expr, tt.lang, base)
			if !ok {
				t.Fatalf("Match(%q) = no match, want %v", tt.expr, tt.want)
			}
			if !got.Date.Equal(tt.want) {
				t.Errorf("Match(%q) date = %v, want %v", tt.expr, got.Date, tt.want)
			}
		})
	}
}

func TestMatch_HebrewTableNotVisibleInEnglish(t *testing.T) {
	if _, ok := hebdate.Match("מחר", hebdate.LangEnglish, base); ok {
		t.Errorf("hebrew expression matched under english language tag")
	}
}

func TestMatch_Weekday(t *testing.T) {
	tests := []struct {
		name string
		expr string
		lang hebdate.Lang
		want time.Time
	}{
		{"Next monday from wednesday", "next monday", hebdate.LangEnglish, day(5)},
		{"Bare monday from wednesday", "monday", hebdate.LangEnglish, day(5)},
		{"This friday", "this friday", hebdate.LangEnglish, day(2)},
		{"Bare wednesday on a wednesday is today", "wednesday", hebdate.LangEnglish, day(0)},
		{"Next wednesday on a wednesday is a week out", "next wednesday", hebdate.LangEnglish, day(7)},
		{"Yom rishon", "יום ראשון", hebdate.LangHebrew, day(4)},
		{"Yom shishi hakarov", "יום שישי הקרוב", hebdate.LangHebrew, day(2)},
		{"Yom revii on a wednesday is today", "יום רביעי", hebdate.LangHebrew, day(0)},
		{"Yom revii haba is a week out", "יום רביעי הבא", hebdate.LangHebrew, day(7)},
		{"Shabbat", "שבת", hebdate.LangHebrew, day(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := hebdate.Match(tt.expr, tt.lang, base)
			if !ok {
				t.Fatalf("Match(%q) = no match", tt.expr)
			}
			if !got.Date.Equal(tt.want) {
				t.Errorf("Match(%q) date = %v, want %v", tt.expr, got.Date, tt.want)
			}
		})
	}
}

func TestMatch_WeekdayAnnotations(t *testing.T) {
	got, ok := hebdate.Match("יום ראשון", hebdate.LangHebrew, base)
	if !ok {
		t.Fatal("expected match")
	}
	if got.WeekdayName != "יום ראשון" {
		t.Errorf("weekday name = %q, want hebrew name", got.WeekdayName)
	}

	got, ok = hebdate.Match("sunday", hebdate.LangEnglish, base)
	if !ok {
		t.Fatal("expected match")
	}
	if got.WeekdayName != "Sunday" {
		t.Errorf("weekday name = %q, want %q", got.WeekdayName, "Sunday")
	}
}

func TestMatch_Numeric(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    time.Time
		noMatch bool
	}{
		{"Day month current year", "15/6", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), false},
		{"Dots separator", "15.6.2025", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), false},
		{"Dashes separator", "15-6-2025", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), false},
		{"Two digit year below 50", "1/1/30", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"Two digit year 50 and above", "1/1/75", time.Date(1975, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"Month 13 is not a date", "5/13/99", time.Time{}, true},
		{"Day 32 is not a date", "32/1/99", time.Time{}, true},
		{"Month zero is not a date", "5/0/99", time.Time{}, true},
		{"Three digit year is not a date", "1/1/999", time.Time{}, true},
		{"Prose is not a date", "call me maybe", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := hebdate.Match(tt.expr, hebdate.LangEnglish, base)
			if tt.noMatch {
				if ok {
					t.Fatalf("Match(%q) matched %v, want no match", tt.expr, got.Date)
				}
				return
			}
			if !ok {
				t.Fatalf("Match(%q) = no match, want %v", tt.expr, tt.want)
			}
			if !got.Date.Equal(tt.want) {
				t.Errorf("Match(%q) date = %v, want %v", tt.expr, got.Date, tt.want)
			}
		})
	}
}

func TestMatch_HolidayNames(t *testing.T) {
	// Passover 2024 (table date 13/4) already passed on May 1 — rolls to 2025.
	got, ok := hebdate.Match("פסח", hebdate.LangHebrew, base)
	if !ok {
		t.Fatal("expected holiday name to match")
	}
	want := time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC)
	if !got.Date.Equal(want) {
		t.Errorf("passover = %v, want %v", got.Date, want)
	}
	if !got.IsHoliday || got.HolidayName != "פסח" {
		t.Errorf("expected holiday annotation, got %+v", got)
	}

	// Shavuot is still ahead of May 1.
	got, ok = hebdate.Match("shavuot", hebdate.LangEnglish, base)
	if !ok {
		t.Fatal("expected english holiday alias to match")
	}
	if !got.Date.Equal(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("shavuot = %v", got.Date)
	}
}

func TestHolidayOn(t *testing.T) {
	name, ok := hebdate.HolidayOn(time.September, 25)
	if !ok || name != "יום כיפור" {
		t.Errorf("HolidayOn(9, 25) = %q, %v", name, ok)
	}

	if _, ok := hebdate.HolidayOn(time.September, 26); ok {
		t.Errorf("HolidayOn(9, 26) should not be a holiday")
	}
}

func TestMatch_HolidayAnnotationOnNumericDate(t *testing.T) {
	got, ok := hebdate.Match("25/9", hebdate.LangHebrew, base)
	if !ok {
		t.Fatal("expected numeric match")
	}
	if !got.IsHoliday || got.HolidayName != "יום כיפור" {
		t.Errorf("expected Yom Kippur annotation, got %+v", got)
	}
}

func TestApproximateHebrewDate(t *testing.T) {
	got := hebdate.ApproximateHebrewDate(time.Date(2024, 10, 5, 0, 0, 0, 0, time.UTC))
	if got != "5 תשרי 5785" {
		t.Errorf("ApproximateHebrewDate = %q", got)
	}

	got = hebdate.ApproximateHebrewDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	if got != "1 אייר 5784" {
		t.Errorf("ApproximateHebrewDate = %q", got)
	}
}

func TestUnknownLabel(t *testing.T) {
	if hebdate.UnknownLabel(hebdate.LangHebrew) != "לא מזוהה" {
		t.Errorf("hebrew unknown label wrong")
	}
	if hebdate.UnknownLabel(hebdate.LangEnglish) != "unrecognized" {
		t.Errorf("english unknown label wrong")
	}
}
