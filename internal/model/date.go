package model

import "time"

// Language tags supported by the pipeline.
type Language string

const (
	LanguageHebrew  Language = "he"
	LanguageEnglish Language = "en"
)

// IsValid reports whether the language tag is one the pipeline supports.
func (l Language) IsValid() bool {
	return l == LanguageHebrew || l == LanguageEnglish
}

// DateSource records which path produced a ResolvedDate.
type DateSource string

const (
	// DateSourcePattern means the deterministic matcher resolved the expression.
	DateSourcePattern DateSource = "pattern"
	// DateSourceModel means the AI fallback resolved the expression.
	DateSourceModel DateSource = "model"
	// DateSourceDefault means resolution failed and the anchored default was used.
	DateSourceDefault DateSource = "default"
)

// ResolvedDate is the normalized output of date resolution. Produced fresh
// per resolution call and never mutated afterwards.
type ResolvedDate struct {
	GregorianDate time.Time  `json:"gregorian_date"`
	HebrewDate    string     `json:"hebrew_date"` // approximate display string, not a lunisolar conversion
	WeekdayName   string     `json:"weekday_name"`
	IsHoliday     bool       `json:"is_holiday"`
	HolidayName   string     `json:"holiday_name,omitempty"`
	Source        DateSource `json:"source"`
}
