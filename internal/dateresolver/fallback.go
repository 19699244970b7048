package dateresolver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/hebdate"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/llmprovider"
)

// modelDate is the JSON shape the fallback prompt asks for.
type modelDate struct {
	GregorianDate string `json:"gregorian_date"`
	HebrewDate    string `json:"hebrew_date"`
	DayOfWeek     string `json:"day_of_week"`
	IsHoliday     bool   `json:"is_holiday"`
	HolidayName   string `json:"holiday_name"`
}

// resolveWithModel asks the language model to resolve expr. Single attempt:
// any failure is returned to the engine, which falls back to the default date.
func (r *implResolver) resolveWithModel(ctx context.Context, expr string, lang model.Language, now time.Time) (model.ResolvedDate, error) {
	system := fallbackSystemPromptEN
	userFormat := fallbackUserPromptEN
	if lang == model.LanguageHebrew {
		system = fallbackSystemPromptHE
		userFormat = fallbackUserPromptHE
	}

	weekday := hebdate.WeekdayName(now.Weekday(), hebdate.Lang(lang))
	user := fmt.Sprintf(userFormat, now.Format("2006-01-02"), weekday, expr)

	resp, err := r.llm.Complete(ctx, &llmprovider.Request{
		SystemPrompt: system,
		UserPrompt:   user,
		Temperature:  fallbackTemperature,
		MaxTokens:    fallbackMaxTokens,
	})
	if err != nil {
		return model.ResolvedDate{}, fmt.Errorf("model completion: %w", err)
	}

	parsed, err := parseModelDate(resp.Text)
	if err != nil {
		return model.ResolvedDate{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", parsed.GregorianDate, now.Location())
	if err != nil {
		return model.ResolvedDate{}, fmt.Errorf("model returned invalid date %q: %w", parsed.GregorianDate, err)
	}

	resolved := model.ResolvedDate{
		GregorianDate: date,
		HebrewDate:    parsed.HebrewDate,
		WeekdayName:   parsed.DayOfWeek,
		IsHoliday:     parsed.IsHoliday,
		HolidayName:   parsed.HolidayName,
		Source:        model.DateSourceModel,
	}
	if resolved.HebrewDate == "" {
		resolved.HebrewDate = hebdate.ApproximateHebrewDate(date)
	}
	if resolved.WeekdayName == "" {
		resolved.WeekdayName = hebdate.WeekdayName(date.Weekday(), hebdate.Lang(lang))
	}

	return resolved, nil
}

// parseModelDate extracts the first {...} span from the response text and
// unmarshals it. Models wrap JSON in fences or prose often enough that
// unmarshaling the raw text directly is not an option.
func parseModelDate(text string) (modelDate, error) {
	start := strings.Index(text, "{")
	if start == -1 {
		return modelDate{}, fmt.Errorf("no JSON object in model response %q", text)
	}
	end := strings.LastIndex(text, "}")
	if end == -1 || end < start {
		return modelDate{}, fmt.Errorf("unterminated JSON object in model response %q", text)
	}

	var parsed modelDate
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return modelDate{}, fmt.Errorf("failed to parse model response: %w", err)
	}
	if parsed.GregorianDate == "" {
		return modelDate{}, fmt.Errorf("model response missing gregorian_date")
	}
	return parsed, nil
}
