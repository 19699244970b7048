package dateresolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/hebdate"
)

// Resolve resolves expr to a concrete date. Deterministic matching runs
// first; the model fallback only fires when the matcher declines, and a
// fallback failure degrades to the anchored default instead of an error.
func (r *implResolver) Resolve(ctx context.Context, expr string, lang model.Language) model.ResolvedDate {
	if !lang.IsValid() {
		lang = model.LanguageHebrew
	}

	now := r.clock().In(r.loc)

	if res, ok := hebdate.Match(expr, hebdate.Lang(lang), now); ok {
		return model.ResolvedDate{
			GregorianDate: res.Date,
			HebrewDate:    res.HebrewDate,
			WeekdayName:   res.WeekdayName,
			IsHoliday:     res.IsHoliday,
			HolidayName:   res.HolidayName,
			Source:        model.DateSourcePattern,
		}
	}

	if r.llm != nil {
		key := memoKey(expr, lang, now)
		if r.memo != nil {
			if cached, ok := r.memo.Get(key); ok {
				return cached
			}
		}

		resolved, err := r.resolveWithModel(ctx, expr, lang, now)
		if err == nil {
			if r.memo != nil {
				r.memo.Add(key, resolved)
			}
			return resolved
		}
		r.l.Warnf(ctx, "%s: fallback failed for %q: %v", resolveLogPrefix, expr, err)
	}

	return r.defaultDate(lang, now)
}

// defaultDate is the terminal degradation: today, flagged as unrecognized.
func (r *implResolver) defaultDate(lang model.Language, now time.Time) model.ResolvedDate {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	label := hebdate.UnknownLabel(hebdate.Lang(lang))
	return model.ResolvedDate{
		GregorianDate: day,
		HebrewDate:    label,
		WeekdayName:   label,
		IsHoliday:     false,
		Source:        model.DateSourceDefault,
	}
}

// memoKey is scoped to the anchor day so cached relative expressions expire
// naturally at midnight.
func memoKey(expr string, lang model.Language, now time.Time) string {
	norm := strings.Join(strings.Fields(strings.ToLower(expr)), " ")
	return fmt.Sprintf("%s|%s|%s", lang, now.Format("2006-01-02"), norm)
}
