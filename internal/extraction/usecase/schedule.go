package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction"
	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/gcalendar"
)

// ScheduleDeadlines creates one calendar event per task that carries a
// resolved deadline. A failed event leaves an empty link for that task and
// the run continues.
func (uc *implUseCase) ScheduleDeadlines(ctx context.Context, sc model.Scope, input extraction.ScheduleInput) (extraction.ScheduleOutput, error) {
	out := extraction.ScheduleOutput{
		Tasks: make([]extraction.ScheduledTask, 0, len(input.Tasks)),
	}

	for _, t := range input.Tasks {
		scheduled := extraction.ScheduledTask{Description: t.Description}

		if t.Deadline != nil {
			scheduled.EventLink = uc.tryCreateCalendarEvent(ctx, t)
			if scheduled.EventLink != "" {
				out.ScheduledCount++
			}
		}

		out.Tasks = append(out.Tasks, scheduled)
	}

	uc.l.Infof(ctx, "%s: user=%s scheduled %d/%d tasks", scheduleLogPrefix, sc.UserID, out.ScheduledCount, len(input.Tasks))
	return out, nil
}

// tryCreateCalendarEvent attempts to create a Google Calendar event.
// Returns the event HTML link, or empty string on failure.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.EnrichedTask) string {
	if uc.calendar == nil {
		return ""
	}

	description := t.Notes
	if t.Deadline.HebrewDate != "" {
		if description != "" {
			description += "\n"
		}
		description += fmt.Sprintf("%s, %s", t.Deadline.WeekdayName, t.Deadline.HebrewDate)
	}

	start := t.Deadline.GregorianDate
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Description,
		Description: description,
		StartTime:   start,
		EndTime:     start.Add(defaultEventDurationHours * time.Hour),
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: failed to create event for %q: %v", scheduleLogPrefix, t.Description, err)
		return ""
	}

	return event.HtmlLink
}
