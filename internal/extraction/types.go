package extraction

import (
	"time"

	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
)

// ExtractInput is one email to run the pipeline on.
type ExtractInput struct {
	Subject  string
	Body     string
	Language model.Language // optional; falls back to the configured default
}

// ScheduleInput holds the enriched tasks to create calendar events for.
type ScheduleInput struct {
	Tasks []model.EnrichedTask
}

// ScheduledTask reports the scheduling outcome for one task.
type ScheduledTask struct {
	Description string
	EventLink   string // empty when scheduling failed or no deadline was set
}

// ScheduleOutput summarizes a scheduling run.
type ScheduleOutput struct {
	Tasks          []ScheduledTask
	ScheduledCount int
}

// SavedResult identifies a persisted extraction result.
type SavedResult struct {
	ID        string
	CreatedAt time.Time
}

// ListInput holds pagination for listing saved results.
type ListInput struct {
	Limit int
}

// SavedExtraction is a persisted extraction result with its metadata.
type SavedExtraction struct {
	ID         string
	UserID     string
	Language   model.Language
	Tasks      []model.EnrichedTask
	Confidence float64
	CreatedAt  time.Time
}

// ListOutput is the page of saved results returned to the caller.
type ListOutput struct {
	Results []SavedExtraction
}
