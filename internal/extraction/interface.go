package extraction

import (
	"context"

	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/gcalendar"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/llmprovider"
)

// UseCase defines the business logic interface for the extraction domain.
type UseCase interface {
	// Extract runs the full pipeline on one email: model extraction, deadline
	// resolution, priority analysis. Only caller-input violations surface as
	// errors; a failed model call returns an empty result with nil error.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (model.ExtractionResult, error)

	// ScheduleDeadlines creates calendar events for tasks that carry a
	// resolved deadline. Per-task failures degrade to an empty event link.
	ScheduleDeadlines(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)

	// SaveResult persists an extraction result for later retrieval.
	SaveResult(ctx context.Context, sc model.Scope, result model.ExtractionResult) (SavedResult, error)

	// ListResults returns the caller's saved extraction results, newest first.
	ListResults(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}

// LanguageModel is the completion surface the pipeline needs from the LLM
// layer. Implemented by *llmprovider.Manager.
type LanguageModel interface {
	Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Calendar is the scheduling surface ScheduleDeadlines needs. Implemented by
// *gcalendar.Client.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}
