package usecase

import (
	"context"
	"strings"

	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction"
	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
)

// Extract runs the pipeline on one email: model extraction, deadline
// enrichment, priority annotation. A model failure at the extraction step is
// not an error to the caller; it degrades to an empty result so upstream
// email processing keeps moving.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input extraction.ExtractInput) (model.ExtractionResult, error) {
	if strings.TrimSpace(input.Body) == "" {
		return model.ExtractionResult{}, extraction.ErrEmptyEmailBody
	}

	lang := input.Language
	if !lang.IsValid() {
		lang = uc.defaultLang
	}

	uc.l.Infof(ctx, "%s: user=%s lang=%s body_length=%d", extractLogPrefix, sc.UserID, lang, len(input.Body))

	parsed, err := uc.extractWithModel(ctx, input.Subject, input.Body, lang)
	if err != nil {
		uc.l.Errorf(ctx, "%s: model extraction failed, returning empty result: %v", extractLogPrefix, err)
		return model.ExtractionResult{
			Tasks:      []model.EnrichedTask{},
			Confidence: 0,
			Language:   lang,
		}, nil
	}

	uc.l.Infof(ctx, "%s: model extracted %d candidates confidence=%.2f", extractLogPrefix, len(parsed.Tasks), parsed.Confidence)

	tasks := uc.enrichDates(ctx, parsed.toCandidates(), lang)
	uc.annotatePriorities(ctx, tasks, lang)

	return model.ExtractionResult{
		Tasks:             tasks,
		Confidence:        parsed.Confidence,
		Language:          lang,
		SuggestedFollowup: parsed.SuggestedFollowup,
	}, nil
}
