package usecase

import (
	"context"
	"fmt"

	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction"
	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction/repository"
	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
)

// SaveResult persists an extraction result for the calling user.
func (uc *implUseCase) SaveResult(ctx context.Context, sc model.Scope, result model.ExtractionResult) (extraction.SavedResult, error) {
	if uc.repo == nil {
		return extraction.SavedResult{}, fmt.Errorf("persistence is not configured")
	}

	saved, err := uc.repo.SaveExtraction(ctx, repository.SaveExtractionOptions{
		UserID: sc.UserID,
		Result: result,
	})
	if err != nil {
		return extraction.SavedResult{}, fmt.Errorf("failed to save extraction: %w", err)
	}

	return extraction.SavedResult{
		ID:        saved.ID,
		CreatedAt: saved.CreatedAt,
	}, nil
}

// ListResults returns the calling user's saved results, newest first.
func (uc *implUseCase) ListResults(ctx context.Context, sc model.Scope, input extraction.ListInput) (extraction.ListOutput, error) {
	if uc.repo == nil {
		return extraction.ListOutput{}, fmt.Errorf("persistence is not configured")
	}

	results, err := uc.repo.ListExtractions(ctx, repository.ListExtractionsOptions{
		UserID: sc.UserID,
		Limit:  input.Limit,
	})
	if err != nil {
		return extraction.ListOutput{}, fmt.Errorf("failed to list extractions: %w", err)
	}

	return extraction.ListOutput{Results: results}, nil
}
