package repository

import (
	"context"

	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction"
	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
)

// Repository defines the data store for saved extraction results.
type Repository interface {
	// SaveExtraction persists one extraction result and returns the stored
	// record with its generated ID.
	SaveExtraction(ctx context.Context, opt SaveExtractionOptions) (extraction.SavedExtraction, error)

	// ListExtractions returns a user's saved results, newest first.
	ListExtractions(ctx context.Context, opt ListExtractionsOptions) ([]extraction.SavedExtraction, error)
}

// SaveExtractionOptions holds parameters for persisting a result.
type SaveExtractionOptions struct {
	UserID string
	Result model.ExtractionResult
}

// ListExtractionsOptions holds filter and pagination for listing.
type ListExtractionsOptions struct {
	UserID string
	Limit  int
}
