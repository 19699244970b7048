package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction"
	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
	repo "github.com/nadavsuissa/EmailManager-sub000/internal/extraction/repository"
)

// extractionDocument is the stored shape of one extraction result.
type extractionDocument struct {
	ID         string               `bson:"id"`
	UserID     string               `bson:"user_id"`
	Language   string               `bson:"language"`
	Tasks      []model.EnrichedTask `bson:"tasks"`
	Confidence float64              `bson:"confidence"`
	CreatedAt  time.Time            `bson:"created_at"`
}

func (d extractionDocument) toDomain() extraction.SavedExtraction {
	return extraction.SavedExtraction{
		ID:         d.ID,
		UserID:     d.UserID,
		Language:   model.Language(d.Language),
		Tasks:      d.Tasks,
		Confidence: d.Confidence,
		CreatedAt:  d.CreatedAt,
	}
}

// SaveExtraction inserts one extraction result document.
func (r *implRepository) SaveExtraction(ctx context.Context, opt repo.SaveExtractionOptions) (extraction.SavedExtraction, error) {
	doc := extractionDocument{
		ID:         uuid.NewString(),
		UserID:     opt.UserID,
		Language:   string(opt.Result.Language),
		Tasks:      opt.Result.Tasks,
		Confidence: opt.Result.Confidence,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "extraction/repository/mongo.SaveExtraction: %v", err)
		return extraction.SavedExtraction{}, repo.ErrFailedToInsert
	}

	return doc.toDomain(), nil
}

// ListExtractions returns the user's saved results, newest first.
func (r *implRepository) ListExtractions(ctx context.Context, opt repo.ListExtractionsOptions) ([]extraction.SavedExtraction, error) {
	limit := opt.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": opt.UserID}, findOpts)
	if err != nil {
		r.l.Errorf(ctx, "extraction/repository/mongo.ListExtractions: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer cursor.Close(ctx)

	var docs []extractionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "extraction/repository/mongo.ListExtractions decode: %v", err)
		return nil, repo.ErrFailedToList
	}

	results := make([]extraction.SavedExtraction, len(docs))
	for i, doc := range docs {
		results[i] = doc.toDomain()
	}
	return results, nil
}
