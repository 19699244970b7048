package dateresolver

import (
	"context"

	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/llmprovider"
)

// Resolver turns a free-form date expression into a concrete ResolvedDate.
type Resolver interface {
	// Resolve resolves expr in the given language, anchored at the resolver's
	// clock. It never fails: when neither the deterministic matcher nor the
	// model can resolve the expression, the returned date is today with
	// Source set to model.DateSourceDefault.
	Resolve(ctx context.Context, expr string, lang model.Language) model.ResolvedDate
}

// LanguageModel is the completion surface the fallback path needs. Implemented
// by *llmprovider.Manager.
type LanguageModel interface {
	Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
