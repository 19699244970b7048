package dateresolver

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
	pkgLog "github.com/nadavsuissa/EmailManager-sub000/pkg/log"
)

// Config tunes the resolver. CacheSize 0 disables the fallback memo.
type Config struct {
	Timezone  string
	CacheSize int
	CacheTTL  time.Duration
}

type implResolver struct {
	l     pkgLog.Logger
	llm   LanguageModel
	loc   *time.Location
	clock func() time.Time
	memo  *expirable.LRU[string, model.ResolvedDate]
}

// Option customizes the resolver.
type Option func(*implResolver)

// WithClock overrides the time source. Tests use this to pin "today".
func WithClock(clock func() time.Time) Option {
	return func(r *implResolver) {
		r.clock = clock
	}
}

// New creates a date resolver. llm may be nil, in which case unmatched
// expressions resolve straight to the default date.
func New(l pkgLog.Logger, llm LanguageModel, cfg Config, opts ...Option) *implResolver {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	r := &implResolver{
		l:     l,
		llm:   llm,
		loc:   loc,
		clock: time.Now,
	}

	if cfg.CacheSize > 0 {
		r.memo = expirable.NewLRU[string, model.ResolvedDate](cfg.CacheSize, nil, cfg.CacheTTL)
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}
