package usecase

import (
	"github.com/nadavsuissa/EmailManager-sub000/internal/dateresolver"
	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction"
	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction/repository"
	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
	pkgLog "github.com/nadavsuissa/EmailManager-sub000/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	llm         extraction.LanguageModel
	dates       dateresolver.Resolver
	calendar    extraction.Calendar
	repo        repository.Repository
	calendarID  string
	timezone    string
	defaultLang model.Language
	maxEnrich   int
}

// New creates a new extraction UseCase instance. calendar and repo may be nil;
// the operations that need them fail gracefully.
func New(
	l pkgLog.Logger,
	llm extraction.LanguageModel,
	dates dateresolver.Resolver,
	calendar extraction.Calendar,
	repo repository.Repository,
	calendarID string,
	timezone string,
	defaultLang model.Language,
	maxConcurrentEnrich int,
) *implUseCase {
	if maxConcurrentEnrich <= 0 {
		maxConcurrentEnrich = 1
	}
	if !defaultLang.IsValid() {
		defaultLang = model.LanguageHebrew
	}
	return &implUseCase{
		l:           l,
		llm:         llm,
		dates:       dates,
		calendar:    calendar,
		repo:        repo,
		calendarID:  calendarID,
		timezone:    timezone,
		defaultLang: defaultLang,
		maxEnrich:   maxConcurrentEnrich,
	}
}
