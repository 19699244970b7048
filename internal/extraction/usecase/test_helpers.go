package usecase

import (
	"context"
	"time"

	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction"
	repo "github.com/nadavsuissa/EmailManager-sub000/internal/extraction/repository"
	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/gcalendar"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// scriptedModel returns its responses in call order.
type scriptedModel struct {
	responses []scriptedResponse
	calls     int
}

type scriptedResponse struct {
	text string
	err  error
}

func (s *scriptedModel) Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	idx := s.calls
	s.calls++
	if idx >= len(s.responses) {
		return &llmprovider.Response{Text: "{}"}, nil
	}
	r := s.responses[idx]
	if r.err != nil {
		return nil, r.err
	}
	return &llmprovider.Response{Text: r.text}, nil
}

// fakeResolver maps expressions to canned dates; anything else resolves to
// the default. delays (per expression) force out-of-order completion in
// concurrency tests.
type fakeResolver struct {
	dates  map[string]time.Time
	delays map[string]time.Duration
}

func (f *fakeResolver) Resolve(ctx context.Context, expr string, lang model.Language) model.ResolvedDate {
	if d, ok := f.delays[expr]; ok {
		time.Sleep(d)
	}
	if date, ok := f.dates[expr]; ok {
		return model.ResolvedDate{GregorianDate: date, Source: model.DateSourcePattern}
	}
	return model.ResolvedDate{
		GregorianDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Source:        model.DateSourceDefault,
	}
}

// fakeCalendar records created events; fails for summaries in failFor.
type fakeCalendar struct {
	created []gcalendar.CreateEventRequest
	failFor map[string]error
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if err, ok := f.failFor[req.Summary]; ok {
		return nil, err
	}
	f.created = append(f.created, req)
	return &gcalendar.Event{
		ID:       "evt-1",
		Summary:  req.Summary,
		HtmlLink: "https://calendar.google.com/event?eid=evt-1",
	}, nil
}

// fakeRepo is an in-memory Repository.
type fakeRepo struct {
	saved   []extraction.SavedExtraction
	saveErr error
	listErr error
}

func (f *fakeRepo) SaveExtraction(ctx context.Context, opt repo.SaveExtractionOptions) (extraction.SavedExtraction, error) {
	if f.saveErr != nil {
		return extraction.SavedExtraction{}, f.saveErr
	}
	saved := extraction.SavedExtraction{
		ID:         "ext-1",
		UserID:     opt.UserID,
		Language:   opt.Result.Language,
		Tasks:      opt.Result.Tasks,
		Confidence: opt.Result.Confidence,
		CreatedAt:  time.Now().UTC(),
	}
	f.saved = append(f.saved, saved)
	return saved, nil
}

func (f *fakeRepo) ListExtractions(ctx context.Context, opt repo.ListExtractionsOptions) ([]extraction.SavedExtraction, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.saved, nil
}

func newTestUseCase(llm extraction.LanguageModel, dates *fakeResolver, calendar *fakeCalendar, store repo.Repository) *implUseCase {
	var cal extraction.Calendar
	if calendar != nil {
		cal = calendar
	}
	return New(&mockLogger{}, llm, dates, cal, store, "primary", "UTC", model.LanguageEnglish, 4)
}
