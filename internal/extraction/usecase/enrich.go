package usecase

import (
	"context"
	"sync"

	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
)

// enrichDates resolves the deadline expression of every flagged candidate
// concurrently. Results are written to an index-addressed slice so the output
// always has the same length and order as the input, whatever the goroutine
// scheduling. Resolution itself never fails; an unresolvable expression comes
// back as the anchored default date.
func (uc *implUseCase) enrichDates(ctx context.Context, candidates []model.TaskCandidate, lang model.Language) []model.EnrichedTask {
	tasks := make([]model.EnrichedTask, len(candidates))

	var wg sync.WaitGroup
	sem := make(chan struct{}, uc.maxEnrich)

	for i, c := range candidates {
		tasks[i] = model.EnrichedTask{TaskCandidate: c}

		if c.DeadlineExpression == "" || !containsDate(c.DeadlineExpression) {
			continue
		}

		wg.Add(1)
		go func(i int, expr string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			resolved := uc.dates.Resolve(ctx, expr, lang)
			tasks[i].Deadline = &resolved
		}(i, c.DeadlineExpression)
	}

	wg.Wait()
	return tasks
}
