package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction"
	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
)

var testScope = model.Scope{UserID: "user-1", RequestID: "req-1"}

const extractionJSON = `{
	"tasks": [
		{"description": "Send the quarterly report", "priority": "high", "deadline_expression": "tomorrow"},
		{"description": "Book a meeting room", "deadline_expression": ""},
		{"description": "Call the supplier", "deadline_expression": "next friday"}
	],
	"confidence": 0.9,
	"suggested_followup": "Confirm receipt of the report"
}`

const prioritiesJSON = `{"priorities": [
	{"task_index": 0, "priority": "urgent", "reasoning": "deadline is tomorrow"},
	{"task_index": 2, "priority": "medium", "reasoning": "routine call"}
]}`

func TestExtract(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Body Is An Error", func(t *testing.T) {
		uc := newTestUseCase(&scriptedModel{}, &fakeResolver{}, nil, nil)

		_, err := uc.Extract(ctx, testScope, extraction.ExtractInput{Subject: "hi", Body: "   "})
		if !errors.Is(err, extraction.ErrEmptyEmailBody) {
			t.Fatalf("expected ErrEmptyEmailBody, got %v", err)
		}
	})

	t.Run("Full Pipeline", func(t *testing.T) {
		llm := &scriptedModel{responses: []scriptedResponse{
			{text: extractionJSON},
			{text: prioritiesJSON},
		}}
		dates := &fakeResolver{dates: map[string]time.Time{
			"tomorrow":    time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			"next friday": time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		}}
		uc := newTestUseCase(llm, dates, nil, nil)

		result, err := uc.Extract(ctx, testScope, extraction.ExtractInput{
			Subject:  "Q2 report",
			Body:     "Please send the quarterly report by tomorrow.",
			Language: model.LanguageEnglish,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(result.Tasks) != 3 {
			t.Fatalf("expected 3 tasks, got %d", len(result.Tasks))
		}
		if result.Confidence != 0.9 {
			t.Errorf("expected confidence 0.9, got %v", result.Confidence)
		}
		if result.SuggestedFollowup != "Confirm receipt of the report" {
			t.Errorf("unexpected followup %q", result.SuggestedFollowup)
		}

		first := result.Tasks[0]
		if first.Deadline == nil || !first.Deadline.GregorianDate.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected first task deadline 2024-05-02, got %+v", first.Deadline)
		}
		if first.PriorityAnnotation == nil || first.PriorityAnnotation.Priority != model.PriorityUrgent {
			t.Errorf("expected urgent annotation on first task, got %+v", first.PriorityAnnotation)
		}

		second := result.Tasks[1]
		if second.Deadline != nil {
			t.Errorf("expected no deadline on second task, got %+v", second.Deadline)
		}
		if second.PriorityAnnotation != nil {
			t.Errorf("expected no annotation on second task, got %+v", second.PriorityAnnotation)
		}

		if llm.calls != 2 {
			t.Errorf("expected 2 model calls (extract + priorities), got %d", llm.calls)
		}
	})

	t.Run("Model Failure Returns Empty Result", func(t *testing.T) {
		llm := &scriptedModel{responses: []scriptedResponse{
			{err: errors.New("all providers failed")},
		}}
		uc := newTestUseCase(llm, &fakeResolver{}, nil, nil)

		result, err := uc.Extract(ctx, testScope, extraction.ExtractInput{Body: "do something"})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(result.Tasks) != 0 || result.Confidence != 0 {
			t.Errorf("expected empty result, got %+v", result)
		}
	})

	t.Run("Malformed Model JSON Returns Empty Result", func(t *testing.T) {
		llm := &scriptedModel{responses: []scriptedResponse{
			{text: "sorry, I cannot help with that"},
		}}
		uc := newTestUseCase(llm, &fakeResolver{}, nil, nil)

		result, err := uc.Extract(ctx, testScope, extraction.ExtractInput{Body: "do something"})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if len(result.Tasks) != 0 || result.Confidence != 0 {
			t.Errorf("expected empty result, got %+v", result)
		}
	})

	t.Run("Fenced Model JSON Accepted", func(t *testing.T) {
		llm := &scriptedModel{responses: []scriptedResponse{
			{text: "```json\n" + extractionJSON + "\n```"},
			{text: `{"priorities": []}`},
		}}
		uc := newTestUseCase(llm, &fakeResolver{}, nil, nil)

		result, err := uc.Extract(ctx, testScope, extraction.ExtractInput{Body: "do something"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Tasks) != 3 {
			t.Errorf("expected 3 tasks, got %d", len(result.Tasks))
		}
	})

	t.Run("Invalid Language Falls Back To Default", func(t *testing.T) {
		llm := &scriptedModel{responses: []scriptedResponse{
			{err: errors.New("down")},
		}}
		uc := newTestUseCase(llm, &fakeResolver{}, nil, nil)

		result, err := uc.Extract(ctx, testScope, extraction.ExtractInput{Body: "text", Language: "xx"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Language != model.LanguageEnglish {
			t.Errorf("expected default language, got %q", result.Language)
		}
	})
}

func TestEnrichDates(t *testing.T) {
	ctx := context.Background()

	t.Run("Order Preserved Under Concurrency", func(t *testing.T) {
		// The first expression resolves slowest; a join bug would surface
		// as reordered or missing results.
		dates := &fakeResolver{
			dates: map[string]time.Time{
				"tomorrow":   time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
				"in a week":  time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC),
				"15/06/2024": time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			},
			delays: map[string]time.Duration{
				"tomorrow": 30 * time.Millisecond,
			},
		}
		uc := newTestUseCase(&scriptedModel{}, dates, nil, nil)

		candidates := []model.TaskCandidate{
			{Description: "a", DeadlineExpression: "tomorrow"},
			{Description: "b", DeadlineExpression: "in a week"},
			{Description: "c"},
			{Description: "d", DeadlineExpression: "15/06/2024"},
		}

		tasks := uc.enrichDates(ctx, candidates, model.LanguageEnglish)

		if len(tasks) != len(candidates) {
			t.Fatalf("expected %d tasks, got %d", len(candidates), len(tasks))
		}
		for i, c := range candidates {
			if tasks[i].Description != c.Description {
				t.Errorf("task %d: expected description %q, got %q", i, c.Description, tasks[i].Description)
			}
		}
		if tasks[0].Deadline == nil || tasks[0].Deadline.GregorianDate.Day() != 2 {
			t.Errorf("task 0: wrong deadline %+v", tasks[0].Deadline)
		}
		if tasks[2].Deadline != nil {
			t.Errorf("task 2: expected no deadline, got %+v", tasks[2].Deadline)
		}
		if tasks[3].Deadline == nil || tasks[3].Deadline.GregorianDate.Month() != time.June {
			t.Errorf("task 3: wrong deadline %+v", tasks[3].Deadline)
		}
	})

	t.Run("Unresolvable Expression Gets Default Date", func(t *testing.T) {
		uc := newTestUseCase(&scriptedModel{}, &fakeResolver{}, nil, nil)

		tasks := uc.enrichDates(ctx, []model.TaskCandidate{
			{Description: "a", DeadlineExpression: "tomorrow"},
			{Description: "b", DeadlineExpression: "sometime in 2025"},
			{Description: "c", DeadlineExpression: "in a week"},
		}, model.LanguageEnglish)

		if len(tasks) != 3 {
			t.Fatalf("expected 3 tasks, got %d", len(tasks))
		}
		if tasks[1].Deadline == nil || tasks[1].Deadline.Source != model.DateSourceDefault {
			t.Errorf("expected default-source deadline for task 1, got %+v", tasks[1].Deadline)
		}
	})

	t.Run("Expression Without Date Signal Skipped", func(t *testing.T) {
		uc := newTestUseCase(&scriptedModel{}, &fakeResolver{}, nil, nil)

		tasks := uc.enrichDates(ctx, []model.TaskCandidate{
			{Description: "a", DeadlineExpression: "whenever"},
		}, model.LanguageEnglish)

		if tasks[0].Deadline != nil {
			t.Errorf("expected no deadline, got %+v", tasks[0].Deadline)
		}
	})
}

func TestAnnotatePriorities(t *testing.T) {
	ctx := context.Background()

	newTasks := func() []model.EnrichedTask {
		return []model.EnrichedTask{
			{TaskCandidate: model.TaskCandidate{Description: "a"}},
			{TaskCandidate: model.TaskCandidate{Description: "b"}},
			{TaskCandidate: model.TaskCandidate{Description: "c"}},
		}
	}

	t.Run("Out Of Range Index Dropped", func(t *testing.T) {
		llm := &scriptedModel{responses: []scriptedResponse{
			{text: `{"priorities": [
				{"task_index": 5, "priority": "high", "reasoning": "bad index"},
				{"task_index": -1, "priority": "high", "reasoning": "bad index"},
				{"task_index": 1, "priority": "low", "reasoning": "fine"}
			]}`},
		}}
		uc := newTestUseCase(llm, &fakeResolver{}, nil, nil)

		tasks := newTasks()
		uc.annotatePriorities(ctx, tasks, model.LanguageEnglish)

		if tasks[0].PriorityAnnotation != nil || tasks[2].PriorityAnnotation != nil {
			t.Errorf("expected out-of-range annotations dropped, got %+v", tasks)
		}
		if tasks[1].PriorityAnnotation == nil || tasks[1].PriorityAnnotation.Priority != model.PriorityLow {
			t.Errorf("expected low annotation on task 1, got %+v", tasks[1].PriorityAnnotation)
		}
	})

	t.Run("Invalid Priority Value Dropped", func(t *testing.T) {
		llm := &scriptedModel{responses: []scriptedResponse{
			{text: `{"priorities": [{"task_index": 0, "priority": "critical", "reasoning": "unknown label"}]}`},
		}}
		uc := newTestUseCase(llm, &fakeResolver{}, nil, nil)

		tasks := newTasks()
		uc.annotatePriorities(ctx, tasks, model.LanguageEnglish)

		if tasks[0].PriorityAnnotation != nil {
			t.Errorf("expected invalid priority dropped, got %+v", tasks[0].PriorityAnnotation)
		}
	})

	t.Run("Model Failure Leaves Tasks Unannotated", func(t *testing.T) {
		llm := &scriptedModel{responses: []scriptedResponse{
			{err: errors.New("down")},
		}}
		uc := newTestUseCase(llm, &fakeResolver{}, nil, nil)

		tasks := newTasks()
		uc.annotatePriorities(ctx, tasks, model.LanguageEnglish)

		for i, task := range tasks {
			if task.PriorityAnnotation != nil {
				t.Errorf("task %d: expected no annotation, got %+v", i, task.PriorityAnnotation)
			}
		}
	})

	t.Run("No Tasks No Model Call", func(t *testing.T) {
		llm := &scriptedModel{}
		uc := newTestUseCase(llm, &fakeResolver{}, nil, nil)

		uc.annotatePriorities(ctx, nil, model.LanguageEnglish)

		if llm.calls != 0 {
			t.Errorf("expected no model calls, got %d", llm.calls)
		}
	})
}
