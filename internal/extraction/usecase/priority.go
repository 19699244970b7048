package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/llmprovider"
)

// annotatePriorities runs one batched priority-analysis call over all tasks
// and merges the annotations back by index. Any failure leaves the tasks
// without annotations; the extraction result is still useful without them.
func (uc *implUseCase) annotatePriorities(ctx context.Context, tasks []model.EnrichedTask, lang model.Language) {
	if len(tasks) == 0 {
		return
	}

	system := prioritySystemPromptEN
	if lang == model.LanguageHebrew {
		system = prioritySystemPromptHE
	}

	var sb strings.Builder
	for i, t := range tasks {
		fmt.Fprintf(&sb, "%d. %s\n", i, t.Description)
	}

	resp, err := uc.llm.Complete(ctx, &llmprovider.Request{
		SystemPrompt: system,
		UserPrompt:   sb.String(),
		Temperature:  priorityTemperature,
		MaxTokens:    priorityMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: model call failed, skipping annotations: %v", priorityLogPrefix, err)
		return
	}

	cleaned := sanitizeJSONResponse(resp.Text)

	var parsed modelPriorities
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		uc.l.Warnf(ctx, "%s: failed to parse model response, skipping annotations. Raw=%q", priorityLogPrefix, resp.Text)
		return
	}

	for _, p := range parsed.Priorities {
		if p.TaskIndex < 0 || p.TaskIndex >= len(tasks) {
			uc.l.Warnf(ctx, "%s: dropping annotation with out-of-range task_index=%d (have %d tasks)", priorityLogPrefix, p.TaskIndex, len(tasks))
			continue
		}
		priority := model.Priority(p.Priority)
		if !priority.IsValid() {
			uc.l.Warnf(ctx, "%s: dropping annotation with invalid priority %q for task_index=%d", priorityLogPrefix, p.Priority, p.TaskIndex)
			continue
		}
		tasks[p.TaskIndex].PriorityAnnotation = &model.PriorityAnnotation{
			Priority:  priority,
			Reasoning: p.Reasoning,
		}
	}
}
