package usecase

import (
	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
)

// modelExtraction is the JSON shape the extraction prompt asks for.
type modelExtraction struct {
	Tasks             []modelTask `json:"tasks"`
	Confidence        float64     `json:"confidence"`
	SuggestedFollowup string      `json:"suggested_followup"`
}

type modelTask struct {
	Description        string   `json:"description"`
	Priority           string   `json:"priority"`
	DeadlineExpression string   `json:"deadline_expression"`
	AssignToHint       string   `json:"assign_to_hint"`
	Notes              string   `json:"notes"`
	Tags               []string `json:"tags"`
}

// toCandidates converts the model output to domain candidates, dropping
// entries with no description.
func (e *modelExtraction) toCandidates() []model.TaskCandidate {
	candidates := make([]model.TaskCandidate, 0, len(e.Tasks))
	for _, t := range e.Tasks {
		if t.Description == "" {
			continue
		}
		priority := model.Priority(t.Priority)
		if !priority.IsValid() {
			priority = ""
		}
		candidates = append(candidates, model.TaskCandidate{
			Description:        t.Description,
			Priority:           priority,
			DeadlineExpression: t.DeadlineExpression,
			AssignToHint:       t.AssignToHint,
			Notes:              t.Notes,
			Tags:               t.Tags,
		})
	}
	return candidates
}

// modelPriorities is the JSON shape the priority prompt asks for.
type modelPriorities struct {
	Priorities []modelPriority `json:"priorities"`
}

type modelPriority struct {
	TaskIndex int    `json:"task_index"`
	Priority  string `json:"priority"`
	Reasoning string `json:"reasoning"`
}
