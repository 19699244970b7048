package model

// Priority labels assigned by the priority-analysis model.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid reports whether p is one of the recognized priority labels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// TaskCandidate is a provisional, unpersisted task extracted from email text.
// It is owned by the extraction call that created it.
type TaskCandidate struct {
	Description        string   `json:"description"`
	Priority           Priority `json:"priority,omitempty"`
	DeadlineExpression string   `json:"deadline_expression,omitempty"`
	AssignToHint       string   `json:"assign_to_hint,omitempty"`
	Notes              string   `json:"notes,omitempty"`
	Tags               []string `json:"tags,omitempty"`
}

// PriorityAnnotation is the priority-analysis result for one candidate,
// correlated back by the index the model reports.
type PriorityAnnotation struct {
	Priority  Priority `json:"priority"`
	Reasoning string   `json:"reasoning"`
}

// EnrichedTask is a TaskCandidate plus the optional enrichments attached by
// the orchestrator. Deadline is nil when no deadline expression was flagged.
type EnrichedTask struct {
	TaskCandidate
	Deadline           *ResolvedDate       `json:"deadline,omitempty"`
	PriorityAnnotation *PriorityAnnotation `json:"priority_annotation,omitempty"`
}

// ExtractionResult is the top-level output of one extraction request.
type ExtractionResult struct {
	Tasks             []EnrichedTask `json:"tasks"`
	Confidence        float64        `json:"confidence"` // 0..1
	Language          Language       `json:"language"`
	SuggestedFollowup string         `json:"suggested_followup,omitempty"`
}
