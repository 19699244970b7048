package http

import (
	"time"

	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction"
	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
)

// --- Request DTOs ---

type extractReq struct {
	Subject  string `json:"subject"  binding:"max=500"`
	Body     string `json:"body"     binding:"required"`
	Language string `json:"language" binding:"omitempty,oneof=he en"`
	Save     bool   `json:"save"`
	Schedule bool   `json:"schedule"`
}

func (r extractReq) validate() error { return nil }

func (r extractReq) toInput() extraction.ExtractInput {
	return extraction.ExtractInput{
		Subject:  r.Subject,
		Body:     r.Body,
		Language: model.Language(r.Language),
	}
}

func (r extractReq) toScheduleInput(result model.ExtractionResult) extraction.ScheduleInput {
	return extraction.ScheduleInput{Tasks: result.Tasks}
}

// ---

type listReq struct {
	Limit int `form:"limit"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() extraction.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return extraction.ListInput{Limit: limit}
}

// --- Response DTOs ---

type extractResp struct {
	Result         model.ExtractionResult `json:"result"`
	SavedID        string                 `json:"saved_id,omitempty"`
	ScheduledCount int                    `json:"scheduled_count,omitempty"`
}

type savedExtractionResp struct {
	ID         string               `json:"id"`
	Language   string               `json:"language"`
	Tasks      []model.EnrichedTask `json:"tasks"`
	Confidence float64              `json:"confidence"`
	CreatedAt  time.Time            `json:"created_at"`
}

type listResp struct {
	Results []savedExtractionResp `json:"results"`
}

func (h *handler) newListResp(out extraction.ListOutput) listResp {
	results := make([]savedExtractionResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = savedExtractionResp{
			ID:         r.ID,
			Language:   string(r.Language),
			Tasks:      r.Tasks,
			Confidence: r.Confidence,
			CreatedAt:  r.CreatedAt,
		}
	}
	return listResp{Results: results}
}
