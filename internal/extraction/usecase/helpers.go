package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/llmprovider"
)

// extractWithModel sends the email to the language model and parses the
// returned task list.
func (uc *implUseCase) extractWithModel(ctx context.Context, subject, body string, lang model.Language) (modelExtraction, error) {
	system := extractSystemPromptEN
	if lang == model.LanguageHebrew {
		system = extractSystemPromptHE
	}

	resp, err := uc.llm.Complete(ctx, &llmprovider.Request{
		SystemPrompt: system,
		UserPrompt:   fmt.Sprintf(extractUserPromptFormat, subject, body),
		Temperature:  extractTemperature,
		MaxTokens:    extractMaxTokens,
	})
	if err != nil {
		return modelExtraction{}, fmt.Errorf("model completion: %w", err)
	}

	cleaned := sanitizeJSONResponse(resp.Text)

	var parsed modelExtraction
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		uc.l.Errorf(ctx, "%s: failed to parse model response. Raw=%q Cleaned=%q", extractLogPrefix, resp.Text, cleaned)
		return modelExtraction{}, fmt.Errorf("failed to parse model JSON response: %w", err)
	}

	if parsed.Confidence < 0 {
		parsed.Confidence = 0
	}
	if parsed.Confidence > 1 {
		parsed.Confidence = 1
	}

	return parsed, nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	// Remove ```json ... ``` or ``` ... ``` blocks
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// date keywords that flag a deadline expression for resolution when the
// model left deadline_expression empty but the description carries one.
var dateKeywords = []string{
	// English
	"today", "tomorrow", "yesterday", "week", "month", "year",
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
	// Hebrew
	"היום", "מחר", "מחרתיים", "אתמול", "שבוע", "חודש", "שנה",
	"ראשון", "שני", "שלישי", "רביעי", "חמישי", "שישי", "שבת",
	"חג", "ערב",
}

// containsDate reports whether text plausibly mentions a date: any digit, or
// any month/weekday/relative keyword in either language.
func containsDate(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	lower := strings.ToLower(text)
	for _, kw := range dateKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
