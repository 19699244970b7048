package usecase

const (
	extractLogPrefix  = "extraction.Extract"
	priorityLogPrefix = "extraction.annotatePriorities"
	scheduleLogPrefix = "extraction.ScheduleDeadlines"

	// Low temperature for deterministic JSON output
	extractTemperature  = 0.2
	extractMaxTokens    = 2048
	priorityTemperature = 0.2
	priorityMaxTokens   = 1024

	// Default calendar event length when a deadline has no time of day.
	defaultEventDurationHours = 1
)

const (
	extractSystemPromptEN = `You are an assistant that extracts actionable tasks from emails.
Read the email and return a single JSON object, nothing else:
{
  "tasks": [
    {
      "description": "what needs to be done",
      "priority": "low|medium|high|urgent",
      "deadline_expression": "the date expression exactly as written in the email, or empty",
      "assign_to_hint": "person hinted as responsible, or empty",
      "notes": "short clarification, or empty",
      "tags": ["optional", "topic", "tags"]
    }
  ],
  "confidence": 0.0,
  "suggested_followup": "optional one-line reply suggestion"
}
confidence is between 0 and 1. When the email contains no tasks, return an empty tasks array.`

	extractSystemPromptHE = `אתה עוזר שמחלץ משימות לביצוע מתוך מיילים.
קרא את המייל והחזר אובייקט JSON יחיד בלבד:
{
  "tasks": [
    {
      "description": "מה צריך לעשות",
      "priority": "low|medium|high|urgent",
      "deadline_expression": "ביטוי התאריך כפי שמופיע במייל, או ריק",
      "assign_to_hint": "מי אחראי לפי המייל, או ריק",
      "notes": "הערה קצרה, או ריק",
      "tags": ["תגיות", "נושא"]
    }
  ],
  "confidence": 0.0,
  "suggested_followup": "הצעת תשובה קצרה, אופציונלי"
}
confidence הוא בין 0 ל-1. אם אין משימות במייל החזר מערך tasks ריק.`

	extractUserPromptFormat = "Subject: %s\n\nBody:\n%s"

	prioritySystemPromptEN = `You are an assistant that ranks task priorities.
Given a numbered task list, return a single JSON object, nothing else:
{"priorities": [{"task_index": 0, "priority": "low|medium|high|urgent", "reasoning": "one short sentence"}]}
task_index refers to the number shown before each task.`

	prioritySystemPromptHE = `אתה עוזר שמדרג עדיפויות של משימות.
בהינתן רשימת משימות ממוספרת, החזר אובייקט JSON יחיד בלבד:
{"priorities": [{"task_index": 0, "priority": "low|medium|high|urgent", "reasoning": "משפט קצר אחד"}]}
task_index מתייחס למספר שמופיע לפני כל משימה.`
)
