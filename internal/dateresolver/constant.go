package dateresolver

const (
	resolveLogPrefix = "dateresolver.Resolve"

	fallbackTemperature = 0.1
	fallbackMaxTokens   = 256
)

// Fallback prompts embed the anchor date so the model resolves relative
// expressions against the same "today" the deterministic matcher uses.
const (
	fallbackSystemPromptEN = `You are a date resolution assistant. You convert a date expression into a concrete calendar date.
Respond with a single JSON object and nothing else:
{"gregorian_date": "YYYY-MM-DD", "hebrew_date": "...", "day_of_week": "...", "is_holiday": false, "holiday_name": ""}`

	fallbackSystemPromptHE = `אתה עוזר לזיהוי תאריכים. עליך להמיר ביטוי תאריך לתאריך לועזי מדויק.
השב באובייקט JSON יחיד בלבד:
{"gregorian_date": "YYYY-MM-DD", "hebrew_date": "...", "day_of_week": "...", "is_holiday": false, "holiday_name": ""}`

	fallbackUserPromptEN = `Today is %s (%s). Resolve the following date expression to a calendar date: %q`

	fallbackUserPromptHE = `היום %s (%s). מצא את התאריך שאליו מתייחס הביטוי הבא: %q`
)
