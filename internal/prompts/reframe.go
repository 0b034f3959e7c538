package prompts

import "strings"

// ToneTemplate is a system/user message pair for a tone reframe.
type ToneTemplate struct {
	System string
	User   string
}

// NormalizeTone strips the "reframe_" prefix from a mode name, leaving the
// bare tone.
func NormalizeTone(tone string) string {
	if strings.HasPrefix(tone, "reframe_") {
		return strings.SplitN(tone, "_", 2)[1]
	}
	return tone
}

// ReframeTemplate returns the message pair for one of the six supported
// tones, or false for an unknown tone. The system messages insist on
// rephrasing only so that question inputs come back as questions rather
// than answers.
func ReframeTemplate(topic, tone string) (ToneTemplate, bool) {
	templates := map[string]ToneTemplate{
		"casual": {
			System: "Your only task is to transform the text into simple tone, only tranform/rephrase, ONLY rewrite the exact same content, dont answer it as a question, If the text is a question, keep it as a question but make it simple",
			User:   "Make this casual and friendly:\n" + topic,
		},
		"technical": {
			System: "Your only task is to Transform text into technical tone,only tranform/rephrase, ONLY rewrite the exact same content, dont answer it as a question, even if the highlighted text is a question, keep it as a question but make it simple ",
			User:   "Make this technical:\n" + topic,
		},
		"professional": {
			System: "Transform text into professional tone, only tranform/rephrase, dont answer it as a question, even if the highlighted text is a question, you will only reframe it",
			User:   "Make this professional:\n" + topic,
		},
		"eli5": {
			System: "Transform text for a 5-year-old understanding, only tranform/rephrase, dont answer it as a question, even if the highlighted text is a question, you will only reframe it",
			User:   "Rewrite this for a 5-year-old:\n" + topic,
		},
		"short": {
			System: "Make text shorter while keeping main points, only make it short, dont answer it as a question, even if the highlighted text is a question, you will only reframe it",
			User:   "Make this shorter but keep key points:\n" + topic,
		},
		"long": {
			System: "Expand text with more details, only make it long by adding 2 to 3 lines more and dont answer it as a question, even if the highlighted text is a question, you will only reframe it",
			User:   "Make this longer and more detailed:\n" + topic,
		},
	}
	t, ok := templates[tone]
	return t, ok
}

// ReframeFormatReminder is appended as a trailing system message on
// reframe calls.
const ReframeFormatReminder = "Important: Output must match requested format exactly."
