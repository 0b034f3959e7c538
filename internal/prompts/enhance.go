package prompts

import "fmt"

// EnhanceSystemMessage drives the default rewrite path used when no
// specialized mode matches.
const EnhanceSystemMessage = "You are an expert at reframing text to make it clear, concise, and actionable."

const enhanceConciseTemplate = `Rewrite the following in a %s tone. Keep it tight: a short task statement and only the essential requirements, nothing else.

%s`

const enhanceBalancedTemplate = `Rewrite the following in a %s tone. Produce a clear task statement, the key requirements, and a short note on the expected output format.

%s`

const enhanceDetailedTemplate = `Rewrite the following in a %s tone. Produce a thorough version: task statement, all requirements, step-by-step guidance where it helps, and the expected output format.

%s`

// EnhanceUserMessage builds the user message for the default rewrite path.
// Unknown lengths fall back to balanced.
func EnhanceUserMessage(topic, tone, length string) string {
	switch length {
	case "concise":
		return fmt.Sprintf(enhanceConciseTemplate, tone, topic)
	case "detailed":
		return fmt.Sprintf(enhanceDetailedTemplate, tone, topic)
	default:
		return fmt.Sprintf(enhanceBalancedTemplate, tone, topic)
	}
}
