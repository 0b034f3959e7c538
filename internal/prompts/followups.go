package prompts

import (
	"fmt"
	"hash/fnv"
)

// focusOptions rotate which angle the follow-up questions lean toward, so
// repeat requests over the same conversation do not feel canned.
var focusOptions = []string{
	"Ask about practical next steps and what to try first",
	"Ask about different ways to approach the same thing",
	"Ask about potential problems or things that might go wrong",
	"Ask about how this would work in real situations",
	"Ask about things that might be missing or overlooked",
	"Ask about what resources or help would be needed",
	"Ask about how this connects with other things they're doing",
	"Ask about how to know if it's working or successful",
}

// FocusOptions returns the rotation set, in order.
func FocusOptions() []string {
	out := make([]string, len(focusOptions))
	copy(out, focusOptions)
	return out
}

// FocusForConversation deterministically picks a focus from the first 200
// bytes of the conversation. Same conversation, same focus; no state is
// kept between requests.
func FocusForConversation(conversation string) string {
	snippet := conversation
	if len(snippet) > 200 {
		snippet = snippet[:200]
	}
	h := fnv.New32a()
	h.Write([]byte(snippet))
	return focusOptions[h.Sum32()%uint32(len(focusOptions))]
}

// conversationLimit caps how much conversation text is embedded in a
// follow-up or action prompt.
const conversationLimit = 1800

func truncateConversation(conversation string) string {
	if len(conversation) > conversationLimit {
		return conversation[:conversationLimit]
	}
	return conversation
}

const followupTemplate = `
You're helping someone continue their conversation by suggesting 5 things they might want to explore next.

CONVERSATION:
%s

Generate 5 follow-up questions that feel natural and helpful. Mix of approaches:
- 2 practical/simple questions (what someone curious would ask)
- 2 slightly deeper questions (but still conversational)
- 1 action-oriented question (what to DO next - asking for practical steps or advice)

Guidelines:
✓ Reference specific things mentioned in the conversation
✓ Keep questions conversational and approachable
✓ Ask what a curious friend might genuinely want to know
✓ Avoid business jargon and academic language
✓ %s

Question Style Examples:
- "Have you tried [specific approach mentioned]?"
- "What happens if [specific scenario]?"
- "Could you walk through how [specific part] works?"
- "What's been your biggest challenge with [specific thing]?"
- "Have you considered starting with [simpler version]?"

For action questions specifically - ask for practical steps:
- "What would you recommend trying first with [specific thing]?"
- "How should I get started with [specific approach]?"
- "What's the simplest way to test [specific idea]?"
- "What tools would work best for [specific task]?"

Make questions feel like natural conversation flow - what would you genuinely want to know next?

JSON format:
{
    "questions": [
        {"text": "Simple, curious question?", "type": "curious"},
        {"text": "Another practical question?", "type": "practical"},
        {"text": "Slightly deeper but still conversational question?", "type": "deeper"},
        {"text": "Another conversational exploration question?", "type": "exploration"},
        {"text": "What should I do/try next with [specific thing]?", "type": "action"}
    ],
    "analysis": "What would help move this conversation forward"
}`

// BuildFollowupPrompt assembles the follow-up question prompt for a
// conversation, steered by the given focus.
func BuildFollowupPrompt(conversation, focus string) string {
	return fmt.Sprintf(followupTemplate, truncateConversation(conversation), focus)
}

const actionTemplate = `
You're helping someone continue their AI conversation by suggesting 3 action-oriented follow-up prompts they can use.

CONVERSATION:
%s

Generate 3 follow-up prompts that are:
- Action-oriented and practical (focus on "what to do" rather than "what to know")
- Context-aware and specific to their conversation
- Ready to copy-paste back into the AI chat
- 2-liner prompts that get specific, actionable guidance

Think about what the person would naturally want to DO next based on this conversation:
- If they're learning → How to apply/practice it
- If they're problem-solving → Next steps to try
- If they're planning → How to implement/start
- If they're stuck → Specific approaches to attempt

Guidelines:
✓ Reference specific things mentioned in the conversation
✓ Focus on implementation and application
✓ Make prompts specific enough to get actionable responses
✓ Avoid generic questions - be contextually relevant
✓ Each prompt should be self-contained and ready to use

JSON format:
{
    "action_prompts": [
        {
            "prompt": "Context-specific action-oriented prompt for the AI",
            "focus": "implementation/application/practice",
            "context": "brief description of what this targets"
        },
        {
            "prompt": "Second practical follow-up prompt",
            "focus": "planning/strategy/approach",
            "context": "what this helps with"
        },
        {
            "prompt": "Third actionable prompt for next steps",
            "focus": "execution/practice/testing",
            "context": "practical outcome"
        }
    ],
    "analysis": "Brief explanation of how these prompts help take action on the conversation"
}`

// BuildActionPrompt assembles the action-oriented follow-up prompt for a
// conversation.
func BuildActionPrompt(conversation string) string {
	return fmt.Sprintf(actionTemplate, truncateConversation(conversation))
}
