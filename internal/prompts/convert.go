package prompts

import "fmt"

// ConvertVariant names one of the three prompt-conversion depths.
type ConvertVariant string

const (
	ConvertConcise  ConvertVariant = "concise"
	ConvertBalanced ConvertVariant = "balanced"
	ConvertDetailed ConvertVariant = "detailed"
)

const convertConciseTemplate = `You will convert the following text into a clear, concise prompt.

Format Guidelines:
- One clear task statement
- Maximum 2-3 essential requirements
- No additional explanations or examples
- Keep total length under 5 lines
- Maintain professional tone

Structure:
Task: [One clear sentence]
Requirements:
1. [First key requirement]
2. [Second key requirement]
3. [Third key requirement - if absolutely necessary]

Format Requirements:
- Maximum 3 sentences
- No bullet points
- No examples unless critical
- Focus on core request

Original Text:
%s

Enhance this text into a clear, focused prompt that could be given to an AI system.`

const convertBalancedTemplate = `You will help convert the following text into a balanced, well-structured prompt.

Format Guidelines:
- Clear task definition
- Do not use afterrisks
- 4-5 key requirements
- One brief example
- Keep total length under 10 lines

Structure:
Task: [Clear task description]

Requirements:
1. [First requirement]
2. [Second requirement]
3. [Third requirement]
4. [Fourth requirement]
5. [Optional fifth requirement]

Example:
Scenario: [Brief example scenario]
Input: [Sample input]
Output: [Expected output]

Output Format: [Desired format]

Original Text:
%s

Transform this text into a balanced prompt that provides clear direction while maintaining essential context.`

const convertDetailedTemplate = `Create a comprehensive prompt about %s.

Format Guidelines:
- Detailed task explanation
- Do not use afterrisks
- Specific requirements and constraints
- Step-by-step guidance
- Clear examples
- Structured sections

Structure:
Task: [Comprehensive task description]

Requirements:
1. [First requirement with explanation]
2. [Second requirement with explanation]
3. [Third requirement with explanation]
[Continue with all necessary requirements]

Steps:
1. [First step with guidance]
2. [Second step with guidance]
3. [Third step with guidance]
[Continue with all necessary steps]

Examples:
1. Example Scenario: [Specific example]
   Input: [Sample input]
   Output: [Expected output]
2. [Additional example if needed]

Output Format: [Specific format requirements]

Structure Guidelines:
- Clear section headers
- Multiple related examples
- Step-by-step instructions where relevant
- Explicit success criteria
- Edge cases and exceptions

Original Text:
%s

Transform this text into a detailed prompt that leaves no room for ambiguity while maintaining clarity and purpose.`

// ConvertPrompt builds the user message that turns raw text into a
// structured prompt at the requested depth. Unknown variants fall back to
// detailed, matching the dispatch order of the callers.
func ConvertPrompt(variant ConvertVariant, topic string) string {
	switch variant {
	case ConvertConcise:
		return fmt.Sprintf(convertConciseTemplate, topic)
	case ConvertBalanced:
		return fmt.Sprintf(convertBalancedTemplate, topic)
	default:
		return fmt.Sprintf(convertDetailedTemplate, topic, topic)
	}
}

// ConvertSystemMessage is the system message used by the dedicated
// conversion endpoints, tuned per depth.
func ConvertSystemMessage(variant ConvertVariant) string {
	switch variant {
	case ConvertConcise:
		return "You are an expert at converting text into clear, concise prompts."
	case ConvertBalanced:
		return "You are an expert at creating well-balanced prompts that provide the right level of detail."
	default:
		return "You are an expert at creating detailed, comprehensive prompts that capture all necessary specifications, and dont use # or * in your output"
	}
}

// ConvertTemperature is the sampling temperature per depth. Deeper output
// gets slightly more freedom.
func ConvertTemperature(variant ConvertVariant) float64 {
	switch variant {
	case ConvertConcise:
		return 0.3
	case ConvertBalanced:
		return 0.4
	default:
		return 0.5
	}
}

// GenericConvertSystemMessage is the system message used when conversion
// runs through the mode-dispatched generate endpoint.
const GenericConvertSystemMessage = "You are an expert at creating clear, effective prompts."
