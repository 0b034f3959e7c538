package extract

import "strings"

// Question is one suggested follow-up question.
type Question struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// Suggestion is one enhancement suggestion.
type Suggestion struct {
	Prompt         string `json:"prompt"`
	FocusArea      string `json:"focus_area"`
	ExpectedImpact string `json:"expected_impact"`
	Priority       string `json:"priority"`
}

// ActionPrompt is one action-oriented follow-up prompt.
type ActionPrompt struct {
	Prompt  string `json:"prompt"`
	Focus   string `json:"focus"`
	Context string `json:"context"`
}

// listPrefixes are the markers models put in front of list items when they
// drift out of JSON and into prose.
var listPrefixes = []string{`"text":`, "text:", `"`, "'", "-", "•", "*", "1.", "2.", "3.", "4.", "5."}

func stripListPrefixes(line string, prefixes []string) string {
	for _, prefix := range prefixes {
		if strings.HasPrefix(line, prefix) {
			line = strings.TrimSpace(line[len(prefix):])
		}
	}
	return strings.TrimSpace(strings.TrimRight(line, `",'`))
}

// Questions scans free-form text for follow-up questions. The result is
// never empty: if nothing usable is found it returns three strategic
// defaults. At most three questions are returned.
func Questions(text string) []Question {
	var questions []Question

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "?") || len(line) <= 20 {
			continue
		}
		clean := stripListPrefixes(line, listPrefixes)
		if clean != "" && strings.HasSuffix(clean, "?") && len(clean) > 15 {
			questions = append(questions, Question{Text: clean, Type: "strategic"})
		}
	}

	if len(questions) == 0 {
		questions = []Question{
			{Text: "What underlying assumptions in this approach should be validated or challenged?", Type: "assumption"},
			{Text: "What alternative strategies or methodologies could achieve similar outcomes?", Type: "alternative"},
			{Text: "What would be the key implementation challenges and success factors?", Type: "implementation"},
		}
	}

	if len(questions) > 3 {
		questions = questions[:3]
	}
	return questions
}

var suggestionPrefixes = []string{`"prompt":`, "prompt:", `"`, "'", "-", "•", "*", "1.", "2.", "3.", "4.", "5."}

var suggestionStarters = []string{"enhance", "improve", "refine", "optimize", "add", "include"}

// Suggestions scans free-form text for enhancement suggestions, with four
// generic defaults when nothing is found. At most four are returned.
func Suggestions(text string) []Suggestion {
	var suggestions []Suggestion

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !containsAny(strings.ToLower(line), suggestionStarters) {
			continue
		}
		if len(line) <= 30 || len(line) >= 300 {
			continue
		}
		clean := stripListPrefixes(line, suggestionPrefixes)
		if clean != "" && len(clean) > 20 {
			suggestions = append(suggestions, Suggestion{
				Prompt:         clean,
				FocusArea:      "improvement",
				ExpectedImpact: "Enhanced quality",
				Priority:       "medium",
			})
		}
	}

	if len(suggestions) == 0 {
		suggestions = []Suggestion{
			{Prompt: "Enhance this content by making it more specific and detailed", FocusArea: "specificity", ExpectedImpact: "Better clarity", Priority: "high"},
			{Prompt: "Improve this content by adding more context and examples", FocusArea: "context", ExpectedImpact: "Better understanding", Priority: "high"},
			{Prompt: "Refine this content to be more engaging and actionable", FocusArea: "engagement", ExpectedImpact: "Better user experience", Priority: "medium"},
			{Prompt: "Optimize this content for better structure and flow", FocusArea: "structure", ExpectedImpact: "Better organization", Priority: "medium"},
		}
	}

	if len(suggestions) > 4 {
		suggestions = suggestions[:4]
	}
	return suggestions
}

var actionPrefixes = []string{`"prompt":`, "prompt:", `"`, "'", "-", "•", "*", "1.", "2.", "3."}

var actionStarters = []string{"help me", "show me", "create", "give me", "walk me through", "build", "plan", "strategy", "implement"}

// ActionPrompts scans free-form text for action-oriented prompts, with
// three planning-focused defaults when nothing is found. At most three are
// returned.
func ActionPrompts(text string) []ActionPrompt {
	var prompts []ActionPrompt

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !containsAny(strings.ToLower(line), actionStarters) {
			continue
		}
		if len(line) <= 40 || len(line) >= 500 || !strings.Contains(line, "?") {
			continue
		}
		clean := stripListPrefixes(line, actionPrefixes)
		if clean != "" && len(clean) > 35 {
			prompts = append(prompts, ActionPrompt{
				Prompt:  clean,
				Focus:   "practical",
				Context: "actionable guidance",
			})
		}
	}

	if len(prompts) == 0 {
		prompts = []ActionPrompt{
			{Prompt: "Help me create an action plan based on our discussion. What are the specific next steps I should take?", Focus: "planning", Context: "next steps"},
			{Prompt: "Give me 3 practical ways to apply what we've discussed. Include specific examples for my situation.", Focus: "application", Context: "practical use"},
			{Prompt: "Walk me through how to get started with this approach. What should I do first and why?", Focus: "getting started", Context: "initial steps"},
		}
	}

	if len(prompts) > 3 {
		prompts = prompts[:3]
	}
	return prompts
}

// FallbackSuggestions builds four generic enhancement suggestions keyed to
// what kind of content the original text looks like. Used when the model's
// answer yields nothing parseable at all, so the suggestions come from the
// user's text instead of the model output.
func FallbackSuggestions(originalText string) []Suggestion {
	contentType := classifyContent(originalText)
	return []Suggestion{
		{
			Prompt:         "Enhance this " + contentType + " by making it more precise, detailed, and actionable with specific examples and clear structure",
			FocusArea:      "precision_and_clarity",
			ExpectedImpact: "Improved clarity and specificity",
			Priority:       "high",
		},
		{
			Prompt:         "Improve this " + contentType + " by adding context, supporting details, and better organization to increase engagement",
			FocusArea:      "depth_and_structure",
			ExpectedImpact: "Enhanced depth and organization",
			Priority:       "high",
		},
		{
			Prompt:         "Refine this " + contentType + " to be more engaging and persuasive with stronger language and compelling elements",
			FocusArea:      "engagement",
			ExpectedImpact: "Increased engagement and persuasion",
			Priority:       "medium",
		},
		{
			Prompt:         "Optimize this " + contentType + " for professional quality by following best practices and ensuring completeness",
			FocusArea:      "professional_quality",
			ExpectedImpact: "Professional-grade output",
			Priority:       "medium",
		},
	}
}

func classifyContent(text string) string {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, []string{"function", "class", "def", "var", "const", "import"}):
		return "code"
	case containsAny(lower, []string{"write", "blog", "article", "content", "copy"}):
		return "writing"
	case strings.HasSuffix(text, "?") || strings.Contains(lower, "help"):
		return "prompt"
	default:
		return "content"
	}
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
