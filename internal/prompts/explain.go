package prompts

// ExplainMeaningTemplate is the structured output shape for term
// explanations.
const ExplainMeaningTemplate = `Definition:
[Concise one-line definition of the core concept]

Domain Meanings & Usage:
| [Domain1]: [Specific meaning in this domain]
  "[Example sentence showing usage]"

| [Domain2]: [Specific meaning in this domain]
  "[Example sentence showing usage]"

| [Domain3]: [Specific meaning in this domain]
  "[Example sentence showing usage]"

| [Domain4]: [Specific meaning in this domain]
  "[Example sentence showing usage]"

Related:
[3-4 closely related terms, comma-separated]`

// ExplainStoryTemplate is the structured output shape for narrative
// explanations.
const ExplainStoryTemplate = `Core Concept:
[One-line explanation of what it is]

Story:
[3-4 sentences that naturally explain the concept through a relatable narrative]`

// ExplainMeaningSystemMessage accompanies ExplainMeaningTemplate.
const ExplainMeaningSystemMessage = "Generate concise, structured explanations following the exact template format. Include relevant domain-specific meanings and authentic usage examples."

// ExplainStorySystemMessage accompanies ExplainStoryTemplate.
const ExplainStorySystemMessage = "Create a concise story that explains the concept naturally, without bullet points or sections."

// ExplainELI5SystemMessage drives the child-friendly explanation mode,
// which has no output template.
const ExplainELI5SystemMessage = "Explain concepts using simple words, fun analogies, and examples that a 5-year-old would understand. Use short sentences and friendly language."

// ExplainMeaningUser builds the user message for a term explanation.
func ExplainMeaningUser(text string) string {
	return "Explain this term:\n" + text + "\n\nUse template:\n" + ExplainMeaningTemplate
}

// ExplainStoryUser builds the user message for a narrative explanation.
func ExplainStoryUser(text string) string {
	return "Explain this through a story:\n" + text + "\n\nUse template:\n" + ExplainStoryTemplate
}

// ExplainELI5User builds the user message for a child-friendly explanation.
func ExplainELI5User(text string) string {
	return "Explain this to a 5-year-old:\n" + text
}

// GenericExplainTemplate covers explain modes outside the three structured
// ones; it trades the rigid output shape for plain guidelines.
func GenericExplainTemplate(topic, mode string) (ToneTemplate, bool) {
	templates := map[string]ToneTemplate{
		"explain_meaning": {
			System: `Provide clear, direct explanations of meanings. Guidelines:
- Give straightforward definitions
- Explain key concepts clearly
- Use simple language
- Keep output balanced in length (2-3 short paragraphs)
- No markdown, bullets, or special formatting`,
			User: "What does this mean:\n" + topic,
		},
		"explain_example": {
			System: `Explain concepts through clear examples. Guidelines:
- Use one clear, relevant example
- Connect example to the concept
- Keep explanation practical
- Maintain balanced length (2-3 short paragraphs)
- No markdown, bullets, or special formatting`,
			User: "Provide an example that explains:\n" + topic,
		},
		"explain_eli5": {
			System: `Explain concepts in child-friendly terms. Guidelines:
- Use very simple words
- Give relatable examples
- Keep sentences short
- Maintain balanced length (2-3 short paragraphs)
- No markdown, bullets, or special formatting`,
			User: "Explain this to a young child:\n" + topic,
		},
	}
	t, ok := templates[mode]
	return t, ok
}
