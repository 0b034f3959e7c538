package prompts

import "fmt"

// EnhancementSystemMessage frames the model as a content strategist for
// the enhancement-suggestion feature.
const EnhancementSystemMessage = "You are a world-class content strategist and prompt engineer. Your expertise spans writing, coding, business strategy, creative work, and technical documentation. You create enhancement instructions that deliver transformative improvements. Never include the original text in your enhancement instructions."

const enhancementTemplate = `
You are an expert content strategist with deep understanding across all domains. Analyze the highlighted text and create 4 precise enhancement instructions.

HIGHLIGHTED TEXT TO ANALYZE:
%s

ANALYSIS FRAMEWORK:
1. Content Type & Purpose: What is this and what's it trying to achieve?
2. Current Quality Level: Strengths and improvement opportunities
3. Context Clues: Infer the user's likely goals and constraints
4. Enhancement Vectors: Identify the 4 most impactful improvement areas

ENHANCEMENT INSTRUCTION REQUIREMENTS:
- Each must be a clear, actionable instruction
- Focus on specific improvements, not vague suggestions
- Be immediately copy-pasteable as a prompt
- Do NOT include the original text in the instruction
- Start with action verbs like "Enhance", "Improve", "Add", "Refine"

INSTRUCTION FORMULA: "[Action verb] this [content type] by [specific improvement instructions]"

JSON FORMAT:
{
    "content_analysis": {
        "type": "What type of content this is",
        "purpose": "What it's trying to achieve",
        "current_quality": "Brief assessment",
        "improvement_potential": "Key areas for enhancement"
    },
    "enhancement_prompts": [
        {
            "prompt": "Clear enhancement instruction WITHOUT original text",
            "focus_area": "Primary improvement focus",
            "expected_impact": "What this will improve",
            "priority": "high/medium/low"
        },
        {
            "prompt": "Second enhancement instruction focusing on different aspect",
            "focus_area": "Different improvement aspect",
            "expected_impact": "Different improvement outcome",
            "priority": "high/medium/low"
        },
        {
            "prompt": "Third enhancement instruction with another angle",
            "focus_area": "Another improvement angle",
            "expected_impact": "Another improvement outcome",
            "priority": "high/medium/low"
        },
        {
            "prompt": "Fourth enhancement instruction with final dimension",
            "focus_area": "Final improvement dimension",
            "expected_impact": "Final improvement outcome",
            "priority": "high/medium/low"
        }
    ]
}

IMPORTANT: Do NOT include the original text in any of the enhancement prompts. Only provide the improvement instructions.`

// BuildEnhancementPrompt assembles the enhancement-analysis prompt for a
// piece of selected text.
func BuildEnhancementPrompt(selectedText string) string {
	return fmt.Sprintf(enhancementTemplate, selectedText)
}
