package prompts

import (
	"fmt"
	"strings"
)

// PersonaAnalysisSystemMessage frames the model as a role researcher for
// persona analysis.
const PersonaAnalysisSystemMessage = "You are an expert HR analyst and role researcher. Provide accurate, practical information about professional roles. Always respond with valid JSON only."

const personaAnalysisTemplate = `Analyze the role "%s" and provide structured information.

Role to analyze: %s

Please provide a JSON response with the following structure:
{
    "role_title": "Clean, professional title for this role",
    "experience_level": "junior/mid/senior/expert (inferred from the keyword)",
    "core_skills": [
        "skill 1",
        "skill 2",
        "skill 3",
        "skill 4",
        "skill 5"
    ],
    "communication_style": [
        "communication preference 1",
        "communication preference 2",
        "communication preference 3"
    ],
    "tools_technologies": [
        "tool/technology 1",
        "tool/technology 2"
    ],
    "primary_responsibilities": [
        "responsibility 1",
        "responsibility 2",
        "responsibility 3"
    ],
    "industry_context": "industry or business context",
    "key_phrases": [
        "phrase they would commonly use 1",
        "phrase they would commonly use 2"
    ]
}

Focus on being specific and practical. If the role includes level indicators (senior, junior, lead, etc.), reflect that in experience_level and adjust skills accordingly.`

// PersonaAnalysisPrompt builds the role-analysis prompt for a keyword.
func PersonaAnalysisPrompt(keyword string) string {
	return fmt.Sprintf(personaAnalysisTemplate, keyword, keyword)
}

// PersonaAnalysis is the structured role breakdown the model returns.
type PersonaAnalysis struct {
	RoleTitle               string   `json:"role_title"`
	ExperienceLevel         string   `json:"experience_level"`
	CoreSkills              []string `json:"core_skills"`
	CommunicationStyle      []string `json:"communication_style"`
	ToolsTechnologies       []string `json:"tools_technologies"`
	PrimaryResponsibilities []string `json:"primary_responsibilities"`
	IndustryContext         string   `json:"industry_context"`
	KeyPhrases              []string `json:"key_phrases"`
}

// BuildPersona assembles the final persona system prompt from an analysis.
// A nil analysis yields a generic persona built from the keyword alone.
func BuildPersona(analysis *PersonaAnalysis, keyword string) string {
	if analysis == nil {
		return fallbackPersona(keyword)
	}

	roleTitle := analysis.RoleTitle
	if roleTitle == "" {
		roleTitle = keyword
	}
	experienceLevel := analysis.ExperienceLevel
	if experienceLevel == "" {
		experienceLevel = "professional"
	}

	intro := fmt.Sprintf("You are a %s %s", experienceLevel, roleTitle)
	if analysis.IndustryContext != "" {
		intro += " working in " + analysis.IndustryContext
	}
	intro += ". You bring specialized expertise and practical experience to solve complex challenges in your field."

	var skills strings.Builder
	skills.WriteString("Core Competencies:")
	if len(analysis.CoreSkills) > 0 {
		for _, skill := range analysis.CoreSkills {
			skills.WriteString("\n• " + skill)
		}
	} else {
		skills.WriteString("\n• Professional expertise in " + keyword)
	}

	var responsibilities strings.Builder
	if len(analysis.PrimaryResponsibilities) > 0 {
		responsibilities.WriteString("\nPrimary Responsibilities:")
		for _, r := range analysis.PrimaryResponsibilities {
			responsibilities.WriteString("\n• " + r)
		}
	}

	var communication strings.Builder
	communication.WriteString("Communication Approach:")
	if len(analysis.CommunicationStyle) > 0 {
		communication.WriteString("\n" + strings.Join(analysis.CommunicationStyle, " "))
	} else {
		communication.WriteString("\nProvide expert advice with clear reasoning and practical examples.")
	}

	var tools strings.Builder
	if len(analysis.ToolsTechnologies) > 0 {
		tools.WriteString("\nTools & Technologies:")
		for _, tool := range analysis.ToolsTechnologies {
			tools.WriteString("\n• " + tool)
		}
	}

	var phrases strings.Builder
	if len(analysis.KeyPhrases) > 0 {
		phrases.WriteString("\nKey Phrases You Use:")
		keyPhrases := analysis.KeyPhrases
		if len(keyPhrases) > 3 {
			keyPhrases = keyPhrases[:3]
		}
		for _, phrase := range keyPhrases {
			phrases.WriteString("\n• \"" + phrase + "\"")
		}
	}

	experienceAdditions := ""
	switch experienceLevel {
	case "senior", "expert", "lead":
		experienceAdditions = `
Leadership Qualities:
• Mentor and guide team members
• Make strategic decisions and provide direction
• Drive best practices and innovation
• Collaborate across departments and stakeholders`
	}

	return fmt.Sprintf(`%s

%s%s%s

%s%s%s

Response Guidelines:
• Start by understanding the specific challenge or question
• Provide %s-level insights appropriate to a %s
• Draw from your professional experience and industry knowledge
• Include specific examples and actionable recommendations
• End with clarifying questions to ensure you're addressing core needs

Professional Identity:
"As a %s %s, I bring %d key competencies to help solve your challenges effectively."

Remember: You're not just providing information - you're a %s %s ready to apply your specialized knowledge to solve real problems.`,
		intro,
		skills.String(), responsibilities.String(), experienceAdditions,
		communication.String(), tools.String(), phrases.String(),
		experienceLevel, roleTitle,
		experienceLevel, roleTitle, len(analysis.CoreSkills),
		experienceLevel, roleTitle)
}

func fallbackPersona(keyword string) string {
	return fmt.Sprintf(`You are a %s with professional expertise in your field.

Core Competencies:
• Professional knowledge in %s domain
• Problem-solving and analytical thinking
• Communication and collaboration skills
• Continuous learning and adaptation

Communication Approach:
Provide expert advice with clear reasoning and practical examples. Focus on actionable solutions and best practices.

Response Guidelines:
• Acknowledge the user's specific question
• Provide professional-level insights
• Include practical examples and recommendations
• Ask follow-up questions to ensure clarity

Remember: You're a knowledgeable %s ready to help solve real problems with your expertise.`, keyword, keyword, keyword)
}

// Context is the detected setting for a persona request, kept as response
// metadata.
type Context struct {
	Domain  string
	Tone    string
	Keyword string
}

type domainPattern struct {
	name     string
	keywords []string
}

var domainPatterns = []domainPattern{
	{"technology", []string{"python", "javascript", "react", "node", "developer", "programmer", "software", "coding", "programming", "ai", "machine learning", "data science", "cybersecurity", "cloud", "devops", "blockchain", "api", "database", "frontend", "backend", "fullstack", "web development", "mobile development", "ios", "android", "java", "c++", "php", "ruby", "go", "rust", "typescript", "vue", "angular"}},
	{"business", []string{"marketing", "sales", "business", "strategy", "management", "leadership", "finance", "consulting", "entrepreneur", "startup", "revenue", "profit", "roi", "kpi", "analytics", "growth hacking", "digital marketing", "social media", "seo", "ppc", "content marketing", "email marketing", "brand", "branding"}},
	{"creative", []string{"design", "designer", "art", "artist", "creative", "writing", "writer", "content", "video", "photography", "photographer", "graphics", "ui", "ux", "storytelling", "music", "animation", "illustration", "copywriter", "creative director"}},
	{"education", []string{"teacher", "teaching", "education", "training", "trainer", "learning", "curriculum", "academic", "research", "researcher", "science", "professor", "tutor", "course", "study", "instructor"}},
	{"healthcare", []string{"medical", "health", "doctor", "nurse", "therapy", "therapist", "wellness", "fitness", "nutrition", "psychology", "psychologist", "mental health", "patient", "healthcare", "physician"}},
	{"legal", []string{"legal", "law", "lawyer", "attorney", "court", "contract", "compliance", "regulation", "policy", "rights", "paralegal", "legal counsel"}},
	{"finance", []string{"finance", "financial", "accountant", "accounting", "investment", "investor", "banking", "fintech", "cryptocurrency", "trading", "analyst", "cfo", "bookkeeper"}},
}

type tonePattern struct {
	name     string
	keywords []string
}

var tonePatterns = []tonePattern{
	{"expert", []string{"senior", "lead", "principal", "expert", "specialist", "advanced", "architect"}},
	{"casual", []string{"friendly", "casual", "relaxed", "informal", "conversational", "buddy"}},
	{"creative", []string{"creative", "innovative", "artistic", "imaginative", "original", "visionary"}},
	{"professional", []string{"professional", "business", "corporate", "executive", "formal"}},
}

// DetectContext scores the keyword against the domain and tone tables. An
// exact keyword match earns a bonus so "python" lands on technology even
// when a substring also scores elsewhere.
func DetectContext(text string) Context {
	lower := strings.ToLower(text)
	trimmed := strings.TrimSpace(lower)

	bestDomain := "general"
	bestScore := 0.0
	for _, pattern := range domainPatterns {
		score := 0.0
		for _, keyword := range pattern.keywords {
			if strings.Contains(lower, keyword) {
				score += 1.0
				if keyword == trimmed {
					score += 2.0
				}
			}
		}
		if score > bestScore {
			bestScore = score
			bestDomain = pattern.name
		}
	}

	tone := "professional"
	for _, pattern := range tonePatterns {
		if containsAnyKeyword(lower, pattern.keywords) {
			tone = pattern.name
			break
		}
	}

	return Context{Domain: bestDomain, Tone: tone, Keyword: strings.TrimSpace(text)}
}

func containsAnyKeyword(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
