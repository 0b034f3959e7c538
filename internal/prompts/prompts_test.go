package prompts

import (
	"strings"
	"testing"
)

func TestNormalizeTone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"reframe_casual", "casual"},
		{"reframe_eli5", "eli5"},
		{"professional", "professional"},
	}
	for _, tt := range tests {
		if got := NormalizeTone(tt.in); got != tt.want {
			t.Errorf("NormalizeTone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReframeTemplateCoversAllTones(t *testing.T) {
	tones := []string{"casual", "technical", "professional", "eli5", "short", "long"}
	for _, tone := range tones {
		template, ok := ReframeTemplate("fix the login bug", tone)
		if !ok {
			t.Errorf("no template for tone %q", tone)
			continue
		}
		if template.System == "" {
			t.Errorf("tone %q has empty system message", tone)
		}
		if !strings.Contains(template.User, "fix the login bug") {
			t.Errorf("tone %q user message missing topic: %q", tone, template.User)
		}
	}

	if _, ok := ReframeTemplate("x", "sarcastic"); ok {
		t.Error("unknown tone should not resolve")
	}
}

func TestConvertPromptEmbedsTopic(t *testing.T) {
	for _, variant := range []ConvertVariant{ConvertConcise, ConvertBalanced, ConvertDetailed} {
		prompt := ConvertPrompt(variant, "summarize meeting notes")
		if !strings.Contains(prompt, "summarize meeting notes") {
			t.Errorf("%s prompt missing topic", variant)
		}
		if ConvertSystemMessage(variant) == "" {
			t.Errorf("%s has empty system message", variant)
		}
	}

	detailed := ConvertPrompt(ConvertDetailed, "topic-x")
	if strings.Count(detailed, "topic-x") != 2 {
		t.Errorf("detailed prompt should embed the topic twice")
	}
}

func TestChainOfThoughtEmbedsTopicTwice(t *testing.T) {
	out := ChainOfThought("design a logo")
	if strings.Count(out, "design a logo") != 2 {
		t.Errorf("topic should appear twice, got %d", strings.Count(out, "design a logo"))
	}
	if !strings.Contains(out, "LAYER 1: CORE DECONSTRUCTION") {
		t.Error("layered scaffold missing")
	}
}

func TestFocusForConversationDeterministic(t *testing.T) {
	conversation := "We were discussing how to roll out the new caching layer without downtime."

	first := FocusForConversation(conversation)
	for i := 0; i < 10; i++ {
		if got := FocusForConversation(conversation); got != first {
			t.Fatalf("focus changed between calls: %q vs %q", got, first)
		}
	}

	found := false
	for _, option := range FocusOptions() {
		if option == first {
			found = true
		}
	}
	if !found {
		t.Errorf("focus %q not in the option set", first)
	}
}

func TestFocusForConversationUsesOnlyPrefix(t *testing.T) {
	prefix := strings.Repeat("a", 200)
	if FocusForConversation(prefix+"tail one") != FocusForConversation(prefix+"different tail") {
		t.Error("bytes past the prefix should not affect the focus")
	}
}

func TestBuildFollowupPromptTruncatesConversation(t *testing.T) {
	long := strings.Repeat("x", 5000)
	prompt := BuildFollowupPrompt(long, "Ask about practical next steps and what to try first")
	if strings.Contains(prompt, strings.Repeat("x", 1801)) {
		t.Error("conversation not truncated to limit")
	}
	if !strings.Contains(prompt, "Ask about practical next steps") {
		t.Error("focus missing from prompt")
	}
}

func TestBuildActionPromptEmbedsConversation(t *testing.T) {
	prompt := BuildActionPrompt("we talked about docker compose setups")
	if !strings.Contains(prompt, "we talked about docker compose setups") {
		t.Error("conversation missing from prompt")
	}
	if !strings.Contains(prompt, `"action_prompts"`) {
		t.Error("output format section missing")
	}
}

func TestBuildPersonaFromAnalysis(t *testing.T) {
	analysis := &PersonaAnalysis{
		RoleTitle:               "Backend Engineer",
		ExperienceLevel:         "senior",
		CoreSkills:              []string{"Go", "PostgreSQL", "Kubernetes"},
		CommunicationStyle:      []string{"Direct and pragmatic.", "Prefers examples over theory."},
		ToolsTechnologies:       []string{"Grafana", "Terraform"},
		PrimaryResponsibilities: []string{"Own the API layer"},
		IndustryContext:         "fintech",
		KeyPhrases:              []string{"ship it", "measure first", "keep it boring", "extra phrase"},
	}

	persona := BuildPersona(analysis, "senior backend engineer")

	for _, want := range []string{
		"You are a senior Backend Engineer working in fintech",
		"• Go",
		"Primary Responsibilities:",
		"Leadership Qualities:",
		"Direct and pragmatic. Prefers examples over theory.",
		"• Grafana",
		`• "ship it"`,
		"I bring 3 key competencies",
	} {
		if !strings.Contains(persona, want) {
			t.Errorf("persona missing %q", want)
		}
	}
	if strings.Contains(persona, "extra phrase") {
		t.Error("key phrases should be capped at three")
	}
}

func TestBuildPersonaNilAnalysis(t *testing.T) {
	persona := BuildPersona(nil, "data analyst")
	if !strings.Contains(persona, "You are a data analyst with professional expertise") {
		t.Errorf("fallback persona wrong: %q", persona)
	}
}

func TestBuildPersonaJuniorHasNoLeadershipSection(t *testing.T) {
	persona := BuildPersona(&PersonaAnalysis{RoleTitle: "QA Tester", ExperienceLevel: "junior"}, "qa tester")
	if strings.Contains(persona, "Leadership Qualities:") {
		t.Error("junior persona should not carry the leadership section")
	}
}

func TestDetectContext(t *testing.T) {
	tests := []struct {
		text       string
		wantDomain string
		wantTone   string
	}{
		{"senior python developer", "technology", "expert"},
		{"friendly marketing consultant", "business", "casual"},
		{"creative director for animation", "creative", "creative"},
		{"nurse practitioner", "healthcare", "professional"},
		{"basket weaver", "general", "professional"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ctx := DetectContext(tt.text)
			if ctx.Domain != tt.wantDomain {
				t.Errorf("domain = %q, want %q", ctx.Domain, tt.wantDomain)
			}
			if ctx.Tone != tt.wantTone {
				t.Errorf("tone = %q, want %q", ctx.Tone, tt.wantTone)
			}
			if ctx.Keyword != tt.text {
				t.Errorf("keyword = %q", ctx.Keyword)
			}
		})
	}
}

func TestKeyTerms(t *testing.T) {
	// The word-run pass matches first, then the acronym and technology
	// passes only add unseen terms.
	terms := KeyTerms("ok, go! API")
	want := []string{"ok", "go", "API"}
	if len(terms) != len(want) {
		t.Fatalf("got %v, want %v", terms, want)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("terms[%d] = %q, want %q", i, terms[i], want[i])
		}
	}

	if got := KeyTerms("a + b SDK"); len(got) != 1 || got[0] != "SDK" {
		t.Errorf("got %v, want [SDK]", got)
	}

	long := KeyTerms("one two three four five six")
	if len(long) > 3 {
		t.Errorf("cap exceeded: %v", long)
	}
}
