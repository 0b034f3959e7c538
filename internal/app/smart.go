package app

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"promptforge/internal/extract"
	"promptforge/internal/llm"
	"promptforge/internal/prompts"
)

type conversationRequest struct {
	Conversation string `json:"conversation"`
	Platform     string `json:"platform"`
}

// handleSmartFollowups generates follow-up questions for a conversation.
// The focus is picked deterministically from the conversation content, the
// model answer is parsed as JSON, and a line-scan fallback guarantees the
// client always gets questions once a model has answered.
func (a *App) handleSmartFollowups(w http.ResponseWriter, r *http.Request) {
	decision := a.gate.Authorize(r, "smart_followups")
	if !decision.Allowed {
		rejectPayment(w, decision)
		return
	}

	var req conversationRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request payload"})
		return
	}
	conversation := strings.TrimSpace(req.Conversation)
	platform := req.Platform
	if platform == "" {
		platform = "unknown"
	}
	if conversation == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Conversation content is required"})
		return
	}

	focus := prompts.FocusForConversation(conversation)
	analysisPrompt := prompts.BuildFollowupPrompt(conversation, focus)

	content, model, err := a.completer.CompleteWithFallback(r.Context(),
		llm.DefaultCandidates(), []llm.Message{llm.UserMessage(analysisPrompt)})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "All AI models failed to respond",
		})
		return
	}

	result := map[string]any{
		"success":    true,
		"platform":   platform,
		"model":      model,
		"focus_used": focus,
		"enhanced":   true,
	}

	questions, analysis, ok := parseFollowupResponse(content)
	if ok {
		result["questions"] = questions
		result["analysis"] = analysis
	} else {
		log.Printf("followup JSON parsing failed, using line extraction")
		result["questions"] = extract.Questions(content)
		result["analysis"] = "Strategic questions generated to enhance discussion"
		result["fallback"] = true
	}

	writeJSON(w, http.StatusOK, addCharge(result, decision))
}

// parseFollowupResponse validates the model's JSON answer. At most five
// questions are kept; each needs a text longer than 15 characters and gets a
// trailing question mark if the model dropped it.
func parseFollowupResponse(content string) ([]extract.Question, string, bool) {
	obj, err := extract.Object(content)
	if err != nil {
		return nil, "", false
	}

	rawQuestions, _ := obj["questions"].([]any)
	var validated []extract.Question
	for _, raw := range rawQuestions {
		if len(validated) == 5 {
			break
		}
		q, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		text, _ := q["text"].(string)
		text = strings.TrimSpace(text)
		if len(text) <= 15 {
			continue
		}
		if !strings.HasSuffix(text, "?") {
			text += "?"
		}
		qType, _ := q["type"].(string)
		if qType == "" {
			qType = "strategic"
		}
		validated = append(validated, extract.Question{Text: text, Type: qType})
	}
	if len(validated) == 0 {
		return nil, "", false
	}

	analysis, _ := obj["analysis"].(string)
	if analysis == "" {
		analysis = "Strategic insights generated"
	}
	return validated, analysis, true
}

// handleSmartActions generates action-oriented follow-up prompts.
func (a *App) handleSmartActions(w http.ResponseWriter, r *http.Request) {
	decision := a.gate.Authorize(r, "smart_actions")
	if !decision.Allowed {
		rejectPayment(w, decision)
		return
	}

	var req conversationRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request payload"})
		return
	}
	conversation := strings.TrimSpace(req.Conversation)
	platform := req.Platform
	if platform == "" {
		platform = "unknown"
	}
	if conversation == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Conversation content is required"})
		return
	}

	actionPrompt := prompts.BuildActionPrompt(conversation)

	content, model, err := a.completer.CompleteWithFallback(r.Context(),
		llm.ActionCandidates(), []llm.Message{llm.UserMessage(actionPrompt)})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "All AI models failed to respond",
		})
		return
	}

	result := map[string]any{
		"success":  true,
		"platform": platform,
		"model":    model,
	}

	actionPrompts, analysis, ok := parseActionResponse(content)
	if ok {
		result["action_prompts"] = actionPrompts
		result["analysis"] = analysis
	} else {
		log.Printf("action JSON parsing failed, using line extraction")
		result["action_prompts"] = extract.ActionPrompts(content)
		result["analysis"] = "Action-oriented prompts generated"
		result["fallback"] = true
	}

	writeJSON(w, http.StatusOK, addCharge(result, decision))
}

func parseActionResponse(content string) ([]extract.ActionPrompt, string, bool) {
	obj, err := extract.Object(content)
	if err != nil {
		return nil, "", false
	}

	rawPrompts, _ := obj["action_prompts"].([]any)
	var validated []extract.ActionPrompt
	for _, raw := range rawPrompts {
		if len(validated) == 3 {
			break
		}
		p, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		text, _ := p["prompt"].(string)
		text = strings.TrimSpace(text)
		if len(text) <= 30 {
			continue
		}
		focus, _ := p["focus"].(string)
		if focus == "" {
			focus = "practical"
		}
		context, _ := p["context"].(string)
		if context == "" {
			context = "general"
		}
		validated = append(validated, extract.ActionPrompt{Prompt: text, Focus: focus, Context: context})
	}
	if len(validated) == 0 {
		return nil, "", false
	}

	analysis, _ := obj["analysis"].(string)
	if analysis == "" {
		analysis = "Action-oriented prompts generated"
	}
	return validated, analysis, true
}

// handleSmartEnhancements analyzes highlighted text and returns enhancement
// instructions. Recovery runs in two stages: a line scan of the model answer
// when its JSON parses poorly, then content-aware static suggestions when
// nothing usable came back at all.
func (a *App) handleSmartEnhancements(w http.ResponseWriter, r *http.Request) {
	decision := a.gate.Authorize(r, "smart_enhancements")
	if !decision.Allowed {
		rejectPayment(w, decision)
		return
	}

	var req textRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request payload"})
		return
	}
	selected := strings.TrimSpace(req.Text)
	if selected == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Selected text is required"})
		return
	}

	content, model, err := a.completer.CompleteWithFallback(r.Context(),
		llm.EnhancementCandidates(), []llm.Message{
			llm.SystemMessage(prompts.EnhancementSystemMessage),
			llm.UserMessage(prompts.BuildEnhancementPrompt(selected)),
		})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "All models failed to respond",
		})
		return
	}

	obj, parseErr := extract.Object(content)
	if parseErr == nil {
		if validated, analysis, ok := parseEnhancementResponse(obj); ok {
			result := map[string]any{
				"success":             true,
				"content_analysis":    analysis,
				"enhancement_prompts": validated,
				"model_used":          model,
				"original_length":     len(selected),
				"gpt_4_1_used":        strings.Contains(model, "gpt-4.1"),
			}
			writeJSON(w, http.StatusOK, addCharge(result, decision))
			return
		}
		// The JSON parsed but carried no usable prompts; scan the raw
		// answer for instruction lines before giving up on it.
		log.Printf("enhancement JSON had no valid prompts, using line extraction")
		result := map[string]any{
			"success":             true,
			"content_analysis":    map[string]any{"type": "Content analyzed", "purpose": "Enhancement ready"},
			"enhancement_prompts": extract.Suggestions(content),
			"model_used":          model,
			"fallback":            true,
		}
		writeJSON(w, http.StatusOK, addCharge(result, decision))
		return
	}

	log.Printf("enhancement JSON parsing failed: %v", parseErr)
	result := map[string]any{
		"success":             true,
		"content_analysis":    map[string]any{"type": "Content analyzed", "purpose": "Enhancement ready"},
		"enhancement_prompts": extract.FallbackSuggestions(selected),
		"model_used":          model,
		"fallback":            true,
	}
	writeJSON(w, http.StatusOK, addCharge(result, decision))
}

func parseEnhancementResponse(obj map[string]any) ([]extract.Suggestion, any, bool) {
	rawPrompts, _ := obj["enhancement_prompts"].([]any)
	var validated []extract.Suggestion
	for _, raw := range rawPrompts {
		p, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		text, _ := p["prompt"].(string)
		text = strings.TrimSpace(text)
		if len(text) <= 20 {
			continue
		}
		focusArea, _ := p["focus_area"].(string)
		if focusArea == "" {
			focusArea = "improvement"
		}
		impact, _ := p["expected_impact"].(string)
		if impact == "" {
			impact = "Enhanced quality"
		}
		priority, _ := p["priority"].(string)
		if priority == "" {
			priority = "medium"
		}
		validated = append(validated, extract.Suggestion{
			Prompt:         text,
			FocusArea:      focusArea,
			ExpectedImpact: impact,
			Priority:       priority,
		})
	}
	if len(validated) == 0 {
		return nil, nil, false
	}

	analysis, ok := obj["content_analysis"].(map[string]any)
	if !ok {
		analysis = map[string]any{}
	}
	return validated, analysis, true
}

// handleGeneratePersona builds a persona system prompt for a role keyword.
// The role analysis comes from the model; when that fails the static
// fallback persona is used and the metadata says so.
func (a *App) handleGeneratePersona(w http.ResponseWriter, r *http.Request) {
	decision := a.gate.Authorize(r, "persona_generator")
	if !decision.Allowed {
		rejectPayment(w, decision)
		return
	}

	var req textRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request payload"})
		return
	}
	keyword := strings.TrimSpace(req.Text)
	if keyword == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Keyword is required"})
		return
	}

	context := prompts.DetectContext(keyword)
	analysis := a.analyzeRole(r, keyword)

	result := map[string]any{
		"prompt": prompts.BuildPersona(analysis, keyword),
		"status": "success",
		"metadata": map[string]any{
			"keyword":     keyword,
			"domain":      context.Domain,
			"tone":        context.Tone,
			"mode":        "ai_powered_persona",
			"ai_analyzed": analysis != nil,
		},
	}
	writeJSON(w, http.StatusOK, addCharge(result, decision))
}

// analyzeRole asks the model for a structured role analysis. Any failure
// returns nil so the caller falls back to the static persona.
func (a *App) analyzeRole(r *http.Request, keyword string) *prompts.PersonaAnalysis {
	content, err := a.completer.Complete(r.Context(), llm.Request{
		Model: llm.DefaultModel,
		Messages: []llm.Message{
			llm.SystemMessage(prompts.PersonaAnalysisSystemMessage),
			llm.UserMessage(prompts.PersonaAnalysisPrompt(keyword)),
		},
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		log.Printf("persona analysis failed: %v", err)
		return nil
	}

	obj, err := extract.Object(content)
	if err != nil {
		log.Printf("persona analysis JSON parsing failed: %v", err)
		return nil
	}
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil
	}
	var analysis prompts.PersonaAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		log.Printf("persona analysis decode failed: %v", err)
		return nil
	}
	return &analysis
}
