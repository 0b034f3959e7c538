package app

import (
	"net/http"
	"strings"

	"promptforge/internal/credits"
	"promptforge/internal/llm"
	"promptforge/internal/prompts"
)

type generateRequest struct {
	Topic  string `json:"topic"`
	Tone   string `json:"tone"`
	Length string `json:"length"`
	Mode   string `json:"mode"`
}

// handleGenerate is the mode-dispatched entry point used by the extension.
// Reframe, explain, convert and image modes each have their own template
// path; "cot" is a pure template with no model call; everything else runs
// the generic rewrite.
func (a *App) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request payload"})
		return
	}
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Tone == "" {
		req.Tone = "professional"
	}
	if req.Length == "" {
		req.Length = "balanced"
	}
	if req.Mode == "" {
		req.Mode = "reframe_casual"
	}
	if req.Topic == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Topic is required"})
		return
	}

	decision := a.gate.Authorize(r, req.Mode)
	if !decision.Allowed {
		rejectPayment(w, decision)
		return
	}

	switch {
	case strings.HasPrefix(req.Mode, "reframe_"):
		a.generateReframe(w, r, req, decision)
	case strings.HasPrefix(req.Mode, "explain_"):
		a.generateExplain(w, r, req, decision)
	case strings.HasPrefix(req.Mode, "convert_"):
		a.generateConvert(w, r, req, decision)
	case strings.HasPrefix(req.Mode, "image_"):
		a.generateImageVariation(w, r, req, decision)
	case req.Mode == "cot":
		result := map[string]any{
			"prompt": prompts.ChainOfThought(req.Topic),
			"status": "success",
			"metadata": map[string]any{
				"topic": req.Topic,
				"tone":  req.Tone,
				"mode":  "cot",
			},
		}
		writeJSON(w, http.StatusOK, addCharge(result, decision))
	default:
		a.generateEnhance(w, r, req, decision)
	}
}

func (a *App) generateReframe(w http.ResponseWriter, r *http.Request, req generateRequest, decision credits.Decision) {
	tone := prompts.NormalizeTone(req.Mode)
	template, ok := prompts.ReframeTemplate(req.Topic, tone)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Failed to generate prompt",
			"details": "Unsupported tone: " + tone,
		})
		return
	}

	content, err := a.completer.Complete(r.Context(), llm.Request{
		Model: llm.DefaultModel,
		Messages: []llm.Message{
			llm.SystemMessage(template.System),
			llm.UserMessage(template.User),
			llm.SystemMessage(prompts.ReframeFormatReminder),
		},
		Temperature: 0.3,
	})
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	result := map[string]any{
		"prompt": content,
		"status": "success",
		"metadata": map[string]any{
			"topic": req.Topic,
			"tone":  tone,
			"mode":  "reframe_" + tone,
		},
	}
	writeJSON(w, http.StatusOK, addCharge(result, decision))
}

func (a *App) generateExplain(w http.ResponseWriter, r *http.Request, req generateRequest, decision credits.Decision) {
	llmReq := llm.Request{Model: llm.DefaultModel, Temperature: 0.3, MaxTokens: 400}

	switch req.Mode {
	case "explain_meaning":
		llmReq.Messages = []llm.Message{
			llm.SystemMessage(prompts.ExplainMeaningSystemMessage),
			llm.UserMessage(prompts.ExplainMeaningUser(req.Topic)),
		}
	case "explain_story":
		llmReq.Messages = []llm.Message{
			llm.SystemMessage(prompts.ExplainStorySystemMessage),
			llm.UserMessage(prompts.ExplainStoryUser(req.Topic)),
		}
	case "explain_eli5":
		llmReq.Messages = []llm.Message{
			llm.SystemMessage(prompts.ExplainELI5SystemMessage),
			llm.UserMessage(prompts.ExplainELI5User(req.Topic)),
		}
	default:
		template, ok := prompts.GenericExplainTemplate(req.Topic, req.Mode)
		if !ok {
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error":   "Failed to generate prompt",
				"details": "Unsupported explain mode: " + req.Mode,
			})
			return
		}
		llmReq = llm.Request{
			Model: llm.DefaultModel,
			Messages: []llm.Message{
				llm.SystemMessage(template.System),
				llm.UserMessage(template.User),
			},
			Temperature: 0.7,
		}
	}

	content, err := a.completer.Complete(r.Context(), llmReq)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	result := map[string]any{
		"prompt":   content,
		"status":   "success",
		"metadata": map[string]any{"mode": req.Mode},
	}
	writeJSON(w, http.StatusOK, addCharge(result, decision))
}

func (a *App) generateConvert(w http.ResponseWriter, r *http.Request, req generateRequest, decision credits.Decision) {
	variant := prompts.ConvertVariant(strings.TrimPrefix(req.Mode, "convert_"))

	content, err := a.completer.Complete(r.Context(), llm.Request{
		Model: llm.DefaultModel,
		Messages: []llm.Message{
			llm.SystemMessage(prompts.GenericConvertSystemMessage),
			llm.UserMessage(prompts.ConvertPrompt(variant, req.Topic)),
		},
		Temperature: 0.3,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error(), "status": "error"})
		return
	}

	result := map[string]any{
		"prompt": content,
		"status": "success",
		"metadata": map[string]any{
			"mode":          req.Mode,
			"original_text": req.Topic,
		},
	}
	writeJSON(w, http.StatusOK, addCharge(result, decision))
}

// generateImageVariation treats the topic field as image data, matching the
// extension's transport for inline captioning.
func (a *App) generateImageVariation(w http.ResponseWriter, r *http.Request, req generateRequest, decision credits.Decision) {
	variation := prompts.ImageVariationFor(req.Mode)

	content, err := a.completer.Complete(r.Context(), llm.Request{
		Model: llm.DefaultModel,
		Messages: []llm.Message{
			llm.SystemMessage(variation.System),
			llm.UserImageMessage(prompts.ImageVariationUserText, req.Topic, ""),
		},
		MaxTokens: variation.MaxTokens,
	})
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	result := map[string]any{
		"prompt":   content,
		"status":   "success",
		"metadata": map[string]any{"mode": req.Mode},
	}
	writeJSON(w, http.StatusOK, addCharge(result, decision))
}

func (a *App) generateEnhance(w http.ResponseWriter, r *http.Request, req generateRequest, decision credits.Decision) {
	content, err := a.completer.Complete(r.Context(), llm.Request{
		Model: llm.DefaultModel,
		Messages: []llm.Message{
			llm.SystemMessage(prompts.EnhanceSystemMessage),
			llm.UserMessage(prompts.EnhanceUserMessage(req.Topic, req.Tone, req.Length)),
		},
		Temperature: 0.7,
	})
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	result := map[string]any{
		"prompt": content,
		"status": "success",
		"metadata": map[string]any{
			"topic": req.Topic,
			"tone":  req.Tone,
			"mode":  req.Mode,
		},
	}
	writeJSON(w, http.StatusOK, addCharge(result, decision))
}

func writeGenerateError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"error":   "Failed to generate prompt",
		"details": err.Error(),
	})
}

type imageRequest struct {
	Image string `json:"image"`
}

// handleGenerateImage runs the full image analysis prompt against the
// uploaded image at high detail.
func (a *App) handleGenerateImage(w http.ResponseWriter, r *http.Request) {
	decision := a.gate.Authorize(r, "image_prompt")
	if !decision.Allowed {
		rejectPayment(w, decision)
		return
	}

	var req imageRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request payload"})
		return
	}

	content, err := a.completer.Complete(r.Context(), llm.Request{
		Model: llm.DefaultModel,
		Messages: []llm.Message{
			llm.SystemMessage(prompts.UniversalImageSystemMessage),
			llm.UserImageMessage(prompts.UniversalImagePrompt, req.Image, "high"),
		},
		MaxTokens: 500,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error(), "status": "error"})
		return
	}

	result := map[string]any{"prompt": content, "status": "success"}
	writeJSON(w, http.StatusOK, addCharge(result, decision))
}

func (a *App) handleGenerateCaption(w http.ResponseWriter, r *http.Request) {
	decision := a.gate.Authorize(r, "image_caption")
	if !decision.Allowed {
		rejectPayment(w, decision)
		return
	}

	var req imageRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request payload"})
		return
	}

	content, err := a.completer.Complete(r.Context(), llm.Request{
		Model: llm.DefaultModel,
		Messages: []llm.Message{
			llm.SystemMessage(prompts.SocialCaptionSystemMessage),
			llm.UserImageMessage(prompts.SocialCaptionPrompt, req.Image, "high"),
		},
		MaxTokens: 500,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error(), "status": "error"})
		return
	}

	result := map[string]any{"prompt": content, "status": "success"}
	writeJSON(w, http.StatusOK, addCharge(result, decision))
}

type textRequest struct {
	Text string `json:"text"`
}

func (a *App) handleExplainMeaning(w http.ResponseWriter, r *http.Request) {
	a.explain(w, r, "explain_meaning", prompts.ExplainMeaningSystemMessage, prompts.ExplainMeaningUser)
}

func (a *App) handleExplainStory(w http.ResponseWriter, r *http.Request) {
	a.explain(w, r, "explain_story", prompts.ExplainStorySystemMessage, prompts.ExplainStoryUser)
}

func (a *App) handleExplainELI5(w http.ResponseWriter, r *http.Request) {
	a.explain(w, r, "explain_eli5", prompts.ExplainELI5SystemMessage, prompts.ExplainELI5User)
}

func (a *App) explain(w http.ResponseWriter, r *http.Request, mode, system string, user func(string) string) {
	decision := a.gate.Authorize(r, mode)
	if !decision.Allowed {
		rejectPayment(w, decision)
		return
	}

	var req textRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request payload"})
		return
	}
	text := strings.TrimSpace(req.Text)

	content, err := a.completer.Complete(r.Context(), llm.Request{
		Model: llm.DefaultModel,
		Messages: []llm.Message{
			llm.SystemMessage(system),
			llm.UserMessage(user(text)),
		},
		Temperature: 0.3,
		MaxTokens:   400,
	})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}

	result := map[string]any{"explanation": content}
	writeJSON(w, http.StatusOK, addCharge(result, decision))
}

// convertHandler builds the dedicated conversion route for one variant.
// Unlike the /generate convert path, each variant here uses its own system
// message and temperature.
func (a *App) convertHandler(variant prompts.ConvertVariant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		decision := a.gate.Authorize(r, "convert_"+string(variant))
		if !decision.Allowed {
			rejectPayment(w, decision)
			return
		}

		var req generateRequest
		if err := decodeBody(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request payload"})
			return
		}
		topic := strings.TrimSpace(req.Topic)

		content, err := a.completer.Complete(r.Context(), llm.Request{
			Model: llm.DefaultModel,
			Messages: []llm.Message{
				llm.SystemMessage(prompts.ConvertSystemMessage(variant)),
				llm.UserMessage(prompts.ConvertPrompt(variant, topic)),
			},
			Temperature: prompts.ConvertTemperature(variant),
		})
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error(), "status": "error"})
			return
		}

		result := map[string]any{
			"prompt": content,
			"status": "success",
			"metadata": map[string]any{
				"mode":          string(variant),
				"original_text": topic,
			},
		}
		writeJSON(w, http.StatusOK, addCharge(result, decision))
	}
}
