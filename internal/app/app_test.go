package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"promptforge/internal/auth"
	"promptforge/internal/credits"
	"promptforge/internal/llm"
)

// stubCompleter answers every completion with a canned string, or fails
// when err is set.
type stubCompleter struct {
	content string
	model   string
	err     error
	calls   int
}

func (s *stubCompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

func (s *stubCompleter) CompleteWithFallback(ctx context.Context, candidates []llm.ModelParams, messages []llm.Message) (string, string, error) {
	s.calls++
	if s.err != nil {
		return "", "", s.err
	}
	model := s.model
	if model == "" && len(candidates) > 0 {
		model = candidates[0].Name
	}
	return s.content, model, nil
}

// recordingSender captures verification sends instead of delivering them.
type recordingSender struct {
	email string
	url   string
	err   error
}

func (s *recordingSender) SendVerification(ctx context.Context, email, firstName, verificationURL string) error {
	s.email = email
	s.url = verificationURL
	return s.err
}

func newTestApp(store credits.Store, completer llm.Completer) *App {
	return NewApp(Options{
		Store:              store,
		Completer:          completer,
		Sender:             &recordingSender{},
		SessionSecret:      "session-secret",
		VerificationSecret: "verification-secret",
		FrontendBaseURL:    "https://app.example.com",
	})
}

func postJSON(t *testing.T, app *App, path, token string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func decodeJSONBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func sessionToken(t *testing.T, userID, email string) string {
	t.Helper()
	token, err := auth.IssueSessionToken(userID, email, "session-secret")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestNewApp(t *testing.T) {
	app := newTestApp(credits.NewMemStore(), &stubCompleter{content: "ok"})
	if app.Router == nil {
		t.Error("Router not initialized")
	}
	if app.gate == nil {
		t.Error("gate not initialized")
	}
}

func TestPersonaCreditScenario(t *testing.T) {
	// A 20-credit balance funds exactly two 10-credit persona calls; the
	// third must be rejected with the price attached.
	store := credits.NewMemStore()
	store.PutUser(credits.UserRecord{ID: "u1", Email: "u1@example.com", Credits: 20})

	completer := &stubCompleter{content: "not json, forces the static persona"}
	app := newTestApp(store, completer)
	token := sessionToken(t, "u1", "u1@example.com")

	for i, wantRemaining := range []int{10, 0} {
		w := postJSON(t, app, "/generate-persona", token, map[string]any{"text": "data analyst"})
		if w.Code != http.StatusOK {
			t.Fatalf("call %d: status = %d, body %s", i+1, w.Code, w.Body.String())
		}
		body := decodeJSONBody(t, w)
		if body["credits_used"] != float64(10) {
			t.Errorf("call %d: credits_used = %v, want 10", i+1, body["credits_used"])
		}
		if body["credits_remaining"] != float64(wantRemaining) {
			t.Errorf("call %d: credits_remaining = %v, want %d", i+1, body["credits_remaining"], wantRemaining)
		}
		if _, ok := body["prompt"].(string); !ok {
			t.Errorf("call %d: missing persona prompt", i+1)
		}
	}

	w := postJSON(t, app, "/generate-persona", token, map[string]any{"text": "data analyst"})
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("third call: status = %d, want 402", w.Code)
	}
	body := decodeJSONBody(t, w)
	if body["credits_required"] != float64(10) {
		t.Errorf("credits_required = %v, want 10", body["credits_required"])
	}
	if !strings.Contains(body["error"].(string), "Insufficient credits. Need 10, have 0") {
		t.Errorf("error = %q", body["error"])
	}

	rec, err := store.GetUser(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Credits != 0 {
		t.Errorf("final balance = %d, want 0", rec.Credits)
	}
	if audits := store.Audit(); len(audits) != 2 {
		t.Errorf("audit records = %d, want 2", len(audits))
	}
}

func TestGenerateWithoutToken(t *testing.T) {
	app := newTestApp(credits.NewMemStore(), &stubCompleter{content: "rewritten"})

	w := postJSON(t, app, "/generate", "", map[string]any{"topic": "hello", "mode": "reframe_casual"})
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("status = %d, want 402", w.Code)
	}
	body := decodeJSONBody(t, w)
	if body["credits_required"] != float64(6) {
		t.Errorf("credits_required = %v, want 6", body["credits_required"])
	}
}

func TestGenerateInvalidTokenFailsOpen(t *testing.T) {
	// Tokens this service cannot resolve admit the request unbilled.
	app := newTestApp(credits.NewMemStore(), &stubCompleter{content: "rewritten"})

	w := postJSON(t, app, "/generate", "not-a-jwt", map[string]any{"topic": "hello", "mode": "reframe_casual"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeJSONBody(t, w)
	if body["prompt"] != "rewritten" {
		t.Errorf("prompt = %v", body["prompt"])
	}
	if _, ok := body["credits_used"]; ok {
		t.Error("fail-open admission must not carry billing fields")
	}
}

func TestGenerateReframeDispatch(t *testing.T) {
	store := credits.NewMemStore()
	store.PutUser(credits.UserRecord{ID: "u1", Email: "u1@example.com", Credits: 100})
	app := newTestApp(store, &stubCompleter{content: "casual version"})
	token := sessionToken(t, "u1", "u1@example.com")

	w := postJSON(t, app, "/generate", token, map[string]any{"topic": "fix the bug", "mode": "reframe_eli5"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	body := decodeJSONBody(t, w)
	meta := body["metadata"].(map[string]any)
	if meta["mode"] != "reframe_eli5" || meta["tone"] != "eli5" {
		t.Errorf("metadata = %v", meta)
	}
	if body["credits_used"] != float64(6) {
		t.Errorf("credits_used = %v, want 6", body["credits_used"])
	}
}

func TestGenerateCotSkipsModel(t *testing.T) {
	completer := &stubCompleter{content: "should not be used"}
	app := newTestApp(credits.NewMemStore(), completer)

	w := postJSON(t, app, "/generate", "not-a-jwt", map[string]any{"topic": "design a logo", "mode": "cot"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeJSONBody(t, w)
	if !strings.Contains(body["prompt"].(string), "LAYER 1: CORE DECONSTRUCTION") {
		t.Error("cot template missing from prompt")
	}
	if completer.calls != 0 {
		t.Errorf("completer called %d times for a pure template mode", completer.calls)
	}
}

func TestGenerateRequiresTopic(t *testing.T) {
	app := newTestApp(credits.NewMemStore(), &stubCompleter{content: "x"})
	w := postJSON(t, app, "/generate", "", map[string]any{"topic": "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeJSONBody(t, w)
	if body["error"] != "Topic is required" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestSmartFollowupsValidJSON(t *testing.T) {
	answer := `{"questions": [
		{"text": "What would you try first in practice", "type": "practical"},
		{"text": "short", "type": "curious"},
		{"text": "How will you measure whether the rollout worked?", "type": "action"}
	], "analysis": "Next steps for the rollout"}`

	app := newTestApp(credits.NewMemStore(), &stubCompleter{content: answer, model: "chatgpt-4o-latest"})

	w := postJSON(t, app, "/smart-followups", "", map[string]any{"conversation": "we discussed a rollout"})
	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("unauthenticated call: status = %d, want 402", w.Code)
	}

	w = postJSON(t, app, "/smart-followups", "not-a-jwt", map[string]any{"conversation": "we discussed a rollout"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	body := decodeJSONBody(t, w)

	questions := body["questions"].([]any)
	if len(questions) != 2 {
		t.Fatalf("questions = %d, want 2 (short one dropped)", len(questions))
	}
	first := questions[0].(map[string]any)
	if first["text"] != "What would you try first in practice?" {
		t.Errorf("missing appended question mark: %v", first["text"])
	}
	if body["analysis"] != "Next steps for the rollout" {
		t.Errorf("analysis = %v", body["analysis"])
	}
	if _, ok := body["fallback"]; ok {
		t.Error("valid JSON should not be marked as fallback")
	}
	if body["model"] != "chatgpt-4o-latest" {
		t.Errorf("model = %v", body["model"])
	}
}

func TestSmartFollowupsFallback(t *testing.T) {
	app := newTestApp(credits.NewMemStore(), &stubCompleter{content: "no json here at all"})

	w := postJSON(t, app, "/smart-followups", "not-a-jwt", map[string]any{"conversation": "topic"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeJSONBody(t, w)
	if body["fallback"] != true {
		t.Error("fallback flag missing")
	}
	if questions := body["questions"].([]any); len(questions) != 3 {
		t.Errorf("default questions = %d, want 3", len(questions))
	}
}

func TestSmartFollowupsAllModelsFail(t *testing.T) {
	app := newTestApp(credits.NewMemStore(), &stubCompleter{err: llm.ErrAllModelsFailed})

	w := postJSON(t, app, "/smart-followups", "not-a-jwt", map[string]any{"conversation": "topic"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	body := decodeJSONBody(t, w)
	if body["success"] != false {
		t.Error("success should be false")
	}
}

func TestSmartActionsValidJSON(t *testing.T) {
	answer := `{"action_prompts": [
		{"prompt": "Help me build a step-by-step migration plan for the cache layer", "focus": "planning", "context": "migration"}
	], "analysis": "Concrete next actions"}`

	app := newTestApp(credits.NewMemStore(), &stubCompleter{content: answer})

	w := postJSON(t, app, "/smart-actions", "not-a-jwt", map[string]any{"conversation": "cache migration talk"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeJSONBody(t, w)
	prompts := body["action_prompts"].([]any)
	if len(prompts) != 1 {
		t.Fatalf("action_prompts = %d", len(prompts))
	}
	if body["analysis"] != "Concrete next actions" {
		t.Errorf("analysis = %v", body["analysis"])
	}
}

func TestSmartEnhancementsTwoStageFallback(t *testing.T) {
	t.Run("json with no usable prompts", func(t *testing.T) {
		answer := `{"enhancement_prompts": [{"prompt": "too short"}], "content_analysis": {}}
Enhance this draft by tightening the opening paragraph and adding a concrete example.`
		app := newTestApp(credits.NewMemStore(), &stubCompleter{content: answer})

		w := postJSON(t, app, "/smart-enhancements", "not-a-jwt", map[string]any{"text": "my draft text"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		body := decodeJSONBody(t, w)
		if body["fallback"] != true {
			t.Error("fallback flag missing")
		}
		prompts := body["enhancement_prompts"].([]any)
		found := false
		for _, raw := range prompts {
			p := raw.(map[string]any)
			if strings.Contains(p["prompt"].(string), "tightening the opening paragraph") {
				found = true
			}
		}
		if !found {
			t.Errorf("line extraction should recover the instruction, got %v", prompts)
		}
	})

	t.Run("no json at all", func(t *testing.T) {
		app := newTestApp(credits.NewMemStore(), &stubCompleter{content: "plain prose"})

		w := postJSON(t, app, "/smart-enhancements", "not-a-jwt", map[string]any{"text": "def main(): pass"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		body := decodeJSONBody(t, w)
		if body["fallback"] != true {
			t.Error("fallback flag missing")
		}
		if prompts := body["enhancement_prompts"].([]any); len(prompts) != 4 {
			t.Errorf("content-aware suggestions = %d, want 4", len(prompts))
		}
	})
}

func TestSmartEnhancementsValidJSON(t *testing.T) {
	answer := `{"content_analysis": {"type": "email", "purpose": "outreach"},
		"enhancement_prompts": [
			{"prompt": "Enhance this email by sharpening the call to action", "focus_area": "engagement", "expected_impact": "More replies", "priority": "high"}
		]}`
	app := newTestApp(credits.NewMemStore(), &stubCompleter{content: answer, model: "chatgpt-4o-latest"})

	w := postJSON(t, app, "/smart-enhancements", "not-a-jwt", map[string]any{"text": "hi, buy my product"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeJSONBody(t, w)
	if body["model_used"] != "chatgpt-4o-latest" {
		t.Errorf("model_used = %v", body["model_used"])
	}
	if body["original_length"] != float64(len("hi, buy my product")) {
		t.Errorf("original_length = %v", body["original_length"])
	}
	analysis := body["content_analysis"].(map[string]any)
	if analysis["type"] != "email" {
		t.Errorf("content_analysis = %v", analysis)
	}
}

func TestAuthLogin(t *testing.T) {
	store := credits.NewMemStore()
	store.PutUser(credits.UserRecord{ID: "u1", Email: "u1@example.com", Credits: 20})
	app := newTestApp(store, &stubCompleter{})

	t.Run("success", func(t *testing.T) {
		w := postJSON(t, app, "/auth/login", "", map[string]any{"email": "u1@example.com", "password": "pw"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		body := decodeJSONBody(t, w)
		if body["success"] != true {
			t.Error("success not true")
		}
		user := body["user"].(map[string]any)
		if user["uid"] != "u1" || user["credits"] != float64(20) {
			t.Errorf("user = %v", user)
		}

		// The issued token must work against the gated routes.
		token := body["token"].(string)
		if uid, err := auth.SubjectFromToken(token); err != nil || uid != "u1" {
			t.Errorf("SubjectFromToken = %q, %v", uid, err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		w := postJSON(t, app, "/auth/login", "", map[string]any{"email": "nobody@example.com", "password": "pw"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		w := postJSON(t, app, "/auth/login", "", map[string]any{"email": "u1@example.com"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestUserCredits(t *testing.T) {
	store := credits.NewMemStore()
	store.PutUser(credits.UserRecord{ID: "u1", Email: "u1@example.com", Credits: 42})
	app := newTestApp(store, &stubCompleter{})

	t.Run("with token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/user-credits", nil)
		req.Header.Set("Authorization", "Bearer "+sessionToken(t, "u1", "u1@example.com"))
		w := httptest.NewRecorder()
		app.Router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if body := decodeJSONBody(t, w); body["credits"] != float64(42) {
			t.Errorf("credits = %v", body["credits"])
		}
	})

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/user-credits", nil)
		w := httptest.NewRecorder()
		app.Router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/user-credits", nil)
		req.Header.Set("Authorization", "Bearer junk")
		w := httptest.NewRecorder()
		app.Router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestDeductCredits(t *testing.T) {
	store := credits.NewMemStore()
	store.PutUser(credits.UserRecord{ID: "u1", Email: "u1@example.com", Credits: 10})
	app := newTestApp(store, &stubCompleter{})
	token := sessionToken(t, "u1", "u1@example.com")

	t.Run("charged", func(t *testing.T) {
		w := postJSON(t, app, "/deduct-credits", token, map[string]any{"feature": "explain_meaning"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		body := decodeJSONBody(t, w)
		if body["success"] != true || body["credits_used"] != float64(5) || body["remaining"] != float64(5) {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("insufficient reported in body", func(t *testing.T) {
		w := postJSON(t, app, "/deduct-credits", token, map[string]any{"feature": "smart_followups"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		body := decodeJSONBody(t, w)
		if body["success"] != false {
			t.Error("success should be false")
		}
		if body["current_credits"] != float64(5) {
			t.Errorf("current_credits = %v", body["current_credits"])
		}
	})

	t.Run("unknown feature uses default price", func(t *testing.T) {
		w := postJSON(t, app, "/deduct-credits", token, map[string]any{})
		body := decodeJSONBody(t, w)
		// 5 remaining, default price 6.
		if body["success"] != false {
			t.Errorf("body = %v", body)
		}
	})
}

func TestDegradedModeResponses(t *testing.T) {
	app := newTestApp(nil, &stubCompleter{content: "rewritten"})

	t.Run("login unavailable", func(t *testing.T) {
		w := postJSON(t, app, "/auth/login", "", map[string]any{"email": "a@b.c", "password": "pw"})
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", w.Code)
		}
	})

	t.Run("credits unlimited", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/user-credits", nil)
		w := httptest.NewRecorder()
		app.Router.ServeHTTP(w, req)
		if body := decodeJSONBody(t, w); body["credits"] != float64(999999) {
			t.Errorf("credits = %v", body["credits"])
		}
	})

	t.Run("deduct succeeds free", func(t *testing.T) {
		w := postJSON(t, app, "/deduct-credits", "", map[string]any{"feature": "persona_generator"})
		body := decodeJSONBody(t, w)
		if body["success"] != true || body["remaining"] != float64(999999) {
			t.Errorf("body = %v", body)
		}
	})

	t.Run("features admit free", func(t *testing.T) {
		w := postJSON(t, app, "/generate", "", map[string]any{"topic": "hello"})
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
		body := decodeJSONBody(t, w)
		if _, ok := body["credits_used"]; ok {
			t.Error("degraded admission must not bill")
		}
	})
}

func TestVerificationFlow(t *testing.T) {
	store := credits.NewMemStore()
	store.PutUser(credits.UserRecord{ID: "u1", Email: "ada@example.com", Credits: 5})
	sender := &recordingSender{}
	app := NewApp(Options{
		Store:               store,
		Completer:           &stubCompleter{},
		Sender:              sender,
		SessionSecret:       "session-secret",
		VerificationSecret:  "verification-secret",
		FrontendBaseURL:     "https://app.example.com",
		VerificationBaseURL: "https://api.example.com",
	})

	w := postJSON(t, app, "/send-verification-email", "", map[string]any{"email": "Ada@Example.com", "firstName": "Ada"})
	if w.Code != http.StatusOK {
		t.Fatalf("send status = %d, body %s", w.Code, w.Body.String())
	}
	body := decodeJSONBody(t, w)
	if body["provider"] != "mailgun" {
		t.Errorf("provider = %v", body["provider"])
	}
	if sender.email != "ada@example.com" {
		t.Errorf("recipient = %q, want lowercased address", sender.email)
	}
	if !strings.HasPrefix(sender.url, "https://api.example.com/verify-email?") {
		t.Errorf("verification URL = %q", sender.url)
	}

	// Following the emailed link must land on the success page.
	req := httptest.NewRequest("GET", strings.TrimPrefix(sender.url, "https://api.example.com"), nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	if !strings.Contains(rec.Body.String(), "Email Verified Successfully") {
		t.Errorf("expected success page, got: %s", rec.Body.String())
	}

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/verify-email?email=ada@example.com&token=bogus", nil)
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)
		if !strings.Contains(rec.Body.String(), "Verification Link Expired") {
			t.Error("expected expired page")
		}
	})

	t.Run("missing params", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/verify-email", nil)
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)
		if !strings.Contains(rec.Body.String(), "Invalid Verification Link") {
			t.Error("expected invalid-link page")
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		w := postJSON(t, app, "/send-verification-email", "", map[string]any{"email": "ghost@example.com"})
		if w.Code != http.StatusOK {
			t.Fatalf("send status = %d", w.Code)
		}
		req := httptest.NewRequest("GET", strings.TrimPrefix(sender.url, "https://api.example.com"), nil)
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)
		if !strings.Contains(rec.Body.String(), "User Not Found") {
			t.Error("expected user-not-found page")
		}
	})

	t.Run("send failure", func(t *testing.T) {
		sender.err = errors.New("mailgun down")
		defer func() { sender.err = nil }()

		w := postJSON(t, app, "/resend-verification", "", map[string]any{"email": "ada@example.com"})
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		body := decodeJSONBody(t, w)
		if body["use_firebase_fallback"] != true {
			t.Errorf("body = %v", body)
		}
	})
}

func TestHomeAndConfig(t *testing.T) {
	app := NewApp(Options{
		Completer:       &stubCompleter{},
		Sender:          &recordingSender{},
		MailgunDomain:   "mg.example.com",
		MailgunAPIKey:   "key-123456",
		FrontendBaseURL: "https://app.example.com",
	})

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	if w.Body.String() != "Promptforge API is running" {
		t.Errorf("home body = %q", w.Body.String())
	}

	req = httptest.NewRequest("GET", "/mailgun-config", nil)
	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	body := decodeJSONBody(t, w)
	if body["api_key_present"] != true || body["api_key_length"] != float64(len("key-123456")) {
		t.Errorf("config body = %v", body)
	}
	if body["mailgun_domain"] != "mg.example.com" {
		t.Errorf("mailgun_domain = %v", body["mailgun_domain"])
	}
}
