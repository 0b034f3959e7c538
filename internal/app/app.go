// Package app is the HTTP surface. Every feature route runs through the
// credit gate before touching the upstream model; account routes talk to
// the store and the mail sender directly.
package app

import (
	"encoding/json"
	"log"
	"net/http"

	"promptforge/internal/auth"
	"promptforge/internal/credits"
	"promptforge/internal/llm"
	"promptforge/internal/mail"
)

// Options carries everything the HTTP layer needs. A nil Store puts the
// service in degraded mode: feature routes admit free, /auth/login answers
// 503, and credit lookups report an unlimited balance.
type Options struct {
	Store     credits.Store
	Completer llm.Completer
	Sender    mail.Sender
	Policy    credits.Policy

	SessionSecret       string
	VerificationSecret  string
	MailgunDomain       string
	MailgunAPIKey       string
	FrontendBaseURL     string
	VerificationBaseURL string
}

// App represents the application with its router and wired services.
type App struct {
	Router *http.ServeMux

	store     credits.Store
	resolver  *auth.Resolver
	ledger    *credits.Ledger
	gate      *credits.Gate
	codec     *auth.Codec
	sender    mail.Sender
	completer llm.Completer
	opts      Options
}

// NewApp creates and initializes a new instance of the App struct.
func NewApp(opts Options) *App {
	app := &App{
		Router:    http.NewServeMux(),
		store:     opts.Store,
		resolver:  auth.NewResolver(opts.Store),
		codec:     auth.NewCodec(opts.VerificationSecret),
		sender:    opts.Sender,
		completer: opts.Completer,
		opts:      opts,
	}

	if opts.Store != nil {
		app.ledger = credits.NewLedger(opts.Store)
		app.gate = credits.NewGate(app.resolver, app.ledger, opts.Policy)
	} else {
		app.gate = credits.NewGate(nil, nil, opts.Policy)
	}

	app.initializeRoutes()
	return app
}

func (a *App) initializeRoutes() {
	a.Router.HandleFunc("GET /{$}", a.handleHome)
	a.Router.HandleFunc("GET /mailgun-config", a.handleMailgunConfig)

	a.Router.HandleFunc("POST /generate", a.handleGenerate)
	a.Router.HandleFunc("POST /generate-image", a.handleGenerateImage)
	a.Router.HandleFunc("POST /generate-caption", a.handleGenerateCaption)

	a.Router.HandleFunc("POST /explain-meaning", a.handleExplainMeaning)
	a.Router.HandleFunc("POST /explain-story", a.handleExplainStory)
	a.Router.HandleFunc("POST /explain-eli5", a.handleExplainELI5)

	a.Router.HandleFunc("POST /convert-concise", a.convertHandler("concise"))
	a.Router.HandleFunc("POST /convert-balanced", a.convertHandler("balanced"))
	a.Router.HandleFunc("POST /convert-detailed", a.convertHandler("detailed"))

	a.Router.HandleFunc("POST /smart-followups", a.handleSmartFollowups)
	a.Router.HandleFunc("POST /smart-actions", a.handleSmartActions)
	a.Router.HandleFunc("POST /smart-enhancements", a.handleSmartEnhancements)
	a.Router.HandleFunc("POST /generate-persona", a.handleGeneratePersona)

	a.Router.HandleFunc("POST /auth/login", a.handleAuthLogin)
	a.Router.HandleFunc("GET /user-credits", a.handleUserCredits)
	a.Router.HandleFunc("POST /deduct-credits", a.handleDeductCredits)

	a.Router.HandleFunc("POST /send-verification-email", a.handleSendVerificationEmail)
	a.Router.HandleFunc("GET /verify-email", a.handleVerifyEmail)
	a.Router.HandleFunc("POST /resend-verification", a.handleResendVerification)
}

func (a *App) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Promptforge API is running"))
}

func (a *App) handleMailgunConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":             "success",
		"mailgun_domain":     a.opts.MailgunDomain,
		"api_key_present":    a.opts.MailgunAPIKey != "",
		"api_key_length":     len(a.opts.MailgunAPIKey),
		"frontend_url":       a.opts.FrontendBaseURL,
		"verification_url":   a.opts.VerificationBaseURL,
		"environment_loaded": "Environment variables loaded successfully",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// rejectPayment writes the rejection shape for a gated route.
func rejectPayment(w http.ResponseWriter, d credits.Decision) {
	writeJSON(w, d.Status, map[string]any{
		"error":            d.Message,
		"credits_required": d.CreditsRequired,
	})
}

// addCharge attaches the billing fields to a successful feature response.
// Free admissions leave the response untouched.
func addCharge(result map[string]any, d credits.Decision) map[string]any {
	if d.CreditsUsed > 0 {
		result["credits_used"] = d.CreditsUsed
		result["credits_remaining"] = d.CreditsRemaining
	}
	return result
}
