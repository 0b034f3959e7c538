package app

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"promptforge/internal/auth"
	"promptforge/internal/credits"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleAuthLogin exchanges credentials for a signed session token. The
// password itself is checked by the identity provider the extension talks
// to; this endpoint only confirms the account exists and mints the
// ledger-access token.
func (a *App) handleAuthLogin(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "Authentication not available"})
		return
	}

	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request payload"})
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Email and password required"})
		return
	}

	user, err := a.store.FindUserByEmail(r.Context(), req.Email)
	if errors.Is(err, credits.ErrUserNotFound) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "User not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}

	token, err := auth.IssueSessionToken(user.ID, req.Email, a.opts.SessionSecret)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"user": map[string]any{
			"uid":     user.ID,
			"email":   req.Email,
			"credits": user.Credits,
		},
	})
}

// handleUserCredits reports the caller's balance. With the store down every
// caller sees an unlimited balance, matching the feature routes' free
// admission in that state.
func (a *App) handleUserCredits(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		writeJSON(w, http.StatusOK, map[string]any{"credits": 999999})
		return
	}

	bearer := credits.BearerToken(r)
	if bearer == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "No valid authorization token"})
		return
	}

	user, err := a.resolver.Lookup(r.Context(), bearer)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Invalid token"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"credits": user.Credits})
}

type deductRequest struct {
	Feature string `json:"feature"`
}

// handleDeductCredits is the explicit deduction endpoint. Rejections are
// reported in the body with a 200 status; only missing or invalid
// credentials produce an error status.
func (a *App) handleDeductCredits(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "remaining": 999999})
		return
	}

	bearer := credits.BearerToken(r)
	if bearer == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "No valid authorization token"})
		return
	}

	userID, err := a.resolver.Resolve(r.Context(), bearer)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "Invalid token"})
		return
	}

	var req deductRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request payload"})
		return
	}
	if req.Feature == "" {
		req.Feature = "unknown"
	}

	receipt, err := a.ledger.Deduct(r.Context(), userID, req.Feature)
	if errors.Is(err, credits.ErrUserNotFound) {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "User not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": err.Error()})
		return
	}

	if !receipt.Admitted {
		writeJSON(w, http.StatusOK, map[string]any{
			"success":         false,
			"message":         receipt.Message,
			"current_credits": receipt.Current,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"credits_used": receipt.Charged,
		"remaining":    receipt.Remaining,
	})
}

type verificationRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
}

func (a *App) handleSendVerificationEmail(w http.ResponseWriter, r *http.Request) {
	a.sendVerification(w, r, false)
}

func (a *App) handleResendVerification(w http.ResponseWriter, r *http.Request) {
	a.sendVerification(w, r, true)
}

func (a *App) sendVerification(w http.ResponseWriter, r *http.Request, resend bool) {
	var req verificationRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request payload"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	firstName := strings.TrimSpace(req.FirstName)
	if email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Email is required"})
		return
	}

	token, err := a.codec.Issue(email)
	if err == nil {
		verificationURL := fmt.Sprintf("%s/verify-email?email=%s&token=%s",
			a.opts.VerificationBaseURL, url.QueryEscape(email), url.QueryEscape(token))
		err = a.sender.SendVerification(r.Context(), email, firstName, verificationURL)
	}

	if err != nil {
		log.Printf("verification email to %s failed: %v", email, err)
		if resend {
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success":               false,
				"message":               "Failed to resend verification email",
				"use_firebase_fallback": true,
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success":               false,
			"message":               "Failed to send verification email",
			"error":                 err.Error(),
			"use_firebase_fallback": true,
		})
		return
	}

	if resend {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Verification email resent successfully",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"message":       "Verification email sent successfully",
		"provider":      "mailgun",
		"delivered_via": "Mailgun (95%+ inbox rate)",
	})
}

// handleVerifyEmail is the browser-facing landing page for verification
// links. It always answers with a small HTML page, never JSON.
func (a *App) handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	email := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("email")))
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	frontend := a.opts.FrontendBaseURL

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if email == "" || token == "" {
		fmt.Fprint(w, verificationPage("❌ Invalid Verification Link",
			"The verification link is missing required parameters.",
			"Back to Login", frontend+"/login", ""))
		return
	}

	if !a.codec.Check(email, token) {
		log.Printf("invalid or expired verification token for %s", email)
		fmt.Fprint(w, verificationPage("❌ Verification Link Expired",
			"This verification link has expired. Please request a new one.",
			"Back to Login", frontend+"/login", ""))
		return
	}

	if a.store == nil {
		fmt.Fprint(w, verificationPage("❌ Service Unavailable",
			"Email verification service is temporarily unavailable.",
			"Back to Login", frontend+"/login", ""))
		return
	}

	if _, err := a.store.FindUserByEmail(r.Context(), email); err != nil {
		if errors.Is(err, credits.ErrUserNotFound) {
			fmt.Fprint(w, verificationPage("❌ User Not Found",
				"No account found with this email address.",
				"Create Account", frontend+"/signup", ""))
			return
		}
		log.Printf("verification lookup failed for %s: %v", email, err)
		fmt.Fprint(w, verificationPage("❌ Verification Error",
			"There was an issue verifying your account. Please try again or contact support.",
			"Back to Login", frontend+"/login", ""))
		return
	}

	log.Printf("email verified for %s", email)
	fmt.Fprint(w, verificationSuccessPage(frontend))
}

// verificationPage renders the simple result pages. extra is injected after
// the paragraph for pages that carry additional markup.
func verificationPage(heading, message, linkText, linkURL, extra string) string {
	headingColor := "red"
	if strings.HasPrefix(heading, "✅") {
		headingColor = "green"
	}
	return fmt.Sprintf(`
	<html><body style="font-family: Arial; text-align: center; padding: 50px;">
	<h1 style="color: %s;">%s</h1>
	<p>%s</p>%s
	<a href="%s" style="background: #ffff00; padding: 10px 20px; text-decoration: none; color: black; border-radius: 5px;">%s</a>
	</body></html>
	`, headingColor, heading, message, extra, linkURL, linkText)
}

func verificationSuccessPage(frontend string) string {
	loginURL := frontend + "/login"
	return fmt.Sprintf(`
	<html><body style="font-family: Arial; text-align: center; padding: 50px;">
	<h1 style="color: green;">✅ Email Verified Successfully!</h1>
	<p>Great! Your email address has been verified. You can now log in to your Promptforge account.</p>
	<div style="margin: 30px 0;">
		<h3>🎯 What's Next?</h3>
		<ol style="text-align: left; display: inline-block;">
			<li>Log in to your account</li>
			<li>Install the Chrome extension</li>
			<li>Start optimizing your AI prompts</li>
		</ol>
	</div>
	<a href="%s" style="background: #ffff00; padding: 15px 30px; text-decoration: none; color: black; border-radius: 5px; font-weight: bold; margin: 10px;">Login Now</a>
	<p style="margin-top: 30px; color: #666; font-size: 14px;">Redirecting to login in 5 seconds...</p>
	<script>setTimeout(function(){ window.location.href = '%s'; }, 5000);</script>
	</body></html>
	`, loginURL, loginURL)
}
