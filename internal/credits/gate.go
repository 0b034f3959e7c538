package credits

import (
	"context"
	"log"
	"net/http"
	"strings"
)

// Policy decides what the gate does when a dependency misbehaves.
type Policy int

const (
	// FailOpen admits the request with zero charge on any internal fault.
	// This matches the reference deployment: no user is ever blocked by a
	// backend outage or a bad token, only by an explicit credit shortfall.
	FailOpen Policy = iota
	// FailClosed rejects the request when identity or the ledger cannot be
	// consulted.
	FailClosed
)

// SubjectResolver turns a bearer credential into a subject id.
// Implemented by auth.Resolver.
type SubjectResolver interface {
	Resolve(ctx context.Context, bearer string) (string, error)
}

// Decision is the gate's verdict for one feature call.
type Decision struct {
	Allowed bool
	// Status and Message are set on rejection.
	Status  int
	Message string
	// CreditsRequired accompanies every rejection so the client can prompt
	// for a top-up.
	CreditsRequired int
	// CreditsUsed and CreditsRemaining are set when an admission charged
	// the ledger. Both stay zero for free admissions.
	CreditsUsed      int
	CreditsRemaining int
}

// Gate is the single authorization point combining identity, pricing, and
// the ledger. It gates exactly one action: spend Cost(mode) credits.
type Gate struct {
	resolver SubjectResolver
	ledger   *Ledger
	policy   Policy
	disabled bool
}

// NewGate builds a gate. A nil resolver or ledger marks the credit backend
// as unavailable process-wide; every call is then admitted without charge.
func NewGate(resolver SubjectResolver, ledger *Ledger, policy Policy) *Gate {
	return &Gate{
		resolver: resolver,
		ledger:   ledger,
		policy:   policy,
		disabled: resolver == nil || ledger == nil,
	}
}

// Disabled reports whether the gate is running degraded-open.
func (g *Gate) Disabled() bool {
	return g.disabled
}

// BearerToken extracts the bearer credential from an Authorization header.
// Returns "" when no bearer material is present.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// Authorize decides whether the request may run the given feature mode.
//
// The policy chain, in order:
//  1. backend disabled process-wide: admit, zero charge
//  2. no bearer credential: reject 402 with the mode's price
//  3. credential present but invalid: admit with zero charge under FailOpen
//     (legacy clients hold tokens this service never issued), reject 401
//     under FailClosed
//  4. credential resolves: the ledger's verdict passes through verbatim,
//     including the 402 insufficient-credits shape
//  5. anything else failing: the configured policy again
func (g *Gate) Authorize(r *http.Request, mode string) Decision {
	if g.disabled {
		return Decision{Allowed: true}
	}

	bearer := BearerToken(r)
	if bearer == "" {
		return Decision{
			Allowed:         false,
			Status:          http.StatusPaymentRequired,
			Message:         "Authentication required",
			CreditsRequired: Cost(mode),
		}
	}

	userID, err := g.resolver.Resolve(r.Context(), bearer)
	if err != nil {
		log.Printf("credit gate: token resolution failed: %v", err)
		return g.failDecision(mode, "Invalid token")
	}

	receipt, err := g.ledger.Deduct(r.Context(), userID, mode)
	if err != nil {
		log.Printf("credit gate: deduction failed for %s: %v", userID, err)
		return g.failDecision(mode, "Credit check failed")
	}

	if !receipt.Admitted {
		return Decision{
			Allowed:         false,
			Status:          http.StatusPaymentRequired,
			Message:         receipt.Message,
			CreditsRequired: receipt.Required,
		}
	}

	return Decision{
		Allowed:          true,
		CreditsUsed:      receipt.Charged,
		CreditsRemaining: receipt.Remaining,
	}
}

func (g *Gate) failDecision(mode, reason string) Decision {
	if g.policy == FailClosed {
		return Decision{
			Allowed:         false,
			Status:          http.StatusUnauthorized,
			Message:         reason,
			CreditsRequired: Cost(mode),
		}
	}
	// Fail-open: the request proceeds unbilled.
	return Decision{Allowed: true}
}
