package credits

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Receipt reports the outcome of a deduction attempt.
type Receipt struct {
	// Admitted is true when the caller may proceed with the feature call.
	Admitted bool
	// Charged is the number of credits actually deducted (0 for free modes).
	Charged int
	// Remaining is the balance after the deduction. Only meaningful when
	// Charged > 0.
	Remaining int
	// Required and Current describe a rejected attempt so the client can
	// prompt for a top-up.
	Required int
	Current  int
	// Message is the human-readable reason on rejection.
	Message string
}

// Ledger applies credit deductions against the store with an audit trail.
type Ledger struct {
	store Store
	now   func() time.Time
}

// NewLedger creates a ledger over the given store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store, now: time.Now}
}

// Deduct charges the cost of mode against the user's balance.
//
// Free modes bypass the store entirely: no transaction is opened and no audit
// record is written. Paid modes run a single atomic transaction that re-reads
// the balance, rejects if it is short, and otherwise persists the new balance
// together with exactly one audit record. The balance write and the audit
// append commit together or not at all.
//
// Returns ErrUserNotFound if the record vanished between identity resolution
// and the deduction; that race is a hard failure, not an admission.
func (l *Ledger) Deduct(ctx context.Context, userID, mode string) (Receipt, error) {
	cost := Cost(mode)
	if cost == 0 {
		return Receipt{Admitted: true, Charged: 0}, nil
	}

	var receipt Receipt
	err := l.store.InTransaction(ctx, userID, func(tx Tx) error {
		user, err := tx.User()
		if err != nil {
			return err
		}

		if user.Credits < cost {
			receipt = Receipt{
				Admitted: false,
				Required: cost,
				Current:  user.Credits,
				Message:  fmt.Sprintf("Insufficient credits. Need %d, have %d", cost, user.Credits),
			}
			// Abort so nothing staged before the check could ever apply.
			return ErrTxAborted
		}

		remaining := user.Credits - cost
		if err := tx.SetCredits(remaining); err != nil {
			return err
		}
		if err := tx.AppendAudit(AuditRecord{
			ID:               uuid.NewString(),
			UserID:           userID,
			Feature:          mode,
			CreditsUsed:      cost,
			CreditsRemaining: remaining,
			Timestamp:        l.now(),
		}); err != nil {
			return err
		}

		receipt = Receipt{Admitted: true, Charged: cost, Remaining: remaining}
		return nil
	})

	if err != nil && !errors.Is(err, ErrTxAborted) {
		return Receipt{}, err
	}
	return receipt, nil
}
