package credits

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUserNotFound is returned when no record exists for a user id.
	ErrUserNotFound = errors.New("user not found")

	// ErrTxAborted is returned by InTransaction when the callback asked for
	// the staged writes to be discarded.
	ErrTxAborted = errors.New("transaction aborted")
)

// UserRecord is a billable subject's document in the user collection.
// Records are created by the signup flow, which is outside this service;
// the ledger only ever reads them and lowers their balance.
type UserRecord struct {
	ID          string    `bson:"_id" json:"uid"`
	Email       string    `bson:"email" json:"email"`
	Credits     int       `bson:"credits" json:"credits"`
	LastUpdated time.Time `bson:"lastUpdated" json:"last_updated"`
}

// AuditRecord is one append-only entry in the transaction collection,
// written alongside every paid deduction.
type AuditRecord struct {
	ID               string    `bson:"_id" json:"id"`
	UserID           string    `bson:"userId" json:"user_id"`
	Feature          string    `bson:"feature" json:"feature"`
	CreditsUsed      int       `bson:"creditsUsed" json:"credits_used"`
	CreditsRemaining int       `bson:"creditsRemaining" json:"credits_remaining"`
	Timestamp        time.Time `bson:"timestamp" json:"timestamp"`
}

// Tx is the view of a single user's record inside an atomic transaction.
// Writes are staged and commit together when the callback returns nil.
type Tx interface {
	// User re-reads the record inside the transaction. Returns
	// ErrUserNotFound if the record disappeared after resolution.
	User() (*UserRecord, error)

	// SetCredits stages a balance update on the user record.
	SetCredits(balance int) error

	// AppendAudit stages an audit-trail append.
	AppendAudit(rec AuditRecord) error
}

// Store is the document backend holding user balances and the audit trail.
type Store interface {
	// GetUser fetches a user record by id. Pure read.
	GetUser(ctx context.Context, id string) (*UserRecord, error)

	// FindUserByEmail fetches a user record by email address. Pure read.
	FindUserByEmail(ctx context.Context, email string) (*UserRecord, error)

	// InTransaction runs fn against the record for userID with
	// read-modify-write isolation. Two concurrent transactions on the same
	// user serialize; transactions on different users do not contend.
	// If fn returns an error no staged write is applied.
	InTransaction(ctx context.Context, userID string, fn func(tx Tx) error) error
}
