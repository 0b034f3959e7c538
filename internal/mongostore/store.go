// Package mongostore backs the credit ledger with MongoDB. Subject records
// live in the users collection and the audit trail in transactions; the
// deduct unit runs inside a session transaction, which requires the server
// to be a replica set or sharded cluster.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"promptforge/internal/credits"
)

const (
	usersCollection        = "users"
	transactionsCollection = "transactions"
)

// Store implements credits.Store over a MongoDB database.
type Store struct {
	client       *mongo.Client
	users        *mongo.Collection
	transactions *mongo.Collection
	now          func() time.Time
}

// Connect dials the database and verifies the connection with a ping.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	db := client.Database(database)
	return &Store{
		client:       client,
		users:        db.Collection(usersCollection),
		transactions: db.Collection(transactionsCollection),
		now:          time.Now,
	}, nil
}

// Close tears down the client connection.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// GetUser loads a subject record by id.
func (s *Store) GetUser(ctx context.Context, id string) (*credits.UserRecord, error) {
	var rec credits.UserRecord
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, credits.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading user %s: %w", id, err)
	}
	return &rec, nil
}

// FindUserByEmail loads a subject record by email address.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*credits.UserRecord, error) {
	var rec credits.UserRecord
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, credits.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("looking up user by email: %w", err)
	}
	return &rec, nil
}

// InTransaction runs fn inside a session transaction scoped to one subject.
// An error from fn aborts the transaction and is returned unchanged, so
// callers can match their own sentinels with errors.Is.
func (s *Store) InTransaction(ctx context.Context, userID string, fn func(tx credits.Tx) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(txCtx context.Context) (interface{}, error) {
		return nil, fn(&mongoTx{ctx: txCtx, store: s, userID: userID})
	})
	return err
}

// mongoTx is the per-transaction view handed to the ledger callback. All
// operations run on the session context so they commit or abort together.
type mongoTx struct {
	ctx    context.Context
	store  *Store
	userID string
}

func (t *mongoTx) User() (*credits.UserRecord, error) {
	return t.store.GetUser(t.ctx, t.userID)
}

func (t *mongoTx) SetCredits(balance int) error {
	res, err := t.store.users.UpdateOne(t.ctx,
		bson.M{"_id": t.userID},
		bson.M{"$set": bson.M{
			"credits":     balance,
			"lastUpdated": t.store.now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("updating balance: %w", err)
	}
	if res.MatchedCount == 0 {
		return credits.ErrUserNotFound
	}
	return nil
}

func (t *mongoTx) AppendAudit(rec credits.AuditRecord) error {
	if _, err := t.store.transactions.InsertOne(t.ctx, rec); err != nil {
		return fmt.Errorf("appending audit record: %w", err)
	}
	return nil
}
