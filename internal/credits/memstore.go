package credits

import (
	"context"
	"sync"
	"time"
)

// MemStore is an in-memory Store used by tests and by local runs without a
// database. Per-user locking gives the same isolation the document store
// provides: transactions on one user serialize, different users run freely.
type MemStore struct {
	mu    sync.RWMutex
	users map[string]*UserRecord
	locks map[string]*sync.Mutex
	audit []AuditRecord
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		users: make(map[string]*UserRecord),
		locks: make(map[string]*sync.Mutex),
	}
}

// PutUser inserts or replaces a user record.
func (s *MemStore) PutUser(rec UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := rec
	s.users[rec.ID] = &copied
	if _, ok := s.locks[rec.ID]; !ok {
		s.locks[rec.ID] = &sync.Mutex{}
	}
}

// GetUser implements Store.
func (s *MemStore) GetUser(ctx context.Context, id string) (*UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *rec
	return &copied, nil
}

// FindUserByEmail implements Store.
func (s *MemStore) FindUserByEmail(ctx context.Context, email string) (*UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.users {
		if rec.Email == email {
			copied := *rec
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

// Audit returns a copy of the audit trail, oldest first.
func (s *MemStore) Audit() []AuditRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]AuditRecord, len(s.audit))
	copy(out, s.audit)
	return out
}

// InTransaction implements Store.
func (s *MemStore) InTransaction(ctx context.Context, userID string, fn func(tx Tx) error) error {
	s.mu.Lock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()

	tx := &memTx{store: s, userID: userID}
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

type memTx struct {
	store  *MemStore
	userID string

	setCredits *int
	appended   []AuditRecord
}

func (t *memTx) User() (*UserRecord, error) {
	return t.store.GetUser(context.Background(), t.userID)
}

func (t *memTx) SetCredits(balance int) error {
	t.setCredits = &balance
	return nil
}

func (t *memTx) AppendAudit(rec AuditRecord) error {
	t.appended = append(t.appended, rec)
	return nil
}

func (t *memTx) commit() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.setCredits != nil {
		if rec, ok := t.store.users[t.userID]; ok {
			rec.Credits = *t.setCredits
			rec.LastUpdated = time.Now()
		}
	}
	t.store.audit = append(t.store.audit, t.appended...)
}
