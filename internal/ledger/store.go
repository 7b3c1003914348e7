// Package ledger owns the authoritative, insertion-ordered sequence of
// transaction records and keeps it synchronized to durable storage. Every
// mutation rewrites the full snapshot under a single key; aggregations are
// recomputed from the sequence on demand.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"khata/internal/core"
)

// SnapshotKey is the storage key holding the serialized record sequence.
const SnapshotKey = "transactions"

var (
	// ErrNotFound signals an update or delete against an unknown id. The
	// presentation boundary may choose to swallow it; the store always
	// reports it.
	ErrNotFound = errors.New("transaction not found")

	// ErrPersistence wraps durable-storage failures. The in-memory sequence
	// stays consistent even when the snapshot write fails.
	ErrPersistence = errors.New("persistence failure")
)

// KV is the durable storage collaborator.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// CreateInput carries the caller-supplied fields of a new record. The store
// assigns id and date.
type CreateInput struct {
	Description string
	Amount      decimal.Decimal
	Type        core.TransactionType
	Account     core.Account
}

type Option func(*Store)

// WithClock overrides the time source used for record dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides id generation.
func WithIDGenerator(gen func(now time.Time) string) Option {
	return func(s *Store) { s.newID = gen }
}

type Store struct {
	mu      sync.RWMutex
	records []core.TransactionRecord

	kv    KV
	now   func() time.Time
	newID func(now time.Time) string
}

// NewStore loads any existing snapshot from kv. An absent or malformed
// snapshot yields an empty ledger; only a failing storage read is an error.
func NewStore(ctx context.Context, kv KV, opts ...Option) (*Store, error) {
	s := &Store{
		kv:    kv,
		now:   time.Now,
		newID: defaultID,
	}
	for _, opt := range opts {
		opt(s)
	}

	records, err := LoadSnapshot(ctx, kv)
	if err != nil {
		if errors.Is(err, ErrPersistence) {
			return nil, err
		}
		slog.WarnContext(ctx, "Malformed ledger snapshot, starting empty", "error", err)
		records = nil
	}
	s.records = records

	slog.InfoContext(ctx, "Ledger loaded", "records", len(s.records))
	return s, nil
}

// LoadSnapshot reads and decodes the current snapshot directly from kv. It is
// how other processes observe the latest ledger state without holding a
// Store: a Store caches the sequence in memory, a snapshot read does not.
func LoadSnapshot(ctx context.Context, kv KV) ([]core.TransactionRecord, error) {
	value, ok, err := kv.Get(ctx, SnapshotKey)
	if err != nil {
		return nil, fmt.Errorf("%w: load snapshot: %v", ErrPersistence, err)
	}
	if !ok {
		return nil, nil
	}

	var records []core.TransactionRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return records, nil
}

// defaultID produces a high-entropy opaque id: creation instant plus a UUID.
func defaultID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString())
}

// Create validates the input, assigns a fresh id and the current instant as
// date, appends the record and persists the snapshot.
//
// When only the snapshot write fails, the record is still applied in memory
// and returned alongside the wrapped ErrPersistence.
func (s *Store) Create(ctx context.Context, in CreateInput) (core.TransactionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	record := core.TransactionRecord{
		ID:          s.newID(now),
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		Account:     in.Account,
		Date:        now,
	}
	if err := record.Validate(); err != nil {
		return core.TransactionRecord{}, err
	}

	s.records = append(s.records, record)
	if err := s.persist(ctx); err != nil {
		return record, err
	}

	slog.InfoContext(ctx, "Transaction created",
		"id", record.ID,
		"type", record.Type,
		"account", record.Account,
		"amount", record.Amount.String())
	return record, nil
}

// Update replaces the record with the same id, keeping its position in the
// sequence. Returns ErrNotFound when the id is unknown.
func (s *Store) Update(ctx context.Context, record core.TransactionRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(record.ID)
	if idx < 0 {
		return ErrNotFound
	}
	s.records[idx] = record

	if err := s.persist(ctx); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Transaction updated", "id", record.ID)
	return nil
}

// Delete removes the record with the given id. Returns ErrNotFound when the
// id is unknown.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)

	if err := s.persist(ctx); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	return nil
}

// Get returns the record with the given id, if present.
func (s *Store) Get(ctx context.Context, id string) (core.TransactionRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return core.TransactionRecord{}, false
	}
	return s.records[idx], true
}

// List returns a copy of the sequence in insertion order. Callers that need
// date order sort explicitly; that is a presentation concern.
func (s *Store) List(ctx context.Context) []core.TransactionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.TransactionRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Count returns the number of records currently in the ledger.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store) indexOf(id string) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context) error {
	records := s.records
	if records == nil {
		records = []core.TransactionRecord{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %v", ErrPersistence, err)
	}
	if err := s.kv.Set(ctx, SnapshotKey, string(data)); err != nil {
		return fmt.Errorf("%w: write snapshot: %v", ErrPersistence, err)
	}
	return nil
}
