package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"khata/internal/amqp"
	"khata/internal/core"
	"khata/internal/ledger"
)

// LedgerService orchestrates ledger mutations: the store persists first,
// then a change event is published best-effort. A publish failure never
// fails the mutation, the record is already durable locally.
type LedgerService struct {
	store  *ledger.Store
	events *amqp.Client
}

func NewLedgerService(store *ledger.Store, events *amqp.Client) *LedgerService {
	return &LedgerService{
		store:  store,
		events: events,
	}
}

func (s *LedgerService) Create(ctx context.Context, in ledger.CreateInput) (core.TransactionRecord, error) {
	record, err := s.store.Create(ctx, in)
	if err != nil {
		return record, err
	}

	s.publish(ctx, amqp.OpCreate, record.ID)
	return record, nil
}

func (s *LedgerService) Update(ctx context.Context, record core.TransactionRecord) error {
	if err := s.store.Update(ctx, record); err != nil {
		return err
	}

	s.publish(ctx, amqp.OpUpdate, record.ID)
	return nil
}

func (s *LedgerService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, amqp.OpDelete, id)
	return nil
}

func (s *LedgerService) Get(ctx context.Context, id string) (core.TransactionRecord, bool) {
	return s.store.Get(ctx, id)
}

func (s *LedgerService) List(ctx context.Context) []core.TransactionRecord {
	return s.store.List(ctx)
}

// Summary recomputes balances and P&L totals from the current sequence.
func (s *LedgerService) Summary(ctx context.Context) core.Summary {
	return core.Summarize(s.store.List(ctx))
}

func (s *LedgerService) publish(ctx context.Context, op, id string) {
	if s.events == nil {
		return
	}

	msg := amqp.NewLedgerEventMessage(op, id, s.store.Count())
	if err := s.events.PublishLedgerEvent(ctx, msg); err != nil {
		// Mutation already durable; the exporter catches up on its ticker.
		slog.ErrorContext(ctx, "Failed to publish ledger event",
			"op", op, "id", id, "error", err)
	}
}

// IsNotFound reports whether err is the store's unknown-id signal.
func IsNotFound(err error) bool {
	return errors.Is(err, ledger.ErrNotFound)
}

func (s *LedgerService) Close() error {
	if s.events != nil {
		if err := s.events.Close(); err != nil {
			return fmt.Errorf("close event client: %w", err)
		}
	}
	return nil
}
