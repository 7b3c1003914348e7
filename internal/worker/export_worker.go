// Package worker exports the ledger to CSV backups. It reacts to ledger
// change events and additionally runs on a ticker so missed events are
// caught up.
package worker

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"khata/internal/amqp"
	"khata/internal/ledger"
)

const exportFileName = "ledger.csv"

type Exporter struct {
	kv  ledger.KV
	dir string
}

func NewExporter(kv ledger.KV, dir string) *Exporter {
	return &Exporter{kv: kv, dir: dir}
}

// Export writes the full record sequence as CSV, replacing the previous
// export atomically. The snapshot is re-read from storage on every export:
// the mutations come from another process, so a cached in-memory copy would
// only ever reflect startup state.
func (w *Exporter) Export(ctx context.Context) error {
	records, err := ledger.LoadSnapshot(ctx, w.kv)
	if err != nil {
		return fmt.Errorf("load ledger snapshot: %w", err)
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write([]string{"id", "description", "amount", "type", "account", "date"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.ID,
			r.Description,
			r.Amount.String(),
			string(r.Type),
			string(r.Account),
			r.Date.Format(time.RFC3339Nano),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(w.dir, exportFileName+".*")
	if err != nil {
		return fmt.Errorf("create temp export: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close export: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(w.dir, exportFileName)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace export: %w", err)
	}

	slog.InfoContext(ctx, "Ledger exported", "records", len(records), "dir", w.dir)
	return nil
}

// Run exports on ledger events and on a fixed interval until ctx is done.
// A nil client degrades to ticker-only operation.
func (w *Exporter) Run(ctx context.Context, client *amqp.Client, interval time.Duration) error {
	g, ctx := errgroup.WithContext(ctx)

	if client != nil {
		g.Go(func() error {
			return client.ConsumeLedgerEvents(ctx, func(msg *amqp.LedgerEventMessage) error {
				return w.Export(ctx)
			})
		})
	}

	g.Go(func() error {
		if err := w.Export(ctx); err != nil {
			slog.ErrorContext(ctx, "Initial export failed", "error", err)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if err := w.Export(ctx); err != nil {
					slog.ErrorContext(ctx, "Periodic export failed", "error", err)
				}
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
