package worker

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khata/internal/core"
	"khata/internal/ledger"
)

type mapKV struct {
	values map[string]string
}

func (m *mapKV) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mapKV) Set(ctx context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func readExport(t *testing.T, dir string) [][]string {
	t.Helper()

	f, err := os.Open(filepath.Join(dir, exportFileName))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportWritesCSV(t *testing.T) {
	ctx := context.Background()
	kv := &mapKV{values: map[string]string{}}
	store, err := ledger.NewStore(ctx, kv)
	require.NoError(t, err)

	_, err = store.Create(ctx, ledger.CreateInput{
		Description: "Salary",
		Amount:      decimal.NewFromInt(50000),
		Type:        core.TypeIncome,
		Account:     core.AccountBank,
	})
	require.NoError(t, err)
	_, err = store.Create(ctx, ledger.CreateInput{
		Description: "Rent",
		Amount:      decimal.RequireFromString("5000.50"),
		Type:        core.TypeExpense,
		Account:     core.AccountBank,
	})
	require.NoError(t, err)

	dir := t.TempDir()
	exporter := NewExporter(kv, dir)
	require.NoError(t, exporter.Export(ctx))

	rows := readExport(t, dir)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "description", "amount", "type", "account", "date"}, rows[0])
	assert.Equal(t, "Salary", rows[1][1])
	assert.Equal(t, "50000", rows[1][2])
	assert.Equal(t, "5000.5", rows[2][2])
	assert.Equal(t, "expense", rows[2][3])
}

// The exporter runs in its own process. It must see mutations the server
// process wrote to shared storage after the exporter came up, not a copy of
// the state at startup.
func TestExportSeesMutationsFromOtherProcess(t *testing.T) {
	ctx := context.Background()
	kv := &mapKV{values: map[string]string{}}

	dir := t.TempDir()
	exporter := NewExporter(kv, dir)
	require.NoError(t, exporter.Export(ctx))
	require.Len(t, readExport(t, dir), 1, "empty ledger exports only the header")

	serverStore, err := ledger.NewStore(ctx, kv)
	require.NoError(t, err)
	created, err := serverStore.Create(ctx, ledger.CreateInput{
		Description: "Salary",
		Amount:      decimal.NewFromInt(50000),
		Type:        core.TypeIncome,
		Account:     core.AccountBank,
	})
	require.NoError(t, err)

	require.NoError(t, exporter.Export(ctx))
	rows := readExport(t, dir)
	require.Len(t, rows, 2)
	assert.Equal(t, created.ID, rows[1][0])

	require.NoError(t, serverStore.Delete(ctx, created.ID))
	require.NoError(t, exporter.Export(ctx))
	assert.Len(t, readExport(t, dir), 1, "deletion visible on the next export")
}

func TestExportReplacesPreviousFile(t *testing.T) {
	ctx := context.Background()
	kv := &mapKV{values: map[string]string{}}

	dir := t.TempDir()
	exporter := NewExporter(kv, dir)

	require.NoError(t, exporter.Export(ctx))
	require.NoError(t, exporter.Export(ctx))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files cleaned up, single export remains")
}
