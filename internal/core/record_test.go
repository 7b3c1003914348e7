package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() TransactionRecord {
	return TransactionRecord{
		ID:          "1700000000000000000-abc",
		Description: "Groceries",
		Amount:      decimal.NewFromInt(250),
		Type:        TypeExpense,
		Account:     AccountCash,
		Date:        time.Date(2024, 5, 12, 14, 30, 0, 0, time.UTC),
	}
}

func TestTransactionRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TransactionRecord)
		wantErr error
	}{
		{"valid", func(r *TransactionRecord) {}, nil},
		{"empty description", func(r *TransactionRecord) { r.Description = "" }, ErrEmptyDescription},
		{"whitespace description", func(r *TransactionRecord) { r.Description = "   \t" }, ErrEmptyDescription},
		{"zero amount", func(r *TransactionRecord) { r.Amount = decimal.Zero }, ErrInvalidAmount},
		{"negative amount", func(r *TransactionRecord) { r.Amount = decimal.NewFromInt(-5) }, ErrInvalidAmount},
		{"bad type", func(r *TransactionRecord) { r.Type = "transfer" }, ErrInvalidType},
		{"bad account", func(r *TransactionRecord) { r.Account = "wallet" }, ErrInvalidAccount},
		{"zero date", func(r *TransactionRecord) { r.Date = time.Time{} }, ErrMissingDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"1250.50", "1250.5", false},
		{"1250,50", "1250.5", false},
		{" 42 ", "42", false},
		{"0.01", "0.01", false},
		{"", "", true},
		{"0", "", true},
		{"-5", "", true},
		{"+5", "", true},
		{"abc", "", true},
		{"12.3.4", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestMergeCalendarDay(t *testing.T) {
	zone := time.FixedZone("NPT", 5*3600+45*60)
	orig := time.Date(2024, 5, 12, 14, 30, 45, 123456789, zone)

	merged := MergeCalendarDay(orig, 2024, time.June, 3)

	assert.Equal(t, 2024, merged.Year())
	assert.Equal(t, time.June, merged.Month())
	assert.Equal(t, 3, merged.Day())

	// Time-of-day and zone offset survive the day change.
	h, m, s := merged.Clock()
	assert.Equal(t, 14, h)
	assert.Equal(t, 30, m)
	assert.Equal(t, 45, s)
	assert.Equal(t, 123456789, merged.Nanosecond())
	_, off := merged.Zone()
	assert.Equal(t, 5*3600+45*60, off)
}
