package ledger_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/sitebook/core/ledger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayrollBalance(t *testing.T) {
	emp := uuid.New()
	colleague := uuid.New()

	labor := []ledger.Labor{
		{EmployeeID: emp, Hours: dec("20"), RateSnapshot: dec("15")},
		{EmployeeID: emp, Hours: dec("10"), RateSnapshot: dec("20")},
		{EmployeeID: colleague, Hours: dec("40"), RateSnapshot: dec("30")},
	}
	entries := []ledger.Entry{
		{Type: ledger.EntryExpense, Category: ledger.PayrollCategory, Amount: dec("200"), Description: ledger.PayoutDescription("Ján Novák", emp, "")},
		{Type: ledger.EntryExpense, Category: ledger.PayrollCategory, Amount: dec("999"), Description: ledger.PayoutDescription("Peter", colleague, "")},
		{Type: ledger.EntryExpense, Category: "Materiál", Amount: dec("50"), Description: ledger.PayrollMarker(emp)},
	}

	p := ledger.PayrollBalance(emp, labor, entries)

	assertDecimal(t, "30", p.Hours)
	assertDecimal(t, "500", p.Earned)
	assertDecimal(t, "200", p.Paid)
	assertDecimal(t, "300", p.Balance)
	assertDecimal(t, "300", p.Suggested)
	assert.True(t, p.Owed())
}

func TestPayrollBalance_Overpaid(t *testing.T) {
	emp := uuid.New()
	p := ledger.PayrollBalance(emp,
		[]ledger.Labor{{EmployeeID: emp, Hours: dec("1"), RateSnapshot: dec("10")}},
		[]ledger.Entry{{Type: ledger.EntryExpense, Category: ledger.PayrollCategory, Amount: dec("25"), EmployeeID: &emp}},
	)

	assertDecimal(t, "-15", p.Balance)
	assertDecimal(t, "0", p.Suggested)
	assert.False(t, p.Owed())
}

func TestIsPayoutFor(t *testing.T) {
	emp := uuid.New()
	marker := ledger.PayrollMarker(emp)

	tests := []struct {
		name  string
		entry ledger.Entry
		want  bool
	}{
		{"marker in description", ledger.Entry{Type: ledger.EntryExpense, Category: ledger.PayrollCategory, Description: "Výplata " + marker}, true},
		{"marker in other case", ledger.Entry{Type: ledger.EntryExpense, Category: ledger.PayrollCategory, Description: strings.ToUpper(marker)}, true},
		{"structured employee id", ledger.Entry{Type: ledger.EntryExpense, Category: ledger.PayrollCategory, EmployeeID: &emp}, true},
		{"wrong category", ledger.Entry{Type: ledger.EntryExpense, Category: "Materiál", Description: marker}, false},
		{"invoice", ledger.Entry{Type: ledger.EntryInvoice, Category: ledger.PayrollCategory, Description: marker}, false},
		{"other employee", ledger.Entry{Type: ledger.EntryExpense, Category: ledger.PayrollCategory, Description: ledger.PayrollMarker(uuid.New())}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.IsPayoutFor(tt.entry, emp))
		})
	}
}

func TestPayoutDescription(t *testing.T) {
	id := uuid.MustParse("7f1a2c1e-9a3b-4b8e-8d2e-1c0f3a5b6d7e")

	assert.Equal(t, "Výplata mzdy: Ján Novák #EMP:7f1a2c1e-9a3b-4b8e-8d2e-1c0f3a5b6d7e. záloha", ledger.PayoutDescription("Ján Novák", id, " záloha "))
	assert.Equal(t, "Výplata mzdy: Ján Novák #EMP:7f1a2c1e-9a3b-4b8e-8d2e-1c0f3a5b6d7e.", ledger.PayoutDescription("Ján Novák", id, ""))
}

func TestBreakdown(t *testing.T) {
	mar := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	apr := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	got := ledger.Breakdown([]ledger.Labor{
		{SiteName: "Hala", Date: apr, Hours: dec("5"), RateSnapshot: dec("10")},
		{SiteName: "Hala", Date: mar, Hours: dec("3"), RateSnapshot: dec("10")},
		{SiteName: "Hala", Date: mar, Hours: dec("2"), RateSnapshot: dec("12")},
		{SiteName: "", Date: mar, Hours: dec("1"), RateSnapshot: dec("10")},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "Hala", got[0].SiteName)
	assertDecimal(t, "10", got[0].Hours)
	assertDecimal(t, "104", got[0].Cost)
	require.Len(t, got[0].Months, 2)
	assert.Equal(t, "2026-03", got[0].Months[0].Month)
	assertDecimal(t, "54", got[0].Months[0].Cost)
	assert.Equal(t, "2026-04", got[0].Months[1].Month)
	assert.Equal(t, ledger.UnknownSite, got[1].SiteName)
}

func TestBook_TogglePaid(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	book := ledger.NewBook([]ledger.Entry{
		{ID: id, Type: ledger.EntryInvoice, Amount: dec("300")},
		{ID: uuid.New(), Type: ledger.EntryInvoice, Amount: dec("200")},
	})

	t.Run("persisted", func(t *testing.T) {
		err := book.TogglePaid(ctx, id, func(ctx context.Context, e ledger.Entry) error {
			assert.True(t, e.Paid)
			total, count := book.Unpaid()
			assertDecimal(t, "200", total)
			assert.Equal(t, 1, count)
			return nil
		})
		require.NoError(t, err)
		assert.True(t, book.Entries()[0].Paid)
	})

	t.Run("reverted on failure", func(t *testing.T) {
		err := book.TogglePaid(ctx, id, func(ctx context.Context, e ledger.Entry) error {
			assert.False(t, e.Paid)
			return errors.New("timeout")
		})
		require.Error(t, err)
		assert.True(t, book.Entries()[0].Paid)

		total, _ := book.Unpaid()
		assertDecimal(t, "200", total)
	})

	t.Run("unknown entry", func(t *testing.T) {
		err := book.TogglePaid(ctx, uuid.New(), func(ctx context.Context, e ledger.Entry) error { return nil })
		assert.Error(t, err)
	})
}
