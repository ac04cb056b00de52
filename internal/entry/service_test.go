package entry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bikash4JP/tally-for-mobile/internal/journal"
	"github.com/Bikash4JP/tally-for-mobile/internal/ledger"
	"github.com/Bikash4JP/tally-for-mobile/internal/shared"
)

var entryNow = time.Date(2026, time.August, 20, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *ledger.Registry, *journal.Journal) {
	t.Helper()
	registry, err := ledger.NewRegistry(ledger.Seed())
	require.NoError(t, err)
	jnl := journal.NewJournal(nil)
	svc := NewService(registry, jnl)
	svc.WithNow(func() time.Time { return entryNow })
	return svc, registry, jnl
}

func TestSaveSimpleByID(t *testing.T) {
	svc, _, jnl := newTestService(t)

	tx, err := svc.SaveSimple(SimpleInput{
		Date:        "2026-08-01",
		Debit:       LedgerRef{ID: "L10"},
		Credit:      LedgerRef{ID: "L20"},
		Amount:      "1,500.50",
		Narration:   "Cash sales",
		VoucherType: journal.VoucherSales,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), tx.ID)
	assert.Equal(t, journal.VoucherSales, tx.VoucherType)
	assert.Equal(t, 1500.50, tx.Amount)
	assert.Equal(t, "L10", tx.DebitLedgerID)
	assert.Equal(t, "L20", tx.CreditLedgerID)
	assert.Equal(t, 1, jnl.Len())
}

func TestSaveSimpleDefaultsDateToToday(t *testing.T) {
	svc, _, _ := newTestService(t)

	tx, err := svc.SaveSimple(SimpleInput{
		Debit:  LedgerRef{ID: "L10"},
		Credit: LedgerRef{ID: "L20"},
		Amount: "100",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-20", tx.Date)
	assert.Equal(t, journal.VoucherJournal, tx.VoucherType)
}

func TestSaveSimpleCreatesPartyLedgerOnDemand(t *testing.T) {
	svc, registry, _ := newTestService(t)

	tx, err := svc.SaveSimple(SimpleInput{
		Date:   "2026-08-01",
		Debit:  LedgerRef{Name: "Ram & Sons A/C", CreateIfMissing: true},
		Credit: LedgerRef{ID: "L20"},
		Amount: "900",
	})
	require.NoError(t, err)

	created, ok := registry.GetByID(tx.DebitLedgerID)
	require.True(t, ok)
	assert.Equal(t, "Ram & Sons A/C", created.Name)
	assert.True(t, created.IsParty)
	assert.Equal(t, ledger.NatureAsset, created.Nature)
	assert.Equal(t, "Sundry Parties", created.GroupName)
}

func TestSaveSimpleRejections(t *testing.T) {
	svc, _, jnl := newTestService(t)

	cases := []struct {
		name string
		in   SimpleInput
	}{
		{"non-numeric amount", SimpleInput{Debit: LedgerRef{ID: "L10"}, Credit: LedgerRef{ID: "L20"}, Amount: "ten"}},
		{"negative amount", SimpleInput{Debit: LedgerRef{ID: "L10"}, Credit: LedgerRef{ID: "L20"}, Amount: "-5"}},
		{"same ledger", SimpleInput{Debit: LedgerRef{ID: "L10"}, Credit: LedgerRef{ID: "L10"}, Amount: "5"}},
		{"unknown id", SimpleInput{Debit: LedgerRef{ID: "L999"}, Credit: LedgerRef{ID: "L20"}, Amount: "5"}},
		{"missing without create", SimpleInput{Debit: LedgerRef{Name: "Nobody A/C"}, Credit: LedgerRef{ID: "L20"}, Amount: "5"}},
	}
	for _, tc := range cases {
		_, err := svc.SaveSimple(tc.in)
		assert.True(t, shared.IsValidation(err), "%s: got %v", tc.name, err)
	}
	assert.Equal(t, 0, jnl.Len(), "rejected entries must not commit")
}

func TestSaveCashBookOut(t *testing.T) {
	svc, _, _ := newTestService(t)

	tx, err := svc.SaveCashBook(CashBookInput{
		Direction:  DirectionOut,
		CashLedger: LedgerRef{ID: "L10"},
		Party:      LedgerRef{Name: "Landlord A/C", CreateIfMissing: true},
		Amount:     "25,000",
	})
	require.NoError(t, err)
	assert.Equal(t, journal.VoucherPayment, tx.VoucherType)
	assert.Equal(t, "L10", tx.CreditLedgerID, "money leaves cash on direction out")
	assert.Equal(t, "Payment to Landlord A/C", tx.Narration)
	assert.Equal(t, 25000.0, tx.Amount)
}

func TestSaveCashBookIn(t *testing.T) {
	svc, _, _ := newTestService(t)

	tx, err := svc.SaveCashBook(CashBookInput{
		Direction:  DirectionIn,
		CashLedger: LedgerRef{ID: "L11"},
		Party:      LedgerRef{ID: "L20"},
		Amount:     "800",
		Narration:  "Counter sales banked",
	})
	require.NoError(t, err)
	assert.Equal(t, journal.VoucherReceipt, tx.VoucherType)
	assert.Equal(t, "L11", tx.DebitLedgerID, "money enters cash on direction in")
	assert.Equal(t, "L20", tx.CreditLedgerID)
	assert.Equal(t, "Counter sales banked", tx.Narration)
}

func TestSaveCashBookRejectsUnknownDirection(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.SaveCashBook(CashBookInput{
		Direction:  "sideways",
		CashLedger: LedgerRef{ID: "L10"},
		Party:      LedgerRef{ID: "L20"},
		Amount:     "10",
	})
	assert.True(t, shared.IsValidation(err))
}

func TestSaveJournalManyDebitsOneCredit(t *testing.T) {
	svc, _, jnl := newTestService(t)

	txs, err := svc.SaveJournal(JournalInput{
		Date:      "2026-08-05",
		Narration: "Month-end expenses",
		DebitLines: []JournalLineInput{
			{LedgerName: "Rent Paid A/C", Amount: "1,000"},
			{LedgerName: "Salaries A/C", Amount: "3000"},
			{LedgerName: "", Amount: "50"},      // dropped: blank name
			{LedgerName: "Wages A/C", Amount: "0"}, // dropped: non-positive
		},
		CreditLines: []JournalLineInput{
			{LedgerName: "Cash in Hand A/C", Amount: "4000"},
		},
	})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	for _, tx := range txs {
		assert.Equal(t, journal.VoucherJournal, tx.VoucherType)
		assert.Equal(t, "2026-08-05", tx.Date)
		assert.Equal(t, "Month-end expenses", tx.Narration)
		assert.Equal(t, "L10", tx.CreditLedgerID)
	}
	assert.Equal(t, 1000.0, txs[0].Amount)
	assert.Equal(t, 3000.0, txs[1].Amount)
	assert.Equal(t, 2, jnl.Len())
}

func TestSaveJournalOneDebitManyCredits(t *testing.T) {
	svc, _, _ := newTestService(t)

	txs, err := svc.SaveJournal(JournalInput{
		DebitLines: []JournalLineInput{
			{LedgerName: "Cash in Hand A/C", Amount: "500"},
		},
		CreditLines: []JournalLineInput{
			{LedgerName: "Sales A/C", Amount: "300"},
			{LedgerName: "Commission Received A/C", Amount: "200"},
		},
	})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "L10", txs[0].DebitLedgerID)
	assert.Equal(t, "L10", txs[1].DebitLedgerID)
	assert.Equal(t, "Journal entry", txs[0].Narration)
}

func TestSaveJournalUnbalanced(t *testing.T) {
	svc, _, jnl := newTestService(t)

	_, err := svc.SaveJournal(JournalInput{
		DebitLines:  []JournalLineInput{{LedgerName: "Rent Paid A/C", Amount: "100"}},
		CreditLines: []JournalLineInput{{LedgerName: "Cash in Hand A/C", Amount: "90"}},
	})
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))
	assert.Contains(t, err.Error(), "100")
	assert.Contains(t, err.Error(), "90")
	assert.Equal(t, 0, jnl.Len())
}

func TestSaveJournalToleratesEpsilonDrift(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.SaveJournal(JournalInput{
		DebitLines:  []JournalLineInput{{LedgerName: "Rent Paid A/C", Amount: "100.0004"}},
		CreditLines: []JournalLineInput{{LedgerName: "Cash in Hand A/C", Amount: "100"}},
	})
	assert.NoError(t, err)
}

func TestSaveJournalRejectsManyToMany(t *testing.T) {
	svc, _, jnl := newTestService(t)

	_, err := svc.SaveJournal(JournalInput{
		DebitLines: []JournalLineInput{
			{LedgerName: "Rent Paid A/C", Amount: "50"},
			{LedgerName: "Salaries A/C", Amount: "50"},
		},
		CreditLines: []JournalLineInput{
			{LedgerName: "Cash in Hand A/C", Amount: "60"},
			{LedgerName: "Cash at Bank A/C", Amount: "40"},
		},
	})
	require.Error(t, err)
	assert.True(t, shared.IsLimitation(err), "N:M split is a limitation, not a validation failure")
	assert.Equal(t, 0, jnl.Len())
}

func TestSaveJournalAllOrNothing(t *testing.T) {
	svc, _, jnl := newTestService(t)

	_, err := svc.SaveJournal(JournalInput{
		DebitLines: []JournalLineInput{
			{LedgerName: "Rent Paid A/C", Amount: "100"},
			{LedgerName: "Salaries A/C", Amount: "100"},
			{LedgerName: "No Such Ledger A/C", Amount: "100"},
		},
		CreditLines: []JournalLineInput{
			{LedgerName: "Cash in Hand A/C", Amount: "300"},
		},
	})
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))
	assert.Contains(t, err.Error(), "No Such Ledger A/C")
	assert.Equal(t, 0, jnl.Len(), "a rejected journal must commit zero transactions")
}

func TestSaveJournalRequiresBothSides(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.SaveJournal(JournalInput{
		DebitLines:  []JournalLineInput{{LedgerName: "Rent Paid A/C", Amount: "100"}},
		CreditLines: []JournalLineInput{{LedgerName: "", Amount: "100"}},
	})
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))
	assert.Contains(t, err.Error(), "no valid lines")
}

func TestReverse(t *testing.T) {
	svc, _, jnl := newTestService(t)

	orig, err := svc.SaveSimple(SimpleInput{
		Date:      "2026-07-01",
		Debit:     LedgerRef{ID: "L10"},
		Credit:    LedgerRef{ID: "L20"},
		Amount:    "500",
		Narration: "Cash sales",
	})
	require.NoError(t, err)

	rev, err := svc.Reverse(orig.ID)
	require.NoError(t, err)
	assert.Equal(t, orig.CreditLedgerID, rev.DebitLedgerID)
	assert.Equal(t, orig.DebitLedgerID, rev.CreditLedgerID)
	assert.Equal(t, orig.Amount, rev.Amount)
	assert.Equal(t, journal.VoucherJournal, rev.VoucherType)
	assert.Equal(t, "2026-08-20", rev.Date, "reversal is dated at reversal time")
	assert.Equal(t, "Reversal of entry on 2026-07-01: Cash sales", rev.Narration)

	// The original stays untouched.
	stored, ok := jnl.Find(orig.ID)
	require.True(t, ok)
	assert.Equal(t, orig, stored)
}

func TestReverseWithoutNarration(t *testing.T) {
	svc, _, _ := newTestService(t)

	orig, err := svc.SaveSimple(SimpleInput{
		Date:   "2026-07-01",
		Debit:  LedgerRef{ID: "L10"},
		Credit: LedgerRef{ID: "L20"},
		Amount: "500",
	})
	require.NoError(t, err)

	rev, err := svc.Reverse(orig.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reversal of entry on 2026-07-01", rev.Narration)
}

func TestReverseUnknownID(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Reverse(404)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestParseAmount(t *testing.T) {
	for raw, want := range map[string]float64{
		"1,234.56": 1234.56,
		" 42 ":     42,
		"0.01":     0.01,
	} {
		got, err := parseAmount(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	// strconv.ParseFloat happily parses the NaN and Inf spellings; a NaN
	// amount would turn every report total into NaN.
	for _, raw := range []string{"", "abc", "0", "-1", "1,2,3x", "NaN", "nan", "Inf", "+Inf", "-Inf", "Infinity"} {
		_, err := parseAmount(raw)
		assert.True(t, shared.IsValidation(err), "expected rejection for %q", raw)
	}
}

func TestSaveSimpleRejectsNonFiniteAmount(t *testing.T) {
	svc, _, jnl := newTestService(t)
	for _, raw := range []string{"NaN", "Inf", "-Inf"} {
		_, err := svc.SaveSimple(SimpleInput{
			Date: "2026-08-10", Debit: LedgerRef{ID: "L10"}, Credit: LedgerRef{ID: "L20"}, Amount: raw,
		})
		assert.True(t, shared.IsValidation(err), "expected rejection for %q, got %v", raw, err)
	}
	assert.Equal(t, 0, jnl.Len(), "rejected entries must not commit")
}
