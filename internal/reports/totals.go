package reports

import (
	"time"

	"github.com/Bikash4JP/tally-for-mobile/internal/journal"
	"github.com/Bikash4JP/tally-for-mobile/internal/ledger"
	"github.com/Bikash4JP/tally-for-mobile/internal/period"
)

// Side tags which column a closing balance falls on.
type Side string

const (
	SideDebit  Side = "Dr"
	SideCredit Side = "Cr"
	SideNone   Side = ""
)

// LedgerTotals aggregates one ledger's debit and credit activity within a
// period. Every report derives from a slice of these.
type LedgerTotals struct {
	Ledger ledger.Ledger
	Debit  float64
	Credit float64
}

// Turnover is the total activity through the ledger, both sides summed.
func (t LedgerTotals) Turnover() float64 {
	return t.Debit + t.Credit
}

// Closing returns the closing balance under the ledger's normal-balance
// convention, as an absolute value tagged with the side it falls on.
func (t LedgerTotals) Closing() (float64, Side) {
	var closing float64
	normal, opposite := SideDebit, SideCredit
	if t.Ledger.Nature.DebitNormal() {
		closing = t.Debit - t.Credit
	} else {
		closing = t.Credit - t.Debit
		normal, opposite = SideCredit, SideDebit
	}
	switch {
	case closing > 0:
		return closing, normal
	case closing < 0:
		return -closing, opposite
	}
	return 0, SideNone
}

// Fold computes per-ledger totals over the transactions that fall inside the
// period relative to now. Zero-activity ledgers are suppressed; the rest
// keep registry order. The fold is pure: it never mutates its inputs.
func Fold(ledgers []ledger.Ledger, txs []journal.Transaction, p period.Period, now time.Time) []LedgerTotals {
	debits := make(map[string]float64)
	credits := make(map[string]float64)
	for _, tx := range txs {
		if !p.Contains(tx.Date, now) {
			continue
		}
		debits[tx.DebitLedgerID] += tx.Amount
		credits[tx.CreditLedgerID] += tx.Amount
	}

	var out []LedgerTotals
	for _, l := range ledgers {
		debit, credit := debits[l.ID], credits[l.ID]
		if debit == 0 && credit == 0 {
			continue
		}
		out = append(out, LedgerTotals{Ledger: l, Debit: debit, Credit: credit})
	}
	return out
}
