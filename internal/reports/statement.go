package reports

import (
	"sort"

	"github.com/Bikash4JP/tally-for-mobile/internal/journal"
	"github.com/Bikash4JP/tally-for-mobile/internal/ledger"
)

// StatementLine is one row of a per-ledger statement. Particular carries the
// counter-ledger's name, falling back to its raw id when the ledger is gone.
type StatementLine struct {
	TransactionID int64   `json:"transactionId"`
	Date          string  `json:"date"`
	Particular    string  `json:"particular"`
	Narration     string  `json:"narration,omitempty"`
	Debit         float64 `json:"debit"`
	Credit        float64 `json:"credit"`
}

// Statement is the T-account view of a single ledger: every transaction
// touching it, with the amount placed in the column matching the ledger's
// side. Closing is the raw debit-minus-credit difference tagged by side, not
// the nature-adjusted balance the balance sheet uses.
type Statement struct {
	Ledger      ledger.Ledger   `json:"ledger"`
	Lines       []StatementLine `json:"lines"`
	TotalDebit  float64         `json:"totalDebit"`
	TotalCredit float64         `json:"totalCredit"`
	Closing     float64         `json:"closing"`
	ClosingSide Side            `json:"closingSide"`
}

// BuildStatement folds the journal into the statement of one ledger. The
// from/to bounds are raw inclusive date-string comparisons; a blank bound is
// open. Lines sort by date then transaction id, both ascending.
func BuildStatement(ledgers []ledger.Ledger, txs []journal.Transaction, id, from, to string) (Statement, bool) {
	var subject ledger.Ledger
	names := make(map[string]string, len(ledgers))
	found := false
	for _, l := range ledgers {
		names[l.ID] = l.Name
		if l.ID == id {
			subject = l
			found = true
		}
	}
	if !found {
		return Statement{}, false
	}

	st := Statement{Ledger: subject}
	for _, tx := range txs {
		var isDebit bool
		switch id {
		case tx.DebitLedgerID:
			isDebit = true
		case tx.CreditLedgerID:
			isDebit = false
		default:
			continue
		}
		if from != "" && tx.Date < from {
			continue
		}
		if to != "" && tx.Date > to {
			continue
		}
		other := tx.CreditLedgerID
		if !isDebit {
			other = tx.DebitLedgerID
		}
		particular, ok := names[other]
		if !ok {
			particular = other
		}
		line := StatementLine{
			TransactionID: tx.ID,
			Date:          tx.Date,
			Particular:    particular,
			Narration:     tx.Narration,
		}
		if isDebit {
			line.Debit = tx.Amount
			st.TotalDebit += tx.Amount
		} else {
			line.Credit = tx.Amount
			st.TotalCredit += tx.Amount
		}
		st.Lines = append(st.Lines, line)
	}

	sort.SliceStable(st.Lines, func(i, j int) bool {
		if st.Lines[i].Date != st.Lines[j].Date {
			return st.Lines[i].Date < st.Lines[j].Date
		}
		return st.Lines[i].TransactionID < st.Lines[j].TransactionID
	})

	switch diff := st.TotalDebit - st.TotalCredit; {
	case diff > 0:
		st.Closing = diff
		st.ClosingSide = SideDebit
	case diff < 0:
		st.Closing = -diff
		st.ClosingSide = SideCredit
	}
	return st, true
}
