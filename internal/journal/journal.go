package journal

import (
	"math"
	"sync"

	"github.com/Bikash4JP/tally-for-mobile/internal/ledger"
	"github.com/Bikash4JP/tally-for-mobile/internal/shared"
)

// LedgerLookup answers the referential-integrity check performed on append.
// The registry satisfies it; tests substitute fakes.
type LedgerLookup interface {
	GetByID(id string) (ledger.Ledger, bool)
}

// Journal is the append-only list of transactions. There is no update or
// delete: a recorded posting is permanent, and ids grow monotonically.
// Appends and reads may come from concurrent request handlers, so access is
// serialized internally.
type Journal struct {
	mu     sync.RWMutex
	txs    []Transaction
	nextID int64
}

// NewJournal builds a journal over previously stored transactions. The next
// id continues above the highest stored id.
func NewJournal(txs []Transaction) *Journal {
	j := &Journal{nextID: 1}
	for _, tx := range txs {
		j.txs = append(j.txs, tx)
		if tx.ID >= j.nextID {
			j.nextID = tx.ID + 1
		}
	}
	return j
}

// Append validates the posting against the ledger registry and records it
// with a fresh id. Referential integrity is enforced here, at recording
// time, never retroactively.
func (j *Journal) Append(lookup LedgerLookup, in NewTransaction) (Transaction, error) {
	// NaN fails every comparison, so the positivity check is written to
	// reject it rather than let it through.
	if !(in.Amount > 0) || math.IsInf(in.Amount, 0) {
		return Transaction{}, shared.Validationf("amount must be a positive finite number, got %v", in.Amount)
	}
	if in.DebitLedgerID == in.CreditLedgerID {
		return Transaction{}, shared.Validationf("debit and credit ledger must differ")
	}
	if _, ok := lookup.GetByID(in.DebitLedgerID); !ok {
		return Transaction{}, shared.Validationf("unknown debit ledger %q", in.DebitLedgerID)
	}
	if _, ok := lookup.GetByID(in.CreditLedgerID); !ok {
		return Transaction{}, shared.Validationf("unknown credit ledger %q", in.CreditLedgerID)
	}
	voucher := in.VoucherType
	if voucher == "" {
		voucher = VoucherJournal
	}
	if !voucher.Valid() {
		return Transaction{}, shared.Validationf("unknown voucher type %q", in.VoucherType)
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	tx := Transaction{
		ID:             j.nextID,
		VoucherType:    voucher,
		Date:           in.Date,
		DebitLedgerID:  in.DebitLedgerID,
		CreditLedgerID: in.CreditLedgerID,
		Amount:         in.Amount,
		Narration:      in.Narration,
	}
	j.nextID++
	j.txs = append(j.txs, tx)
	return tx, nil
}

// All returns a copy of the journal in insertion order. Sorting for display
// is the caller's concern.
func (j *Journal) All() []Transaction {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]Transaction, len(j.txs))
	copy(out, j.txs)
	return out
}

// Find returns the transaction with the given id.
func (j *Journal) Find(id int64) (Transaction, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	for _, tx := range j.txs {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Len returns the number of recorded transactions.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.txs)
}
