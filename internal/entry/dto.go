package entry

import (
	"github.com/Bikash4JP/tally-for-mobile/internal/journal"
	"github.com/Bikash4JP/tally-for-mobile/internal/ledger"
)

// Direction tells which way money moves through the cash or bank ledger of
// a cash-book entry.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

// LedgerRef selects a ledger by id, or by name with optional on-demand
// creation. Creation applies to simple and cash-book entries only; the
// multi-line journal path requires every ledger to pre-exist.
type LedgerRef struct {
	ID              string
	Name            string
	CreateIfMissing bool
	// GroupName and Nature seed a ledger created on demand. Blank values
	// default to a party ledger under "Sundry Parties" with Asset nature.
	GroupName string
	Nature    ledger.Nature
}

// SimpleInput is a two-leg posting from user intent. Amount is the raw
// user-entered string; thousands separators are accepted.
type SimpleInput struct {
	Date        string
	Debit       LedgerRef
	Credit      LedgerRef
	Amount      string
	Narration   string
	VoucherType journal.VoucherType
}

// CashBookInput is the directional convenience entry: the engine derives
// the debit/credit assignment from Direction.
type CashBookInput struct {
	Direction  Direction
	CashLedger LedgerRef
	Party      LedgerRef
	Amount     string
	Narration  string
	Date       string
}

// JournalLineInput is one debit or credit line of a multi-line journal.
type JournalLineInput struct {
	LedgerName string
	Amount     string
}

// JournalInput is an N:1 or 1:N journal split. All named ledgers must
// already exist; the save is all-or-nothing.
type JournalInput struct {
	Date        string
	Narration   string
	DebitLines  []JournalLineInput
	CreditLines []JournalLineInput
}
