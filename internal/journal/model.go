package journal

// VoucherType classifies a posting for display and filtering. It never
// affects balance math.
type VoucherType string

const (
	VoucherReceipt  VoucherType = "Receipt"
	VoucherPayment  VoucherType = "Payment"
	VoucherJournal  VoucherType = "Journal"
	VoucherContra   VoucherType = "Contra"
	VoucherSales    VoucherType = "Sales"
	VoucherPurchase VoucherType = "Purchase"
)

// Valid reports whether v is a known voucher type.
func (v VoucherType) Valid() bool {
	switch v {
	case VoucherReceipt, VoucherPayment, VoucherJournal, VoucherContra, VoucherSales, VoucherPurchase:
		return true
	}
	return false
}

// Transaction is one double-entry posting: a debit to one ledger and an
// equal credit to another. Once appended to the journal its fields are never
// mutated; corrections happen by appending a reversing transaction.
//
// Date is a YYYY-MM-DD string, so lexicographic comparison matches
// chronological order.
type Transaction struct {
	ID             int64       `json:"id"`
	VoucherType    VoucherType `json:"voucherType"`
	Date           string      `json:"date"`
	DebitLedgerID  string      `json:"debitLedgerId"`
	CreditLedgerID string      `json:"creditLedgerId"`
	Amount         float64     `json:"amount"`
	Narration      string      `json:"narration,omitempty"`
}

// NewTransaction carries the fields of a posting before the journal assigns
// an id.
type NewTransaction struct {
	VoucherType    VoucherType
	Date           string
	DebitLedgerID  string
	CreditLedgerID string
	Amount         float64
	Narration      string
}
