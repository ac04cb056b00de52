package ledger

import "strings"

// Nature enumerates the fixed accounting classification of a ledger. It is
// set at creation and never changes afterwards; report classification reads
// it at report time, so mutating it would silently corrupt every historical
// report.
type Nature string

const (
	NatureAsset     Nature = "Asset"
	NatureLiability Nature = "Liability"
	NatureIncome    Nature = "Income"
	NatureExpense   Nature = "Expense"
)

// Valid reports whether n is one of the four account natures.
func (n Nature) Valid() bool {
	switch n {
	case NatureAsset, NatureLiability, NatureIncome, NatureExpense:
		return true
	}
	return false
}

// DebitNormal reports whether the nature's normal balance sits on the debit
// side. Asset and Expense ledgers are debit-normal; Liability and Income
// ledgers are credit-normal.
func (n Nature) DebitNormal() bool {
	return n == NatureAsset || n == NatureExpense
}

// Ledger models one account in the chart of accounts.
type Ledger struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	GroupName        string `json:"groupName"`
	Nature           Nature `json:"nature"`
	IsParty          bool   `json:"isParty,omitempty"`
	IsCashEquivalent bool   `json:"isCashEquivalent,omitempty"`
}

// CashEquivalent reports whether the ledger belongs in the cash flow report.
// Seed cash/bank accounts carry the explicit flag; the name substring check
// remains as a fallback for ledgers created before the flag existed. A
// cash-like ledger named without "cash" or "bank" (say "Petty Float") is
// still missed by the fallback.
func (l Ledger) CashEquivalent() bool {
	if l.IsCashEquivalent {
		return true
	}
	name := strings.ToLower(l.Name)
	return strings.Contains(name, "cash") || strings.Contains(name, "bank")
}
