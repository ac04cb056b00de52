package reports

// TrialBalanceRow is one ledger's debit and credit totals.
type TrialBalanceRow struct {
	LedgerID string  `json:"ledgerId"`
	Name     string  `json:"name"`
	Debit    float64 `json:"debit"`
	Credit   float64 `json:"credit"`
}

// TrialBalance lists every active ledger with its column totals. For any
// journal built through the entry service the grand totals match exactly;
// that equality is the fundamental double-entry check of the whole system.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  float64           `json:"totalDebit"`
	TotalCredit float64           `json:"totalCredit"`
}

// BuildTrialBalance converts folded totals into the trial balance view.
func BuildTrialBalance(totals []LedgerTotals) TrialBalance {
	var tb TrialBalance
	for _, t := range totals {
		tb.Rows = append(tb.Rows, TrialBalanceRow{
			LedgerID: t.Ledger.ID,
			Name:     t.Ledger.Name,
			Debit:    t.Debit,
			Credit:   t.Credit,
		})
		tb.TotalDebit += t.Debit
		tb.TotalCredit += t.Credit
	}
	return tb
}
