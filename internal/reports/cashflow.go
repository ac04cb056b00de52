package reports

// CashFlowRow is the movement through one cash or bank ledger.
type CashFlowRow struct {
	LedgerID string  `json:"ledgerId"`
	Name     string  `json:"name"`
	Inflow   float64 `json:"inflow"`
	Outflow  float64 `json:"outflow"`
}

// CashFlow summarises movement through cash-equivalent ledgers. Inflow is
// the ledger's debit total, outflow its credit total.
type CashFlow struct {
	Rows     []CashFlowRow `json:"rows"`
	TotalIn  float64       `json:"totalIn"`
	TotalOut float64       `json:"totalOut"`
	Net      float64       `json:"net"`
}

// BuildCashFlow restricts folded totals to cash-equivalent ledgers. Seed
// cash/bank accounts carry an explicit flag; everything else falls back to
// the "cash"/"bank" name heuristic (see ledger.Ledger.CashEquivalent for
// its known gap).
func BuildCashFlow(totals []LedgerTotals) CashFlow {
	var cf CashFlow
	for _, t := range totals {
		if !t.Ledger.CashEquivalent() {
			continue
		}
		if t.Debit == 0 && t.Credit == 0 {
			continue
		}
		cf.Rows = append(cf.Rows, CashFlowRow{
			LedgerID: t.Ledger.ID,
			Name:     t.Ledger.Name,
			Inflow:   t.Debit,
			Outflow:  t.Credit,
		})
		cf.TotalIn += t.Debit
		cf.TotalOut += t.Credit
	}
	cf.Net = cf.TotalIn - cf.TotalOut
	return cf
}
