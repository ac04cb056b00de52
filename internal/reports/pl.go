package reports

import "github.com/Bikash4JP/tally-for-mobile/internal/ledger"

// ProfitAndLossRow is one income or expense line.
type ProfitAndLossRow struct {
	LedgerID string  `json:"ledgerId"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
}

// ProfitAndLoss nets Income against Expense ledgers over a period. Exactly
// one of NetProfit and NetLoss is non-zero, or both are zero on an exact
// break-even.
type ProfitAndLoss struct {
	ExpenseRows  []ProfitAndLossRow `json:"expenseRows"`
	IncomeRows   []ProfitAndLossRow `json:"incomeRows"`
	TotalExpense float64            `json:"totalExpense"`
	TotalIncome  float64            `json:"totalIncome"`
	NetProfit    float64            `json:"netProfit"`
	NetLoss      float64            `json:"netLoss"`
}

// BuildProfitAndLoss aggregates folded totals into expense and income
// sections. Expense lines carry debit minus credit, income lines credit
// minus debit; lines that net to zero or negative are dropped.
func BuildProfitAndLoss(totals []LedgerTotals) ProfitAndLoss {
	var pl ProfitAndLoss
	for _, t := range totals {
		switch t.Ledger.Nature {
		case ledger.NatureExpense:
			if amount := t.Debit - t.Credit; amount > 0 {
				pl.ExpenseRows = append(pl.ExpenseRows, ProfitAndLossRow{
					LedgerID: t.Ledger.ID, Name: t.Ledger.Name, Amount: amount,
				})
				pl.TotalExpense += amount
			}
		case ledger.NatureIncome:
			if amount := t.Credit - t.Debit; amount > 0 {
				pl.IncomeRows = append(pl.IncomeRows, ProfitAndLossRow{
					LedgerID: t.Ledger.ID, Name: t.Ledger.Name, Amount: amount,
				})
				pl.TotalIncome += amount
			}
		}
	}
	switch diff := pl.TotalIncome - pl.TotalExpense; {
	case diff > 0:
		pl.NetProfit = diff
	case diff < 0:
		pl.NetLoss = -diff
	}
	return pl
}
