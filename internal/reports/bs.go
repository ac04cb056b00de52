package reports

import "github.com/Bikash4JP/tally-for-mobile/internal/ledger"

// Synthetic row ids for the P&L plug lines.
const (
	PlugProfitID = "PL_PROFIT"
	PlugLossID   = "PL_LOSS"
)

// Plug line names.
const (
	plugProfitName = "Net Profit (from P&L)"
	plugLossName   = "Net Loss (from P&L)"
)

// BalanceSheetRow is one asset- or liability-side line.
type BalanceSheetRow struct {
	LedgerID string  `json:"ledgerId"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
}

// BalanceSheet reports Asset against Liability balances, balanced by
// injecting the P&L net result as a plug line. With the plug applied,
// TotalAssets equals TotalLiabilities for any valid journal and period.
type BalanceSheet struct {
	AssetRows        []BalanceSheetRow `json:"assetRows"`
	LiabilityRows    []BalanceSheetRow `json:"liabilityRows"`
	TotalAssets      float64           `json:"totalAssets"`
	TotalLiabilities float64           `json:"totalLiabilities"`
}

// BuildBalanceSheet aggregates folded totals into the two sides. Balances
// follow the normal-balance convention (debit-normal for Asset and Expense,
// credit-normal for Liability and Income); only Asset and Liability ledgers
// with a positive balance appear as rows, the income statement's result
// enters through the plug.
func BuildBalanceSheet(totals []LedgerTotals, pl ProfitAndLoss) BalanceSheet {
	var bs BalanceSheet
	for _, t := range totals {
		var balance float64
		if t.Ledger.Nature.DebitNormal() {
			balance = t.Debit - t.Credit
		} else {
			balance = t.Credit - t.Debit
		}
		if balance <= 0 {
			continue
		}
		row := BalanceSheetRow{LedgerID: t.Ledger.ID, Name: t.Ledger.Name, Amount: balance}
		switch t.Ledger.Nature {
		case ledger.NatureAsset:
			bs.AssetRows = append(bs.AssetRows, row)
			bs.TotalAssets += balance
		case ledger.NatureLiability:
			bs.LiabilityRows = append(bs.LiabilityRows, row)
			bs.TotalLiabilities += balance
		}
	}

	if pl.NetProfit > 0 {
		bs.LiabilityRows = append(bs.LiabilityRows, BalanceSheetRow{
			LedgerID: PlugProfitID, Name: plugProfitName, Amount: pl.NetProfit,
		})
		bs.TotalLiabilities += pl.NetProfit
	} else if pl.NetLoss > 0 {
		bs.AssetRows = append(bs.AssetRows, BalanceSheetRow{
			LedgerID: PlugLossID, Name: plugLossName, Amount: pl.NetLoss,
		})
		bs.TotalAssets += pl.NetLoss
	}
	return bs
}
