package reports

import "sort"

// analysisLimit keeps ledger analysis a ranking, not a full ledger dump.
const analysisLimit = 10

// LedgerAnalysisRow summarises one ledger's turnover and closing balance.
type LedgerAnalysisRow struct {
	LedgerID    string  `json:"ledgerId"`
	Name        string  `json:"name"`
	GroupName   string  `json:"groupName"`
	Turnover    float64 `json:"turnover"`
	Closing     float64 `json:"closing"`
	ClosingSide Side    `json:"closingSide"`
}

// BuildLedgerAnalysis ranks active ledgers by turnover, descending, and
// returns the top ten. Closing balances follow the same normal-balance
// convention as the balance sheet.
func BuildLedgerAnalysis(totals []LedgerTotals) []LedgerAnalysisRow {
	var rows []LedgerAnalysisRow
	for _, t := range totals {
		turnover := t.Turnover()
		if turnover == 0 {
			continue
		}
		closing, side := t.Closing()
		rows = append(rows, LedgerAnalysisRow{
			LedgerID:    t.Ledger.ID,
			Name:        t.Ledger.Name,
			GroupName:   t.Ledger.GroupName,
			Turnover:    turnover,
			Closing:     closing,
			ClosingSide: side,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Turnover > rows[j].Turnover })
	if len(rows) > analysisLimit {
		rows = rows[:analysisLimit]
	}
	return rows
}
