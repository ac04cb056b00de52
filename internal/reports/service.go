package reports

import (
	"time"

	"github.com/Bikash4JP/tally-for-mobile/internal/journal"
	"github.com/Bikash4JP/tally-for-mobile/internal/ledger"
	"github.com/Bikash4JP/tally-for-mobile/internal/period"
)

// Books supplies the current state the reports fold over. The store
// satisfies it; report functions only ever read, never write.
type Books interface {
	Ledgers() []ledger.Ledger
	Transactions() []journal.Transaction
}

// Service derives report views from the books for a requested period. All
// methods are total: a malformed transaction date is handled by period
// exclusion, never by failing the report.
type Service struct {
	books Books
	now   func() time.Time
}

// NewService constructs the report service.
func NewService(books Books) *Service {
	return &Service{books: books, now: time.Now}
}

// WithNow overrides the service clock for testing.
func (s *Service) WithNow(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

func (s *Service) fold(p period.Period) []LedgerTotals {
	return Fold(s.books.Ledgers(), s.books.Transactions(), p, s.now())
}

// TrialBalance folds the journal into per-ledger column totals.
func (s *Service) TrialBalance(p period.Period) TrialBalance {
	return BuildTrialBalance(s.fold(p))
}

// ProfitAndLoss nets income against expense ledgers.
func (s *Service) ProfitAndLoss(p period.Period) ProfitAndLoss {
	return BuildProfitAndLoss(s.fold(p))
}

// BalanceSheet reports asset against liability balances with the P&L plug.
func (s *Service) BalanceSheet(p period.Period) BalanceSheet {
	totals := s.fold(p)
	return BuildBalanceSheet(totals, BuildProfitAndLoss(totals))
}

// CashFlow summarises movement through cash-equivalent ledgers.
func (s *Service) CashFlow(p period.Period) CashFlow {
	return BuildCashFlow(s.fold(p))
}

// LedgerAnalysis ranks the ten busiest ledgers by turnover.
func (s *Service) LedgerAnalysis(p period.Period) []LedgerAnalysisRow {
	return BuildLedgerAnalysis(s.fold(p))
}

// Statement builds the T-account view of one ledger, bounded by optional
// inclusive from/to dates. The second return is false when the ledger id is
// unknown.
func (s *Service) Statement(id, from, to string) (Statement, bool) {
	return BuildStatement(s.books.Ledgers(), s.books.Transactions(), id, from, to)
}
