// Package entry turns user-level intent into valid journal transactions.
// All validation failures are synchronous and local to one request: a
// rejected construction commits nothing, partial journals never happen.
package entry

import (
	"fmt"
	"strings"
	"time"

	"github.com/Bikash4JP/tally-for-mobile/internal/journal"
	"github.com/Bikash4JP/tally-for-mobile/internal/ledger"
	"github.com/Bikash4JP/tally-for-mobile/internal/shared"
)

const dateLayout = "2006-01-02"

// balanceEpsilon tolerates float drift when checking that a multi-line
// journal balances, in currency units.
const balanceEpsilon = 1e-3

// Defaults for ledgers created on demand during simple/cash-book entry.
const (
	partyGroupName = "Sundry Parties"
	partyNature    = ledger.NatureAsset
)

// Service is the validated construction path into the journal. It may
// append to the registry when auto-creating party ledgers; it never mutates
// or removes recorded transactions.
type Service struct {
	registry *ledger.Registry
	journal  *journal.Journal
	now      func() time.Time
}

// NewService constructs the entry service over the registry and journal.
func NewService(registry *ledger.Registry, jnl *journal.Journal) *Service {
	return &Service{registry: registry, journal: jnl, now: time.Now}
}

// WithNow overrides the service clock for testing.
func (s *Service) WithNow(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

// resolveRef finds the referenced ledger, creating a party ledger on demand
// when the ref allows it.
func (s *Service) resolveRef(ref LedgerRef) (ledger.Ledger, error) {
	if ref.ID != "" {
		l, ok := s.registry.GetByID(ref.ID)
		if !ok {
			return ledger.Ledger{}, shared.Validationf("unknown ledger id %q", ref.ID)
		}
		return l, nil
	}
	name := strings.TrimSpace(ref.Name)
	if name == "" {
		return ledger.Ledger{}, shared.Validationf("ledger reference requires an id or a name")
	}
	if l, ok := s.registry.FindByExactName(name); ok {
		return l, nil
	}
	if !ref.CreateIfMissing {
		return ledger.Ledger{}, shared.Validationf("ledger %q not found", name)
	}
	group := ref.GroupName
	if group == "" {
		group = partyGroupName
	}
	nature := ref.Nature
	if nature == "" {
		nature = partyNature
	}
	return s.registry.Create(name, group, nature, true)
}

func (s *Service) dateOrToday(date string) string {
	if clean := strings.TrimSpace(date); clean != "" {
		return clean
	}
	return s.now().Format(dateLayout)
}

// SaveSimple validates and records a two-leg posting.
func (s *Service) SaveSimple(in SimpleInput) (journal.Transaction, error) {
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return journal.Transaction{}, err
	}
	debit, err := s.resolveRef(in.Debit)
	if err != nil {
		return journal.Transaction{}, err
	}
	credit, err := s.resolveRef(in.Credit)
	if err != nil {
		return journal.Transaction{}, err
	}
	if debit.ID == credit.ID {
		return journal.Transaction{}, shared.Validationf("debit and credit ledger must differ")
	}
	return s.journal.Append(s.registry, journal.NewTransaction{
		VoucherType:    in.VoucherType,
		Date:           s.dateOrToday(in.Date),
		DebitLedgerID:  debit.ID,
		CreditLedgerID: credit.ID,
		Amount:         amount,
		Narration:      strings.TrimSpace(in.Narration),
	})
}

// SaveCashBook records a directional cash/bank posting. Direction out
// debits the counter-party and credits the cash ledger (money leaves cash);
// direction in is the mirror image. The voucher type follows the direction,
// and a blank narration is synthesised from the counter-party name.
func (s *Service) SaveCashBook(in CashBookInput) (journal.Transaction, error) {
	if !in.Direction.Valid() {
		return journal.Transaction{}, shared.Validationf("unknown direction %q", in.Direction)
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return journal.Transaction{}, err
	}
	cash, err := s.resolveRef(in.CashLedger)
	if err != nil {
		return journal.Transaction{}, err
	}
	party, err := s.resolveRef(in.Party)
	if err != nil {
		return journal.Transaction{}, err
	}
	if cash.ID == party.ID {
		return journal.Transaction{}, shared.Validationf("cash and counter-party ledger must differ")
	}

	narration := strings.TrimSpace(in.Narration)
	tx := journal.NewTransaction{
		Date:   s.dateOrToday(in.Date),
		Amount: amount,
	}
	if in.Direction == DirectionOut {
		tx.VoucherType = journal.VoucherPayment
		tx.DebitLedgerID = party.ID
		tx.CreditLedgerID = cash.ID
		if narration == "" {
			narration = fmt.Sprintf("Payment to %s", party.Name)
		}
	} else {
		tx.VoucherType = journal.VoucherReceipt
		tx.DebitLedgerID = cash.ID
		tx.CreditLedgerID = party.ID
		if narration == "" {
			narration = fmt.Sprintf("Receipt from %s", party.Name)
		}
	}
	tx.Narration = narration
	return s.journal.Append(s.registry, tx)
}

type journalLine struct {
	name   string
	amount float64
	ledger ledger.Ledger
}

// SaveJournal validates and records a multi-line journal split, emitting
// one transaction per line pairing. Only many-debits-to-one-credit and
// one-debit-to-many-credits shapes are supported; every named ledger must
// already exist, or nothing is recorded.
func (s *Service) SaveJournal(in JournalInput) ([]journal.Transaction, error) {
	drLines := collectLines(in.DebitLines)
	crLines := collectLines(in.CreditLines)
	if len(drLines) == 0 || len(crLines) == 0 {
		return nil, shared.Validationf("no valid lines: at least one debit and one credit line required")
	}

	var totalDr, totalCr float64
	for _, l := range drLines {
		totalDr += l.amount
	}
	for _, l := range crLines {
		totalCr += l.amount
	}
	if diff := totalDr - totalCr; diff > balanceEpsilon || diff < -balanceEpsilon {
		return nil, shared.Validationf("unbalanced: dr=%v cr=%v", totalDr, totalCr)
	}
	if len(drLines) > 1 && len(crLines) > 1 {
		return nil, shared.Limitationf("supported shapes are many debits with one credit, or one debit with many credits")
	}
	if err := s.resolveLines(drLines); err != nil {
		return nil, err
	}
	if err := s.resolveLines(crLines); err != nil {
		return nil, err
	}

	date := s.dateOrToday(in.Date)
	narration := strings.TrimSpace(in.Narration)
	if narration == "" {
		narration = "Journal entry"
	}

	var out []journal.Transaction
	emit := func(dr, cr ledger.Ledger, amount float64) error {
		tx, err := s.journal.Append(s.registry, journal.NewTransaction{
			VoucherType:    journal.VoucherJournal,
			Date:           date,
			DebitLedgerID:  dr.ID,
			CreditLedgerID: cr.ID,
			Amount:         amount,
			Narration:      narration,
		})
		if err != nil {
			return err
		}
		out = append(out, tx)
		return nil
	}
	if len(crLines) == 1 {
		cr := crLines[0]
		for _, dr := range drLines {
			if err := emit(dr.ledger, cr.ledger, dr.amount); err != nil {
				return nil, err
			}
		}
	} else {
		dr := drLines[0]
		for _, cr := range crLines {
			if err := emit(dr.ledger, cr.ledger, cr.amount); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// collectLines drops lines with a blank ledger name or an amount that is
// missing, non-numeric, or non-positive.
func collectLines(lines []JournalLineInput) []journalLine {
	var out []journalLine
	for _, line := range lines {
		name := strings.TrimSpace(line.LedgerName)
		if name == "" {
			continue
		}
		amount, err := parseAmount(line.Amount)
		if err != nil {
			continue
		}
		out = append(out, journalLine{name: name, amount: amount})
	}
	return out
}

// resolveLines resolves every line by exact name before anything is
// recorded. A missing ledger rejects the whole construction so it can be
// created out of band and the entry resubmitted; this path never creates
// ledgers itself.
func (s *Service) resolveLines(lines []journalLine) error {
	for i := range lines {
		l, ok := s.registry.FindByExactName(lines[i].name)
		if !ok {
			return shared.Validationf("ledger %q not found; create it first and resubmit", lines[i].name)
		}
		lines[i].ledger = l
	}
	return nil
}

// Reverse appends the mirror image of an existing transaction: debit and
// credit swapped, same amount, dated now. This is the only supported
// correction mechanism; the original transaction stays untouched.
func (s *Service) Reverse(id int64) (journal.Transaction, error) {
	orig, ok := s.journal.Find(id)
	if !ok {
		return journal.Transaction{}, fmt.Errorf("reverse transaction %d: %w", id, shared.ErrNotFound)
	}
	narration := fmt.Sprintf("Reversal of entry on %s", orig.Date)
	if orig.Narration != "" {
		narration = fmt.Sprintf("%s: %s", narration, orig.Narration)
	}
	return s.journal.Append(s.registry, journal.NewTransaction{
		VoucherType:    journal.VoucherJournal,
		Date:           s.now().Format(dateLayout),
		DebitLedgerID:  orig.CreditLedgerID,
		CreditLedgerID: orig.DebitLedgerID,
		Amount:         orig.Amount,
		Narration:      narration,
	})
}
