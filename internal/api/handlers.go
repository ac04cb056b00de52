// Package api exposes the bookkeeping core over JSON HTTP.
package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Bikash4JP/tally-for-mobile/internal/entry"
	"github.com/Bikash4JP/tally-for-mobile/internal/i18n"
	"github.com/Bikash4JP/tally-for-mobile/internal/journal"
	"github.com/Bikash4JP/tally-for-mobile/internal/ledger"
	"github.com/Bikash4JP/tally-for-mobile/internal/period"
	"github.com/Bikash4JP/tally-for-mobile/internal/platform/httpx"
	"github.com/Bikash4JP/tally-for-mobile/internal/reports"
	"github.com/Bikash4JP/tally-for-mobile/internal/store"
)

// Handler coordinates HTTP requests for ledgers, entries and reports.
type Handler struct {
	logger   *slog.Logger
	store    *store.Store
	entries  *entry.Service
	reports  *reports.Service
	validate *validator.Validate
	lang     i18n.Language
}

// NewHandler constructs the API handler. lang selects the display language
// for report and ledger labels when the request does not override it.
func NewHandler(logger *slog.Logger, st *store.Store, entries *entry.Service, rpt *reports.Service, lang i18n.Language) *Handler {
	return &Handler{
		logger:   logger,
		store:    st,
		entries:  entries,
		reports:  rpt,
		validate: validator.New(),
		lang:     lang,
	}
}

func (h *Handler) language(r *http.Request) i18n.Language {
	if q := r.URL.Query().Get("lang"); q != "" {
		return i18n.ParseLanguage(q)
	}
	return h.lang
}

// reportPeriod reads the period selection from query parameters. A missing
// period means everything.
func reportPeriod(r *http.Request) (period.Period, error) {
	q := r.URL.Query()
	return period.Parse(q.Get("period"), q.Get("from"), q.Get("to"))
}

func ledgerToResponse(l ledger.Ledger, lang i18n.Language) ledgerResponse {
	return ledgerResponse{
		ID:               l.ID,
		Name:             l.Name,
		Label:            i18n.LedgerLabel(l.Name, lang),
		GroupName:        l.GroupName,
		Nature:           string(l.Nature),
		IsParty:          l.IsParty,
		IsCashEquivalent: l.IsCashEquivalent,
	}
}

func txToResponse(tx journal.Transaction) transactionResponse {
	return transactionResponse{
		ID:             tx.ID,
		VoucherType:    string(tx.VoucherType),
		Date:           tx.Date,
		DebitLedgerID:  tx.DebitLedgerID,
		CreditLedgerID: tx.CreditLedgerID,
		Amount:         tx.Amount,
		Narration:      tx.Narration,
	}
}

// persist writes the books after a successful mutation. The in-memory state
// is already committed; a failed write is reported so the client knows the
// change may not survive a restart.
func (h *Handler) persist(w http.ResponseWriter, r *http.Request) bool {
	if err := h.store.Save(r.Context()); err != nil {
		h.logger.Error("persist books", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "persistence failed", "the entry was accepted but could not be written to storage")
		return false
	}
	return true
}

func (h *Handler) handleListLedgers(w http.ResponseWriter, r *http.Request) {
	lang := h.language(r)
	all := h.store.Ledgers()
	out := make([]ledgerResponse, 0, len(all))
	for _, l := range all {
		out = append(out, ledgerToResponse(l, lang))
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) handleSearchLedgers(w http.ResponseWriter, r *http.Request) {
	lang := h.language(r)
	matches := h.store.Registry().FindByNameContains(r.URL.Query().Get("q"))
	out := make([]ledgerResponse, 0, len(matches))
	for _, l := range matches {
		out = append(out, ledgerToResponse(l, lang))
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetLedger(w http.ResponseWriter, r *http.Request) {
	l, ok := h.store.Registry().GetByID(chi.URLParam(r, "id"))
	if !ok {
		httpx.Problem(w, http.StatusNotFound, "not found", "no such ledger")
		return
	}
	httpx.JSON(w, http.StatusOK, ledgerToResponse(l, h.language(r)))
}

func (h *Handler) handleLedgerStatement(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	st, ok := h.reports.Statement(chi.URLParam(r, "id"), q.Get("from"), q.Get("to"))
	if !ok {
		httpx.Problem(w, http.StatusNotFound, "not found", "no such ledger")
		return
	}
	lang := h.language(r)
	for i := range st.Lines {
		st.Lines[i].Particular = i18n.LedgerLabel(st.Lines[i].Particular, lang)
	}
	httpx.JSON(w, http.StatusOK, st)
}

func (h *Handler) handleCreateLedger(w http.ResponseWriter, r *http.Request) {
	var req createLedgerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}
	existing := h.store.Registry().Len()
	l, err := h.store.Registry().Create(req.Name, req.GroupName, ledger.Nature(req.Nature), req.IsParty)
	if err != nil {
		httpx.ProblemFromError(w, err)
		return
	}
	created := h.store.Registry().Len() > existing
	if created && !h.persist(w, r) {
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httpx.JSON(w, status, ledgerToResponse(l, h.language(r)))
}

func (h *Handler) handleListEntries(w http.ResponseWriter, r *http.Request) {
	txs := h.store.Transactions()
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, txToResponse(tx))
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "validation failed", "transaction id must be an integer")
		return
	}
	tx, ok := h.store.Journal().Find(id)
	if !ok {
		httpx.Problem(w, http.StatusNotFound, "not found", "no such transaction")
		return
	}
	httpx.JSON(w, http.StatusOK, txToResponse(tx))
}

func refFromRequest(req ledgerRefRequest) entry.LedgerRef {
	return entry.LedgerRef{
		ID:              req.ID,
		Name:            req.Name,
		CreateIfMissing: req.CreateIfMissing,
		GroupName:       req.GroupName,
		Nature:          ledger.Nature(req.Nature),
	}
}

func (h *Handler) handleSimpleEntry(w http.ResponseWriter, r *http.Request) {
	var req simpleEntryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}
	tx, err := h.entries.SaveSimple(entry.SimpleInput{
		Date:        req.Date,
		Debit:       refFromRequest(req.Debit),
		Credit:      refFromRequest(req.Credit),
		Amount:      req.Amount,
		Narration:   req.Narration,
		VoucherType: journal.VoucherType(req.VoucherType),
	})
	if err != nil {
		httpx.ProblemFromError(w, err)
		return
	}
	if !h.persist(w, r) {
		return
	}
	httpx.JSON(w, http.StatusCreated, txToResponse(tx))
}

func (h *Handler) handleCashBookEntry(w http.ResponseWriter, r *http.Request) {
	var req cashBookEntryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}
	tx, err := h.entries.SaveCashBook(entry.CashBookInput{
		Direction:  entry.Direction(req.Direction),
		CashLedger: refFromRequest(req.CashLedger),
		Party:      refFromRequest(req.Party),
		Amount:     req.Amount,
		Narration:  req.Narration,
		Date:       req.Date,
	})
	if err != nil {
		httpx.ProblemFromError(w, err)
		return
	}
	if !h.persist(w, r) {
		return
	}
	httpx.JSON(w, http.StatusCreated, txToResponse(tx))
}

func (h *Handler) handleJournalEntry(w http.ResponseWriter, r *http.Request) {
	var req journalEntryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}
	in := entry.JournalInput{Date: req.Date, Narration: req.Narration}
	for _, l := range req.DebitLines {
		in.DebitLines = append(in.DebitLines, entry.JournalLineInput{LedgerName: l.LedgerName, Amount: l.Amount})
	}
	for _, l := range req.CreditLines {
		in.CreditLines = append(in.CreditLines, entry.JournalLineInput{LedgerName: l.LedgerName, Amount: l.Amount})
	}
	txs, err := h.entries.SaveJournal(in)
	if err != nil {
		httpx.ProblemFromError(w, err)
		return
	}
	if !h.persist(w, r) {
		return
	}
	resp := journalEntryResponse{Transactions: make([]transactionResponse, 0, len(txs))}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, txToResponse(tx))
	}
	httpx.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleReverseEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "validation failed", "transaction id must be an integer")
		return
	}
	tx, err := h.entries.Reverse(id)
	if err != nil {
		httpx.ProblemFromError(w, err)
		return
	}
	if !h.persist(w, r) {
		return
	}
	httpx.JSON(w, http.StatusCreated, txToResponse(tx))
}

func (h *Handler) handleTrialBalance(w http.ResponseWriter, r *http.Request) {
	p, err := reportPeriod(r)
	if err != nil {
		httpx.ProblemFromError(w, err)
		return
	}
	tb := h.reports.TrialBalance(p)
	lang := h.language(r)
	for i := range tb.Rows {
		tb.Rows[i].Name = i18n.LedgerLabel(tb.Rows[i].Name, lang)
	}
	httpx.JSON(w, http.StatusOK, tb)
}

func (h *Handler) handleProfitAndLoss(w http.ResponseWriter, r *http.Request) {
	p, err := reportPeriod(r)
	if err != nil {
		httpx.ProblemFromError(w, err)
		return
	}
	pl := h.reports.ProfitAndLoss(p)
	lang := h.language(r)
	for i := range pl.ExpenseRows {
		pl.ExpenseRows[i].Name = i18n.LedgerLabel(pl.ExpenseRows[i].Name, lang)
	}
	for i := range pl.IncomeRows {
		pl.IncomeRows[i].Name = i18n.LedgerLabel(pl.IncomeRows[i].Name, lang)
	}
	httpx.JSON(w, http.StatusOK, pl)
}

func (h *Handler) handleBalanceSheet(w http.ResponseWriter, r *http.Request) {
	p, err := reportPeriod(r)
	if err != nil {
		httpx.ProblemFromError(w, err)
		return
	}
	bs := h.reports.BalanceSheet(p)
	lang := h.language(r)
	for i := range bs.AssetRows {
		bs.AssetRows[i].Name = i18n.LedgerLabel(bs.AssetRows[i].Name, lang)
	}
	for i := range bs.LiabilityRows {
		bs.LiabilityRows[i].Name = i18n.LedgerLabel(bs.LiabilityRows[i].Name, lang)
	}
	httpx.JSON(w, http.StatusOK, bs)
}

func (h *Handler) handleCashFlow(w http.ResponseWriter, r *http.Request) {
	p, err := reportPeriod(r)
	if err != nil {
		httpx.ProblemFromError(w, err)
		return
	}
	cf := h.reports.CashFlow(p)
	lang := h.language(r)
	for i := range cf.Rows {
		cf.Rows[i].Name = i18n.LedgerLabel(cf.Rows[i].Name, lang)
	}
	httpx.JSON(w, http.StatusOK, cf)
}

func (h *Handler) handleLedgerAnalysis(w http.ResponseWriter, r *http.Request) {
	p, err := reportPeriod(r)
	if err != nil {
		httpx.ProblemFromError(w, err)
		return
	}
	rows := h.reports.LedgerAnalysis(p)
	lang := h.language(r)
	for i := range rows {
		rows[i].Name = i18n.LedgerLabel(rows[i].Name, lang)
	}
	if rows == nil {
		rows = []reports.LedgerAnalysisRow{}
	}
	httpx.JSON(w, http.StatusOK, rows)
}
