package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// MountRoutes registers the bookkeeping endpoints onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	// Reports fold the whole journal per request; keep them behind a
	// tighter limit than the cheap CRUD endpoints.
	limiter := httprate.Limit(30, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)

	r.Get("/ledgers", h.handleListLedgers)
	r.Get("/ledgers/search", h.handleSearchLedgers)
	r.Get("/ledgers/{id}", h.handleGetLedger)
	r.Get("/ledgers/{id}/statement", h.handleLedgerStatement)
	r.Post("/ledgers", h.handleCreateLedger)

	r.Get("/entries", h.handleListEntries)
	r.Get("/entries/{id}", h.handleGetEntry)
	r.Post("/entries/simple", h.handleSimpleEntry)
	r.Post("/entries/cashbook", h.handleCashBookEntry)
	r.Post("/entries/journal", h.handleJournalEntry)
	r.Post("/entries/{id}/reverse", h.handleReverseEntry)

	r.Group(func(gr chi.Router) {
		gr.Use(limiter)
		gr.Get("/reports/trial-balance", h.handleTrialBalance)
		gr.Get("/reports/profit-and-loss", h.handleProfitAndLoss)
		gr.Get("/reports/balance-sheet", h.handleBalanceSheet)
		gr.Get("/reports/cash-flow", h.handleCashFlow)
		gr.Get("/reports/ledger-analysis", h.handleLedgerAnalysis)
	})
}
