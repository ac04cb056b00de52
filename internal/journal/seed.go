package journal

// DemoTransactions returns a small starter journal for demo installs. The
// ledger ids reference the seed chart of accounts; callers should only pass
// these to a journal backed by that chart.
func DemoTransactions() []Transaction {
	return []Transaction{
		{
			ID:             1,
			VoucherType:    VoucherReceipt,
			Date:           "2025-12-01",
			DebitLedgerID:  "L11",  // Cash at Bank
			CreditLedgerID: "L110", // Bank Loan
			Amount:         100000,
			Narration:      "Loan received into bank",
		},
		{
			ID:             2,
			VoucherType:    VoucherPayment,
			Date:           "2025-12-02",
			DebitLedgerID:  "L110", // Bank Loan
			CreditLedgerID: "L10",  // Cash in Hand
			Amount:         20000,
			Narration:      "Part loan repayment in cash",
		},
	}
}
