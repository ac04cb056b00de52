package api

type createLedgerRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	GroupName string `json:"groupName" validate:"required,max=120"`
	Nature    string `json:"nature" validate:"required,oneof=Asset Liability Income Expense"`
	IsParty   bool   `json:"isParty"`
}

type ledgerRefRequest struct {
	ID              string `json:"id,omitempty"`
	Name            string `json:"name,omitempty" validate:"omitempty,max=120"`
	CreateIfMissing bool   `json:"createIfMissing,omitempty"`
	GroupName       string `json:"groupName,omitempty" validate:"omitempty,max=120"`
	Nature          string `json:"nature,omitempty" validate:"omitempty,oneof=Asset Liability Income Expense"`
}

type simpleEntryRequest struct {
	Date        string           `json:"date,omitempty" validate:"omitempty,max=10"`
	Debit       ledgerRefRequest `json:"debit"`
	Credit      ledgerRefRequest `json:"credit"`
	Amount      string           `json:"amount" validate:"required,max=30"`
	Narration   string           `json:"narration,omitempty" validate:"omitempty,max=500"`
	VoucherType string           `json:"voucherType,omitempty" validate:"omitempty,oneof=Receipt Payment Journal Contra Sales Purchase"`
}

type cashBookEntryRequest struct {
	Direction  string           `json:"direction" validate:"required,oneof=in out"`
	CashLedger ledgerRefRequest `json:"cashLedger"`
	Party      ledgerRefRequest `json:"party"`
	Amount     string           `json:"amount" validate:"required,max=30"`
	Narration  string           `json:"narration,omitempty" validate:"omitempty,max=500"`
	Date       string           `json:"date,omitempty" validate:"omitempty,max=10"`
}

type journalLineRequest struct {
	LedgerName string `json:"ledgerName" validate:"omitempty,max=120"`
	Amount     string `json:"amount" validate:"omitempty,max=30"`
}

type journalEntryRequest struct {
	Date        string               `json:"date,omitempty" validate:"omitempty,max=10"`
	Narration   string               `json:"narration,omitempty" validate:"omitempty,max=500"`
	DebitLines  []journalLineRequest `json:"debitLines" validate:"required,min=1,max=50,dive"`
	CreditLines []journalLineRequest `json:"creditLines" validate:"required,min=1,max=50,dive"`
}

type ledgerResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Label            string `json:"label"`
	GroupName        string `json:"groupName"`
	Nature           string `json:"nature"`
	IsParty          bool   `json:"isParty,omitempty"`
	IsCashEquivalent bool   `json:"isCashEquivalent,omitempty"`
}

type transactionResponse struct {
	ID             int64   `json:"id"`
	VoucherType    string  `json:"voucherType"`
	Date           string  `json:"date"`
	DebitLedgerID  string  `json:"debitLedgerId"`
	CreditLedgerID string  `json:"creditLedgerId"`
	Amount         float64 `json:"amount"`
	Narration      string  `json:"narration,omitempty"`
}

type journalEntryResponse struct {
	Transactions []transactionResponse `json:"transactions"`
}
