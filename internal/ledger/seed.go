package ledger

// Seed returns a fresh copy of the pre-loaded chart of accounts covering the
// trading / profit & loss statement and the balance sheet. Party ledgers
// (customers, suppliers, loans) are created by users at entry time and are
// deliberately not part of the seed.
func Seed() []Ledger {
	return []Ledger{
		// Equity / core
		{ID: "L0", Name: "Opening Balances A/C", GroupName: "Capital Account", Nature: NatureLiability},
		{ID: "L1", Name: "Capital A/C", GroupName: "Capital Account", Nature: NatureLiability},
		// Contra to capital, shown on the asset side.
		{ID: "L2", Name: "Drawings A/C", GroupName: "Capital Account", Nature: NatureAsset},
		{ID: "L3", Name: "Reserves & Surplus A/C", GroupName: "Reserves & Surplus", Nature: NatureLiability},
		{ID: "L4", Name: "Profit & Loss A/C", GroupName: "Profit & Loss", Nature: NatureLiability},

		// Cash / bank
		{ID: "L10", Name: "Cash in Hand A/C", GroupName: "Cash-in-Hand", Nature: NatureAsset, IsCashEquivalent: true},
		{ID: "L11", Name: "Cash at Bank A/C", GroupName: "Bank Accounts", Nature: NatureAsset, IsCashEquivalent: true},
		{ID: "L12", Name: "Bank Overdraft A/C", GroupName: "Bank Accounts", Nature: NatureLiability, IsCashEquivalent: true},

		// Trading: sales side
		{ID: "L20", Name: "Sales A/C", GroupName: "Sales Accounts", Nature: NatureIncome},
		{ID: "L21", Name: "Sales Returns A/C", GroupName: "Sales Accounts", Nature: NatureExpense},

		// Trading: purchase side
		{ID: "L22", Name: "Purchases A/C", GroupName: "Purchase Accounts", Nature: NatureExpense},
		{ID: "L23", Name: "Purchase Returns A/C", GroupName: "Purchase Accounts", Nature: NatureIncome},

		// Stock
		{ID: "L24", Name: "Opening Stock A/C", GroupName: "Inventory", Nature: NatureExpense},
		{ID: "L25", Name: "Closing Stock A/C", GroupName: "Inventory", Nature: NatureAsset},

		// Direct expenses
		{ID: "L30", Name: "Wages A/C", GroupName: "Direct Expenses", Nature: NatureExpense},
		{ID: "L31", Name: "Carriage Inward / Freight on Purchases A/C", GroupName: "Direct Expenses", Nature: NatureExpense},
		{ID: "L32", Name: "Fuel & Power A/C", GroupName: "Direct Expenses", Nature: NatureExpense},

		// Indirect expenses
		{ID: "L40", Name: "Rent Paid A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L41", Name: "Salaries A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L42", Name: "Interest Paid A/C", GroupName: "Finance Charges", Nature: NatureExpense},
		{ID: "L43", Name: "Commission Paid A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L44", Name: "Discount Allowed A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L45", Name: "Bad Debts A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L46", Name: "Depreciation A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L47", Name: "Repairs & Maintenance A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L48", Name: "Advertising & Promotion A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L49", Name: "Insurance A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L50", Name: "Electricity A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L51", Name: "Telephone & Internet A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L52", Name: "Travel Expenses A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L53", Name: "Office Expenses A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L54", Name: "Printing & Stationery A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L55", Name: "Legal Fees A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L56", Name: "Audit Fees A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L57", Name: "Loss on Sale of Asset A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L58", Name: "Provision for Doubtful Debts A/C", GroupName: "Indirect Expenses", Nature: NatureExpense},
		{ID: "L59", Name: "Bank Charges A/C", GroupName: "Finance Charges", Nature: NatureExpense},

		// Indirect incomes
		{ID: "L70", Name: "Rent Received A/C", GroupName: "Indirect Incomes", Nature: NatureIncome},
		{ID: "L71", Name: "Interest Received A/C", GroupName: "Indirect Incomes", Nature: NatureIncome},
		{ID: "L72", Name: "Commission Received A/C", GroupName: "Indirect Incomes", Nature: NatureIncome},
		{ID: "L73", Name: "Discount Received A/C", GroupName: "Indirect Incomes", Nature: NatureIncome},
		{ID: "L74", Name: "Gain on Sale of Asset A/C", GroupName: "Indirect Incomes", Nature: NatureIncome},

		// Fixed / intangible assets
		{ID: "L80", Name: "Goodwill A/C", GroupName: "Intangible Assets", Nature: NatureAsset},
		{ID: "L81", Name: "Patents & Copyrights A/C", GroupName: "Intangible Assets", Nature: NatureAsset},
		{ID: "L82", Name: "Land A/C", GroupName: "Fixed Assets", Nature: NatureAsset},
		{ID: "L83", Name: "Building A/C", GroupName: "Fixed Assets", Nature: NatureAsset},
		{ID: "L84", Name: "Plant & Machinery A/C", GroupName: "Fixed Assets", Nature: NatureAsset},
		{ID: "L85", Name: "Machinery A/C", GroupName: "Fixed Assets", Nature: NatureAsset},
		{ID: "L86", Name: "Furniture & Fixtures A/C", GroupName: "Fixed Assets", Nature: NatureAsset},
		{ID: "L87", Name: "Motor Vehicles A/C", GroupName: "Fixed Assets", Nature: NatureAsset},
		{ID: "L88", Name: "Leasehold Property A/C", GroupName: "Fixed Assets", Nature: NatureAsset},

		// Investments / loans given
		{ID: "L90", Name: "Investments (Long-term) A/C", GroupName: "Investments", Nature: NatureAsset},
		{ID: "L91", Name: "Investments (Current) A/C", GroupName: "Investments", Nature: NatureAsset},
		{ID: "L92", Name: "Loans & Advances Given A/C", GroupName: "Loans & Advances", Nature: NatureAsset},

		// Current assets
		{ID: "L100", Name: "Debtors / Accounts Receivable A/C", GroupName: "Sundry Debtors", Nature: NatureAsset},
		{ID: "L101", Name: "Bills Receivable A/C", GroupName: "Bills Receivable", Nature: NatureAsset},
		{ID: "L102", Name: "Prepaid Expenses A/C", GroupName: "Current Assets", Nature: NatureAsset},
		{ID: "L103", Name: "Advance Payments A/C", GroupName: "Current Assets", Nature: NatureAsset},
		{ID: "L104", Name: "Stock / Inventory A/C", GroupName: "Inventory", Nature: NatureAsset},

		// Liabilities
		{ID: "L110", Name: "Bank Loan A/C", GroupName: "Secured Loans", Nature: NatureLiability},
		{ID: "L111", Name: "Long-term Loans A/C", GroupName: "Secured Loans", Nature: NatureLiability},
		{ID: "L112", Name: "Debentures A/C", GroupName: "Secured Loans", Nature: NatureLiability},
		{ID: "L113", Name: "Creditors / Accounts Payable A/C", GroupName: "Sundry Creditors", Nature: NatureLiability},
		{ID: "L114", Name: "Bills Payable A/C", GroupName: "Bills Payable", Nature: NatureLiability},
		{ID: "L115", Name: "Outstanding Expenses A/C", GroupName: "Current Liabilities", Nature: NatureLiability},
		{ID: "L116", Name: "Interest Due A/C", GroupName: "Current Liabilities", Nature: NatureLiability},
		{ID: "L117", Name: "Provision for Taxation A/C", GroupName: "Provisions", Nature: NatureLiability},
		{ID: "L118", Name: "Provision for Depreciation A/C", GroupName: "Provisions", Nature: NatureLiability},
	}
}
