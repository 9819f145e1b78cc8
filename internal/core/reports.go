package core

// BudgetStatus classifies one category's spending against its budget for
// a single month.
type BudgetStatus string

const (
	StatusNoBudget   BudgetStatus = "NO BUDGET SET"
	StatusOverBudget BudgetStatus = "OVER BUDGET"
	StatusOK         BudgetStatus = "OK"
)

// CategoryTotal is one row of the totals-by-category report. Categories
// without expenses appear with a zero total.
type CategoryTotal struct {
	Category string
	Total    Money
}

// BudgetLine is one row of the month-vs-budget report. Budget is zero when
// no budget is set for the (month, category) pair.
type BudgetLine struct {
	Category string
	Budget   Money
	Spent    Money
}

// Status derives the row's state from budget and spending.
func (l BudgetLine) Status() BudgetStatus {
	switch {
	case l.Budget.Cents <= 0:
		return StatusNoBudget
	case l.Spent.Cents > l.Budget.Cents:
		return StatusOverBudget
	default:
		return StatusOK
	}
}

// LedgerEntry is one row of the chronological ledger. Description is the
// empty string when the expense was recorded without one.
type LedgerEntry struct {
	Date        string
	Category    string
	Amount      Money
	Description string
}
