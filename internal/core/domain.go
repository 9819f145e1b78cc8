package core

import (
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

type (
	// Category is the root entity; expenses and budgets reference exactly
	// one category each. Names are unique under lowercased, trimmed
	// comparison, enforced by the store.
	Category struct {
		ID   int64
		Name string
	}

	// Expense is a single dated spending record. Dates are kept as the
	// exact YYYY-MM-DD string the store persists; IsValidDate guards
	// calendar validity before anything reaches the store.
	Expense struct {
		ID          int64
		Date        string
		Amount      Money
		CategoryID  int64
		Description string
	}

	// MonthlyBudget is a spending ceiling for one category in one
	// YYYY-MM month. The (month, category) pair is unique; setting it
	// again overwrites the amount.
	MonthlyBudget struct {
		ID         int64
		Month      string
		CategoryID int64
		Amount     Money
	}
)

// IsValidDate reports whether s is an exact YYYY-MM-DD calendar date.
// No reformatting or padding: "2024-2-03" and "2024-02-30" are both invalid.
func IsValidDate(s string) bool {
	t, err := time.Parse(dateLayout, s)
	return err == nil && t.Format(dateLayout) == s
}

// IsValidMonth reports whether s is an exact YYYY-MM calendar year-month.
func IsValidMonth(s string) bool {
	t, err := time.Parse(monthLayout, s)
	return err == nil && t.Format(monthLayout) == s
}

func (e Expense) Validate() error {
	if !IsValidDate(e.Date) {
		return ErrInvalidDate
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if e.CategoryID <= 0 {
		return ErrValidation
	}
	return nil
}

func (b MonthlyBudget) Validate() error {
	if !IsValidMonth(b.Month) {
		return ErrInvalidMonth
	}
	if err := b.Amount.Validate(); err != nil {
		return err
	}
	if b.CategoryID <= 0 {
		return ErrValidation
	}
	return nil
}
