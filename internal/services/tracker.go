// Package services orchestrates the record operations and reports on top
// of the SQLite store. Every operation validates its input before touching
// storage, in a fixed order: format first, then amount, then category
// resolution. Whatever slips past these checks is caught by the schema
// constraints and surfaces as core.ErrIntegrity.
package services

import (
	"context"
	"strings"

	"spendbook/internal/core"
	"spendbook/internal/log"
	"spendbook/internal/storage"
)

type Tracker struct {
	store  *storage.SQLiteRepository
	logger *log.Logger
}

func NewTracker(store *storage.SQLiteRepository, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Tracker{
		store:  store,
		logger: logger.WithComponent(log.ComponentTracker),
	}
}

// CreateCategory trims the name, rejects empty names and normalized
// duplicates, and returns the new category id.
func (t *Tracker) CreateCategory(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, core.ErrEmptyName
	}

	id, err := t.store.CreateCategory(ctx, name)
	if err != nil {
		return 0, err
	}

	t.logger.InfoContext(ctx, "Category created",
		log.FieldCategoryID, id,
		log.FieldCategory, name)
	return id, nil
}

// RecordExpense validates date, amount and category in that order, then
// inserts the expense and returns its id. A blank description is
// normalized to absent.
func (t *Tracker) RecordExpense(ctx context.Context, date, amount, categoryName, description string) (int64, error) {
	if !core.IsValidDate(date) {
		return 0, core.ErrInvalidDate
	}

	money, err := core.ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if err := money.Validate(); err != nil {
		return 0, err
	}

	categoryID, err := t.store.FindCategoryIDByName(ctx, categoryName)
	if err != nil {
		return 0, err
	}

	id, err := t.store.InsertExpense(ctx, core.Expense{
		Date:        date,
		Amount:      money,
		CategoryID:  categoryID,
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		return 0, err
	}

	t.logger.InfoContext(ctx, "Expense recorded",
		log.FieldExpenseID, id,
		log.FieldDate, date,
		log.FieldAmountCents, money.Cents,
		log.FieldCategoryID, categoryID)
	return id, nil
}

// SetMonthlyBudget validates month, amount and category in that order,
// then upserts the budget keyed on (month, category). An existing budget
// has its amount overwritten; the caller is not told which case occurred.
func (t *Tracker) SetMonthlyBudget(ctx context.Context, month, categoryName, amount string) (int64, error) {
	if !core.IsValidMonth(month) {
		return 0, core.ErrInvalidMonth
	}

	money, err := core.ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if err := money.Validate(); err != nil {
		return 0, err
	}

	categoryID, err := t.store.FindCategoryIDByName(ctx, categoryName)
	if err != nil {
		return 0, err
	}

	id, err := t.store.UpsertMonthlyBudget(ctx, core.MonthlyBudget{
		Month:      month,
		CategoryID: categoryID,
		Amount:     money,
	})
	if err != nil {
		return 0, err
	}

	t.logger.InfoContext(ctx, "Monthly budget saved",
		log.FieldBudgetID, id,
		log.FieldMonth, month,
		log.FieldAmountCents, money.Cents,
		log.FieldCategoryID, categoryID)
	return id, nil
}

// TotalsByCategory returns summed spending per category, zero-expense
// categories included.
func (t *Tracker) TotalsByCategory(ctx context.Context) ([]core.CategoryTotal, error) {
	return t.store.TotalsByCategory(ctx)
}

// MonthVsBudget validates the month and returns budget-vs-spent lines for
// every category.
func (t *Tracker) MonthVsBudget(ctx context.Context, month string) ([]core.BudgetLine, error) {
	if !core.IsValidMonth(month) {
		return nil, core.ErrInvalidMonth
	}
	return t.store.MonthVsBudget(ctx, month)
}

// Ledger returns every expense in chronological order.
func (t *Tracker) Ledger(ctx context.Context) ([]core.LedgerEntry, error) {
	return t.store.Ledger(ctx)
}

// Close releases the underlying store.
func (t *Tracker) Close() error {
	if t.store != nil {
		return t.store.Close()
	}
	return nil
}
