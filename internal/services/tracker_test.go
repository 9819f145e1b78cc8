package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"spendbook/internal/core"
	"spendbook/internal/log"
	"spendbook/internal/storage"
)

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	store, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "spendbook.db"))
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	logger := log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
	tracker := NewTracker(store, logger)
	t.Cleanup(func() { tracker.Close() })
	return tracker
}

func TestCreateCategory(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	id, err := tracker.CreateCategory(ctx, "  Food  ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a category id")
	}

	if _, err := tracker.CreateCategory(ctx, ""); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("empty name: expected validation error, got %v", err)
	}
	if _, err := tracker.CreateCategory(ctx, "   "); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("blank name: expected validation error, got %v", err)
	}
	if _, err := tracker.CreateCategory(ctx, "food"); !errors.Is(err, core.ErrDuplicate) {
		t.Fatalf("duplicate: expected duplicate error, got %v", err)
	}
}

func TestRecordExpenseValidationOrder(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	if _, err := tracker.CreateCategory(ctx, "Food"); err != nil {
		t.Fatalf("create category: %v", err)
	}

	cases := []struct {
		name     string
		date     string
		amount   string
		category string
		wantKind error
	}{
		{"calendar-invalid date", "2024-02-30", "10", "Food", core.ErrValidation},
		{"misshapen date", "2024-5-01", "10", "Food", core.ErrValidation},
		{"unparsable amount", "2024-05-01", "ten", "Food", core.ErrValidation},
		{"zero amount", "2024-05-01", "0", "Food", core.ErrValidation},
		{"negative amount", "2024-05-01", "-5", "Food", core.ErrValidation},
		{"unknown category", "2024-05-01", "10", "Ghost", core.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tracker.RecordExpense(ctx, tc.date, tc.amount, tc.category, ""); !errors.Is(err, tc.wantKind) {
				t.Fatalf("expected %v, got %v", tc.wantKind, err)
			}
		})
	}

	// None of the failures above may have persisted anything.
	entries, err := tracker.Ledger(ctx)
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty ledger, got %d entries", len(entries))
	}
}

func TestRecordExpenseDescriptionNormalized(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	if _, err := tracker.CreateCategory(ctx, "Food"); err != nil {
		t.Fatalf("create category: %v", err)
	}

	if _, err := tracker.RecordExpense(ctx, "2024-05-01", "12,50", "food", "   "); err != nil {
		t.Fatalf("record with blank description: %v", err)
	}
	if _, err := tracker.RecordExpense(ctx, "2024-05-02", "3.20", "FOOD", " espresso "); err != nil {
		t.Fatalf("record with description: %v", err)
	}

	entries, err := tracker.Ledger(ctx)
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Description != "" {
		t.Errorf("blank description should read back empty, got %q", entries[0].Description)
	}
	if entries[0].Amount.Cents != 1250 {
		t.Errorf("comma amount: got %d cents", entries[0].Amount.Cents)
	}
	if entries[1].Description != "espresso" {
		t.Errorf("description should be trimmed, got %q", entries[1].Description)
	}
}

func TestSetMonthlyBudgetUpsert(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	if _, err := tracker.CreateCategory(ctx, "Food"); err != nil {
		t.Fatalf("create category: %v", err)
	}

	first, err := tracker.SetMonthlyBudget(ctx, "2024-05", "Food", "100")
	if err != nil {
		t.Fatalf("first set: %v", err)
	}
	second, err := tracker.SetMonthlyBudget(ctx, "2024-05", "Food", "150")
	if err != nil {
		t.Fatalf("second set: %v", err)
	}
	if second != first {
		t.Fatalf("expected stable budget id, got %d then %d", first, second)
	}

	lines, err := tracker.MonthVsBudget(ctx, "2024-05")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(lines) != 1 || lines[0].Budget.Cents != 15000 {
		t.Fatalf("expected single overwritten budget of 150.00, got %+v", lines)
	}
}

func TestSetMonthlyBudgetValidation(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	if _, err := tracker.CreateCategory(ctx, "Food"); err != nil {
		t.Fatalf("create category: %v", err)
	}

	if _, err := tracker.SetMonthlyBudget(ctx, "2024-13", "Food", "100"); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("bad month: expected validation error, got %v", err)
	}
	if _, err := tracker.SetMonthlyBudget(ctx, "2024-05", "Food", "-1"); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("bad amount: expected validation error, got %v", err)
	}
	if _, err := tracker.SetMonthlyBudget(ctx, "2024-05", "Ghost", "100"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("unknown category: expected not found, got %v", err)
	}
}

func TestMonthVsBudgetRounding(t *testing.T) {
	tracker := newTestTracker(t)
	ctx := context.Background()

	if _, err := tracker.CreateCategory(ctx, "Food"); err != nil {
		t.Fatalf("create category: %v", err)
	}
	if _, err := tracker.SetMonthlyBudget(ctx, "2024-05", "Food", "25"); err != nil {
		t.Fatalf("set budget: %v", err)
	}
	if _, err := tracker.RecordExpense(ctx, "2024-05-10", "10.00", "Food", ""); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := tracker.RecordExpense(ctx, "2024-05-11", "20.005", "Food", ""); err != nil {
		t.Fatalf("record: %v", err)
	}

	lines, err := tracker.MonthVsBudget(ctx, "2024-05")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if got := lines[0].Spent.String(); got != "30.01" {
		t.Errorf("spent = %s, want 30.01", got)
	}
	if got := lines[0].Status(); got != core.StatusOverBudget {
		t.Errorf("status = %q, want %q", got, core.StatusOverBudget)
	}

	if _, err := tracker.MonthVsBudget(ctx, "bad-month"); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("bad month: expected validation error, got %v", err)
	}
}
