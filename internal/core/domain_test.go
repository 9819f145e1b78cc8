package core

import "testing"

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-01-01", true},
		{"2024-12-31", true},
		{"2024-02-29", true},  // leap year
		{"2023-02-29", false}, // not a leap year
		{"2024-02-30", false},
		{"2024-13-01", false},
		{"2024-00-10", false},
		{"2024-1-01", false}, // no implicit padding
		{"2024-01-1", false},
		{"24-01-01", false},
		{"2024/01/01", false},
		{"2024-01-01 ", false},
		{"abcd-ef-gh", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidDate(tc.in); got != tc.ok {
			t.Errorf("IsValidDate(%q) = %v, want %v", tc.in, got, tc.ok)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-01", true},
		{"2024-12", true},
		{"2024-13", false},
		{"2024-00", false},
		{"2024-1", false},
		{"2024", false},
		{"2024-01-01", false},
		{" 2024-01", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsValidMonth(tc.in); got != tc.ok {
			t.Errorf("IsValidMonth(%q) = %v, want %v", tc.in, got, tc.ok)
		}
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Date:       "2024-05-01",
		Amount:     Money{Cents: 100},
		CategoryID: 1,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Expense{
		{Date: "2024-02-30", Amount: Money{Cents: 100}, CategoryID: 1},
		{Date: "2024-05-01", Amount: Money{Cents: 0}, CategoryID: 1},
		{Date: "2024-05-01", Amount: Money{Cents: -5}, CategoryID: 1},
		{Date: "2024-05-01", Amount: Money{Cents: 100}, CategoryID: 0},
	}
	for i, e := range bads {
		if err := e.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestMonthlyBudgetValidate(t *testing.T) {
	good := MonthlyBudget{Month: "2024-05", Amount: Money{Cents: 2500}, CategoryID: 1}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []MonthlyBudget{
		{Month: "2024-13", Amount: Money{Cents: 2500}, CategoryID: 1},
		{Month: "2024-05", Amount: Money{Cents: 0}, CategoryID: 1},
		{Month: "2024-05", Amount: Money{Cents: 2500}, CategoryID: 0},
	}
	for i, b := range bads {
		if err := b.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
