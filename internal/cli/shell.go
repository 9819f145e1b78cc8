package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"spendbook/internal/core"
	applog "spendbook/internal/log"
	"spendbook/internal/services"
)

// mainAction enumerates the top-level menu choices. Anything the user
// types that maps to no action falls through to actionUnknown.
type mainAction int

const (
	actionUnknown mainAction = iota
	actionManageCategories
	actionRecordExpense
	actionDefineBudget
	actionViewReports
	actionExit
)

// reportAction enumerates the reports submenu choices.
type reportAction int

const (
	reportUnknown reportAction = iota
	reportTotals
	reportMonthVsBudget
	reportLedger
	reportBack
)

func parseMainAction(s string) mainAction {
	switch strings.TrimSpace(s) {
	case "1":
		return actionManageCategories
	case "2":
		return actionRecordExpense
	case "3":
		return actionDefineBudget
	case "4":
		return actionViewReports
	case "5":
		return actionExit
	default:
		return actionUnknown
	}
}

func parseReportAction(s string) reportAction {
	switch strings.TrimSpace(s) {
	case "1":
		return reportTotals
	case "2":
		return reportMonthVsBudget
	case "3":
		return reportLedger
	case "4":
		return reportBack
	default:
		return reportUnknown
	}
}

const mainMenu = `
-------------------------
 PERSONAL EXPENSE TRACKER
-------------------------
1. Manage Categories
2. Record Expense
3. Define Monthly Budget
4. View Reports
5. Exit
-------------------------
`

const reportsMenu = `
--- REPORTS ---
1. Totals by Category
2. Month vs Budget
3. Chronological Ledger
4. Back
`

// Shell runs the interactive menu loop. All input comes from one
// bufio.Scanner; EOF anywhere behaves like choosing Exit.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	tracker *services.Tracker
	logger  *applog.Logger
}

func NewShell(in io.Reader, out io.Writer, tracker *services.Tracker, logger *applog.Logger) *Shell {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Shell{
		in:      bufio.NewScanner(in),
		out:     out,
		tracker: tracker,
		logger:  logger.WithComponent(applog.ComponentShell),
	}
}

// Run drives the main menu until the user exits or input ends. The only
// error it returns is a read failure on stdin; operation errors are
// rendered and swallowed so the menu always comes back.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to the personal expense tracker!")

	for {
		fmt.Fprint(s.out, mainMenu)
		choice, ok := s.readLine("Enter your choice: ")
		if !ok {
			// EOF behaves like choosing Exit
			if err := s.in.Err(); err != nil {
				return err
			}
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}

		switch parseMainAction(choice) {
		case actionManageCategories:
			s.manageCategories(ctx)
		case actionRecordExpense:
			s.recordExpense(ctx)
		case actionDefineBudget:
			s.defineBudget(ctx)
		case actionViewReports:
			s.reportsLoop(ctx)
		case actionExit:
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
		}
	}
}

func (s *Shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) manageCategories(ctx context.Context) {
	name, ok := s.readLine("Enter category name: ")
	if !ok {
		return
	}

	if _, err := s.tracker.CreateCategory(ctx, name); err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, "Category created.")
}

func (s *Shell) recordExpense(ctx context.Context) {
	date, ok := s.readLine("Enter date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	amount, ok := s.readLine("Enter amount: ")
	if !ok {
		return
	}
	category, ok := s.readLine("Enter category name: ")
	if !ok {
		return
	}
	description, ok := s.readLine("Description (optional): ")
	if !ok {
		return
	}

	if _, err := s.tracker.RecordExpense(ctx, date, amount, category, description); err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, "Expense recorded.")
}

func (s *Shell) defineBudget(ctx context.Context) {
	month, ok := s.readLine("Enter month (YYYY-MM): ")
	if !ok {
		return
	}
	category, ok := s.readLine("Enter category name: ")
	if !ok {
		return
	}
	amount, ok := s.readLine("Enter budget amount: ")
	if !ok {
		return
	}

	if _, err := s.tracker.SetMonthlyBudget(ctx, month, category, amount); err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintln(s.out, "Monthly budget saved.")
}

func (s *Shell) reportsLoop(ctx context.Context) {
	for {
		fmt.Fprint(s.out, reportsMenu)
		choice, ok := s.readLine("Enter your choice: ")
		if !ok {
			return
		}

		switch parseReportAction(choice) {
		case reportTotals:
			s.showTotals(ctx)
		case reportMonthVsBudget:
			s.showMonthVsBudget(ctx)
		case reportLedger:
			s.showLedger(ctx)
		case reportBack:
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice. Try again.")
		}
	}
}

func (s *Shell) showTotals(ctx context.Context) {
	totals, err := s.tracker.TotalsByCategory(ctx)
	if err != nil {
		s.printError(err)
		return
	}

	fmt.Fprintf(s.out, "\n%-25s %12s\n", "Category", "Total Spent")
	for _, row := range totals {
		fmt.Fprintf(s.out, "%-25s %12s\n", row.Category, row.Total)
	}
	fmt.Fprintln(s.out)
}

func (s *Shell) showMonthVsBudget(ctx context.Context) {
	month, ok := s.readLine("Enter month to analyze (YYYY-MM): ")
	if !ok {
		return
	}

	lines, err := s.tracker.MonthVsBudget(ctx, month)
	if err != nil {
		s.printError(err)
		return
	}

	fmt.Fprintf(s.out, "\nMonth: %s\n\n", month)
	for _, line := range lines {
		fmt.Fprintf(s.out, "Category: %s\n", line.Category)
		fmt.Fprintf(s.out, "Budget:   %s\n", line.Budget)
		fmt.Fprintf(s.out, "Spent:    %s\n", line.Spent)
		fmt.Fprintf(s.out, "Status:   %s\n", line.Status())
		fmt.Fprintln(s.out, strings.Repeat("-", 30))
	}
	fmt.Fprintln(s.out)
}

func (s *Shell) showLedger(ctx context.Context) {
	entries, err := s.tracker.Ledger(ctx)
	if err != nil {
		s.printError(err)
		return
	}

	fmt.Fprintf(s.out, "\n%-10s %-18s %8s   %s\n", "Date", "Category", "Amount", "Description")
	fmt.Fprintln(s.out, strings.Repeat("-", 70))
	for _, e := range entries {
		fmt.Fprintf(s.out, "%-10s %-18s %8s   %s\n", e.Date, e.Category, e.Amount, e.Description)
	}
	fmt.Fprintln(s.out)
}

// printError renders one message per error kind; the taxonomy lives in
// core, the wording lives here. Unclassified errors are also logged since
// they indicate a defect rather than bad input.
func (s *Shell) printError(err error) {
	switch {
	case errors.Is(err, core.ErrValidation),
		errors.Is(err, core.ErrNotFound),
		errors.Is(err, core.ErrDuplicate):
		fmt.Fprintf(s.out, "Error: %v\n", err)
	case errors.Is(err, core.ErrIntegrity):
		fmt.Fprintf(s.out, "Storage error: %v\n", err)
	default:
		fmt.Fprintf(s.out, "Unexpected error: %v\n", err)
		s.logger.Error("Operation failed", applog.FieldError, err)
	}
}
