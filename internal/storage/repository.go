// Package storage persists categories, expenses and monthly budgets in a
// local SQLite file. The schema enforces the integrity rules (name
// uniqueness, positive amounts, structural date shapes, referential
// actions) independently of the calling code; constraint failures the
// application did not catch earlier surface as core.ErrIntegrity.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"spendbook/internal/core"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// Single-user tool: one connection, no SQLITE_BUSY to handle.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateCategory inserts a new category and returns its id. The duplicate
// check and the insert share one transaction; the unique index on
// lower(trim(name)) backstops anything the check misses.
func (r *SQLiteRepository) CreateCategory(ctx context.Context, name string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM categories WHERE lower(trim(name)) = lower(trim(?))`,
		name).Scan(&exists)
	switch {
	case err == nil:
		return 0, fmt.Errorf("category %q: %w", name, core.ErrDuplicate)
	case !errors.Is(err, sql.ErrNoRows):
		return 0, fmt.Errorf("check category: %w", err)
	}

	var id int64
	if err := tx.QueryRowContext(ctx,
		`INSERT INTO categories (name) VALUES (?) RETURNING id`,
		name).Scan(&id); err != nil {
		return 0, wrapConstraint("insert category", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit category: %w", err)
	}

	return id, nil
}

// FindCategoryIDByName resolves a category by case-insensitive,
// trim-normalized exact match. Returns core.ErrNotFound when absent.
func (r *SQLiteRepository) FindCategoryIDByName(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM categories WHERE lower(trim(name)) = lower(trim(?))`,
		name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("category %q: %w", name, core.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("find category: %w", err)
	}
	return id, nil
}

// DeleteCategory removes a category. Expenses referencing it make the
// delete fail (FK RESTRICT); budgets referencing it are removed (CASCADE).
func (r *SQLiteRepository) DeleteCategory(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return wrapConstraint("delete category", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("category id %d: %w", id, core.ErrNotFound)
	}
	return nil
}

// InsertExpense stores one expense row and returns its id. A blank
// description is stored as NULL.
func (r *SQLiteRepository) InsertExpense(ctx context.Context, e core.Expense) (int64, error) {
	var description sql.NullString
	if e.Description != "" {
		description = sql.NullString{String: e.Description, Valid: true}
	}

	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO expenses (expense_date, amount_cents, category_id, description)
		 VALUES (?, ?, ?, ?) RETURNING id`,
		e.Date, e.Amount.Cents, e.CategoryID, description).Scan(&id)
	if err != nil {
		return 0, wrapConstraint("insert expense", err)
	}
	return id, nil
}

// UpsertMonthlyBudget inserts a budget for (month, category), or overwrites
// the amount if one is already set. The row id is stable across overwrites.
func (r *SQLiteRepository) UpsertMonthlyBudget(ctx context.Context, b core.MonthlyBudget) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO monthly_budgets (month, category_id, amount_cents)
		 VALUES (?, ?, ?)
		 ON CONFLICT(month, category_id) DO UPDATE SET amount_cents = excluded.amount_cents
		 RETURNING id`,
		b.Month, b.CategoryID, b.Amount.Cents).Scan(&id)
	if err != nil {
		return 0, wrapConstraint("upsert budget", err)
	}
	return id, nil
}

// TotalsByCategory sums expenses per category, including categories without
// expenses, ordered by descending total then ascending name.
func (r *SQLiteRepository) TotalsByCategory(ctx context.Context) ([]core.CategoryTotal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.name, COALESCE(SUM(e.amount_cents), 0) AS total_cents
		FROM categories c
		LEFT JOIN expenses e ON e.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY total_cents DESC, c.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}
	defer rows.Close()

	var totals []core.CategoryTotal
	for rows.Next() {
		var t core.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total.Cents); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate totals: %w", err)
	}
	return totals, nil
}

// MonthVsBudget returns, for every category, the budget set for the given
// month (zero when unset) and the month's spending, ordered by name.
func (r *SQLiteRepository) MonthVsBudget(ctx context.Context, month string) ([]core.BudgetLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.name,
		       COALESCE(b.amount_cents, 0) AS budget_cents,
		       COALESCE(SUM(e.amount_cents), 0) AS spent_cents
		FROM categories c
		LEFT JOIN monthly_budgets b
		    ON b.category_id = c.id AND b.month = ?
		LEFT JOIN expenses e
		    ON e.category_id = c.id AND substr(e.expense_date, 1, 7) = ?
		GROUP BY c.id, c.name, b.amount_cents
		ORDER BY c.name ASC`, month, month)
	if err != nil {
		return nil, fmt.Errorf("query month vs budget: %w", err)
	}
	defer rows.Close()

	var lines []core.BudgetLine
	for rows.Next() {
		var l core.BudgetLine
		if err := rows.Scan(&l.Category, &l.Budget.Cents, &l.Spent.Cents); err != nil {
			return nil, fmt.Errorf("scan budget line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budget lines: %w", err)
	}
	return lines, nil
}

// Ledger returns every expense joined to its category name, ordered by
// ascending date then insertion order.
func (r *SQLiteRepository) Ledger(ctx context.Context) ([]core.LedgerEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.expense_date, c.name, e.amount_cents, COALESCE(e.description, '')
		FROM expenses e
		JOIN categories c ON c.id = e.category_id
		ORDER BY e.expense_date ASC, e.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	defer rows.Close()

	var entries []core.LedgerEntry
	for rows.Next() {
		var entry core.LedgerEntry
		if err := rows.Scan(&entry.Date, &entry.Category, &entry.Amount.Cents, &entry.Description); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger: %w", err)
	}
	return entries, nil
}

// wrapConstraint maps sqlite constraint failures to core.ErrIntegrity and
// leaves every other error untouched. The finer error kinds are assigned by
// the application checks that run first; whatever reaches the constraints
// stays opaque.
func wrapConstraint(op string, err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%s: %w: %v", op, core.ErrIntegrity, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
