// Package store persists case calculation records in SQLite or PostgreSQL.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lexcalc/dintilhac/internal/domain"

	_ "github.com/lib/pq"   // PostgreSQL driver.
	_ "modernc.org/sqlite" // SQLite driver.
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrNotFound is returned when a case has no stored calculation.
var ErrNotFound = errors.New("calculation not found")

// Store wraps database access for case calculation records.
type Store struct {
	db     *sql.DB
	driver string
}

// Open opens the database for driver. SQLite databases are created on demand.
// Call Migrate before first use.
func Open(driver, dsn string) (*Store, error) {
	switch driver {
	case DriverSQLite:
		if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
			if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// one writer; also keeps :memory: databases on a single connection
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}
	return New(db, driver), nil
}

// New wraps an existing connection pool.
func New(db *sql.DB, driver string) *Store {
	return &Store{db: db, driver: driver}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Driver returns the store driver name.
func (s *Store) Driver() string {
	return s.driver
}

func (s *Store) migrations() []string {
	amount, stamp := "TEXT", "TEXT"
	if s.driver == DriverPostgres {
		amount, stamp = "NUMERIC", "TIMESTAMPTZ"
	}
	cols := []string{"case_id TEXT PRIMARY KEY", "age_accident INTEGER NOT NULL"}
	names, _ := (&domain.CaseRecord{}).Columns()
	for _, name := range names[1:] {
		cols = append(cols, fmt.Sprintf("%s %s NOT NULL", name, amount))
	}
	cols = append(cols, fmt.Sprintf("calculated_at %s NOT NULL", stamp))

	return []string{
		"CREATE TABLE IF NOT EXISTS case_calculations (\n\t" + strings.Join(cols, ",\n\t") + "\n)",
		"CREATE INDEX IF NOT EXISTS idx_case_calculations_calculated_at ON case_calculations(calculated_at)",
	}
}

// Migrate creates the schema if needed.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range s.migrations() {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

func (s *Store) placeholder(n int) string {
	if s.driver == DriverPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// sqliteTimeLayout is fixed width so that text order is chronological order.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func (s *Store) timeArg(t time.Time) any {
	if s.driver == DriverPostgres {
		return t.UTC()
	}
	return t.UTC().Format(sqliteTimeLayout)
}

func selectColumns() string {
	names, _ := (&domain.CaseRecord{}).Columns()
	return "case_id, " + strings.Join(names, ", ") + ", calculated_at"
}

// SaveCalculation upserts the record keyed by its case id. Saving the same
// record twice leaves a single identical row.
func (s *Store) SaveCalculation(ctx context.Context, rec domain.CaseRecord) error {
	if rec.CaseID == "" {
		return errors.New("case id is required")
	}
	names, values := rec.Columns()
	names = append(append([]string{"case_id"}, names...), "calculated_at")
	args := append(append([]any{rec.CaseID}, values...), s.timeArg(rec.CalculatedAt))

	placeholders := make([]string, len(names))
	updates := make([]string, 0, len(names)-1)
	for i, name := range names {
		placeholders[i] = s.placeholder(i + 1)
		if name != "case_id" {
			updates = append(updates, fmt.Sprintf("%s = excluded.%s", name, name))
		}
	}
	query := fmt.Sprintf(
		"INSERT INTO case_calculations (%s) VALUES (%s) ON CONFLICT (case_id) DO UPDATE SET %s",
		strings.Join(names, ", "), strings.Join(placeholders, ", "), strings.Join(updates, ", "))

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save calculation for case %s: %w", rec.CaseID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (domain.CaseRecord, error) {
	var rec domain.CaseRecord
	dest := append(append([]any{&rec.CaseID}, rec.Targets()...), timeScanner{&rec.CalculatedAt})
	err := row.Scan(dest...)
	return rec, err
}

// GetCalculation returns the stored record of a case, or ErrNotFound.
func (s *Store) GetCalculation(ctx context.Context, caseID string) (*domain.CaseRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM case_calculations WHERE case_id = %s", selectColumns(), s.placeholder(1))
	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, caseID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("case %s: %w", caseID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load calculation for case %s: %w", caseID, err)
	}
	return &rec, nil
}

// ListCalculations returns stored records, most recent first. limit <= 0
// returns every record.
func (s *Store) ListCalculations(ctx context.Context, limit int) ([]domain.CaseRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM case_calculations ORDER BY calculated_at DESC, case_id", selectColumns())
	args := []any{}
	if limit > 0 {
		query += " LIMIT " + s.placeholder(1)
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	defer rows.Close()

	records := []domain.CaseRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan calculation: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// timeScanner reads timestamps stored natively or as RFC 3339 text.
type timeScanner struct {
	t *time.Time
}

func (ts timeScanner) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v.UTC()
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	case nil:
		*ts.t = time.Time{}
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
	return nil
}

func (ts timeScanner) parse(s string) error {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	*ts.t = t.UTC()
	return nil
}
