package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lexcalc/dintilhac/internal/calculation"
	"github.com/lexcalc/dintilhac/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(t *testing.T, caseID string, painScore int, at time.Time) domain.CaseRecord {
	t.Helper()
	res, err := calculation.NewCalculationEngine().Compute(domain.CalculationInput{
		Age:        35,
		DailyRate:  decimal.NewFromInt(31),
		Days100:    decimal.NewFromInt(10),
		DFPRate:    decimal.NewFromInt(10),
		PainScore:  painScore,
		PGPFAnnual: decimal.NewFromInt(2000),
	})
	require.NoError(t, err)
	return domain.NewCaseRecord(caseID, res, at)
}

func openSQLite(t *testing.T) *Store {
	t.Helper()
	s, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("mysql", "dsn")
	assert.ErrorContains(t, err, "unsupported store driver")
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cases.db")

	s, err := Open(DriverSQLite, path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Migrate(context.Background()))
	require.NoError(t, s.Ping(context.Background()))
	assert.FileExists(t, path)
}

func TestSQLite_SaveAndGet(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()
	at := time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)
	rec := testRecord(t, "2026-0042", 3, at)

	require.NoError(t, s.SaveCalculation(ctx, rec))

	got, err := s.GetCalculation(ctx, "2026-0042")
	require.NoError(t, err)
	assert.Equal(t, 35, got.AgeAccident)
	assert.True(t, got.DFTTotal.Equal(decimal.NewFromInt(310)))
	assert.True(t, got.PretiumDoloris.Equal(decimal.NewFromInt(6000)))
	assert.True(t, got.PGPF.Equal(decimal.NewFromInt(81720)))
	assert.True(t, got.TotalPrejudice.Equal(decimal.NewFromInt(124030)))
	assert.True(t, got.TotalReclame.Equal(decimal.NewFromInt(126030)))
	assert.True(t, got.CalculatedAt.Equal(at))
}

func TestSQLite_UpsertIsIdempotent(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()
	rec := testRecord(t, "2026-0042", 3, time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC))

	require.NoError(t, s.SaveCalculation(ctx, rec))
	first, err := s.GetCalculation(ctx, "2026-0042")
	require.NoError(t, err)

	require.NoError(t, s.SaveCalculation(ctx, rec))
	second, err := s.GetCalculation(ctx, "2026-0042")
	require.NoError(t, err)

	all, err := s.ListCalculations(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, first, second)
}

func TestSQLite_UpsertReplacesValues(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()
	at := time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)

	require.NoError(t, s.SaveCalculation(ctx, testRecord(t, "c1", 3, at)))
	require.NoError(t, s.SaveCalculation(ctx, testRecord(t, "c1", 4, at.Add(time.Hour))))

	got, err := s.GetCalculation(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, got.PretiumDoloris.Equal(decimal.NewFromInt(11500)))
	assert.True(t, got.CalculatedAt.Equal(at.Add(time.Hour)))
}

func TestSQLite_NotFound(t *testing.T) {
	s := openSQLite(t)

	_, err := s.GetCalculation(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSQLite_List(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.SaveCalculation(ctx, testRecord(t, id, 1, base.Add(time.Duration(i)*time.Hour))))
	}

	all, err := s.ListCalculations(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].CaseID, all[1].CaseID, all[2].CaseID})

	limited, err := s.ListCalculations(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSQLite_ListOrdersWithinTheSameSecond(t *testing.T) {
	s := openSQLite(t)
	ctx := context.Background()
	at := time.Date(2026, 4, 10, 10, 0, 5, 0, time.UTC)

	require.NoError(t, s.SaveCalculation(ctx, testRecord(t, "older", 1, at)))
	require.NoError(t, s.SaveCalculation(ctx, testRecord(t, "newer", 1, at.Add(500*time.Millisecond))))

	recs, err := s.ListCalculations(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "newer", recs[0].CaseID)
	assert.True(t, recs[0].CalculatedAt.Equal(at.Add(500*time.Millisecond)))
	assert.True(t, recs[1].CalculatedAt.Equal(at))
}

func TestSaveCalculation_RequiresCaseID(t *testing.T) {
	s := openSQLite(t)
	err := s.SaveCalculation(context.Background(), testRecord(t, "", 1, time.Now()))
	assert.Error(t, err)
}

func TestPostgres_Migrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS case_calculations \(\s+case_id TEXT PRIMARY KEY,\s+age_accident INTEGER NOT NULL,\s+dft_total NUMERIC NOT NULL`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_case_calculations_calculated_at`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, New(db, DriverPostgres).Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SaveCalculation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)
	rec := testRecord(t, "2026-0042", 3, at)

	args := []driver.Value{"2026-0042", 35}
	for i := 0; i < 16; i++ {
		args = append(args, sqlmock.AnyArg())
	}
	args = append(args, at)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO case_calculations (case_id, age_accident, dft_total")).
		WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, New(db, DriverPostgres).SaveCalculation(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SaveCalculationUsesNumberedPlaceholders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("VALUES ($1, $2, $3")+`.*\$19\) ON CONFLICT \(case_id\) DO UPDATE SET age_accident = excluded\.age_accident`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, New(db, DriverPostgres).SaveCalculation(context.Background(), testRecord(t, "c1", 1, time.Now())))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SaveCalculationError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO case_calculations`).WillReturnError(errors.New("connection reset"))

	err = New(db, DriverPostgres).SaveCalculation(context.Background(), testRecord(t, "c1", 1, time.Now()))
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func recordRow(mock sqlmock.Sqlmock, caseID string, at time.Time) *sqlmock.Rows {
	names, _ := (&domain.CaseRecord{}).Columns()
	cols := append(append([]string{"case_id"}, names...), "calculated_at")
	values := []driver.Value{caseID, int64(35)}
	for range names[1:] {
		values = append(values, []byte("1000.50"))
	}
	values = append(values, at)
	return mock.NewRows(cols).AddRow(values...)
}

func TestPostgres_GetCalculation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM case_calculations WHERE case_id = $1")).
		WithArgs("2026-0042").
		WillReturnRows(recordRow(mock, "2026-0042", at))

	rec, err := New(db, DriverPostgres).GetCalculation(context.Background(), "2026-0042")
	require.NoError(t, err)
	assert.Equal(t, "2026-0042", rec.CaseID)
	assert.Equal(t, 35, rec.AgeAccident)
	assert.Equal(t, "1000.5", rec.TotalReclame.String())
	assert.True(t, rec.CalculatedAt.Equal(at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetCalculationNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	names, _ := (&domain.CaseRecord{}).Columns()
	mock.ExpectQuery(`SELECT .* FROM case_calculations`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(append([]string{"case_id"}, names...)))

	_, err = New(db, DriverPostgres).GetCalculation(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListCalculations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY calculated_at DESC, case_id LIMIT $1")).
		WithArgs(5).
		WillReturnRows(recordRow(mock, "c1", at))

	recs, err := New(db, DriverPostgres).ListCalculations(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "c1", recs[0].CaseID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeScanner(t *testing.T) {
	var got time.Time
	ts := timeScanner{&got}

	require.NoError(t, ts.Scan("2026-04-10T09:30:00Z"))
	assert.Equal(t, 2026, got.Year())

	require.NoError(t, ts.Scan([]byte("2026-05-01T00:00:00+02:00")))
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 30, got.Day())

	assert.Error(t, ts.Scan("yesterday"))
	assert.Error(t, ts.Scan(42))
}
