package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/securecheck/securecheck-webserver/internal/database/query"
	"github.com/securecheck/securecheck-webserver/internal/models"
)

const DefaultTrafficTable string = "traffic_project"

// ErrNoMatch is returned when a lookup query succeeds but returns no row.
var ErrNoMatch = errors.New("no record matched")

// StopRecordRepository contains the methods any db implementation needs to implement to read stop records
type StopRecordRepository interface {
	GetWithStopFilters(ctx context.Context, where query.Predicate) (*models.StopRecord, error)
	GetOutcomeFromVehicleNumber(ctx context.Context, vehicleNumber string) (*models.StopOutcome, error)
	Preview(ctx context.Context, limit int) (*models.QueryResult, error)
	Count(ctx context.Context) (int64, error)
	ViolationCounts(ctx context.Context, sampleSize int) ([]models.ViolationCount, error)
}

// SQLStopRecordRepository reads stop records through database/sql. It works with any
// driver that accepts "?" placeholders (MySQL, SQLite).
type SQLStopRecordRepository struct {
	db    *sql.DB
	table string
}

// NewSQLStopRecordRepository creates a repository over table. An empty table name
// falls back to DefaultTrafficTable.
func NewSQLStopRecordRepository(db *sql.DB, table string) (*SQLStopRecordRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("could not create stop record repository: nil database handle")
	}
	if table == "" {
		table = DefaultTrafficTable
	}

	return &SQLStopRecordRepository{
		db:    db,
		table: table,
	}, nil
}

// Table returns the table the repository reads from.
func (repo *SQLStopRecordRepository) Table() string {
	return repo.table
}

// GetWithStopFilters returns the first stop record matching where. A nil predicate
// matches any row. Returns ErrNoMatch when nothing matches.
func (repo *SQLStopRecordRepository) GetWithStopFilters(ctx context.Context, where query.Predicate) (*models.StopRecord, error) {
	stmt, args, err := query.NewSelect(repo.table).
		Columns(models.StopRecordColumns...).
		Where(where).
		Limit(1).
		Build()
	if err != nil {
		return nil, fmt.Errorf("could not build stop record lookup: %w", err)
	}

	row := newStopRecordRow()
	err = repo.db.QueryRowContext(ctx, stmt, args...).Scan(row.targets()...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoMatch
	}
	if err != nil {
		return nil, fmt.Errorf("could not find stop record with filters %v: %w", args, err)
	}

	return row.model(), nil
}

// GetOutcomeFromVehicleNumber returns the violation and outcome of the first record
// for an exact vehicle number.
func (repo *SQLStopRecordRepository) GetOutcomeFromVehicleNumber(ctx context.Context, vehicleNumber string) (*models.StopOutcome, error) {
	stmt, args, err := query.NewSelect(repo.table).
		Columns("violation", "stop_outcome").
		Where(query.Eq("vehicle_number", vehicleNumber)).
		Limit(1).
		Build()
	if err != nil {
		return nil, fmt.Errorf("could not build vehicle number lookup: %w", err)
	}

	var violation, outcome nullText
	err = repo.db.QueryRowContext(ctx, stmt, args...).Scan(&violation, &outcome)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoMatch
	}
	if err != nil {
		return nil, fmt.Errorf("could not find vehicle number %q: %w", vehicleNumber, err)
	}

	return &models.StopOutcome{
		Violation:   violation.String,
		StopOutcome: outcome.String,
	}, nil
}

// Preview returns the first limit rows of the table with every column as text.
func (repo *SQLStopRecordRepository) Preview(ctx context.Context, limit int) (*models.QueryResult, error) {
	stmt, args, err := query.NewSelect(repo.table).Limit(limit).Build()
	if err != nil {
		return nil, fmt.Errorf("could not build preview: %w", err)
	}

	rows, err := repo.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("could not preview %s: %w", repo.table, err)
	}
	defer rows.Close()

	return scanQueryResult(rows)
}

// Count returns the number of rows in the table.
func (repo *SQLStopRecordRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	stmt := fmt.Sprintf("SELECT COUNT(*) AS total_rows FROM %s", repo.table)
	if err := repo.db.QueryRowContext(ctx, stmt).Scan(&total); err != nil {
		return 0, fmt.Errorf("could not count rows in %s: %w", repo.table, err)
	}
	return total, nil
}

// ViolationCounts counts violations over the first sampleSize rows of the table,
// the same rows Preview returns, most frequent first.
func (repo *SQLStopRecordRepository) ViolationCounts(ctx context.Context, sampleSize int) ([]models.ViolationCount, error) {
	if sampleSize <= 0 {
		return nil, fmt.Errorf("sample size must be positive, got %d", sampleSize)
	}

	stmt := fmt.Sprintf(`
		SELECT violation, COUNT(*) AS violation_count
		FROM (SELECT violation FROM %s LIMIT %d) AS preview
		GROUP BY violation
		ORDER BY violation_count DESC, violation`, repo.table, sampleSize)

	rows, err := repo.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("could not count violations in %s: %w", repo.table, err)
	}
	defer rows.Close()

	counts := make([]models.ViolationCount, 0)
	for rows.Next() {
		var violation nullText
		var count int64
		if err := rows.Scan(&violation, &count); err != nil {
			return nil, fmt.Errorf("could not scan violation count: %w", err)
		}
		counts = append(counts, models.ViolationCount{Violation: violation.String, Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read violation counts: %w", err)
	}

	return counts, nil
}
