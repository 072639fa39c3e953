// Package testutil provides a seeded SQLite traffic store for tests.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/securecheck/securecheck-webserver/internal/models"
	_ "modernc.org/sqlite"
)

// TrafficTable is the table NewTestStore creates.
const TrafficTable = "traffic_project"

const createTrafficTable = `
CREATE TABLE traffic_project (
	stop_date          TEXT,
	stop_time          TEXT,
	country_name       TEXT,
	driver_gender      TEXT,
	driver_age         INTEGER,
	driver_race        TEXT,
	violation          TEXT,
	search_conducted   INTEGER,
	search_type        TEXT,
	stop_outcome       TEXT,
	is_arrested        INTEGER,
	stop_duration      TEXT,
	drugs_related_stop INTEGER,
	vehicle_number     TEXT
)`

// StopFixture is one row inserted by SeedStops. Nil pointers become NULL.
type StopFixture struct {
	StopDate         string
	StopTime         string
	CountryName      string
	DriverGender     string
	DriverAge        *int
	DriverRace       string
	Violation        string
	SearchConducted  bool
	SearchType       *string
	StopOutcome      string
	IsArrested       bool
	StopDuration     string
	DrugsRelatedStop bool
	VehicleNumber    *string
}

func Ptr[T any](v T) *T {
	return &v
}

// DefaultStops is the fixture set loaded by NewTestStore, in insertion order.
// No row is both India and F.
var DefaultStops = []StopFixture{
	{"2020-01-05", "10:00:00", "India", models.GenderMale, Ptr(25), "Asian", "Speeding", false, nil, "Warning", false, models.DurationShort, false, Ptr("AB1")},
	{"2020-01-06", "11:30:00", "USA", models.GenderFemale, Ptr(40), "White", "DUI", true, Ptr("Frisk"), models.OutcomeArrest, true, models.DurationMedium, true, Ptr("CD2")},
	{"2020-02-10", "23:15:00", "Canada", models.GenderMale, Ptr(19), "Black", "Seatbelt", false, nil, "Citation", false, models.DurationLong, false, nil},
	{"2020-03-01", "02:45:00", "India", models.GenderMale, Ptr(33), "Hispanic", "Speeding", true, Ptr("Vehicle Search"), models.OutcomeArrest, true, models.DurationMedium, true, Ptr("")},
	{"2020-03-02", "14:00:00", "USA", models.GenderFemale, Ptr(52), "Asian", "Equipment", false, nil, "Warning", false, models.DurationShort, false, Ptr("EF3")},
}

// NewTestStore creates a file-backed SQLite database in a temp dir containing the
// traffic table seeded with DefaultStops. It is closed when the test completes.
func NewTestStore(t *testing.T) *sql.DB {
	t.Helper()
	db := NewEmptyTestStore(t)
	SeedStops(t, db, DefaultStops...)
	return db
}

// NewTestStoreFile creates a seeded database like NewTestStore and returns the path
// of its file, for code that opens the store itself.
func NewTestStoreFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "traffic.db")
	db := openTestStore(t, path)
	SeedStops(t, db, DefaultStops...)
	return path
}

// NewEmptyTestStore creates the traffic table without rows.
func NewEmptyTestStore(t *testing.T) *sql.DB {
	t.Helper()
	return openTestStore(t, filepath.Join(t.TempDir(), "traffic.db"))
}

func openTestStore(t *testing.T, path string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	ctx, cancel := NewTestContext()
	defer cancel()

	if _, err := db.ExecContext(ctx, createTrafficTable); err != nil {
		t.Fatalf("failed to create traffic table: %v", err)
	}

	return db
}

// SeedStops inserts stops into the traffic table.
func SeedStops(t *testing.T, db *sql.DB, stops ...StopFixture) {
	t.Helper()

	ctx, cancel := NewTestContext()
	defer cancel()

	const insert = `INSERT INTO traffic_project VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, s := range stops {
		_, err := db.ExecContext(ctx, insert,
			s.StopDate, s.StopTime, s.CountryName, s.DriverGender, s.DriverAge, s.DriverRace,
			s.Violation, s.SearchConducted, s.SearchType, s.StopOutcome, s.IsArrested,
			s.StopDuration, s.DrugsRelatedStop, s.VehicleNumber,
		)
		if err != nil {
			t.Fatalf("failed to seed stop %+v: %v", s, err)
		}
	}
}

// NewTestContext creates a test context with a 30-second timeout.
func NewTestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
