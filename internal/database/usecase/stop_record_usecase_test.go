package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/securecheck/securecheck-webserver/internal/database/query"
	"github.com/securecheck/securecheck-webserver/internal/database/repository"
	"github.com/securecheck/securecheck-webserver/internal/models"
	"github.com/securecheck/securecheck-webserver/internal/summary"
	"github.com/securecheck/securecheck-webserver/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStopRecordRepository records the calls it receives.
type fakeStopRecordRepository struct {
	record  *models.StopRecord
	outcome *models.StopOutcome
	err     error

	lookups        int
	outcomeLookups int
	previewLimit   int
}

func (f *fakeStopRecordRepository) GetWithStopFilters(_ context.Context, _ query.Predicate) (*models.StopRecord, error) {
	f.lookups++
	return f.record, f.err
}

func (f *fakeStopRecordRepository) GetOutcomeFromVehicleNumber(_ context.Context, _ string) (*models.StopOutcome, error) {
	f.outcomeLookups++
	return f.outcome, f.err
}

func (f *fakeStopRecordRepository) Preview(_ context.Context, limit int) (*models.QueryResult, error) {
	f.previewLimit = limit
	return &models.QueryResult{}, f.err
}

func (f *fakeStopRecordRepository) Count(_ context.Context) (int64, error) {
	return 0, f.err
}

func (f *fakeStopRecordRepository) ViolationCounts(_ context.Context, _ int) ([]models.ViolationCount, error) {
	return nil, f.err
}

func newSQLStopRecordUseCase(t *testing.T) *StopRecordUseCase {
	t.Helper()
	repo, err := repository.NewSQLStopRecordRepository(testutil.NewTestStore(t), testutil.TrafficTable)
	require.NoError(t, err)
	return NewStopRecordUseCase(repo)
}

func TestBuildLookupPredicate(t *testing.T) {
	tests := []struct {
		name     string
		filters  *models.StopRecordFilters
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:    "nil filters",
			filters: nil,
		},
		{
			name:    "no filters",
			filters: &models.StopRecordFilters{},
		},
		{
			name:     "vehicle numbers only",
			filters:  &models.StopRecordFilters{VehicleNumbers: []string{"AB1", "CD2"}},
			wantSQL:  "vehicle_number IN (?,?)",
			wantArgs: []interface{}{"AB1", "CD2"},
		},
		{
			name:     "date only",
			filters:  &models.StopRecordFilters{StopDate: testutil.Ptr("2020-01-05")},
			wantSQL:  "stop_date = ?",
			wantArgs: []interface{}{"2020-01-05"},
		},
		{
			name: "date or time",
			filters: &models.StopRecordFilters{
				StopDate: testutil.Ptr("2020-01-05"),
				StopTime: testutil.Ptr("10:00:00"),
			},
			wantSQL:  "(stop_date = ? OR stop_time = ?)",
			wantArgs: []interface{}{"2020-01-05", "10:00:00"},
		},
		{
			name: "date or time grouped inside the and block",
			filters: &models.StopRecordFilters{
				StopDate:    testutil.Ptr("2020-01-05"),
				StopTime:    testutil.Ptr("10:00:00"),
				CountryName: testutil.Ptr("India"),
			},
			wantSQL:  "((stop_date = ? OR stop_time = ?) AND country_name = ?)",
			wantArgs: []interface{}{"2020-01-05", "10:00:00", "India"},
		},
		{
			name: "booleans bound as integers",
			filters: &models.StopRecordFilters{
				SearchConducted:  testutil.Ptr(true),
				DrugsRelatedStop: testutil.Ptr(false),
			},
			wantSQL:  "(search_conducted = ? AND drugs_related_stop = ?)",
			wantArgs: []interface{}{1, 0},
		},
		{
			name:    "age zero dropped",
			filters: &models.StopRecordFilters{DriverAge: testutil.Ptr(0)},
		},
		{
			name: "and block or vehicle numbers",
			filters: &models.StopRecordFilters{
				CountryName:    testutil.Ptr("India"),
				DriverGender:   testutil.Ptr("F"),
				DriverAge:      testutil.Ptr(30),
				VehicleNumbers: []string{"AB1"},
			},
			wantSQL:  "((country_name = ? AND driver_gender = ? AND driver_age = ?) OR vehicle_number IN (?))",
			wantArgs: []interface{}{"India", "F", 30, "AB1"},
		},
		{
			name: "every field",
			filters: &models.StopRecordFilters{
				StopDate:         testutil.Ptr("2020-01-05"),
				StopTime:         testutil.Ptr("10:00:00"),
				CountryName:      testutil.Ptr("India"),
				DriverGender:     testutil.Ptr("M"),
				DriverAge:        testutil.Ptr(25),
				DriverRace:       testutil.Ptr("Asian"),
				SearchConducted:  testutil.Ptr(false),
				SearchType:       testutil.Ptr("Frisk"),
				StopDuration:     testutil.Ptr("0-15 Min"),
				DrugsRelatedStop: testutil.Ptr(true),
				VehicleNumbers:   []string{"AB1", "CD2"},
			},
			wantSQL: "(((stop_date = ? OR stop_time = ?) AND country_name = ? AND driver_gender = ? AND driver_age = ? AND driver_race = ? AND search_conducted = ? AND search_type = ? AND stop_duration = ? AND drugs_related_stop = ?) OR vehicle_number IN (?,?))",
			wantArgs: []interface{}{
				"2020-01-05", "10:00:00", "India", "M", 25, "Asian", 0, "Frisk", "0-15 Min", 1, "AB1", "CD2",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := query.Render(BuildLookupPredicate(tt.filters))
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestLookupStop_VehicleNumbersOnly(t *testing.T) {
	uc := newSQLStopRecordUseCase(t)

	result, err := uc.LookupStop(context.Background(), &models.StopLookupForm{VehicleNumber: "AB1, , CD2"})
	require.NoError(t, err)
	require.Equal(t, models.LookupStatusFound, result.Status)
	require.NotNil(t, result.Record)
	require.NotNil(t, result.Record.VehicleNumber)
	assert.Contains(t, []string{"AB1", "CD2"}, *result.Record.VehicleNumber)
}

func TestLookupStop_DateOnly(t *testing.T) {
	uc := newSQLStopRecordUseCase(t)

	result, err := uc.LookupStop(context.Background(), &models.StopLookupForm{StopDate: "2020-02-10"})
	require.NoError(t, err)
	require.Equal(t, models.LookupStatusFound, result.Status)
	assert.Equal(t, "2020-02-10", result.Record.StopDate)
	assert.Equal(t, "Seatbelt", result.Record.Violation)
}

func TestLookupStop_TimeOnly(t *testing.T) {
	uc := newSQLStopRecordUseCase(t)

	result, err := uc.LookupStop(context.Background(), &models.StopLookupForm{StopTime: "14:00:00"})
	require.NoError(t, err)
	require.Equal(t, models.LookupStatusFound, result.Status)
	assert.Equal(t, "Equipment", result.Record.Violation)
}

func TestLookupStop_VehicleNumberOverridesFailingFilters(t *testing.T) {
	uc := newSQLStopRecordUseCase(t)

	// No stored stop is both India and F, but CD2 alone satisfies the lookup.
	result, err := uc.LookupStop(context.Background(), &models.StopLookupForm{
		CountryName:   "India",
		DriverGender:  models.GenderFemale,
		VehicleNumber: "CD2",
	})
	require.NoError(t, err)
	require.Equal(t, models.LookupStatusFound, result.Status)
	require.NotNil(t, result.Record.VehicleNumber)
	assert.Equal(t, "CD2", *result.Record.VehicleNumber)
	assert.Equal(t, "USA", result.Record.CountryName)
}

func TestLookupStop_DateMatchesWhenTimeDoesNot(t *testing.T) {
	uc := newSQLStopRecordUseCase(t)

	// 10:00:00 belongs to an India stop, so only the date alternative can match USA.
	result, err := uc.LookupStop(context.Background(), &models.StopLookupForm{
		StopDate:    "2020-03-02",
		StopTime:    "10:00:00",
		CountryName: "USA",
	})
	require.NoError(t, err)
	require.Equal(t, models.LookupStatusFound, result.Status)
	assert.Equal(t, "2020-03-02", result.Record.StopDate)
	assert.Equal(t, "Equipment", result.Record.Violation)
}

func TestLookupStop_NoFiltersReturnsSomeRecord(t *testing.T) {
	uc := newSQLStopRecordUseCase(t)

	result, err := uc.LookupStop(context.Background(), &models.StopLookupForm{})
	require.NoError(t, err)
	require.Equal(t, models.LookupStatusFound, result.Status)
	assert.NotNil(t, result.Record)
	assert.NotEmpty(t, result.Summary)
}

func TestLookupStop_NoMatch(t *testing.T) {
	uc := newSQLStopRecordUseCase(t)

	result, err := uc.LookupStop(context.Background(), &models.StopLookupForm{
		CountryName:  "India",
		DriverGender: "F",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LookupStatusNoMatch, result.Status)
	assert.Nil(t, result.Record)
	assert.Empty(t, result.Summary)
}

func TestLookupStop_SummaryMasksMissingVehicleNumber(t *testing.T) {
	uc := newSQLStopRecordUseCase(t)

	tests := []struct {
		name string
		form *models.StopLookupForm
		want string
	}{
		{"null vehicle number", &models.StopLookupForm{StopDate: "2020-02-10"}, "Vehicle Number: " + summary.VehicleNumberMask},
		{"empty vehicle number", &models.StopLookupForm{StopDate: "2020-03-01"}, "Vehicle Number: " + summary.VehicleNumberMask},
		{"present vehicle number", &models.StopLookupForm{VehicleNumber: "CD2"}, "Vehicle Number: CD2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.LookupStop(context.Background(), tt.form)
			require.NoError(t, err)
			require.Equal(t, models.LookupStatusFound, result.Status)
			assert.True(t, strings.HasSuffix(result.Summary, tt.want), result.Summary)
		})
	}
}

func TestLookupStop_AgeZeroNotice(t *testing.T) {
	uc := newSQLStopRecordUseCase(t)

	result, err := uc.LookupStop(context.Background(), &models.StopLookupForm{
		CountryName: "Canada",
		DriverAge:   testutil.Ptr(0),
	})
	require.NoError(t, err)
	require.Equal(t, models.LookupStatusFound, result.Status)
	assert.Equal(t, []string{models.NoticeAgeZeroIgnored}, result.Notices)
	assert.Equal(t, "Canada", result.Record.CountryName)
}

func TestLookupStop_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	uc := NewStopRecordUseCase(&fakeStopRecordRepository{err: storeErr})

	_, err := uc.LookupStop(context.Background(), &models.StopLookupForm{})
	require.ErrorIs(t, err, storeErr)
}

func TestPredictOutcome_MissingVehicleNumber(t *testing.T) {
	repo := &fakeStopRecordRepository{}
	uc := NewStopRecordUseCase(repo)

	result, err := uc.PredictOutcome(context.Background(), &models.PredictionRequest{VehicleNumber: "   "})
	require.NoError(t, err)
	assert.Equal(t, models.LookupStatusMissingVehicleNumber, result.Status)
	assert.Zero(t, repo.outcomeLookups)
}

func TestPredictOutcome_Found(t *testing.T) {
	uc := newSQLStopRecordUseCase(t)

	result, err := uc.PredictOutcome(context.Background(), &models.PredictionRequest{
		VehicleNumber:    " CD2 ",
		StopTime:         "15:04",
		DriverAge:        27,
		DriverGender:     "F",
		SearchConducted:  "Yes",
		DrugsRelatedStop: "No",
		StopDuration:     "16-30 Min",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LookupStatusFound, result.Status)
	assert.Equal(t, "DUI", result.PredictedViolation)
	assert.Equal(t, "Arrest", result.PredictedOutcome)
	assert.Contains(t, result.Summary, "DUI")
	assert.Contains(t, result.Summary, "Arrest")
}

func TestPredictOutcome_NoMatch(t *testing.T) {
	uc := newSQLStopRecordUseCase(t)

	result, err := uc.PredictOutcome(context.Background(), &models.PredictionRequest{VehicleNumber: "ZZ9"})
	require.NoError(t, err)
	assert.Equal(t, models.LookupStatusNoMatch, result.Status)
	assert.Empty(t, result.PredictedViolation)
}

func TestClampPreviewLimit(t *testing.T) {
	assert.Equal(t, DefaultPreviewLimit, ClampPreviewLimit(0))
	assert.Equal(t, DefaultPreviewLimit, ClampPreviewLimit(-5))
	assert.Equal(t, 1, ClampPreviewLimit(1))
	assert.Equal(t, 42, ClampPreviewLimit(42))
	assert.Equal(t, MaxPreviewLimit, ClampPreviewLimit(MaxPreviewLimit+1))
}

func TestPreview_ClampsLimit(t *testing.T) {
	repo := &fakeStopRecordRepository{}
	uc := NewStopRecordUseCase(repo)

	_, err := uc.Preview(context.Background(), 10_000)
	require.NoError(t, err)
	assert.Equal(t, MaxPreviewLimit, repo.previewLimit)
}

func TestPreviewCountAndViolations(t *testing.T) {
	uc := newSQLStopRecordUseCase(t)
	ctx := context.Background()

	preview, err := uc.Preview(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, preview.Rows, 2)

	total, err := uc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(testutil.DefaultStops)), total)

	counts, err := uc.ViolationCounts(ctx, 0)
	require.NoError(t, err)
	require.NotEmpty(t, counts)
	assert.Equal(t, models.ViolationCount{Violation: "Speeding", Count: 2}, counts[0])
}
