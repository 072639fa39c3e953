package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/securecheck/securecheck-webserver/internal/database/query"
	"github.com/securecheck/securecheck-webserver/internal/database/repository"
	"github.com/securecheck/securecheck-webserver/internal/logging"
	"github.com/securecheck/securecheck-webserver/internal/models"
	"github.com/securecheck/securecheck-webserver/internal/summary"
)

const (
	DefaultPreviewLimit = 10
	MaxPreviewLimit     = 500
)

type StopRecordUseCase struct {
	stopRecordRepo repository.StopRecordRepository
}

func NewStopRecordUseCase(stopRecordRepo repository.StopRecordRepository) *StopRecordUseCase {
	return &StopRecordUseCase{
		stopRecordRepo: stopRecordRepo,
	}
}

// BuildLookupPredicate turns lookup filters into one predicate:
//
//	((stop_date OR stop_time) AND country AND gender AND ...) OR vehicle_number IN (...)
//
// Date and time are alternatives because stop time alone is rarely unique. The vehicle
// number list is OR'ed with the whole AND block, so a vehicle match alone satisfies the
// lookup. Returns nil when no filter is set.
func BuildLookupPredicate(filters *models.StopRecordFilters) query.Predicate {
	if filters == nil || filters.IsEmpty() {
		return nil
	}

	var dateTime []query.Predicate
	if filters.StopDate != nil {
		dateTime = append(dateTime, query.Eq("stop_date", *filters.StopDate))
	}
	if filters.StopTime != nil {
		dateTime = append(dateTime, query.Eq("stop_time", *filters.StopTime))
	}

	and := []query.Predicate{query.Or(dateTime...)}
	if filters.CountryName != nil {
		and = append(and, query.Eq("country_name", *filters.CountryName))
	}
	if filters.DriverGender != nil {
		and = append(and, query.Eq("driver_gender", *filters.DriverGender))
	}
	// Zero is the form's "unset" age, so it never becomes a filter.
	if filters.DriverAge != nil && *filters.DriverAge != 0 {
		and = append(and, query.Eq("driver_age", *filters.DriverAge))
	}
	if filters.DriverRace != nil {
		and = append(and, query.Eq("driver_race", *filters.DriverRace))
	}
	if filters.SearchConducted != nil {
		and = append(and, query.Eq("search_conducted", boolToInt(*filters.SearchConducted)))
	}
	if filters.SearchType != nil {
		and = append(and, query.Eq("search_type", *filters.SearchType))
	}
	if filters.StopDuration != nil {
		and = append(and, query.Eq("stop_duration", *filters.StopDuration))
	}
	if filters.DrugsRelatedStop != nil {
		and = append(and, query.Eq("drugs_related_stop", boolToInt(*filters.DrugsRelatedStop)))
	}

	vehicleNumbers := make([]interface{}, 0, len(filters.VehicleNumbers))
	for _, vn := range filters.VehicleNumbers {
		if trimmed := strings.TrimSpace(vn); trimmed != "" {
			vehicleNumbers = append(vehicleNumbers, trimmed)
		}
	}

	return query.Or(query.And(and...), query.In("vehicle_number", vehicleNumbers...))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// GetStopRecordByFilters returns the single record the filters select, or
// repository.ErrNoMatch.
func (uc *StopRecordUseCase) GetStopRecordByFilters(ctx context.Context, filters *models.StopRecordFilters) (*models.StopRecord, error) {
	where := BuildLookupPredicate(filters)

	whereSQL, args, err := query.Render(where)
	if err != nil {
		return nil, fmt.Errorf("could not render stop record filters: %w", err)
	}
	logging.GetLogger().Zerolog().Debug().
		Str("where", whereSQL).
		Interface("args", args).
		Msg("executing stop record lookup")

	return uc.stopRecordRepo.GetWithStopFilters(ctx, where)
}

// LookupStop runs the lookup form. A lookup that matches nothing is reported as
// LookupStatusNoMatch; only store failures are returned as errors.
func (uc *StopRecordUseCase) LookupStop(ctx context.Context, form *models.StopLookupForm) (*models.LookupResult, error) {
	filters, notices := form.Filters()

	record, err := uc.GetStopRecordByFilters(ctx, filters)
	if errors.Is(err, repository.ErrNoMatch) {
		return &models.LookupResult{
			Status:  models.LookupStatusNoMatch,
			Notices: notices,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return &models.LookupResult{
		Status:  models.LookupStatusFound,
		Record:  record,
		Summary: summary.StopRecord(record),
		Notices: notices,
	}, nil
}

// PredictOutcome echoes the violation and outcome of the first record with the
// submitted vehicle number.
func (uc *StopRecordUseCase) PredictOutcome(ctx context.Context, req *models.PredictionRequest) (*models.PredictionResult, error) {
	vehicleNumber := strings.TrimSpace(req.VehicleNumber)
	if vehicleNumber == "" {
		return &models.PredictionResult{Status: models.LookupStatusMissingVehicleNumber}, nil
	}

	outcome, err := uc.stopRecordRepo.GetOutcomeFromVehicleNumber(ctx, vehicleNumber)
	if errors.Is(err, repository.ErrNoMatch) {
		return &models.PredictionResult{Status: models.LookupStatusNoMatch}, nil
	}
	if err != nil {
		return nil, err
	}

	return &models.PredictionResult{
		Status:             models.LookupStatusFound,
		PredictedViolation: outcome.Violation,
		PredictedOutcome:   outcome.StopOutcome,
		Summary:            summary.Prediction(req, outcome),
	}, nil
}

// ClampPreviewLimit maps a requested row count onto [1, MaxPreviewLimit], using
// DefaultPreviewLimit for non-positive values.
func ClampPreviewLimit(limit int) int {
	if limit <= 0 {
		return DefaultPreviewLimit
	}
	if limit > MaxPreviewLimit {
		return MaxPreviewLimit
	}
	return limit
}

func (uc *StopRecordUseCase) Preview(ctx context.Context, limit int) (*models.QueryResult, error) {
	return uc.stopRecordRepo.Preview(ctx, ClampPreviewLimit(limit))
}

func (uc *StopRecordUseCase) Count(ctx context.Context) (int64, error) {
	return uc.stopRecordRepo.Count(ctx)
}

// ViolationCounts counts violations over the preview sample of the given size.
func (uc *StopRecordUseCase) ViolationCounts(ctx context.Context, sampleSize int) ([]models.ViolationCount, error) {
	counts, err := uc.stopRecordRepo.ViolationCounts(ctx, ClampPreviewLimit(sampleSize))
	if err != nil {
		return nil, fmt.Errorf("could not load violation counts: %w", err)
	}
	return counts, nil
}
