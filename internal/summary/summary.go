// Package summary renders stop records and predictions as one-line sentences.
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/securecheck/securecheck-webserver/internal/models"
)

// VehicleNumberMask replaces a missing vehicle number.
const VehicleNumberMask = "****"

// MaskVehicleNumber returns the vehicle number, or VehicleNumberMask when it is NULL or blank.
func MaskVehicleNumber(vehicleNumber *string) string {
	if vehicleNumber == nil || strings.TrimSpace(*vehicleNumber) == "" {
		return VehicleNumberMask
	}
	return *vehicleNumber
}

// StopRecord renders a matched lookup record.
func StopRecord(record *models.StopRecord) string {
	return fmt.Sprintf(
		"On %s at %s, %s belonging to the %s race in %s was stopped for %s. Vehicle Number: %s",
		record.StopDate,
		record.StopTime,
		driverPhrase(record.DriverAge, record.DriverGender),
		record.DriverRace,
		record.CountryName,
		record.Violation,
		MaskVehicleNumber(record.VehicleNumber),
	)
}

// Prediction renders the exact-match prediction for a submitted stop.
func Prediction(req *models.PredictionRequest, outcome *models.StopOutcome) string {
	var age *int64
	if req.DriverAge > 0 {
		a := int64(req.DriverAge)
		age = &a
	}

	// Only an explicit "No" rules a search out; blank or unrecognised answers read as conducted.
	searchText := fmt.Sprintf("A search was conducted (%s)", strings.TrimSpace(req.SearchType))
	if conducted := models.ParseYesNo(req.SearchConducted); conducted != nil && !*conducted {
		searchText = "No search was conducted"
	}

	drugText := "not drug-related"
	if drugs := models.ParseYesNo(req.DrugsRelatedStop); drugs != nil && *drugs {
		drugText = "drug-related"
	}

	phrase := driverPhrase(age, req.DriverGender)
	return fmt.Sprintf(
		"%s was stopped for %s at %s. %s, and received a %s. The stop lasted %s and was %s.",
		strings.ToUpper(phrase[:1])+phrase[1:],
		outcome.Violation,
		ClockTime(req.StopTime),
		searchText,
		outcome.StopOutcome,
		req.StopDuration,
		drugText,
	)
}

var clockLayouts = []string{time.TimeOnly, "15:04", "3:04 PM", "03:04 PM", time.Kitchen}

// ClockTime formats a time of day as "03:04 PM". Values that do not parse are returned trimmed.
func ClockTime(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "an unspecified time"
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("03:04 PM")
		}
	}
	return value
}

func driverPhrase(age *int64, gender string) string {
	if age == nil {
		return fmt.Sprintf("a %s driver of unknown age", gender)
	}
	return fmt.Sprintf("a %d-year-old %s driver", *age, gender)
}
