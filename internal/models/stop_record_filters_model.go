package models

import (
	"strconv"
	"strings"
)

// StopRecordFilters contains all the possible ways to filter a stop record lookup.
// A nil field imposes no constraint.
type StopRecordFilters struct {
	StopDate         *string
	StopTime         *string
	CountryName      *string
	DriverGender     *string
	DriverAge        *int
	DriverRace       *string
	SearchConducted  *bool
	SearchType       *string
	StopDuration     *string
	DrugsRelatedStop *bool
	VehicleNumbers   []string
}

// IsEmpty reports whether no filter is set.
func (f *StopRecordFilters) IsEmpty() bool {
	return f.StopDate == nil && f.StopTime == nil && f.CountryName == nil &&
		f.DriverGender == nil && f.DriverAge == nil && f.DriverRace == nil &&
		f.SearchConducted == nil && f.SearchType == nil && f.StopDuration == nil &&
		f.DrugsRelatedStop == nil && len(f.VehicleNumbers) == 0
}

// StopLookupForm holds the raw lookup form inputs. Every field may be left blank.
type StopLookupForm struct {
	StopDate         string `json:"stop_date"`
	StopTime         string `json:"stop_time"`
	CountryName      string `json:"country_name"`
	DriverGender     string `json:"driver_gender"`
	DriverAge        *int   `json:"driver_age"`
	DriverRace       string `json:"driver_race"`
	SearchConducted  string `json:"search_conducted"`
	SearchType       string `json:"search_type"`
	StopDuration     string `json:"stop_duration"`
	DrugsRelatedStop string `json:"drugs_related_stop"`
	VehicleNumber    string `json:"vehicle_number"`
}

// NoticeAgeZeroIgnored is attached to a lookup when a driver age of 0 was submitted.
// The form uses 0 as its "unset" value, so an actual age of 0 cannot be searched for.
const NoticeAgeZeroIgnored = "driver age 0 is treated as unset and was not used as a filter"

// Filters converts the form into StopRecordFilters. Blank strings and a zero age are
// treated as absent; a nil age was never submitted. The returned notices describe
// inputs that were dropped that way but a caller may have meant literally.
func (form *StopLookupForm) Filters() (*StopRecordFilters, []string) {
	filters := &StopRecordFilters{}
	notices := []string{}

	filters.StopDate = optionalString(form.StopDate)
	filters.StopTime = optionalString(form.StopTime)
	filters.CountryName = optionalString(form.CountryName)
	filters.DriverGender = optionalString(form.DriverGender)
	filters.DriverRace = optionalString(form.DriverRace)
	filters.SearchType = optionalString(form.SearchType)
	filters.StopDuration = optionalString(form.StopDuration)
	filters.SearchConducted = ParseYesNo(form.SearchConducted)
	filters.DrugsRelatedStop = ParseYesNo(form.DrugsRelatedStop)
	filters.VehicleNumbers = ParseVehicleNumbers(form.VehicleNumber)

	if form.DriverAge != nil {
		if *form.DriverAge == 0 {
			notices = append(notices, NoticeAgeZeroIgnored)
		} else {
			age := *form.DriverAge
			filters.DriverAge = &age
		}
	}

	return filters, notices
}

// ParseVehicleNumbers splits a comma separated list, trims each entry and drops empty ones.
func ParseVehicleNumbers(raw string) []string {
	vehicleNumbers := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			vehicleNumbers = append(vehicleNumbers, trimmed)
		}
	}
	return vehicleNumbers
}

// ParseYesNo reads the form's Yes/No vocabulary as well as the usual boolean spellings.
// Anything else, including a blank value, returns nil.
func ParseYesNo(raw string) *bool {
	value := strings.TrimSpace(raw)
	var b bool
	switch strings.ToLower(value) {
	case "yes", "y":
		b = true
	case "no", "n":
		b = false
	default:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return nil
		}
		b = parsed
	}
	return &b
}

func optionalString(raw string) *string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}
	return &value
}
