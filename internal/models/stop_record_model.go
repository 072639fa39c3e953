package models

// StopRecord is one row of the traffic stop table. Nullable columns are
// pointers; booleans are stored as 0/1 in the table.
type StopRecord struct {
	StopDate         string  `json:"stop_date"`
	StopTime         string  `json:"stop_time"`
	CountryName      string  `json:"country_name"`
	DriverGender     string  `json:"driver_gender"`
	DriverAge        *int64  `json:"driver_age"`
	DriverRace       string  `json:"driver_race"`
	Violation        string  `json:"violation"`
	SearchConducted  bool    `json:"search_conducted"`
	SearchType       *string `json:"search_type"`
	StopOutcome      string  `json:"stop_outcome"`
	IsArrested       bool    `json:"is_arrested"`
	StopDuration     string  `json:"stop_duration"`
	DrugsRelatedStop bool    `json:"drugs_related_stop"`
	VehicleNumber    *string `json:"vehicle_number"`
}

// StopRecordColumns lists the table columns in the order a StopRecord is scanned.
var StopRecordColumns = []string{
	"stop_date",
	"stop_time",
	"country_name",
	"driver_gender",
	"driver_age",
	"driver_race",
	"violation",
	"search_conducted",
	"search_type",
	"stop_outcome",
	"is_arrested",
	"stop_duration",
	"drugs_related_stop",
	"vehicle_number",
}

// Values the catalog queries and the lookup form depend on.
const (
	OutcomeArrest = "Arrest"

	DurationShort  = "0-15 Min"
	DurationMedium = "16-30 Min"
	DurationLong   = "30+ Min"

	GenderMale   = "M"
	GenderFemale = "F"
)

// QueryResult is a table of stringified values, as rendered for catalog queries and previews.
type QueryResult struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type ViolationCount struct {
	Violation string `json:"violation"`
	Count     int64  `json:"count"`
}

// CatalogQueryResult is the table returned for one catalog question.
type CatalogQueryResult struct {
	Label string `json:"label"`
	QueryResult
}
