package models

const (
	LookupStatusFound                = "found"
	LookupStatusNoMatch              = "no_match"
	LookupStatusMissingVehicleNumber = "missing_vehicle_number"
)

// LookupResult is the outcome of a filter lookup. A lookup that matches nothing is
// reported with LookupStatusNoMatch and a nil Record, not as an error.
type LookupResult struct {
	Status  string      `json:"status"`
	Record  *StopRecord `json:"record,omitempty"`
	Summary string      `json:"summary,omitempty"`
	Notices []string    `json:"notices,omitempty"`
}

// PredictionRequest describes a new stop. Only VehicleNumber is used to find the
// matching record; the other fields are echoed in the summary.
type PredictionRequest struct {
	VehicleNumber    string `json:"vehicle_number"`
	StopTime         string `json:"stop_time"`
	DriverAge        int    `json:"driver_age"`
	DriverGender     string `json:"driver_gender"`
	SearchConducted  string `json:"search_conducted"`
	SearchType       string `json:"search_type"`
	DrugsRelatedStop string `json:"drugs_related_stop"`
	StopDuration     string `json:"stop_duration"`
}

type PredictionResult struct {
	Status             string `json:"status"`
	PredictedViolation string `json:"predicted_violation,omitempty"`
	PredictedOutcome   string `json:"predicted_outcome,omitempty"`
	Summary            string `json:"summary,omitempty"`
}

// StopOutcome is the violation and outcome recorded for a stop.
type StopOutcome struct {
	Violation   string `json:"violation"`
	StopOutcome string `json:"stop_outcome"`
}
