package repository

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/securecheck/securecheck-webserver/internal/models"
)

// NullText is how SQL NULL is rendered in a QueryResult.
const NullText = "NULL"

// FormatValue renders a driver value as text. Drivers hand back []byte for most
// MySQL columns and native Go types for SQLite, so both are handled.
func FormatValue(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return NullText
	case []byte:
		return string(value)
	case string:
		return value
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		if value {
			return "1"
		}
		return "0"
	case time.Time:
		if value.Hour() == 0 && value.Minute() == 0 && value.Second() == 0 && value.Nanosecond() == 0 {
			return value.Format(time.DateOnly)
		}
		return value.Format(time.DateTime)
	default:
		return fmt.Sprint(value)
	}
}

// nullText scans any column into text, keeping track of NULL.
type nullText struct {
	String string
	Valid  bool
	layout string
}

func (n *nullText) Scan(src interface{}) error {
	if src == nil {
		n.String, n.Valid = "", false
		return nil
	}
	n.Valid = true
	if t, ok := src.(time.Time); ok && n.layout != "" {
		n.String = t.Format(n.layout)
		return nil
	}
	n.String = FormatValue(src)
	return nil
}

func (n *nullText) ptr() *string {
	if !n.Valid {
		return nil
	}
	s := n.String
	return &s
}

// stopRecordRow holds the scan targets for one models.StopRecord, in
// models.StopRecordColumns order.
type stopRecordRow struct {
	stopDate         nullText
	stopTime         nullText
	countryName      nullText
	driverGender     nullText
	driverAge        sql.NullInt64
	driverRace       nullText
	violation        nullText
	searchConducted  sql.NullBool
	searchType       nullText
	stopOutcome      nullText
	isArrested       sql.NullBool
	stopDuration     nullText
	drugsRelatedStop sql.NullBool
	vehicleNumber    nullText
}

func newStopRecordRow() *stopRecordRow {
	return &stopRecordRow{
		stopDate: nullText{layout: time.DateOnly},
		stopTime: nullText{layout: time.TimeOnly},
	}
}

func (r *stopRecordRow) targets() []interface{} {
	return []interface{}{
		&r.stopDate,
		&r.stopTime,
		&r.countryName,
		&r.driverGender,
		&r.driverAge,
		&r.driverRace,
		&r.violation,
		&r.searchConducted,
		&r.searchType,
		&r.stopOutcome,
		&r.isArrested,
		&r.stopDuration,
		&r.drugsRelatedStop,
		&r.vehicleNumber,
	}
}

func (r *stopRecordRow) model() *models.StopRecord {
	record := &models.StopRecord{
		StopDate:         r.stopDate.String,
		StopTime:         r.stopTime.String,
		CountryName:      r.countryName.String,
		DriverGender:     r.driverGender.String,
		DriverRace:       r.driverRace.String,
		Violation:        r.violation.String,
		SearchConducted:  r.searchConducted.Bool,
		SearchType:       r.searchType.ptr(),
		StopOutcome:      r.stopOutcome.String,
		IsArrested:       r.isArrested.Bool,
		StopDuration:     r.stopDuration.String,
		DrugsRelatedStop: r.drugsRelatedStop.Bool,
		VehicleNumber:    r.vehicleNumber.ptr(),
	}
	if r.driverAge.Valid {
		age := r.driverAge.Int64
		record.DriverAge = &age
	}
	return record
}

// scanQueryResult reads every remaining row, rendering each column as text.
func scanQueryResult(rows *sql.Rows) (*models.QueryResult, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("could not read result columns: %w", err)
	}

	result := &models.QueryResult{
		Columns: columns,
		Rows:    make([][]string, 0),
	}

	values := make([]interface{}, len(columns))
	targets := make([]interface{}, len(columns))
	for i := range values {
		targets[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("could not scan result row: %w", err)
		}
		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = FormatValue(v)
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read result rows: %w", err)
	}

	return result, nil
}
