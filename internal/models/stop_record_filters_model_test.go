package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVehicleNumbers(t *testing.T) {
	tests := map[string][]string{
		"AB1, , CD2":   {"AB1", "CD2"},
		"AB1":          {"AB1"},
		"  AB1  ,CD2 ": {"AB1", "CD2"},
		"":             {},
		" , ,":         {},
	}
	for raw, want := range tests {
		assert.Equal(t, want, ParseVehicleNumbers(raw), "input %q", raw)
	}
}

func TestParseYesNo(t *testing.T) {
	yes := []string{"Yes", "yes", "Y", " y ", "true", "1"}
	for _, raw := range yes {
		got := ParseYesNo(raw)
		require.NotNil(t, got, raw)
		assert.True(t, *got, raw)
	}

	no := []string{"No", "n", "false", "0"}
	for _, raw := range no {
		got := ParseYesNo(raw)
		require.NotNil(t, got, raw)
		assert.False(t, *got, raw)
	}

	for _, raw := range []string{"", "  ", "maybe"} {
		assert.Nil(t, ParseYesNo(raw), raw)
	}
}

func TestStopLookupForm_Filters(t *testing.T) {
	age := 30
	form := &StopLookupForm{
		StopDate:         " 2020-01-05 ",
		CountryName:      "India",
		DriverAge:        &age,
		SearchConducted:  "Yes",
		DrugsRelatedStop: "No",
		StopDuration:     "  ",
		VehicleNumber:    "AB1, , CD2",
	}

	filters, notices := form.Filters()
	assert.Empty(t, notices)
	require.NotNil(t, filters.StopDate)
	assert.Equal(t, "2020-01-05", *filters.StopDate)
	assert.Nil(t, filters.StopTime)
	assert.Equal(t, "India", *filters.CountryName)
	assert.Equal(t, 30, *filters.DriverAge)
	assert.True(t, *filters.SearchConducted)
	assert.False(t, *filters.DrugsRelatedStop)
	assert.Nil(t, filters.StopDuration)
	assert.Equal(t, []string{"AB1", "CD2"}, filters.VehicleNumbers)
	assert.False(t, filters.IsEmpty())
}

func TestStopLookupForm_FiltersAgeZero(t *testing.T) {
	zero := 0
	filters, notices := (&StopLookupForm{DriverAge: &zero}).Filters()
	assert.Nil(t, filters.DriverAge)
	assert.Equal(t, []string{NoticeAgeZeroIgnored}, notices)
	assert.True(t, filters.IsEmpty())
}

func TestStopLookupForm_FiltersBlank(t *testing.T) {
	filters, notices := (&StopLookupForm{}).Filters()
	assert.Empty(t, notices)
	assert.True(t, filters.IsEmpty())
}
