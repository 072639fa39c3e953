package main

import (
	"fmt"

	"github.com/securecheck/securecheck-webserver/internal/models"
	"github.com/spf13/cobra"
)

var (
	genderHelp   = fmt.Sprintf("driver gender (%s or %s)", models.GenderMale, models.GenderFemale)
	durationHelp = fmt.Sprintf("stop duration (%s, %s, %s)", models.DurationShort, models.DurationMedium, models.DurationLong)
)

func newLookupCmd(a *app) *cobra.Command {
	form := models.StopLookupForm{}
	var age int

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Find one stop record matching the given filters and describe it",
		Long: `lookup finds a single traffic stop. Stop date and stop time are alternatives,
the remaining filters must all match, and a vehicle number list matches on
its own:

  ((date OR time) AND country AND gender AND ...) OR vehicle_number IN (...)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("age") {
				form.DriverAge = &age
			}

			dbClient, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer dbClient.Disconnect()

			result, err := dbClient.StopRecordUseCase().LookupStop(cmd.Context(), &form)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, notice := range result.Notices {
				fmt.Fprintf(out, "Note: %s\n", notice)
			}
			if result.Status == models.LookupStatusNoMatch {
				fmt.Fprintln(out, "No record found for the given filters.")
				return nil
			}
			fmt.Fprintln(out, result.Summary)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&form.StopDate, "date", "", "stop date (YYYY-MM-DD)")
	flags.StringVar(&form.StopTime, "time", "", "stop time (HH:MM:SS)")
	flags.StringVar(&form.CountryName, "country", "", "country name")
	flags.StringVar(&form.DriverGender, "gender", "", genderHelp)
	flags.IntVar(&age, "age", 0, "driver age; 0 is ignored")
	flags.StringVar(&form.DriverRace, "race", "", "driver race")
	flags.StringVar(&form.SearchConducted, "search-conducted", "", "Yes or No")
	flags.StringVar(&form.SearchType, "search-type", "", "search type")
	flags.StringVar(&form.StopDuration, "duration", "", durationHelp)
	flags.StringVar(&form.DrugsRelatedStop, "drugs-related", "", "Yes or No")
	flags.StringVar(&form.VehicleNumber, "vehicle-number", "", "comma separated vehicle numbers")
	return cmd
}

func newPredictCmd(a *app) *cobra.Command {
	req := models.PredictionRequest{}

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Report the violation and outcome recorded for a vehicle number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbClient, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer dbClient.Disconnect()

			result, err := dbClient.StopRecordUseCase().PredictOutcome(cmd.Context(), &req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch result.Status {
			case models.LookupStatusMissingVehicleNumber:
				return fmt.Errorf("a vehicle number is required")
			case models.LookupStatusNoMatch:
				fmt.Fprintln(out, "No record found for the vehicle number.")
			default:
				fmt.Fprintf(out, "Predicted violation: %s\nPredicted outcome: %s\n\n%s\n",
					result.PredictedViolation, result.PredictedOutcome, result.Summary)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.VehicleNumber, "vehicle-number", "", "vehicle number (required)")
	flags.StringVar(&req.StopTime, "time", "", "stop time (HH:MM)")
	flags.IntVar(&req.DriverAge, "age", 0, "driver age")
	flags.StringVar(&req.DriverGender, "gender", "", genderHelp)
	flags.StringVar(&req.SearchConducted, "search-conducted", "", "Yes or No")
	flags.StringVar(&req.SearchType, "search-type", "", "search type")
	flags.StringVar(&req.DrugsRelatedStop, "drugs-related", "", "Yes or No")
	flags.StringVar(&req.StopDuration, "duration", "", durationHelp)
	return cmd
}
