package commands

import (
	"fmt"
	"time"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/pkg/calendar"

	"github.com/spf13/cobra"
)

func PreviewCmd(connect Connector) *cobra.Command {
	var (
		advisorID string
		date      string
		output    string
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Evaluate an advisor's alerts without sending anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			var today time.Time
			if date != "" {
				t, err := time.ParseInLocation(calendar.KeyLayout, date, time.UTC)
				if err != nil {
					return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", date)
				}
				// Noon UTC stays on the same day in the service timezone.
				today = t.Add(12 * time.Hour)
			}

			uc, closeFn, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			alerts, err := uc.Preview(cmd.Context(), advisoralert.PreviewInput{
				AdvisorID: advisorID,
				Today:     today,
			})
			if err != nil {
				return err
			}
			return writeAlerts(cmd.OutOrStdout(), output, alerts)
		},
	}
	cmd.Flags().StringVar(&advisorID, "advisor", "", "Advisor user id")
	cmd.Flags().StringVar(&date, "date", "", "Evaluate as of this day (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table, json or yaml")
	_ = cmd.MarkFlagRequired("advisor")
	return cmd
}
