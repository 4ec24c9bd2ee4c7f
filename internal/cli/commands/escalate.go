package commands

import (
	"fmt"
	"time"

	"advisor-alert-srv/internal/advisoralert"
	"advisor-alert-srv/internal/model"

	"github.com/spf13/cobra"
)

func EscalateCmd(connect Connector) *cobra.Command {
	var advisorID string
	cmd := &cobra.Command{
		Use:   "escalate",
		Short: "Send today's digest for an advisor with the stored mail token",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeFn, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			out, err := uc.Escalate(cmd.Context(), model.Scope{UserID: advisorID, Role: model.RoleAdvisor}, advisoralert.EscalateInput{})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\npending: %d\n", out.Status, out.Pending)
			if !out.SentAt.IsZero() {
				fmt.Fprintf(cmd.OutOrStdout(), "sent_at: %s\n", out.SentAt.Format(time.RFC3339))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&advisorID, "advisor", "", "Advisor user id")
	_ = cmd.MarkFlagRequired("advisor")
	return cmd
}
