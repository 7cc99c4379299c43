package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rainythoughts/internal/content"
	"rainythoughts/internal/ui"
)

func newRotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rot",
		Short: "Show the rot tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state, err := svc.RotTracker(ctx)
			if err != nil {
				return err
			}
			band := content.RotSeverity(state.RotDays)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(band.Emoji, band.Label))
			fmt.Fprintln(out, ui.LabelValue("Rot days", state.RotDays))
			fmt.Fprintln(out, ui.LabelValue("Productive days", state.ProductiveDays))
			fmt.Fprintln(out, ui.LabelValue("Work streak", fmt.Sprintf("%d days", state.CurrentStreak)))
			if state.LastWorkDate != "" {
				fmt.Fprintln(out, ui.LabelValue("Last worked", state.LastWorkDate))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("No work recorded yet. Win a battle."))
			}
			return nil
		},
	}
	return cmd
}
