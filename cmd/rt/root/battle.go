package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rainythoughts/internal/tui"
	"rainythoughts/internal/ui"
)

func newBattleCmd() *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "battle <demon-id>",
		Short: "Fight a demon with a timed focus session",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("demon id is required (see `rt demons`)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, gen, cleanup, err := openWithNarrative(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// A persisted session can only outlive its process by crashing;
			// drop it rather than blocking every future battle.
			if _, err := svc.ActiveBattle(ctx); err == nil {
				if err := svc.CancelBattle(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Abandoned an interrupted session."))
			}

			return tui.RunBattle(ctx, svc, gen, args[0], minutes, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 25, "Session length in minutes")
	return cmd
}
