package root

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rainythoughts/internal/ui"
)

func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !force {
				fmt.Fprint(cmd.OutOrStdout(), ui.Warn.Render("This erases your hero, history, demons, quests, and rot tracker.")+"\nType 'reset' to confirm: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				line, _ := reader.ReadString('\n')
				if strings.TrimSpace(line) != "reset" {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Aborted."))
					return nil
				}
			}

			if err := svc.ResetAll(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Fresh start. Your demons are back at full strength."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")
	return cmd
}
