package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rainythoughts/internal/content"
	"rainythoughts/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent completed sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			records, err := svc.HeroRepo().History(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Battle History"))
			if len(records) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No battles yet."))
				return nil
			}

			for _, r := range records {
				name := r.CharacterID
				if ch := content.ByID(r.CharacterID); ch != nil {
					name = ch.Name
				}
				fmt.Fprintf(out, "%s  %s vs %s  %dm  %s  +%d pts\n",
					ui.Muted.Render(r.Date.Format("2006-01-02 15:04")),
					ui.IconSword,
					ui.H2.Render(name),
					r.DurationMinutes,
					stars(r.Quality),
					r.PointsEarned,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of records to show")
	return cmd
}

func stars(quality int) string {
	s := ""
	for i := 0; i < quality; i++ {
		s += "★"
	}
	return ui.Gold.Render(s)
}
