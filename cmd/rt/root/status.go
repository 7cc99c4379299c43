package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rainythoughts/internal/content"
	"rainythoughts/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show hero stats, streak, and rot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := svc.Hero(ctx)
			if err != nil {
				return err
			}
			rot, err := svc.RotTracker(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShield, "Hero Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", h.Level))
			fmt.Fprintln(out, ui.LabelValue("Tier", ui.TierText(h.Tier)))
			fmt.Fprintln(out, ui.LabelValue("Sessions", h.TotalSessions))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%d days %s", h.StreakDays, ui.IconFire)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
			fmt.Fprintf(out, "- 💰 wealth:   %d\n", h.Stats.Wealth)
			fmt.Fprintf(out, "- 💪 strength: %d\n", h.Stats.Strength)
			fmt.Fprintf(out, "- 🧠 wisdom:   %d\n", h.Stats.Wisdom)
			fmt.Fprintf(out, "- 🍀 luck:     %d\n", h.Stats.Luck)
			total := h.Stats.Total()
			fmt.Fprintln(out, ui.LabelValue("Total", fmt.Sprintf("%d (next level at %d)", total, (total/50+1)*50)))
			fmt.Fprintln(out, "")

			band := content.RotSeverity(rot.RotDays)
			fmt.Fprintln(out, ui.H2.Render(band.Emoji+" Rot"))
			fmt.Fprintln(out, ui.LabelValue("State", band.Label))
			fmt.Fprintln(out, ui.LabelValue("Rot days", rot.RotDays))
			fmt.Fprintln(out, ui.LabelValue("Productive days", rot.ProductiveDays))
			fmt.Fprintln(out, ui.LabelValue("Work streak", rot.CurrentStreak))

			demons, err := svc.Demons(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Demons awaiting", len(demons.Available)))
			if len(demons.Locked) > 0 {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d more unlock as you grow.", len(demons.Locked))))
			}
			return nil
		},
	}
	return cmd
}
