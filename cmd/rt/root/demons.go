package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rainythoughts/internal/content"
	"rainythoughts/internal/engine"
	"rainythoughts/internal/narrative"
	"rainythoughts/internal/ui"
)

func newDemonsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demons",
		Short: "List demons and their breakdown stages",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := svc.Demons(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSkull, "Your Demons"))
			fmt.Fprintln(out, "")

			for _, ch := range list.Available {
				e, err := svc.EnemyRepo().Enemy(ctx, ch.ID)
				if err != nil {
					return err
				}
				stage := engine.EnemyStage(&ch, e)
				fmt.Fprintf(out, "%s %s  %s\n", ui.IconSword, ui.H2.Render(ch.Name), ui.StageText(string(stage)))
				if e != nil {
					fmt.Fprintf(out, "   %s  defeats: %d\n", ui.HPBar(e.CurrentHP, e.MaxHP, 20), e.Defeats)
				} else {
					fmt.Fprintln(out, ui.Muted.Render("   never fought"))
				}
				fmt.Fprintln(out, ui.Dim.Render("   rt battle "+ch.ID))
			}

			if len(list.Locked) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("🔒 Locked"))
				for _, ch := range list.Locked {
					req := fmt.Sprintf("%d total stats", ch.MinStats)
					if ch.MinStreak > 0 {
						req += fmt.Sprintf(", %d-day streak", ch.MinStreak)
					}
					fmt.Fprintf(out, "- %s %s\n", ch.Name, ui.Muted.Render("("+req+")"))
				}
			}
			return nil
		},
	}
	return cmd
}

func newMentorsCmd() *cobra.Command {
	var letterFrom string

	cmd := &cobra.Command{
		Use:   "mentors",
		Short: "List mentors, or request a letter from one",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, gen, cleanup, err := openWithNarrative(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if letterFrom != "" {
				ch := content.ByID(letterFrom)
				if ch == nil || ch.Category != content.CategoryMentor {
					return fmt.Errorf("no mentor named %q", letterFrom)
				}
				text, err := gen.Generate(ctx, ch, narrative.KindLetter, 0)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Heading(ui.IconLetter, "From "+ch.Name))
				fmt.Fprintln(out, ui.LetterBox.Render(text))
				return nil
			}

			list, err := svc.Mentors(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Heading(ui.IconShield, "Your Mentors"))
			for _, ch := range list.Available {
				fmt.Fprintf(out, "- %s %s\n", ui.H2.Render(ch.Name), ui.Dim.Render("(rt mentors --letter "+ch.ID+")"))
			}
			for _, ch := range list.Locked {
				fmt.Fprintf(out, "- %s %s\n", ui.Muted.Render(ch.Name), ui.Muted.Render(fmt.Sprintf("(unlocks at %d total stats)", ch.MinStats)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&letterFrom, "letter", "", "Mentor ID to request a letter from")
	return cmd
}
