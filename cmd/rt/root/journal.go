package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rainythoughts/internal/storage"
	"rainythoughts/internal/ui"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Write down problems, goals, fears, and thoughts",
		Long:  "Journal entries feed the demons: anything filed under problems becomes ammunition for their taunts.",
	}
	cmd.AddCommand(newJournalAddCmd(), newJournalListCmd(), newJournalGoalCmd())
	return cmd
}

func newJournalAddCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a journal entry",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("entry text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !storage.ValidJournalCategory(category) {
				return fmt.Errorf("category must be one of: %s", strings.Join(storage.JournalCategories, ", "))
			}
			entry := strings.Join(args, " ")
			if err := svc.JournalRepo().Add(ctx, category, entry); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Noted under "+category+"."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", storage.JournalThoughts, "Category (problems|goals|fears|thoughts)")
	return cmd
}

func newJournalListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [category]",
		Short: "Show journal entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cats := storage.JournalCategories
			if len(args) == 1 {
				if !storage.ValidJournalCategory(args[0]) {
					return fmt.Errorf("category must be one of: %s", strings.Join(storage.JournalCategories, ", "))
				}
				cats = []string{args[0]}
			}

			out := cmd.OutOrStdout()
			for _, cat := range cats {
				entries, err := svc.JournalRepo().Entries(ctx, cat)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					continue
				}
				fmt.Fprintln(out, ui.H2.Render(strings.ToUpper(cat[:1])+cat[1:]))
				for _, e := range entries {
					fmt.Fprintf(out, "- %s\n", e)
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}
	return cmd
}

func newJournalGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal [text]",
		Short: "Add or list life goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				goal := strings.Join(args, " ")
				if err := svc.JournalRepo().AddLifeGoal(ctx, goal); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Muted.Render("Goal recorded."))
				return nil
			}

			goals, err := svc.JournalRepo().LifeGoals(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Life Goals"))
			if len(goals) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing yet. What are you fighting for?"))
				return nil
			}
			for i, g := range goals {
				fmt.Fprintf(out, "%d. %s\n", i+1, g)
			}
			return nil
		},
	}
	return cmd
}
