package root

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"rainythoughts/internal/content"
	"rainythoughts/internal/engine"
	"rainythoughts/internal/storage"
	"rainythoughts/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Manage the quest ledger",
	}
	cmd.AddCommand(
		newQuestAddCmd(),
		newQuestDoneCmd(),
		newQuestRmCmd(),
		newQuestListCmd(),
		newQuestSuggestCmd(),
	)
	return cmd
}

func newQuestAddCmd() *cobra.Command {
	var category string
	var deadline string
	var daily bool

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			cat, err := engine.ParseStat(category)
			if err != nil {
				return err
			}
			q, err := svc.CreateQuest(ctx, args[0], cat, deadline, daily)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconPlus, "Quest added"))
			fmt.Fprintln(out, questLine(*q, engine.DateOnly(time.Now())))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "wisdom", "Stat category (wealth|strength|wisdom|luck)")
	cmd.Flags().StringVarP(&deadline, "deadline", "d", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&daily, "daily", false, "Repeat daily")
	return cmd
}

func newQuestDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id-prefix>",
		Short: "Complete a quest and bank its points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveQuestID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			q, err := svc.CompleteQuest(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDone, "Quest complete"))
			fmt.Fprintf(out, "%s %s → +%d %s\n", content.CategoryEmoji(q.Category), q.Title, q.PointsReward, q.Category)
			return nil
		},
	}
	return cmd
}

func newQuestRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id-prefix>",
		Short: "Delete a quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveQuestID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteQuest(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Quest removed."))
			return nil
		},
	}
	return cmd
}

func newQuestListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show today's, overdue, and upcoming quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			quests, err := svc.Quests(ctx)
			if err != nil {
				return err
			}
			today := engine.DateOnly(time.Now())
			out := cmd.OutOrStdout()

			printSection := func(title string, list []storage.Quest) {
				if len(list) == 0 {
					return
				}
				fmt.Fprintln(out, ui.H2.Render(title))
				for _, q := range list {
					fmt.Fprintln(out, questLine(q, today))
				}
				fmt.Fprintln(out, "")
			}

			printSection("Today", engine.TodayQuests(quests, today))
			printSection(ui.IconWarn+" Overdue", engine.OverdueQuests(quests, today))
			printSection("Upcoming", engine.UpcomingQuests(quests, today))

			if len(quests) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No quests. Try `rt quest suggest` for ideas."))
			}
			return nil
		},
	}
	return cmd
}

func newQuestSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest [category]",
		Short: "Show example quests per stat category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cats := []string{"wealth", "strength", "wisdom", "luck"}
			if len(args) == 1 {
				cat, err := engine.ParseStat(args[0])
				if err != nil {
					return err
				}
				cats = []string{string(cat)}
			}
			for _, cat := range cats {
				fmt.Fprintln(out, ui.H2.Render(content.CategoryEmoji(cat)+" "+cat))
				fmt.Fprintln(out, ui.Muted.Render(content.CategoryDescription(cat)))
				for _, title := range content.QuestExamples[cat] {
					fmt.Fprintf(out, "- %s\n", title)
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}
	return cmd
}

func questLine(q storage.Quest, today string) string {
	var parts []string
	parts = append(parts, content.CategoryEmoji(q.Category))
	if q.Status == engine.QuestStatusCompleted {
		parts = append(parts, ui.Good.Render("✓"), ui.Muted.Render(q.Title))
	} else {
		parts = append(parts, "·", q.Title)
	}
	if q.Recurring == engine.RecurringDaily {
		parts = append(parts, ui.IconLoop)
	}
	if q.Deadline != nil {
		if engine.IsOverdue(q, today) {
			parts = append(parts, ui.Bad.Render("due "+engine.NormalizeDate(*q.Deadline)))
		} else {
			parts = append(parts, ui.Muted.Render("due "+engine.NormalizeDate(*q.Deadline)))
		}
	}
	parts = append(parts, ui.Dim.Render("["+shortID(q.ID)+"]"))
	return strings.Join(parts, " ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveQuestID accepts a full ID or a unique prefix.
func resolveQuestID(ctx context.Context, svc *engine.Service, prefix string) (string, error) {
	quests, err := svc.QuestRepo().List(ctx)
	if err != nil {
		return "", err
	}
	var match string
	for _, q := range quests {
		if q.ID == prefix {
			return q.ID, nil
		}
		if strings.HasPrefix(q.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("quest id prefix %q is ambiguous", prefix)
			}
			match = q.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no quest matches %q", prefix)
	}
	return match, nil
}
