package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rainythoughts/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "rt",
	Short:         "RainyThoughts — fight your demons with focus sessions",
	Long:          "RainyThoughts is a local-first CLI/TUI productivity RPG: timed focus sessions are battles against personified demons, and finished work becomes hero stats.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newBattleCmd(),
		newDemonsCmd(),
		newMentorsCmd(),
		newQuestCmd(),
		newRotCmd(),
		newHistoryCmd(),
		newJournalCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
