package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/quiz-breakout/internal/platform/tui"
	"github.com/vovakirdan/quiz-breakout/internal/quiz"
	"github.com/vovakirdan/quiz-breakout/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show answer history per topic",
	Long: `Show how often each topic was answered correctly, weakest topics first.

Opens an interactive view in a terminal; prints a plain table with --plain or
when the output is not a terminal.

Examples:
  quizbreak history
  quizbreak history --catalog gcp --plain
  quizbreak history --catalog aws --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history of --catalog (all catalogs when unset)")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open history database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearHistory(flagCatalog); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	catalogs := quiz.List()
	if flagCatalog != "" {
		catalogs = []string{flagCatalog}
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, catalogs, width, height)
	}

	for _, c := range catalogs {
		if err := printHistory(store, c); err != nil {
			return err
		}
	}
	last, err := store.LastRound()
	if err != nil {
		return err
	}
	if last != nil {
		fmt.Printf("Last round: %s/%s, %s by %s at %s\n",
			last.Catalog, last.TopicID, last.Outcome, last.Player, last.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printHistory(store *storage.Store, catalog string) error {
	stats, err := store.TopicStats(catalog)
	if err != nil {
		return err
	}
	totals, err := store.Totals(catalog)
	if err != nil {
		return err
	}

	fmt.Printf("History - %s\n\n", catalog)
	if len(stats) == 0 {
		fmt.Println("No answers recorded yet.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  %-12s  %-28s  %8s  %7s  %8s  %s\n", "Topic", "Answer", "Attempts", "Correct", "Accuracy", "Last played")
	fmt.Printf("  %-12s  %-28s  %8s  %7s  %8s  %s\n", "-----", "------", "--------", "-------", "--------", "-----------")
	for _, s := range stats {
		fmt.Printf("  %-12s  %-28s  %8d  %7d  %7.0f%%  %s\n",
			s.TopicID, s.Answer, s.Attempts, s.Correct, s.Accuracy()*100, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Printf("Rounds: %d  Answered: %d  Correct: %d  Game overs: %d\n\n",
		totals.Rounds, totals.Answered, totals.Correct, totals.GameOvers)
	return nil
}
