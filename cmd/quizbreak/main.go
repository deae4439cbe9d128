// quizbreak is a breakout game that hides a cloud service logo behind the
// blocks and asks the player to name it.
//
// Usage:
//
//	quizbreak play           - Play in the terminal
//	quizbreak window         - Play in a desktop window
//	quizbreak serve          - Start SSH server for remote play
//	quizbreak topics         - List catalogs and their topics
//	quizbreak history        - Show per-topic answer history
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.quizbreak/history.db)
//	--config <path>       - Use a custom game config YAML
//	--catalog <name|path> - Pick a built-in catalog or load one from YAML
//	--assets <dir>        - Directory topic images are resolved against
//	--difficulty <preset> - easy, normal or hard
//	--log <path>          - Log file (default: ~/.quizbreak/quizbreak.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagCatalog    string
	flagAssets     string
	flagDifficulty string
	flagLog        string
	flagFont       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quizbreak",
	Short: "Quiz Breakout - break the blocks, name the cloud service",
	Long: `Quiz Breakout is a breakout game with a quiz. Every round hides the logo
of a cloud service behind a wall of blocks. Clear the wall (or lose the ball)
and pick the service's name from the offered answers.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  topics   - List catalogs and their topics
  history  - View answer history per topic

Examples:
  quizbreak play
  quizbreak play --catalog gcp --difficulty easy
  quizbreak window --assets ./assets
  quizbreak serve --ssh :2222
  quizbreak history --catalog aws`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use the config's tick rate)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.quizbreak/history.db", "Path to history database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagCatalog, "catalog", "", "Catalog name or YAML file (default: from config)")
	pf.StringVar(&flagAssets, "assets", ".", "Directory topic images are resolved against")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLog, "log", "", "Log file (default: ~/.quizbreak/quizbreak.log)")
	pf.StringVar(&flagFont, "font", "", "TrueType/OpenType font for labels (default: built-in)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(historyCmd)
}
