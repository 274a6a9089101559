// term2048 is a terminal rendition of the 2048 sliding-tile puzzle.
//
// Usage:
//
//	term2048 play      - Play in the current terminal
//	term2048 scores    - Show high scores
//	term2048 serve     - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (0 = use config value)
//	--seed <value>    - Set RNG seed for reproducible games
//	--db <path>       - Set database path (default from config)
//	--config <path>   - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/owlgames/term2048/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "2048 in your terminal",
	Long: `term2048 is a terminal rendition of the 2048 sliding-tile puzzle.

Slide tiles with the arrow keys (or WASD/HJKL). Tiles with equal values
merge when they collide; every move drops two new tiles on the board.
The game ends when the board is full and no move can merge anything.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  term2048 play
  term2048 play --seed 42
  term2048 scores --interactive
  term2048 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to a custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective configuration from the config file
// chain and the global flags. Flags win over file values.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	if flagFPS > 0 {
		cfg.UI.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}

	return cfg, nil
}
