// ringrush is a terminal reflex game: a needle sweeps around a ring and you
// must hit space while it overlaps the target wedge. Every hit relocates the
// target and speeds the needle up; one miss ends the round.
//
// Usage:
//
//	ringrush play            - Play the game
//	ringrush list            - List available games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "ringrush/internal/games/ring"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ringrush",
	Short: "Ring Rush - a reflex game in your terminal",
	Long: `Ring Rush is a terminal reflex/timing game. A needle line sweeps
around a ring; press space while it overlaps the red target wedge to score.
Each hit reverses the needle, moves the target and raises the speed.
One miss and the round is over.

Examples:
  ringrush play
  ringrush play --fps 120
  ringrush play --config ./my-ring.yaml
  ringrush list`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}
