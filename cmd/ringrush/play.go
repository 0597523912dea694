package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ringrush/internal/core"
	"ringrush/internal/games/ring"
	"ringrush/internal/platform/tui"
	"ringrush/internal/registry"
)

var (
	flagConfig  string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Defaults to the ring game when no game is given.

Controls:
  Space/Enter - Reverse the needle (scores if it overlaps the target)
  Q/Ctrl+C    - Quit

Examples:
  ringrush play
  ringrush play ring --seed 42
  ringrush play --config ./my-ring.yaml
  ringrush play --log ./ringrush.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "ring"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'ringrush list' to see available games", gameID)
	}

	// Get terminal size before the TUI takes over
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if gameID == "ring" {
		ring.SetConfigPath(flagConfig)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	return tui.Run(game, cfg, logger)
}

// newLogger builds the play-session logger. Without a log file everything
// is discarded.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "ringrush",
	})
	return logger, func() { f.Close() }, nil
}
