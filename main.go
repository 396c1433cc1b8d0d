package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"wheel.klederson.com/internal/animation"
	"wheel.klederson.com/internal/app"
	"wheel.klederson.com/internal/config"
	"wheel.klederson.com/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "wheel",
		Short: "Wheel - Terminal wheel of fortune",
		Long: `Wheel draws a wheel of fortune in the terminal. Hover a sector with the
mouse to highlight it, then click the hub or press SPACE to spin. The wheel
lands a randomly chosen sector under the marker at the top.

Settings can also be given as WHEEL_* environment variables or in a .env file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.IntVar(&cfg.Sectors, "sectors", cfg.Sectors, "Number of sectors on the wheel")
	flags.IntVar(&cfg.MinTurns, "min-turns", cfg.MinTurns, "Fewest extra full turns per spin")
	flags.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "Most extra full turns per spin")
	flags.DurationVar(&cfg.SpinDuration, "duration", cfg.SpinDuration, "Spin animation length")
	flags.StringVar(&cfg.Ease, "ease", cfg.Ease, fmt.Sprintf("Easing curve %v", animation.EaseNames()))
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 picks one from the clock)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Append logs to this file (discarded when empty)")
	flags.BoolVar(&cfg.LogPretty, "log-pretty", cfg.LogPretty, "Human readable log lines")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ease, err := animation.EaseByName(cfg.Ease)
	if err != nil {
		return err
	}

	var out io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Output: out,
	})
	logger.SetGlobalLogger(log)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().
		Int("sectors", cfg.Sectors).
		Int("min_turns", cfg.MinTurns).
		Int("max_turns", cfg.MaxTurns).
		Dur("duration", cfg.SpinDuration).
		Str("ease", cfg.Ease).
		Int64("seed", seed).
		Msg("starting wheel")

	model := app.New(app.Options{
		Sectors:  cfg.Sectors,
		MinTurns: cfg.MinTurns,
		MaxTurns: cfg.MaxTurns,
		Duration: cfg.SpinDuration,
		Ease:     ease,
		Rand:     rand.New(rand.NewSource(seed)),
		Logger:   log,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithFPS(config.TargetFPS),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run wheel: %w", err)
	}
	return nil
}
