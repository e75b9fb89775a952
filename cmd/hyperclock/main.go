package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/san-kum/hyperclock/internal/config"
	"github.com/san-kum/hyperclock/internal/gui"
	"github.com/san-kum/hyperclock/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	preset      string
	verbose     bool
	generations int
)

// main registers the commands and flags and runs the root command. With no
// subcommand the desktop window is opened.
func main() {
	rootCmd := &cobra.Command{
		Use:   "hyperclock",
		Short: "clock whose added hands spin ever faster",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			gui.Run(cfg, newLogger())
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "hand preset ("+strings.Join(config.ListPresets(), ", ")+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the clock in the terminal",
		RunE:  runTUI,
	}

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print hand statistics for a number of generations",
		RunE:  runTable,
	}
	tableCmd.Flags().IntVarP(&generations, "generations", "n", 10, "number of hands including the base hand")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list hand presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				h := config.Presets[name]
				fmt.Printf("%-12s length=%gm base=%gs divisor=%g\n", name, h.LengthM, h.BasePeriod, h.Divisor)
			}
		},
	}

	rootCmd.AddCommand(tuiCmd, tableCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig starts from the file (or defaults) and applies the preset.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		if err := cfg.Apply(preset); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return viz.Run(cfg.Hands.NewCollection(), cfg.Window.FPS)
}

func runTable(cmd *cobra.Command, args []string) error {
	if generations < 1 {
		return fmt.Errorf("generations must be at least 1, got %d", generations)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	coll := cfg.Hands.NewCollection()
	for coll.Len() < generations {
		coll.Add()
	}
	hs := coll.Hands()

	fmt.Println(viz.Table(hs))
	if plot := viz.SpeedPlot(hs); plot != "" {
		fmt.Println(plot)
		fmt.Println()
	}

	for i, h := range hs {
		if h.IsSuperluminal() {
			fmt.Printf("hand %d (%s) is the first to outrun light\n", i, h.Name)
			break
		}
	}
	return nil
}
