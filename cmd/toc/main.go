package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ziad-004/TOC-Project/internal/shell"
)

var (
	cfg     shell.Config
	cfgPath string
	verbose bool
	noColor bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "toc.yaml", "console configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI styling")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		var err error
		cfg, err = shell.LoadConfig(cfgPath)
		if err != nil {
			slog.Warn("using default configuration", slog.String("error", err.Error()))
			cfg = shell.DefaultConfig()
		}
		if noColor {
			cfg.Color = false
		}
	}
}
