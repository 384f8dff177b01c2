// Copyright 2024-2026 Aiku AI

// Command chatfmt renders platform-agnostic rich messages to chat
// platform grammars and extracts platform mentions from raw text. It is
// a thin command-line front for the format and mention packages.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// These are filled at build time with -ldflags.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var (
	log        zerolog.Logger
	configPath string
	verbose    bool
	cfg        Config
)

var rootCmd = &cobra.Command{
	Use:     "chatfmt",
	Short:   "Transcode chat messages between platform grammars",
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		return loadConfig(configPath, &cfg)
	},
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(renderCmd, mentionsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
