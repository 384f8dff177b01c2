// Copyright 2024-2026 Aiku AI

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aiku/chatfmt/pkg/format"
)

var (
	renderFormat  string
	renderBackend string
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a YAML message description",
	Long: `Render a YAML message description to a platform grammar.

The message is read from the given file, or from stdin when no file is
given. The target grammar comes from --format, or from --backend's
preferred format, or from the config file.

Examples:
  chatfmt render --format markdown message.yaml
  chatfmt render --backend slack < message.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "target format")
	renderCmd.Flags().StringVarP(&renderBackend, "backend", "b", "", "target backend")
}

func runRender(cmd *cobra.Command, args []string) error {
	f, err := targetFormat()
	if err != nil {
		return err
	}

	in, name, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	msg, err := format.DecodeMessage(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Debug().Str("source", name).Str("format", string(f)).
		Int("blocks", len(msg.Content)).Msg("rendering message")

	out := msg.Render(f)
	if cfg.TrailingNewline {
		out += "\n"
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

// targetFormat resolves the output format from the flags, falling back
// to the config default.
func targetFormat() (format.Format, error) {
	if renderFormat != "" {
		return format.ParseFormat(renderFormat)
	}
	if renderBackend != "" {
		return format.FormatForBackend(renderBackend)
	}
	return cfg.defaultFormat, nil
}

func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to open input: %w", err)
	}
	return f, args[0], nil
}
