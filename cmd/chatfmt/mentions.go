// Copyright 2024-2026 Aiku AI

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aiku/chatfmt/pkg/mention"
)

var mentionsBackend string

var mentionsCmd = &cobra.Command{
	Use:   "mentions [text]",
	Short: "Extract platform mentions from raw text",
	Long: `Extract platform mentions from raw text.

The text comes from the argument, or from stdin when no argument is
given. One line is printed per match: offsets, type, id, and the raw
token.

Examples:
  chatfmt mentions --backend discord 'Hey <@123456789>!'
  chatfmt mentions --backend slack < inbound.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMentions,
}

func init() {
	mentionsCmd.Flags().StringVarP(&mentionsBackend, "backend", "b", "", "backend grammar to use")
}

func runMentions(cmd *cobra.Command, args []string) error {
	backend := mentionsBackend
	if backend == "" {
		backend = cfg.DefaultBackend
	}

	var text string
	if len(args) > 0 {
		text = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	matches, err := mention.Parse(text, backend)
	if err != nil {
		return err
	}
	log.Debug().Str("backend", backend).Int("matches", len(matches)).Msg("parsed mentions")

	var b strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&b, "%d-%d\t%s\t%s\t%s\n", m.Start, m.End, m.Type, m.ID, m.Raw)
	}
	_, err = io.WriteString(cmd.OutOrStdout(), b.String())
	return err
}
