package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-filler/internal/docx"
	"github.com/jonathan/resume-filler/internal/rewriter"
)

var placeholdersCmd = &cobra.Command{
	Use:   "placeholders TEMPLATE",
	Short: "List the placeholder keys a DOCX template contains",
	Long:  "Scans TEMPLATE for {{KEY}} placeholders, including ones split across formatting runs, and prints the distinct keys one per line.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlaceholders,
}

func init() {
	rootCmd.AddCommand(placeholdersCmd)
}

func runPlaceholders(_ *cobra.Command, args []string) error {
	doc, err := docx.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open template %s: %w", args[0], err)
	}

	for _, key := range rewriter.Placeholders(doc) {
		_, _ = fmt.Fprintln(os.Stdout, key)
	}

	return nil
}
