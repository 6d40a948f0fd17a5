package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-filler/internal/record"
	"github.com/jonathan/resume-filler/internal/resolver"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve RECORD",
	Short: "Resolve a YAML record into its placeholder map",
	Long:  "Resolves RECORD into the full placeholder map that the fill command would substitute, printed as JSON. Useful for inspecting which keys a record provides before filling a template.",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

var (
	resolveOutput   string
	resolveListJoin string
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveOutput, "out", "o", "", "Write the JSON map to a file instead of stdout")
	resolveCmd.Flags().StringVar(&resolveListJoin, "list-join", "", "Delimiter for joining list values (default \", \")")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(_ *cobra.Command, args []string) error {
	// 1. Load and parse the record
	rec, err := record.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load record: %w", err)
	}

	// 2. Resolve into a placeholder map
	placeholders := resolver.Resolve(rec, resolver.Options{ListJoin: resolveListJoin})

	// 3. Marshal to JSON with indentation
	jsonOutput, err := json.MarshalIndent(placeholders, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal placeholder map to JSON: %w", err)
	}

	if resolveOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	// 4. Ensure output directory exists
	outputDir := filepath.Dir(resolveOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	// 5. Write to output file
	if err := os.WriteFile(resolveOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write placeholder map to output file %s: %w", resolveOutput, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Resolved %d placeholders\n", len(placeholders))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", resolveOutput)

	return nil
}
