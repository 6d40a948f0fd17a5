package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-filler/internal/config"
	"github.com/jonathan/resume-filler/internal/docx"
	"github.com/jonathan/resume-filler/internal/observability"
	"github.com/jonathan/resume-filler/internal/record"
	"github.com/jonathan/resume-filler/internal/resolver"
	"github.com/jonathan/resume-filler/internal/rewriter"
	"github.com/jonathan/resume-filler/internal/schemas"
)

var fillCmd = &cobra.Command{
	Use:   "fill TEMPLATE RECORD OUTPUT",
	Short: "Fill a DOCX template with values from a YAML record",
	Long:  "Fills every {{KEY}} placeholder in TEMPLATE with the value resolved from RECORD and writes the result to OUTPUT. Placeholders without a value are left in the document unchanged.",
	Args:  cobra.ExactArgs(3),
	RunE:  runFill,
}

var (
	fillListJoin     string
	fillNoHyperlinks bool
	fillSchema       string
	fillConfig       string
	fillVerbose      bool
)

func init() {
	fillCmd.Flags().StringVar(&fillListJoin, "list-join", "", "Delimiter for joining list values (default \", \")")
	fillCmd.Flags().BoolVar(&fillNoHyperlinks, "no-hyperlinks", false, "Substitute link placeholders as plain text instead of hyperlinks")
	fillCmd.Flags().StringVar(&fillSchema, "schema", "", "Path to a JSON Schema to validate the record against")
	fillCmd.Flags().StringVar(&fillConfig, "config", "", "Path to a JSON config file")
	fillCmd.Flags().BoolVarP(&fillVerbose, "verbose", "v", false, "Print the placeholder map and substitution report")

	rootCmd.AddCommand(fillCmd)
}

func runFill(_ *cobra.Command, args []string) error {
	templatePath, recordPath, outputPath := args[0], args[1], args[2]

	// 1. Assemble configuration: file, then environment, then flags
	cfg, err := loadEffectiveConfig(fillConfig)
	if err != nil {
		return err
	}
	if fillListJoin != "" {
		cfg.ListJoin = fillListJoin
	}
	if fillSchema != "" {
		cfg.SchemaPath = fillSchema
	}
	if fillVerbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 2. Load and parse the record; a malformed record aborts the run
	recordContent, err := os.ReadFile(recordPath)
	if err != nil {
		return fmt.Errorf("failed to read record file %s: %w", recordPath, err)
	}

	rec, err := record.Parse(recordContent)
	if err != nil {
		return fmt.Errorf("failed to parse record: %w", err)
	}

	// 3. Validate against the schema when one is available
	schemaPath := cfg.SchemaPath
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath("schemas/resume.schema.json")
	}
	if schemaPath != "" {
		if err := schemas.ValidateRecord(schemaPath, recordContent); err != nil {
			var validationErr *schemas.ValidationError
			var schemaLoadErr *schemas.SchemaLoadError
			if errors.As(err, &validationErr) {
				// Actual validation failure - return error
				return fmt.Errorf("record does not validate against schema: %w", err)
			} else if errors.As(err, &schemaLoadErr) {
				// Schema loading issue - log warning and continue
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate record against schema (schema loading failed): %v\n", err)
			} else {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate record against schema: %v\n", err)
			}
		}
	}

	// 4. Resolve the record into a placeholder map
	placeholders := resolver.Resolve(rec, resolver.Options{ListJoin: cfg.ListJoin})

	// 5. Open the template
	doc, err := docx.Open(templatePath)
	if err != nil {
		return fmt.Errorf("failed to open template %s: %w", templatePath, err)
	}

	// 6. Rewrite placeholders in place
	hyperlinks := cfg.HyperlinksEnabled() && !fillNoHyperlinks
	report, err := rewriter.Rewrite(doc, placeholders, rewriter.Options{Hyperlinks: hyperlinks})
	if err != nil {
		return fmt.Errorf("failed to rewrite template: %w", err)
	}

	// 7. Write the filled document
	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outputPath, err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintPlaceholderMap(placeholders)
		printer.PrintFillReport(report)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Replaced %d placeholders (%d hyperlinks, %d left unresolved)\n",
		report.Replaced, report.Hyperlinks, len(report.Unresolved))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outputPath)

	return nil
}

// loadEffectiveConfig merges the optional config file with defaults and the
// process environment.
func loadEffectiveConfig(path string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		fileCfg, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	cfg.ApplyEnv()
	return cfg, nil
}
