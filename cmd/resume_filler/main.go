// Package main provides the entry point for the resume_filler CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_filler",
	Short: "Fill DOCX résumé templates from YAML records",
	Long:  "Resume Filler substitutes {{KEY}} placeholders in a DOCX résumé template with values from a structured YAML record, preserving the template's formatting run by run.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
