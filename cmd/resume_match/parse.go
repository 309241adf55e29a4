package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-match/internal/observability"
	"github.com/jonathan/resume-match/internal/parsing"
	"github.com/jonathan/resume-match/internal/schemas"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse extracted resume text into a structured ResumeJSON document",
	Long:  "Parse a plain-text resume (as produced by a PDF/DOCX text extractor) into a structured JSON document that validates against the resume schema.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to extracted resume text file (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	if parseInputFile == "" {
		return fmt.Errorf("--in is required")
	}

	inputContent, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	resume := parsing.ParseResumeText(string(inputContent))

	jsonBytes, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseOutputFile != "" {
		if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else {
		fmt.Println(string(jsonBytes))
	}

	// Validate against schema (if schema file exists)
	if err := validateAgainstSchema("schemas/resume.schema.json", resume); err != nil {
		return err
	}

	if parseVerbose {
		observability.NewPrinter(os.Stderr).PrintResume(&resume)
	}

	return nil
}

// validateAgainstSchema checks a produced document against a schema file.
// A document that fails validation is an error; a schema that cannot be
// loaded only warns, since the binary may run away from the repo checkout.
func validateAgainstSchema(relativePath string, document any) error {
	schemaPath := schemas.ResolveSchemaPath(relativePath)
	if schemaPath == "" {
		return nil
	}

	err := schemas.ValidateDocument(schemaPath, document)
	if err == nil {
		return nil
	}

	var validationErr *schemas.ValidationError
	var schemaLoadErr *schemas.SchemaLoadError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("generated JSON does not validate against schema: %w", err)
	}
	if errors.As(err, &schemaLoadErr) {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
		return nil
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
	return nil
}
