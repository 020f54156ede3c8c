package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// DefaultSchemaPath is the schema location tried when --schema is not given,
// relative to the repository root.
const DefaultSchemaPath = "UTILS/validation_schema.json"

// ValidateFinding is one finding in command output.
type ValidateFinding struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Path     string `json:"path"`
}

// ValidateSummary is the trailing summary block of a validation run.
type ValidateSummary struct {
	Root         string `json:"root"`
	IndexedCards int    `json:"indexed_cards"`
	Errors       int    `json:"errors"`
	Warnings     int    `json:"warnings"`
	Result       string `json:"result"` // "OK" or "FAIL"
}

// ValidateReport holds everything a validation run reports.
type ValidateReport struct {
	Findings []ValidateFinding `json:"findings"`
	Summary  ValidateSummary   `json:"summary"`
}

// ValidateRunner runs one validation pass over a repository tree.
type ValidateRunner interface {
	Validate(ctx context.Context, strict bool) (*ValidateReport, error)
}

// RunnerFactory builds a ValidateRunner for the given root and schema path.
// Schema problems (missing file, parse failure) surface here, before any
// validation runs.
type RunnerFactory func(root, schemaPath string) (ValidateRunner, error)

// ValidationFailedError is returned when a run's result is FAIL.
type ValidationFailedError struct {
	Errors   int
	Warnings int
}

// Error implements the error interface.
func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed with %d errors, %d warnings", e.Errors, e.Warnings)
}

// ExitCode returns the exit code for a failed run (always 1).
func (e *ValidationFailedError) ExitCode() int {
	return 1
}

// ExitCoder is implemented by errors that carry a specific process exit code.
type ExitCoder interface {
	ExitCode() int
}

// ExitCodeFromError returns the appropriate exit code for an error.
// nil returns 0, ExitCoder errors return their code, all others return 1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// formatReportHuman writes the grouped findings and summary as text: all
// errors first, then all warnings, each in discovery order, then the
// summary block.
func formatReportHuman(w io.Writer, report *ValidateReport) {
	writeGroup := func(header, severity string) {
		var group []ValidateFinding
		for _, f := range report.Findings {
			if f.Severity == severity {
				group = append(group, f)
			}
		}
		if len(group) == 0 {
			return
		}
		fmt.Fprintf(w, "%s:\n", header)
		for _, f := range group {
			fmt.Fprintf(w, "  - %s :: %s\n", f.Path, f.Message)
		}
		fmt.Fprintln(w)
	}

	writeGroup("ERRORS", "ERROR")
	writeGroup("WARNINGS", "WARN")

	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "Scanned root: %s\n", report.Summary.Root)
	fmt.Fprintf(w, "Indexed cards: %d\n", report.Summary.IndexedCards)
	fmt.Fprintf(w, "Findings: %d errors, %d warnings\n", report.Summary.Errors, report.Summary.Warnings)
	fmt.Fprintf(w, "Result: %s\n", report.Summary.Result)
}

// writeReportFile writes the report as JSON to path.
func writeReportFile(path string, report *ValidateReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// NewValidateCmd creates the validate command. The factory builds the
// runner once flags are known.
func NewValidateCmd(factory RunnerFactory) *cobra.Command {
	var root string
	var schemaPath string
	var strict bool
	var reportPath string

	cmd := &cobra.Command{
		Use:          "validate",
		Short:        "Validate the repository tree against the rule schema",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			absRoot, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolving root: %w", err)
			}
			resolvedSchema := schemaPath
			if !filepath.IsAbs(resolvedSchema) {
				resolvedSchema = filepath.Join(absRoot, resolvedSchema)
			}

			runner, err := factory(absRoot, resolvedSchema)
			if err != nil {
				return err
			}

			report, err := runner.Validate(cmd.Context(), strict)
			if err != nil {
				return err
			}

			if GetJSON() {
				writeJSON(cmd.OutOrStdout(), report)
			} else {
				formatReportHuman(cmd.OutOrStdout(), report)
			}
			if reportPath != "" {
				if err := writeReportFile(reportPath, report); err != nil {
					return err
				}
			}

			if report.Summary.Result == "FAIL" {
				return &ValidationFailedError{
					Errors:   report.Summary.Errors,
					Warnings: report.Summary.Warnings,
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Repository root directory")
	cmd.Flags().StringVar(&schemaPath, "schema", DefaultSchemaPath, "Path to the validation schema (relative to root unless absolute)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as failures")
	cmd.Flags().StringVar(&reportPath, "report", "", "Also write the report as JSON to this file")

	return cmd
}
