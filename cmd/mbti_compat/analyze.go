package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/mbti-compat/internal/analysis"
	"github.com/jonathan/mbti-compat/internal/observability"
	"github.com/jonathan/mbti-compat/internal/schemas"
	"github.com/spf13/cobra"
)

var (
	analyzeJSON bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze TYPE_A TYPE_B",
	Short: "Generate a compatibility analysis for two types",
	Long: `Generate a compatibility write-up for TYPE_A and TYPE_B with one call to the
configured provider, then score and render it.`,
	Args: cobra.ExactArgs(2),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	svc, client, err := newService(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer client.Close() //nolint:errcheck

	result, err := svc.Analyze(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("failed to get MBTI compatibility data: %w", err)
	}

	return writeResult(cmd, result, analyzeJSON)
}

// writeResult prints r as schema-checked JSON or as the boxed rendering.
func writeResult(cmd *cobra.Command, r *analysis.Result, asJSON bool) error {
	if !asJSON {
		observability.NewPrinter(cmd.OutOrStdout()).PrintAnalysis(r)
		return nil
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}
	if err := schemas.ValidateResult(data); err != nil {
		return fmt.Errorf("analysis does not match %s: %w", schemas.ResultSchemaName, err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
