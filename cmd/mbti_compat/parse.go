package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jonathan/mbti-compat/internal/analysis"
	"github.com/jonathan/mbti-compat/internal/schemas"
	"github.com/spf13/cobra"
)

var (
	parseTypeA string
	parseTypeB string
	parseJSON  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a saved generator response",
	Long: `Parse a previously generated write-up into sections and score it. With both
--type-a and --type-b the table score is used; otherwise the text heuristic.
Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a saved analysis JSON document",
	Long:  "Validate a JSON document produced by analyze --json or the analysis endpoint against the embedded schema.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := schemas.ValidateResultFile(args[0]); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", args[0])
		return err
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseTypeA, "type-a", "", "First type code")
	parseCmd.Flags().StringVar(&parseTypeB, "type-b", "", "Second type code")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print the analysis as JSON")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(validateCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var (
		content []byte
		err     error
	)
	if args[0] == "-" {
		content, err = io.ReadAll(cmd.InOrStdin())
	} else {
		content, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	result := analysis.NewResult(string(content), parseTypeA, parseTypeB)
	return writeResult(cmd, result, parseJSON)
}
