package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/mbti-compat/internal/mbti"
	"github.com/jonathan/mbti-compat/internal/observability"
	"github.com/spf13/cobra"
)

var (
	scoreJSON bool
)

var scoreCmd = &cobra.Command{
	Use:   "score TYPE_A TYPE_B",
	Short: "Look up the table score for an ordered pair",
	Long:  "Look up the directional table score for TYPE_A toward TYPE_B and its label. No text is generated.",
	Args:  cobra.ExactArgs(2),
	RunE:  runScore,
}

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the full 16x16 compatibility table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		observability.NewPrinter(cmd.OutOrStdout()).PrintMatrix()
		return nil
	},
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the score as JSON")
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(matrixCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	a, err := mbti.ParseType(args[0])
	if err != nil {
		return err
	}
	b, err := mbti.ParseType(args[1])
	if err != nil {
		return err
	}

	score := mbti.LookupScore(a, b)
	if !scoreJSON {
		observability.NewPrinter(cmd.OutOrStdout()).PrintScore(a, b, score)
		return nil
	}

	data, err := json.Marshal(map[string]any{
		"typeA": a,
		"typeB": b,
		"score": score,
		"label": mbti.Classify(score),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal score: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
