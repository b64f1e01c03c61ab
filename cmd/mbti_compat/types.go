package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/mbti-compat/internal/mbti"
	"github.com/jonathan/mbti-compat/internal/observability"
	"github.com/spf13/cobra"
)

var (
	typesJSON bool
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the 16 types by temperament group",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

func init() {
	typesCmd.Flags().BoolVar(&typesJSON, "json", false, "Print the profiles as JSON")
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, _ []string) error {
	if !typesJSON {
		observability.NewPrinter(cmd.OutOrStdout()).PrintTypes()
		return nil
	}

	data, err := json.MarshalIndent(mbti.Profiles(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
