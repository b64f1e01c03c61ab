// Package main provides the entry point for the MBTI compatibility CLI and HTTP API server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/mbti-compat/internal/compatibility"
	"github.com/jonathan/mbti-compat/internal/config"
	"github.com/jonathan/mbti-compat/internal/llm"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	provider   string
	model      string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "mbti_compat",
	Short: "MBTI compatibility analyses",
	Long: `mbti_compat scores MBTI type pairs from a fixed directional table and asks a
text-generation provider for a structured compatibility write-up.

Run "mbti_compat serve" to expose the JSON API, or use the analyze, score,
matrix, parse and types commands directly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "Text-generation provider: gemini or openai")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "Model name override")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers the environment, the optional --config file and the
// command-line flags, in that order of increasing precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envCfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	cfg := *envCfg
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg.MergeWithDefaults(*envCfg)
	}

	if cmd.Flags().Changed("provider") {
		cfg.Provider = provider
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = model
	}
	if verbose {
		cfg.Verbose = true
	}

	cfg.ResolveAPIKey()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// newService builds the generator client and wraps it in a compatibility.Service.
// The caller must Close the returned client.
func newService(ctx context.Context, cfg *config.Config) (*compatibility.Service, llm.Client, error) {
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("API key is required (set MBTI_API_KEY, GEMINI_API_KEY or OPENAI_API_KEY)")
	}

	client, err := llm.NewClient(ctx, cfg.LLMConfig(), cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	logger.Debug("generator ready",
		zap.String("provider", cfg.Provider),
		zap.String("model", client.GetModel(llm.TierStandard)),
	)
	return compatibility.NewService(client, logger), client, nil
}
