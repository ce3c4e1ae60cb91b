package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/TheRochVoices/ai-pr-review/internal/config"
	"github.com/TheRochVoices/ai-pr-review/internal/gitctx"
	"github.com/TheRochVoices/ai-pr-review/internal/logger"
	"github.com/TheRochVoices/ai-pr-review/internal/output"
	"github.com/TheRochVoices/ai-pr-review/internal/providers"
	"github.com/TheRochVoices/ai-pr-review/internal/review"
	"github.com/spf13/cobra"
)

var (
	flagRepo      string
	flagModel     string
	flagEndpoint  string
	flagTimeout   int
	flagFormat    string
	flagOut       string
	flagLogLevel  string
	flagLogFormat string
)

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagRepo != "" {
		m["repo"] = flagRepo
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagEndpoint != "" {
		m["endpoint"] = flagEndpoint
	}
	if flagTimeout > 0 {
		m["timeout"] = fmt.Sprintf("%d", flagTimeout)
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagLogLevel != "" {
		m["logLevel"] = flagLogLevel
	}
	if flagLogFormat != "" {
		m["logFormat"] = flagLogFormat
	}
	return m
}

func runReview(cmd *cobra.Command, args []string) error {
	source, target := args[0], args[1]

	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	repo := gitctx.NewRepo(cfg.RepoPath)
	ollama := providers.NewOllama(cfg.Model, cfg.Endpoint, time.Duration(cfg.TimeoutSeconds)*time.Second)
	orch := review.NewOrchestrator(repo, ollama, log)

	reviews, err := orch.Review(context.Background(), source, target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	if err := output.WriteReviews(reviews, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	return nil
}

func init() {
	rootCmd.Flags().StringVar(&flagRepo, "repo", "", "Path to the git repository (default: current directory)")
	rootCmd.Flags().StringVar(&flagModel, "model", "", "Ollama model name")
	rootCmd.Flags().StringVar(&flagEndpoint, "endpoint", "", "Ollama generate endpoint URL")
	rootCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "Model call timeout in seconds")
	rootCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (json, text, markdown)")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flagLogFormat, "log-format", "", "Log format (console, json)")
}
