package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/TheRochVoices/ai-pr-review/internal/config"
	"github.com/TheRochVoices/ai-pr-review/internal/providers"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Inspect the local inference endpoint",
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List models served by the configured endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		ollama := providers.NewOllama(cfg.Model, cfg.Endpoint, time.Duration(cfg.TimeoutSeconds)*time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		names, err := ollama.ListModels(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		if len(names) == 0 {
			fmt.Fprintln(os.Stdout, "No models available")
			return nil
		}
		for _, name := range names {
			fmt.Fprintf(os.Stdout, "  - %s\n", name)
		}
		return nil
	},
}

func init() {
	modelsCmd.AddCommand(modelsListCmd)
	modelsListCmd.Flags().StringVar(&flagEndpoint, "endpoint", "", "Ollama endpoint URL")
}
