package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "ai-pr-review <source> <target>",
	Short: "AI-assisted pull request review using a local model",
	Long: "ai-pr-review asks a locally hosted Ollama model to review every file\n" +
		"changed between two git refs, scoped to the lines the diff touches.",
	Args: cobra.ExactArgs(2),
	RunE: runReview,
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print ai-pr-review version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "ai-pr-review version %s\n", version)
	},
}
