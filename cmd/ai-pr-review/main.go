package main

import (
	"os"

	"github.com/TheRochVoices/ai-pr-review/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
