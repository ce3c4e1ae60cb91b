package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/TheRochVoices/ai-pr-review/internal/review"
)

// TextWriter outputs a human-readable text report, one section per file.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, reviews []review.FileReview) error {
	ew := &errWriter{w: w}

	ew.printf("AI PR Review — %d file(s)\n", len(reviews))
	ew.println(strings.Repeat("─", 60))

	if len(reviews) == 0 {
		ew.println("\nNo files changed. Nothing to review.")
		return ew.err
	}

	for _, r := range reviews {
		ew.printf("\n%s\n", r.Path)
		ew.println(strings.Repeat("─", 40))
		comments := strings.TrimSpace(r.Comments)
		if comments == "" {
			ew.println("  (no comments)")
			continue
		}
		for _, line := range strings.Split(comments, "\n") {
			ew.printf("  %s\n", line)
		}
	}

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
