package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/TheRochVoices/ai-pr-review/internal/review"
)

// MarkdownWriter outputs a PR-comment-friendly markdown report with a
// collapsible section per reviewed file.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, reviews []review.FileReview) error {
	fmt.Fprintf(w, "## AI PR Review\n\n")
	fmt.Fprintf(w, "%d file(s) reviewed.\n\n", len(reviews))

	if len(reviews) == 0 {
		fmt.Fprintln(w, "No files changed. :white_check_mark:")
		return nil
	}

	for _, r := range reviews {
		fmt.Fprintf(w, "<details>\n<summary><code>%s</code></summary>\n\n", r.Path)
		comments := strings.TrimSpace(r.Comments)
		if comments == "" {
			fmt.Fprintf(w, "_No comments._\n")
		} else {
			fmt.Fprintf(w, "%s\n", comments)
		}
		fmt.Fprintf(w, "\n</details>\n\n")
	}

	return nil
}
