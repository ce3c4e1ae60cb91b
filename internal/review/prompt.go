package review

import (
	"fmt"
	"strings"
)

// BuildPrompt constructs the review prompt for a single changed file.
// It names both refs, embeds the entire file content from the source ref
// and the diff patch verbatim, and constrains commentary to the lines the
// patch touches. Nothing is truncated or escaped; size limits are the
// inference backend's concern.
func BuildPrompt(path, diff, content, source, target string) string {
	var b strings.Builder

	b.WriteString("You are an expert software engineer assisting with pull request reviews.\n")
	fmt.Fprintf(&b, "Compare two branches: %s (base) and %s (feature).\n", target, source)
	fmt.Fprintf(&b, "A developer has changed the file `%s`. You are given the full\n", path)
	b.WriteString("content of the file from the feature branch along with the diff patch\n")
	b.WriteString("between the base and feature branch. Consider the entire file but limit\n")
	b.WriteString("your comments strictly to lines that are part of the diff. Highlight\n")
	b.WriteString("potential bugs, wrong logic, bad coding practices, and opportunities for\n")
	b.WriteString("improvement. Be concise and reference line numbers from the patch when\n")
	b.WriteString("possible.\n")

	b.WriteString("\n<file_content>\n")
	b.WriteString(content)
	b.WriteString("\n</file_content>\n")

	b.WriteString("\n<diff_patch>\n")
	b.WriteString(diff)
	b.WriteString("\n</diff_patch>\n")

	b.WriteString("\nProvide your review now.\n")

	return b.String()
}

// BuildDeletedPrompt is the diff-only variant for files that no longer
// exist at the source ref.
func BuildDeletedPrompt(path, diff, source, target string) string {
	var b strings.Builder

	b.WriteString("You are an expert software engineer assisting with pull request reviews.\n")
	fmt.Fprintf(&b, "Compare two branches: %s (base) and %s (feature).\n", target, source)
	fmt.Fprintf(&b, "The file `%s` was deleted on the feature branch, so only the diff\n", path)
	b.WriteString("patch between the base and feature branch is available. Review the\n")
	b.WriteString("deletion: note anything the removed lines suggest might break elsewhere.\n")
	b.WriteString("Be concise and reference line numbers from the patch when possible.\n")

	b.WriteString("\n<diff_patch>\n")
	b.WriteString(diff)
	b.WriteString("\n</diff_patch>\n")

	b.WriteString("\nProvide your review now.\n")

	return b.String()
}
