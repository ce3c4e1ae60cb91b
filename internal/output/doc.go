// Package output formats review results for display or machine consumption.
//
// Three formats are supported:
//   - json     — object mapping file path to review text (default)
//   - text     — human-readable terminal output, one section per file
//   - markdown — PR-comment-friendly with a collapsible section per file
//
// Use [GetWriter] to obtain a [Writer] for a given format string;
// [WriteReviews] is a convenience helper that handles destination
// selection (file path or stdout).
package output
