// Package gitctx provides read-only access to a git repository.
//
// It shells out to git for the three operations the review pipeline
// needs: listing files changed between two refs, extracting the unified
// diff for a single path, and reading a file's content at a ref. Every
// failure surfaces as a [*VcsError] carrying the argv, exit code, and
// captured stderr of the command that failed. No operation mutates the
// repository.
package gitctx
