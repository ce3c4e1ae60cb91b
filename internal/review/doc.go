// Package review contains the core pipeline for per-file AI code review.
//
// The [Orchestrator] composes two collaborators — version control and
// model inference, both defined as interfaces here — into a strictly
// sequential pipeline: for every file changed between two refs it fetches
// the diff and the full source-ref content, builds a prompt embedding
// both, and records the model's answer as a [FileReview]. Output order
// always equals the changeset order, and the first collaborator failure
// aborts the whole batch.
//
// Diff and content are treated as opaque text end to end; no diff-hunk
// parsing happens anywhere in this package.
package review
