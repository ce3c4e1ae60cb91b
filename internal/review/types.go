package review

import "context"

// FileReview is the review of a single changed file.
type FileReview struct {
	Path     string `json:"path"`
	Comments string `json:"comments"`
}

// FileContext pairs the diff patch for a changed file with its full
// content at the source ref. Deleted marks files that no longer exist at
// the source ref, in which case Content is empty.
type FileContext struct {
	Diff    string
	Content string
	Deleted bool
}

// VersionControl is the version-control collaborator contract. All three
// operations are read-only; gitctx.Repo is the production implementation.
type VersionControl interface {
	ChangedFiles(source, target string) ([]string, error)
	FileDiff(source, target, path string) (string, error)
	FileContent(ref, path string) (string, error)
}

// Generator is the model-inference collaborator contract: one prompt in,
// one generated text out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
