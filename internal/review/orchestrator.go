package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/TheRochVoices/ai-pr-review/internal/gitctx"
	"github.com/rs/zerolog"
)

// Orchestrator drives the review pipeline: list changed files, gather
// per-file context, build a prompt, and call the model, one file at a
// time. Files are processed strictly in the order the version-control
// collaborator reports them, and output order matches input order.
type Orchestrator struct {
	vcs VersionControl
	gen Generator
	log zerolog.Logger
}

// NewOrchestrator creates an Orchestrator from its two collaborators.
func NewOrchestrator(vcs VersionControl, gen Generator, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{vcs: vcs, gen: gen, log: log}
}

// ListChangedFiles returns the ordered paths that differ between target
// and source.
func (o *Orchestrator) ListChangedFiles(source, target string) ([]string, error) {
	if source == "" || target == "" {
		return nil, fmt.Errorf("source and target refs must not be empty")
	}
	return o.vcs.ChangedFiles(source, target)
}

// FetchFileContext gathers the diff and full source-ref content for one
// changed path. A file absent at the source ref (deleted on the feature
// branch) degrades to a diff-only context instead of failing: the diff
// fetch succeeding first proves both refs resolve.
func (o *Orchestrator) FetchFileContext(source, target, path string) (FileContext, error) {
	diff, err := o.vcs.FileDiff(source, target, path)
	if err != nil {
		return FileContext{}, fmt.Errorf("diff for %s: %w", path, err)
	}

	content, err := o.vcs.FileContent(source, path)
	if err != nil {
		var ve *gitctx.VcsError
		if errors.As(err, &ve) {
			o.log.Warn().Str("path", path).Msg("file absent at source ref, reviewing diff only")
			return FileContext{Diff: diff, Deleted: true}, nil
		}
		return FileContext{}, fmt.Errorf("content of %s at %s: %w", path, source, err)
	}

	return FileContext{Diff: diff, Content: content}, nil
}

// Review produces one FileReview per file changed between target and
// source, in changeset order. Any collaborator failure aborts the whole
// batch; no partial results are returned.
func (o *Orchestrator) Review(ctx context.Context, source, target string) ([]FileReview, error) {
	files, err := o.ListChangedFiles(source, target)
	if err != nil {
		return nil, err
	}
	o.log.Info().Int("files", len(files)).
		Str("source", source).Str("target", target).
		Msg("reviewing changed files")

	reviews := make([]FileReview, 0, len(files))
	for _, path := range files {
		fc, err := o.FetchFileContext(source, target, path)
		if err != nil {
			return nil, err
		}

		var prompt string
		if fc.Deleted {
			prompt = BuildDeletedPrompt(path, fc.Diff, source, target)
		} else {
			prompt = BuildPrompt(path, fc.Diff, fc.Content, source, target)
		}

		o.log.Debug().Str("path", path).Int("promptBytes", len(prompt)).Msg("invoking model")
		comments, err := o.gen.Generate(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("review of %s: %w", path, err)
		}

		reviews = append(reviews, FileReview{Path: path, Comments: comments})
	}

	return reviews, nil
}
