package review

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/TheRochVoices/ai-pr-review/internal/gitctx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupScenarioRepo builds a repo where main holds hello.py with
// print('hello') and feature changes it to print('hello world').
func setupScenarioRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test",
			"GIT_AUTHOR_EMAIL=test@test.com",
			"GIT_COMMITTER_NAME=test",
			"GIT_COMMITTER_EMAIL=test@test.com",
		)
		out, err := cmd.CombinedOutput()
		if err != nil {
			t.Fatalf("command %v failed: %v\n%s", args, err, out)
		}
	}

	run("git", "init")
	run("git", "checkout", "-b", "main")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.py"), []byte("print('hello')\n"), 0o644))
	run("git", "add", "-A")
	run("git", "commit", "-m", "init")

	run("git", "checkout", "-b", "feature")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.py"), []byte("print('hello world')\n"), 0o644))
	run("git", "add", "-A")
	run("git", "commit", "-m", "change greeting")

	return dir
}

func TestReview_AgainstRealRepo(t *testing.T) {
	repo := gitctx.NewRepo(setupScenarioRepo(t))
	gen := &stubGenerator{reply: func(string) (string, error) { return "stub response", nil }}
	orch := NewOrchestrator(repo, gen, zerolog.Nop())

	reviews, err := orch.Review(context.Background(), "feature", "main")
	require.NoError(t, err)
	require.Len(t, reviews, 1)

	assert.Equal(t, "hello.py", reviews[0].Path)
	assert.Contains(t, reviews[0].Comments, "stub response")

	// The model saw the new content, the patch, and both ref names.
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "print('hello world')")
	assert.Contains(t, gen.prompts[0], "-print('hello')")
	assert.Contains(t, gen.prompts[0], "feature")
	assert.Contains(t, gen.prompts[0], "main")
}

func TestReview_AgainstRealRepo_NoChanges(t *testing.T) {
	repo := gitctx.NewRepo(setupScenarioRepo(t))
	gen := &stubGenerator{}
	orch := NewOrchestrator(repo, gen, zerolog.Nop())

	reviews, err := orch.Review(context.Background(), "main", "main")
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.Zero(t, gen.calls)
}
