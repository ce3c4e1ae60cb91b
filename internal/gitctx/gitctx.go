package gitctx

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// VcsError reports a failed git invocation. It carries the argv that was
// run, the process exit code, and whatever git wrote to stderr.
type VcsError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *VcsError) Error() string {
	msg := fmt.Sprintf("git %s", strings.Join(e.Args, " "))
	if e.ExitCode != 0 {
		msg = fmt.Sprintf("%s: exit status %d", msg, e.ExitCode)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg = fmt.Sprintf("%s: %s", msg, s)
	}
	if e.Err != nil && e.ExitCode == 0 {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *VcsError) Unwrap() error { return e.Err }

// IsVcsError reports whether err (or anything it wraps) is a *VcsError.
func IsVcsError(err error) bool {
	var ve *VcsError
	return errors.As(err, &ve)
}

// Repo runs read-only git commands inside a working directory.
// An empty Dir means the current working directory.
type Repo struct {
	Dir string
}

// NewRepo creates a Repo scoped to dir.
func NewRepo(dir string) *Repo {
	return &Repo{Dir: dir}
}

// ChangedFiles lists the paths that differ between target and source,
// in the order git reports them. Lines are trimmed and blanks dropped.
func (r *Repo) ChangedFiles(source, target string) ([]string, error) {
	out, err := r.git("diff", "--name-only", target+".."+source)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// FileDiff returns the unified diff for a single path between target and
// source. The result may be empty, e.g. for a pure rename.
func (r *Repo) FileDiff(source, target, path string) (string, error) {
	return r.git("diff", target+".."+source, "--", path)
}

// FileContent returns the full content of path as it exists at ref.
// Fails when the path is absent at ref, such as a deleted file.
func (r *Repo) FileContent(ref, path string) (string, error) {
	return r.git("show", ref+":"+path)
}

func (r *Repo) git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &VcsError{
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Stderr:   string(exitErr.Stderr),
				Err:      err,
			}
		}
		return "", &VcsError{Args: args, Err: err}
	}
	return string(out), nil
}
