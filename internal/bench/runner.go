package bench

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
)

// execCommand allows tests to stub subprocess creation.
var execCommand = exec.CommandContext

// Runner abstracts the build and bench subprocess invocations so
// commands can be tested without a toolchain on PATH.
type Runner interface {
	BuildRelease(ctx context.Context, repoPath string) error
	RunBench(ctx context.Context, fn string, parameter int, repoPath string) (string, error)
}

// ExecRunner implements Runner by shelling out to the checkout's build
// and bench commands. Both calls block until the child exits; there is
// no timeout, a hung build blocks the harness.
type ExecRunner struct {
	buildArgs []string
	benchArgs []string
}

// NewExecRunner builds a runner from a release-build invocation and a
// bench invocation prefix (fn name and parameter are appended per run).
func NewExecRunner(buildArgs, benchArgs []string) *ExecRunner {
	return &ExecRunner{buildArgs: buildArgs, benchArgs: benchArgs}
}

// BuildRelease runs the release build inside repoPath. A non-zero exit
// aborts the run with the captured output; there is no retry.
func (r *ExecRunner) BuildRelease(ctx context.Context, repoPath string) error {
	if len(r.buildArgs) == 0 {
		return fmt.Errorf("no build command configured")
	}
	cmd := execCommand(ctx, r.buildArgs[0], r.buildArgs[1:]...)
	cmd.Dir = repoPath
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("release build failed in %s: %w\nOutput:\n%s", repoPath, err, out.String())
	}
	return nil
}

// RunBench invokes one bench function with the sampled parameter and
// returns the raw stdout. Stderr is discarded: the timing line is
// printed on stdout and build noise would only confuse the parser.
func (r *ExecRunner) RunBench(ctx context.Context, fn string, parameter int, repoPath string) (string, error) {
	if len(r.benchArgs) == 0 {
		return "", fmt.Errorf("no bench command configured")
	}
	args := append(append([]string{}, r.benchArgs[1:]...), fn, strconv.Itoa(parameter))
	cmd := execCommand(ctx, r.benchArgs[0], args...)
	cmd.Dir = repoPath
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("bench %s(%d) failed in %s: %w", fn, parameter, repoPath, err)
	}
	return out.String(), nil
}
