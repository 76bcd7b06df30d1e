package launch

import (
	"context"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/PalDadhaniya/Attendance-Tracker/internal/model"
)

// Spec describes a single child-process launch.
type Spec struct {
	// Dir is the working directory for the child process. The
	// development server resolves manage.py, templates, and the
	// database relative to this directory.
	Dir string

	// Command is the full argv, e.g.
	// ["python3", "manage.py", "runserver", "0.0.0.0:8000"].
	Command []string

	// Env holds additional environment variables in "KEY=value" form,
	// appended to the parent's environment. Usually empty.
	Env []string

	// Stdout, Stderr, and Stdin override the child's stdio streams.
	// Nil values default to the parent's own streams, which is the
	// normal foreground-launch behavior; tests substitute buffers.
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// Runner launches a child process in the foreground and manages its
// lifecycle until it exits.
//
// The struct is stateless; it exists as a receiver so the CLI layer can
// hold it as a dependency and tests can exercise the full contract
// without going through cobra.
type Runner struct{}

// NewRunner creates a new Runner instance.
func NewRunner() *Runner {
	return &Runner{}
}

// Run starts the process described by spec and blocks until it exits,
// returning the child's exit code.
//
// Lifecycle contract:
//   - The child's stdio is wired to the parent's terminal (or the
//     overrides in spec), so all server diagnostics appear verbatim.
//   - SIGINT and SIGTERM received by the parent while the child runs
//     are relayed to the child, so Ctrl+C stops the server and returns
//     the terminal to the operator.
//   - Cancelling ctx sends the child a SIGTERM (graceful, matching what
//     a terminal interrupt would do) rather than a hard kill.
//   - The child's exit code is returned verbatim, whether it exited
//     normally or with a failure. A nil error with a non-zero code
//     means "the child failed, and that is its report to make".
//     When the child dies from a signal, the conventional 128+signal
//     code is returned, matching what a shell would report.
//
// Run itself only errors when the process could not be started at all
// (ExitLaunchFailed) or when waiting on it failed unexpectedly.
func (r *Runner) Run(ctx context.Context, spec Spec) (int, error) {
	if len(spec.Command) == 0 {
		return 0, model.NewCLIError(model.ExitLaunchFailed, "launch command must not be empty")
	}

	// #nosec G204 — the command comes from validated configuration,
	// which is the operator's own input; running it is the entire point.
	cmd := exec.Command(spec.Command[0], spec.Command[1:]...)
	cmd.Dir = spec.Dir
	cmd.Stdout = orDefault(spec.Stdout, os.Stdout)
	cmd.Stderr = orDefault(spec.Stderr, os.Stderr)
	if spec.Stdin != nil {
		cmd.Stdin = spec.Stdin
	} else {
		cmd.Stdin = os.Stdin
	}
	if len(spec.Env) > 0 {
		cmd.Env = append(os.Environ(), spec.Env...)
	}

	if err := cmd.Start(); err != nil {
		return 0, model.WrapCLIError(model.ExitLaunchFailed,
			"failed to start "+strings.Join(spec.Command, " "), err)
	}

	// Relay interrupts to the child for as long as it runs. The relay
	// goroutine exits when done is closed after Wait returns; signal.Stop
	// restores default signal handling so a second Ctrl+C during our own
	// teardown still kills the parent.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		// ctxDone is nilled out after the first cancellation so the
		// closed channel does not spin the loop.
		ctxDone := ctx.Done()
		for {
			select {
			case sig := <-sigCh:
				forward(cmd, sig)
			case <-ctxDone:
				forward(cmd, syscall.SIGTERM)
				ctxDone = nil
			case <-done:
				return
			}
		}
	}()

	err := cmd.Wait()
	close(done)
	signal.Stop(sigCh)

	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			// Shell convention for signal deaths (e.g., 130 for SIGINT).
			return 128 + int(ws.Signal()), nil
		}
		return exitErr.ExitCode(), nil
	}
	return 0, model.WrapCLIError(model.ExitGeneralError, "failed waiting for server process", err)
}

// forward delivers sig to the child, degrading to Kill on platforms
// (notably Windows) where arbitrary signal delivery is unsupported.
func forward(cmd *exec.Cmd, sig os.Signal) {
	if cmd.Process == nil {
		return
	}
	if err := cmd.Process.Signal(sig); err != nil {
		_ = cmd.Process.Kill()
	}
}

// orDefault returns w unless it is nil, in which case fallback is used.
func orDefault(w io.Writer, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
