package dispatch

import (
	"context"
	"errors"
	"os"
	"os/exec"

	dispatchio "github.com/dzonerzy/go-dispatch/io"
)

// Spawn runs an external program with the given arguments, wiring the child's
// standard streams to the IOManager. It returns nil on exit code 0 and an
// *ExitError carrying the child's exit code otherwise, so handler failures
// from child processes map directly onto the dispatcher's exit-code handling.
func Spawn(ctx context.Context, io *dispatchio.IOManager, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = io.In()
	cmd.Stdout = io.Out()
	cmd.Stderr = io.Err()
	cmd.Env = os.Environ()
	return toExitError(cmd.Run())
}

// toExitError normalizes a child process failure: a non-zero exit becomes an
// *ExitError with the child's code, any other failure becomes code 1.
func toExitError(err error) error {
	if err == nil {
		return nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &ExitError{Code: ee.ExitCode(), Err: err}
	}
	return &ExitError{Code: 1, Err: err}
}
