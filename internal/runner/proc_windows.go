//go:build windows

package runner

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

const errorNoData syscall.Errno = 232

// setProcessGroup keeps exec's default cancellation, which kills the child.
func setProcessGroup(cmd *exec.Cmd) {}

func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.ERROR_BROKEN_PIPE) || errors.Is(err, errorNoData) || errors.Is(err, os.ErrClosed)
}
