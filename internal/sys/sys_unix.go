//go:build unix

package sys

import (
	"os/exec"
	"syscall"
)

// ConfigureCommand is a no-op outside Windows.
func ConfigureCommand(cmd *exec.Cmd) {}

// Detach starts the child in a new session, away from our terminal.
func Detach(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setsid = true
}
