//go:build windows

package sys

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// ConfigureCommand hides the console window of helper commands (taskkill, powershell).
func ConfigureCommand(cmd *exec.Cmd) {
	attr := sysProcAttr(cmd)
	attr.HideWindow = true
	attr.CreationFlags |= windows.CREATE_NO_WINDOW
}

// Detach puts the child in its own process group so it survives us and
// does not receive our console's Ctrl+C.
func Detach(cmd *exec.Cmd) {
	sysProcAttr(cmd).CreationFlags |= windows.CREATE_NEW_PROCESS_GROUP
}

func sysProcAttr(cmd *exec.Cmd) *syscall.SysProcAttr {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	return cmd.SysProcAttr
}
