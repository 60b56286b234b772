package sys

import (
	"os/exec"
)

// Runner runs OS commands. Production code uses ExecRunner; tests swap in fakes.
type Runner interface {
	// Run executes a helper command and waits for it to exit.
	Run(name string, args ...string) error
	// StartDetached spawns a process that outlives the caller and returns
	// as soon as the OS accepted or rejected it.
	StartDetached(name string, args ...string) error
	// StartHiddenDetached is StartDetached for console helpers.
	StartHiddenDetached(name string, args ...string) error
}

type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	ConfigureCommand(cmd)
	return cmd.Run()
}

func (ExecRunner) StartDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	Detach(cmd)
	return startAndReap(cmd)
}

// StartHiddenDetached is StartDetached for console helpers (powershell) whose
// window must never flash up in front of the client.
func (ExecRunner) StartHiddenDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	ConfigureCommand(cmd)
	Detach(cmd)
	return startAndReap(cmd)
}

// startAndReap hands the exit status to a background goroutine so the child
// does not linger as a zombie. Callers never see it.
func startAndReap(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
