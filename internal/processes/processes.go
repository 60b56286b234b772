package processes

import (
	"time"

	"riotswch/internal/sys"
)

// MultipleClientsFlag lets a fresh client start while another instance is
// still shutting down.
const MultipleClientsFlag = "--allow-multiple-clients"

// Terminator closes every Riot Client process it knows by name.
type Terminator struct {
	Runner sys.Runner
	Names  []string
	// Settle is slept after the kills so the OS releases file locks before relaunch.
	Settle time.Duration
}

func NewTerminator(r sys.Runner, settle time.Duration) *Terminator {
	return &Terminator{
		Runner: r,
		Names:  Names,
		Settle: settle,
	}
}

// Terminate is best effort: processes that are not running, or that refuse
// to die, are skipped without error.
func (t *Terminator) Terminate() {
	for _, name := range t.Names {
		bin, args := killCommand(name)
		_ = t.Runner.Run(bin, args...)
	}
	if t.Settle > 0 {
		time.Sleep(t.Settle)
	}
}

// Launcher starts the Riot Client launcher without waiting on it.
type Launcher struct {
	Runner sys.Runner
	Args   []string
}

func NewLauncher(r sys.Runner, extraArgs []string) *Launcher {
	args := append([]string{MultipleClientsFlag}, extraArgs...)
	return &Launcher{Runner: r, Args: args}
}

// Launch only reports whether the OS accepted the spawn. The client window
// is not there yet when it returns.
func (l *Launcher) Launch(path string) error {
	return l.Runner.StartDetached(path, l.Args...)
}
