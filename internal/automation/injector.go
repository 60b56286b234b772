// Package automation types a username and password into the Riot Client
// login form by spawning a short-lived script that drives the UI.
//
// Only Windows has an injector; New returns Unsupported elsewhere. The
// script is fire-and-forget: once PowerShell has been spawned nothing about
// its progress (including a missing window) reaches the caller.
package automation

import (
	"context"

	"riotswch/internal/account"
	"riotswch/internal/config"
	"riotswch/internal/sys"
)

// Injector fills the client's login form.
type Injector interface {
	// Supported reports whether this platform can inject at all.
	Supported() bool
	// Inject spawns the automation and returns once the spawn succeeded or failed.
	Inject(ctx context.Context, creds account.Credentials) error
}

// Unsupported is the injector for platforms without UI scripting.
type Unsupported struct{}

func (Unsupported) Supported() bool { return false }

func (Unsupported) Inject(context.Context, account.Credentials) error {
	return ErrUnsupported
}

// PowerShell drives WScript.Shell through a hidden powershell.exe.
type PowerShell struct {
	Runner sys.Runner
	Timing config.Automation
	// Shell is the interpreter to spawn, "powershell" unless set.
	Shell string
}

func NewPowerShell(r sys.Runner, timing config.Automation) *PowerShell {
	return &PowerShell{Runner: r, Timing: timing, Shell: "powershell"}
}

func (p *PowerShell) Supported() bool { return true }

func (p *PowerShell) Inject(ctx context.Context, creds account.Credentials) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.Runner.StartHiddenDetached(p.shell(), Args(BuildScript(creds, p.Timing))...)
}

func (p *PowerShell) shell() string {
	if p.Shell == "" {
		return "powershell"
	}
	return p.Shell
}

// Args is the powershell.exe command line that runs script.
func Args(script string) []string {
	return []string{
		"-NoProfile",
		"-ExecutionPolicy",
		"Bypass",
		"-WindowStyle",
		"Hidden",
		"-Command",
		script,
	}
}
