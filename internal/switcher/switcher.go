// Package switcher runs the account switch: close the client, find it,
// start it again and, where supported, type the credentials in.
package switcher

import (
	"context"

	hclog "github.com/hashicorp/go-hclog"

	"riotswch/internal/account"
	"riotswch/internal/automation"
	"riotswch/internal/config"
	"riotswch/internal/locator"
	"riotswch/internal/logging"
	"riotswch/internal/processes"
	"riotswch/internal/sys"
)

type Terminator interface {
	Terminate()
}

type Resolver interface {
	Resolve() (string, error)
}

type Launcher interface {
	Launch(path string) error
}

type Switcher struct {
	Terminator Terminator
	Resolver   Resolver
	Launcher   Launcher
	Injector   automation.Injector
	Logger     hclog.Logger
}

// New wires the production components for this platform.
func New(cfg config.Config, logger hclog.Logger) *Switcher {
	if logger == nil {
		logger = logging.Discard()
	}
	runner := sys.ExecRunner{}
	return &Switcher{
		Terminator: processes.NewTerminator(runner, cfg.Terminator.Settle.Std()),
		Resolver:   locator.New(cfg.Launcher),
		Launcher:   processes.NewLauncher(runner, cfg.Launcher.Args),
		Injector:   automation.New(runner, cfg.Automation),
		Logger:     logger,
	}
}

// Switch runs the steps in order and stops at the first one that fails.
// Nothing is rolled back: a client that was started stays up even if the
// login automation could not be spawned. Success means every spawn was
// accepted, not that the login went through.
func (s *Switcher) Switch(ctx context.Context, creds account.Credentials) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := s.logger()

	log.Debug("closing running Riot Client processes")
	s.Terminator.Terminate()

	path, err := s.Resolver.Resolve()
	if err != nil {
		log.Error("installation lookup failed", "error", err)
		return err
	}

	log.Info("launching Riot Client", "path", path)
	if err := s.Launcher.Launch(path); err != nil {
		launchErr := &LaunchError{Path: path, Err: err}
		log.Error("launch failed", "error", launchErr)
		return launchErr
	}

	if !s.Injector.Supported() {
		log.Info("login automation not available on this platform, log in manually")
		return nil
	}

	log.Debug("spawning login automation", "username_len", len(creds.Username))
	if err := s.Injector.Inject(ctx, creds); err != nil {
		autoErr := &AutomationError{Err: err}
		log.Error("login automation failed", "error", autoErr)
		return autoErr
	}
	return nil
}

func (s *Switcher) logger() hclog.Logger {
	if s.Logger == nil {
		return logging.Discard()
	}
	return s.Logger
}
