package switcher

import (
	"fmt"

	"riotswch/internal/locator"
)

// ErrInstallationNotFound: no override or known location holds the launcher.
var ErrInstallationNotFound = locator.ErrInstallationNotFound

// LaunchError means the OS refused to start the launcher.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch Riot Client: %v", e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// AutomationError means the login script could not be spawned. The client
// itself was already started and keeps running.
type AutomationError struct {
	Err error
}

func (e *AutomationError) Error() string {
	return fmt.Sprintf("failed to automate Riot login: %v", e.Err)
}

func (e *AutomationError) Unwrap() error { return e.Err }
