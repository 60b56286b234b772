//go:build !windows

package automation

import (
	"riotswch/internal/config"
	"riotswch/internal/sys"
)

// New returns Unsupported: there is no WScript.Shell outside Windows.
func New(sys.Runner, config.Automation) Injector {
	return Unsupported{}
}
