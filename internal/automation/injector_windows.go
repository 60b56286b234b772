//go:build windows

package automation

import (
	"riotswch/internal/config"
	"riotswch/internal/sys"
)

func New(r sys.Runner, timing config.Automation) Injector {
	return NewPowerShell(r, timing)
}
