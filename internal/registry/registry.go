// Package registry reads Riot Client install information from the Windows
// registry. On other systems every lookup fails with ErrUnsupported.
package registry

import (
	"errors"
	"strings"
)

// RiotClientUninstallKey is written by the Riot installer for the client itself.
const RiotClientUninstallKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Uninstall\Riot Game Riot_Client.`

var ErrUnsupported = errors.New("registry is not available on this platform")

// RiotClientServicesPath returns the launcher the uninstall entry points at.
func RiotClientServicesPath() (string, error) {
	uninstall, err := GetStringValue(RiotClientUninstallKey, "UninstallString")
	if err != nil {
		return "", err
	}
	path := executableFromCommandLine(uninstall)
	if path == "" {
		return "", errors.New("empty UninstallString")
	}
	return path, nil
}

// executableFromCommandLine takes the program part of a command line such as
//
//	"C:\Riot Games\Riot Client\RiotClientServices.exe" --uninstall-product=valorant
func executableFromCommandLine(cmdline string) string {
	cmdline = strings.TrimSpace(cmdline)
	if strings.HasPrefix(cmdline, `"`) {
		rest := cmdline[1:]
		if end := strings.IndexByte(rest, '"'); end >= 0 {
			return rest[:end]
		}
		return rest
	}
	if i := strings.Index(strings.ToLower(cmdline), ".exe"); i >= 0 {
		return cmdline[:i+len(".exe")]
	}
	if fields := strings.Fields(cmdline); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
