package locator

import (
	"errors"
	"io/fs"
	"os"

	"riotswch/internal/config"
	"riotswch/internal/registry"
)

var ErrInstallationNotFound = errors.New("unable to find Riot Client installation path")

// Candidates are the conventional launcher locations, in precedence order.
var Candidates = []string{
	`C:\Riot Games\Riot Client\RiotClientServices.exe`,
	`C:\Program Files\Riot Games\Riot Client\RiotClientServices.exe`,
	"/Applications/Riot Client.app/Contents/MacOS/Riot Client",
}

// Source yields launcher paths found somewhere other than the fixed list.
// It is consulted on every Resolve, after the candidates.
type Source func() []string

// Locator finds the Riot Client launcher. Nothing is cached: every Resolve
// checks the filesystem again.
type Locator struct {
	OverrideEnv string
	Candidates  []string
	Sources     []Source

	Getenv func(string) string
	Stat   func(string) (fs.FileInfo, error)
}

func New(cfg config.Launcher) *Locator {
	candidates := make([]string, 0, len(Candidates)+len(cfg.ExtraCandidates))
	candidates = append(candidates, Candidates...)
	candidates = append(candidates, cfg.ExtraCandidates...)

	return &Locator{
		OverrideEnv: cfg.OverrideEnv,
		Candidates:  candidates,
		Sources: []Source{
			InstallsManifest(func() string { return os.Getenv("ProgramData") }),
			Registry,
		},
		Getenv: os.Getenv,
		Stat:   os.Stat,
	}
}

// Resolve returns the first existing path in the order: override variable,
// candidates, sources. Existence is all that is checked.
func (l *Locator) Resolve() (string, error) {
	if l.OverrideEnv != "" {
		if custom := l.Getenv(l.OverrideEnv); custom != "" && l.exists(custom) {
			return custom, nil
		}
	}

	for _, candidate := range l.Candidates {
		if l.exists(candidate) {
			return candidate, nil
		}
	}

	for _, source := range l.Sources {
		for _, found := range source() {
			if l.exists(found) {
				return found, nil
			}
		}
	}

	return "", ErrInstallationNotFound
}

func (l *Locator) exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := l.Stat(path)
	return err == nil
}

// Registry reports the launcher recorded by the Riot installer (Windows only).
func Registry() []string {
	path, err := registry.RiotClientServicesPath()
	if err != nil {
		return nil
	}
	return []string{path}
}
