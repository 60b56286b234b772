package switcher

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riotswch/internal/account"
	"riotswch/internal/automation"
	"riotswch/internal/config"
	"riotswch/internal/locator"
	"riotswch/internal/logging"
	"riotswch/internal/processes"
	"riotswch/internal/sys"
)

type recorder struct {
	steps []string
}

type fakeTerminator struct{ r *recorder }

func (f fakeTerminator) Terminate() { f.r.steps = append(f.r.steps, "terminate") }

type fakeResolver struct {
	r    *recorder
	path string
	err  error
}

func (f fakeResolver) Resolve() (string, error) {
	f.r.steps = append(f.r.steps, "resolve")
	return f.path, f.err
}

type fakeLauncher struct {
	r   *recorder
	err error
}

func (f fakeLauncher) Launch(path string) error {
	f.r.steps = append(f.r.steps, "launch "+path)
	return f.err
}

type fakeInjector struct {
	r         *recorder
	supported bool
	err       error
	got       *account.Credentials
}

func (f fakeInjector) Supported() bool { return f.supported }

func (f fakeInjector) Inject(_ context.Context, creds account.Credentials) error {
	f.r.steps = append(f.r.steps, "inject")
	if f.got != nil {
		*f.got = creds
	}
	return f.err
}

func newTestSwitcher(r *recorder) *Switcher {
	return &Switcher{
		Terminator: fakeTerminator{r},
		Resolver:   fakeResolver{r: r, path: "/opt/riot/RiotClientServices"},
		Launcher:   fakeLauncher{r: r},
		Injector:   fakeInjector{r: r, supported: true},
	}
}

func TestSwitchRunsStepsInOrder(t *testing.T) {
	r := &recorder{}
	var got account.Credentials
	s := newTestSwitcher(r)
	s.Injector = fakeInjector{r: r, supported: true, got: &got}

	creds := account.NewCredentials("alice", "hunter2")
	require.NoError(t, s.Switch(context.Background(), creds))

	assert.Equal(t, []string{"terminate", "resolve", "launch /opt/riot/RiotClientServices", "inject"}, r.steps)
	assert.Equal(t, creds, got)
}

func TestSwitchInstallationNotFoundStopsBeforeLaunch(t *testing.T) {
	r := &recorder{}
	s := newTestSwitcher(r)
	s.Resolver = fakeResolver{r: r, err: locator.ErrInstallationNotFound}

	err := s.Switch(context.Background(), account.NewCredentials("a", "b"))
	assert.ErrorIs(t, err, ErrInstallationNotFound)
	assert.Equal(t, "unable to find Riot Client installation path", err.Error())
	assert.Equal(t, []string{"terminate", "resolve"}, r.steps)
}

func TestSwitchLaunchFailureSkipsInjection(t *testing.T) {
	r := &recorder{}
	osErr := errors.New("fork/exec /opt/riot/RiotClientServices: permission denied")
	s := newTestSwitcher(r)
	s.Launcher = fakeLauncher{r: r, err: osErr}

	err := s.Switch(context.Background(), account.NewCredentials("a", "b"))

	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, "/opt/riot/RiotClientServices", launchErr.Path)
	assert.ErrorIs(t, err, osErr)
	assert.Equal(t, "failed to launch Riot Client: fork/exec /opt/riot/RiotClientServices: permission denied", err.Error())
	assert.NotContains(t, r.steps, "inject")
}

func TestSwitchUnsupportedPlatformSucceedsAfterLaunch(t *testing.T) {
	r := &recorder{}
	s := newTestSwitcher(r)
	s.Injector = automation.Unsupported{}

	require.NoError(t, s.Switch(context.Background(), account.NewCredentials("a", "b")))
	assert.Equal(t, []string{"terminate", "resolve", "launch /opt/riot/RiotClientServices"}, r.steps)
}

func TestSwitchAutomationFailureKeepsClient(t *testing.T) {
	r := &recorder{}
	spawnErr := errors.New("powershell not found")
	s := newTestSwitcher(r)
	s.Injector = fakeInjector{r: r, supported: true, err: spawnErr}

	err := s.Switch(context.Background(), account.NewCredentials("a", "b"))

	var autoErr *AutomationError
	require.ErrorAs(t, err, &autoErr)
	assert.ErrorIs(t, err, spawnErr)
	assert.Equal(t, "failed to automate Riot login: powershell not found", err.Error())
	// The launch happened and nothing tried to undo it.
	assert.Equal(t, []string{"terminate", "resolve", "launch /opt/riot/RiotClientServices", "inject"}, r.steps)
}

func TestSwitchCancelledBeforeStart(t *testing.T) {
	r := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestSwitcher(r).Switch(ctx, account.NewCredentials("a", "b"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, r.steps)
}

func TestSwitchNeverLogsPassword(t *testing.T) {
	var buf bytes.Buffer
	r := &recorder{}
	s := newTestSwitcher(r)
	s.Logger = logging.New("trace", &buf)
	s.Launcher = fakeLauncher{r: r, err: errors.New("denied")}

	_ = s.Switch(context.Background(), account.NewCredentials("alice", "s3cr3t-pass"))
	s.Launcher = fakeLauncher{r: r}
	require.NoError(t, s.Switch(context.Background(), account.NewCredentials("alice", "s3cr3t-pass")))

	assert.NotEmpty(t, buf.String())
	assert.NotContains(t, buf.String(), "s3cr3t-pass")
}

// spawnRecorder is a sys.Runner that records and never spawns anything.
type spawnRecorder struct {
	spawned []string
}

func (s *spawnRecorder) Run(string, ...string) error { return errors.New("no such process") }

func (s *spawnRecorder) StartDetached(name string, _ ...string) error {
	s.spawned = append(s.spawned, name)
	return nil
}

func (s *spawnRecorder) StartHiddenDetached(name string, _ ...string) error {
	s.spawned = append(s.spawned, name)
	return nil
}

func TestSwitchWithRealLocator(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "usr", "local", "app", "bin")
	require.NoError(t, os.MkdirAll(filepath.Dir(present), 0755))
	require.NoError(t, os.WriteFile(present, []byte("#!/bin/sh\n"), 0755))

	runner := &spawnRecorder{}
	s := &Switcher{
		Terminator: processes.NewTerminator(runner, 0),
		Resolver: &locator.Locator{
			OverrideEnv: "RIOT_CLIENT_PATH",
			Candidates:  []string{filepath.Join(dir, "opt", "app", "bin"), present},
			Getenv:      func(string) string { return "" },
			Stat:        os.Stat,
		},
		Launcher: processes.NewLauncher(runner, nil),
		Injector: automation.Unsupported{},
	}

	require.NoError(t, s.Switch(context.Background(), account.NewCredentials("a", "b")))
	assert.Equal(t, []string{present}, runner.spawned)
}

func TestSwitchNothingInstalledSpawnsNothing(t *testing.T) {
	runner := &spawnRecorder{}
	s := &Switcher{
		Terminator: processes.NewTerminator(runner, 0),
		Resolver: &locator.Locator{
			Candidates: []string{filepath.Join(t.TempDir(), "missing")},
			Getenv:     func(string) string { return "" },
			Stat:       os.Stat,
		},
		Launcher: processes.NewLauncher(runner, nil),
		Injector: automation.NewPowerShell(runner, config.Default().Automation),
	}

	err := s.Switch(context.Background(), account.NewCredentials("a", "b"))
	assert.ErrorIs(t, err, ErrInstallationNotFound)
	assert.Empty(t, runner.spawned)
}

func TestSwitchNonExecutableLauncher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "RiotClientServices")
	require.NoError(t, os.WriteFile(path, []byte("not a program"), 0644))

	injector := &spawnRecorder{}
	s := &Switcher{
		Terminator: processes.NewTerminator(&spawnRecorder{}, 0),
		Resolver: &locator.Locator{
			OverrideEnv: "RIOT_CLIENT_PATH",
			Getenv:      func(string) string { return path },
			Stat:        os.Stat,
		},
		Launcher: processes.NewLauncher(sys.ExecRunner{}, nil),
		Injector: automation.NewPowerShell(injector, config.Default().Automation),
	}

	err := s.Switch(context.Background(), account.NewCredentials("a", "b"))
	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, path, launchErr.Path)
	assert.Empty(t, injector.spawned)
}
