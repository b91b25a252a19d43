package testutil

import (
	"bytes"
	"testing"

	"github.com/wagnert/meta/internal/app"
	"github.com/wagnert/meta/internal/config"
	"github.com/wagnert/meta/internal/logging"
	"github.com/wagnert/meta/internal/platform"
	"github.com/wagnert/meta/internal/system"
)

// InstallDir is the installation directory used by mock environments.
const InstallDir = "/opt/appserver"

// PHPVersion is what the mock PHP binary reports.
const PHPVersion = "5.6.40"

// TestEnv holds the test environment
type TestEnv struct {
	T        *testing.T
	Paths    *config.Paths
	FS       *system.MockFS
	Executor *system.MockExecutor
	App      *app.App

	// Stdout receives command output written through the app.
	Stdout *bytes.Buffer

	// UserOut and UserErr receive the logging.User* output.
	UserOut *bytes.Buffer
	UserErr *bytes.Buffer

	cleanup func()
}

// NewTestEnv creates a mock installation for family. The mocks become the
// system defaults and the app built from them becomes app.Default until the
// test ends.
func NewTestEnv(t *testing.T, family platform.Family) *TestEnv {
	t.Helper()

	paths := config.DefaultPaths(InstallDir)

	mockFS := system.NewMockFS()
	mockFS.AddDir(paths.EtcDir)
	if err := InstallMock(mockFS, paths); err != nil {
		t.Fatalf("Failed to install fixtures: %v", err)
	}

	mockExec := system.NewMockExecutor()
	mockExec.AddResponse("php -r", []byte(PHPVersion+"\n"), nil)

	env := &TestEnv{
		T:        t,
		Paths:    paths,
		FS:       mockFS,
		Executor: mockExec,
		Stdout:   &bytes.Buffer{},
		UserOut:  &bytes.Buffer{},
		UserErr:  &bytes.Buffer{},
	}

	system.SetDefaultFS(mockFS)
	system.SetDefaultExecutor(mockExec)

	env.App = app.New(
		app.WithPaths(paths),
		app.WithFamily(family),
		app.WithOutput(env.Stdout),
	)

	originalDefault := app.Default
	app.SetDefault(env.App)
	logging.SetOutput(env.UserOut, env.UserErr)

	env.cleanup = func() {
		app.SetDefault(originalDefault)
		system.ResetDefaults()
		logging.SetOutput(nil, nil)
	}
	t.Cleanup(env.Cleanup)

	return env
}

// Cleanup restores the system defaults, the original app default and the
// user output
func (e *TestEnv) Cleanup() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}

// AddMarker creates a release marker file in the etc directory
func (e *TestEnv) AddMarker(name string) {
	e.FS.AddFile(e.Paths.EtcDir+"/"+name, []byte(name+"\n"), 0o644)
}

// AddTemplate adds or replaces the template of target
func (e *TestEnv) AddTemplate(target, body string) {
	e.T.Helper()

	src, err := e.Paths.Template(target)
	if err != nil {
		e.T.Fatalf("Invalid template target %q: %v", target, err)
	}
	e.FS.AddFile(src, []byte(body), 0o644)
}

// File returns the content of a file relative to the installation directory
func (e *TestEnv) File(rel string) string {
	e.T.Helper()

	p, err := e.Paths.Target(rel)
	if err != nil {
		e.T.Fatalf("Invalid target %q: %v", rel, err)
	}
	data, ok := e.FS.GetFile(p)
	if !ok {
		e.T.Fatalf("File %s was not written", p)
	}
	return string(data)
}

// Written returns the written paths relative to the installation directory
func (e *TestEnv) Written() []string {
	out := make([]string, 0, len(e.FS.Written))
	for _, p := range e.FS.Written {
		out = append(out, p[len(InstallDir)+1:])
	}
	return out
}
