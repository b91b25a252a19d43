package app

import (
	"io"
	"os"

	"github.com/wagnert/meta/internal/config"
	"github.com/wagnert/meta/internal/logging"
	"github.com/wagnert/meta/internal/platform"
	"github.com/wagnert/meta/internal/setup"
	"github.com/wagnert/meta/internal/system"
)

// App holds the application dependencies
type App struct {
	// Paths holds the installation layout
	Paths *config.Paths

	// FS performs all file operations
	FS system.FileSystem

	// Executor runs the PHP version query
	Executor system.CommandExecutor

	// Family is the OS family the setup runs for
	Family platform.Family

	// Stdout receives command output
	Stdout io.Writer
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithFS sets a custom file system
func WithFS(fsys system.FileSystem) Option {
	return func(a *App) {
		a.FS = fsys
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(exec system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = exec
	}
}

// WithFamily overrides the detected OS family
func WithFamily(family platform.Family) Option {
	return func(a *App) {
		a.Family = family
	}
}

// WithOutput sets the writer for command output
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.Stdout = w
	}
}

// New creates a new App with the given options.
// Paths default to the current working directory as installation directory.
func New(opts ...Option) *App {
	app := &App{
		FS:       system.DefaultFS(),
		Executor: system.DefaultExecutor(),
		Family:   platform.CurrentFamily(),
		Stdout:   os.Stdout,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.Paths == nil {
		cwd, err := os.Getwd()
		if err != nil {
			logging.Debug("failed to determine working directory", "error", err)
			cwd = "."
		}
		app.Paths = config.DefaultPaths(cwd)
	}

	return app
}

// Setup creates a post-install run over the app's dependencies.
func (a *App) Setup(opts ...setup.Option) *setup.Setup {
	opts = append([]setup.Option{setup.WithExecutor(a.Executor)}, opts...)
	return setup.New(a.FS, a.Paths, a.Family, opts...)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
