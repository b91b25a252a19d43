// Package app provides the application context for appserver-setup.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Paths    *config.Paths           // Installation layout
//	    FS       system.FileSystem       // File operations
//	    Executor system.CommandExecutor  // PHP version query
//	    Family   platform.Family         // OS family of the run
//	    Stdout   io.Writer               // Command output
//	}
//
// # Creating an App
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithPaths(config.DefaultPaths(tmpDir)),
//	    app.WithFS(system.NewMockFS()),
//	    app.WithFamily(platform.FamilyDarwin),
//	)
//
// # Available Options
//
//	WithPaths(paths)        // Custom installation layout
//	WithFS(fs)              // Custom file system
//	WithExecutor(exec)      // Custom command executor
//	WithFamily(family)      // Pretend to run on another OS family
//	WithOutput(w)           // Redirect command output
package app
