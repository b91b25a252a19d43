// Package errors provides typed errors with exit codes for appserver-setup.
//
// # Error Types
//
// SetupError is the base error type that wraps an error with an exit code:
//
//	type SetupError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// Defined exit codes for different error categories:
//
//	ExitSuccess          = 0  // Success
//	ExitGeneralError     = 1  // General/unknown errors
//	ExitTemplateNotFound = 2  // Template source does not exist
//	ExitResourceNotFound = 3  // OS specific resource does not exist
//	ExitRenderFailed     = 4  // Template could not be parsed or executed
//	ExitWriteFailed      = 5  // Target file or directory could not be written
//	ExitPermissionFailed = 6  // chmod on a target failed
//	ExitConfigError      = 7  // Property override file is invalid
//	ExitUnknownPlatform  = 8  // No property overrides for the platform id
//
// # Error Constructors
//
// Use the provided constructors for consistent error creation:
//
//	errors.TemplateNotFound("resources/templates/bin/appserver.tmpl")
//	errors.ResourceNotFound("resources/os-specific/darwin/sbin/appserverctl")
//	errors.RenderFailed("etc/appserver/appserver.xml", err)
//	errors.PermissionFailed("bin/appserver", err)
//
// # Extracting Exit Codes
//
// Use GetExitCode to extract the exit code from an error chain:
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
