// Package testutil provides test fixtures and utilities.
//
// The fixtures directory is an installation skeleton embedded with go:embed:
//
//	fixtures/templates/<target>.tmpl
//	fixtures/os-specific/<family>/<resource>
//
// # Test Environments
//
// NewTestEnv installs the skeleton into a MockFS below /opt/appserver and
// makes it the default app for the duration of the test:
//
//	func TestPostInstall(t *testing.T) {
//	    env := testutil.NewTestEnv(t, platform.FamilyLinux)
//	    env.AddMarker("fedora-release")
//	    // run commands against app.Default
//	    xml := env.File("etc/appserver/appserver.xml")
//	}
//
// InstallOnDisk copies the same skeleton into a real directory for tests
// that exercise the OS file system.
package testutil
