// Package platform detects the operating system family and, on Linux, the
// distribution the application server is installed on.
//
// # OS Family
//
// The family decides which setup branch runs:
//
//	family := platform.ParseFamily(runtime.GOOS) // darwin, linux, windows or other
//
// # Distribution
//
// Distributions are recognised by their release marker file in /etc:
//
//	arch    arch-release
//	debian  debian_version
//	fedora  fedora-release
//	ubuntu  lsb-release
//	redhat  redhat-release
//	centOS  centos-release
//
// The first marker found while enumerating the directory wins. When several
// markers coexist (ubuntu ships debian_version next to lsb-release) the
// result depends on the enumeration order of the filesystem abstraction;
// os.ReadDir returns entries sorted by name.
package platform
