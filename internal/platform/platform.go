package platform

import (
	"fmt"
	"io/fs"
	goruntime "runtime"
	"strings"

	"github.com/wagnert/meta/internal/logging"
	"github.com/wagnert/meta/internal/system"
)

// Family identifies the coarse operating system class
type Family string

const (
	FamilyDarwin  Family = "darwin"
	FamilyLinux   Family = "linux"
	FamilyWindows Family = "windows"
	FamilyOther   Family = "other"
)

// Distribution identifies a Linux distribution
type Distribution string

const (
	DistroArch    Distribution = "arch"
	DistroDebian  Distribution = "debian"
	DistroFedora  Distribution = "fedora"
	DistroUbuntu  Distribution = "ubuntu"
	DistroRedHat  Distribution = "redhat"
	DistroCentOS  Distribution = "centOS"
	DistroUnknown Distribution = ""
)

// DefaultEtcDir is the directory scanned for release marker files.
const DefaultEtcDir = "/etc"

// markers maps release marker file names to their distribution.
var markers = map[string]Distribution{
	"arch-release":   DistroArch,
	"debian_version": DistroDebian,
	"fedora-release": DistroFedora,
	"lsb-release":    DistroUbuntu,
	"redhat-release": DistroRedHat,
	"centos-release": DistroCentOS,
}

// MarkerFile returns the release marker file name for a distribution.
func MarkerFile(d Distribution) (string, bool) {
	for name, distro := range markers {
		if distro == d {
			return name, true
		}
	}
	return "", false
}

// Distributions returns all recognised distributions.
func Distributions() []Distribution {
	return []Distribution{DistroArch, DistroDebian, DistroFedora, DistroUbuntu, DistroRedHat, DistroCentOS}
}

// ParseFamily classifies a platform signature such as runtime.GOOS or the
// output of `uname -s`.
func ParseFamily(signature string) Family {
	switch Family(strings.ToLower(strings.TrimSpace(signature))) {
	case FamilyDarwin:
		return FamilyDarwin
	case FamilyLinux:
		return FamilyLinux
	case FamilyWindows:
		return FamilyWindows
	default:
		return FamilyOther
	}
}

// CurrentFamily returns the family of the running system.
func CurrentFamily() Family {
	return ParseFamily(goruntime.GOOS)
}

// SupportsFileModes reports whether chmod is meaningful on the family.
func (f Family) SupportsFileModes() bool {
	return f != FamilyWindows
}

// Chmod applies mode to path unless the family has no POSIX modes, in which
// case fsys is not called at all.
func (f Family) Chmod(fsys system.FileSystem, path string, mode fs.FileMode) error {
	if !f.SupportsFileModes() {
		logging.Debug("skipping mode change", "path", path, "family", f)
		return nil
	}
	return fsys.Chmod(path, mode)
}

func (f Family) String() string {
	return string(f)
}

func (d Distribution) String() string {
	if d == DistroUnknown {
		return "unknown"
	}
	return string(d)
}

// MarkerScanner decides which distribution a directory listing belongs to.
type MarkerScanner func(etcDir string) (Distribution, error)

// NewMarkerScanner returns a MarkerScanner backed by fsys.
func NewMarkerScanner(fsys system.FileSystem) MarkerScanner {
	return func(etcDir string) (Distribution, error) {
		return DetectDistribution(fsys, etcDir)
	}
}

// DetectDistribution scans etcDir for a release marker file and returns the
// distribution of the first one found, or DistroUnknown.
func DetectDistribution(fsys system.FileSystem, etcDir string) (Distribution, error) {
	if etcDir == "" {
		etcDir = DefaultEtcDir
	}

	entries, err := fsys.ReadDir(etcDir)
	if err != nil {
		return DistroUnknown, fmt.Errorf("failed to read %s: %w", etcDir, err)
	}

	for _, entry := range entries {
		if distro, ok := markers[entry.Name()]; ok {
			logging.Debug("found release marker", "dir", etcDir, "marker", entry.Name(), "distribution", distro)
			return distro, nil
		}
	}

	logging.Debug("no release marker found", "dir", etcDir)
	return DistroUnknown, nil
}
