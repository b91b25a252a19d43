package config

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

const (
	// TemplatesSubdir holds the template sources relative to the installation directory.
	TemplatesSubdir = "resources/templates"

	// OSSpecificSubdir holds the per family resources relative to the installation directory.
	OSSpecificSubdir = "resources/os-specific"

	// TemplateSuffix is appended to a target path to find its template source.
	TemplateSuffix = ".tmpl"
)

// File and directory modes applied to generated files.
const (
	// DefaultFileMode is used for rendered configuration files and copied resources.
	DefaultFileMode fs.FileMode = 0o664

	// ExecutableMode is used for control scripts and binaries.
	ExecutableMode fs.FileMode = 0o775

	// DirMode is used for directories created on demand.
	DirMode fs.FileMode = 0o775
)

// Paths holds the configured paths
type Paths struct {
	InstallDir   string
	EtcDir       string
	TemplatesDir string
	ResourcesDir string
}

// DefaultPaths returns the path configuration for an installation directory
func DefaultPaths(installDir string) *Paths {
	return &Paths{
		InstallDir:   installDir,
		EtcDir:       "/etc",
		TemplatesDir: filepath.Join(installDir, TemplatesSubdir),
		ResourcesDir: filepath.Join(installDir, OSSpecificSubdir),
	}
}

// Target returns the absolute location of a path relative to the
// installation directory. Absolute paths and paths leaving InstallDir
// through ".." are rejected.
func (p *Paths) Target(rel string) (string, error) {
	return joinBelow(p.InstallDir, rel)
}

// Template returns the template source for a target path.
func (p *Paths) Template(target string) (string, error) {
	return joinBelow(p.TemplatesDir, target+TemplateSuffix)
}

// Resource returns the OS specific source of a resource.
func (p *Paths) Resource(family, rel string) (string, error) {
	dir, err := joinBelow(p.ResourcesDir, family)
	if err != nil {
		return "", err
	}
	return joinBelow(dir, rel)
}

// joinBelow joins rel onto base. rel must be a relative path that stays
// below base lexically; symlinks inside base are followed by the caller's
// file operations like any other path.
func joinBelow(base, rel string) (string, error) {
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("path %q is not relative to %s", rel, base)
	}
	return filepath.Join(base, rel), nil
}
