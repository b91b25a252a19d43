// Package resources copies prebuilt OS specific files into the installation
// directory.
//
// A resource "sbin/appserverctl" for darwin is copied from
// <install.dir>/resources/os-specific/darwin/sbin/appserverctl to
// <install.dir>/sbin/appserverctl.
package resources

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/wagnert/meta/internal/config"
	"github.com/wagnert/meta/internal/errors"
	"github.com/wagnert/meta/internal/logging"
	"github.com/wagnert/meta/internal/platform"
	"github.com/wagnert/meta/internal/system"
)

// Copier copies OS specific resources.
type Copier struct {
	fs     system.FileSystem
	paths  *config.Paths
	family platform.Family
}

// NewCopier creates a Copier. family is the running OS family and decides
// whether modes are applied; the source family is passed to Copy.
func NewCopier(fsys system.FileSystem, paths *config.Paths, family platform.Family) *Copier {
	return &Copier{
		fs:     fsys,
		paths:  paths,
		family: family,
	}
}

// Copy copies resource from the source family's directory to the
// installation directory and applies mode.
func (c *Copier) Copy(source platform.Family, resource string, mode fs.FileMode) error {
	src, err := c.paths.Resource(source.String(), resource)
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("invalid resource %q", resource), err)
	}
	dst, err := c.paths.Target(resource)
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("invalid resource %q", resource), err)
	}

	logging.Debug("copying resource", "source", src, "target", dst, "mode", mode)

	if !c.fs.Exists(src) {
		return errors.ResourceNotFound(src)
	}

	if err := c.fs.MkdirAll(filepath.Dir(dst), config.DirMode); err != nil {
		return errors.WriteFailed(resource, err)
	}

	if err := c.fs.CopyFile(src, dst); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.ResourceNotFound(src)
		}
		return errors.WriteFailed(resource, err)
	}

	if err := c.family.Chmod(c.fs, dst, mode); err != nil {
		return errors.PermissionFailed(resource, err)
	}
	return nil
}
