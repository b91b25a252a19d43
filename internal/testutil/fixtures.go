package testutil

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wagnert/meta/internal/config"
	"github.com/wagnert/meta/internal/system"
)

//go:embed fixtures
var fixturesFS embed.FS

const (
	templatesRoot = "fixtures/templates"
	resourcesRoot = "fixtures/os-specific"
)

// LoadFixture loads a fixture file by its path below fixtures/.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile(path.Join("fixtures", name))
}

// TemplateTargets returns the targets that have a template fixture, sorted.
func TemplateTargets() ([]string, error) {
	var targets []string
	err := fs.WalkDir(fixturesFS, templatesRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel := strings.TrimPrefix(p, templatesRoot+"/")
		targets = append(targets, strings.TrimSuffix(rel, config.TemplateSuffix))
		return nil
	})
	sort.Strings(targets)
	return targets, err
}

// writeFunc stores one fixture file at an absolute path.
type writeFunc func(path string, data []byte) error

// install walks the embedded skeleton and hands every file to write with its
// location below paths.
func install(paths *config.Paths, write writeFunc) error {
	roots := map[string]string{
		templatesRoot: paths.TemplatesDir,
		resourcesRoot: paths.ResourcesDir,
	}

	for root, dest := range roots {
		err := fs.WalkDir(fixturesFS, root, func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			data, err := fixturesFS.ReadFile(p)
			if err != nil {
				return err
			}
			rel := strings.TrimPrefix(p, root+"/")
			return write(filepath.Join(dest, filepath.FromSlash(rel)), data)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// InstallMock copies the skeleton into a MockFS.
func InstallMock(mockFS *system.MockFS, paths *config.Paths) error {
	return install(paths, func(p string, data []byte) error {
		mockFS.AddFile(p, data, 0o644)
		return nil
	})
}

// InstallOnDisk copies the skeleton below paths on the real file system.
func InstallOnDisk(paths *config.Paths) error {
	return install(paths, func(p string, data []byte) error {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		return os.WriteFile(p, data, 0o644)
	})
}
