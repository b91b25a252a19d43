package generator

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"text/template"

	"github.com/wagnert/meta/internal/config"
	"github.com/wagnert/meta/internal/errors"
	"github.com/wagnert/meta/internal/logging"
	"github.com/wagnert/meta/internal/platform"
	"github.com/wagnert/meta/internal/system"
)

// Renderer renders templates below an installation directory.
type Renderer struct {
	fs     system.FileSystem
	paths  *config.Paths
	props  config.Properties
	family platform.Family
}

// NewRenderer creates a Renderer. Modes are not applied when family is windows.
func NewRenderer(fsys system.FileSystem, paths *config.Paths, props config.Properties, family platform.Family) *Renderer {
	return &Renderer{
		fs:     fsys,
		paths:  paths,
		props:  props,
		family: family,
	}
}

// Execute renders text against the properties without touching the filesystem.
func (r *Renderer) Execute(name, text string) ([]byte, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(funcMap(r.props)).
		Parse(text)
	if err != nil {
		return nil, errors.RenderFailed(name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(r.props)); err != nil {
		return nil, errors.RenderFailed(name, err)
	}
	return buf.Bytes(), nil
}

// Render renders resources/templates/<target>.tmpl to <install.dir>/<target>
// and applies mode.
func (r *Renderer) Render(target string, mode fs.FileMode) error {
	dst, err := r.paths.Target(target)
	if err != nil {
		return errors.WriteFailed(target, err)
	}
	src, err := r.paths.Template(target)
	if err != nil {
		return errors.RenderFailed(target, err)
	}

	logging.Debug("rendering template", "template", src, "target", dst, "mode", mode)

	if err := r.fs.MkdirAll(filepath.Dir(dst), config.DirMode); err != nil {
		return errors.WriteFailed(target, err)
	}

	text, err := r.fs.ReadFile(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.TemplateNotFound(src)
		}
		return errors.RenderFailed(target, err)
	}

	out, err := r.Execute(target, string(text))
	if err != nil {
		return err
	}

	if err := r.fs.WriteFile(dst, out, mode); err != nil {
		return errors.WriteFailed(target, err)
	}

	if err := r.family.Chmod(r.fs, dst, mode); err != nil {
		return errors.PermissionFailed(target, err)
	}
	return nil
}
