package setup

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/wagnert/meta/internal/config"
	"github.com/wagnert/meta/internal/errors"
	"github.com/wagnert/meta/internal/generator"
	"github.com/wagnert/meta/internal/logging"
	"github.com/wagnert/meta/internal/platform"
	"github.com/wagnert/meta/internal/resources"
	"github.com/wagnert/meta/internal/system"
)

// UnknownDistributionWarning is shown when no usable release marker is found
// on linux.
const UnknownDistributionWarning = "Unknown Linux distribution found, use Debian default values: " +
	"Please check user/group configuration in etc/appserver/appserver.xml"

// WarnFunc receives operator warnings.
type WarnFunc func(format string, args ...interface{})

// Setup holds the collaborators of a post-install run.
type Setup struct {
	fs             system.FileSystem
	exec           system.CommandExecutor
	paths          *config.Paths
	family         platform.Family
	scan           platform.MarkerScanner
	warn           WarnFunc
	propertiesFile string
	phpBinary      string
}

// Option configures a Setup.
type Option func(*Setup)

// WithExecutor sets the executor used to query the PHP version.
func WithExecutor(exec system.CommandExecutor) Option {
	return func(s *Setup) {
		s.exec = exec
	}
}

// WithScanner replaces the release marker scan.
func WithScanner(scan platform.MarkerScanner) Option {
	return func(s *Setup) {
		s.scan = scan
	}
}

// WithWarnings redirects operator warnings.
func WithWarnings(warn WarnFunc) Option {
	return func(s *Setup) {
		s.warn = warn
	}
}

// WithPropertiesFile layers an operator property file on top of the merge.
func WithPropertiesFile(path string) Option {
	return func(s *Setup) {
		s.propertiesFile = path
	}
}

// WithPHPBinary sets the PHP binary asked for appserver.php.version.
func WithPHPBinary(binary string) Option {
	return func(s *Setup) {
		s.phpBinary = binary
	}
}

// New creates a Setup for the installation described by paths.
func New(fsys system.FileSystem, paths *config.Paths, family platform.Family, opts ...Option) *Setup {
	s := &Setup{
		fs:        fsys,
		exec:      system.DefaultExecutor(),
		paths:     paths,
		family:    family,
		scan:      platform.NewMarkerScanner(fsys),
		warn:      logging.UserWarning,
		phpBinary: "php",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Resolution is everything decided before the first write.
type Resolution struct {
	Family       platform.Family
	Distribution platform.Distribution

	// PlatformID is the override set that was merged, empty when none was.
	PlatformID string

	Properties config.Properties
	Actions    []Action
}

// Write records a completed action.
type Write struct {
	Action
	Path string
}

// Result summarises a run.
type Result struct {
	*Resolution
	Writes []Write
}

// Resolve detects the distribution, merges the properties and builds the
// plan. It writes nothing.
func (s *Setup) Resolve(ctx context.Context) (*Resolution, error) {
	res := &Resolution{Family: s.family}

	if s.family == platform.FamilyLinux {
		res.Distribution = s.distribution()
	}

	defaults := config.Defaults()
	defaults[config.KeyPHPVersion] = config.QueryPHPVersion(ctx, s.exec, s.phpBinary)

	if id, ok := PlatformID(res.Family, res.Distribution); ok {
		props, err := config.MergeWith(id, s.paths.InstallDir, defaults)
		if err != nil {
			return nil, err
		}
		res.PlatformID = id
		res.Properties = props
	} else {
		logging.Debug("no overrides for family", "family", res.Family)
		res.Properties = config.Base(s.paths.InstallDir, defaults)
	}

	if s.propertiesFile != "" {
		overrides, err := config.LoadOverrides(s.fs, s.propertiesFile)
		if err != nil {
			return nil, err
		}
		logging.Debug("applying properties file", "path", s.propertiesFile, "keys", len(overrides))
		res.Properties = res.Properties.Merge(overrides)
	}

	res.Actions = Plan(res.Family, res.Distribution)
	return res, nil
}

// distribution scans for a release marker and falls back to debian with a
// warning when none is usable.
func (s *Setup) distribution() platform.Distribution {
	distro, err := s.scan(s.paths.EtcDir)
	if err != nil {
		logging.Warn("release marker scan failed", "dir", s.paths.EtcDir, "error", err)
		distro = platform.DistroUnknown
	}

	if _, ok := config.OSOverrides(string(distro)); ok {
		return distro
	}

	logging.Warn("falling back to debian", "detected", distro)
	s.warn("%s", UnknownDistributionWarning)
	return platform.DistroDebian
}

// Run resolves and then executes every planned action in order. The context
// is checked before each action.
func (s *Setup) Run(ctx context.Context) (*Result, error) {
	res, err := s.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	log := logging.With("family", res.Family, "distribution", res.Distribution)
	log.Info("running post-install", "install_dir", s.paths.InstallDir, "actions", len(res.Actions))

	renderer := generator.NewRenderer(s.fs, s.paths, res.Properties, s.family)
	copier := resources.NewCopier(s.fs, s.paths, s.family)

	result := &Result{Resolution: res}
	for _, action := range res.Actions {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("post-install interrupted before %s: %w", action.Target, err)
		}

		if err := execute(renderer, copier, action); err != nil {
			return result, err
		}

		path, _ := s.paths.Target(action.Target)
		result.Writes = append(result.Writes, Write{Action: action, Path: path})
		log.Debug("wrote target", "kind", action.Kind, "target", action.Target, "mode", action.Mode)
	}

	return result, nil
}

func execute(renderer *generator.Renderer, copier *resources.Copier, action Action) error {
	switch action.Kind {
	case KindRender:
		return renderer.Render(action.Target, action.Mode)
	case KindCopy:
		return copier.Copy(action.Source, action.Target, action.Mode)
	default:
		return errors.ValidationError(fmt.Sprintf("unknown action kind %q", action.Kind))
	}
}

// Modes returns the mode of every write keyed by target.
func (r *Result) Modes() map[string]fs.FileMode {
	modes := make(map[string]fs.FileMode, len(r.Writes))
	for _, w := range r.Writes {
		modes[w.Target] = w.Mode
	}
	return modes
}
