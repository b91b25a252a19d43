package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wagnert/meta/internal/app"
	"github.com/wagnert/meta/internal/config"
	"github.com/wagnert/meta/internal/errors"
	"github.com/wagnert/meta/internal/platform"
	"github.com/wagnert/meta/internal/setup"
)

// setupFlags are the flags shared by commands that resolve an installation.
type setupFlags struct {
	installDir     string
	etcDir         string
	osName         string
	propertiesFile string
	phpBinary      string
}

func (f *setupFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.installDir, "install-dir", "", "Installation directory (default: current directory)")
	cmd.Flags().StringVar(&f.etcDir, "etc-dir", platform.DefaultEtcDir, "Directory scanned for release marker files")
	cmd.Flags().StringVar(&f.osName, "os", "", "OS family to set up for: darwin, linux, windows (default: running OS)")
	cmd.Flags().StringVar(&f.propertiesFile, "properties", "", "TOML or YAML file with property overrides")
	cmd.Flags().StringVar(&f.phpBinary, "php-binary", "php", "PHP binary used to detect appserver.php.version")
}

func (f *setupFlags) reset() {
	*f = setupFlags{etcDir: platform.DefaultEtcDir, phpBinary: "php"}
}

// resolveApp derives the app for one command run from app.Default and the flags.
func (f *setupFlags) resolveApp() (*app.App, error) {
	base := app.Default
	opts := []app.Option{
		app.WithFS(base.FS),
		app.WithExecutor(base.Executor),
		app.WithOutput(base.Stdout),
		app.WithFamily(base.Family),
	}

	paths := base.Paths
	if f.installDir != "" {
		dir, err := filepath.Abs(f.installDir)
		if err != nil {
			return nil, errors.ValidationError(fmt.Sprintf("invalid install directory %q: %v", f.installDir, err))
		}
		paths = config.DefaultPaths(dir)
	}
	if f.etcDir != "" && f.etcDir != paths.EtcDir {
		p := *paths
		p.EtcDir = f.etcDir
		paths = &p
	}
	opts = append(opts, app.WithPaths(paths))

	if f.osName != "" {
		opts = append(opts, app.WithFamily(platform.ParseFamily(f.osName)))
	}

	return app.New(opts...), nil
}

// newSetup creates the post-install run described by the flags.
func (f *setupFlags) newSetup() (*app.App, *setup.Setup, error) {
	a, err := f.resolveApp()
	if err != nil {
		return nil, nil, err
	}

	s := a.Setup(
		setup.WithPropertiesFile(f.propertiesFile),
		setup.WithPHPBinary(f.phpBinary),
	)
	return a, s, nil
}
