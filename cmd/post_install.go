package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wagnert/meta/internal/logging"
	"github.com/wagnert/meta/internal/platform"
	"github.com/wagnert/meta/internal/setup"
)

var (
	postInstallFlags  setupFlags
	postInstallDryRun bool
)

var postInstallCmd = &cobra.Command{
	Use:   "post-install",
	Short: "Render configuration and copy OS specific files",
	Long: `Run the post-install steps for an installation directory.

The OS family decides the steps:
  linux    merge the detected distribution (debian when unknown);
           fedora and redhat also render bin/appserver and bin/appserver-watcher
  darwin   copy the sbin control scripts and render the bin scripts
  windows  copy the .bat launchers
Every family finally renders var/tmp/opcache-blacklist.txt and
etc/appserver/appserver.xml.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPostInstall,
}

func init() {
	postInstallFlags.register(postInstallCmd)
	postInstallCmd.Flags().BoolVar(&postInstallDryRun, "dry-run", false, "Print the planned actions without writing anything")
	rootCmd.AddCommand(postInstallCmd)
}

func runPostInstall(cmd *cobra.Command, args []string) error {
	a, s, err := postInstallFlags.newSetup()
	if err != nil {
		return err
	}

	if postInstallDryRun {
		res, err := s.Resolve(cmd.Context())
		if err != nil {
			return err
		}
		return printPlan(a.Stdout, res)
	}

	result, err := s.Run(cmd.Context())
	if err != nil {
		if result != nil && len(result.Writes) > 0 {
			logWarning("%d of %d actions completed before the failure", len(result.Writes), len(result.Actions))
		}
		return err
	}

	for _, w := range result.Writes {
		logging.Debug("written", "path", w.Path, "kind", w.Kind, "mode", w.Mode)
	}
	logSuccess("Post-install completed for %s: %d files written to %s",
		describe(result.Resolution), len(result.Writes), a.Paths.InstallDir)
	return nil
}

func printPlan(out io.Writer, res *setup.Resolution) error {
	logInfo("Planned actions for %s", describe(res))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACTION\tTARGET\tMODE\tSOURCE")
	fmt.Fprintln(w, "------\t------\t----\t------")

	for _, a := range res.Actions {
		source := "-"
		if a.Kind == setup.KindCopy {
			source = a.Source.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%#o\t%s\n", a.Kind, a.Target, a.Mode, source)
	}

	return w.Flush()
}

// describe names the platform a resolution was made for.
func describe(res *setup.Resolution) string {
	if res.Distribution != platform.DistroUnknown {
		return fmt.Sprintf("%s (%s)", res.Family, res.Distribution)
	}
	return res.Family.String()
}
