package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wagnert/meta/internal/platform"
)

var detectFlags setupFlags

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected OS family and Linux distribution",
	Long: `Show the OS family and, on linux, the distribution found by scanning
the release marker files. Unlike post-install no debian fallback is applied,
so an unrecognised system is reported as unknown.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectFlags.etcDir, "etc-dir", platform.DefaultEtcDir, "Directory scanned for release marker files")
	detectCmd.Flags().StringVar(&detectFlags.osName, "os", "", "OS family to report (default: running OS)")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	a, err := detectFlags.resolveApp()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Stdout, "family:       %s\n", a.Family)

	if a.Family != platform.FamilyLinux {
		return nil
	}

	distro, err := platform.DetectDistribution(a.FS, a.Paths.EtcDir)
	if err != nil {
		return fmt.Errorf("failed to detect distribution: %w", err)
	}
	fmt.Fprintf(a.Stdout, "distribution: %s\n", distro)
	return nil
}
