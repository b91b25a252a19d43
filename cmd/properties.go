package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wagnert/meta/internal/errors"
)

var (
	propertiesFlags setupFlags
	propertiesGet   string
)

var propertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Show the merged properties templates are rendered with",
	Long: `Show the merged properties for an installation.

Without --get all keys are listed sorted by name. With --get only the value
of that key is printed, which makes the command usable from shell scripts.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runProperties,
}

func init() {
	propertiesFlags.register(propertiesCmd)
	propertiesCmd.Flags().StringVar(&propertiesGet, "get", "", "Print only the value of this key")
	rootCmd.AddCommand(propertiesCmd)
}

func runProperties(cmd *cobra.Command, args []string) error {
	a, s, err := propertiesFlags.newSetup()
	if err != nil {
		return err
	}

	res, err := s.Resolve(cmd.Context())
	if err != nil {
		return err
	}
	props := res.Properties

	if propertiesGet != "" {
		if !props.Has(propertiesGet) {
			return errors.ValidationError(fmt.Sprintf("unknown property: %s", propertiesGet))
		}
		fmt.Fprintln(a.Stdout, props.String(propertiesGet))
		return nil
	}

	w := tabwriter.NewWriter(a.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE")
	fmt.Fprintln(w, "---\t-----")

	for _, key := range props.Keys() {
		fmt.Fprintf(w, "%s\t%s\n", key, props.String(key))
	}

	return w.Flush()
}
