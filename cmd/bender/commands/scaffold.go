package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newScaffoldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scaffold [extra paths...]",
		Short: "Render the project's asset scaffold as JSON",
		Long: "Resolves every bundle declared in the project's asset manifest, " +
			"plus any extra paths given as arguments, grouped into scripts and stylesheets.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ov, err := overridesFromFlags(cmd)
			if err != nil {
				return err
			}
			scaffold, err := c.app.Scaffold(args, ov)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(scaffold, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	addOverrideFlags(cmd)
	return cmd
}
