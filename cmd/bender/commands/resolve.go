package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [paths...]",
		Short: "Resolve logical asset paths to versioned URLs",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			ov, err := overridesFromFlags(cmd)
			if err != nil {
				return err
			}
			for _, raw := range args {
				url, err := c.app.ResolveOne(raw, ov)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), url)
			}
			return nil
		},
	}
	addOverrideFlags(cmd)
	return cmd
}
