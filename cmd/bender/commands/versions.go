package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func (c *CLI) newVersionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List every known project with its resolved build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ov, err := overridesFromFlags(cmd)
			if err != nil {
				return err
			}
			versions, err := c.app.DependencyVersions(ov)
			if err != nil {
				return err
			}
			projects := make([]string, 0, len(versions))
			for project := range versions {
				projects = append(projects, project)
			}
			sort.Strings(projects)
			for _, project := range projects {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", project, versions[project])
			}
			return nil
		},
	}
	addOverrideFlags(cmd)
	return cmd
}
