package commands

import (
	"fmt"

	"github.com/asset-bender/bender/internal/adapters/snapshot"
	"github.com/asset-bender/bender/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Freeze the current dependency versions for deploy",
		Long: "Writes the resolved project->version map to the frozen-at-deploy " +
			"snapshot file, so later resolutions never fall below these builds.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			versions, err := c.app.DependencyVersions(domain.Overrides{})
			if err != nil {
				return err
			}
			// The default store resolves its path against the project root,
			// so the file lands where the next load will read it. An explicit
			// --output path is taken as given.
			store, root := c.snaps, c.root
			if out, _ := cmd.Flags().GetString("output"); out != "" {
				store, root = snapshot.NewStore(out), ""
			}
			if err := store.Write(root, versions); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "snapshot written (%d projects)\n", len(versions))
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write the snapshot to this path instead of the project default")
	return cmd
}
