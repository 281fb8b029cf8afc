// Package commands implements the CLI commands for the bender asset resolver.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/asset-bender/bender/internal/app"
	"github.com/asset-bender/bender/internal/build"
	"github.com/asset-bender/bender/internal/core/domain"
	"github.com/asset-bender/bender/internal/core/ports"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for bender.
type CLI struct {
	app     *app.App
	snaps   ports.VersionSnapshotStore
	root    string
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app and snapshot store.
func New(a *app.App, snaps ports.VersionSnapshotStore) *CLI {
	rootCmd := &cobra.Command{
		Use:           "bender",
		Short:         "Resolve static asset paths to versioned CDN URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	c := &CLI{
		app:     a,
		snaps:   snaps,
		root:    ".",
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringP("root", "r", ".", "Path to the project root")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		root, err := cmd.Flags().GetString("root")
		if err != nil {
			return err
		}
		if root != "" {
			c.root = root
		}
		a.SetRoot(root)
		return nil
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newScaffoldCmd())
	rootCmd.AddCommand(c.newVersionsCmd())
	rootCmd.AddCommand(c.newSnapshotCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addOverrideFlags registers the per-call resolution knobs shared by the
// resolve, scaffold and versions commands.
func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("force", "f", nil, "Pin a project to a version for this call (project=version, repeatable)")
	cmd.Flags().Bool("dev", false, "Resolve against the local asset daemon instead of the CDN")
	cmd.Flags().Bool("debug", false, "Select expanded, unminified asset variants")
}

func overridesFromFlags(cmd *cobra.Command) (domain.Overrides, error) {
	ov := domain.Overrides{}
	forced, _ := cmd.Flags().GetStringArray("force")
	for _, pin := range forced {
		project, version, ok := strings.Cut(pin, "=")
		if !ok || project == "" || version == "" {
			return ov, zerr.With(
				zerr.Wrap(domain.ErrInvalidReference, "forced version must be project=version"),
				"pin", pin)
		}
		if ov.ForcedVersions == nil {
			ov.ForcedVersions = make(map[string]string)
		}
		ov.ForcedVersions[project] = version
	}
	ov.Dev, _ = cmd.Flags().GetBool("dev")
	ov.Debug, _ = cmd.Flags().GetBool("debug")
	return ov, nil
}
