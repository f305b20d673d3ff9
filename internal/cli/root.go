package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tessella/tessella/pkg/buildinfo"
)

// Execute runs the tessella CLI and returns an error if any command fails.
// ctx carries cancellation from the caller (typically signal handling in
// main).
//
// The root command wires up the generate, serve, watch, groups and
// completion subcommands, loads the optional TOML config file, and attaches
// a context logger whose level follows the --verbose flag.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "tessella",
		Short: "tessella rasterizes wallpaper-group tilings as character grids",
		Long: `tessella is a deterministic generator for the 17 mathematical wallpaper
groups. It rasterizes tiling patterns onto a character grid using a seeded
pseudo-random generator, so the same inputs always reproduce the same
output, and can overlay poem lines on the finished pattern.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("tessella %s\ncommit: %s\nbuilt: %s\n",
		buildinfo.Version, buildinfo.Commit, buildinfo.Date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/tessella/config.toml)")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newGroupsCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
