package commands

import (
	"github.com/spf13/cobra"
	"go.autols.dev/autols/internal/app"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Detect installed language servers and activate them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			asJSON, _ := cmd.Flags().GetBool("json")
			watch, _ := cmd.Flags().GetBool("watch")

			opts := app.ScanOptions{
				ConfigPath: configPath,
				NoCache:    noCache,
				JSON:       asJSON,
			}
			if watch {
				return c.app.Watch(cmd.Context(), opts)
			}
			return c.app.Scan(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the detection cache and rescan the registry")
	cmd.Flags().Bool("json", false, "Render the report as JSON")
	cmd.Flags().BoolP("watch", "w", false, "Keep running and rescan when the registry changes")
	return cmd
}
