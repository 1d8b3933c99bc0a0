package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"admin-dashboard/internal/config"
	"admin-dashboard/internal/snapshot"
	"admin-dashboard/internal/store"

	"github.com/spf13/cobra"
)

const snapshotFileName = "dashboard.db"

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the dashboard data to SQLite",
	Long:  "Write the signed in user, the stats and the transactions to a SQLite database (default is dashboard.db in the config directory)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := exportPath(args)
		if err != nil {
			return err
		}

		auth := store.NewAuthStore(store.SeedAuth(), nil)
		dashboard := store.NewDashboardStore(store.SeedDashboard(), nil)

		res, err := snapshot.Export(cmd.Context(), path, auth.State(), dashboard.Snapshot())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d users, %d stats and %d transactions to %s\n",
			res.Users, res.Stats, res.Transactions, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func exportPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	return filepath.Join(dir, snapshotFileName), nil
}
