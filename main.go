package main

import (
	"fmt"
	"os"

	intconfig "travellounge/internal/config"
	"travellounge/internal/utils"

	"github.com/spf13/cobra"
)

var env intconfig.Env

var rootCmd = &cobra.Command{
	Use:   "travellounge",
	Short: "Travel Lounge back office and public site API",
	Long: `travellounge serves the JSON API used by the admin back office and the
public booking site: products, bookings, menus, room calendars, media and
site content, with a websocket feed for admin notifications.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		env = intconfig.LoadEnv()
		if _, err := utils.InitLogger(env.LogLevel); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = utils.L().Sync()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, createAdminCmd, seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
