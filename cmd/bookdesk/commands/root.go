package commands

import (
	"github.com/spf13/cobra"

	"bookdesk/internal/config"
)

var (
	configPath string
	logPath    string
)

// Execute runs the bookdesk command tree
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookdesk [bookings.toml]",
		Short: "Terminal desk for booking payments",
		Long: `bookdesk lists bookings from a TOML file, lets you select them in bulk
and take payment or cancel them. Bookings awaiting payment show the
time left on their payment hold.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			bookingsPath := ""
			if len(args) == 1 {
				bookingsPath = args[0]
			}
			return runDesk(cmd.Context(), bookingsPath)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file")
	root.PersistentFlags().StringVar(&logPath, "log", "", "log file (default from config, bookdesk.log)")

	root.AddCommand(formatCountdownCmd(), initConfigCmd())
	return root
}
