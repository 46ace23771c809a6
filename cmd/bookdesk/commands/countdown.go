package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bookdesk/internal/countdown"
)

func formatCountdownCmd() *cobra.Command {
	var minutes, seconds int

	cmd := &cobra.Command{
		Use:   "format-countdown [SECONDS]",
		Short: "Print a countdown as MM:SS",
		Long: `Print a countdown as MM:SS. With no arguments the placeholder is printed.
--minutes and --seconds give the parts directly and are validated as is.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cd *countdown.Countdown
			switch {
			case len(args) == 1:
				total, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid seconds %q: %w", args[0], err)
				}
				cd = &countdown.Countdown{Minutes: total / 60, Seconds: total % 60, TotalSeconds: total}
			case cmd.Flags().Changed("minutes") || cmd.Flags().Changed("seconds"):
				cd = &countdown.Countdown{Minutes: minutes, Seconds: seconds, TotalSeconds: minutes*60 + seconds}
			}

			out, err := countdown.Format(cd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 0, "whole minutes")
	cmd.Flags().IntVar(&seconds, "seconds", 0, "seconds within the minute (0-59)")
	return cmd
}
