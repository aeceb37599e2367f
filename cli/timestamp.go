// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vlavrik/flespi-gateway/pkg/timefmt"
)

var cmdTsHuman = cobra.Command{
	Use:   "human <unix_ts>",
	Short: "Unix to human readable",
	Long: "Convert a unix timestamp reported by the platform to human readable time\n" +
		"Usage:\n" +
		"\tflespi-cli ts human 1609578000 --timezone Europe/Berlin\n",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logUsageCmd(*cmd, cmd.Use)
			return
		}

		ts, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			logErrorCmd(*cmd, err)
			return
		}

		human, err := timefmt.UnixToHuman(ts, Timezone)
		if err != nil {
			logErrorCmd(*cmd, err)
			return
		}

		fmt.Fprintln(cmd.OutOrStdout(), human)
	},
}

var cmdTsUnix = cobra.Command{
	Use:   "unix <human_ts>",
	Short: "Human readable to unix",
	Long: "Convert human readable time back to a unix timestamp\n" +
		"Usage:\n" +
		"\tflespi-cli ts unix \"2021-01-02 10:00:00\" --timezone Europe/Berlin\n",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logUsageCmd(*cmd, cmd.Use)
			return
		}

		ts, err := timefmt.HumanToUnix(args[0], Timezone)
		if err != nil {
			logErrorCmd(*cmd, err)
			return
		}

		fmt.Fprintln(cmd.OutOrStdout(), ts)
	},
}

// NewTimestampCmd returns timestamp conversion command.
func NewTimestampCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "ts [human | unix]",
		Short: "Timestamp conversion",
		Long:  `Convert between unix timestamps and human readable time`,
	}

	cmd.AddCommand(&cmdTsHuman)
	cmd.AddCommand(&cmdTsUnix)

	return &cmd
}
