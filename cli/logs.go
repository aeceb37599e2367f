// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"github.com/spf13/cobra"
	fgxsdk "github.com/vlavrik/flespi-gateway/pkg/sdk/go"
)

var cmdLogs = cobra.Command{
	Use:   "get <device_id> [flespi_token]",
	Short: "Get device logs",
	Long: "Get platform log records for a device\n" +
		"Usage:\n" +
		"\tflespi-cli logs get <device_id> <flespi_token> - lists device log records\n" +
		"\tflespi-cli logs get <device_id> <flespi_token> --from <unix_ts> --to <unix_ts> --limit <limit> - lists records in a time range\n",
	Run: func(cmd *cobra.Command, args []string) {
		token, ok := tokenArg(args, 1)
		if !ok {
			logUsageCmd(*cmd, cmd.Use)
			return
		}

		pm := fgxsdk.PageMetadata{
			Fields: Fields,
			From:   From,
			To:     To,
			Limit:  Limit,
		}

		logs, err := sdk.DeviceLogs(args[0], pm, token)
		if err != nil {
			logErrorCmd(*cmd, err)
			return
		}

		logJSONCmd(*cmd, logs)
	},
}

// NewLogsCmd returns logs command.
func NewLogsCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "logs get",
		Short: "Device logs",
		Long:  `Read device log records from the flespi gateway`,
	}

	cmd.AddCommand(&cmdLogs)

	return &cmd
}
