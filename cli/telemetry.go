// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"github.com/spf13/cobra"
)

var cmdTelemetry = cobra.Command{
	Use:   "get <device_id> [flespi_token]",
	Short: "Get device telemetry",
	Long: "Get the latest telemetry reported by a device\n" +
		"Usage:\n" +
		"\tflespi-cli telemetry get <device_id> <flespi_token> - prints the latest telemetry of the device\n" +
		"\tflespi-cli telemetry get <device_id> - same, with the token taken from config or FLESPI_TOKEN\n",
	Run: func(cmd *cobra.Command, args []string) {
		token, ok := tokenArg(args, 1)
		if !ok {
			logUsageCmd(*cmd, cmd.Use)
			return
		}

		telemetry, err := sdk.DeviceTelemetry(args[0], token)
		if err != nil {
			logErrorCmd(*cmd, err)
			return
		}

		logJSONCmd(*cmd, telemetry)
	},
}

// NewTelemetryCmd returns telemetry command.
func NewTelemetryCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "telemetry get",
		Short: "Device telemetry",
		Long:  `Read the latest device telemetry from the flespi gateway`,
	}

	cmd.AddCommand(&cmdTelemetry)

	return &cmd
}
