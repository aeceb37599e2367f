// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"github.com/spf13/cobra"
	fgxsdk "github.com/vlavrik/flespi-gateway/pkg/sdk/go"
)

var cmdDevices = cobra.Command{
	Use:   "get <device_id|all> [flespi_token]",
	Short: "Get devices",
	Long: "Get a device registry entry, or all devices visible to the token\n" +
		"Usage:\n" +
		"\tflespi-cli devices get <device_id> <flespi_token> - shows a single device\n" +
		"\tflespi-cli devices get all <flespi_token> - lists all devices\n",
	Run: func(cmd *cobra.Command, args []string) {
		token, ok := tokenArg(args, 1)
		if !ok {
			logUsageCmd(*cmd, cmd.Use)
			return
		}

		if args[0] == "all" {
			pm := fgxsdk.PageMetadata{
				Fields: Fields,
				Limit:  Limit,
			}
			devices, err := sdk.Devices(pm, token)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			logJSONCmd(*cmd, devices)
			return
		}

		device, err := sdk.Device(args[0], token)
		if err != nil {
			logErrorCmd(*cmd, err)
			return
		}

		logJSONCmd(*cmd, device)
	},
}

// NewDevicesCmd returns devices command.
func NewDevicesCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "devices get",
		Short: "Device registry",
		Long:  `Read device registry entries from the flespi gateway`,
	}

	cmd.AddCommand(&cmdDevices)

	return &cmd
}
