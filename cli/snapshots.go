// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var cmdListSnapshots = cobra.Command{
	Use:   "list <device_id> [flespi_token]",
	Short: "List snapshots",
	Long: "List the message snapshots stored for a device\n" +
		"Usage:\n" +
		"\tflespi-cli snapshots list <device_id> <flespi_token>\n",
	Run: func(cmd *cobra.Command, args []string) {
		token, ok := tokenArg(args, 1)
		if !ok {
			logUsageCmd(*cmd, cmd.Use)
			return
		}

		snapshots, err := sdk.DeviceSnapshots(args[0], token)
		if err != nil {
			logErrorCmd(*cmd, err)
			return
		}

		logJSONCmd(*cmd, snapshots)
	},
}

var cmdDownloadSnapshot = cobra.Command{
	Use:   "download <device_id> <snapshot> <file> [flespi_token]",
	Short: "Download snapshot",
	Long: "Download a single snapshot to a local file\n" +
		"Usage:\n" +
		"\tflespi-cli snapshots download <device_id> <snapshot> <file> <flespi_token>\n",
	Run: func(cmd *cobra.Command, args []string) {
		token, ok := tokenArg(args, 3)
		if !ok {
			logUsageCmd(*cmd, cmd.Use)
			return
		}

		data, err := sdk.DeviceSnapshot(args[0], args[1], token)
		if err != nil {
			logErrorCmd(*cmd, err)
			return
		}

		if err := os.WriteFile(args[2], data, filePermission); err != nil {
			logErrorCmd(*cmd, err)
			return
		}

		logSavedCmd(*cmd, args[2])
	},
}

// NewSnapshotsCmd returns snapshots command.
func NewSnapshotsCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "snapshots [list | download]",
		Short: "Device snapshots",
		Long:  `List and download device message snapshots`,
	}

	cmd.AddCommand(&cmdListSnapshots)
	cmd.AddCommand(&cmdDownloadSnapshot)

	return &cmd
}
