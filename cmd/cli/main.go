// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"log"

	"github.com/caarlos0/env/v7"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/vlavrik/flespi-gateway/cli"
	sdk "github.com/vlavrik/flespi-gateway/pkg/sdk/go"
)

type envConfig struct {
	GatewayURL string `env:"FLESPI_GATEWAY_URL" envDefault:"https://flespi.io"`
	Token      string `env:"FLESPI_TOKEN"       envDefault:""`
}

func main() {
	cfg := envConfig{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load environment configuration : %s", err)
	}

	sdkConf := sdk.Config{
		GatewayURL:      cfg.GatewayURL,
		TLSVerification: true,
	}
	cli.Token = cfg.Token

	// Root
	rootCmd := &cobra.Command{
		Use:   "flespi-cli",
		Short: "Flespi gateway CLI",
		Long:  `Flespi gateway CLI lets you read device telemetry, snapshots and logs from the flespi platform`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			conf, err := cli.ParseConfig(sdkConf)
			if err != nil {
				log.Fatalf("failed to parse config: %s", err)
			}

			s := sdk.NewSDK(conf)
			cli.SetSDK(s)
		},
	}

	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold + cc.Underline,
		Commands: cc.HiYellow + cc.Bold,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})

	// API commands
	telemetryCmd := cli.NewTelemetryCmd()
	devicesCmd := cli.NewDevicesCmd()
	snapshotsCmd := cli.NewSnapshotsCmd()
	logsCmd := cli.NewLogsCmd()
	tsCmd := cli.NewTimestampCmd()
	configCmd := cli.NewConfigCmd()

	// Root Commands
	rootCmd.AddCommand(telemetryCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(tsCmd)
	rootCmd.AddCommand(configCmd)

	// Root Flags
	rootCmd.PersistentFlags().StringVarP(
		&sdkConf.GatewayURL,
		"gateway-url",
		"g",
		sdkConf.GatewayURL,
		"Flespi gateway URL",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&sdkConf.CurlFlag,
		"curl",
		"x",
		false,
		"Convert HTTP request to cURL command and print to stderr",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&sdkConf.TLSVerification,
		"insecure",
		"i",
		sdkConf.TLSVerification,
		"Do not check for TLS cert",
	)

	rootCmd.PersistentFlags().StringVar(
		&cli.ConfigPath,
		"config",
		"",
		"Config path",
	)

	rootCmd.PersistentFlags().BoolVar(
		&cli.RawOutput,
		"raw",
		cli.RawOutput,
		"Enables raw output mode for easier parsing of output",
	)

	// Filter Flags
	rootCmd.PersistentFlags().Uint64VarP(
		&cli.Limit,
		"limit",
		"l",
		0,
		"Limit query parameter",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.Fields,
		"fields",
		"f",
		"",
		"Comma separated list of fields to fetch",
	)

	rootCmd.PersistentFlags().Int64Var(
		&cli.From,
		"from",
		0,
		"From unix timestamp query parameter",
	)

	rootCmd.PersistentFlags().Int64Var(
		&cli.To,
		"to",
		0,
		"To unix timestamp query parameter",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.Timezone,
		"timezone",
		"z",
		cli.Timezone,
		"IANA timezone for timestamp conversion",
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
