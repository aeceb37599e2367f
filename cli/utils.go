// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"
	"github.com/vlavrik/flespi-gateway/pkg/timefmt"
)

var (
	// Limit query parameter.
	Limit uint64 = 0
	// Fields query parameter.
	Fields string = ""
	// From query parameter.
	From int64 = 0
	// To query parameter.
	To int64 = 0
	// Token is the flespi token used when none is passed as an argument.
	Token string = ""
	// Timezone used by timestamp conversion commands.
	Timezone string = timefmt.DefaultTimezone
	// ConfigPath config path parameter.
	ConfigPath string = ""
	// RawOutput raw output mode.
	RawOutput bool = false
)

func logJSONCmd(cmd cobra.Command, iList ...interface{}) {
	for _, i := range iList {
		m, err := json.Marshal(i)
		if err != nil {
			logErrorCmd(cmd, err)
			return
		}

		if RawOutput {
			fmt.Fprintln(cmd.OutOrStdout(), string(m))
			continue
		}

		pj, err := prettyjson.Format(m)
		if err != nil {
			logErrorCmd(cmd, err)
			return
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", string(pj))
	}
}

func logUsageCmd(cmd cobra.Command, u string) {
	fmt.Fprintf(cmd.OutOrStdout(), color.YellowString("\nusage: %s\n\n"), u)
}

func logErrorCmd(cmd cobra.Command, err error) {
	boldRed := color.New(color.FgRed, color.Bold)
	boldRed.Fprintf(cmd.ErrOrStderr(), "\nerror: ")

	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n\n", color.RedString(err.Error()))
}

func logOKCmd(cmd cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", color.BlueString("ok"))
}

func logSavedCmd(cmd cobra.Command, path string) {
	if RawOutput {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), color.BlueString("\nsaved: %s\n\n"), path)
	}
}

// tokenArg returns the trailing token argument when given, the configured
// token otherwise.
func tokenArg(args []string, n int) (string, bool) {
	if len(args) == n+1 {
		return args[n], true
	}
	if len(args) == n && Token != "" {
		return Token, true
	}
	return "", false
}
