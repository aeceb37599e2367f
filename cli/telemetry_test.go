// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package cli_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vlavrik/flespi-gateway/cli"
	sdk "github.com/vlavrik/flespi-gateway/pkg/sdk/go"
)

const (
	token    = "valid_token"
	deviceID = "123"
)

func newTestServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != sdk.TokenPrefix+token {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"errors":[{"reason":"wrong authorization key"}]}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"result":[{"id":123,"telemetry":{"battery.voltage":{"ts":1609521935,"value":4.049}}}]}`)
	}))
}

func TestTelemetryGetCmd(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	cli.SetSDK(sdk.NewSDK(sdk.Config{GatewayURL: ts.URL}))
	cli.RawOutput = true

	cases := []struct {
		desc     string
		args     []string
		contains string
	}{
		{
			desc:     "get telemetry with valid token",
			args:     []string{"get", deviceID, token},
			contains: `"battery.voltage":{"ts":1609521935,"value":4.049}`,
		},
		{
			desc:     "get telemetry with no arguments",
			args:     []string{"get"},
			contains: "usage",
		},
	}
	for _, tc := range cases {
		out := &bytes.Buffer{}
		cmd := cli.NewTelemetryCmd()
		cmd.SetOut(out)
		cmd.SetErr(out)
		cmd.SetArgs(tc.args)

		err := cmd.Execute()
		require.Nil(t, err, tc.desc)
		assert.True(t, strings.Contains(out.String(), tc.contains),
			fmt.Sprintf("%s: expected output containing %q, got %q", tc.desc, tc.contains, out.String()))
	}
}
