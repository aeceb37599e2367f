// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package sdk_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vlavrik/flespi-gateway/pkg/errors"
	sdk "github.com/vlavrik/flespi-gateway/pkg/sdk/go"
)

func TestDeviceSnapshots(t *testing.T) {
	ts := newGatewayServer(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gw/devices/123/snapshots", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"result":[{"ts":1609500000,"size":2048},{"ts":1609586400,"size":4096}]}`)
	})
	defer ts.Close()

	gwSDK := newGatewaySDK(ts.URL)

	cases := []struct {
		desc     string
		token    string
		response []sdk.Snapshot
		err      errors.SDKError
	}{
		{
			desc:  "list snapshots with valid token",
			token: token,
			response: []sdk.Snapshot{
				{Ts: 1609500000, Size: 2048},
				{Ts: 1609586400, Size: 4096},
			},
			err: nil,
		},
		{
			desc:     "list snapshots with invalid token",
			token:    invalidToken,
			response: nil,
			err:      errors.NewSDKErrorWithStatus(errors.New(wrongTokenReason), http.StatusUnauthorized),
		},
	}
	for _, tc := range cases {
		resp, err := gwSDK.DeviceSnapshots(deviceID, tc.token)
		assert.Equal(t, tc.err, err, fmt.Sprintf("%s: expected error %v, got %v", tc.desc, tc.err, err))
		assert.Equal(t, tc.response, resp, fmt.Sprintf("%s: expected response %v, got %v", tc.desc, tc.response, resp))
	}
}

func TestDeviceSnapshot(t *testing.T) {
	payload := []byte{0x1f, 0x8b, 0x08, 0x00}

	ts := newGatewayServer(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gw/devices/123/snapshots/1609500000", r.URL.Path)
		assert.Equal(t, "application/octet-stream", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/octet-stream")
		if _, err := w.Write(payload); err != nil {
			t.Error(err)
		}
	})
	defer ts.Close()

	gwSDK := newGatewaySDK(ts.URL)

	data, err := gwSDK.DeviceSnapshot(deviceID, "1609500000", token)
	assert.Nil(t, err, fmt.Sprintf("unexpected error: %v", err))
	assert.Equal(t, payload, data, "expected snapshot payload to pass through unchanged")
}
