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

func TestDevice(t *testing.T) {
	ts := newGatewayServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/gw/devices/123":
			fmt.Fprint(w, `{"result":[{"id":123,"name":"tracker","device_type_id":7}]}`)
		case "/gw/devices/999":
			fmt.Fprint(w, `{"result":[]}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"errors":[{"reason":"invalid selector"}]}`)
		}
	})
	defer ts.Close()

	gwSDK := newGatewaySDK(ts.URL)

	cases := []struct {
		desc     string
		deviceID string
		token    string
		response sdk.Device
		err      errors.SDKError
	}{
		{
			desc:     "get existing device",
			deviceID: deviceID,
			token:    token,
			response: sdk.Device{ID: 123, Name: "tracker", DeviceTypeID: 7},
			err:      nil,
		},
		{
			desc:     "get device with empty result",
			deviceID: "999",
			token:    token,
			response: sdk.Device{},
			err:      errors.NewSDKError(errors.Wrap(sdk.ErrFailedFetch, sdk.ErrEmptyResult)),
		},
		{
			desc:     "get device with invalid selector",
			deviceID: "bad",
			token:    token,
			response: sdk.Device{},
			err:      errors.NewSDKErrorWithStatus(errors.New("invalid selector"), http.StatusBadRequest),
		},
		{
			desc:     "get device with invalid token",
			deviceID: deviceID,
			token:    invalidToken,
			response: sdk.Device{},
			err:      errors.NewSDKErrorWithStatus(errors.New(wrongTokenReason), http.StatusUnauthorized),
		},
	}
	for _, tc := range cases {
		resp, err := gwSDK.Device(tc.deviceID, tc.token)
		assert.Equal(t, tc.err, err, fmt.Sprintf("%s: expected error %v, got %v", tc.desc, tc.err, err))
		assert.Equal(t, tc.response, resp, fmt.Sprintf("%s: expected response %v, got %v", tc.desc, tc.response, resp))
	}
}

func TestDevices(t *testing.T) {
	ts := newGatewayServer(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gw/devices/all", r.URL.Path)
		assert.Equal(t, "id,name", r.URL.Query().Get("fields"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"result":[{"id":123,"name":"tracker"},{"id":124,"name":"spare"}]}`)
	})
	defer ts.Close()

	gwSDK := newGatewaySDK(ts.URL)

	pm := sdk.PageMetadata{Fields: "id,name"}
	devices, err := gwSDK.Devices(pm, token)
	assert.Nil(t, err, fmt.Sprintf("unexpected error: %v", err))
	assert.Equal(t, []sdk.Device{{ID: 123, Name: "tracker"}, {ID: 124, Name: "spare"}}, devices)
}
