// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vlavrik/flespi-gateway/pkg/errors"
)

const snapshotsEndpoint = "snapshots"

// Snapshot describes one stored message snapshot of a device. Snapshots are
// addressed by the unix timestamp at which they were taken.
type Snapshot struct {
	Ts   int64  `json:"ts"`
	Size uint64 `json:"size,omitempty"`
}

func (sdk fgSDK) DeviceSnapshots(deviceID, token string) ([]Snapshot, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/%s/%s", sdk.gatewayURL, devicesEndpoint, deviceID, snapshotsEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}

	var sr snapshotsRes
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, errors.NewSDKError(err)
	}

	return sr.Result, nil
}

func (sdk fgSDK) DeviceSnapshot(deviceID, snapshot, token string) ([]byte, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/%s/%s/%s", sdk.gatewayURL, devicesEndpoint, deviceID, snapshotsEndpoint, snapshot)

	headers := map[string]string{"Accept": string(CTBinary)}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, headers, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}

	return body, nil
}
