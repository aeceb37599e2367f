// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package sdk

import (
	"encoding/json"
	"net/http"

	"github.com/vlavrik/flespi-gateway/pkg/errors"
)

const logsEndpoint = "logs"

// Log is a single platform log record for a device: connection events,
// rejected messages and similar.
type Log struct {
	Timestamp float64 `json:"timestamp"`
	Source    string  `json:"source,omitempty"`
	EventCode uint64  `json:"event_code,omitempty"`
	Address   string  `json:"address,omitempty"`
	Error     string  `json:"error,omitempty"`
}

func (sdk fgSDK) DeviceLogs(deviceID string, pm PageMetadata, token string) ([]Log, errors.SDKError) {
	url, err := sdk.withQueryParams(sdk.gatewayURL, devicesEndpoint+"/"+deviceID+"/"+logsEndpoint, pm)
	if err != nil {
		return nil, errors.NewSDKError(err)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}

	var lr logsRes
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, errors.NewSDKError(err)
	}

	return lr.Result, nil
}
