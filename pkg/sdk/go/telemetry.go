// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vlavrik/flespi-gateway/pkg/errors"
)

const telemetryEndpoint = "telemetry"

// TelemetryValue is a single metric reading: the unix timestamp at which the
// platform recorded it and the reported value.
type TelemetryValue struct {
	Ts    int64       `json:"ts"`
	Value interface{} `json:"value"`
}

// Telemetry maps metric names to their latest readings, e.g.
// "battery.voltage" -> {ts: 1609521935, value: 4.049}.
type Telemetry map[string]TelemetryValue

// DeviceTelemetry is the telemetry set of one device as reported by the platform.
type DeviceTelemetry struct {
	ID        int64     `json:"id"`
	Telemetry Telemetry `json:"telemetry"`
}

func (sdk fgSDK) DeviceTelemetry(deviceID, token string) ([]DeviceTelemetry, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/%s/%s", sdk.gatewayURL, devicesEndpoint, deviceID, telemetryEndpoint)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}

	var tr telemetryRes
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, errors.NewSDKError(err)
	}

	return tr.Result, nil
}
