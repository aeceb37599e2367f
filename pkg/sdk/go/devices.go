// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vlavrik/flespi-gateway/pkg/errors"
)

const (
	devicesEndpoint    = "gw/devices"
	allDevicesSelector = "all"
)

// Metadata holds free-form device configuration.
type Metadata map[string]interface{}

// Device represents a registry entry of a device integrated with the
// flespi platform, typically a GPS tracker.
type Device struct {
	ID            int64    `json:"id,omitempty"`
	Name          string   `json:"name,omitempty"`
	DeviceTypeID  int64    `json:"device_type_id,omitempty"`
	Cid           int64    `json:"cid,omitempty"`
	MessagesTTL   int64    `json:"messages_ttl,omitempty"`
	Configuration Metadata `json:"configuration,omitempty"`
}

func (sdk fgSDK) Device(deviceID, token string) (Device, errors.SDKError) {
	url := fmt.Sprintf("%s/%s/%s", sdk.gatewayURL, devicesEndpoint, deviceID)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return Device{}, sdkerr
	}

	var dr devicesRes
	if err := json.Unmarshal(body, &dr); err != nil {
		return Device{}, errors.NewSDKError(err)
	}
	if len(dr.Result) == 0 {
		return Device{}, errors.NewSDKError(errors.Wrap(ErrFailedFetch, ErrEmptyResult))
	}

	return dr.Result[0], nil
}

func (sdk fgSDK) Devices(pm PageMetadata, token string) ([]Device, errors.SDKError) {
	url, err := sdk.withQueryParams(sdk.gatewayURL, devicesEndpoint+"/"+allDevicesSelector, pm)
	if err != nil {
		return nil, errors.NewSDKError(err)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, token, nil, nil, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}

	var dr devicesRes
	if err := json.Unmarshal(body, &dr); err != nil {
		return nil, errors.NewSDKError(err)
	}

	return dr.Result, nil
}
