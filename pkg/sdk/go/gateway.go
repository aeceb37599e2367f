// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package sdk

import (
	"github.com/vlavrik/flespi-gateway/pkg/errors"
)

// Gateway is a client bound to a single device: it holds the device number
// and the flespi token once and issues gateway calls on their behalf.
// A Gateway is immutable after construction.
type Gateway struct {
	sdk          SDK
	deviceNumber string
	token        string
}

// NewGateway returns a client bound to the given device number and token.
// Both must be non-empty.
//
// example:
//
//	s := sdk.NewSDK(sdk.Config{GatewayURL: "https://flespi.io"})
//	gw, _ := sdk.NewGateway(s, "123", "token")
//	telemetry, _ := gw.Telemetry()
func NewGateway(sdk SDK, deviceNumber, token string) (*Gateway, error) {
	if deviceNumber == "" {
		return nil, ErrEmptyDeviceNumber
	}
	if token == "" {
		return nil, ErrEmptyToken
	}

	return &Gateway{
		sdk:          sdk,
		deviceNumber: deviceNumber,
		token:        token,
	}, nil
}

// DeviceNumber returns the device number the client is bound to.
func (g *Gateway) DeviceNumber() string {
	return g.deviceNumber
}

// Telemetry returns the latest telemetry of the bound device as a mapping
// from metric name to its reading. An envelope with no result entries is
// reported as a fetch error rather than an empty mapping.
func (g *Gateway) Telemetry() (Telemetry, errors.SDKError) {
	dts, sdkerr := g.sdk.DeviceTelemetry(g.deviceNumber, g.token)
	if sdkerr != nil {
		return nil, sdkerr
	}
	if len(dts) == 0 {
		return nil, errors.NewSDKError(errors.Wrap(ErrFailedFetch, ErrEmptyResult))
	}

	return dts[0].Telemetry, nil
}

// Snapshots lists the stored snapshots of the bound device.
func (g *Gateway) Snapshots() ([]Snapshot, errors.SDKError) {
	return g.sdk.DeviceSnapshots(g.deviceNumber, g.token)
}

// Snapshot downloads a single snapshot of the bound device in binary form.
func (g *Gateway) Snapshot(snapshot string) ([]byte, errors.SDKError) {
	return g.sdk.DeviceSnapshot(g.deviceNumber, snapshot, g.token)
}

// Logs returns platform log records of the bound device.
func (g *Gateway) Logs(pm PageMetadata) ([]Log, errors.SDKError) {
	return g.sdk.DeviceLogs(g.deviceNumber, pm, g.token)
}

// Device returns the registry entry of the bound device.
func (g *Gateway) Device() (Device, errors.SDKError) {
	return g.sdk.Device(g.deviceNumber, g.token)
}

// Devices returns registry entries of all devices visible to the token.
func (g *Gateway) Devices(pm PageMetadata) ([]Device, errors.SDKError) {
	return g.sdk.Devices(pm, g.token)
}
