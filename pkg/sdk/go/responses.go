// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package sdk

// The gateway wraps every JSON response in a result envelope:
// {"result": [...]}.
type telemetryRes struct {
	Result []DeviceTelemetry `json:"result"`
}

type snapshotsRes struct {
	Result []Snapshot `json:"result"`
}

type logsRes struct {
	Result []Log `json:"result"`
}

type devicesRes struct {
	Result []Device `json:"result"`
}
