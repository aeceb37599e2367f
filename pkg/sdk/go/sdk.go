// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package sdk

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vlavrik/flespi-gateway/pkg/errors"
	"moul.io/http2curl"
)

const (
	// CTJSON represents JSON content type.
	CTJSON ContentType = "application/json"

	// CTBinary represents binary content type.
	CTBinary ContentType = "application/octet-stream"

	// TokenPrefix is the authorization scheme used by the flespi platform.
	TokenPrefix = "FlespiToken "
)

// ContentType represents all possible content types.
type ContentType string

var _ SDK = (*fgSDK)(nil)

var (
	// ErrFailedFetch indicates that fetching of entity data failed.
	ErrFailedFetch = errors.New("failed to fetch entity")

	// ErrEmptyResult indicates that the response envelope carried no result entries.
	ErrEmptyResult = errors.New("empty result set in response")

	// ErrEmptyDeviceNumber indicates that the device number was not provided.
	ErrEmptyDeviceNumber = errors.New("device number must not be empty")

	// ErrEmptyToken indicates that the flespi token was not provided.
	ErrEmptyToken = errors.New("flespi token must not be empty")
)

// PageMetadata contains the query parameters understood by the gateway API.
type PageMetadata struct {
	Fields string `json:"fields,omitempty"`
	From   int64  `json:"from,omitempty"`
	To     int64  `json:"to,omitempty"`
	Limit  uint64 `json:"limit,omitempty"`
}

// SDK contains the flespi gateway API.
type SDK interface {
	// DeviceTelemetry returns the latest telemetry reported by the devices
	// matched by the given selector. The result is returned exactly as the
	// platform reports it, one entry per matched device.
	//
	// example:
	//  telemetry, _ := sdk.DeviceTelemetry("123", "token")
	//  fmt.Println(telemetry)
	DeviceTelemetry(deviceID, token string) ([]DeviceTelemetry, errors.SDKError)

	// DeviceSnapshots lists the message snapshots stored for a device.
	//
	// example:
	//  snapshots, _ := sdk.DeviceSnapshots("123", "token")
	//  fmt.Println(snapshots)
	DeviceSnapshots(deviceID, token string) ([]Snapshot, errors.SDKError)

	// DeviceSnapshot downloads a single snapshot archive in binary form.
	//
	// example:
	//  data, _ := sdk.DeviceSnapshot("123", "1609521935", "token")
	//  os.WriteFile("snapshot.bin", data, 0o644)
	DeviceSnapshot(deviceID, snapshot, token string) ([]byte, errors.SDKError)

	// DeviceLogs returns platform log records for a device.
	//
	// example:
	//  pm := sdk.PageMetadata{
	//    From: 1609500000,
	//    To:   1609600000,
	//  }
	//  logs, _ := sdk.DeviceLogs("123", pm, "token")
	//  fmt.Println(logs)
	DeviceLogs(deviceID string, pm PageMetadata, token string) ([]Log, errors.SDKError)

	// Device returns the registry entry of a single device.
	//
	// example:
	//  device, _ := sdk.Device("123", "token")
	//  fmt.Println(device)
	Device(deviceID, token string) (Device, errors.SDKError)

	// Devices returns registry entries of all devices visible to the token.
	//
	// example:
	//  pm := sdk.PageMetadata{
	//    Fields: "id,name",
	//  }
	//  devices, _ := sdk.Devices(pm, "token")
	//  fmt.Println(devices)
	Devices(pm PageMetadata, token string) ([]Device, errors.SDKError)
}

type fgSDK struct {
	gatewayURL string

	client   *http.Client
	curlFlag bool
}

// Config contains sdk configuration parameters.
type Config struct {
	GatewayURL string

	TLSVerification bool
	CurlFlag        bool
}

// NewSDK returns new flespi gateway SDK instance.
func NewSDK(conf Config) SDK {
	return &fgSDK{
		gatewayURL: conf.GatewayURL,

		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !conf.TLSVerification,
				},
			},
		},
		curlFlag: conf.CurlFlag,
	}
}

// processRequest creates and sends a new HTTP request, and checks for errors in the HTTP response.
// It then returns the response headers, the response body, and the associated error(s) (if any).
func (sdk fgSDK) processRequest(method, reqUrl, token string, data []byte, headers map[string]string, expectedRespCodes ...int) (http.Header, []byte, errors.SDKError) {
	req, err := http.NewRequest(method, reqUrl, bytes.NewReader(data))
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	// Sets default values for the Content-Type and Accept headers.
	// Overridden if passed in the headers arguments.
	req.Header.Add("Content-Type", string(CTJSON))
	req.Header.Add("Accept", string(CTJSON))

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	if token != "" {
		if !strings.HasPrefix(token, TokenPrefix) {
			token = TokenPrefix + token
		}
		req.Header.Set("Authorization", token)
	}

	if sdk.curlFlag {
		curlCommand, err := http2curl.GetCurlCommand(req)
		if err != nil {
			return nil, nil, errors.NewSDKError(err)
		}
		log.Println(curlCommand.String())
	}

	resp, err := sdk.client.Do(req)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}
	defer resp.Body.Close()

	sdkerr := errors.CheckError(resp, expectedRespCodes...)
	if sdkerr != nil {
		return make(http.Header), []byte{}, sdkerr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	return resp.Header, body, nil
}

func (sdk fgSDK) withQueryParams(baseURL, endpoint string, pm PageMetadata) (string, error) {
	q, err := pm.query()
	if err != nil {
		return "", err
	}

	if q == "" {
		return fmt.Sprintf("%s/%s", baseURL, endpoint), nil
	}

	return fmt.Sprintf("%s/%s?%s", baseURL, endpoint, q), nil
}

func (pm PageMetadata) query() (string, error) {
	q := url.Values{}
	if pm.Fields != "" {
		q.Add("fields", pm.Fields)
	}
	if pm.From != 0 {
		q.Add("from", strconv.FormatInt(pm.From, 10))
	}
	if pm.To != 0 {
		q.Add("to", strconv.FormatInt(pm.To, 10))
	}
	if pm.Limit != 0 {
		q.Add("limit", strconv.FormatUint(pm.Limit, 10))
	}

	return q.Encode(), nil
}
