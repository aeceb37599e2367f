// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

var (
	// errRespBody indicates that the error response body did not carry
	// the expected "errors" collection.
	errRespBody = New("response body expected errors json key not found")

	// errUnknown indicates that an error reason was found in the response
	// body but could not be interpreted.
	errUnknown = New("unknown error")
)

// SDKError is an error type returned by the flespi-gateway SDK.
type SDKError interface {
	Error
	StatusCode() int
}

var _ SDKError = (*sdkError)(nil)

type sdkError struct {
	*customError
	statusCode int
}

func (ce *sdkError) Error() string {
	if ce == nil {
		return ""
	}
	if ce.customError == nil {
		return http.StatusText(ce.statusCode)
	}
	return fmt.Sprintf("Status: %s: %s", http.StatusText(ce.statusCode), ce.customError.Error())
}

func (ce *sdkError) StatusCode() int {
	return ce.statusCode
}

// NewSDKError returns an SDK Error that formats as the given text.
func NewSDKError(err error) SDKError {
	return &sdkError{
		customError: &customError{
			msg: err.Error(),
			err: nil,
		},
		statusCode: 0,
	}
}

// NewSDKErrorWithStatus returns an SDK Error setting the status code.
func NewSDKErrorWithStatus(err error, statusCode int) SDKError {
	return &sdkError{
		statusCode: statusCode,
		customError: &customError{
			msg: err.Error(),
			err: nil,
		},
	}
}

// Flespi error responses carry a list of reasons instead of a single
// error message, e.g. {"errors":[{"reason":"wrong authorization key"}]}.
type errorRes struct {
	Errors []struct {
		Reason string `json:"reason"`
	} `json:"errors"`
}

// CheckError will check the HTTP response status code and matches it with the given status codes.
// Since multiple status codes can be valid, we can pass multiple status codes to the function.
// The function then checks for errors in the HTTP response.
func CheckError(resp *http.Response, expectedStatusCodes ...int) SDKError {
	for _, expectedStatusCode := range expectedStatusCodes {
		if resp.StatusCode == expectedStatusCode {
			return nil
		}
	}

	var content errorRes
	if err := json.NewDecoder(resp.Body).Decode(&content); err != nil {
		return NewSDKErrorWithStatus(err, resp.StatusCode)
	}

	if len(content.Errors) == 0 {
		return NewSDKErrorWithStatus(errRespBody, resp.StatusCode)
	}

	reasons := make([]string, 0, len(content.Errors))
	for _, e := range content.Errors {
		if e.Reason != "" {
			reasons = append(reasons, e.Reason)
		}
	}
	if len(reasons) == 0 {
		return NewSDKErrorWithStatus(errUnknown, resp.StatusCode)
	}

	return NewSDKErrorWithStatus(New(strings.Join(reasons, "; ")), resp.StatusCode)
}
