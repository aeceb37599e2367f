// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package errors_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vlavrik/flespi-gateway/pkg/errors"
)

func newResponse(status int, body string) *http.Response {
	rec := httptest.NewRecorder()
	rec.WriteHeader(status)
	if _, err := rec.WriteString(body); err != nil {
		panic(err)
	}
	return rec.Result()
}

func TestCheckError(t *testing.T) {
	cases := []struct {
		desc     string
		response *http.Response
		expected []int
		status   int
		msg      string
	}{
		{
			desc:     "expected status code",
			response: newResponse(http.StatusOK, `{"result":[]}`),
			expected: []int{http.StatusOK},
			status:   0,
			msg:      "",
		},
		{
			desc:     "single error reason",
			response: newResponse(http.StatusUnauthorized, `{"errors":[{"reason":"wrong authorization key"}]}`),
			expected: []int{http.StatusOK},
			status:   http.StatusUnauthorized,
			msg:      "wrong authorization key",
		},
		{
			desc:     "multiple error reasons",
			response: newResponse(http.StatusBadRequest, `{"errors":[{"reason":"invalid selector"},{"reason":"missing field"}]}`),
			expected: []int{http.StatusOK},
			status:   http.StatusBadRequest,
			msg:      "invalid selector; missing field",
		},
		{
			desc:     "non-json error body",
			response: newResponse(http.StatusInternalServerError, "gateway exploded"),
			expected: []int{http.StatusOK},
			status:   http.StatusInternalServerError,
			msg:      "invalid character",
		},
		{
			desc:     "json body without errors key",
			response: newResponse(http.StatusForbidden, `{"message":"no"}`),
			expected: []int{http.StatusOK},
			status:   http.StatusForbidden,
			msg:      "errors json key not found",
		},
	}
	for _, tc := range cases {
		err := errors.CheckError(tc.response, tc.expected...)
		if tc.status == 0 {
			assert.Nil(t, err, tc.desc)
			continue
		}
		assert.NotNil(t, err, tc.desc)
		assert.Equal(t, tc.status, err.StatusCode(), fmt.Sprintf("%s: expected status %d, got %d", tc.desc, tc.status, err.StatusCode()))
		assert.True(t, strings.Contains(err.Msg(), tc.msg), fmt.Sprintf("%s: expected message containing %q, got %q", tc.desc, tc.msg, err.Msg()))
	}
}

func TestSDKErrorString(t *testing.T) {
	err := errors.NewSDKErrorWithStatus(errors.New("wrong authorization key"), http.StatusUnauthorized)
	assert.Equal(t, "Status: Unauthorized: wrong authorization key", err.Error())

	err = errors.NewSDKError(errors.New("connection refused"))
	assert.Equal(t, 0, err.StatusCode(), "plain sdk errors carry no HTTP status")
}
