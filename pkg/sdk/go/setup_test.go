// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package sdk_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	sdk "github.com/vlavrik/flespi-gateway/pkg/sdk/go"
)

const (
	token        = "valid_token"
	invalidToken = "invalid_token"
	deviceID     = "123"

	wrongTokenReason = "wrong authorization key"
)

// newGatewayServer returns a test server that authorizes the valid token and
// delegates authorized requests to the given handler. Unauthorized requests
// receive the platform error body.
func newGatewayServer(handler http.HandlerFunc) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != sdk.TokenPrefix+token {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprintf(w, `{"errors":[{"reason":%q}]}`, wrongTokenReason)
			return
		}
		handler(w, r)
	}))
}

func newGatewaySDK(url string) sdk.SDK {
	return sdk.NewSDK(sdk.Config{
		GatewayURL:      url,
		TLSVerification: false,
	})
}
