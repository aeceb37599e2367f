// Copyright (c) vlavrik
// SPDX-License-Identifier: BSD-3-Clause

package cli

import fgxsdk "github.com/vlavrik/flespi-gateway/pkg/sdk/go"

// Keep SDK handle in global var.
var sdk fgxsdk.SDK

// SetSDK sets the flespi gateway SDK instance.
func SetSDK(s fgxsdk.SDK) {
	sdk = s
}
