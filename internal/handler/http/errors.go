// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrNoCaller is returned by protected handlers that find no verified
// claims in the request context, which means the auth gate was skipped.
var ErrNoCaller = errors.New("no authenticated caller in request context")
