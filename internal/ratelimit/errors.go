// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import "errors"

var ErrBackendUnavailable = errors.New("rate limit backend unavailable")
