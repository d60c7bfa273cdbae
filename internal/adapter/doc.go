// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed HTTP client for the users and cards API.
//
// It is used by tooling and end-to-end tests. Non-2xx responses are mapped
// to the sentinel errors of this package, with the server's "message"
// attached to the error text.
package adapter
