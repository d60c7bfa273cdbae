// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// around-api services and the API client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them in
// one place ensures consistent wording throughout the API. Pipeline-level
// messages ("Authorization required", "Invalid token", ...) live in apperr.
package app

const (
	// MsgIncorrectCredentials is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgIncorrectCredentials = "Incorrect email or password"

	// MsgEmailAlreadyExists is returned when a sign-up attempt is rejected
	// because the email is already registered.
	MsgEmailAlreadyExists = "User with this email already exists"

	// MsgUserNotFound is returned when a user lookup by ID finds nothing.
	MsgUserNotFound = "User not found"

	// MsgCardNotFound is returned when a card operation targets a card that
	// does not exist.
	MsgCardNotFound = "Card not found"

	// MsgNotCardOwner is returned when the authenticated user attempts to
	// delete a card that belongs to a different user.
	MsgNotCardOwner = "You can only delete your own cards"

	// MsgStatusOK is the health check status.
	MsgStatusOK = "ok"
)
