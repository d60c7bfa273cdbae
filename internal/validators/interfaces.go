// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads and path parameters before
// they reach the services.
//
// Every failure is reported as a 400 [apperr.Error] whose message follows
// the wording clients of this API already parse, for example
// `"email" is required` or `"password" length must be at least 6
// characters long`. Only the first failure is reported.
package validators

import "context"

// Validator validates request values.
type Validator interface {

	// Validate validates the provided struct and optionally restricts
	// validation to the named struct fields.
	Validate(ctx context.Context, obj any, fields ...string) error

	// ValidateParam validates a single named value against a validator tag
	// such as "uuid".
	ValidateParam(ctx context.Context, name, value, tag string) error
}
