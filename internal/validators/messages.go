// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"reflect"
)

func message(field, tag, param string, kind reflect.Kind) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "url", "uri", "http_url":
		return fmt.Sprintf("%q must be a valid uri", field)
	case "uuid", "uuid4", "uuid7":
		return fmt.Sprintf("%q must be a valid GUID", field)
	case "min":
		if kind == reflect.String {
			return fmt.Sprintf("%q length must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%q must be greater than or equal to %s", field, param)
	case "max":
		if kind == reflect.String {
			return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, param)
		}
		return fmt.Sprintf("%q must be less than or equal to %s", field, param)
	}

	return fmt.Sprintf("%q is invalid", field)
}

// typeName is the article-prefixed JSON type expected for a Go kind.
func typeName(kind reflect.Kind) string {
	switch kind {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	}
	return "of type object"
}
