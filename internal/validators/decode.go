// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/around-api/internal/apperr"
)

const unknownFieldPrefix = "json: unknown field "

// DecodeJSON decodes body into dst. An empty body decodes to the zero
// value so that required-field checks report the missing fields.
//
// With strict set, keys that are not exactly the json name of a field of
// dst are rejected with `"<key>" is not allowed`. Matching is case-sensitive.
func DecodeJSON(body []byte, dst any, strict bool) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if strict {
		if key, ok := firstUnknownKey(body, dst); ok {
			return apperr.Validation(fmt.Sprintf("%q is not allowed", key))
		}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if strict {
		dec.DisallowUnknownFields()
	}

	err := dec.Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			return apperr.Validation(fmt.Sprintf("%q must be of type object", "value")).Wrap(err)
		}
		return apperr.Validation(fmt.Sprintf("%q must be %s", field, typeName(typeErr.Type.Kind()))).Wrap(err)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apperr.Validation(syntaxErr.Error()).Wrap(err)
	}

	if key, ok := strings.CutPrefix(err.Error(), unknownFieldPrefix); ok {
		return apperr.Validation(fmt.Sprintf("%s is not allowed", key)).Wrap(err)
	}

	return apperr.Validation(err.Error()).Wrap(err)
}

// firstUnknownKey reports the first top-level key of body, in sorted order,
// that is not a json field name of dst. Bodies that are not objects are left
// to the decoder.
func firstUnknownKey(body []byte, dst any) (string, bool) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", false
	}

	known := jsonFieldNames(reflect.TypeOf(dst))
	keys := make([]string, 0, len(raw))
	for k := range raw {
		if _, ok := known[k]; !ok {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "", false
	}
	slices.Sort(keys)
	return keys[0], true
}

func jsonFieldNames(t reflect.Type) map[string]struct{} {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	names := make(map[string]struct{})
	if t.Kind() != reflect.Struct {
		return names
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if f.Anonymous && name == "" {
			for n := range jsonFieldNames(f.Type) {
				names[n] = struct{}{}
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		names[name] = struct{}{}
	}
	return names
}
