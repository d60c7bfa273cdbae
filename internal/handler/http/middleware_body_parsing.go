// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/around-api/internal/apperr"
)

// defaultMaxBodyBytes applies when the server config sets no limit.
const defaultMaxBodyBytes int64 = 100 << 10

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withBodyParsing reads JSON request bodies up front. It inflates gzip
// encoded bodies, enforces the size limit on the decoded bytes and rejects
// malformed JSON, then hands the buffered body to the next stage.
//
// Bodies of other content types are dropped, so handlers see them as empty.
func (h *Handler) withBodyParsing(next http.Handler) http.Handler {
	limit := h.cfg.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		if !isJSONRequest(r) {
			r.Body = http.NoBody
			next.ServeHTTP(w, r)
			return
		}

		body, err := readBody(r, limit)
		if err != nil {
			fail(r, err)
			return
		}

		if err = checkJSON(body); err != nil {
			fail(r, err)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		r.ContentLength = int64(len(body))
		r.Header.Del("Content-Encoding")

		next.ServeHTTP(w, r)
	})
}

func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// readBody returns at most limit decoded bytes of the request body.
func readBody(r *http.Request, limit int64) ([]byte, error) {
	var (
		src      io.Reader = r.Body
		inflated bool
	)

	switch encoding := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Encoding"))); encoding {
	case "", "identity":
		if r.ContentLength > limit {
			return nil, apperr.New(http.StatusRequestEntityTooLarge, apperr.MsgBodyTooLarge)
		}
	case "gzip":
		gz := gzipReaderPool.Get().(*gzip.Reader)
		defer gzipReaderPool.Put(gz)

		if err := gz.Reset(r.Body); err != nil {
			return nil, apperr.Validation("invalid gzip data").Wrap(err)
		}
		defer gz.Close()
		src, inflated = gz, true
	default:
		return nil, apperr.New(http.StatusUnsupportedMediaType, fmt.Sprintf("unsupported content encoding %q", encoding))
	}

	body, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		if inflated {
			return nil, apperr.Validation("invalid gzip data").Wrap(err)
		}
		return nil, fmt.Errorf("error reading request body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, apperr.New(http.StatusRequestEntityTooLarge, apperr.MsgBodyTooLarge)
	}

	return body, nil
}

// checkJSON accepts an empty body or a JSON object or array.
func checkJSON(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}

	if first := trimmed[0]; first != '{' && first != '[' {
		return apperr.Validation(fmt.Sprintf("invalid character %q looking for beginning of object or array", first))
	}

	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return apperr.Validation(err.Error()).Wrap(err)
	}
	return nil
}
