package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
)

// KeyExtractor picks the bucket a request is charged to. An empty key
// exempts the request.
type KeyExtractor func(*http.Request) string

var trustProxyHeaders atomic.Bool

// TrustProxyHeaders controls whether IPKeyExtractor believes X-Forwarded-For
// and X-Real-IP. Turn it on only behind a reverse proxy that overwrites
// both, otherwise any client can pick its own rate limit bucket.
func TrustProxyHeaders(on bool) {
	trustProxyHeaders.Store(on)
}

// IPKeyExtractor returns the client address: the host part of RemoteAddr,
// or with TrustProxyHeaders the first X-Forwarded-For hop, then X-Real-IP.
func IPKeyExtractor(r *http.Request) string {
	if trustProxyHeaders.Load() {
		if ip := forwardedIP(r); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func forwardedIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	return strings.TrimSpace(r.Header.Get("X-Real-IP"))
}

// UserIDKeyExtractor returns the user id the session gate stored, or "" for
// anonymous callers.
func UserIDKeyExtractor(r *http.Request) string {
	return UserIDFromContext(r.Context())
}

// CompositeKeyExtractor joins the non-empty keys of extractors with sep.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, extract := range extractors {
			if key := extract(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

// JSONFieldKeyExtractor reads a string field from a JSON body, then rewinds
// the body for the handler. The value is trimmed and lowercased so that
// "A@B.com" and "a@b.com " share a bucket.
func JSONFieldKeyExtractor(field string) KeyExtractor {
	return func(r *http.Request) string {
		if r.Body == nil {
			return ""
		}

		raw, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(raw))
		if err != nil {
			return ""
		}

		var body map[string]json.RawMessage
		if json.Unmarshal(raw, &body) != nil {
			return ""
		}
		var value string
		if json.Unmarshal(body[field], &value) != nil {
			return ""
		}
		return strings.ToLower(strings.TrimSpace(value))
	}
}
