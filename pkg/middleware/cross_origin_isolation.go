// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package middleware

import (
	"net/http"
)

const (
	HeaderCrossOriginOpenerPolicy   = "Cross-Origin-Opener-Policy"
	HeaderCrossOriginEmbedderPolicy = "Cross-Origin-Embedder-Policy"

	CrossOriginOpenerPolicySameOrigin       = "same-origin"
	CrossOriginEmbedderPolicyCredentialless = "credentialless"
)

// crossOriginIsolationHeaders must stay read-only; it is shared by every request.
var crossOriginIsolationHeaders = [...][2]string{
	{HeaderCrossOriginOpenerPolicy, CrossOriginOpenerPolicySameOrigin},
	{HeaderCrossOriginEmbedderPolicy, CrossOriginEmbedderPolicyCredentialless},
}

// CrossOriginIsolationHeaders returns a copy of the headers that put a page into a cross-origin
// isolated state, which browsers require before exposing SharedArrayBuffer.
func CrossOriginIsolationHeaders() http.Header {
	h := make(http.Header, len(crossOriginIsolationHeaders))
	for _, pair := range crossOriginIsolationHeaders {
		h.Set(pair[0], pair[1])
	}
	return h
}

type crossOriginIsolationMiddleware struct {
	name string
}

func NewCrossOriginIsolationMiddleware() Middleware {
	return &crossOriginIsolationMiddleware{
		name: "CrossOriginIsolationMiddleware",
	}
}

func (m *crossOriginIsolationMiddleware) Name() string {
	return m.name
}

// Intercept stamps both headers before h runs. nothing downstream removes them, so they survive
// into every response h writes, error statuses included.
func (m *crossOriginIsolationMiddleware) Intercept(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, pair := range crossOriginIsolationHeaders {
			w.Header().Set(pair[0], pair[1])
		}
		h.ServeHTTP(w, r)
	})
}
