// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossOriginIsolationMiddleware_Name(t *testing.T) {
	assert.Equal(t, "CrossOriginIsolationMiddleware", NewCrossOriginIsolationMiddleware().Name())
}

func TestCrossOriginIsolationMiddleware_Intercept(t *testing.T) {
	statuses := []int{http.StatusOK, http.StatusNotFound, http.StatusForbidden, http.StatusInternalServerError}
	for _, status := range statuses {
		status := status
		t.Run(http.StatusText(status), func(t *testing.T) {
			h := CrossOriginIsolation.Intercept(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/any", nil))

			assert.Equal(t, status, rec.Code)
			assert.Equal(t, "same-origin", rec.Header().Get("Cross-Origin-Opener-Policy"))
			assert.Equal(t, "credentialless", rec.Header().Get("Cross-Origin-Embedder-Policy"))
		})
	}
}

func TestCrossOriginIsolationMiddleware_SurvivesHttpError(t *testing.T) {
	h := CrossOriginIsolation.Intercept(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "same-origin", rec.Header().Get(HeaderCrossOriginOpenerPolicy))
	assert.Equal(t, "credentialless", rec.Header().Get(HeaderCrossOriginEmbedderPolicy))
}

func TestCrossOriginIsolationMiddleware_NoDuplicates(t *testing.T) {
	h := BuildChain(http.NotFoundHandler(), CrossOriginIsolation, CrossOriginIsolation)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, rec.Header().Values(HeaderCrossOriginOpenerPolicy), 1)
	assert.Len(t, rec.Header().Values(HeaderCrossOriginEmbedderPolicy), 1)
}

func TestCrossOriginIsolationHeaders_ReturnsCopy(t *testing.T) {
	h := CrossOriginIsolationHeaders()
	assert.Equal(t, "same-origin", h.Get(HeaderCrossOriginOpenerPolicy))
	assert.Equal(t, "credentialless", h.Get(HeaderCrossOriginEmbedderPolicy))

	h.Set(HeaderCrossOriginOpenerPolicy, "unsafe-none")
	assert.Equal(t, "same-origin", CrossOriginIsolationHeaders().Get(HeaderCrossOriginOpenerPolicy))
}
