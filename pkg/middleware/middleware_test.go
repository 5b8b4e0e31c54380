// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingMiddleware struct {
	name  string
	trail *[]string
}

func (m *recordingMiddleware) Name() string {
	return m.name
}

func (m *recordingMiddleware) Intercept(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*m.trail = append(*m.trail, m.name)
		h.ServeHTTP(w, r)
	})
}

func TestBuildChain_Order(t *testing.T) {
	var trail []string
	h := BuildChain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trail = append(trail, "handler")
	}),
		&recordingMiddleware{name: "first", trail: &trail},
		&recordingMiddleware{name: "second", trail: &trail})

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"first", "second", "handler"}, trail)
}

func TestBuildChain_Empty(t *testing.T) {
	h := BuildChain(http.NotFoundHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewMiddleware(t *testing.T) {
	m := NewMiddleware("teapot", func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
	})
	assert.Equal(t, "teapot", m.Name())

	rec := httptest.NewRecorder()
	BuildChain(http.NotFoundHandler(), CrossOriginIsolation, m).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "same-origin", rec.Header().Get(HeaderCrossOriginOpenerPolicy))
}
