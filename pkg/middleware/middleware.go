// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package middleware

import (
	"net/http"
)

// CrossOriginIsolation is the shared instance wrapped around every handler the server exposes
var CrossOriginIsolation = NewCrossOriginIsolationMiddleware()

type Middleware interface {
	Intercept(h http.Handler) http.Handler
	Name() string
}

// BuildChain wraps h with the given middleware. the first element ends up outermost and sees the request first.
func BuildChain(h http.Handler, middleware ...Middleware) http.Handler {
	finalHandler := h
	for idx := len(middleware) - 1; idx >= 0; idx-- {
		finalHandler = middleware[idx].Intercept(finalHandler)
	}
	return finalHandler
}

type funcMiddleware struct {
	name string
	fn   func(http.Handler) http.Handler
}

// NewMiddleware names a plain func(http.Handler) http.Handler, such as the gorilla/handlers constructors,
// so it can take part in a chain.
func NewMiddleware(name string, fn func(http.Handler) http.Handler) Middleware {
	return &funcMiddleware{name: name, fn: fn}
}

func (m *funcMiddleware) Name() string {
	return m.name
}

func (m *funcMiddleware) Intercept(h http.Handler) http.Handler {
	return m.fn(h)
}
