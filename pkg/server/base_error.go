// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package server

import "fmt"

var (
	errServerInit = &baseError{message: "Server initialization failed"}
	errConfig     = &baseError{message: "Invalid server configuration"}
	errBind       = &baseError{message: "Could not bind listener"}
	errServe      = &baseError{message: "HTTP server stopped unexpectedly"}
	errUndefined  = &baseError{message: "Undefined error"}
)

type baseError struct {
	wrappedErr error
	baseErr    *baseError
	message    string
}

func (e baseError) Is(err error) bool {
	return e.baseErr == err
}

func (e baseError) Unwrap() error {
	return e.wrappedErr
}

func (e baseError) Error() string {
	return fmt.Sprintf("[coopserve] Error: %s: %s", e.baseErr.message, e.wrappedErr.Error())
}

func wrapError(baseType error, err error) error {
	switch baseType {
	case errServerInit, errConfig, errBind, errServe:
		return &baseError{baseErr: baseType.(*baseError), wrappedErr: err}
	}
	return &baseError{baseErr: errUndefined, wrappedErr: err}
}
