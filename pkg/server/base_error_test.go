// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package server

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_Is(t *testing.T) {
	err := wrapError(errBind, syscall.EADDRINUSE)
	assert.True(t, errors.Is(err, errBind))
	assert.False(t, errors.Is(err, errServerInit))
	assert.True(t, errors.Is(err, syscall.EADDRINUSE))
}

func TestBaseError_Error(t *testing.T) {
	err := wrapError(errConfig, errors.New("invalid port \"abc\""))
	assert.EqualValues(t, "[coopserve] Error: Invalid server configuration: invalid port \"abc\"", err.Error())
}

func TestBaseError_Undefined(t *testing.T) {
	err := wrapError(errors.New("some other category"), errors.New("boom"))
	assert.True(t, errors.Is(err, errUndefined))
}
