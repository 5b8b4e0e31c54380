package main

import (
	"bytes"
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_TooManyArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"8000", "9000"})
	cmd.SetOut(&bytes.Buffer{})
	assert.NotNil(t, cmd.Execute())
}

func TestRootCommand_InvalidPort(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"not-a-port"})
	err := cmd.Execute()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), `invalid port "not-a-port"`)
}

func TestRootCommand_PortInUse(t *testing.T) {
	occupied, err := net.Listen("tcp", ":0")
	require.Nil(t, err)
	defer occupied.Close()
	port := occupied.Addr().(*net.TCPAddr).Port

	cmd := newRootCommand()
	cmd.SetArgs([]string{"--rootdir", t.TempDir(), "--no-banner", "--output-log", "null", "--access-log", "null", strconv.Itoa(port)})
	err = cmd.Execute()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Could not bind listener")
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"port", "hostname", "rootdir", "no-dir-listing", "compress", "prometheus",
		"debug", "no-banner", "shutdown-timeout", "output-log", "access-log", "error-log", "config-file"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "8000", cmd.Flags().Lookup("port").DefValue)
}
