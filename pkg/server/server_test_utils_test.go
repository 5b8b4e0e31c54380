// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package server

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hackercorplabs/coopserve/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getBasicTestServerConfig(rootDir, outLog, accessLog, errLog string, port int, noBanner bool) *ServerConfig {
	return &ServerConfig{
		RootDir: rootDir,
		Port:    port,
		LogConfig: &utils.LogConfig{
			OutputLog:     outLog,
			AccessLog:     accessLog,
			ErrorLog:      errLog,
			FormatOptions: &utils.LogFormatOption{},
		},
		DirListing:      true,
		NoBanner:        noBanner,
		ShutdownTimeout: 5 * time.Second,
	}
}

// createTestRoot lays out a small site:
//
//	index.html        "hello"
//	data.bin          binary bytes
//	assets/app.js     "console.log(1)"
//	docs/index.html   "docs"
func createTestRoot(t *testing.T) string {
	root := t.TempDir()
	files := map[string][]byte{
		"index.html":      []byte("hello"),
		"data.bin":        {0x00, 0x01, 0xfe, 0xff, 'a', 0x00},
		"assets/app.js":   []byte("console.log(1)"),
		"docs/index.html": []byte("docs"),
	}
	for name, content := range files {
		p := filepath.Join(root, name)
		require.Nil(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.Nil(t, os.WriteFile(p, content, 0644))
	}
	return root
}

func createTestServer(t *testing.T, config *ServerConfig) *coopServer {
	s, err := NewServer(config)
	require.Nil(t, err)
	ps := s.(*coopServer)
	ps.stdout = &bytes.Buffer{}
	return ps
}

// startTestServer runs StartServer in the background and waits until the listener is bound
func startTestServer(t *testing.T, ps *coopServer) (baseUrl string, syschan chan os.Signal, done chan error) {
	syschan = make(chan os.Signal, 1)
	done = make(chan error, 1)
	go func() {
		done <- ps.StartServer(syschan)
	}()

	assert.Eventually(t, func() bool {
		return ps.Addr() != nil
	}, 5*time.Second, 10*time.Millisecond)
	require.NotNil(t, ps.Addr())

	return fmt.Sprintf("http://localhost:%d", ps.Addr().(*net.TCPAddr).Port), syschan, done
}

func assertCrossOriginIsolated(t *testing.T, h interface{ Get(string) string }) {
	assert.Equal(t, "same-origin", h.Get("Cross-Origin-Opener-Policy"))
	assert.Equal(t, "credentialless", h.Get("Cross-Origin-Embedder-Policy"))
}
