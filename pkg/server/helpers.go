// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package server

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hackercorplabs/coopserve/utils"
)

// generateServerConfig turns merged flag values and positional arguments into a validated *ServerConfig
func generateServerConfig(values *flagValues, args []string) (*ServerConfig, error) {
	if len(args) > 1 {
		return nil, wrapError(errConfig, fmt.Errorf("expected at most one positional argument (port), got %d", len(args)))
	}

	port := values.Port
	if len(args) == 1 {
		var err error
		if port, err = parsePort(args[0]); err != nil {
			return nil, wrapError(errConfig, err)
		}
	}
	if port < 1 || port > 65535 {
		return nil, wrapError(errConfig, fmt.Errorf("port %d is out of range 1-65535", port))
	}

	// handle invalid duration by falling back to the default
	shutdownTimeout := values.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}

	formatOptions := values.LogFormat
	if formatOptions == nil {
		formatOptions = &utils.LogFormatOption{}
	}

	serverConfig := &ServerConfig{
		Host:    values.Hostname,
		Port:    port,
		RootDir: values.RootDir,
		LogConfig: &utils.LogConfig{
			AccessLog:     values.AccessLog,
			ErrorLog:      values.ErrorLog,
			OutputLog:     values.OutputLog,
			FormatOptions: formatOptions,
		},
		DirListing:       !values.NoDirListing,
		Compress:         values.Compress,
		EnablePrometheus: values.Prometheus,
		Debug:            values.Debug,
		NoBanner:         values.NoBanner,
		ShutdownTimeout:  shutdownTimeout,
	}

	if err := sanitizeConfigRootPath(serverConfig); err != nil {
		return nil, wrapError(errConfig, err)
	}
	serverConfig.LogConfig.Root = serverConfig.RootDir
	return serverConfig, nil
}

// parsePort parses a decimal port number
func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q", s)
	}
	return port, nil
}

// sanitizeConfigRootPath takes *ServerConfig and ensures the path specified by RootDir field exists and
// is a directory. if RootDir is empty then the current working directory is used.
func sanitizeConfigRootPath(config *ServerConfig) error {
	if len(config.RootDir) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		config.RootDir = wd
	}

	absRootPath, err := filepath.Abs(config.RootDir)
	if err != nil {
		return err
	}

	fi, err := os.Stat(absRootPath)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", absRootPath)
	}

	// once it has been confirmed that the path exists, set config.RootDir to the absolute path
	config.RootDir = absRootPath
	return nil
}
