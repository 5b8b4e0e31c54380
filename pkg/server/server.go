// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hackercorplabs/coopserve/utils"
)

// NewServer configures and returns a new Server instance
func NewServer(config *ServerConfig) (Server, error) {
	if err := sanitizeConfigRootPath(config); err != nil {
		return nil, wrapError(errServerInit, err)
	}
	if config.LogConfig == nil {
		config.LogConfig = &utils.LogConfig{}
	}
	if len(config.LogConfig.Root) == 0 {
		config.LogConfig.Root = config.RootDir
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = DefaultShutdownTimeout
	}

	ps := &coopServer{
		serverConfig: config,
		stdout:       os.Stdout,
	}
	if err := ps.initialize(); err != nil {
		return nil, wrapError(errServerInit, err)
	}
	return ps, nil
}

// StartServer binds the configured host and port and serves until a SIGINT or SIGTERM arrives on syschan
// or StopServer is called. a failed bind is returned immediately; there is no fallback port.
func (ps *coopServer) StartServer(syschan chan os.Signal) error {
	ln, err := net.Listen("tcp", ps.HttpServer.Addr)
	if err != nil {
		utils.Log.Errorf("Server could not start at %s: %s", ps.HttpServer.Addr, err)
		return wrapError(errBind, err)
	}

	port := ln.Addr().(*net.TCPAddr).Port

	// print out the quick summary of the server configuration, if NoBanner is false
	if !ps.serverConfig.NoBanner {
		ps.printBanner(port)
	}
	_, _ = fmt.Fprintf(ps.stdout, "Serving on http://localhost:%d/ with COOP/COEP headers\n", port)

	ps.lock.Lock()
	ps.listener = ln
	ps.lock.Unlock()
	utils.Log.Infof("Starting HTTP server at %s serving %s", ln.Addr(), ps.serverConfig.RootDir)

	if syschan != nil {
		ps.SyscallChan = syschan
		signal.Notify(ps.SyscallChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(ps.SyscallChan)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- ps.HttpServer.Serve(ln)
	}()

	select {
	case <-ps.SyscallChan:
		ps.StopServer()
		err = <-serveErr
	case err = <-serveErr:
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return wrapError(errServe, err)
}

// StopServer attempts to gracefully stop the HTTP server, giving in-flight requests ShutdownTimeout to finish
func (ps *coopServer) StopServer() {
	utils.Log.Infoln("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ps.serverConfig.ShutdownTimeout)
	defer cancel()

	if err := ps.HttpServer.Shutdown(shutdownCtx); err != nil {
		utils.Log.Errorf("Server failed to gracefully shut down after %s: %s", ps.serverConfig.ShutdownTimeout, err)
		_ = ps.HttpServer.Close()
	}
}

// Handler returns the router wrapped in the full middleware chain
func (ps *coopServer) Handler() http.Handler {
	return ps.handler
}

// Addr returns the address the listener is bound to, or nil before StartServer has bound it
func (ps *coopServer) Addr() net.Addr {
	ps.lock.Lock()
	defer ps.lock.Unlock()
	if ps.listener == nil {
		return nil
	}
	return ps.listener.Addr()
}
