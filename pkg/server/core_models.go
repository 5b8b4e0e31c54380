// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package server

import (
	"io"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/hackercorplabs/coopserve/pkg/metrics"
	"github.com/hackercorplabs/coopserve/utils"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	DefaultPort            = 8000
	DefaultShutdownTimeout = 10 * time.Second
	PrometheusPath         = "/prometheus"
)

// ServerConfig holds everything the server needs to know at startup. it is never modified once the server is built.
type ServerConfig struct {
	RootDir          string           `json:"root_dir"`          // directory whose contents are served
	Host             string           `json:"host"`              // interface to bind. empty means all interfaces
	Port             int              `json:"port"`              // port to bind. 0 picks an ephemeral port
	LogConfig        *utils.LogConfig `json:"log_config"`        // log configuration (platform, HTTP access and error logs)
	DirListing       bool             `json:"dir_listing"`       // generate listings for directories without index.html
	Compress         bool             `json:"compress"`          // gzip/deflate responses for clients that accept it
	EnablePrometheus bool             `json:"enable_prometheus"` // expose request metrics at PrometheusPath
	Debug            bool             `json:"debug"`             // enable debug logging
	NoBanner         bool             `json:"no_banner"`         // start server without displaying the banner
	ShutdownTimeout  time.Duration    `json:"shutdown_timeout"`  // graceful server shutdown timeout
}

// Server serves a directory over HTTP with cross-origin isolation headers on every response.
type Server interface {
	StartServer(syschan chan os.Signal) error // bind and serve until a signal arrives on syschan
	StopServer()                              // gracefully stop serving
	Handler() http.Handler                    // fully composed request handler
	Addr() net.Addr                           // bound address, nil until the listener is up
}

// coopServer is the main struct that holds all components together
type coopServer struct {
	HttpServer     *http.Server            // Http server instance
	SyscallChan    chan os.Signal          // syscall channel to receive SIGINT, SIGTERM events
	serverConfig   *ServerConfig           // server config instance
	router         *mux.Router             // *mux.Router instance
	handler        http.Handler            // router wrapped in the middleware chain
	registry       *prometheus.Registry    // per-server metrics registry, nil unless Prometheus is enabled
	requestMetrics *metrics.RequestMetrics // request counters, nil unless Prometheus is enabled
	out            io.Writer               // platform log output
	stdout         io.Writer               // destination of the startup announcement
	listener       net.Listener            // bound listener once StartServer succeeded
	lock           sync.Mutex              // guards listener
}
