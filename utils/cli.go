// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package utils

var ServerFlagConstants = map[string]map[string]string{
	"Hostname": {
		"FlagName":    "hostname",
		"ShortFlag":   "n",
		"Description": "Interface address to bind (default: all interfaces)",
	},
	"Port": {
		"FlagName":    "port",
		"ShortFlag":   "p",
		"Description": "Port to serve on. A positional port argument takes precedence",
	},
	"RootDir": {
		"FlagName":    "rootdir",
		"ShortFlag":   "r",
		"Description": "Directory to serve (default: Current directory)",
	},
	"NoDirListing": {
		"FlagName":    "no-dir-listing",
		"Description": "Answer 404 for directories without an index.html instead of listing them",
	},
	"Compress": {
		"FlagName":    "compress",
		"Description": "Compress responses with gzip/deflate when the client accepts it",
	},
	"ConfigFile": {
		"FlagName":    "config-file",
		"Description": "Path to a server config file (JSON, YAML or TOML)",
	},
	"ShutdownTimeout": {
		"FlagName":    "shutdown-timeout",
		"Description": "Graceful server shutdown timeout",
	},
	"OutputLog": {
		"FlagName":    "output-log",
		"ShortFlag":   "l",
		"Description": "Platform log output",
	},
	"AccessLog": {
		"FlagName":    "access-log",
		"ShortFlag":   "a",
		"Description": "HTTP server access log output",
	},
	"ErrorLog": {
		"FlagName":    "error-log",
		"ShortFlag":   "e",
		"Description": "HTTP server error log output",
	},
	"Debug": {
		"FlagName":    "debug",
		"ShortFlag":   "d",
		"Description": "Enable debug logging",
	},
	"NoBanner": {
		"FlagName":    "no-banner",
		"ShortFlag":   "b",
		"Description": "Do not print the banner at startup",
	},
	"Prometheus": {
		"FlagName":    "prometheus",
		"Description": "Expose request metrics at /prometheus",
	},
}
