// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package server

import (
	"strings"
	"time"

	"github.com/hackercorplabs/coopserve/utils"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables mirroring each flag, e.g. COOPSERVE_PORT or COOPSERVE_NO_DIR_LISTING
const EnvPrefix = "coopserve"

// flagValues is the merged view of flags, environment and config file. field tags match the flag names.
type flagValues struct {
	Hostname        string                 `mapstructure:"hostname"`
	Port            int                    `mapstructure:"port"`
	RootDir         string                 `mapstructure:"rootdir"`
	NoDirListing    bool                   `mapstructure:"no-dir-listing"`
	Compress        bool                   `mapstructure:"compress"`
	ConfigFile      string                 `mapstructure:"config-file"`
	ShutdownTimeout time.Duration          `mapstructure:"shutdown-timeout"`
	OutputLog       string                 `mapstructure:"output-log"`
	AccessLog       string                 `mapstructure:"access-log"`
	ErrorLog        string                 `mapstructure:"error-log"`
	Debug           bool                   `mapstructure:"debug"`
	NoBanner        bool                   `mapstructure:"no-banner"`
	Prometheus      bool                   `mapstructure:"prometheus"`
	LogFormat       *utils.LogFormatOption `mapstructure:"log-format"` // config file only
}

// ConfigFactory registers the server flags on a pflag.FlagSet and turns the parsed result, layered over
// environment variables and an optional config file, into a ServerConfig.
type ConfigFactory struct {
	flags *pflag.FlagSet
	v     *viper.Viper
}

// NewConfigFactory registers every server flag on flags. flags may belong to a cobra command.
func NewConfigFactory(flags *pflag.FlagSet) *ConfigFactory {
	f := &ConfigFactory{flags: flags, v: viper.New()}
	f.configureFlags()
	return f
}

func (f *ConfigFactory) configureFlags() {
	c := utils.ServerFlagConstants
	f.flags.StringP(c["Hostname"]["FlagName"], c["Hostname"]["ShortFlag"], "", c["Hostname"]["Description"])
	f.flags.IntP(c["Port"]["FlagName"], c["Port"]["ShortFlag"], DefaultPort, c["Port"]["Description"])
	f.flags.StringP(c["RootDir"]["FlagName"], c["RootDir"]["ShortFlag"], "", c["RootDir"]["Description"])
	f.flags.Bool(c["NoDirListing"]["FlagName"], false, c["NoDirListing"]["Description"])
	f.flags.Bool(c["Compress"]["FlagName"], false, c["Compress"]["Description"])
	f.flags.String(c["ConfigFile"]["FlagName"], "", c["ConfigFile"]["Description"])
	f.flags.Duration(c["ShutdownTimeout"]["FlagName"], DefaultShutdownTimeout, c["ShutdownTimeout"]["Description"])
	f.flags.StringP(c["OutputLog"]["FlagName"], c["OutputLog"]["ShortFlag"], "stderr", c["OutputLog"]["Description"])
	f.flags.StringP(c["AccessLog"]["FlagName"], c["AccessLog"]["ShortFlag"], "stderr", c["AccessLog"]["Description"])
	f.flags.StringP(c["ErrorLog"]["FlagName"], c["ErrorLog"]["ShortFlag"], "stderr", c["ErrorLog"]["Description"])
	f.flags.BoolP(c["Debug"]["FlagName"], c["Debug"]["ShortFlag"], false, c["Debug"]["Description"])
	f.flags.BoolP(c["NoBanner"]["FlagName"], c["NoBanner"]["ShortFlag"], false, c["NoBanner"]["Description"])
	f.flags.Bool(c["Prometheus"]["FlagName"], false, c["Prometheus"]["Description"])
}

// load merges flags, environment and config file. precedence is explicit flag, environment, config file, flag default.
func (f *ConfigFactory) load() (*flagValues, error) {
	if err := f.v.BindPFlags(f.flags); err != nil {
		return nil, err
	}
	f.v.SetEnvPrefix(EnvPrefix)
	f.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	f.v.AutomaticEnv()

	if configFile := f.v.GetString(utils.ServerFlagConstants["ConfigFile"]["FlagName"]); len(configFile) > 0 {
		f.v.SetConfigFile(configFile)
		if err := f.v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	values := &flagValues{}
	// duration flags and env vars reach viper as strings such as "30s"
	err := f.v.Unmarshal(values, viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc()))
	if err != nil {
		return nil, err
	}
	return values, nil
}

// CreateServerConfig builds a ServerConfig from the already parsed flag set. args are the positional
// arguments left after flag parsing; a single positional argument is the port and beats --port.
func (f *ConfigFactory) CreateServerConfig(args []string) (*ServerConfig, error) {
	values, err := f.load()
	if err != nil {
		return nil, wrapError(errConfig, err)
	}
	return generateServerConfig(values, args)
}
