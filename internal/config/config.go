// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config binds the command's flags and environment variables into
// a single Config value, following the viper convention used throughout
// the command-line surface: flags are bound to viper keys, and environment
// variables with the CmdRoot prefix override defaults. No config file is
// read.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// CmdRoot is the environment variable prefix for all p256verify settings,
// e.g. P256VERIFY_LISTEN_ADDRESS.
const CmdRoot = "p256verify"

// Config is the resolved runtime configuration for the server and CLI.
type Config struct {
	ListenAddress  string
	MetricsAddress string
	LogLevel       string
	LogJSON        bool
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// Default returns the configuration used when no flags or environment
// variables override it.
func Default() Config {
	return Config{
		ListenAddress:  "127.0.0.1:8080",
		MetricsAddress: "127.0.0.1:9090",
		LogLevel:       "info",
		LogJSON:        false,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
	}
}

// BindFlags registers the persistent flags for the serve command and
// binds each to its viper key, following the bind-then-lookup convention:
// a flag's value is only consulted through viper, never read directly off
// the pflag.FlagSet, so an environment variable can override an unset
// flag.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	d := Default()

	flags.String("listen-address", d.ListenAddress, "address the verification server listens on")
	flags.String("metrics-address", d.MetricsAddress, "address the Prometheus metrics endpoint listens on")
	flags.String("log-level", d.LogLevel, "minimum log level (debug, info, warn, error)")
	flags.Bool("log-json", d.LogJSON, "emit logs as JSON instead of human-readable text")
	flags.Duration("read-timeout", d.ReadTimeout, "HTTP server read timeout")
	flags.Duration("write-timeout", d.WriteTimeout, "HTTP server write timeout")

	for _, name := range []string{
		"listen-address", "metrics-address", "log-level", "log-json",
		"read-timeout", "write-timeout",
	} {
		if err := v.BindPFlag(viperKey(name), flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "binding flag %s", name)
		}
	}
	return nil
}

// New initializes a viper instance wired for environment variable
// overrides under the CmdRoot prefix, with flags bound via BindFlags.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(CmdRoot)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	return v
}

// Load resolves the final Config from a bound viper instance.
func Load(v *viper.Viper) Config {
	return Config{
		ListenAddress:  v.GetString(viperKey("listen-address")),
		MetricsAddress: v.GetString(viperKey("metrics-address")),
		LogLevel:       v.GetString(viperKey("log-level")),
		LogJSON:        v.GetBool(viperKey("log-json")),
		ReadTimeout:    v.GetDuration(viperKey("read-timeout")),
		WriteTimeout:   v.GetDuration(viperKey("write-timeout")),
	}
}

func viperKey(flagName string) string {
	return strings.ReplaceAll(flagName, "-", "_")
}
