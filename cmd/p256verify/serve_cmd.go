// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/herczegzsolt/p256verify/internal/config"
	"github.com/herczegzsolt/p256verify/internal/obslog"
	"github.com/herczegzsolt/p256verify/internal/obsmetrics"
	"github.com/herczegzsolt/p256verify/server"
)

// serveCmd returns the cobra command that runs the HTTP verification
// server and its metrics endpoint.
func serveCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP verification server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, v)
		},
	}
}

func runServe(cmd *cobra.Command, v *viper.Viper) error {
	cfg := config.Load(v)

	logger, err := obslog.New("p256verify", cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	defer logger.Sync()

	cmd.SilenceUsage = true

	registry := prometheus.NewRegistry()
	metrics := obsmetrics.New(registry)

	handler := server.NewHandler(logger, metrics)

	mainSrv := &http.Server{
		Addr:         cfg.ListenAddress,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	metricsSrv := &http.Server{
		Addr:    cfg.MetricsAddress,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Infof("verification server listening on %s", cfg.ListenAddress)
		errCh <- mainSrv.ListenAndServe()
	}()
	go func() {
		logger.Infof("metrics server listening on %s", cfg.MetricsAddress)
		errCh <- metricsSrv.ListenAndServe()
	}()

	return <-errCh
}
