// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package promexport publishes a processor descriptor as Prometheus gauges, for
// the node exporter textfile collector.
package promexport

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cpudesc/internal/features"
	"cpudesc/internal/procdesc"
)

const promMetricPrefix = "cpudesc_"

// Collectors holds the gauges for one descriptor.
type Collectors struct {
	FeaturePresent *prometheus.GaugeVec
	FeatureCount   prometheus.Gauge
	ProcessorInfo  *prometheus.GaugeVec
}

// NewCollectors creates the gauges and sets them from d and id. Every named
// feature gets a sample, 1 when present and 0 when absent, so a missing series
// always means a missing export rather than a missing feature.
func NewCollectors(d procdesc.Descriptor, id procdesc.Identification) *Collectors {
	c := &Collectors{
		FeaturePresent: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: promMetricPrefix + "feature_present",
				Help: "Whether the processor reports the instruction set feature",
			},
			[]string{"name", "index"},
		),
		FeatureCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: promMetricPrefix + "feature_count",
				Help: "Number of named features the processor reports",
			},
		),
		ProcessorInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: promMetricPrefix + "processor_info",
				Help: "Processor identity, always 1",
			},
			[]string{"vendor", "processor", "code", "family", "model", "stepping"},
		),
	}
	count := 0
	for _, f := range features.Named() {
		value := 0.0
		if d.Has(f) {
			value = 1
			count++
		}
		c.FeaturePresent.WithLabelValues(features.Name(f), strconv.Itoa(int(f))).Set(value)
	}
	c.FeatureCount.Set(float64(count))
	c.ProcessorInfo.WithLabelValues(
		id.VendorID,
		d.Processor.String(),
		d.Processor.Code(),
		fmt.Sprintf("0x%x", id.Fields.DisplayFamily()),
		fmt.Sprintf("0x%x", id.Fields.DisplayModel()),
		strconv.Itoa(int(id.Fields.Stepping)),
	).Set(1)
	return c
}

// Register adds the gauges to reg.
func (c *Collectors) Register(reg prometheus.Registerer) error {
	for _, collector := range []prometheus.Collector{c.FeaturePresent, c.FeatureCount, c.ProcessorInfo} {
		if err := reg.Register(collector); err != nil {
			return errors.Wrap(err, "failed to register metric")
		}
	}
	return nil
}

// WriteTextfile writes the descriptor metrics to path in the Prometheus text
// format. The file is replaced atomically.
func WriteTextfile(path string, d procdesc.Descriptor, id procdesc.Identification) error {
	reg := prometheus.NewRegistry()
	if err := NewCollectors(d, id).Register(reg); err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}
	slog.Info("wrote metrics textfile", slog.String("path", path))
	return nil
}

// Handler returns an HTTP handler serving the descriptor metrics.
func Handler(d procdesc.Descriptor, id procdesc.Identification) (http.Handler, error) {
	reg := prometheus.NewRegistry()
	if err := NewCollectors(d, id).Register(reg); err != nil {
		return nil, err
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

// Serve serves the descriptor metrics on listenAddr at /metrics until ctx is done.
func Serve(ctx context.Context, listenAddr string, d procdesc.Descriptor, id procdesc.Identification) error {
	handler, err := Handler(d, id)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	server := &http.Server{
		Addr:              listenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 3 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting Prometheus metrics server", slog.String("address", listenAddr))
		errCh <- server.ListenAndServe()
	}()
	select {
	case err = <-errCh:
		return errors.Wrapf(err, "metrics server on %s failed", listenAddr)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "failed to stop metrics server")
	}
	if err = <-errCh; err != nil && err != http.ErrServerClosed {
		return errors.Wrapf(err, "metrics server on %s failed", listenAddr)
	}
	return nil
}
