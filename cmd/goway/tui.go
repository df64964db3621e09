// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"goway/app"
	"goway/config"
	"goway/coordinator"
	"goway/destination"
	"goway/kvstore"
	"goway/metrics"
	"goway/polling"
	gowaylog "goway/utils/log"
	"goway/venue"
)

func runTUI(cfg *config.Config, open *destination.Destination) error {
	l := gowaylog.Component("main")

	catalog, err := venue.Load(cfg.Dataset)
	if err != nil {
		return err
	}
	store, err := kvstore.OpenSQLite(cfg.ResolvedStorePath())
	if err != nil {
		return err
	}
	defer store.Close()

	var opts []coordinator.Option
	opts = append(opts, coordinator.WithSettleDelay(cfg.SettleDelay))
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		opts = append(opts, coordinator.WithMetrics(metrics.New(reg)))

		srv := serveMetrics(cfg.MetricsAddr, reg)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	coord := coordinator.New(store, catalog, opts...)
	model := app.New(app.Deps{
		Catalog:      catalog,
		Coordinator:  coord,
		Store:        store,
		SettleDelay:  cfg.SettleDelay,
		PollInterval: polling.PollInterval,
		Open:         open,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	stop := forwardSignals(p)
	defer stop()

	l.Infof("starting %s %s with %d buildings", config.AppName, version, len(catalog.AllBuildings()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// forwardSignals maps SIGUSR1 to activation and SIGUSR2 to deactivation,
// so scripts and window managers can drive the lifecycle.
func forwardSignals(p *tea.Program) func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGUSR1, syscall.SIGUSR2)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case sig := <-ch:
				if sig == syscall.SIGUSR1 {
					p.Send(app.ForegroundMsg{Reset: true})
				} else {
					p.Send(app.BackgroundMsg{})
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}

func serveMetrics(addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			gowaylog.Component("metrics").Errorf("metrics server: %v", err)
		}
	}()
	return srv
}
