package daemon

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"procctl/internal/registry"
)

const collectTimeout = 5 * time.Second

var processLabels = []string{"id", "name", "pid"}

// collector exports the registry as Prometheus gauges, resolving every
// entry against the OS at scrape time.
type collector struct {
	svc *service

	tracked *prometheus.Desc
	up      *prometheus.Desc
	memory  *prometheus.Desc
	runtime *prometheus.Desc
}

func newCollector(svc *service) *collector {
	return &collector{
		svc:     svc,
		tracked: prometheus.NewDesc("procctl_tracked_processes", "Number of registry entries.", nil, nil),
		up:      prometheus.NewDesc("procctl_process_up", "1 when the tracked process is running.", processLabels, nil),
		memory:  prometheus.NewDesc("procctl_process_memory_megabytes", "Resident set size in MiB.", processLabels, nil),
		runtime: prometheus.NewDesc("procctl_process_runtime_seconds", "Seconds since the process was created.", processLabels, nil),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.tracked
	ch <- c.up
	ch <- c.memory
	ch <- c.runtime
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	entries := c.svc.reg.List(registry.ListFilter{})
	ch <- prometheus.MustNewConstMetric(c.tracked, prometheus.GaugeValue, float64(len(entries)))
	for _, p := range entries {
		labels := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			p.Name,
			strconv.FormatInt(int64(p.PID()), 10),
		}
		h := c.svc.ctrl.Handle(p.Identity)
		up := 0.0
		if h.IsRunning(ctx) {
			up = 1
		}
		ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, up, labels...)
		ch <- prometheus.MustNewConstMetric(c.runtime, prometheus.GaugeValue, h.Runtime().Seconds(), labels...)
		if mb, ok := h.MemoryMB(ctx); ok {
			ch <- prometheus.MustNewConstMetric(c.memory, prometheus.GaugeValue, mb, labels...)
		}
	}
}

// startMetrics serves /metrics on addr. The listener is bound before
// returning so address errors surface at daemon start.
func startMetrics(addr string, svc *service) (*http.Server, error) {
	promReg := prometheus.NewRegistry()
	if err := promReg.Register(newCollector(svc)); err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			svc.logger.Error("metrics server stopped", "err", err)
		}
	}()
	svc.logger.Info("serving metrics", "addr", ln.Addr().String())
	return srv, nil
}
