package observability

import (
	"fmt"
	"net"
	"strconv"

	"github.com/fulmenhq/gofulmen/telemetry"
	"github.com/fulmenhq/gofulmen/telemetry/exporters"
)

// DefaultMetricsPort is used when the exporter's bound port cannot be read.
const DefaultMetricsPort = 9090

var (
	// TelemetrySystem is the global telemetry system
	TelemetrySystem *telemetry.System

	// PrometheusExporter is the prometheus metrics exporter
	PrometheusExporter *exporters.PrometheusExporter

	// metricsPort stores the port the Prometheus exporter is listening on
	metricsPort int
)

// InitMetrics starts a Prometheus exporter on port (0 picks a free port)
// and routes telemetry to it. Metric names are prefixed with namespace, or
// serviceName when no namespace is given. A previously started exporter is
// stopped first.
func InitMetrics(serviceName string, port int, namespace ...string) error {
	if err := StopMetrics(); err != nil {
		return err
	}

	if port < 0 {
		port = 0
	}
	metricNamespace := serviceName
	if len(namespace) > 0 && namespace[0] != "" {
		metricNamespace = namespace[0]
	}

	exporter := exporters.NewPrometheusExporter(metricNamespace, fmt.Sprintf(":%d", port))
	if err := exporter.Start(); err != nil {
		return err
	}

	sys, err := telemetry.NewSystem(&telemetry.Config{
		Enabled: true,
		Emitter: exporter,
	})
	if err != nil {
		_ = exporter.Stop()
		return err
	}

	PrometheusExporter = exporter
	TelemetrySystem = sys
	metricsPort = boundPort(exporter.GetAddr(), port)
	return nil
}

// StopMetrics shuts the exporter down and disables telemetry. It is safe to
// call when metrics were never started.
func StopMetrics() error {
	exporter := PrometheusExporter
	PrometheusExporter = nil
	TelemetrySystem = nil
	metricsPort = 0
	if exporter == nil {
		return nil
	}
	return exporter.Stop()
}

// GetMetricsPort returns the port the Prometheus exporter is listening on,
// or 0 when metrics are not running.
func GetMetricsPort() int {
	return metricsPort
}

func boundPort(addr string, requested int) int {
	if port, err := resolvePort(addr); err == nil && port != 0 {
		return port
	}
	if requested != 0 {
		return requested
	}
	return DefaultMetricsPort
}

func resolvePort(addr string) (int, error) {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(portStr)
}
