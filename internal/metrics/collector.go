// Package metrics provides internal metrics collection.
// This package is internal and should not be imported by external projects.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// =============================================================================
// 📊 指标收集器
// =============================================================================

// Collector 指标收集器
type Collector struct {
	registry *prometheus.Registry

	// 分词指标
	tokensTotal prometheus.Counter
	tokenBytes  prometheus.Histogram
	restBytes   prometheus.Gauge

	// 命令指标
	runsTotal *prometheus.CounterVec

	logger *zap.Logger
}

// NewCollector 创建指标收集器，指标注册在私有 Registry 上
func NewCollector(namespace string, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	c := &Collector{
		registry: registry,
		logger:   logger.With(zap.String("component", "metrics")),
	}

	c.tokensTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_total",
			Help:      "Total number of tokens extracted",
		},
	)

	c.tokenBytes = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "token_bytes",
			Help:      "Token length in bytes",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	c.restBytes = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rest_bytes",
			Help:      "Length in bytes of the unconsumed remainder after the last run",
		},
	)

	c.runsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of command runs",
		},
		[]string{"command", "status"},
	)

	return c
}

// =============================================================================
// 📝 记录方法
// =============================================================================

// RecordToken 记录一个被取出的 token
func (c *Collector) RecordToken(tok string) {
	c.tokensTotal.Inc()
	c.tokenBytes.Observe(float64(len(tok)))
}

// RecordRest 记录剩余未消费文本的长度
func (c *Collector) RecordRest(rest string) {
	c.restBytes.Set(float64(len(rest)))
}

// RecordRun 记录一次命令执行
func (c *Collector) RecordRun(command string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.runsTotal.WithLabelValues(command, status).Inc()
}

// Registry 返回承载全部指标的 Registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile 以 node_exporter textfile collector 格式写出指标
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	c.logger.Debug("metrics textfile written", zap.String("path", path))
	return nil
}
