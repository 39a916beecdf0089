// Package tableotel provides an OpenTelemetry-backed
// tablestats.Observer, recording table operation counts (insert/find/
// erase, by outcome) without touching the core table's fast path.
package tableotel

import (
	"context"
	"errors"

	"github.com/hardened-steel/lockfree-hashtable/tablestats"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var _ tablestats.Observer = (*Collector)(nil)

// Collector implements tablestats.Observer using OpenTelemetry
// counters. It is safe for concurrent use; the underlying OTEL
// instruments are thread-safe.
type Collector struct {
	inserts metric.Int64Counter
	finds   metric.Int64Counter
	erases  metric.Int64Counter
}

// Options configures a Collector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	MeterName string
}

// Option is a functional option for configuring a Collector.
type Option func(*Options)

// WithMeterName sets a custom meter name, useful for distinguishing
// metrics from multiple table instances.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewCollector creates a Collector backed by provider. It creates
// three Int64Counter instruments (table_insert_total,
// table_find_total, table_erase_total), each recorded with an "ok"
// boolean attribute distinguishing success from failure/absence.
func NewCollector(provider metric.MeterProvider, opts ...Option) (*Collector, error) {
	if provider == nil {
		return nil, errors.New("tableotel: meter provider cannot be nil")
	}

	options := Options{MeterName: "github.com/hardened-steel/lockfree-hashtable"}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)

	var c Collector
	var err error

	c.inserts, err = meter.Int64Counter(
		"table_insert_total",
		metric.WithDescription("Total number of Insert calls, by outcome"),
	)
	if err != nil {
		return nil, err
	}

	c.finds, err = meter.Int64Counter(
		"table_find_total",
		metric.WithDescription("Total number of Find calls, by outcome"),
	)
	if err != nil {
		return nil, err
	}

	c.erases, err = meter.Int64Counter(
		"table_erase_total",
		metric.WithDescription("Total number of Erase calls, by outcome"),
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// ObserveInsert implements tablestats.Observer.
func (c *Collector) ObserveInsert(ok bool) {
	c.inserts.Add(context.Background(), 1, metric.WithAttributes(attribute.Bool("ok", ok)))
}

// ObserveFind implements tablestats.Observer.
func (c *Collector) ObserveFind(ok bool) {
	c.finds.Add(context.Background(), 1, metric.WithAttributes(attribute.Bool("ok", ok)))
}

// ObserveErase implements tablestats.Observer.
func (c *Collector) ObserveErase(ok bool) {
	c.erases.Add(context.Background(), 1, metric.WithAttributes(attribute.Bool("ok", ok)))
}
