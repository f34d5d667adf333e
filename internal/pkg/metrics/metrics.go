package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Rejection reasons recorded by the fulfillment engine.
const (
	ReasonInsufficientStock   = "insufficient_stock"
	ReasonInsufficientBalance = "insufficient_balance"
	ReasonCouponNotUsable     = "coupon_not_usable"
	ReasonBadRequest          = "bad_request"
	ReasonNotFound            = "not_found"
	ReasonConflict            = "conflict"
	ReasonInternal            = "internal"
)

// Outbox publish results.
const (
	OutboxPublished = "published"
	OutboxRetried   = "retried"
	OutboxFailed    = "failed"
)

// Metrics groups the Prometheus collectors of the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	ordersPlaced      prometheus.Counter
	orderRejections   *prometheus.CounterVec
	orderLines        prometheus.Counter
	couponRedemptions prometheus.Counter
	snapshotsAppended prometheus.Counter
	ratingsSubmitted  prometheus.Counter
	txRetries         *prometheus.CounterVec

	outboxPublish *prometheus.CounterVec
	outboxBacklog prometheus.Gauge

	httpDuration *prometheus.HistogramVec
}

func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		ordersPlaced: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ootd_orders_placed_total",
			Help: "Total number of orders committed by the fulfillment engine",
		}),
		orderRejections: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "ootd_order_rejections_total",
			Help: "Total number of rejected order placements by reason",
		}, []string{"reason"}),
		orderLines: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ootd_order_lines_total",
			Help: "Total number of order lines bound to listing snapshots",
		}),
		couponRedemptions: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ootd_coupon_redemptions_total",
			Help: "Total number of coupon units consumed",
		}),
		snapshotsAppended: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ootd_listing_snapshots_appended_total",
			Help: "Total number of listing snapshots appended",
		}),
		ratingsSubmitted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ootd_ratings_submitted_total",
			Help: "Total number of ratings accepted",
		}),
		txRetries: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "ootd_tx_retries_total",
			Help: "Transactions retried after a serialization failure or deadlock, by SQLSTATE",
		}, []string{"sqlstate"}),
		outboxPublish: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "ootd_outbox_publish_total",
			Help: "Outbox publish attempts by result",
		}, []string{"result"}),
		outboxBacklog: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "ootd_outbox_backlog",
			Help: "Number of outbox jobs claimed in the last poll",
		}),
		httpDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "ootd_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) RecordOrderPlaced(lines int, couponUsed bool) {
	if m == nil {
		return
	}
	m.ordersPlaced.Inc()
	m.orderLines.Add(float64(lines))
	if couponUsed {
		m.couponRedemptions.Inc()
	}
}

func (m *Metrics) RecordOrderRejected(reason string) {
	if m == nil {
		return
	}
	m.orderRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) RecordCouponRedeemed() {
	if m == nil {
		return
	}
	m.couponRedemptions.Inc()
}

func (m *Metrics) RecordSnapshotAppended() {
	if m == nil {
		return
	}
	m.snapshotsAppended.Inc()
}

func (m *Metrics) RecordRatingSubmitted() {
	if m == nil {
		return
	}
	m.ratingsSubmitted.Inc()
}

func (m *Metrics) RecordTxRetry(sqlstate string) {
	if m == nil {
		return
	}
	m.txRetries.WithLabelValues(sqlstate).Inc()
}

func (m *Metrics) RecordOutboxPublish(result string) {
	if m == nil {
		return
	}
	m.outboxPublish.WithLabelValues(result).Inc()
}

func (m *Metrics) SetOutboxBacklog(n int) {
	if m == nil {
		return
	}
	m.outboxBacklog.Set(float64(n))
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}
