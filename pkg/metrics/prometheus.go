// Package metrics provides Prometheus metrics for the huntersfinds rating core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every collector for the process.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Submission flow
	submissionsTotal      prometheus.Counter
	submissionsBlocked    *prometheus.CounterVec
	compositeScore        prometheus.Histogram
	rankPosition          prometheus.Histogram
	priceValueDerivations *prometheus.CounterVec

	// Modal presentation
	modalOpens            *prometheus.CounterVec
	modalCloses           *prometheus.CounterVec
	closeTimersSuperseded *prometheus.CounterVec
	modalStackDepth       prometheus.Gauge
	modalStackOverflows   prometheus.Counter

	// Saved items
	savedToggles *prometheus.CounterVec
	savedItems   prometheus.Gauge

	// Catalog
	catalogItems *prometheus.GaugeVec

	// Event loop
	queueDepth         prometheus.Gauge
	queueEnqueued      prometheus.Counter
	queueDequeued      prometheus.Counter
	queueEnqueueErrors *prometheus.CounterVec
	dispatchLatency    prometheus.Histogram

	errorsByComponent *prometheus.CounterVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // process registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "huntersfinds",
		subsystem:        "core",
		histogramBuckets: prometheus.DefBuckets,
		constLabels:      prometheus.Labels{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) counter(name, help string) prometheus.Counter {
	return promauto.With(m.registry).NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	})
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	})
}

func (m *Manager) gaugeVec(name, help string, labels ...string) *prometheus.GaugeVec {
	return promauto.With(m.registry).NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) histogram(name, help string, buckets []float64) prometheus.Histogram {
	return promauto.With(m.registry).NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
		Buckets: buckets,
	})
}

func (m *Manager) initializeMetrics() {
	m.submissionsTotal = m.counter("submissions_total", "Ratings submitted and ranked")
	m.submissionsBlocked = m.counterVec("submissions_blocked_total", "Submit attempts gated by missing fields", "reason")
	m.compositeScore = m.histogram("composite_score", "Composite score of submitted ratings",
		[]float64{10, 20, 30, 40, 50, 60, 72, 81, 89, 96, 100})
	m.rankPosition = m.histogram("rank_position", "Leaderboard position of submitted ratings",
		[]float64{1, 2, 3, 5, 10, 25, 50, 100, 250})
	m.priceValueDerivations = m.counterVec("price_value_derivations_total", "Price-value auto-derivation attempts", "outcome")

	m.modalOpens = m.counterVec("modal_opens_total", "Modal opens", "modal")
	m.modalCloses = m.counterVec("modal_closes_total", "Modal closes completed after the exit delay", "modal")
	m.closeTimersSuperseded = m.counterVec("close_timers_superseded_total", "Pending close timers cancelled or replaced", "modal")
	m.modalStackDepth = m.gauge("modal_stack_depth", "Current nested navigation depth")
	m.modalStackOverflows = m.counter("modal_stack_overflows_total", "Pushes rejected by the stack limit")

	m.savedToggles = m.counterVec("saved_toggles_total", "Saved item toggles", "kind", "action")
	m.savedItems = m.gauge("saved_items", "Items currently saved")

	m.catalogItems = m.gaugeVec("catalog_items", "Rated items in the catalog", "kind")

	m.queueDepth = m.gauge("queue_depth", "Events waiting for the dispatcher")
	m.queueEnqueued = m.counter("queue_enqueued_total", "Events enqueued")
	m.queueDequeued = m.counter("queue_dequeued_total", "Events handed to the dispatcher")
	m.queueEnqueueErrors = m.counterVec("queue_enqueue_errors_total", "Rejected enqueues", "reason")
	m.dispatchLatency = m.histogram("dispatch_latency_milliseconds", "Time to apply one event", m.histogramBuckets)

	m.errorsByComponent = m.counterVec("errors_total", "Errors by component and type", "component", "type")
}

// Submission flow.

// RecordSubmission records one ranked submission.
func RecordSubmission(score float64, rank int) {
	globalManager.submissionsTotal.Inc()
	globalManager.compositeScore.Observe(score)
	globalManager.rankPosition.Observe(float64(rank))
}

// RecordSubmissionBlocked records a gated submit attempt.
func RecordSubmissionBlocked(reason string) {
	globalManager.submissionsBlocked.WithLabelValues(reason).Inc()
}

// RecordPriceValueDerivation records whether price-value was derived or skipped.
func RecordPriceValueDerivation(derived bool) {
	outcome := "skipped"
	if derived {
		outcome = "derived"
	}
	globalManager.priceValueDerivations.WithLabelValues(outcome).Inc()
}

// Modal presentation.

// RecordModalOpen increments the open counter for a modal.
func RecordModalOpen(modal string) {
	globalManager.modalOpens.WithLabelValues(modal).Inc()
}

// RecordModalClose increments the completed close counter for a modal.
func RecordModalClose(modal string) {
	globalManager.modalCloses.WithLabelValues(modal).Inc()
}

// RecordCloseTimerSuperseded counts a pending close timer that was cancelled or replaced.
func RecordCloseTimerSuperseded(modal string) {
	globalManager.closeTimersSuperseded.WithLabelValues(modal).Inc()
}

// UpdateModalStackDepth sets the nested navigation depth.
func UpdateModalStackDepth(depth int) {
	globalManager.modalStackDepth.Set(float64(depth))
}

// RecordModalStackOverflow counts a push rejected by the stack limit.
func RecordModalStackOverflow() {
	globalManager.modalStackOverflows.Inc()
}

// Saved items.

// RecordSavedToggle counts a toggle; saved reports the resulting membership.
func RecordSavedToggle(kind string, saved bool) {
	action := "removed"
	if saved {
		action = "added"
	}
	globalManager.savedToggles.WithLabelValues(kind, action).Inc()
}

// UpdateSavedItems sets the saved item count.
func UpdateSavedItems(count int) {
	globalManager.savedItems.Set(float64(count))
}

// Catalog.

// UpdateCatalogItems sets the rated item count for a kind.
func UpdateCatalogItems(kind string, count int) {
	globalManager.catalogItems.WithLabelValues(kind).Set(float64(count))
}

// Event loop.

// UpdateQueueDepth sets the number of queued events.
func UpdateQueueDepth(depth int) {
	globalManager.queueDepth.Set(float64(depth))
}

// RecordQueueEnqueue increments the enqueue counter.
func RecordQueueEnqueue() {
	globalManager.queueEnqueued.Inc()
}

// RecordQueueDequeue increments the dequeue counter.
func RecordQueueDequeue() {
	globalManager.queueDequeued.Inc()
}

// RecordQueueEnqueueError counts a rejected enqueue.
func RecordQueueEnqueueError(reason string) {
	globalManager.queueEnqueueErrors.WithLabelValues(reason).Inc()
}

// RecordDispatchLatency records how long one event took to apply.
func RecordDispatchLatency(latencyMs float64) {
	globalManager.dispatchLatency.Observe(latencyMs)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
