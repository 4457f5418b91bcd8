package eventqueue

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "eventqueue"

// Collector exports queue counters to Prometheus. Values are read from each
// queue's Describe at scrape time, so the submit path pays nothing for metrics.
type Collector struct {
	mu     sync.RWMutex
	queues map[*Queue]struct{}

	errors   *prometheus.Desc
	capacity *prometheus.Desc
	used     *prometheus.Desc
	head     *prometheus.Desc
	tail     *prometheus.Desc
	started  *prometheus.Desc
	disabled *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates an empty collector. Register it with a
// prometheus.Registerer and add queues with Add or WithCollector.
func NewCollector() *Collector {
	labels := []string{"queue"}
	return &Collector{
		queues: make(map[*Queue]struct{}),
		errors: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "", "enqueue_errors_total"),
			"Total enqueue attempts rejected for lack of space.", labels, nil),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "", "capacity_bytes"),
			"Size of the shared ring in bytes.", labels, nil),
		used: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "", "used_bytes"),
			"Bytes between head and tail, wrap padding included.", labels, nil),
		head: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "ring", "head"),
			"Consumer offset into the ring.", labels, nil),
		tail: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "ring", "tail"),
			"Producer offset into the ring.", labels, nil),
		started: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "state", "started"),
			"1 if the Started bit is set.", labels, nil),
		disabled: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "state", "disabled"),
			"1 if the Disabled bit is set.", labels, nil),
	}
}

// Add starts exporting q.
func (c *Collector) Add(q *Queue) {
	c.mu.Lock()
	c.queues[q] = struct{}{}
	c.mu.Unlock()
}

// Remove stops exporting q.
func (c *Collector) Remove(q *Queue) {
	c.mu.Lock()
	delete(c.queues, q)
	c.mu.Unlock()
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.errors
	ch <- c.capacity
	ch <- c.used
	ch <- c.head
	ch <- c.tail
	ch <- c.started
	ch <- c.disabled
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for q := range c.queues {
		d := q.Describe()
		s := q.State()
		name := q.Name()

		ch <- prometheus.MustNewConstMetric(c.errors, prometheus.CounterValue, float64(d.EnqueueErrorCount), name)
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(d.QueueSize), name)
		ch <- prometheus.MustNewConstMetric(c.used, prometheus.GaugeValue, float64(usedBytes(d)), name)
		ch <- prometheus.MustNewConstMetric(c.head, prometheus.GaugeValue, float64(d.Head), name)
		ch <- prometheus.MustNewConstMetric(c.tail, prometheus.GaugeValue, float64(d.Tail), name)
		ch <- prometheus.MustNewConstMetric(c.started, prometheus.GaugeValue, boolToFloat(s.Started), name)
		ch <- prometheus.MustNewConstMetric(c.disabled, prometheus.GaugeValue, boolToFloat(s.Disabled), name)
	}
}

// usedBytes derives occupancy from a description. A ring whose tail sits
// exactly at the end of the region is handled like any other tail >= head.
func usedBytes(d Description) uint64 {
	if d.Tail >= d.Head {
		return uint64(d.Tail - d.Head)
	}
	return d.QueueSize - uint64(d.Head) + uint64(d.Tail)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
