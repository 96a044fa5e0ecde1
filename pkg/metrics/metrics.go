// Package metrics wraps search.Statistics in Prometheus instruments. It is
// an optional observer a caller attaches to an engine after every Next()
// call; pkg/kernel and pkg/search never import it, keeping the
// single-threaded, no-I/O core dependency-free.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bharathkarthikeyan/gecode/pkg/search"
)

// Collector holds the gauges/counters one search run reports through.
// Unlike a package-level promauto registration, Collector is constructed
// explicitly and registered into a caller-supplied registry, so a process
// driving more than one engine (e.g. a test suite, or a server handling
// concurrent solves) can register one Collector per run without colliding
// on Prometheus's default global registry.
type Collector struct {
	nodes        prometheus.Counter
	failures     prometheus.Counter
	propagations prometheus.Counter
	restarts     prometheus.Counter
	depth        prometheus.Gauge

	prevNodes, prevFailures, prevPropagations, prevRestarts int
}

// NewCollector builds a Collector labelled with run, registering its
// instruments into reg.
func NewCollector(reg prometheus.Registerer, run string) *Collector {
	c := &Collector{
		nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "gecode",
			Subsystem:   "search",
			Name:        "nodes_total",
			Help:        "Number of search tree nodes visited.",
			ConstLabels: prometheus.Labels{"run": run},
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "gecode",
			Subsystem:   "search",
			Name:        "failures_total",
			Help:        "Number of spaces that reached SS_FAILED.",
			ConstLabels: prometheus.Labels{"run": run},
		}),
		propagations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "gecode",
			Subsystem:   "search",
			Name:        "propagations_total",
			Help:        "Number of propagator executions.",
			ConstLabels: prometheus.Labels{"run": run},
		}),
		restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "gecode",
			Subsystem:   "search",
			Name:        "restarts_total",
			Help:        "Number of completed restart generations.",
			ConstLabels: prometheus.Labels{"run": run},
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "gecode",
			Subsystem:   "search",
			Name:        "depth",
			Help:        "Current DFS stack depth.",
			ConstLabels: prometheus.Labels{"run": run},
		}),
	}
	reg.MustRegister(c.nodes, c.failures, c.propagations, c.restarts, c.depth)
	return c
}

// Observe folds a Statistics snapshot into the collector's instruments.
// Statistics is cumulative, so Observe adds only the delta since the last
// call.
func (c *Collector) Observe(s search.Statistics) {
	c.nodes.Add(float64(s.Nodes - c.prevNodes))
	c.failures.Add(float64(s.Failures - c.prevFailures))
	c.propagations.Add(float64(s.Propagations - c.prevPropagations))
	c.restarts.Add(float64(s.Restarts - c.prevRestarts))
	c.depth.Set(float64(s.Depth))

	c.prevNodes = s.Nodes
	c.prevFailures = s.Failures
	c.prevPropagations = s.Propagations
	c.prevRestarts = s.Restarts
}
