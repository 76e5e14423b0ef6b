// Package metrics records per-run counters for killbysubdir and writes them
// in the Prometheus text exposition format.
//
// The tool exits after one scan, so nothing is served over HTTP. Instead the
// counters are written to a file that node_exporter's textfile collector
// picks up.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Skip reasons used as the "reason" label of the skipped counter.
const (
	ReasonUnresolvable   = "unresolvable"
	ReasonLinkTooLong    = "link_too_long"
	ReasonUnusableTarget = "unusable_target"
	ReasonSelf           = "self"
)

// Recorder holds the counters for a single run in a private registry.
type Recorder struct {
	registry *prometheus.Registry

	scanned      prometheus.Counter
	skipped      *prometheus.CounterVec
	matched      prometheus.Counter
	killed       prometheus.Counter
	killFailures prometheus.Counter
	duration     prometheus.Gauge
	lastRun      prometheus.Gauge
}

// NewRecorder creates a Recorder with all series registered at zero.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	r := &Recorder{
		registry: reg,
		scanned: factory.NewCounter(prometheus.CounterOpts{
			Name: "killbysubdir_processes_scanned_total",
			Help: "Process entries examined during the scan",
		}),
		skipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "killbysubdir_processes_skipped_total",
			Help: "Process entries skipped because their working directory could not be resolved",
		}, []string{"reason"}),
		matched: factory.NewCounter(prometheus.CounterOpts{
			Name: "killbysubdir_processes_matched_total",
			Help: "Processes whose working directory lies inside the target",
		}),
		killed: factory.NewCounter(prometheus.CounterOpts{
			Name: "killbysubdir_processes_killed_total",
			Help: "Processes sent SIGKILL successfully",
		}),
		killFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "killbysubdir_kill_failures_total",
			Help: "Signal deliveries that returned an error",
		}),
		duration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "killbysubdir_scan_duration_seconds",
			Help: "Wall time of the last scan in seconds",
		}),
		lastRun: factory.NewGauge(prometheus.GaugeOpts{
			Name: "killbysubdir_last_run_timestamp_seconds",
			Help: "Unix time the last scan finished",
		}),
	}

	for _, reason := range []string{ReasonUnresolvable, ReasonLinkTooLong, ReasonUnusableTarget, ReasonSelf} {
		r.skipped.WithLabelValues(reason)
	}

	return r
}

// Scanned records one enumerated process.
func (r *Recorder) Scanned() { r.scanned.Inc() }

// Skipped records one skipped process.
func (r *Recorder) Skipped(reason string) { r.skipped.WithLabelValues(reason).Inc() }

// Matched records one process inside the target.
func (r *Recorder) Matched() { r.matched.Inc() }

// Killed records the outcome of one signal delivery.
func (r *Recorder) Killed(err error) {
	if err != nil {
		r.killFailures.Inc()
		return
	}
	r.killed.Inc()
}

// Finished records the scan duration and completion time.
func (r *Recorder) Finished(elapsed time.Duration, at time.Time) {
	r.duration.Set(elapsed.Seconds())
	r.lastRun.Set(float64(at.Unix()))
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile atomically writes all series to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
