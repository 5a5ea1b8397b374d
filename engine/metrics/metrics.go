// Package metrics exposes prometheus collectors for pipeline requests,
// stage latency and tool calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "agentdesk"

// Tool call outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Pipeline stages.
const (
	StageClassify = "classify"
	StageExecute  = "execute"
)

// Recorder records pipeline activity. A nil *Recorder is valid and records nothing.
type Recorder struct {
	requests  *prometheus.CounterVec
	toolCalls *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total routed requests by template and category",
		}, []string{"template", "category"}),
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_calls_total",
			Help:      "Total tool invocations by tool and outcome",
		}, []string{"tool", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Pipeline stage latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"template", "stage"}),
	}
	for _, c := range []prometheus.Collector{r.requests, r.toolCalls, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) RecordRequest(template, category string) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(template, category).Inc()
}

func (r *Recorder) RecordToolCall(tool string, err error) {
	if r == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	r.toolCalls.WithLabelValues(tool, outcome).Inc()
}

// ObserveStage records the time elapsed since start for a pipeline stage.
func (r *Recorder) ObserveStage(template, stage string, start time.Time) {
	if r == nil {
		return
	}
	r.duration.WithLabelValues(template, stage).Observe(time.Since(start).Seconds())
}
