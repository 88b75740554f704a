// Package metrics instruments the console session with Prometheus collectors.
// Collectors live in a private registry; nothing is exposed over the network.
// The registry is read back at exit to log a session summary.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// Outcome labels.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Recorder owns the collectors for one process.
type Recorder struct {
	registry *prometheus.Registry

	commandsTotal   *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	invalidInput    *prometheus.CounterVec

	eventsPublished *prometheus.CounterVec
	handlerDuration *prometheus.HistogramVec

	studentsRegistered prometheus.Counter
	personsRegistered  prometheus.Counter
	gradesTotal        *prometheus.CounterVec
	rosterSize         *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with all collectors registered under namespace.
func NewRecorder(namespace string) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		commandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "menu_commands_total",
			Help:      "Menu options dispatched, by menu, option and outcome.",
		}, []string{"menu", "option", "outcome"}),

		commandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "menu_command_duration_seconds",
			Help:      "Time spent inside a menu option, operator think time included.",
			Buckets:   []float64{.001, .01, .1, 1, 5, 15, 60},
		}, []string{"menu", "option"}),

		invalidInput: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "menu_invalid_input_total",
			Help:      "Menu choices that were not a number.",
		}, []string{"menu"}),

		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Domain events published on the bus.",
		}, []string{"event_type"}),

		handlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "event_handler_duration_seconds",
			Help:      "Event handler execution time.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"event_type", "outcome"}),

		studentsRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "students_registered_total",
			Help:      "Students added to the roster.",
		}),

		personsRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persons_registered_total",
			Help:      "Persons added to the roster.",
		}),

		gradesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grades_total",
			Help:      "Grades submitted after creation, by result (added or rejected).",
		}, []string{"result"}),

		rosterSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "roster_size",
			Help:      "Records currently held, by roster.",
		}, []string{"roster"}),
	}

	r.registry.MustRegister(
		r.commandsTotal,
		r.commandDuration,
		r.invalidInput,
		r.eventsPublished,
		r.handlerDuration,
		r.studentsRegistered,
		r.personsRegistered,
		r.gradesTotal,
		r.rosterSize,
	)

	return r
}

// Registry returns the private registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ─────────────────────────────────────────────────────────────────────────────
// Console instrumentation
// ─────────────────────────────────────────────────────────────────────────────

// ObserveCommand records one dispatched menu option.
func (r *Recorder) ObserveCommand(menu string, option int, duration time.Duration, err error) {
	opt := strconv.Itoa(option)
	r.commandsTotal.WithLabelValues(menu, opt, outcome(err)).Inc()
	r.commandDuration.WithLabelValues(menu, opt).Observe(duration.Seconds())
}

// ObserveInvalidInput records a menu choice that failed to parse.
func (r *Recorder) ObserveInvalidInput(menu string) {
	r.invalidInput.WithLabelValues(menu).Inc()
}

// SetRosterSize publishes the current size of a roster.
func (r *Recorder) SetRosterSize(roster string, size int) {
	r.rosterSize.WithLabelValues(roster).Set(float64(size))
}

// ─────────────────────────────────────────────────────────────────────────────
// Event bus instrumentation (messaging.Observer)
// ─────────────────────────────────────────────────────────────────────────────

// ObservePublish implements messaging.Observer.
func (r *Recorder) ObservePublish(eventType shared.EventType) {
	r.eventsPublished.WithLabelValues(string(eventType)).Inc()
}

// ObserveHandler implements messaging.Observer.
func (r *Recorder) ObserveHandler(eventType shared.EventType, duration time.Duration, success bool) {
	result := OutcomeOK
	if !success {
		result = OutcomeError
	}
	r.handlerDuration.WithLabelValues(string(eventType), result).Observe(duration.Seconds())
}

// EventHandler returns a bus subscriber that turns domain events into
// business counters.
func (r *Recorder) EventHandler() shared.EventHandler {
	return func(event shared.Event) error {
		switch event.EventType() {
		case shared.EventStudentRegistered:
			r.studentsRegistered.Inc()
			r.rosterSize.WithLabelValues("students").Inc()
		case shared.EventPersonRegistered:
			r.personsRegistered.Inc()
			r.rosterSize.WithLabelValues("persons").Inc()
		case shared.EventGradeAdded:
			r.gradesTotal.WithLabelValues("added").Inc()
		case shared.EventGradeRejected:
			r.gradesTotal.WithLabelValues("rejected").Inc()
		}
		return nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Summary
// ─────────────────────────────────────────────────────────────────────────────

// Snapshot gathers the registry and returns one value per metric family:
// counters and gauges summed over labels, histograms as total sample count.
func (r *Recorder) Snapshot() (map[string]float64, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(families))
	for _, mf := range families {
		var total float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			}
		}
		out[mf.GetName()] = total
	}
	return out, nil
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
