package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	entriesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ramadan_engine",
		Name:      "entries_created_total",
		Help:      "Daily entries created by this process.",
	})
	entriesLocked = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ramadan_engine",
		Name:      "entries_locked_total",
		Help:      "Daily entries transitioned from open to locked by this process.",
	})
	timezoneFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ramadan_engine",
		Name:      "timezone_fallbacks_total",
		Help:      "Timezone resolutions that fell back to the default zone.",
	})
	periodsGenerated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ramadan_engine",
		Name:      "periods_generated_total",
		Help:      "Challenge periods materialized, by scope.",
	}, []string{"scope"})
	progressRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ramadan_engine",
		Name:      "progress_recorded_total",
		Help:      "Challenge progress rows written.",
	})
)

func init() {
	prometheus.MustRegister(entriesCreated, entriesLocked, timezoneFallbacks, periodsGenerated, progressRecorded)
}

func RecordEntryCreated() {
	entriesCreated.Inc()
}

func RecordEntryLocked() {
	entriesLocked.Inc()
}

func RecordTimezoneFallback() {
	timezoneFallbacks.Inc()
}

// RecordPeriodsGenerated adds n newly created periods for scope. Zero is ignored.
func RecordPeriodsGenerated(scope string, n int) {
	if n <= 0 {
		return
	}
	periodsGenerated.WithLabelValues(scope).Add(float64(n))
}

func RecordProgress() {
	progressRecorded.Inc()
}
