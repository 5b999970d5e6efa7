package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterEntriesSaved          *prometheus.CounterVec
	CounterEntriesDeleted        prometheus.Counter
	CounterVerdicts              *prometheus.CounterVec
	CounterAnalyzerErrors        *prometheus.CounterVec
	CounterMessagePicks          *prometheus.CounterVec
	CounterRotationResets        *prometheus.CounterVec
	CounterStorageWriteFailures  *prometheus.CounterVec
	CounterCorruptRecordsDropped prometheus.Counter

	// gauges
	GaugeHistoryEntries prometheus.Gauge

	// histograms
	HistStoreSaveDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("gymlog", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("gymlog", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterEntriesSaved := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "entries_saved",
		Help:      "The total number of saved entries",
	}, []string{"kind"})
	counterEntriesDeleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "entries_deleted",
		Help:      "The total number of deleted entries",
	})
	counterVerdicts := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "verdicts",
		Help:      "The total number of progress verdicts",
	}, []string{"analyzer", "outcome"})
	counterAnalyzerErrors := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "analyzer_errors",
		Help:      "The total number of analyzer failures downgraded to no feedback",
	}, []string{"analyzer"})
	counterMessagePicks := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "message_picks",
		Help:      "The total number of picked feedback messages",
	}, []string{"pool"})
	counterRotationResets := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rotation_resets",
		Help:      "Number of times a message pool was exhausted and its rotation started over",
	}, []string{"pool"})
	counterStorageWriteFailures := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "storage_write_failures",
		Help:      "The total number of failed storage writes",
	}, []string{"store"})
	counterCorruptRecordsDropped := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "corrupt_records_dropped",
		Help:      "Number of persisted history records dropped as corrupt on load",
	})

	gaugeHistoryEntries := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "history_entries",
		Help:      "Current number of entries in the history",
	})

	histStoreSaveDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "store_save_duration_seconds",
		Help:      "Histogram of history snapshot write times in seconds",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	}, []string{"store"})

	return &Manager{
		CounterEntriesSaved:          counterEntriesSaved,
		CounterEntriesDeleted:        counterEntriesDeleted,
		CounterVerdicts:              counterVerdicts,
		CounterAnalyzerErrors:        counterAnalyzerErrors,
		CounterMessagePicks:          counterMessagePicks,
		CounterRotationResets:        counterRotationResets,
		CounterStorageWriteFailures:  counterStorageWriteFailures,
		CounterCorruptRecordsDropped: counterCorruptRecordsDropped,
		GaugeHistoryEntries:          gaugeHistoryEntries,
		HistStoreSaveDuration:        histStoreSaveDuration,
	}
}
