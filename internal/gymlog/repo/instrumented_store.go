package repo

import (
	"context"
	"time"

	"github.com/2beens/gymlog/internal/gymlog/entries"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
)

// InstrumentedStore records history store timings and drops into prometheus metrics.
type InstrumentedStore struct {
	store          entries.Store
	name           string
	metricsManager *metrics.Manager
}

var _ entries.Store = (*InstrumentedStore)(nil)

func NewInstrumentedStore(store entries.Store, name string, metricsManager *metrics.Manager) *InstrumentedStore {
	return &InstrumentedStore{
		store:          store,
		name:           name,
		metricsManager: metricsManager,
	}
}

func (s *InstrumentedStore) Load(ctx context.Context) ([]entries.Entry, error) {
	history, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if dc, ok := s.store.(interface{ DroppedOnLoad() int }); ok {
		if dropped := dc.DroppedOnLoad(); dropped > 0 {
			s.metricsManager.CounterCorruptRecordsDropped.Add(float64(dropped))
		}
	}

	return history, nil
}

func (s *InstrumentedStore) Save(ctx context.Context, history []entries.Entry) error {
	start := time.Now()
	err := s.store.Save(ctx, history)
	s.metricsManager.HistStoreSaveDuration.WithLabelValues(s.name).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metricsManager.CounterStorageWriteFailures.WithLabelValues(s.name).Inc()
	}
	return err
}
