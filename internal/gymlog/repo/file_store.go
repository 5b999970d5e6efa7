package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/2beens/gymlog/internal/gymlog/entries"
	"github.com/2beens/gymlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrCorruptHistory = errors.New("corrupt history record")

// FileStore keeps the history as a JSON array in a single file.
type FileStore struct {
	mu      sync.Mutex
	path    string
	dropped int
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
	}
}

// Load reads the history file. A missing file is an empty history.
// Corrupt content is never fatal: an unparsable document or one that is not
// an array is reset to an empty history, and records missing required fields
// are dropped. In both cases the cleaned history is written back.
func (s *FileStore) Load(ctx context.Context) (_ []entries.Entry, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "repo.file.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("path", s.path))

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []entries.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil || records == nil {
		log.Errorf("history file %s is not a JSON array, resetting: %v", s.path, err)
		if err := s.write([]entries.Entry{}); err != nil {
			log.Errorf("reset corrupted history file: %s", err)
		}
		return []entries.Entry{}, nil
	}

	history := make([]entries.Entry, 0, len(records))
	for i, raw := range records {
		entry, err := decodeEntry(raw)
		if err != nil {
			log.Warnf("dropping history record #%d: %s", i, err)
			continue
		}
		history = append(history, entry)
	}

	dropped := len(records) - len(history)
	s.dropped += dropped
	if dropped > 0 {
		log.Warnf("filtered out %d corrupted history entries", dropped)
		span.SetAttributes(attribute.Int("dropped", dropped))
		if err := s.write(history); err != nil {
			log.Errorf("rewrite filtered history file: %s", err)
		}
	}

	log.Debugf("loaded %d history entries from %s", len(history), s.path)
	return history, nil
}

// DroppedOnLoad is the number of corrupt records discarded by all loads so far.
func (s *FileStore) DroppedOnLoad() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

func (s *FileStore) Save(ctx context.Context, history []entries.Entry) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "repo.file.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("entries", len(history)))

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(history)
}

// write replaces the file atomically so a failed write never leaves half a history behind.
func (s *FileStore) write(history []entries.Entry) error {
	if history == nil {
		history = []entries.Entry{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp history file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp history file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace history file: %w", err)
	}
	return nil
}

// decodeEntry checks the structural requirements of a stored record:
// every record needs an exercise and a date, lifts also need numeric weight, sets and reps.
func decodeEntry(raw json.RawMessage) (entries.Entry, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return entries.Entry{}, fmt.Errorf("%w: not an object", ErrCorruptHistory)
	}

	exercise, _ := fields["exercise"].(string)
	date, _ := fields["date"].(string)
	if exercise == "" || date == "" {
		return entries.Entry{}, fmt.Errorf("%w: missing exercise or date", ErrCorruptHistory)
	}

	if exercise != entries.OtherActivity {
		for _, key := range []string{"weight", "sets", "reps"} {
			if _, isNum := fields[key].(float64); !isNum {
				return entries.Entry{}, fmt.Errorf("%w: %s is not a number", ErrCorruptHistory, key)
			}
		}
	}

	var entry entries.Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return entries.Entry{}, fmt.Errorf("%w: %w", ErrCorruptHistory, err)
	}

	return entry, nil
}
