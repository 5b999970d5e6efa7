package entries

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/gymlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrStorageWrite  = errors.New("failed to persist workout history")
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=entries_test

// Store persists the whole history as one snapshot.
type Store interface {
	Load(ctx context.Context) ([]Entry, error)
	Save(ctx context.Context, history []Entry) error
}

// Collection is the in-memory history, kept in save order and mirrored to a Store.
// A mutation is only kept in memory if the store write succeeded.
type Collection struct {
	mu      sync.RWMutex
	store   Store
	entries []Entry

	// Now is used to generate entry IDs, replaceable in tests
	Now func() time.Time
}

func NewCollection(ctx context.Context, store Store) (*Collection, error) {
	loaded, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	log.Debugf("history collection loaded with %d entries", len(loaded))

	return &Collection{
		store:   store,
		entries: loaded,
		Now:     time.Now,
	}, nil
}

// All returns a copy of the history in save order.
func (c *Collection) All() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Clone()
	}
	return out
}

func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Collection) Get(id int64) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.indexOf(id)
	if i < 0 {
		return Entry{}, false
	}
	return c.entries[i].Clone(), true
}

// Append assigns the entry an ID and durably appends it.
func (c *Collection) Append(ctx context.Context, entry Entry) (_ Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "entries.collection.append")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	c.mu.Lock()
	defer c.mu.Unlock()

	entry = entry.Clone()
	entry.ID = c.nextID()
	span.SetAttributes(attribute.Int64("entry.id", entry.ID))
	span.SetAttributes(attribute.String("entry.exercise", entry.Exercise))

	c.entries = append(c.entries, entry)
	if err := c.persist(ctx); err != nil {
		c.entries = c.entries[:len(c.entries)-1]
		return Entry{}, err
	}

	return entry.Clone(), nil
}

// UpdateActivity replaces comments, date and body weight of an activity entry
// and marks it as edited. Lift entries cannot be edited.
func (c *Collection) UpdateActivity(ctx context.Context, id int64, patch ActivityPatch) (_ Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "entries.collection.update-activity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("entry.id", id))

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return Entry{}, ErrEntryNotFound
	}
	if !c.entries[i].IsActivity() {
		return Entry{}, ErrNotEditable
	}

	previous := c.entries[i]
	updated := previous
	updated.Comments = patch.Comments
	updated.Date = patch.Date
	updated.BodyWeight = nil
	if patch.BodyWeight != nil {
		updated.BodyWeight = Float(*patch.BodyWeight)
	}
	updated.Edited = true

	c.entries[i] = updated
	if err := c.persist(ctx); err != nil {
		c.entries[i] = previous
		return Entry{}, err
	}

	return updated.Clone(), nil
}

func (c *Collection) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "entries.collection.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("entry.id", id))

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return ErrEntryNotFound
	}

	previous := c.entries
	remaining := make([]Entry, 0, len(c.entries)-1)
	remaining = append(remaining, c.entries[:i]...)
	remaining = append(remaining, c.entries[i+1:]...)

	c.entries = remaining
	if err := c.persist(ctx); err != nil {
		c.entries = previous
		return err
	}

	return nil
}

func (c *Collection) DeleteAll(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "entries.collection.delete-all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	c.mu.Lock()
	defer c.mu.Unlock()

	previous := c.entries
	c.entries = []Entry{}
	if err := c.persist(ctx); err != nil {
		c.entries = previous
		return err
	}

	log.Warnf("all %d history entries deleted", len(previous))
	return nil
}

func (c *Collection) persist(ctx context.Context) error {
	if err := c.store.Save(ctx, c.entries); err != nil {
		log.Errorf("save history [%d entries]: %s", len(c.entries), err)
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	return nil
}

// nextID uses the creation time in unix millis, moved past the highest
// known ID if it collides with an existing entry.
func (c *Collection) nextID() int64 {
	id := c.Now().UnixMilli()
	var maxID int64
	collides := false
	for _, e := range c.entries {
		if e.ID == id {
			collides = true
		}
		maxID = max(maxID, e.ID)
	}
	if collides {
		return maxID + 1
	}
	return id
}

func (c *Collection) indexOf(id int64) int {
	for i, e := range c.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
