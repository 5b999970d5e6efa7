package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymlog/internal/gymlog/entries"
	"github.com/2beens/gymlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const Schema = `
CREATE TABLE IF NOT EXISTS gymlog_entry
(
    seq         INTEGER          NOT NULL,
    id          BIGINT PRIMARY KEY,
    exercise    VARCHAR          NOT NULL,
    date        VARCHAR(10)      NOT NULL,
    weight      DOUBLE PRECISION NOT NULL DEFAULT 0,
    sets        INTEGER          NOT NULL DEFAULT 0,
    reps        INTEGER          NOT NULL DEFAULT 0,
    rpe         DOUBLE PRECISION NOT NULL DEFAULT 0,
    body_weight DOUBLE PRECISION,
    comments    TEXT             NOT NULL DEFAULT '',
    edited      BOOLEAN          NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS ix_gymlog_entry_seq ON gymlog_entry USING btree (seq);
`

var entryColumns = []string{
	"seq", "id", "exercise", "date", "weight", "sets", "reps", "rpe", "body_weight", "comments", "edited",
}

// PostgresStore keeps the history in the gymlog_entry table.
// The seq column preserves save order, which is not the date order.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

func (s *PostgresStore) Migrate(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.migrate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("create gymlog schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (_ []entries.Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.db.Query(
		ctx,
		`SELECT id, exercise, date, weight, sets, reps, rpe, body_weight, comments, edited
			FROM gymlog_entry
			ORDER BY seq;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]entries.Entry, 0)
	for rows.Next() {
		var e entries.Entry
		if err := rows.Scan(
			&e.ID, &e.Exercise, &e.Date, &e.Weight, &e.Sets, &e.Reps,
			&e.RPE, &e.BodyWeight, &e.Comments, &e.Edited,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if e.Exercise == "" || e.Date == "" {
			log.Warnf("skipping corrupted history row [id: %d]", e.ID)
			continue
		}
		history = append(history, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("entries", len(history)))
	return history, nil
}

// Save replaces the table content with the given history in one transaction.
func (s *PostgresStore) Save(ctx context.Context, history []entries.Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.postgres.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("entries", len(history)))

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Errorf("rollback history save: %s", rbErr)
		}
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM gymlog_entry;`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	rows := make([][]any, 0, len(history))
	for i, e := range history {
		rows = append(rows, []any{
			i, e.ID, e.Exercise, e.Date, e.Weight, e.Sets, e.Reps, e.RPE, e.BodyWeight, e.Comments, e.Edited,
		})
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"gymlog_entry"}, entryColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy history: %w", err)
	}
	if int(copied) != len(history) {
		return fmt.Errorf("copy history: wrote %d of %d rows", copied, len(history))
	}

	return tx.Commit(ctx)
}
