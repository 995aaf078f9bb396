package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// runRepo implements RunRepo on the runs table.
type runRepo struct {
	db *sql.DB
}

func (r *runRepo) Append(ctx context.Context, run *Run) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.EndedAt.IsZero() {
		run.EndedAt = time.Now()
	}

	var startedAt any
	if !run.StartedAt.IsZero() {
		startedAt = run.StartedAt.UTC()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(runsTable).
		Columns("run_id", "player", "points", "best", "level_index", "case_index", "lives", "started_at", "ended_at").
		Values(run.RunID, run.Player, run.Points, run.Best, run.Level, run.Case, run.Lives, startedAt, run.EndedAt.UTC()).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	run.ID = int(id)
	return nil
}

func (r *runRepo) Recent(ctx context.Context, limit int) ([]Run, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("id", "run_id", "player", "points", "best", "level_index", "case_index", "lives", "started_at", "ended_at").
		From(entsql.Table(runsTable)).
		OrderBy(entsql.Desc("ended_at"), entsql.Desc("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run       Run
			startedAt sql.NullTime
		)
		if err := rows.Scan(&run.ID, &run.RunID, &run.Player, &run.Points, &run.Best,
			&run.Level, &run.Case, &run.Lives, &startedAt, &run.EndedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if startedAt.Valid {
			run.StartedAt = startedAt.Time
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	return runs, nil
}
