package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Skirmish_Go/internal/domain"
)

// Postgres stores daily results in the idle_daily_results table
type Postgres struct {
	db  *pgxpool.Pool
	now func() time.Time
}

// NewPostgres creates a postgres backed store
func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db, now: time.Now}
}

// Get returns the payload stored under key
func (p *Postgres) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := p.db.QueryRow(ctx, SQLSelectPayload, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgGetFailed, err)
	}
	return payload, true, nil
}

// Set upserts the payload under key
func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	if _, err := p.db.Exec(ctx, SQLUpsertPayload, key, value, p.now()); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgSetFailed, err)
	}
	return nil
}

// SetIfAbsent inserts the payload unless a row for key already exists, then
// returns whichever payload the table now holds. The first committed write
// wins across every process sharing the database.
func (p *Postgres) SetIfAbsent(ctx context.Context, key string, value []byte) ([]byte, bool, error) {
	tag, err := p.db.Exec(ctx, SQLInsertPayloadIfAbsent, key, value, p.now())
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgSetFailed, err)
	}
	if tag.RowsAffected() == 1 {
		return value, true, nil
	}

	stored, found, err := p.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !found {
		// pruned between the two statements
		return value, false, nil
	}
	return stored, false, nil
}

// PruneBefore deletes rows created before cutoff
func (p *Postgres) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := p.db.Exec(ctx, SQLDeleteBefore, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgPruneFailed, err)
	}
	return tag.RowsAffected(), nil
}
