// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/pickhelper/models"
)

// Mode selects how GetBySeq matches a sequence number
type Mode int

const (
	ModeExact      Mode = iota // seq = n
	ModeSkipFilled             // first open pick with seq >= n
	ModeNext                   // first pick with seq > n
	ModePrev                   // last pick with seq < n
)

func (m Mode) String() string {
	switch m {
	case ModeSkipFilled:
		return "skip_filled"
	case ModeNext:
		return "next"
	case ModePrev:
		return "prev"
	}
	return "exact"
}

const pickColumns = "seq, prev_picks, next_pick"

// Directional modes are index range scans that stop at the first row.
var seqQueries = map[Mode]string{
	ModeExact: `
		SELECT ` + pickColumns + `
		FROM picks
		WHERE seq = $1`,
	ModeSkipFilled: `
		SELECT ` + pickColumns + `
		FROM picks
		WHERE seq >= $1 AND next_pick IS NULL
		ORDER BY seq ASC
		LIMIT 1`,
	ModeNext: `
		SELECT ` + pickColumns + `
		FROM picks
		WHERE seq > $1
		ORDER BY seq ASC
		LIMIT 1`,
	ModePrev: `
		SELECT ` + pickColumns + `
		FROM picks
		WHERE seq < $1
		ORDER BY seq DESC
		LIMIT 1`,
}

// PickStore persists picks. Each method is a single SQL statement, so
// uniqueness and seq assignment are enforced by the database.
type PickStore struct {
	db *sql.DB
}

func NewPickStore(db *sql.DB) *PickStore {
	return &PickStore{db: db}
}

// GetBySeq returns the pick matching seq under the given mode.
// Unknown modes fall back to an exact match.
func (s *PickStore) GetBySeq(ctx context.Context, seq int64, mode Mode) (models.Pick, error) {
	query, ok := seqQueries[mode]
	if !ok {
		query = seqQueries[ModeExact]
	}

	pick, err := scanPick(s.db.QueryRowContext(ctx, query, seq))
	if err != nil {
		return models.Pick{}, wrap(err, "query pick by seq")
	}
	return pick, nil
}

// GetByPattern returns the pick whose prev_picks equals the pattern
func (s *PickStore) GetByPattern(ctx context.Context, prevPicks string) (models.Pick, error) {
	pick, err := scanPick(s.db.QueryRowContext(ctx, `
		SELECT `+pickColumns+`
		FROM picks
		WHERE prev_picks = $1
	`, prevPicks))
	if err != nil {
		return models.Pick{}, wrap(err, "query pick by pattern")
	}
	return pick, nil
}

// Set records nextPick as the successor of prevPicks, creating the pattern
// if needed. An existing pattern keeps its seq.
func (s *PickStore) Set(ctx context.Context, prevPicks, nextPick string) (models.Pick, error) {
	pick, err := scanPick(s.db.QueryRowContext(ctx, `
		INSERT INTO picks (prev_picks, next_pick)
		VALUES ($1, $2)
		ON CONFLICT (prev_picks)
		DO UPDATE SET next_pick = EXCLUDED.next_pick
		RETURNING `+pickColumns+`
	`, prevPicks, nextPick))
	if err != nil {
		return models.Pick{}, fmt.Errorf("upsert pick: %w", err)
	}
	return pick, nil
}

// Add creates a new pattern. It returns ErrConflict without touching the
// stored row if the pattern already exists.
func (s *PickStore) Add(ctx context.Context, prevPicks string, nextPick *string) (models.Pick, error) {
	pick, err := scanPick(s.db.QueryRowContext(ctx, `
		INSERT INTO picks (prev_picks, next_pick)
		VALUES ($1, $2)
		ON CONFLICT (prev_picks) DO NOTHING
		RETURNING `+pickColumns+`
	`, prevPicks, nullString(nextPick)))
	if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
		return models.Pick{}, ErrConflict
	}
	if err != nil {
		return models.Pick{}, fmt.Errorf("insert pick: %w", err)
	}
	return pick, nil
}

// ClearNext reopens a pattern by setting its next_pick to NULL
func (s *PickStore) ClearNext(ctx context.Context, prevPicks string) (models.Pick, error) {
	pick, err := scanPick(s.db.QueryRowContext(ctx, `
		UPDATE picks
		SET next_pick = NULL
		WHERE prev_picks = $1
		RETURNING `+pickColumns+`
	`, prevPicks))
	if err != nil {
		return models.Pick{}, wrap(err, "clear next pick")
	}
	return pick, nil
}

// DeletePattern removes a pattern and returns the seq it held
func (s *PickStore) DeletePattern(ctx context.Context, prevPicks string) (int64, error) {
	var seq int64
	err := s.db.QueryRowContext(ctx, `
		DELETE FROM picks
		WHERE prev_picks = $1
		RETURNING seq
	`, prevPicks).Scan(&seq)
	if err != nil {
		return 0, wrap(err, "delete pattern")
	}
	return seq, nil
}

func scanPick(row *sql.Row) (models.Pick, error) {
	var pick models.Pick
	var next sql.NullString
	if err := row.Scan(&pick.Seq, &pick.PrevPicks, &next); err != nil {
		return models.Pick{}, err
	}
	if next.Valid {
		pick.NextPick = &next.String
	}
	return pick, nil
}

// wrap maps sql.ErrNoRows to ErrNotFound and annotates everything else
func wrap(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
