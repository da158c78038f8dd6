// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists pick records and serves lookups over them.

A pick associates a pattern of prior picks (prev_picks) with the pick that
followed it (next_pick). The database assigns each pick a seq that grows
with insertion order and is never reused.

	picks := store.NewPickStore(conn)
	pick, err := picks.GetBySeq(ctx, 42, store.ModeNext)

# Lookups

GetBySeq supports four modes:

  - ModeExact: seq equal to the argument
  - ModeSkipFilled: first open pick (next_pick NULL) at or after the argument
  - ModeNext: first pick strictly after the argument
  - ModePrev: last pick strictly before the argument

GetByPattern matches prev_picks exactly.

# Mutations

  - Set: upsert. Overwrites next_pick of an existing pattern, seq unchanged.
  - Add: strict insert. Returns ErrConflict if the pattern exists.
  - ClearNext: sets next_pick to NULL.
  - DeletePattern: removes the pick and returns its seq.

Each operation is one SQL statement. Set and Add rely on the UNIQUE
constraint on prev_picks through ON CONFLICT, so two concurrent Adds of
the same pattern cannot both succeed.

# Errors

ErrNotFound and ErrConflict are returned as-is and can be matched with
errors.Is. Any other error comes from the database and is wrapped.
*/
package store
