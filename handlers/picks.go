// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/pickhelper/middleware"
	"github.com/danielhkuo/pickhelper/models"
	"github.com/danielhkuo/pickhelper/store"
)

type PickHandler struct {
	picks *store.PickStore
}

func NewPickHandler(db *sql.DB) *PickHandler {
	return &PickHandler{picks: store.NewPickStore(db)}
}

// GetBySeq handles GET /api/v1/picks/seq/{seq}
// Query: skip_filled=true finds the next open pick, direction=next|prev the nearest pick
func (h *PickHandler) GetBySeq(w http.ResponseWriter, r *http.Request) {
	seq, err := strconv.ParseInt(r.PathValue("seq"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "seq must be an integer")
		return
	}

	mode, err := parseSeqMode(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	pick, err := h.picks.GetBySeq(r.Context(), seq, mode)
	if err != nil {
		h.storeError(w, err, "failed to query pick by seq", "seq", seq, "mode", mode.String())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, pick)
}

// parseSeqMode maps the skip_filled and direction query flags to a lookup mode.
// Setting both is rejected; an unknown direction means an exact lookup.
func parseSeqMode(r *http.Request) (store.Mode, error) {
	q := r.URL.Query()

	skipFilled := false
	if raw := q.Get("skip_filled"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return store.ModeExact, errors.New("skip_filled must be a boolean")
		}
		skipFilled = v
	}

	direction := q.Get("direction")
	if skipFilled && direction != "" {
		return store.ModeExact, errors.New("skip_filled and direction cannot be combined")
	}

	switch {
	case skipFilled:
		return store.ModeSkipFilled, nil
	case direction == "next":
		return store.ModeNext, nil
	case direction == "prev":
		return store.ModePrev, nil
	}
	return store.ModeExact, nil
}

// GetByPattern handles GET /api/v1/picks/pattern/{prev_picks}
func (h *PickHandler) GetByPattern(w http.ResponseWriter, r *http.Request) {
	prevPicks := r.PathValue("prev_picks")
	if prevPicks == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "prev_picks is required")
		return
	}

	pick, err := h.picks.GetByPattern(r.Context(), prevPicks)
	if err != nil {
		h.storeError(w, err, "failed to query pick by pattern", "prev_picks", prevPicks)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, pick)
}

// Set handles POST /api/v1/picks/set
// Updates next_pick if the pattern exists, creates it otherwise
func (h *PickHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req models.PickSetRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PrevPicks == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "prev_picks is required")
		return
	}
	if req.NextPick == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "next_pick is required")
		return
	}

	pick, err := h.picks.Set(r.Context(), req.PrevPicks, *req.NextPick)
	if err != nil {
		h.storeError(w, err, "failed to set pick", "prev_picks", req.PrevPicks)
		return
	}

	slog.Info("pick set", "seq", pick.Seq, "prev_picks", pick.PrevPicks)

	middleware.JSONResponse(w, http.StatusOK, pick)
}

// Add handles POST /api/v1/picks/add
// Creates a new pattern; fails with 409 if it already exists
func (h *PickHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.PickAddRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.PrevPicks == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "prev_picks is required")
		return
	}

	pick, err := h.picks.Add(r.Context(), req.PrevPicks, req.NextPick)
	if err != nil {
		h.storeError(w, err, "failed to add pattern", "prev_picks", req.PrevPicks)
		return
	}

	slog.Info("pattern added", "seq", pick.Seq, "prev_picks", pick.PrevPicks)

	middleware.JSONResponse(w, http.StatusCreated, pick)
}

// ClearNext handles DELETE /api/v1/picks/pattern/{prev_picks}/next
func (h *PickHandler) ClearNext(w http.ResponseWriter, r *http.Request) {
	prevPicks := r.PathValue("prev_picks")
	if prevPicks == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "prev_picks is required")
		return
	}

	pick, err := h.picks.ClearNext(r.Context(), prevPicks)
	if err != nil {
		h.storeError(w, err, "failed to clear next pick", "prev_picks", prevPicks)
		return
	}

	slog.Info("next pick cleared", "seq", pick.Seq, "prev_picks", pick.PrevPicks)

	middleware.JSONResponse(w, http.StatusOK, pick)
}

// DeletePattern handles DELETE /api/v1/picks/pattern/{prev_picks}
func (h *PickHandler) DeletePattern(w http.ResponseWriter, r *http.Request) {
	prevPicks := r.PathValue("prev_picks")
	if prevPicks == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "prev_picks is required")
		return
	}

	seq, err := h.picks.DeletePattern(r.Context(), prevPicks)
	if err != nil {
		h.storeError(w, err, "failed to delete pattern", "prev_picks", prevPicks)
		return
	}

	slog.Info("pattern deleted", "seq", seq, "prev_picks", prevPicks)

	middleware.JSONResponse(w, http.StatusOK, models.DeletePatternResponse{
		Message: "Pattern deleted",
		Seq:     seq,
	})
}

// storeError translates store errors into responses.
// Unexpected errors are logged with msg and attrs.
func (h *PickHandler) storeError(w http.ResponseWriter, err error, msg string, attrs ...any) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Pick not found")
	case errors.Is(err, store.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, "Pattern already exists")
	default:
		slog.Error(msg, append(attrs, "error", err)...)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
