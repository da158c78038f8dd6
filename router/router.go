// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/pickhelper/handlers"
	"github.com/danielhkuo/pickhelper/middleware"
)

func NewRouter(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pickHandler := handlers.NewPickHandler(db)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Lookups
	mux.HandleFunc("GET /api/v1/picks/seq/{seq}", middleware.WithLogging(pickHandler.GetBySeq))
	mux.HandleFunc("GET /api/v1/picks/pattern/{prev_picks}", middleware.WithLogging(pickHandler.GetByPattern))

	// Mutations
	mux.HandleFunc("POST /api/v1/picks/set", middleware.WithLogging(pickHandler.Set))
	mux.HandleFunc("POST /api/v1/picks/add", middleware.WithLogging(pickHandler.Add))
	mux.HandleFunc("DELETE /api/v1/picks/pattern/{prev_picks}/next", middleware.WithLogging(pickHandler.ClearNext))
	mux.HandleFunc("DELETE /api/v1/picks/pattern/{prev_picks}", middleware.WithLogging(pickHandler.DeletePattern))

	// Sample
	mux.HandleFunc("GET /api/v1/sample", middleware.WithLogging(handlers.GetSample))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pickhelper API v1"))
	})

	return mux
}
