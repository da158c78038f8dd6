// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/pickhelper/middleware"
	"github.com/danielhkuo/pickhelper/models"
)

// GetSample handles GET /api/v1/sample
func GetSample(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Hello World"})
}
