// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/registry"
	"github.com/danielhkuo/ballotbox/tally"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	reg *registry.Registry
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config, reg *registry.Registry) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg, reg: reg}
}

// GetElection handles GET /elections/:slug
// Returns public election metadata and the ballot, never the counts.
func (h *ResultsHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	entry, ok := h.reg.BySlug(shareSlug)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, electionInfo(entry, entry.Election.Snapshot()))
}

// GetResults handles GET /elections/:slug/results
// Live results while the election is open, final results after close.
// Either way the tally comes from one consistent snapshot.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	entry, ok := h.reg.BySlug(shareSlug)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}

	rep := tally.Compute(entry.Election.Snapshot())

	status := models.StatusOpen
	if rep.Closed {
		status = models.StatusClosed
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Election:      rep.Election,
		Status:        status,
		Results:       rep.Results,
		VotesCast:     rep.VotesCast,
		TotalEligible: rep.TotalEligible,
		Turnout:       rep.Turnout,
		Abstentions:   rep.Abstentions,
		Winner:        rep.Winner,
	})
}
