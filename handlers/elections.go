// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/registry"
	"github.com/danielhkuo/ballotbox/tally"
)

type ElectionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	reg *registry.Registry
}

func NewElectionHandler(db *sql.DB, cfg cliparse.Config, reg *registry.Registry) *ElectionHandler {
	return &ElectionHandler{db: db, cfg: cfg, reg: reg}
}

// CreateElection handles POST /elections
func (h *ElectionHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	var req models.CreateElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if len(req.Voters) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voters must not be empty")
		return
	}
	if len(req.Candidates) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidates must not be empty")
		return
	}

	// Build the frozen roster and ballot; constructor errors (duplicates,
	// blanks) are caller mistakes, not server faults.
	voterIDs := make([]election.VoterID, len(req.Voters))
	for i, v := range req.Voters {
		voterIDs[i] = election.VoterID(v)
	}
	roster, err := election.NewRoster(voterIDs)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	candidates := make([]election.Candidate, len(req.Candidates))
	for i, name := range req.Candidates {
		candidates[i] = election.Candidate{
			ID:   election.CandidateID(fmt.Sprintf("C%02d", i+1)),
			Name: name,
		}
	}
	ballot, err := election.NewBallot(candidates)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	el, err := election.New(req.Name, roster, ballot)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	electionID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate election ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create election")
		return
	}
	adminKey := auth.GenerateAdminKey(electionID, h.cfg.AdminKeySalt)
	shareSlug := auth.GenerateShareSlug(electionID, h.cfg.ShareSlugSalt)

	createdAt := time.Now()
	if err := h.persistElection(electionID, req.Name, shareSlug, roster, ballot, createdAt); err != nil {
		slog.Error("failed to persist election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create election")
		return
	}

	h.reg.Add(&registry.Entry{
		ID:        electionID,
		Name:      req.Name,
		ShareSlug: shareSlug,
		CreatedAt: createdAt,
		Election:  el,
	})

	slog.Info("election created",
		"election_id", electionID,
		"voters", roster.Size(),
		"candidates", ballot.Len(),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateElectionResponse{
		ElectionID: electionID,
		AdminKey:   adminKey,
		ShareSlug:  shareSlug,
	})
}

func (h *ElectionHandler) persistElection(id, name, shareSlug string, roster *election.Roster, ballot *election.Ballot, createdAt time.Time) error {
	tx, err := h.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO election (id, name, status, share_slug, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, name, models.StatusOpen, shareSlug, createdAt)
	if err != nil {
		return fmt.Errorf("insert election: %w", err)
	}

	for _, voterID := range roster.IDs() {
		_, err = tx.Exec(`
			INSERT INTO voter (election_id, voter_id, status)
			VALUES ($1, $2, 'Registered')
		`, id, string(voterID))
		if err != nil {
			return fmt.Errorf("insert voter: %w", err)
		}
	}

	for pos, c := range ballot.Candidates() {
		_, err = tx.Exec(`
			INSERT INTO candidate (election_id, id, name, position)
			VALUES ($1, $2, $3, $4)
		`, id, string(c.ID), c.Name, pos)
		if err != nil {
			return fmt.Errorf("insert candidate: %w", err)
		}
	}

	return tx.Commit()
}

// GetElectionAdmin handles GET /elections/:id/admin
func (h *ElectionHandler) GetElectionAdmin(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")
	if electionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election_id is required")
		return
	}

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(electionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	entry, ok := h.reg.ByID(electionID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}

	snap := entry.Election.Snapshot()

	rejections := make(map[string]int)
	for reason, n := range entry.Rejections() {
		rejections[string(reason)] = n
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdminElectionView{
		ElectionInfo:    electionInfo(entry, snap),
		VotesCast:       snap.VotesCast,
		InvalidAttempts: entry.InvalidAttempts(),
		Rejections:      rejections,
	})
}

// CloseElection handles POST /elections/:id/close
func (h *ElectionHandler) CloseElection(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")
	if electionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election_id is required")
		return
	}

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(electionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	entry, ok := h.reg.ByID(electionID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}

	if err := entry.Election.Close(); err != nil {
		// Only ErrAlreadyClosed escapes Close
		middleware.ErrorResponse(w, http.StatusConflict, "Election is already closed")
		return
	}
	closedAt := time.Now()
	entry.MarkClosed(closedAt)

	// Final tally, sealed into a snapshot row
	rep := tally.Compute(entry.Election.Snapshot())
	snapshot := models.ResultSnapshot{
		ID:          uuid.NewString(),
		ElectionID:  electionID,
		ComputedAt:  closedAt,
		Results:     rep.Results,
		VotesCast:   rep.VotesCast,
		Turnout:     rep.Turnout,
		Abstentions: rep.Abstentions,
		Winner:      rep.Winner,
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		slog.Error("failed to marshal snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to close election")
		return
	}

	_, err = h.db.Exec(`
		UPDATE election SET status = $1, closed_at = $2 WHERE id = $3
	`, models.StatusClosed, closedAt, electionID)
	if err != nil {
		slog.Error("failed to update election status", "error", err, "election_id", electionID)
	}

	_, err = h.db.Exec(`
		INSERT INTO result_snapshot (id, election_id, computed_at, payload)
		VALUES ($1, $2, $3, $4)
	`, snapshot.ID, electionID, closedAt, string(payload))
	if err != nil {
		slog.Error("failed to insert result snapshot", "error", err, "election_id", electionID)
	}

	slog.Info("election closed",
		"election_id", electionID,
		"votes_cast", rep.VotesCast,
		"invalid_attempts", entry.InvalidAttempts(),
	)

	middleware.JSONResponse(w, http.StatusOK, models.CloseElectionResponse{
		ClosedAt: closedAt,
		Snapshot: snapshot,
	})
}

func electionInfo(entry *registry.Entry, snap election.Snapshot) models.ElectionInfo {
	status := models.StatusOpen
	if snap.Closed {
		status = models.StatusClosed
	}

	candidates := make([]models.CandidateInfo, len(snap.Candidates))
	for i, c := range snap.Candidates {
		candidates[i] = models.CandidateInfo{ID: string(c.ID), Name: c.Name}
	}

	return models.ElectionInfo{
		ID:            entry.ID,
		Name:          entry.Name,
		Status:        status,
		ShareSlug:     entry.ShareSlug,
		Candidates:    candidates,
		TotalEligible: snap.TotalEligible,
		CreatedAt:     entry.CreatedAt,
		ClosedAt:      entry.ClosedAt(),
	}
}
