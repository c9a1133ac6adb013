// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/registry"
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	reg *registry.Registry
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config, reg *registry.Registry) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg, reg: reg}
}

// CastVote handles POST /elections/:slug/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.VoterID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_id is required")
		return
	}
	if req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id is required")
		return
	}

	entry, ok := h.reg.BySlug(shareSlug)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}

	voter := election.VoterID(req.VoterID)
	candidate := election.CandidateID(req.CandidateID)

	// The election does the whole check-then-write atomically; this
	// handler only translates the outcome.
	if err := entry.Election.CastVote(voter, candidate); err != nil {
		rej, isRejection := election.AsRejection(err)
		if !isRejection {
			slog.Error("unexpected cast vote failure", "error", err, "election_id", entry.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
			return
		}

		entry.RecordRejection(rej.Reason)
		slog.Info("vote rejected",
			"election_id", entry.ID,
			"voter_id", req.VoterID,
			"reason", string(rej.Reason),
		)

		middleware.JSONResponse(w, rejectionStatus(rej.Reason), models.CastVoteResponse{
			Status:  models.VoteRejected,
			Reason:  string(rej.Reason),
			Message: rej.Error(),
		})
		return
	}

	// Write-behind session log. The in-memory election is authoritative;
	// a failed insert is logged, not surfaced, since the vote is already
	// counted and rejections here would double-report the voter.
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt)
	_, err := h.db.Exec(`
		INSERT INTO vote (election_id, voter_id, candidate_id, cast_at, ip_hash)
		VALUES ($1, $2, $3, $4, $5)
	`, entry.ID, req.VoterID, req.CandidateID, time.Now(), ipHash)
	if err != nil {
		slog.Error("failed to persist vote", "error", err, "election_id", entry.ID)
	}

	slog.Info("vote accepted", "election_id", entry.ID, "voter_id", req.VoterID)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		Status:  models.VoteAccepted,
		Message: "Vote recorded",
	})
}

// rejectionStatus maps a rejection reason to its HTTP status. Every
// rejection is reported to the caller with its reason tag - none are
// silently dropped.
func rejectionStatus(reason election.RejectionReason) int {
	switch reason {
	case election.ReasonUnregisteredVoter:
		return http.StatusForbidden
	case election.ReasonDuplicateVote:
		return http.StatusConflict
	case election.ReasonInvalidCandidate:
		return http.StatusBadRequest
	case election.ReasonElectionClosed:
		return http.StatusConflict
	}
	return http.StatusBadRequest
}
