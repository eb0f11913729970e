package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/elecmate/signup-recovery/internal/campaign"
	"github.com/elecmate/signup-recovery/internal/domain"
	"github.com/elecmate/signup-recovery/internal/pkg/httputil"
)

// recoveryRequest is the single request envelope for all workflow actions.
// Which fields matter depends on the action.
type recoveryRequest struct {
	Action        string   `json:"action"`
	UserID        string   `json:"userId,omitempty"`
	UserIDs       []string `json:"userIds,omitempty"`
	TestEmail     string   `json:"testEmail,omitempty"`
	ManualEmail   string   `json:"manualEmail,omitempty"`
	RecipientName string   `json:"recipientName,omitempty"`
}

type usersResponse struct {
	Users []domain.EligibleUser `json:"users"`
}

type sendResponse struct {
	Success bool   `json:"success"`
	Email   string `json:"email"`
}

type resetResponse struct {
	Reset   int64  `json:"reset"`
	Message string `json:"message"`
}

// handleRecovery dispatches the eight admin actions.
func (s *Server) handleRecovery(w http.ResponseWriter, r *http.Request) {
	var req recoveryRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	switch req.Action {
	case "get_eligible":
		users, err := s.svc.Eligible(r.Context())
		if err != nil {
			s.actionError(w, err)
			return
		}
		httputil.OK(w, usersResponse{Users: users})

	case "get_stats":
		stats, err := s.svc.Stats(r.Context())
		if err != nil {
			s.actionError(w, err)
			return
		}
		httputil.OK(w, stats)

	case "send_single":
		if req.UserID == "" {
			httputil.BadRequest(w, "userId is required")
			return
		}
		email, err := s.svc.SendSingle(r.Context(), req.UserID)
		if err != nil {
			s.actionError(w, err)
			return
		}
		httputil.OK(w, sendResponse{Success: true, Email: email})

	case "send_bulk":
		if len(req.UserIDs) == 0 {
			httputil.BadRequest(w, "userIds is required")
			return
		}
		result, err := s.svc.SendBulk(r.Context(), req.UserIDs)
		if err != nil {
			s.actionError(w, err)
			return
		}
		// Partial failure is still a 200: the per-recipient outcomes
		// live inside the payload.
		httputil.OK(w, result)

	case "send_test":
		if req.TestEmail == "" {
			httputil.BadRequest(w, "testEmail is required")
			return
		}
		email, err := s.svc.SendTest(r.Context(), CallerID(r.Context()), req.TestEmail, req.RecipientName)
		if err != nil {
			s.actionError(w, err)
			return
		}
		httputil.OK(w, sendResponse{Success: true, Email: email})

	case "send_manual":
		if req.ManualEmail == "" {
			httputil.BadRequest(w, "manualEmail is required")
			return
		}
		email, err := s.svc.SendManual(r.Context(), CallerID(r.Context()), req.ManualEmail, req.RecipientName)
		if err != nil {
			s.actionError(w, err)
			return
		}
		httputil.OK(w, sendResponse{Success: true, Email: email})

	case "get_sent_history":
		users, err := s.svc.SentHistory(r.Context())
		if err != nil {
			s.actionError(w, err)
			return
		}
		httputil.OK(w, usersResponse{Users: users})

	case "reset_sent":
		n, err := s.svc.Reset(r.Context())
		if err != nil {
			s.actionError(w, err)
			return
		}
		httputil.OK(w, resetResponse{
			Reset:   n,
			Message: fmt.Sprintf("Reset notification flag for %d users", n),
		})

	default:
		httputil.BadRequest(w, fmt.Sprintf("unknown action: %s", req.Action))
	}
}

// actionError maps workflow errors onto HTTP statuses. The message text is
// part of the contract; the admin UI distinguishes outcomes by it.
func (s *Server) actionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, campaign.ErrNotFound), errors.Is(err, campaign.ErrNoEmail):
		httputil.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, campaign.ErrAlreadySent):
		httputil.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, campaign.ErrSendInProgress):
		httputil.Error(w, http.StatusConflict, err.Error())
	default:
		httputil.Error(w, http.StatusInternalServerError, err.Error())
	}
}
