package api

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/limbo/ramadan/internal/service"
	"github.com/limbo/ramadan/pkg/entity"
	"github.com/limbo/ramadan/pkg/hijri"
	"github.com/limbo/ramadan/pkg/httputil"
)

type CreateChallengeRequest struct {
	Title    string                `json:"title"`
	Scope    entity.ChallengeScope `json:"scope"`
	FieldKey string                `json:"field_key"`
	Timezone string                `json:"tz"`
}

type EnsurePeriodsRequest struct {
	// Hijri date YYYY-MM-DD, defaults to the end of the current Hijri month
	Through string `json:"through"`
}

type ProgressRequest struct {
	Value     float64 `json:"value"`
	Notes     string  `json:"notes"`
	Completed bool    `json:"completed"`
}

type ChallengesResponse struct {
	UserID     string              `json:"uid"`
	Challenges []*entity.Challenge `json:"challenges"`
}

type PeriodsResponse struct {
	ChallengeID string                    `json:"challenge_id"`
	Periods     []*entity.ChallengePeriod `json:"periods"`
}

// CreateChallenge godoc
// @Summary Create a challenge and its first period
// @Tags challenges
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateChallengeRequest true "Challenge"
// @Success 201 {object} entity.Challenge
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /challenges [post]
func (s *Server) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateChallengeRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("create challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	challenge, err := s.challengesService.CreateChallenge(ctx, uid, &service.CreateChallengeRequest{
		Title:        req.Title,
		Scope:        req.Scope,
		FieldKey:     req.FieldKey,
		TimezoneHint: req.Timezone,
	})
	if err != nil {
		writeServiceError(w, logger, "create challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, challenge)
	logger.Info("challenge created", slog.String("challenge_id", challenge.ID.String()))
}

// ListChallenges godoc
// @Summary List caller's challenges
// @Tags challenges
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ChallengesResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /challenges [get]
func (s *Server) ListChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list challenges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	challenges, err := s.challengesService.ListChallenges(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "list challenges", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ChallengesResponse{
		UserID:     uid.String(),
		Challenges: challenges,
	})
}

// DeactivateChallenge godoc
// @Summary Stop generating periods for a challenge
// @Tags challenges
// @Security BearerAuth
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 204
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /challenges/{id}/deactivate [post]
func (s *Server) DeactivateChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, challengeID, ok := s.uidAndPathID(w, r, "deactivate challenge")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.challengesService.DeactivateChallenge(ctx, uid, challengeID); err != nil {
		writeServiceError(w, logger, "deactivate challenge", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("challenge deactivated", slog.String("challenge_id", challengeID.String()))
}

// EnsurePeriods godoc
// @Summary Materialize periods up to a Hijri date
// @Tags challenges
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Challenge ID"
// @Param request body EnsurePeriodsRequest false "Horizon"
// @Success 200 {object} PeriodsResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 422 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /challenges/{id}/periods [post]
func (s *Server) EnsurePeriods(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, challengeID, ok := s.uidAndPathID(w, r, "ensure periods")
	if !ok {
		return
	}
	var req EnsurePeriodsRequest
	defer r.Body.Close()
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("ensure periods error: reading body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	// Empty body means the default horizon
	if len(bytes.TrimSpace(raw)) > 0 {
		if err = sonic.Unmarshal(raw, &req); err != nil {
			logger.Error("ensure periods error: invalid request body")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
			return
		}
	}
	var through *hijri.Date
	if req.Through != "" {
		d, err := hijri.Parse(req.Through)
		if err != nil {
			writeServiceError(w, logger, "ensure periods", err)
			return
		}
		through = &d
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	periods, err := s.challengesService.EnsurePeriodsFor(ctx, uid, challengeID, through)
	if err != nil {
		writeServiceError(w, logger, "ensure periods", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, PeriodsResponse{
		ChallengeID: challengeID.String(),
		Periods:     periods,
	})
}

// ListPeriods godoc
// @Summary List materialized periods
// @Tags challenges
// @Security BearerAuth
// @Produce json
// @Param id path string true "Challenge ID"
// @Success 200 {object} PeriodsResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /challenges/{id}/periods [get]
func (s *Server) ListPeriods(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, challengeID, ok := s.uidAndPathID(w, r, "list periods")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	periods, err := s.challengesService.ListPeriods(ctx, uid, challengeID)
	if err != nil {
		writeServiceError(w, logger, "list periods", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, PeriodsResponse{
		ChallengeID: challengeID.String(),
		Periods:     periods,
	})
}

// RecordProgress godoc
// @Summary Record progress for one day of a period
// @Tags progress
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Period ID"
// @Param date path string true "Gregorian date YYYY-MM-DD"
// @Param request body ProgressRequest true "Progress"
// @Success 200 {object} entity.PeriodStatus
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 422 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /periods/{id}/progress/{date} [put]
func (s *Server) RecordProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, periodID, ok := s.uidAndPathID(w, r, "record progress")
	if !ok {
		return
	}
	date, err := time.Parse(time.DateOnly, chi.URLParam(r, "date"))
	if err != nil {
		logger.Error("record progress error: invalid date in path")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	var req ProgressRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("record progress error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	status, err := s.progressService.RecordProgressFor(ctx, uid, periodID, date, &service.ProgressRequest{
		Value:     req.Value,
		Notes:     req.Notes,
		Completed: req.Completed,
	})
	if err != nil {
		writeServiceError(w, logger, "record progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, status)
}

// GetPeriodStatus godoc
// @Summary Completion and streak of a period
// @Tags progress
// @Security BearerAuth
// @Produce json
// @Param id path string true "Period ID"
// @Success 200 {object} entity.PeriodStatus
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /periods/{id}/status [get]
func (s *Server) GetPeriodStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, periodID, ok := s.uidAndPathID(w, r, "get period status")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	status, err := s.progressService.PeriodStatusFor(ctx, uid, periodID)
	if err != nil {
		writeServiceError(w, logger, "get period status", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, status)
}
