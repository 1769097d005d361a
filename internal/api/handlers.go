package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/internal/service"
	"github.com/limbo/ramadan/pkg/entity"
	"github.com/limbo/ramadan/pkg/httputil"
)

type SaveFieldRequest struct {
	Type  entity.FieldType  `json:"type"`
	Value entity.FieldValue `json:"value"`
}

type UpdateTimezoneRequest struct {
	Timezone string                `json:"timezone"`
	Source   entity.TimezoneSource `json:"source"`
}

type LockResponse struct {
	EntryID   uuid.UUID          `json:"entry_id"`
	Status    entity.EntryStatus `json:"status"`
	LockAtUTC time.Time          `json:"lock_at_utc"`
	NowUTC    time.Time          `json:"now_utc"`
	// Seconds until lock, zero once locked
	SecondsLeft int64 `json:"seconds_left"`
}

// writeServiceError maps engine error kinds to HTTP statuses. Foreign resources
// are reported as missing.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrEntryLocked):
		logger.Info(op+" rejected: entry locked")
		httputil.WriteKindedError(w, http.StatusConflict, "entry_locked", "entry is locked", nil)
	case errors.Is(err, errorvalues.ErrDateOutOfPeriod):
		logger.Info(op+" rejected: date out of period")
		httputil.WriteKindedError(w, http.StatusUnprocessableEntity, "date_out_of_period", "date is outside the period", nil)
	case errors.Is(err, errorvalues.ErrCalendarRange):
		logger.Info(op+" rejected: calendar range", slog.String("error", err.Error()))
		httputil.WriteKindedError(w, http.StatusUnprocessableEntity, "calendar_range", "date outside supported calendar range", err)
	case errors.Is(err, errorvalues.ErrInvalidTimezone):
		logger.Info(op+" rejected: invalid timezone")
		httputil.WriteKindedError(w, http.StatusUnprocessableEntity, "invalid_timezone", "unknown IANA timezone", nil)
	case errors.Is(err, errorvalues.ErrInvalidRequest):
		logger.Info(op+" rejected: invalid request", slog.String("error", err.Error()))
		httputil.WriteKindedError(w, http.StatusBadRequest, "invalid_request", "invalid request", err)
	case errors.Is(err, errorvalues.ErrChallengeExists):
		logger.Info(op + " rejected: challenge exists")
		httputil.WriteKindedError(w, http.StatusConflict, "challenge_exists", "challenge with such title already exists", nil)
	case errors.Is(err, errorvalues.ErrEntryNotFound),
		errors.Is(err, errorvalues.ErrChallengeNotFound),
		errors.Is(err, errorvalues.ErrPeriodNotFound),
		errors.Is(err, errorvalues.ErrUserNotFound),
		errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Info(op+" rejected: not found", slog.String("error", err.Error()))
		httputil.WriteKindedError(w, http.StatusNotFound, "not_found", "resource doesn't exist", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

// GetToday godoc
// @Summary Today's entry in the caller's timezone
// @Tags entries
// @Security BearerAuth
// @Produce json
// @Param tz query string false "IANA timezone hint"
// @Success 200 {object} service.EntryView
// @Failure 401 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /entries/today [get]
func (s *Server) GetToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get today error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	view, err := s.entriesService.GetToday(ctx, uid, tzHint(r))
	if err != nil {
		writeServiceError(w, logger, "get today", err)
		return
	}
	if view.Warning != "" {
		logger.Warn("entry created with fallback timezone", slog.String("warning", view.Warning))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

// GetEntryByDate godoc
// @Summary Entry for a Gregorian date, created on first access
// @Tags entries
// @Security BearerAuth
// @Produce json
// @Param date path string true "Gregorian date YYYY-MM-DD"
// @Param tz query string false "IANA timezone hint"
// @Success 200 {object} service.EntryView
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 422 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /entries/date/{date} [get]
func (s *Server) GetEntryByDate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get entry by date error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := time.Parse(time.DateOnly, chi.URLParam(r, "date"))
	if err != nil {
		logger.Error("get entry by date error: invalid date in path")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	view, err := s.entriesService.GetOrCreateEntry(ctx, uid, date, tzHint(r))
	if err != nil {
		writeServiceError(w, logger, "get entry by date", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

// GetEntry godoc
// @Summary Entry with its fields
// @Tags entries
// @Security BearerAuth
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} service.EntryView
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /entries/{id} [get]
func (s *Server) GetEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, entryID, ok := s.uidAndPathID(w, r, "get entry")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	view, err := s.entriesService.GetEntry(ctx, uid, entryID)
	if err != nil {
		writeServiceError(w, logger, "get entry", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

// GetEntryLock godoc
// @Summary Lock state and countdown of an entry
// @Tags entries
// @Security BearerAuth
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} LockResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /entries/{id}/lock [get]
func (s *Server) GetEntryLock(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, entryID, ok := s.uidAndPathID(w, r, "get entry lock")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	view, err := s.entriesService.GetEntry(ctx, uid, entryID)
	if err != nil {
		writeServiceError(w, logger, "get entry lock", err)
		return
	}
	now := s.entriesService.Now()
	resp := LockResponse{
		EntryID:   view.Entry.ID,
		Status:    service.EvaluateLock(view.Entry, now),
		LockAtUTC: view.Entry.LockAtUTC,
		NowUTC:    now,
	}
	if resp.Status == entity.EntryStatusOpen {
		resp.SecondsLeft = int64(view.Entry.LockAtUTC.Sub(now) / time.Second)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

// SaveField godoc
// @Summary Upsert one field of an open entry
// @Tags entries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param key path string true "Field key"
// @Param request body SaveFieldRequest true "Field value"
// @Success 200 {object} entity.DailyEntryField
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /entries/{id}/fields/{key} [put]
func (s *Server) SaveField(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, entryID, ok := s.uidAndPathID(w, r, "save field")
	if !ok {
		return
	}
	var req SaveFieldRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("save field error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	field, err := s.entriesService.SaveField(ctx, uid, entryID, &service.SaveFieldRequest{
		Key:   chi.URLParam(r, "key"),
		Type:  req.Type,
		Value: req.Value,
	})
	if err != nil {
		writeServiceError(w, logger, "save field", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, field)
	logger.Info("field saved", slog.String("key", field.Key))
}

// ResetDay godoc
// @Summary Clear all fields of an open entry
// @Tags entries
// @Security BearerAuth
// @Produce json
// @Param id path string true "Entry ID"
// @Success 204
// @Failure 404 {object} httputil.ErrorResponse
// @Failure 409 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /entries/{id}/reset [post]
func (s *Server) ResetDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, entryID, ok := s.uidAndPathID(w, r, "reset day")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.entriesService.ResetDay(ctx, uid, entryID); err != nil {
		writeServiceError(w, logger, "reset day", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("entry reset")
}

// UpdateTimezone godoc
// @Summary Change timezone settings
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdateTimezoneRequest true "Timezone settings"
// @Success 200 {object} entity.User
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 422 {object} httputil.ErrorResponse
// @Failure 500 {object} httputil.ErrorResponse
// @Router /settings/timezone [put]
func (s *Server) UpdateTimezone(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update timezone error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateTimezoneRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("update timezone error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.Source == "" {
		req.Source = entity.TimezoneSourceManual
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.UpdateTimezone(ctx, uid, &service.UpdateTimezoneRequest{
		Zone:   req.Timezone,
		Source: req.Source,
	})
	if err != nil {
		writeServiceError(w, logger, "update timezone", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

func (s *Server) uidAndPathID(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, uuid.UUID, bool) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id in path value", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return uid, id, true
}
