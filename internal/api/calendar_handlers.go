package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/ramadan/pkg/hijri"
	"github.com/limbo/ramadan/pkg/httputil"
)

type ConversionResponse struct {
	Gregorian string     `json:"gregorian"`
	Hijri     hijri.Date `json:"hijri"`
	HijriText string     `json:"hijri_text"`
	Leap      bool       `json:"leap_year"`
}

type RamadanResponse struct {
	Year  int    `json:"year"`
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// ToHijri godoc
// @Summary Convert a Gregorian date to Hijri
// @Tags calendar
// @Produce json
// @Param date query string true "Gregorian date YYYY-MM-DD"
// @Success 200 {object} ConversionResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 422 {object} httputil.ErrorResponse
// @Router /calendar/hijri [get]
func (s *Server) ToHijri(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	t, err := time.Parse(time.DateOnly, r.URL.Query().Get("date"))
	if err != nil {
		logger.Info("to hijri rejected: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	d, err := hijri.ToHijri(t)
	if err != nil {
		writeServiceError(w, logger, "to hijri", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, conversion(t, d))
}

// ToGregorian godoc
// @Summary Convert a Hijri date to Gregorian
// @Tags calendar
// @Produce json
// @Param date query string true "Hijri date YYYY-MM-DD"
// @Success 200 {object} ConversionResponse
// @Failure 422 {object} httputil.ErrorResponse
// @Router /calendar/gregorian [get]
func (s *Server) ToGregorian(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	d, err := hijri.Parse(r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, logger, "to gregorian", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, conversion(d.MustGregorian(), d))
}

// RamadanBounds godoc
// @Summary Gregorian bounds of Ramadan
// @Tags calendar
// @Produce json
// @Param year path int true "Hijri year"
// @Success 200 {object} RamadanResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 422 {object} httputil.ErrorResponse
// @Router /calendar/ramadan/{year} [get]
func (s *Server) RamadanBounds(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		logger.Info("ramadan bounds rejected: invalid year")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year in path value", nil)
		return
	}
	start, end, err := hijri.RamadanBounds(year)
	if err != nil {
		writeServiceError(w, logger, "ramadan bounds", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, RamadanResponse{
		Year:  year,
		Start: start.Format(time.DateOnly),
		End:   end.Format(time.DateOnly),
		Days:  int(end.Sub(start)/(24*time.Hour)) + 1,
	})
}

func conversion(t time.Time, d hijri.Date) ConversionResponse {
	return ConversionResponse{
		Gregorian: t.Format(time.DateOnly),
		Hijri:     d,
		HijriText: d.String(),
		Leap:      hijri.IsLeapYear(d.Year),
	}
}
