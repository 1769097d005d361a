package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/internal/observability"
	"github.com/limbo/ramadan/internal/repository"
	"github.com/limbo/ramadan/pkg/entity"
	"github.com/limbo/ramadan/pkg/hijri"
)

type ProgressService struct {
	challengesRepo repository.ChallengesRepositoryI
	periodsRepo    repository.PeriodsRepositoryI
	progressRepo   repository.ProgressRepositoryI
	periods        PeriodEnsurer
}

func NewProgressService(
	challengesRepo repository.ChallengesRepositoryI,
	periodsRepo repository.PeriodsRepositoryI,
	progressRepo repository.ProgressRepositoryI,
	periods PeriodEnsurer,
) *ProgressService {
	if challengesRepo == nil || periodsRepo == nil || progressRepo == nil || periods == nil {
		log.Fatal("on progress service provided nil dependencies")
	}
	return &ProgressService{
		challengesRepo: challengesRepo,
		periodsRepo:    periodsRepo,
		progressRepo:   progressRepo,
		periods:        periods,
	}
}

// RecordProgress stores the day's progress for the period, replacing any
// earlier value for the same day. Dates outside the period are rejected with
// ErrDateOutOfPeriod.
func (ps *ProgressService) RecordProgress(ctx context.Context, period *entity.ChallengePeriod, date time.Time, req *ProgressRequest) error {
	if req == nil {
		return errorvalues.ErrInvalidRequest
	}
	if err := validateRequest(req); err != nil {
		return err
	}
	date = civilDate(date)
	if !period.Contains(date) {
		return errorvalues.ErrDateOutOfPeriod
	}
	err := ps.progressRepo.Upsert(ctx, &entity.ChallengeProgress{
		PeriodID:  period.ID,
		Date:      date,
		Value:     req.Value,
		Notes:     req.Notes,
		Completed: req.Completed,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrPeriodNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	observability.RecordProgress()
	return nil
}

func (ps *ProgressService) RecomputePeriodStatus(ctx context.Context, period *entity.ChallengePeriod) (*entity.PeriodStatus, error) {
	rows, err := ps.progressRepo.ListByPeriod(ctx, period.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return ComputePeriodStatus(period, rows), nil
}

// ComputePeriodStatus aggregates progress rows of a period. The streak counts
// consecutive completed days walking back from the latest recorded day; a
// missing or incomplete day ends it.
func ComputePeriodStatus(period *entity.ChallengePeriod, rows []entity.ChallengeProgress) *entity.PeriodStatus {
	status := &entity.PeriodStatus{
		PeriodID:  period.ID,
		TotalDays: period.Days(),
	}
	completedByDay := make(map[int64]bool, len(rows))
	var latest time.Time
	for _, row := range rows {
		day := civilDate(row.Date)
		if !period.Contains(day) {
			continue
		}
		completedByDay[day.Unix()] = row.Completed
		if row.Completed {
			status.CompletedDays++
		}
		if day.After(latest) {
			latest = day
		}
	}
	if !latest.IsZero() {
		for day := latest; !day.Before(period.StartDate); day = day.AddDate(0, 0, -1) {
			if !completedByDay[day.Unix()] {
				break
			}
			status.Streak++
		}
	}
	if status.TotalDays > 0 {
		status.Completion = float64(status.CompletedDays) / float64(status.TotalDays)
	}
	status.Completed = status.TotalDays > 0 && status.CompletedDays == status.TotalDays
	return status
}

func (ps *ProgressService) RecordProgressFor(ctx context.Context, uid, periodID uuid.UUID, date time.Time, req *ProgressRequest) (*entity.PeriodStatus, error) {
	period, err := ps.ownedPeriod(ctx, uid, periodID)
	if err != nil {
		return nil, err
	}
	if err = ps.RecordProgress(ctx, period, date, req); err != nil {
		return nil, err
	}
	return ps.RecomputePeriodStatus(ctx, period)
}

func (ps *ProgressService) PeriodStatusFor(ctx context.Context, uid, periodID uuid.UUID) (*entity.PeriodStatus, error) {
	period, err := ps.ownedPeriod(ctx, uid, periodID)
	if err != nil {
		return nil, err
	}
	return ps.RecomputePeriodStatus(ctx, period)
}

// SyncFieldCompletion mirrors a daily field's completion flag into every active
// challenge bound to the field key, materializing only the covering period.
// Days before a challenge started are left untouched.
func (ps *ProgressService) SyncFieldCompletion(ctx context.Context, uid uuid.UUID, date time.Time, key string, completed bool) error {
	challenges, err := ps.challengesRepo.ListActiveByFieldKey(ctx, uid, key)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	if len(challenges) == 0 {
		return nil
	}
	date = civilDate(date)
	day, err := hijri.ToHijri(date)
	if err != nil {
		return err
	}
	value := 0.0
	if completed {
		value = 1
	}
	for _, challenge := range challenges {
		if date.Before(challenge.StartDate) {
			continue
		}
		period, err := ps.periods.EnsurePeriodContaining(ctx, challenge, day)
		if err != nil {
			return err
		}
		if period == nil {
			continue
		}
		if err = ps.RecordProgress(ctx, period, date, &ProgressRequest{Value: value, Completed: completed}); err != nil {
			return err
		}
		status, err := ps.RecomputePeriodStatus(ctx, period)
		if err != nil {
			return err
		}
		slog.Debug("challenge progress synced",
			slog.String("challenge_id", challenge.ID.String()),
			slog.String("period", period.AnchorKey),
			slog.Int("streak", status.Streak),
			slog.Float64("completion", status.Completion),
		)
	}
	return nil
}

func (ps *ProgressService) ownedPeriod(ctx context.Context, uid, periodID uuid.UUID) (*entity.ChallengePeriod, error) {
	period, err := ps.periodsRepo.GetByID(ctx, periodID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPeriodNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	challenge, err := ps.challengesRepo.GetByID(ctx, period.ChallengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, errorvalues.ErrPeriodNotFound
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if challenge.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return period, nil
}
