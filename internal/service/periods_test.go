package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/internal/service"
	"github.com/limbo/ramadan/pkg/entity"
	"github.com/limbo/ramadan/pkg/hijri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anchors(periods []entity.ChallengePeriod) []string {
	keys := make([]string, 0, len(periods))
	for _, p := range periods {
		keys = append(keys, p.AnchorKey)
	}
	return keys
}

func TestPlanPeriods(t *testing.T) {
	t.Parallel()
	challenge := func(scope entity.ChallengeScope, start time.Time) *entity.Challenge {
		return &entity.Challenge{ID: uuid.New(), Scope: scope, StartDate: start, IsActive: true}
	}

	t.Run("daily periods from start day", func(t *testing.T) {
		plan, err := service.PlanPeriods(challenge(entity.ScopeDaily, day(2024, 3, 11)), hijri.Date{Year: 1445, Month: 9, Day: 3})
		require.NoError(t, err)
		assert.Equal(t, []string{"d:1445-09-01", "d:1445-09-02", "d:1445-09-03"}, anchors(plan))
		assert.Equal(t, day(2024, 3, 13), plan[2].StartDate)
		assert.Equal(t, plan[2].StartDate, plan[2].EndDate)
		require.NotNil(t, plan[0].HijriMonth)
		assert.Equal(t, 9, *plan[0].HijriMonth)
		assert.Nil(t, plan[0].WeekIndex)
	})
	t.Run("weekly periods are rolling windows from start day", func(t *testing.T) {
		plan, err := service.PlanPeriods(challenge(entity.ScopeWeekly, day(2024, 3, 25)), hijri.Date{Year: 1445, Month: 9, Day: 29})
		require.NoError(t, err)
		assert.Equal(t, []string{"w:0", "w:1", "w:2"}, anchors(plan))
		assert.Equal(t, day(2024, 3, 25), plan[0].StartDate)
		assert.Equal(t, day(2024, 3, 31), plan[0].EndDate)
		// third week crosses into Shawwal
		assert.Equal(t, day(2024, 4, 8), plan[2].StartDate)
		assert.Equal(t, day(2024, 4, 14), plan[2].EndDate)
		require.NotNil(t, plan[2].WeekIndex)
		assert.Equal(t, 2, *plan[2].WeekIndex)
		assert.Nil(t, plan[2].HijriMonth)
		for _, p := range plan {
			assert.Equal(t, 7, p.Days())
		}
	})
	t.Run("monthly period covers whole month for mid month start", func(t *testing.T) {
		plan, err := service.PlanPeriods(challenge(entity.ScopeMonthly, day(2024, 3, 25)), hijri.Date{Year: 1445, Month: 9, Day: 15})
		require.NoError(t, err)
		require.Len(t, plan, 1)
		assert.Equal(t, "m:1445-09", plan[0].AnchorKey)
		assert.Equal(t, day(2024, 3, 11), plan[0].StartDate)
		assert.Equal(t, day(2024, 4, 9), plan[0].EndDate)
		assert.Equal(t, 30, plan[0].Days())
		assert.Equal(t, 1445, plan[0].HijriYear)
	})
	t.Run("monthly periods across year boundary", func(t *testing.T) {
		plan, err := service.PlanPeriods(challenge(entity.ScopeMonthly, day(2024, 6, 20)), hijri.Date{Year: 1446, Month: 1, Day: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"m:1445-12", "m:1446-01"}, anchors(plan))
	})
	t.Run("through before start plans nothing", func(t *testing.T) {
		plan, err := service.PlanPeriods(challenge(entity.ScopeDaily, day(2024, 3, 25)), hijri.Date{Year: 1445, Month: 9, Day: 1})
		require.NoError(t, err)
		assert.Empty(t, plan)
	})
	t.Run("error invalid through date", func(t *testing.T) {
		_, err := service.PlanPeriods(challenge(entity.ScopeDaily, day(2024, 3, 25)), hijri.Date{Year: 1445, Month: 13, Day: 1})
		assert.ErrorIs(t, err, errorvalues.ErrCalendarRange)
	})
	t.Run("error too far ahead", func(t *testing.T) {
		_, err := service.PlanPeriods(challenge(entity.ScopeDaily, day(2024, 3, 25)), hijri.Date{Year: 1450, Month: 1, Day: 1})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRequest)
	})
	t.Run("error unknown scope", func(t *testing.T) {
		_, err := service.PlanPeriods(challenge("yearly", day(2024, 3, 25)), hijri.Date{Year: 1445, Month: 9, Day: 20})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRequest)
	})
}

func TestPeriodContaining(t *testing.T) {
	t.Parallel()
	start := day(2024, 3, 25)
	through := hijri.Date{Year: 1445, Month: 11, Day: 10}
	for _, scope := range []entity.ChallengeScope{entity.ScopeDaily, entity.ScopeWeekly, entity.ScopeMonthly} {
		t.Run("matches full plan for "+string(scope), func(t *testing.T) {
			challenge := &entity.Challenge{ID: uuid.New(), Scope: scope, StartDate: start, IsActive: true}
			plan, err := service.PlanPeriods(challenge, through)
			require.NoError(t, err)
			for _, planned := range plan {
				from := planned.StartDate
				if from.Before(start) {
					from = start
				}
				for d := from; !d.After(planned.EndDate); d = d.AddDate(0, 0, 1) {
					h, err := hijri.ToHijri(d)
					require.NoError(t, err)
					got, ok, err := service.PeriodContaining(challenge, h)
					require.NoError(t, err)
					require.True(t, ok)
					assert.Equal(t, planned.AnchorKey, got.AnchorKey, d)
					assert.Equal(t, planned.StartDate, got.StartDate, d)
					assert.Equal(t, planned.EndDate, got.EndDate, d)
					assert.Equal(t, planned.WeekIndex, got.WeekIndex, d)
					assert.Equal(t, planned.HijriMonth, got.HijriMonth, d)
				}
			}
		})
	}
	t.Run("day before start has no period", func(t *testing.T) {
		challenge := &entity.Challenge{ID: uuid.New(), Scope: entity.ScopeWeekly, StartDate: start, IsActive: true}
		_, ok, err := service.PeriodContaining(challenge, hijri.Date{Year: 1445, Month: 9, Day: 1})
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("far from start is not capped", func(t *testing.T) {
		challenge := &entity.Challenge{ID: uuid.New(), Scope: entity.ScopeDaily, StartDate: start, IsActive: true}
		got, ok, err := service.PeriodContaining(challenge, hijri.Date{Year: 1460, Month: 1, Day: 1})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "d:1460-01-01", got.AnchorKey)
	})
	t.Run("error invalid day", func(t *testing.T) {
		challenge := &entity.Challenge{ID: uuid.New(), Scope: entity.ScopeDaily, StartDate: start, IsActive: true}
		_, _, err := service.PeriodContaining(challenge, hijri.Date{Year: 1445, Month: 2, Day: 30})
		assert.ErrorIs(t, err, errorvalues.ErrCalendarRange)
	})
}
