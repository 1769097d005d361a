package service

import (
	"fmt"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/pkg/entity"
	"github.com/limbo/ramadan/pkg/hijri"
)

// Upper bound on how far ahead periods may be planned in one call.
const maxPlanDays = 3 * 355

func dailyAnchor(d hijri.Date) string {
	return "d:" + d.String()
}

func weeklyAnchor(index int) string {
	return fmt.Sprintf("w:%d", index)
}

func monthlyAnchor(d hijri.Date) string {
	return fmt.Sprintf("m:%04d-%02d", d.Year, d.Month)
}

// PlanPeriods lists every period of the challenge whose Hijri start falls on or
// before through. Weeks are rolling 7-day windows counted from the challenge's
// start day. Monthly periods always span the whole Hijri month.
func PlanPeriods(challenge *entity.Challenge, through hijri.Date) ([]entity.ChallengePeriod, error) {
	if err := through.Validate(); err != nil {
		return nil, err
	}
	start, err := hijri.ToHijri(challenge.StartDate)
	if err != nil {
		return nil, err
	}
	if through.Before(start) {
		return []entity.ChallengePeriod{}, nil
	}
	if hijri.DaysBetween(start, through) > maxPlanDays {
		return nil, fmt.Errorf("%w: periods requested through %s, more than %d days after %s",
			errorvalues.ErrInvalidRequest, through, maxPlanDays, start)
	}

	plan := make([]entity.ChallengePeriod, 0)
	switch challenge.Scope {
	case entity.ScopeDaily:
		for d := start; !d.After(through); {
			plan = append(plan, dailyPeriod(challenge, d))
			if d, err = hijri.AddDays(d, 1); err != nil {
				// through is valid, so only the last supported day can get here
				break
			}
		}
	case entity.ScopeWeekly:
		for index := 0; ; index++ {
			from, err := hijri.AddDays(start, 7*index)
			if err != nil || from.After(through) {
				break
			}
			p, err := weeklyPeriod(challenge, from, index)
			if err != nil {
				return nil, err
			}
			plan = append(plan, p)
		}
	case entity.ScopeMonthly:
		for m := (hijri.Date{Year: start.Year, Month: start.Month, Day: 1}); !m.After(through); {
			plan = append(plan, monthlyPeriod(challenge, m))
			if m, err = hijri.AddDays(hijri.EndOfMonth(m), 1); err != nil {
				break
			}
		}
	default:
		return nil, fmt.Errorf("%w: unknown scope %q", errorvalues.ErrInvalidRequest, challenge.Scope)
	}
	return plan, nil
}

// PeriodContaining returns the one period of the challenge that covers day,
// anchored exactly as PlanPeriods would anchor it. ok is false when day
// precedes the challenge's start.
func PeriodContaining(challenge *entity.Challenge, day hijri.Date) (period entity.ChallengePeriod, ok bool, err error) {
	if err = day.Validate(); err != nil {
		return period, false, err
	}
	start, err := hijri.ToHijri(challenge.StartDate)
	if err != nil {
		return period, false, err
	}
	if day.Before(start) {
		return period, false, nil
	}
	switch challenge.Scope {
	case entity.ScopeDaily:
		period = dailyPeriod(challenge, day)
	case entity.ScopeWeekly:
		index := hijri.DaysBetween(start, day) / 7
		from, err := hijri.AddDays(start, 7*index)
		if err != nil {
			return period, false, err
		}
		if period, err = weeklyPeriod(challenge, from, index); err != nil {
			return period, false, err
		}
	case entity.ScopeMonthly:
		period = monthlyPeriod(challenge, hijri.Date{Year: day.Year, Month: day.Month, Day: 1})
	default:
		return period, false, fmt.Errorf("%w: unknown scope %q", errorvalues.ErrInvalidRequest, challenge.Scope)
	}
	return period, true, nil
}

func newPeriod(challenge *entity.Challenge, anchor string, from, to hijri.Date) entity.ChallengePeriod {
	return entity.ChallengePeriod{
		ID:          uuid.New(),
		ChallengeID: challenge.ID,
		Scope:       challenge.Scope,
		AnchorKey:   anchor,
		HijriYear:   from.Year,
		StartDate:   from.MustGregorian(),
		EndDate:     to.MustGregorian(),
		IsActive:    true,
	}
}

func dailyPeriod(challenge *entity.Challenge, d hijri.Date) entity.ChallengePeriod {
	p := newPeriod(challenge, dailyAnchor(d), d, d)
	month := d.Month
	p.HijriMonth = &month
	return p
}

func weeklyPeriod(challenge *entity.Challenge, from hijri.Date, index int) (entity.ChallengePeriod, error) {
	to, err := hijri.AddDays(from, 6)
	if err != nil {
		return entity.ChallengePeriod{}, err
	}
	p := newPeriod(challenge, weeklyAnchor(index), from, to)
	p.WeekIndex = &index
	return p, nil
}

// monthlyPeriod spans the whole month of first, which must be day 1.
func monthlyPeriod(challenge *entity.Challenge, first hijri.Date) entity.ChallengePeriod {
	p := newPeriod(challenge, monthlyAnchor(first), first, hijri.EndOfMonth(first))
	month := first.Month
	p.HijriMonth = &month
	return p
}
