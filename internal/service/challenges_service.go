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
	"github.com/limbo/ramadan/internal/timezone"
	"github.com/limbo/ramadan/pkg/clock"
	"github.com/limbo/ramadan/pkg/entity"
	"github.com/limbo/ramadan/pkg/hijri"
)

type ChallengesService struct {
	usersRepo      repository.UsersRepositoryI
	challengesRepo repository.ChallengesRepositoryI
	periodsRepo    repository.PeriodsRepositoryI
	resolver       *timezone.Resolver
	clock          clock.Clock
}

func NewChallengesService(
	usersRepo repository.UsersRepositoryI,
	challengesRepo repository.ChallengesRepositoryI,
	periodsRepo repository.PeriodsRepositoryI,
	resolver *timezone.Resolver,
	clk clock.Clock,
) *ChallengesService {
	if usersRepo == nil || challengesRepo == nil || periodsRepo == nil {
		log.Fatal("on challenges service provided nil repos")
	}
	if resolver == nil {
		resolver = timezone.NewResolver(timezone.DefaultZone)
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &ChallengesService{
		usersRepo:      usersRepo,
		challengesRepo: challengesRepo,
		periodsRepo:    periodsRepo,
		resolver:       resolver,
		clock:          clk,
	}
}

func (cs *ChallengesService) CreateChallenge(ctx context.Context, uid uuid.UUID, req *CreateChallengeRequest) (*entity.Challenge, error) {
	if req == nil {
		return nil, errorvalues.ErrInvalidRequest
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	startDate, warnErr, err := cs.localToday(ctx, uid, req.TimezoneHint)
	if err != nil {
		return nil, err
	}
	startHijri, err := hijri.ToHijri(startDate)
	if err != nil {
		return nil, err
	}

	id, err := cs.challengesRepo.Create(ctx, &entity.Challenge{
		UserID:    uid,
		Title:     req.Title,
		Scope:     req.Scope,
		FieldKey:  req.FieldKey,
		StartDate: startDate,
		IsActive:  true,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeExists) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if warnErr != nil {
		cs.resolver.ReportFallback(uid, warnErr)
	}
	challenge, err := cs.challengesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	// The period containing the start day exists as soon as the challenge does
	if _, err = cs.EnsurePeriodContaining(ctx, challenge, startHijri); err != nil {
		return nil, err
	}
	return challenge, nil
}

func (cs *ChallengesService) ListChallenges(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error) {
	challenges, err := cs.challengesRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return challenges, nil
}

func (cs *ChallengesService) DeactivateChallenge(ctx context.Context, uid, challengeID uuid.UUID) error {
	if _, err := cs.ownedChallenge(ctx, uid, challengeID); err != nil {
		return err
	}
	if err := cs.challengesRepo.Deactivate(ctx, challengeID); err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (cs *ChallengesService) EnsurePeriodsFor(ctx context.Context, uid, challengeID uuid.UUID, through *hijri.Date) ([]*entity.ChallengePeriod, error) {
	challenge, err := cs.ownedChallenge(ctx, uid, challengeID)
	if err != nil {
		return nil, err
	}
	var target hijri.Date
	if through != nil {
		target = *through
	} else {
		local, _, err := cs.localToday(ctx, uid, "")
		if err != nil {
			return nil, err
		}
		today, err := hijri.ToHijri(local)
		if err != nil {
			return nil, err
		}
		target = hijri.EndOfMonth(today)
	}
	return cs.EnsurePeriods(ctx, challenge, target)
}

func (cs *ChallengesService) ListPeriods(ctx context.Context, uid, challengeID uuid.UUID) ([]*entity.ChallengePeriod, error) {
	if _, err := cs.ownedChallenge(ctx, uid, challengeID); err != nil {
		return nil, err
	}
	periods, err := cs.periodsRepo.ListByChallenge(ctx, challengeID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return periods, nil
}

// EnsurePeriods creates the challenge's missing periods through the given Hijri
// date and returns all of them in order. Calling it again with the same
// arguments creates nothing. Inactive challenges get no new periods.
func (cs *ChallengesService) EnsurePeriods(ctx context.Context, challenge *entity.Challenge, through hijri.Date) ([]*entity.ChallengePeriod, error) {
	existing, err := cs.periodsRepo.ListByChallenge(ctx, challenge.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if !challenge.IsActive {
		return existing, nil
	}
	plan, err := PlanPeriods(challenge, through)
	if err != nil {
		return nil, err
	}
	byAnchor := make(map[string]*entity.ChallengePeriod, len(existing))
	for _, p := range existing {
		byAnchor[p.AnchorKey] = p
	}

	result := make([]*entity.ChallengePeriod, 0, len(plan))
	created := 0
	for i := range plan {
		if p, ok := byAnchor[plan[i].AnchorKey]; ok {
			result = append(result, p)
			continue
		}
		stored, isNew, err := cs.periodsRepo.CreateIfAbsent(ctx, &plan[i])
		if err != nil {
			if errors.Is(err, errorvalues.ErrChallengeNotFound) {
				return nil, err
			}
			return nil, errors.New("repository error: " + err.Error())
		}
		if isNew {
			created++
		}
		result = append(result, stored)
	}
	if created > 0 {
		observability.RecordPeriodsGenerated(string(challenge.Scope), created)
		slog.Debug("challenge periods generated",
			slog.String("challenge_id", challenge.ID.String()),
			slog.String("through", through.String()),
			slog.Int("created", created),
		)
	}
	return result, nil
}

// EnsurePeriodContaining materializes only the period covering day, however old
// the challenge is. It returns nil when the challenge is inactive or day
// precedes its start.
func (cs *ChallengesService) EnsurePeriodContaining(ctx context.Context, challenge *entity.Challenge, day hijri.Date) (*entity.ChallengePeriod, error) {
	if !challenge.IsActive {
		return nil, nil
	}
	planned, ok, err := PeriodContaining(challenge, day)
	if err != nil || !ok {
		return nil, err
	}
	stored, isNew, err := cs.periodsRepo.CreateIfAbsent(ctx, &planned)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if isNew {
		observability.RecordPeriodsGenerated(string(challenge.Scope), 1)
		slog.Debug("challenge period generated",
			slog.String("challenge_id", challenge.ID.String()),
			slog.String("period", stored.AnchorKey),
		)
	}
	return stored, nil
}

// localToday is the user's current calendar date in their resolved zone.
// fallback is the resolution warning when the fallback zone had to be used.
func (cs *ChallengesService) localToday(ctx context.Context, uid uuid.UUID, hint string) (today time.Time, fallback error, err error) {
	user, err := cs.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return time.Time{}, nil, err
		}
		return time.Time{}, nil, errors.New("repository error: " + err.Error())
	}
	zone, warnErr := cs.resolver.ResolveOrFallback(user, hint)
	loc, err := cs.resolver.Load(zone)
	if err != nil {
		return time.Time{}, nil, errors.New("loading resolved zone error: " + err.Error())
	}
	return timezone.LocalDate(cs.clock.NowUTC(), loc), warnErr, nil
}

func (cs *ChallengesService) ownedChallenge(ctx context.Context, uid, challengeID uuid.UUID) (*entity.Challenge, error) {
	challenge, err := cs.challengesRepo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if challenge.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return challenge, nil
}
