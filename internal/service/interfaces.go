package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/ramadan/pkg/entity"
	"github.com/limbo/ramadan/pkg/hijri"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type SaveFieldRequest struct {
	Key   string           `validate:"required,field_key,max=64"`
	Type  entity.FieldType `validate:"required,oneof=checkbox text radio textarea"`
	Value entity.FieldValue
}

type CreateChallengeRequest struct {
	Title    string                `validate:"required,max=200"`
	Scope    entity.ChallengeScope `validate:"required,oneof=daily weekly monthly"`
	FieldKey string                `validate:"omitempty,field_key,max=64"`
	// Client timezone hint used to pick the creation day
	TimezoneHint string
}

type UpdateTimezoneRequest struct {
	Zone   string                `validate:"required,iana_tz"`
	Source entity.TimezoneSource `validate:"required,oneof=auto manual"`
}

type ProgressRequest struct {
	Value     float64 `validate:"gte=0"`
	Notes     string  `validate:"max=2000"`
	Completed bool
}

// EntryView is a daily entry with its fields. Warning is set when the timezone
// could not be resolved and the fallback zone was snapshotted instead.
type EntryView struct {
	Entry   *entity.DailyEntry       `json:"entry"`
	Fields  []entity.DailyEntryField `json:"fields"`
	Warning string                   `json:"warning,omitempty"`
}

type UserServiceI interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Validates zone name and stores new timezone settings
	UpdateTimezone(ctx context.Context, id uuid.UUID, req *UpdateTimezoneRequest) (*entity.User, error)
}

type EntriesServiceI interface {
	// Returns today's entry in the user's resolved timezone, creating it lazily
	GetToday(ctx context.Context, uid uuid.UUID, tzHint string) (*EntryView, error)
	// Returns the entry for (user, date), creating it when absent
	GetOrCreateEntry(ctx context.Context, uid uuid.UUID, date time.Time, tzHint string) (*EntryView, error)
	GetEntry(ctx context.Context, uid, entryID uuid.UUID) (*EntryView, error)
	// Upserts a field of an open entry. ErrEntryLocked once locked
	SaveField(ctx context.Context, uid, entryID uuid.UUID, req *SaveFieldRequest) (*entity.DailyEntryField, error)
	// Clears all fields of an open entry. ErrEntryLocked once locked
	ResetDay(ctx context.Context, uid, entryID uuid.UUID) error
	Now() time.Time
}

type ChallengesServiceI interface {
	CreateChallenge(ctx context.Context, uid uuid.UUID, req *CreateChallengeRequest) (*entity.Challenge, error)
	ListChallenges(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error)
	DeactivateChallenge(ctx context.Context, uid, challengeID uuid.UUID) error
	// Ensures periods through the given Hijri date, or the end of the current Hijri month when nil
	EnsurePeriodsFor(ctx context.Context, uid, challengeID uuid.UUID, through *hijri.Date) ([]*entity.ChallengePeriod, error)
	ListPeriods(ctx context.Context, uid, challengeID uuid.UUID) ([]*entity.ChallengePeriod, error)
}

type ProgressServiceI interface {
	RecordProgressFor(ctx context.Context, uid, periodID uuid.UUID, date time.Time, req *ProgressRequest) (*entity.PeriodStatus, error)
	PeriodStatusFor(ctx context.Context, uid, periodID uuid.UUID) (*entity.PeriodStatus, error)
}

// PeriodEnsurer materializes the challenge period covering a day. Implemented by
// ChallengesService.
type PeriodEnsurer interface {
	EnsurePeriodContaining(ctx context.Context, challenge *entity.Challenge, day hijri.Date) (*entity.ChallengePeriod, error)
}

// CompletionSyncer propagates a field's completion flag to bound challenges.
// Implemented by ProgressService.
type CompletionSyncer interface {
	SyncFieldCompletion(ctx context.Context, uid uuid.UUID, date time.Time, key string, completed bool) error
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
