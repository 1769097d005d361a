package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/ramadan/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UsersRepositoryI interface {
	// Looks up user with timezone settings
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Replaces user's timezone settings
	UpdateTimezone(ctx context.Context, uid uuid.UUID, zone string, source entity.TimezoneSource) error
}

type EntriesRepositoryI interface {
	// Inserts entry unless one already exists for (user, date). Returns the stored row
	// and whether this call created it
	CreateIfAbsent(ctx context.Context, entry *entity.DailyEntry) (*entity.DailyEntry, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyEntry, error)
	GetByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DailyEntry, error)
	// Moves an open entry to locked. Reports whether this call performed the transition
	MarkLocked(ctx context.Context, id uuid.UUID) (bool, error)
}

type FieldsRepositoryI interface {
	ListByEntry(ctx context.Context, entryID uuid.UUID) ([]entity.DailyEntryField, error)
	// Inserts or replaces the field while the entry is open at now, else ErrEntryLocked
	UpsertIfOpen(ctx context.Context, field *entity.DailyEntryField, now time.Time) error
	// Removes all fields of an entry that is open at now, else ErrEntryLocked
	DeleteByEntryIfOpen(ctx context.Context, entryID uuid.UUID, now time.Time) (int64, error)
}

type ChallengesRepositoryI interface {
	Create(ctx context.Context, challenge *entity.Challenge) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error)
	// Active challenges of the user bound to a daily entry field key
	ListActiveByFieldKey(ctx context.Context, uid uuid.UUID, key string) ([]*entity.Challenge, error)
	// Deactivates challenge and its periods in one transaction
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type PeriodsRepositoryI interface {
	// Inserts period unless (challenge, scope, anchor) exists. Returns the stored row
	// and whether this call created it
	CreateIfAbsent(ctx context.Context, period *entity.ChallengePeriod) (*entity.ChallengePeriod, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ChallengePeriod, error)
	// Periods of the challenge ordered by start date
	ListByChallenge(ctx context.Context, challengeID uuid.UUID) ([]*entity.ChallengePeriod, error)
}

type ProgressRepositoryI interface {
	// Last write wins per (period, date)
	Upsert(ctx context.Context, progress *entity.ChallengeProgress) error
	// Progress rows of the period ordered by date
	ListByPeriod(ctx context.Context, periodID uuid.UUID) ([]entity.ChallengeProgress, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
