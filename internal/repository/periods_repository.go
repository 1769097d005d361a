package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/pkg/entity"
)

const periodColumns = `id, challenge_id, scope, anchor_key, hijri_year, hijri_month, hijri_week_index, start_date, end_date, is_active`

type PeriodsRepository struct {
	conn PgConnection
}

func NewPeriodsRepoWithConn(conn PgConnection) *PeriodsRepository {
	mustPing(conn, "periodsRepo")
	return &PeriodsRepository{
		conn: conn,
	}
}

func (pr *PeriodsRepository) CreateIfAbsent(ctx context.Context, period *entity.ChallengePeriod) (*entity.ChallengePeriod, bool, error) {
	if period == nil {
		return nil, false, errors.New("period is nil")
	}
	ct, err := pr.conn.Exec(ctx, `INSERT INTO challenge_periods (id, challenge_id, scope, anchor_key, hijri_year, hijri_month, hijri_week_index, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) ON CONFLICT (challenge_id, scope, anchor_key) DO NOTHING;`,
		period.ID,
		period.ChallengeID,
		period.Scope,
		period.AnchorKey,
		period.HijriYear,
		period.HijriMonth,
		period.WeekIndex,
		period.StartDate,
		period.EndDate,
		period.IsActive,
	)
	if err != nil {
		if pgErrCode(err) == foreignKeyViolation {
			return nil, false, errorvalues.ErrChallengeNotFound
		}
		return nil, false, errors.New("creating period db error: " + err.Error())
	}
	row := pr.conn.QueryRow(ctx, `SELECT `+periodColumns+` FROM challenge_periods WHERE challenge_id = $1 AND scope = $2 AND anchor_key = $3;`,
		period.ChallengeID,
		period.Scope,
		period.AnchorKey,
	)
	stored, err := scanPeriod(row)
	if err != nil {
		return nil, false, errors.New("reading created period error: " + err.Error())
	}
	return stored, ct.RowsAffected() == 1, nil
}

func (pr *PeriodsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ChallengePeriod, error) {
	row := pr.conn.QueryRow(ctx, `SELECT `+periodColumns+` FROM challenge_periods WHERE id = $1;`, id)
	period, err := scanPeriod(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrPeriodNotFound
		}
		return nil, errors.New("getting period by id error: " + err.Error())
	}
	return period, nil
}

func (pr *PeriodsRepository) ListByChallenge(ctx context.Context, challengeID uuid.UUID) ([]*entity.ChallengePeriod, error) {
	rows, err := pr.conn.Query(ctx, `SELECT `+periodColumns+` FROM challenge_periods WHERE challenge_id = $1 ORDER BY start_date;`, challengeID)
	if err != nil {
		return nil, errors.New("listing periods error: " + err.Error())
	}
	defer rows.Close()
	periods := make([]*entity.ChallengePeriod, 0)
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, errors.New("period row parsing error: " + err.Error())
		}
		periods = append(periods, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected period rows error: " + err.Error())
	}
	return periods, nil
}

func scanPeriod(row pgx.Row) (*entity.ChallengePeriod, error) {
	var p entity.ChallengePeriod
	err := row.Scan(&p.ID, &p.ChallengeID, &p.Scope, &p.AnchorKey, &p.HijriYear, &p.HijriMonth, &p.WeekIndex, &p.StartDate, &p.EndDate, &p.IsActive)
	if err != nil {
		return nil, err
	}
	p.StartDate = p.StartDate.UTC()
	p.EndDate = p.EndDate.UTC()
	return &p, nil
}
