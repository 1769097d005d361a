package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/pkg/entity"
)

type ProgressRepository struct {
	conn PgConnection
}

func NewProgressRepoWithConn(conn PgConnection) *ProgressRepository {
	mustPing(conn, "progressRepo")
	return &ProgressRepository{
		conn: conn,
	}
}

func (pr *ProgressRepository) Upsert(ctx context.Context, progress *entity.ChallengeProgress) error {
	_, err := pr.conn.Exec(ctx, `INSERT INTO challenge_progress (period_id, progress_date, value, notes, completed)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (period_id, progress_date) DO UPDATE SET value = EXCLUDED.value, notes = EXCLUDED.notes,
		completed = EXCLUDED.completed, updated_at = NOW();`,
		progress.PeriodID,
		progress.Date,
		progress.Value,
		progress.Notes,
		progress.Completed,
	)
	if err != nil {
		if pgErrCode(err) == foreignKeyViolation {
			return errorvalues.ErrPeriodNotFound
		}
		return errors.New("saving progress error: " + err.Error())
	}
	return nil
}

func (pr *ProgressRepository) ListByPeriod(ctx context.Context, periodID uuid.UUID) ([]entity.ChallengeProgress, error) {
	rows, err := pr.conn.Query(ctx, `SELECT id, period_id, progress_date, value, notes, completed, updated_at
		FROM challenge_progress WHERE period_id = $1 ORDER BY progress_date;`, periodID)
	if err != nil {
		return nil, errors.New("listing progress error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.ChallengeProgress, 0)
	for rows.Next() {
		p := entity.ChallengeProgress{}
		err = rows.Scan(&p.ID, &p.PeriodID, &p.Date, &p.Value, &p.Notes, &p.Completed, &p.UpdatedAt)
		if err != nil {
			return nil, errors.New("progress row parsing error: " + err.Error())
		}
		p.Date = p.Date.UTC()
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected progress rows error: " + err.Error())
	}
	return result, nil
}
