package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/pkg/entity"
)

const challengeColumns = `id, user_id, title, scope, field_key, start_date, is_active, created_at`

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	mustPing(conn, "challengesRepo")
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) Create(ctx context.Context, challenge *entity.Challenge) (uuid.UUID, error) {
	var id uuid.UUID
	row := cr.conn.QueryRow(ctx, `INSERT INTO challenges (user_id, title, scope, field_key, start_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		challenge.UserID,
		challenge.Title,
		challenge.Scope,
		challenge.FieldKey,
		challenge.StartDate,
		challenge.IsActive,
	)
	if err := row.Scan(&id); err != nil {
		switch pgErrCode(err) {
		case uniqueViolation:
			return uuid.Nil, errorvalues.ErrChallengeExists
		case foreignKeyViolation:
			return uuid.Nil, errorvalues.ErrUserNotFound
		}
		return uuid.Nil, errors.New("creating challenge db error: " + err.Error())
	}
	return id, nil
}

func (cr *ChallengesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	row := cr.conn.QueryRow(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE id = $1;`, id)
	challenge, err := scanChallenge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge by id error: " + err.Error())
	}
	return challenge, nil
}

func (cr *ChallengesRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error) {
	return cr.list(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE user_id = $1 ORDER BY created_at;`, uid)
}

func (cr *ChallengesRepository) ListActiveByFieldKey(ctx context.Context, uid uuid.UUID, key string) ([]*entity.Challenge, error) {
	return cr.list(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE user_id = $1 AND field_key = $2 AND is_active ORDER BY created_at;`, uid, key)
}

func (cr *ChallengesRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	tx, err := cr.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting deactivation tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `UPDATE challenges SET is_active = FALSE WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deactivating challenge error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrChallengeNotFound
	}
	if _, err = tx.Exec(ctx, `UPDATE challenge_periods SET is_active = FALSE WHERE challenge_id = $1;`, id); err != nil {
		return errors.New("deactivating challenge periods error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing deactivation error: " + err.Error())
	}
	return nil
}

func (cr *ChallengesRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Challenge, error) {
	rows, err := cr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing challenges error: " + err.Error())
	}
	defer rows.Close()
	challenges := make([]*entity.Challenge, 0)
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, errors.New("challenge row parsing error: " + err.Error())
		}
		challenges = append(challenges, c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected challenge rows error: " + err.Error())
	}
	return challenges, nil
}

func scanChallenge(row pgx.Row) (*entity.Challenge, error) {
	var c entity.Challenge
	if err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.Scope, &c.FieldKey, &c.StartDate, &c.IsActive, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.StartDate = c.StartDate.UTC()
	return &c, nil
}
