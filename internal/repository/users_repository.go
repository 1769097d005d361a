package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT id, name, timezone_iana, timezone_source FROM users WHERE id = $1;`, uid)
	if err := row.Scan(&user.ID, &user.Name, &user.TimezoneIANA, &user.TimezoneSource); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) UpdateTimezone(ctx context.Context, uid uuid.UUID, zone string, source entity.TimezoneSource) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET timezone_iana = $1, timezone_source = $2 WHERE id = $3;`,
		zone,
		source,
		uid,
	)
	if err != nil {
		return errors.New("updating user timezone error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
