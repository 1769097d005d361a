package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/pkg/entity"
)

const entryColumns = `id, user_id, entry_date, hijri_year, hijri_month, hijri_day, timezone, lock_at_utc, status, created_at`

type EntriesRepository struct {
	conn PgConnection
}

func NewEntriesRepoWithConn(conn PgConnection) *EntriesRepository {
	mustPing(conn, "entriesRepo")
	return &EntriesRepository{
		conn: conn,
	}
}

// CreateIfAbsent relies on the (user_id, entry_date) unique index: a concurrent
// creator on another process makes our insert a no-op and we read its row instead.
func (er *EntriesRepository) CreateIfAbsent(ctx context.Context, entry *entity.DailyEntry) (*entity.DailyEntry, bool, error) {
	if entry == nil {
		return nil, false, errors.New("entry is nil")
	}
	ct, err := er.conn.Exec(ctx, `INSERT INTO daily_entries (id, user_id, entry_date, hijri_year, hijri_month, hijri_day, timezone, lock_at_utc, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) ON CONFLICT (user_id, entry_date) DO NOTHING;`,
		entry.ID,
		entry.UserID,
		entry.Date,
		entry.HijriYear,
		entry.HijriMonth,
		entry.HijriDay,
		entry.Timezone,
		entry.LockAtUTC,
		entry.Status,
	)
	if err != nil {
		if pgErrCode(err) == foreignKeyViolation {
			return nil, false, errorvalues.ErrUserNotFound
		}
		return nil, false, errors.New("creating entry db error: " + err.Error())
	}
	stored, err := er.GetByUserAndDate(ctx, entry.UserID, entry.Date)
	if err != nil {
		return nil, false, err
	}
	return stored, ct.RowsAffected() == 1, nil
}

func (er *EntriesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyEntry, error) {
	row := er.conn.QueryRow(ctx, `SELECT `+entryColumns+` FROM daily_entries WHERE id = $1;`, id)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("getting entry by id error: " + err.Error())
	}
	return entry, nil
}

func (er *EntriesRepository) GetByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DailyEntry, error) {
	row := er.conn.QueryRow(ctx, `SELECT `+entryColumns+` FROM daily_entries WHERE user_id = $1 AND entry_date = $2;`, uid, date)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("getting entry by date error: " + err.Error())
	}
	return entry, nil
}

// MarkLocked is the only statement that writes entry status.
func (er *EntriesRepository) MarkLocked(ctx context.Context, id uuid.UUID) (bool, error) {
	ct, err := er.conn.Exec(ctx, `UPDATE daily_entries SET status = 'locked' WHERE id = $1 AND status = 'open';`, id)
	if err != nil {
		return false, errors.New("locking entry error: " + err.Error())
	}
	return ct.RowsAffected() == 1, nil
}

func scanEntry(row pgx.Row) (*entity.DailyEntry, error) {
	var e entity.DailyEntry
	err := row.Scan(&e.ID, &e.UserID, &e.Date, &e.HijriYear, &e.HijriMonth, &e.HijriDay, &e.Timezone, &e.LockAtUTC, &e.Status, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	e.Date = e.Date.UTC()
	e.LockAtUTC = e.LockAtUTC.UTC()
	return &e, nil
}
