package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/pkg/entity"
)

type FieldsRepository struct {
	conn PgConnection
}

func NewFieldsRepoWithConn(conn PgConnection) *FieldsRepository {
	mustPing(conn, "fieldsRepo")
	return &FieldsRepository{
		conn: conn,
	}
}

func (fr *FieldsRepository) ListByEntry(ctx context.Context, entryID uuid.UUID) ([]entity.DailyEntryField, error) {
	rows, err := fr.conn.Query(ctx, `SELECT id, entry_id, field_key, field_type, value, counts_toward_completion, updated_at
		FROM daily_entry_fields WHERE entry_id = $1 ORDER BY field_key;`, entryID)
	if err != nil {
		return nil, errors.New("listing entry fields error: " + err.Error())
	}
	defer rows.Close()
	fields := make([]entity.DailyEntryField, 0)
	for rows.Next() {
		field, err := scanField(rows)
		if err != nil {
			return nil, errors.New("field row parsing error: " + err.Error())
		}
		fields = append(fields, *field)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected field rows error: " + err.Error())
	}
	return fields, nil
}

// UpsertIfOpen writes only when the parent entry is still open and its lock
// instant is after now, so a write racing past midnight is rejected too.
func (fr *FieldsRepository) UpsertIfOpen(ctx context.Context, field *entity.DailyEntryField, now time.Time) error {
	if field == nil {
		return errors.New("field is nil")
	}
	value, err := sonic.Marshal(field.Value)
	if err != nil {
		return errors.New("encoding field value error: " + err.Error())
	}
	ct, err := fr.conn.Exec(ctx, `INSERT INTO daily_entry_fields (entry_id, field_key, field_type, value, counts_toward_completion)
		SELECT $1::uuid, $2::text, $3::text, $4::jsonb, $5::boolean
		WHERE EXISTS (SELECT 1 FROM daily_entries WHERE id = $1 AND status = 'open' AND lock_at_utc > $6::timestamptz)
		ON CONFLICT (entry_id, field_key) DO UPDATE SET field_type = EXCLUDED.field_type, value = EXCLUDED.value,
		counts_toward_completion = EXCLUDED.counts_toward_completion, updated_at = NOW();`,
		field.EntryID,
		field.Key,
		field.Type,
		value,
		field.CountsTowardCompletion,
		now,
	)
	if err != nil {
		if pgErrCode(err) == foreignKeyViolation {
			return errorvalues.ErrEntryNotFound
		}
		return errors.New("saving field error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryLocked
	}
	return nil
}

func (fr *FieldsRepository) DeleteByEntryIfOpen(ctx context.Context, entryID uuid.UUID, now time.Time) (int64, error) {
	row := fr.conn.QueryRow(ctx, `WITH open_entry AS (
			SELECT id FROM daily_entries WHERE id = $1 AND status = 'open' AND lock_at_utc > $2
		), deleted AS (
			DELETE FROM daily_entry_fields WHERE entry_id IN (SELECT id FROM open_entry) RETURNING 1
		)
		SELECT EXISTS(SELECT 1 FROM open_entry), (SELECT COUNT(*) FROM deleted);`, entryID, now)
	var (
		open    bool
		deleted int64
	)
	if err := row.Scan(&open, &deleted); err != nil {
		return 0, errors.New("resetting entry fields error: " + err.Error())
	}
	if !open {
		return 0, errorvalues.ErrEntryLocked
	}
	return deleted, nil
}

func scanField(row pgx.Row) (*entity.DailyEntryField, error) {
	var (
		f   entity.DailyEntryField
		raw []byte
	)
	if err := row.Scan(&f.ID, &f.EntryID, &f.Key, &f.Type, &raw, &f.CountsTowardCompletion, &f.UpdatedAt); err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &f.Value); err != nil {
			return nil, err
		}
	}
	return &f, nil
}
