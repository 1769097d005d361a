package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/internal/repository"
	"github.com/limbo/ramadan/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryRowColumns = []string{"id", "user_id", "entry_date", "hijri_year", "hijri_month", "hijri_day", "timezone", "lock_at_utc", "status", "created_at"}

func testEntry() entity.DailyEntry {
	return entity.DailyEntry{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Date:       time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		HijriYear:  1445,
		HijriMonth: 9,
		HijriDay:   1,
		Timezone:   "Europe/Istanbul",
		LockAtUTC:  time.Date(2024, 3, 11, 21, 0, 0, 0, time.UTC),
		Status:     entity.EntryStatusOpen,
		CreatedAt:  time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC),
	}
}

func entryRow(e entity.DailyEntry) *pgxmock.Rows {
	return pgxmock.NewRows(entryRowColumns).
		AddRow(e.ID, e.UserID, e.Date, e.HijriYear, e.HijriMonth, e.HijriDay, e.Timezone, e.LockAtUTC, e.Status, e.CreatedAt)
}

func TestCreateEntryIfAbsent(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewEntriesRepoWithConn(conn)
	entry := testEntry()
	insert := regexp.QuoteMeta(`INSERT INTO daily_entries (id, user_id, entry_date, hijri_year, hijri_month, hijri_day, timezone, lock_at_utc, status)`)
	selectByDate := regexp.QuoteMeta(`FROM daily_entries WHERE user_id = $1 AND entry_date = $2;`)
	args := []any{entry.ID, entry.UserID, entry.Date, entry.HijriYear, entry.HijriMonth, entry.HijriDay, entry.Timezone, entry.LockAtUTC, entry.Status}

	t.Run("created", func(t *testing.T) {
		conn.ExpectExec(insert).WithArgs(args...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectQuery(selectByDate).WithArgs(entry.UserID, entry.Date).WillReturnRows(entryRow(entry))
		stored, created, err := repo.CreateIfAbsent(ctx, &entry)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, entry, *stored)
	})
	t.Run("existing row returned on conflict", func(t *testing.T) {
		existing := testEntry()
		existing.UserID = entry.UserID
		conn.ExpectExec(insert).WithArgs(args...).WillReturnResult(pgxmock.NewResult("INSERT", 0))
		conn.ExpectQuery(selectByDate).WithArgs(entry.UserID, entry.Date).WillReturnRows(entryRow(existing))
		stored, created, err := repo.CreateIfAbsent(ctx, &entry)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing.ID, stored.ID)
	})
	t.Run("unknown user", func(t *testing.T) {
		conn.ExpectExec(insert).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23503"})
		_, _, err := repo.CreateIfAbsent(ctx, &entry)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(insert).WithArgs(args...).WillReturnError(errors.New("db error"))
		_, _, err := repo.CreateIfAbsent(ctx, &entry)
		assert.Error(t, err)
	})
	t.Run("nil entry", func(t *testing.T) {
		_, _, err := repo.CreateIfAbsent(ctx, nil)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestGetEntryByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewEntriesRepoWithConn(conn)
	entry := testEntry()
	query := regexp.QuoteMeta(`FROM daily_entries WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(entry.ID).WillReturnRows(entryRow(entry))
		result, err := repo.GetByID(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, entry, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(entry.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, entry.ID)
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(entry.ID).WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, entry.ID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestMarkLocked(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewEntriesRepoWithConn(conn)
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE daily_entries SET status = 'locked' WHERE id = $1 AND status = 'open';`)
	testCases := []struct {
		Desc   string
		Result pgconn.CommandTag
		Error  error
		Want   bool
	}{
		{Desc: "transitioned", Result: pgxmock.NewResult("UPDATE", 1), Want: true},
		{Desc: "already locked", Result: pgxmock.NewResult("UPDATE", 0), Want: false},
		{Desc: "db error", Error: errors.New("db error")},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			exp := conn.ExpectExec(query).WithArgs(id)
			if tc.Error != nil {
				exp.WillReturnError(tc.Error)
			} else {
				exp.WillReturnResult(tc.Result)
			}
			transitioned, err := repo.MarkLocked(ctx, id)
			if tc.Error != nil {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.Want, transitioned)
		})
	}
	assert.NoError(t, conn.ExpectationsWereMet())
}
