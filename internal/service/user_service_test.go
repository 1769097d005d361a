package service_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/internal/repository"
	"github.com/limbo/ramadan/internal/service"
	"github.com/limbo/ramadan/internal/timezone"
	"github.com/limbo/ramadan/pkg/clock"
	"github.com/limbo/ramadan/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestEngineIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	dbCfg := setupTestDB(t)
	ctx := context.Background()
	pool, err := repository.Connect(ctx, dbCfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	uid := uuid.New()
	_, err = pool.Exec(ctx, `INSERT INTO users (id, name, timezone_iana, timezone_source) VALUES ($1, $2, $3, $4);`,
		uid, "test_user", "Europe/Istanbul", entity.TimezoneSourceManual)
	require.NoError(t, err)

	usersRepo := repository.NewUsersRepoWithConn(pool)
	challengesRepo := repository.NewChallengesRepoWithConn(pool)
	periodsRepo := repository.NewPeriodsRepoWithConn(pool)
	clk := &clock.Fixed{At: time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)}
	resolver := timezone.NewResolver("UTC")
	challenges := service.NewChallengesService(usersRepo, challengesRepo, periodsRepo, resolver, clk)
	progress := service.NewProgressService(challengesRepo, periodsRepo, repository.NewProgressRepoWithConn(pool), challenges)
	entries := service.NewEntriesService(usersRepo, repository.NewEntriesRepoWithConn(pool), repository.NewFieldsRepoWithConn(pool), resolver, clk, progress)
	users := service.NewUserService(usersRepo)

	var entryID uuid.UUID
	t.Run("concurrent first reads create one entry", func(t *testing.T) {
		const callers = 8
		ids := make([]uuid.UUID, callers)
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				view, err := entries.GetToday(ctx, uid, "")
				if assert.NoError(t, err) {
					ids[i] = view.Entry.ID
				}
			}(i)
		}
		wg.Wait()
		for _, id := range ids {
			assert.Equal(t, ids[0], id)
		}
		entryID = ids[0]
	})
	t.Run("entry snapshot", func(t *testing.T) {
		view, err := entries.GetEntry(ctx, uid, entryID)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), view.Entry.Date)
		assert.True(t, time.Date(2024, 3, 11, 21, 0, 0, 0, time.UTC).Equal(view.Entry.LockAtUTC))
		assert.Equal(t, 1445, view.Entry.HijriYear)
		assert.Equal(t, 9, view.Entry.HijriMonth)
		assert.Equal(t, 1, view.Entry.HijriDay)
	})
	var challenge *entity.Challenge
	t.Run("challenge bound to field", func(t *testing.T) {
		challenge, err = challenges.CreateChallenge(ctx, uid, &service.CreateChallengeRequest{
			Title:    "Fasting",
			Scope:    entity.ScopeMonthly,
			FieldKey: "fasting",
		})
		require.NoError(t, err)
		_, err = entries.SaveField(ctx, uid, entryID, &service.SaveFieldRequest{
			Key:   "fasting",
			Type:  entity.FieldTypeCheckbox,
			Value: entity.FieldValue{Checked: true},
		})
		require.NoError(t, err)
		periods, err := challenges.ListPeriods(ctx, uid, challenge.ID)
		require.NoError(t, err)
		require.Len(t, periods, 1)
		status, err := progress.PeriodStatusFor(ctx, uid, periods[0].ID)
		require.NoError(t, err)
		assert.Equal(t, 1, status.CompletedDays)
		assert.Equal(t, 1, status.Streak)
	})
	t.Run("field values survive round trip", func(t *testing.T) {
		_, err := entries.SaveField(ctx, uid, entryID, &service.SaveFieldRequest{
			Key:   "taraweeh",
			Type:  entity.FieldTypeRadio,
			Value: entity.FieldValue{Selected: []string{"mosque"}},
		})
		require.NoError(t, err)
		view, err := entries.GetEntry(ctx, uid, entryID)
		require.NoError(t, err)
		require.Len(t, view.Fields, 2)
		assert.Equal(t, []string{"mosque"}, view.Fields[1].Value.Selected)
	})
	t.Run("timezone update validated", func(t *testing.T) {
		_, err := users.UpdateTimezone(ctx, uid, &service.UpdateTimezoneRequest{Zone: "Not/AZone", Source: entity.TimezoneSourceManual})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTimezone)
		user, err := users.UpdateTimezone(ctx, uid, &service.UpdateTimezoneRequest{Zone: "Asia/Jakarta", Source: entity.TimezoneSourceManual})
		require.NoError(t, err)
		assert.Equal(t, "Asia/Jakarta", user.TimezoneIANA)
	})
	t.Run("writes rejected after lock", func(t *testing.T) {
		clk.Set(time.Date(2024, 3, 11, 21, 0, 0, 0, time.UTC))
		_, err := entries.SaveField(ctx, uid, entryID, &service.SaveFieldRequest{
			Key:  "fasting",
			Type: entity.FieldTypeCheckbox,
		})
		assert.ErrorIs(t, err, errorvalues.ErrEntryLocked)
		assert.ErrorIs(t, entries.ResetDay(ctx, uid, entryID), errorvalues.ErrEntryLocked)
		view, err := entries.GetEntry(ctx, uid, entryID)
		require.NoError(t, err)
		assert.Equal(t, entity.EntryStatusLocked, view.Entry.Status)
	})
	t.Run("deactivation", func(t *testing.T) {
		require.NoError(t, challenges.DeactivateChallenge(ctx, uid, challenge.ID))
		periods, err := challenges.ListPeriods(ctx, uid, challenge.ID)
		require.NoError(t, err)
		for _, p := range periods {
			assert.False(t, p.IsActive)
		}
	})
}

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("ramadan"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
