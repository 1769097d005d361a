// @title Ramadan API
// @description Daily entries, Hijri challenges and progress for the Ramadan tracker
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/ramadan/internal/api"
	"github.com/limbo/ramadan/internal/repository"
	"github.com/limbo/ramadan/internal/service"
	"github.com/limbo/ramadan/internal/timezone"
	"github.com/limbo/ramadan/pkg/cleanup"
	"github.com/limbo/ramadan/pkg/clock"
	"github.com/limbo/ramadan/pkg/config"
	jwtservice "github.com/limbo/ramadan/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	level := slog.LevelInfo
	if cfg.GetString("DEBUG") == "true" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	pool, err := repository.Connect(ctx, &dbCfg)
	if err != nil {
		log.Fatal(err)
	}

	usersRepo := repository.NewUsersRepoWithConn(pool)
	challengesRepo := repository.NewChallengesRepoWithConn(pool)
	periodsRepo := repository.NewPeriodsRepoWithConn(pool)
	resolver := timezone.NewResolver(cfg.GetStringOr("DEFAULT_TIMEZONE", timezone.DefaultZone))
	clk := clock.System{}

	challengesService := service.NewChallengesService(usersRepo, challengesRepo, periodsRepo, resolver, clk)
	progressService := service.NewProgressService(
		challengesRepo, periodsRepo, repository.NewProgressRepoWithConn(pool), challengesService)
	entriesService := service.NewEntriesService(
		usersRepo,
		repository.NewEntriesRepoWithConn(pool),
		repository.NewFieldsRepoWithConn(pool),
		resolver, clk, progressService,
	)
	serv := api.New(&api.ServicesList{
		UserService:       service.NewUserService(usersRepo),
		EntriesService:    entriesService,
		ChallengesService: challengesService,
		ProgressService:   progressService,
		JwtService:        jwtservice.New(cfg.GetString("JWT_SECRET")),
		RequestTimeout:    cfg.GetDurationOr("REQUEST_TIMEOUT", 10*time.Second),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	}()
	select {
	case err = <-errCh:
		if err != nil {
			slog.Error("server error", slog.String("error", err.Error()))
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	cleanup.CleanUp(shutdownCtx)
}
