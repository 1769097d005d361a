package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/internal/observability"
	"github.com/limbo/ramadan/internal/repository"
	"github.com/limbo/ramadan/internal/timezone"
	"github.com/limbo/ramadan/pkg/clock"
	"github.com/limbo/ramadan/pkg/entity"
	"github.com/limbo/ramadan/pkg/hijri"
)

type EntriesService struct {
	usersRepo   repository.UsersRepositoryI
	entriesRepo repository.EntriesRepositoryI
	fieldsRepo  repository.FieldsRepositoryI
	resolver    *timezone.Resolver
	clock       clock.Clock
	// nil disables challenge progress propagation
	syncer CompletionSyncer
}

func NewEntriesService(
	usersRepo repository.UsersRepositoryI,
	entriesRepo repository.EntriesRepositoryI,
	fieldsRepo repository.FieldsRepositoryI,
	resolver *timezone.Resolver,
	clk clock.Clock,
	syncer CompletionSyncer,
) *EntriesService {
	if usersRepo == nil || entriesRepo == nil || fieldsRepo == nil {
		log.Fatal("on entries service provided nil repos")
	}
	if resolver == nil {
		resolver = timezone.NewResolver(timezone.DefaultZone)
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &EntriesService{
		usersRepo:   usersRepo,
		entriesRepo: entriesRepo,
		fieldsRepo:  fieldsRepo,
		resolver:    resolver,
		clock:       clk,
		syncer:      syncer,
	}
}

// EvaluateLock reports the status the entry must have at now. A locked entry
// stays locked regardless of now.
func EvaluateLock(entry *entity.DailyEntry, now time.Time) entity.EntryStatus {
	if entry.Status == entity.EntryStatusLocked || !now.Before(entry.LockAtUTC) {
		return entity.EntryStatusLocked
	}
	return entity.EntryStatusOpen
}

// CountsTowardCompletion derives whether a field value marks the day as done.
func CountsTowardCompletion(fieldType entity.FieldType, value entity.FieldValue) bool {
	switch fieldType {
	case entity.FieldTypeCheckbox:
		return value.Checked
	case entity.FieldTypeRadio:
		for _, option := range value.Selected {
			if strings.TrimSpace(option) != "" {
				return true
			}
		}
		return false
	case entity.FieldTypeText, entity.FieldTypeTextarea:
		return strings.TrimSpace(value.Text) != ""
	}
	return false
}

func (es *EntriesService) Now() time.Time {
	return es.clock.NowUTC()
}

func (es *EntriesService) GetToday(ctx context.Context, uid uuid.UUID, tzHint string) (*EntryView, error) {
	user, err := es.findUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	zone, warnErr := es.resolver.ResolveOrFallback(user, tzHint)
	loc, err := es.resolver.Load(zone)
	if err != nil {
		return nil, errors.New("loading resolved zone error: " + err.Error())
	}
	today := timezone.LocalDate(es.clock.NowUTC(), loc)
	return es.getOrCreate(ctx, uid, today, zone, warnErr)
}

func (es *EntriesService) GetOrCreateEntry(ctx context.Context, uid uuid.UUID, date time.Time, tzHint string) (*EntryView, error) {
	date = civilDate(date)
	if _, err := hijri.ToHijri(date); err != nil {
		return nil, err
	}
	existing, err := es.entriesRepo.GetByUserAndDate(ctx, uid, date)
	if err == nil {
		return es.view(ctx, existing, "")
	}
	if !errors.Is(err, errorvalues.ErrEntryNotFound) {
		return nil, errors.New("repository error: " + err.Error())
	}
	user, err := es.findUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	zone, warnErr := es.resolver.ResolveOrFallback(user, tzHint)
	return es.getOrCreate(ctx, uid, date, zone, warnErr)
}

func (es *EntriesService) GetEntry(ctx context.Context, uid, entryID uuid.UUID) (*EntryView, error) {
	entry, err := es.ownedEntry(ctx, uid, entryID)
	if err != nil {
		return nil, err
	}
	return es.view(ctx, entry, "")
}

func (es *EntriesService) SaveField(ctx context.Context, uid, entryID uuid.UUID, req *SaveFieldRequest) (*entity.DailyEntryField, error) {
	if req == nil {
		return nil, errorvalues.ErrInvalidRequest
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	entry, err := es.ownedEntry(ctx, uid, entryID)
	if err != nil {
		return nil, err
	}
	if entry.IsLocked() {
		return nil, errorvalues.ErrEntryLocked
	}
	field := &entity.DailyEntryField{
		EntryID:                entry.ID,
		Key:                    req.Key,
		Type:                   req.Type,
		Value:                  req.Value,
		CountsTowardCompletion: CountsTowardCompletion(req.Type, req.Value),
	}
	now := es.clock.NowUTC()
	if err := es.fieldsRepo.UpsertIfOpen(ctx, field, now); err != nil {
		if errors.Is(err, errorvalues.ErrEntryLocked) || errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	field.UpdatedAt = now

	// Bound challenges mirror the saved flag after every save, changed or not
	if err := es.syncCompletion(ctx, entry, field.Key, field.CountsTowardCompletion); err != nil {
		return nil, err
	}
	return field, nil
}

func (es *EntriesService) ResetDay(ctx context.Context, uid, entryID uuid.UUID) error {
	entry, err := es.ownedEntry(ctx, uid, entryID)
	if err != nil {
		return err
	}
	if entry.IsLocked() {
		return errorvalues.ErrEntryLocked
	}
	fields, err := es.fieldsRepo.ListByEntry(ctx, entry.ID)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	deleted, err := es.fieldsRepo.DeleteByEntryIfOpen(ctx, entry.ID, es.clock.NowUTC())
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryLocked) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	slog.Debug("entry reset", slog.String("entry_id", entry.ID.String()), slog.Int64("fields", deleted))
	for _, field := range fields {
		if !field.CountsTowardCompletion {
			continue
		}
		if err = es.syncCompletion(ctx, entry, field.Key, false); err != nil {
			return err
		}
	}
	return nil
}

func (es *EntriesService) getOrCreate(ctx context.Context, uid uuid.UUID, date time.Time, zone string, warnErr error) (*EntryView, error) {
	h, err := hijri.ToHijri(date)
	if err != nil {
		return nil, err
	}
	loc, err := es.resolver.Load(zone)
	if err != nil {
		return nil, errors.New("loading resolved zone error: " + err.Error())
	}
	stored, created, err := es.entriesRepo.CreateIfAbsent(ctx, &entity.DailyEntry{
		ID:         uuid.New(),
		UserID:     uid,
		Date:       date,
		HijriYear:  h.Year,
		HijriMonth: h.Month,
		HijriDay:   h.Day,
		Timezone:   zone,
		LockAtUTC:  timezone.NextLocalMidnight(date, loc),
		Status:     entity.EntryStatusOpen,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	warning := ""
	if created {
		observability.RecordEntryCreated()
		slog.Debug("entry created",
			slog.String("uid", uid.String()),
			slog.String("date", date.Format(time.DateOnly)),
			slog.String("timezone", zone),
		)
		if warnErr != nil {
			es.resolver.ReportFallback(uid, warnErr)
			warning = "timezone fallback to " + zone + ": " + warnErr.Error()
		}
	}
	return es.view(ctx, stored, warning)
}

func (es *EntriesService) view(ctx context.Context, entry *entity.DailyEntry, warning string) (*EntryView, error) {
	if err := es.refreshLock(ctx, entry); err != nil {
		return nil, err
	}
	fields, err := es.fieldsRepo.ListByEntry(ctx, entry.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &EntryView{Entry: entry, Fields: fields, Warning: warning}, nil
}

// refreshLock persists the open -> locked transition once the lock instant has
// passed. Concurrent callers may race here, the conditional update lets one win.
func (es *EntriesService) refreshLock(ctx context.Context, entry *entity.DailyEntry) error {
	if entry.IsLocked() || EvaluateLock(entry, es.clock.NowUTC()) == entity.EntryStatusOpen {
		return nil
	}
	transitioned, err := es.entriesRepo.MarkLocked(ctx, entry.ID)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	if transitioned {
		observability.RecordEntryLocked()
		slog.Debug("entry locked", slog.String("entry_id", entry.ID.String()))
	}
	entry.Status = entity.EntryStatusLocked
	return nil
}

func (es *EntriesService) ownedEntry(ctx context.Context, uid, entryID uuid.UUID) (*entity.DailyEntry, error) {
	entry, err := es.entriesRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if entry.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	if err = es.refreshLock(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (es *EntriesService) findUser(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := es.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return user, nil
}

func (es *EntriesService) syncCompletion(ctx context.Context, entry *entity.DailyEntry, key string, completed bool) error {
	if es.syncer == nil {
		return nil
	}
	if err := es.syncer.SyncFieldCompletion(ctx, entry.UserID, entry.Date, key, completed); err != nil {
		return fmt.Errorf("challenge progress sync error: %w", err)
	}
	return nil
}
