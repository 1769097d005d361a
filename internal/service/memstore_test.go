package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/pkg/entity"
)

// memStore keeps every table in memory behind one mutex and enforces the same
// unique keys and open-entry guards as the Postgres schema.
type memStore struct {
	mu            sync.Mutex
	users         map[uuid.UUID]entity.User
	entries       map[uuid.UUID]entity.DailyEntry
	fields        map[uuid.UUID]map[string]entity.DailyEntryField
	challenges    map[uuid.UUID]entity.Challenge
	periods       map[uuid.UUID]entity.ChallengePeriod
	progress      map[uuid.UUID]map[int64]entity.ChallengeProgress
	entryInserts  int
	periodInserts int
	// returned once by the next progress upsert
	progressErr error
}

func newMemStore(users ...entity.User) *memStore {
	s := &memStore{
		users:      make(map[uuid.UUID]entity.User),
		entries:    make(map[uuid.UUID]entity.DailyEntry),
		fields:     make(map[uuid.UUID]map[string]entity.DailyEntryField),
		challenges: make(map[uuid.UUID]entity.Challenge),
		periods:    make(map[uuid.UUID]entity.ChallengePeriod),
		progress:   make(map[uuid.UUID]map[int64]entity.ChallengeProgress),
	}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

type memUsers struct{ *memStore }
type memEntries struct{ *memStore }
type memFields struct{ *memStore }
type memChallenges struct{ *memStore }
type memPeriods struct{ *memStore }
type memProgress struct{ *memStore }

func (s memUsers) FindByID(_ context.Context, uid uuid.UUID) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[uid]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return &u, nil
}

func (s memUsers) UpdateTimezone(_ context.Context, uid uuid.UUID, zone string, source entity.TimezoneSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[uid]
	if !ok {
		return errorvalues.ErrUserNotFound
	}
	u.TimezoneIANA, u.TimezoneSource = zone, source
	s.users[uid] = u
	return nil
}

func (s memEntries) CreateIfAbsent(_ context.Context, entry *entity.DailyEntry) (*entity.DailyEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[entry.UserID]; !ok {
		return nil, false, errorvalues.ErrUserNotFound
	}
	for _, e := range s.entries {
		if e.UserID == entry.UserID && e.Date.Equal(entry.Date) {
			return &e, false, nil
		}
	}
	stored := *entry
	stored.CreatedAt = time.Now().UTC()
	s.entries[stored.ID] = stored
	s.entryInserts++
	return &stored, true, nil
}

func (s memEntries) GetByID(_ context.Context, id uuid.UUID) (*entity.DailyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, errorvalues.ErrEntryNotFound
	}
	return &e, nil
}

func (s memEntries) GetByUserAndDate(_ context.Context, uid uuid.UUID, date time.Time) (*entity.DailyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.UserID == uid && e.Date.Equal(date) {
			return &e, nil
		}
	}
	return nil, errorvalues.ErrEntryNotFound
}

func (s memEntries) MarkLocked(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || e.Status != entity.EntryStatusOpen {
		return false, nil
	}
	e.Status = entity.EntryStatusLocked
	s.entries[id] = e
	return true, nil
}

func (s memFields) ListByEntry(_ context.Context, entryID uuid.UUID) ([]entity.DailyEntryField, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]entity.DailyEntryField, 0, len(s.fields[entryID]))
	for _, f := range s.fields[entryID] {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

func (s memFields) openAt(entryID uuid.UUID, now time.Time) (bool, error) {
	e, ok := s.entries[entryID]
	if !ok {
		return false, errorvalues.ErrEntryNotFound
	}
	return e.Status == entity.EntryStatusOpen && e.LockAtUTC.After(now), nil
}

func (s memFields) UpsertIfOpen(_ context.Context, field *entity.DailyEntryField, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	open, err := s.openAt(field.EntryID, now)
	if err != nil {
		return err
	}
	if !open {
		return errorvalues.ErrEntryLocked
	}
	if s.fields[field.EntryID] == nil {
		s.fields[field.EntryID] = make(map[string]entity.DailyEntryField)
	}
	stored := *field
	stored.UpdatedAt = now
	s.fields[field.EntryID][field.Key] = stored
	return nil
}

func (s memFields) DeleteByEntryIfOpen(_ context.Context, entryID uuid.UUID, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	open, err := s.openAt(entryID, now)
	if err != nil || !open {
		return 0, errorvalues.ErrEntryLocked
	}
	n := int64(len(s.fields[entryID]))
	delete(s.fields, entryID)
	return n, nil
}

func (s memChallenges) Create(_ context.Context, challenge *entity.Challenge) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.challenges {
		if c.UserID == challenge.UserID && c.Title == challenge.Title {
			return uuid.Nil, errorvalues.ErrChallengeExists
		}
	}
	stored := *challenge
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()
	s.challenges[stored.ID] = stored
	return stored.ID, nil
}

func (s memChallenges) GetByID(_ context.Context, id uuid.UUID) (*entity.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.challenges[id]
	if !ok {
		return nil, errorvalues.ErrChallengeNotFound
	}
	return &c, nil
}

func (s memChallenges) ListByUser(_ context.Context, uid uuid.UUID) ([]*entity.Challenge, error) {
	return s.filter(func(c entity.Challenge) bool { return c.UserID == uid }), nil
}

func (s memChallenges) ListActiveByFieldKey(_ context.Context, uid uuid.UUID, key string) ([]*entity.Challenge, error) {
	return s.filter(func(c entity.Challenge) bool {
		return c.UserID == uid && c.IsActive && c.FieldKey == key
	}), nil
}

func (s memChallenges) filter(keep func(entity.Challenge) bool) []*entity.Challenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*entity.Challenge, 0)
	for _, c := range s.challenges {
		if keep(c) {
			c := c
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Title < result[j].Title })
	return result
}

func (s memChallenges) Deactivate(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.challenges[id]
	if !ok {
		return errorvalues.ErrChallengeNotFound
	}
	c.IsActive = false
	s.challenges[id] = c
	for pid, p := range s.periods {
		if p.ChallengeID == id {
			p.IsActive = false
			s.periods[pid] = p
		}
	}
	return nil
}

func (s memPeriods) CreateIfAbsent(_ context.Context, period *entity.ChallengePeriod) (*entity.ChallengePeriod, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.challenges[period.ChallengeID]; !ok {
		return nil, false, errorvalues.ErrChallengeNotFound
	}
	for _, p := range s.periods {
		if p.ChallengeID == period.ChallengeID && p.Scope == period.Scope && p.AnchorKey == period.AnchorKey {
			return &p, false, nil
		}
	}
	stored := *period
	s.periods[stored.ID] = stored
	s.periodInserts++
	return &stored, true, nil
}

func (s memPeriods) GetByID(_ context.Context, id uuid.UUID) (*entity.ChallengePeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.periods[id]
	if !ok {
		return nil, errorvalues.ErrPeriodNotFound
	}
	return &p, nil
}

func (s memPeriods) ListByChallenge(_ context.Context, challengeID uuid.UUID) ([]*entity.ChallengePeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*entity.ChallengePeriod, 0)
	for _, p := range s.periods {
		if p.ChallengeID == challengeID {
			p := p
			result = append(result, &p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartDate.Before(result[j].StartDate) })
	return result, nil
}

func (s memProgress) Upsert(_ context.Context, progress *entity.ChallengeProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.progressErr; err != nil {
		s.progressErr = nil
		return err
	}
	if _, ok := s.periods[progress.PeriodID]; !ok {
		return errorvalues.ErrPeriodNotFound
	}
	if s.progress[progress.PeriodID] == nil {
		s.progress[progress.PeriodID] = make(map[int64]entity.ChallengeProgress)
	}
	stored := *progress
	stored.UpdatedAt = time.Now().UTC()
	s.progress[progress.PeriodID][progress.Date.Unix()] = stored
	return nil
}

func (s memProgress) ListByPeriod(_ context.Context, periodID uuid.UUID) ([]entity.ChallengeProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]entity.ChallengeProgress, 0, len(s.progress[periodID]))
	for _, p := range s.progress[periodID] {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}
