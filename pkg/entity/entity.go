package entity

import (
	"time"

	"github.com/google/uuid"
)

type TimezoneSource string

const (
	TimezoneSourceAuto   TimezoneSource = "auto"
	TimezoneSourceManual TimezoneSource = "manual"
)

// User is the identity record the engine consumes. Only timezone settings are owned here.
type User struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	TimezoneIANA   string         `json:"timezone_iana"`
	TimezoneSource TimezoneSource `json:"timezone_source"`
}

type EntryStatus string

const (
	EntryStatusOpen   EntryStatus = "open"
	EntryStatusLocked EntryStatus = "locked"
)

// DailyEntry is one user's record for one Gregorian calendar date.
// LockAtUTC is fixed at creation; Status only moves open -> locked.
type DailyEntry struct {
	ID         uuid.UUID   `json:"id"`
	UserID     uuid.UUID   `json:"uid"`
	Date       time.Time   `json:"date"`
	HijriYear  int         `json:"hijri_year"`
	HijriMonth int         `json:"hijri_month"`
	HijriDay   int         `json:"hijri_day"`
	Timezone   string      `json:"timezone"`
	LockAtUTC  time.Time   `json:"lock_at_utc"`
	Status     EntryStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

func (e *DailyEntry) IsLocked() bool {
	return e.Status == EntryStatusLocked
}

type FieldType string

const (
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeText     FieldType = "text"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeTextarea FieldType = "textarea"
)

// FieldValue is the type-tagged value of a field. Only the member matching
// the field type is meaningful.
type FieldValue struct {
	Checked  bool     `json:"checked,omitempty"`
	Text     string   `json:"text,omitempty"`
	Selected []string `json:"selected,omitempty"`
}

type DailyEntryField struct {
	ID                     int64      `json:"-"`
	EntryID                uuid.UUID  `json:"entry_id"`
	Key                    string     `json:"key"`
	Type                   FieldType  `json:"type"`
	Value                  FieldValue `json:"value"`
	CountsTowardCompletion bool       `json:"counts_toward_completion"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

type ChallengeScope string

const (
	ScopeDaily   ChallengeScope = "daily"
	ScopeWeekly  ChallengeScope = "weekly"
	ScopeMonthly ChallengeScope = "monthly"
)

type Challenge struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"uid"`
	Title     string         `json:"title"`
	Scope     ChallengeScope `json:"scope"`
	FieldKey  string         `json:"field_key,omitempty"`
	StartDate time.Time      `json:"start_date"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
}

// ChallengePeriod is one materialized recurrence of a challenge. Start and end
// dates are the Gregorian equivalents of the Hijri anchor, both inclusive.
type ChallengePeriod struct {
	ID          uuid.UUID      `json:"id"`
	ChallengeID uuid.UUID      `json:"challenge_id"`
	Scope       ChallengeScope `json:"scope"`
	AnchorKey   string         `json:"anchor"`
	HijriYear   int            `json:"hijri_year"`
	HijriMonth  *int           `json:"hijri_month,omitempty"`
	WeekIndex   *int           `json:"hijri_week_index,omitempty"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	IsActive    bool           `json:"is_active"`
}

// Contains reports whether date (a calendar date at UTC midnight) is inside the period.
func (p *ChallengePeriod) Contains(date time.Time) bool {
	return !date.Before(p.StartDate) && !date.After(p.EndDate)
}

// Days returns the number of calendar days the period spans.
func (p *ChallengePeriod) Days() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

type ChallengeProgress struct {
	ID        int64     `json:"-"`
	PeriodID  uuid.UUID `json:"period_id"`
	Date      time.Time `json:"date"`
	Value     float64   `json:"value"`
	Notes     string    `json:"notes,omitempty"`
	Completed bool      `json:"completed"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PeriodStatus struct {
	PeriodID      uuid.UUID `json:"period_id"`
	TotalDays     int       `json:"total_days"`
	CompletedDays int       `json:"completed_days"`
	Completion    float64   `json:"completion"`
	Streak        int       `json:"streak"`
	Completed     bool      `json:"completed"`
}
