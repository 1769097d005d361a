package timezone

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ramadan/internal/error_values"
	"github.com/limbo/ramadan/internal/observability"
	"github.com/limbo/ramadan/pkg/entity"
)

const DefaultZone = "UTC"

type Resolver struct {
	fallback string
	cache    sync.Map
}

// NewResolver returns a resolver that falls back to fallback (UTC when empty or invalid).
func NewResolver(fallback string) *Resolver {
	r := &Resolver{fallback: DefaultZone}
	if fallback != "" {
		if _, err := r.Load(fallback); err == nil {
			r.fallback = fallback
		} else {
			slog.Warn("invalid fallback timezone, using UTC", slog.String("zone", fallback))
		}
	}
	return r
}

func (r *Resolver) Fallback() string {
	return r.fallback
}

// Load returns the location for an IANA zone name.
func (r *Resolver) Load(name string) (*time.Location, error) {
	if cached, ok := r.cache.Load(name); ok {
		return cached.(*time.Location), nil
	}
	// "Local" depends on the host, and "" silently means UTC
	if name == "" || strings.EqualFold(name, "local") {
		return nil, fmt.Errorf("%w: %q", errorvalues.ErrInvalidTimezone, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errorvalues.ErrInvalidTimezone, name)
	}
	r.cache.Store(name, loc)
	return loc, nil
}

// Resolve picks the zone to snapshot onto a new entry. A manual setting always
// wins; in auto mode the client hint is preferred over the last stored zone.
// With nothing to go on the fallback zone is returned without error.
func (r *Resolver) Resolve(user *entity.User, hint string) (string, error) {
	zone := pick(user, strings.TrimSpace(hint))
	if zone == "" {
		return r.fallback, nil
	}
	if _, err := r.Load(zone); err != nil {
		return "", err
	}
	return zone, nil
}

// ResolveOrFallback never fails: an invalid zone is replaced by the fallback
// zone and the error is returned as a warning. Nothing is logged or counted
// here, callers report the fallback once it was snapshotted.
func (r *Resolver) ResolveOrFallback(user *entity.User, hint string) (string, error) {
	zone, err := r.Resolve(user, hint)
	if err != nil {
		return r.fallback, err
	}
	return zone, nil
}

// ReportFallback records that the fallback zone was persisted in place of an
// unresolvable one.
func (r *Resolver) ReportFallback(uid uuid.UUID, cause error) {
	slog.Warn("timezone resolution failed, falling back",
		slog.String("uid", uid.String()),
		slog.String("fallback", r.fallback),
		slog.String("error", cause.Error()),
	)
	observability.RecordTimezoneFallback()
}

func pick(user *entity.User, hint string) string {
	if user == nil {
		return hint
	}
	if user.TimezoneSource == entity.TimezoneSourceManual && user.TimezoneIANA != "" {
		return user.TimezoneIANA
	}
	if hint != "" {
		return hint
	}
	return user.TimezoneIANA
}

// LocalDate returns the calendar date of instant in loc, as UTC midnight.
func LocalDate(instant time.Time, loc *time.Location) time.Time {
	local := instant.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// NextLocalMidnight returns the UTC instant at which the local day of date ends in loc.
func NextLocalMidnight(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day()+1, 0, 0, 0, 0, loc).UTC()
}
