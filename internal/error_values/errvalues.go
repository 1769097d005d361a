package errorvalues

import "errors"

var (
	ErrUserNotFound   = errors.New("user doesn't exists")
	ErrWrongOwner     = errors.New("resource belongs to another user")
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidRequest = errors.New("invalid request")

	ErrEntryNotFound     = errors.New("daily entry doesn't exist")
	ErrChallengeNotFound = errors.New("challenge doesn't exist")
	ErrPeriodNotFound    = errors.New("challenge period doesn't exist")
	ErrChallengeExists   = errors.New("challenge with such title already exists")

	// Engine error kinds. Lock and period-range errors must reach the caller unchanged.
	ErrCalendarRange   = errors.New("date is outside the supported hijri calendar range")
	ErrInvalidTimezone = errors.New("unknown or invalid IANA timezone")
	ErrEntryLocked     = errors.New("daily entry is locked")
	ErrDateOutOfPeriod = errors.New("date is outside of the challenge period")
)
