package clock

import "time"

// Clock is the only source of "now" for the engine.
type Clock interface {
	NowUTC() time.Time
}

type System struct{}

func (System) NowUTC() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant. Tests move it with Set.
type Fixed struct {
	At time.Time
}

func (f *Fixed) NowUTC() time.Time {
	return f.At.UTC()
}

func (f *Fixed) Set(t time.Time) {
	f.At = t
}
