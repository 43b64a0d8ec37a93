package domain

import "time"

// Clock supplies the current instant so status and pricing decisions can be
// pinned in tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }
