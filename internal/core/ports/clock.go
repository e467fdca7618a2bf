package ports

import "time"

// Clock and IDGenerator are injected so tests can supply fixed times
// and predictable ids.
type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID() string
}
