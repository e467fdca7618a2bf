package clock

import (
	"time"

	"video-metadata-service/internal/core/ports"
)

type systemClock struct{}

func NewSystemClock() ports.Clock {
	return &systemClock{}
}

func (c *systemClock) Now() time.Time {
	return time.Now()
}
