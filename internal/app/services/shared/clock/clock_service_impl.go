package clock

import (
	"medibook-service/internal/app/contracts"
	"time"
)

type systemClock struct{}

func NewSystemClock() contracts.Clock {
	return &systemClock{}
}

func (c *systemClock) Now() time.Time {
	return time.Now()
}
