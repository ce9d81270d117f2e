package util

import "time"

// Clock : источник текущего времени, подменяется в тестах
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
