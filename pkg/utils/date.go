package utils

import "time"

// TruncateToDay remove o componente de hora de uma data, mantendo UTC
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
