package deactivate_blackout

import (
	"context"
)

type AvailabilityService interface {
	DeactivateBlackout(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
