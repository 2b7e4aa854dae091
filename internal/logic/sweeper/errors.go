package sweeper

import "errors"

var (
	ErrNotReady          = errors.New("sweeper is not ready")
	ErrScheduleExhausted = errors.New("sweep schedule has no next occurrence")
	ErrSweepOverdue      = errors.New("sweep is overdue")
)
