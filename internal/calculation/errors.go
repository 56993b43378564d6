package calculation

import "errors"

var (
	// ErrTargetYearOutOfRange is returned when a monthly drill-down is requested outside [1, yearsToGrow].
	ErrTargetYearOutOfRange = errors.New("target year out of range")
	// ErrInvalidHorizon is returned when yearsToGrow is below one.
	ErrInvalidHorizon = errors.New("years to grow must be at least 1")
)
