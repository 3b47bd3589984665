package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Dispatch and computation errors
	ErrUnsupportedStatistic = errors.New("unsupported statistic")
	ErrZeroParentCount      = errors.New("parent population has zero events")
	ErrNonPositiveValue     = errors.New("non-positive value in geometric mean")
	ErrNoEvents             = errors.New("no events")

	// Input errors
	ErrMissingPopulation = errors.New("population not found")
	ErrMissingSample     = errors.New("sample not found")
	ErrMissingChannel    = errors.New("channel not found")
	ErrInvalidTransform  = errors.New("invalid transform")
	ErrInvalidGate       = errors.New("invalid gate")
	ErrInvalidSample     = errors.New("invalid sample data")
)

// Error constructors with context
func NewUnsupportedStatisticError(name string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedStatistic, name)
}

func NewMissingPopulationError(sample, alias string) error {
	return fmt.Errorf("%w: %q in sample %q", ErrMissingPopulation, alias, sample)
}

func NewMissingChannelError(sample, channel string) error {
	return fmt.Errorf("%w: %q in sample %q", ErrMissingChannel, channel, sample)
}

// Error checking helpers
func IsMissing(err error) bool {
	return errors.Is(err, ErrMissingPopulation) ||
		errors.Is(err, ErrMissingSample) ||
		errors.Is(err, ErrMissingChannel)
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidTransform) ||
		errors.Is(err, ErrInvalidGate) ||
		errors.Is(err, ErrInvalidSample)
}
