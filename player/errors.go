package player

import "errors"

var (
	ErrInvalidPlayerConfig = errors.New("invalid player configuration")
	ErrUnknownStrategyType = errors.New("unknown strategy type")
)
