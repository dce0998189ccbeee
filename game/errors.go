package game

import "errors"

// Board errors
var (
	ErrInvalidTroopCount = errors.New("troop count must be non-negative")
	ErrUnknownTerritory  = errors.New("unknown territory")
	ErrInvalidBoard      = errors.New("invalid board configuration")
	ErrUnknownBoardType  = errors.New("unknown board type")
)
