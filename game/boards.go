package game

import (
	"fmt"
	"os"
)

const (
	ClassicBoard = "classic"
	GridBoard    = "grid"
)

// BoardTypes lists the names accepted by NewBoardOfType.
var BoardTypes = []string{ClassicBoard, GridBoard}

// NewBoardOfType builds one of the built-in boards by name.
func NewBoardOfType(kind string) (*Board, error) {
	switch kind {
	case ClassicBoard:
		return NewBoard(ClassicConfig())
	case GridBoard:
		return NewGridBoard(DefaultGridRegionSize, DefaultGridRegionsPerSide)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBoardType, kind)
	}
}

// OpenBoard resolves a board argument: a built-in board name or the path to
// a YAML board file. Grid dimensions apply to the grid board only; zero
// keeps the defaults.
func OpenBoard(name string, gridSize, gridRegions int) (*Board, error) {
	switch name {
	case ClassicBoard:
		return NewBoardOfType(name)
	case GridBoard:
		if gridSize == 0 {
			gridSize = DefaultGridRegionSize
		}
		if gridRegions == 0 {
			gridRegions = DefaultGridRegionsPerSide
		}
		return NewGridBoard(gridSize, gridRegions)
	}
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return LoadBoardFile(name)
	}
	return nil, fmt.Errorf("%w: %q is neither %v nor a board file", ErrUnknownBoardType, name, BoardTypes)
}
