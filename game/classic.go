package game

import (
	_ "embed"
	"fmt"
)

//go:embed data/classic.yaml
var classicData []byte

// ClassicConfig returns the 42-territory world map.
func ClassicConfig() *BoardConfig {
	cfg, err := ParseBoardConfig(classicData)
	if err != nil {
		panic(fmt.Sprintf("embedded classic board: %v", err))
	}
	return cfg
}
