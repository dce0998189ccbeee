package game

import "fmt"

const (
	DefaultGridRegionSize     = 2
	DefaultGridRegionsPerSide = 2
)

// GridConfig generates a square grid board made of regionsPerSide x
// regionsPerSide regions, each regionSize x regionSize territories. Territory
// "r-c" borders its four orthogonal neighbors and each region is worth
// regionSize^2 troops.
func GridConfig(regionSize, regionsPerSide int) (*BoardConfig, error) {
	if regionSize < 1 || regionsPerSide < 1 {
		return nil, fmt.Errorf("%w: grid needs positive sizes, got region size %d and %d regions per side",
			ErrInvalidBoard, regionSize, regionsPerSide)
	}
	total := regionSize * regionsPerSide
	cfg := &BoardConfig{Name: fmt.Sprintf("grid-%dx%d", total, total)}

	scale := func(i int) float64 {
		if total == 1 {
			return 0
		}
		return float64(i) / float64(total-1)
	}

	for i := 0; i < regionsPerSide; i++ {
		for j := 0; j < regionsPerSide; j++ {
			region := RegionConfig{
				Name:  fmt.Sprintf("%d-%d", i, j),
				Value: regionSize * regionSize,
			}
			for k := 0; k < regionSize; k++ {
				for l := 0; l < regionSize; l++ {
					row, col := i*regionSize+k, j*regionSize+l
					name := gridName(row, col)
					cfg.Territories = append(cfg.Territories, TerritoryConfig{
						Name: name,
						Pos:  [2]float64{scale(row), scale(col)},
					})
					region.Territories = append(region.Territories, name)
				}
			}
			cfg.Regions = append(cfg.Regions, region)
		}
	}

	for i := 0; i < total; i++ {
		for j := 0; j < total-1; j++ {
			cfg.Edges = append(cfg.Edges, [2]string{gridName(i, j), gridName(i, j+1)})
		}
	}
	for i := 0; i < total-1; i++ {
		for j := 0; j < total; j++ {
			cfg.Edges = append(cfg.Edges, [2]string{gridName(i, j), gridName(i+1, j)})
		}
	}
	return cfg, nil
}

func gridName(row, col int) string {
	return fmt.Sprintf("%d-%d", row, col)
}

// NewGridBoard builds a grid board, see GridConfig.
func NewGridBoard(regionSize, regionsPerSide int) (*Board, error) {
	cfg, err := GridConfig(regionSize, regionsPerSide)
	if err != nil {
		return nil, err
	}
	return NewBoard(cfg)
}
