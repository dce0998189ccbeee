package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TerritoryConfig describes one node of the board graph.
type TerritoryConfig struct {
	Name string     `yaml:"name"`
	Pos  [2]float64 `yaml:"pos"` // Layout hint in [0,1]x[0,1], only used for display
}

// RegionConfig describes a named group of territories and its bonus.
type RegionConfig struct {
	Name        string   `yaml:"name"`
	Value       int      `yaml:"value"`
	Territories []string `yaml:"territories"`
}

// BoardConfig is the static description of a board: nodes, undirected edges
// and regions.
type BoardConfig struct {
	Name        string            `yaml:"name"`
	Territories []TerritoryConfig `yaml:"territories"`
	Edges       [][2]string       `yaml:"edges"`
	Regions     []RegionConfig    `yaml:"regions"`
}

// ParseBoardConfig decodes a YAML board description.
func ParseBoardConfig(data []byte) (*BoardConfig, error) {
	var cfg BoardConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse board config: %w", err)
	}
	return &cfg, nil
}

// LoadBoardFile reads a YAML board description from disk and builds the board.
func LoadBoardFile(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}
	cfg, err := ParseBoardConfig(data)
	if err != nil {
		return nil, err
	}
	return NewBoard(cfg)
}

// NewBoard validates cfg and builds a board with every territory unowned and
// empty. The adjacency index is built once here.
func NewBoard(cfg *BoardConfig) (*Board, error) {
	if cfg == nil || len(cfg.Territories) == 0 {
		return nil, fmt.Errorf("%w: no territories", ErrInvalidBoard)
	}

	b := &Board{
		Name:  cfg.Name,
		index: make(map[string]*Territory, len(cfg.Territories)),
	}

	for _, tc := range cfg.Territories {
		if tc.Name == "" {
			return nil, fmt.Errorf("%w: territory without a name", ErrInvalidBoard)
		}
		if _, ok := b.index[tc.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate territory %q", ErrInvalidBoard, tc.Name)
		}
		t := &Territory{Name: tc.Name, Pos: tc.Pos}
		b.territories = append(b.territories, t)
		b.index[t.Name] = t
	}

	for _, edge := range cfg.Edges {
		if err := b.addBorder(edge[0], edge[1]); err != nil {
			return nil, err
		}
	}

	for _, rc := range cfg.Regions {
		if rc.Value < 0 {
			return nil, fmt.Errorf("%w: region %q has negative value %d", ErrInvalidBoard, rc.Name, rc.Value)
		}
		if len(rc.Territories) == 0 {
			return nil, fmt.Errorf("%w: region %q is empty", ErrInvalidBoard, rc.Name)
		}
		for _, name := range rc.Territories {
			if _, ok := b.index[name]; !ok {
				return nil, fmt.Errorf("%w: region %q references %q: %w", ErrInvalidBoard, rc.Name, name, ErrUnknownTerritory)
			}
		}
		b.regions = append(b.regions, Region{
			Name:        rc.Name,
			Value:       rc.Value,
			Territories: append([]string(nil), rc.Territories...),
		})
	}

	return b, nil
}

// addBorder adds a bidirectional border between two territories.
func (b *Board) addBorder(name1, name2 string) error {
	t1, ok1 := b.index[name1]
	t2, ok2 := b.index[name2]
	if !ok1 || !ok2 {
		return fmt.Errorf("%w: edge %q-%q: %w", ErrInvalidBoard, name1, name2, ErrUnknownTerritory)
	}
	if t1 == t2 {
		return fmt.Errorf("%w: territory %q borders itself", ErrInvalidBoard, name1)
	}
	if !contains(t1.Adjacent, name2) {
		t1.Adjacent = append(t1.Adjacent, name2)
	}
	if !contains(t2.Adjacent, name1) {
		t2.Adjacent = append(t2.Adjacent, name1)
	}
	return nil
}

// contains checks if a slice contains a specific item. (avoid duplicate borders)
func contains(slice []string, item string) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
