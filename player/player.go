package player

import (
	"fmt"
	"strings"

	"clisk/game"
)

const (
	RandomType      = "random"
	HumanType       = "human"
	InteractiveType = "interactive"
)

// Spec is a player as given on the command line.
type Spec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

func (s Spec) String() string {
	return s.Name + ":" + s.Type
}

// ParseSpec parses "name:type".
func ParseSpec(s string) (Spec, error) {
	name, kind, ok := strings.Cut(s, ":")
	name, kind = strings.TrimSpace(name), strings.TrimSpace(kind)
	if !ok || name == "" || kind == "" {
		return Spec{}, fmt.Errorf("%w: expected name:type, got %q", ErrInvalidPlayerConfig, s)
	}
	return Spec{Name: name, Type: kind}, nil
}

// ValidateSpecs requires at least two players with distinct names.
func ValidateSpecs(specs []Spec) error {
	if len(specs) < 2 {
		return fmt.Errorf("%w: at least 2 players are required", ErrInvalidPlayerConfig)
	}
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if seen[s.Name] {
			return fmt.Errorf("%w: player names must all be different (%q)", ErrInvalidPlayerConfig, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// IsInteractive reports whether kind names a strategy that needs a person.
func IsInteractive(kind string) bool {
	return kind == HumanType || kind == InteractiveType
}

// New builds a player from its spec. rng is the game's shared stream; in is
// only used by interactive players and may be nil otherwise.
func New(spec Spec, rng game.Rand, in Input) (*Player, error) {
	var strategy Strategy
	switch {
	case spec.Type == RandomType:
		strategy = NewRandom(spec.Name, rng)
	case IsInteractive(spec.Type):
		if in == nil {
			return nil, fmt.Errorf("%w: %s needs an input", ErrInvalidPlayerConfig, spec)
		}
		strategy = NewInteractive(spec.Name, in)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategyType, spec.Type)
	}
	return &Player{Name: spec.Name, Type: spec.Type, Strategy: strategy}, nil
}

// NewAll validates specs and builds every player.
func NewAll(specs []Spec, rng game.Rand, in Input) ([]*Player, error) {
	if err := ValidateSpecs(specs); err != nil {
		return nil, err
	}
	players := make([]*Player, 0, len(specs))
	for _, spec := range specs {
		p, err := New(spec, rng, in)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}
