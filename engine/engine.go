package engine

import (
	"errors"

	"clisk/experiments/metrics"
	"clisk/game"

	"github.com/rs/zerolog"
)

var (
	ErrIllegalDecision = errors.New("illegal decision")
	ErrTurnLimit       = errors.New("turn limit reached")
)

type Engine interface {
	// Play runs turns until one player owns every territory
	Play() (winner string, err error)
}

type Option func(g *Game)

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithMaxTurns stops the game with ErrTurnLimit after turns player turns.
// Zero means no limit.
func WithMaxTurns(turns int) Option {
	return func(g *Game) {
		if turns > 0 {
			g.maxTurns = turns
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(g *Game) {
		if collector != nil {
			g.metrics = collector
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(g *Game) {
		if rules != nil {
			g.rules = rules
		}
	}
}

func WithID(id string) Option {
	return func(g *Game) {
		if id != "" {
			g.ID = id
		}
	}
}
