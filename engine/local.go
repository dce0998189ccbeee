package engine

import (
	"fmt"

	"clisk/experiments/metrics"
	"clisk/game"
	"clisk/meta"
	"clisk/player"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Game runs a match between players on a board. It is the only writer of the
// board; strategies only read it.
type Game struct {
	ID      string
	Players []*player.Player // Turn order
	Board   *game.Board

	rng      game.Rand
	rules    game.Rules
	logger   zerolog.Logger
	metrics  metrics.Collector
	maxTurns int
	turns    int
	result   metrics.GameMetric
}

var _ Engine = (*Game)(nil)

// NewGame seats players around board and deals the territories and starting
// troops at random. rng must be the stream the players' strategies draw from
// for a seed to reproduce the game.
func NewGame(players []*player.Player, board *game.Board, rng game.Rand, options ...Option) (*Game, error) {
	specs := make([]player.Spec, len(players))
	for i, p := range players {
		specs[i] = player.Spec{Name: p.Name, Type: p.Type}
	}
	if err := player.ValidateSpecs(specs); err != nil {
		return nil, err
	}
	if n := len(board.Territories()); len(players) > n {
		return nil, fmt.Errorf("%w: %d players on a board of %d territories", player.ErrInvalidPlayerConfig, len(players), n)
	}

	g := &Game{
		ID:      uuid.New().String(),
		Players: players,
		Board:   board,
		rng:     rng,
		rules:   game.NewStandardRules(),
		logger:  log.Logger,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(g)
	}
	g.logger = g.logger.With().Str("game", g.ID).Logger()

	if err := g.deal(); err != nil {
		return nil, err
	}
	return g, nil
}

// deal shuffles an even share of territories to every player, one troop
// each, then drops the rest of each player's starting troops one by one on
// random territories they own.
func (g *Game) deal() error {
	territories := g.Board.Territories()
	numTerritories := len(territories)
	numPlayers := len(g.Players)

	assignment := make([]string, 0, numTerritories)
	for _, p := range g.Players {
		for i := 0; i < numTerritories/numPlayers; i++ {
			assignment = append(assignment, p.Name)
		}
	}
	for _, p := range g.Players {
		if len(assignment) == numTerritories {
			break
		}
		assignment = append(assignment, p.Name)
	}
	g.rng.Shuffle(len(assignment), func(i, j int) {
		assignment[i], assignment[j] = assignment[j], assignment[i]
	})

	for i, territory := range territories {
		if err := g.Board.Assign(territory, assignment[i]); err != nil {
			return err
		}
		if err := g.Board.SetTroops(territory, 1); err != nil {
			return err
		}
	}

	startingTroops := meta.StartingTroops(numPlayers)
	for _, p := range g.Players {
		owned := g.Board.Territories(p.Name)
		for total := len(owned); total < startingTroops; total++ {
			if err := g.Board.AddTroops(owned[g.rng.Intn(len(owned))], 1); err != nil {
				return err
			}
		}
	}
	return nil
}

// Play runs the main game loop. Game over is checked before every turn.
func (g *Game) Play() (string, error) {
	g.metrics.Start()
	g.logger.Info().Msgf("starting game on %s with %d players", g.Board.Name, len(g.Players))

	for {
		for _, p := range g.Players {
			if winner, over := g.IsGameOver(); over {
				g.finish(winner)
				return winner, nil
			}
			if len(g.Board.Territories(p.Name)) == 0 {
				continue // Eliminated
			}
			if g.maxTurns > 0 && g.turns >= g.maxTurns {
				g.result = g.metrics.Complete("")
				g.logger.Warn().Int("turns", g.turns).Msg("stopped without a winner")
				return "", fmt.Errorf("%w: no winner after %d turns", ErrTurnLimit, g.turns)
			}
			if err := g.Turn(p); err != nil {
				return "", err
			}
		}
	}
}

// Turn plays one full turn of p: reinforce, attack, fortify.
func (g *Game) Turn(p *player.Player) error {
	g.turns++
	g.metrics.AddTurn(p.Name)
	g.logger.Debug().Str("player", p.Name).Int("turn", g.turns).Msg("turn started")

	if err := g.Reinforce(p); err != nil {
		return err
	}
	if err := g.AttackPhase(p); err != nil {
		return err
	}
	return g.FortifyPhase(p)
}

// IsGameOver reports whether a single player owns every territory.
func (g *Game) IsGameOver() (string, bool) {
	numTerritories := len(g.Board.Territories())
	for _, p := range g.Players {
		if len(g.Board.Territories(p.Name)) == numTerritories {
			return p.Name, true
		}
	}
	return "", false
}

func (g *Game) finish(winner string) {
	g.result = g.metrics.Complete(winner)
	g.logger.Info().Str("winner", winner).Int("turns", g.turns).Msgf("player %s wins!", winner)
	g.Board.Draw()
}

// Turns returns the number of player turns played so far.
func (g *Game) Turns() int {
	return g.turns
}

// Result returns what the collector recorded once Play has returned.
func (g *Game) Result() metrics.GameMetric {
	return g.result
}
