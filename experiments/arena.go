package experiments

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"clisk/engine"
	"clisk/experiments/metrics"
	"clisk/game"
	"clisk/meta"
	"clisk/player"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ArenaConfig describes a series of games between scripted players.
type ArenaConfig struct {
	Board       string // Built-in board name or path to a board file
	GridSize    int
	GridRegions int
	Players     []player.Spec
	Games       int
	Seed        int64 // Game i is seeded with Seed+i
	MaxTurns    int   // Zero means meta.MAX_TURNS
	OutDir      string
}

// RunArena plays cfg.Games games one after the other and returns a record
// of each. Games that hit the turn cap are recorded without a winner.
// Results are written to cfg.OutDir when it is set.
func RunArena(cfg ArenaConfig) ([]metrics.GameMetric, error) {
	if err := player.ValidateSpecs(cfg.Players); err != nil {
		return nil, err
	}
	for _, spec := range cfg.Players {
		if player.IsInteractive(spec.Type) {
			return nil, fmt.Errorf("%w: %s cannot play in the arena", player.ErrInvalidPlayerConfig, spec)
		}
	}
	if cfg.Games < 1 {
		return nil, fmt.Errorf("%w: arena needs at least one game, got %d", player.ErrInvalidPlayerConfig, cfg.Games)
	}
	if cfg.MaxTurns == 0 {
		cfg.MaxTurns = meta.MAX_TURNS
	}

	names := make([]string, len(cfg.Players))
	for i, spec := range cfg.Players {
		names[i] = spec.String()
	}

	log.Info().Msgf("starting arena of %d games on %s between %v...", cfg.Games, cfg.Board, names)
	start := time.Now()

	records := make([]metrics.GameMetric, 0, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + int64(i)
		log.Info().Msgf("starting game %d of %d (seed %d)...", i+1, cfg.Games, seed)

		record, err := runGame(cfg, seed)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}
		records = append(records, record)

		if record.Winner == "" {
			log.Info().Msgf("game %d ended without a winner after %d turns", i+1, record.Turns)
		} else {
			log.Info().Msgf("completed game %d with winner: %s", i+1, record.Winner)
		}
	}
	end := time.Now()

	summarize(records, end.Sub(start))

	if cfg.OutDir == "" {
		return records, nil
	}
	writer, err := metrics.NewWriter(cfg.OutDir)
	if err != nil {
		return nil, err
	}
	err = writer.WriteSetup(metrics.Setup{
		Board:     cfg.Board,
		Players:   names,
		Games:     cfg.Games,
		Seed:      cfg.Seed,
		MaxTurns:  cfg.MaxTurns,
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	})
	if err != nil {
		return nil, err
	}
	log.Info().Msg("stored arena setup")

	if err := writer.WriteGameRecords(records); err != nil {
		return nil, err
	}
	log.Info().Msgf("stored game records in %s", writer.Dir())
	return records, nil
}

// runGame plays one game with its own board and random stream.
func runGame(cfg ArenaConfig, seed int64) (metrics.GameMetric, error) {
	board, err := game.OpenBoard(cfg.Board, cfg.GridSize, cfg.GridRegions)
	if err != nil {
		return metrics.GameMetric{}, err
	}
	rng := game.NewRand(seed)
	players, err := player.NewAll(cfg.Players, rng, nil)
	if err != nil {
		return metrics.GameMetric{}, err
	}

	id := uuid.New().String()
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	g, err := engine.NewGame(players, board, rng,
		engine.WithID(id),
		engine.WithMaxTurns(cfg.MaxTurns),
		engine.WithCollector(metrics.NewCollector(id, seed, board.Name, names)),
	)
	if err != nil {
		return metrics.GameMetric{}, err
	}

	if _, err := g.Play(); err != nil && !errors.Is(err, engine.ErrTurnLimit) {
		return metrics.GameMetric{}, err
	}
	return g.Result(), nil
}

func summarize(records []metrics.GameMetric, elapsed time.Duration) {
	wins := make(map[string]int)
	turns, battles := 0, 0
	for _, r := range records {
		wins[r.Winner]++
		turns += r.Turns
		battles += r.Battles
	}

	log.Info().Msgf("played %s games (%s turns, %s battles) in %s",
		humanize.Comma(int64(len(records))), humanize.Comma(int64(turns)), humanize.Comma(int64(battles)), elapsed.Round(time.Millisecond))

	winners := make([]string, 0, len(wins))
	for w := range wins {
		winners = append(winners, w)
	}
	sort.Slice(winners, func(i, j int) bool {
		if wins[winners[i]] != wins[winners[j]] {
			return wins[winners[i]] > wins[winners[j]]
		}
		return winners[i] < winners[j]
	})
	for _, w := range winners {
		share := float64(wins[w]) / float64(len(records)) * 100
		name := w
		if name == "" {
			name = "(no winner)"
		}
		log.Info().Msgf("%s won %s of %d games (%s%%)", name, humanize.Comma(int64(wins[w])), len(records), humanize.FormatFloat("#.#", share))
	}
}
