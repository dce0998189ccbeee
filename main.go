package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"clisk/engine"
	"clisk/experiments"
	"clisk/game"
	"clisk/player"
	"clisk/render"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// specList collects repeated -p flags.
type specList []player.Spec

func (s *specList) String() string {
	parts := make([]string, len(*s))
	for i, spec := range *s {
		parts[i] = spec.String()
	}
	return strings.Join(parts, ",")
}

func (s *specList) Set(value string) error {
	spec, err := player.ParseSpec(value)
	if err != nil {
		return err
	}
	*s = append(*s, spec)
	return nil
}

// options holds the command-line settings.
type options struct {
	players     specList
	board       string
	seed        int64
	gridSize    int
	gridRegions int
	verbose     bool
	games       int
	outDir      string
}

func newFlagSet(name string, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Var(&opts.players, "p", "Player as name:type, repeatable (types: random, human)")
	fs.StringVar(&opts.board, "b", game.ClassicBoard, "Board: classic, grid or path to a YAML board file")
	fs.Int64Var(&opts.seed, "s", 0, "Random seed")
	fs.IntVar(&opts.gridSize, "grid-size", game.DefaultGridRegionSize, "Grid board: territories per region side")
	fs.IntVar(&opts.gridRegions, "grid-regions", game.DefaultGridRegionsPerSide, "Grid board: regions per board side")
	fs.BoolVar(&opts.verbose, "v", false, "Debug logging")
	fs.IntVar(&opts.games, "games", 0, "Run an arena of this many games between scripted players")
	fs.StringVar(&opts.outDir, "out", "", "Arena output directory")
	return fs
}

func main() {
	var opts options
	fs := newFlagSet(os.Args[0], &opts)
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(1) // The flag set already printed the error and usage
	}
	fail := func(err error) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if isConfigError(err) {
			fs.Usage()
		}
		os.Exit(1)
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if opts.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if opts.games > 0 {
		_, err := experiments.RunArena(experiments.ArenaConfig{
			Board:       opts.board,
			GridSize:    opts.gridSize,
			GridRegions: opts.gridRegions,
			Players:     opts.players,
			Games:       opts.games,
			Seed:        opts.seed,
			OutDir:      opts.outDir,
		})
		if err != nil {
			fail(err)
		}
		return
	}

	if err := play(opts.players, opts.board, opts.gridSize, opts.gridRegions, opts.seed); err != nil {
		fail(err)
	}
}

func play(specs []player.Spec, board string, gridSize, gridRegions int, seed int64) error {
	b, err := game.OpenBoard(board, gridSize, gridRegions)
	if err != nil {
		return err
	}
	b.SetDrawer(render.NewText(os.Stdout, isatty.IsTerminal(os.Stdout.Fd())))

	rng := game.NewRand(seed)
	players, err := player.NewAll(specs, rng, player.NewConsoleInput(os.Stdin, os.Stdout))
	if err != nil {
		return err
	}

	g, err := engine.NewGame(players, b, rng)
	if err != nil {
		return err
	}
	log.Info().Int64("seed", seed).Str("game", g.ID).Msg("game created")

	_, err = g.Play()
	return err
}

func isConfigError(err error) bool {
	return errors.Is(err, player.ErrInvalidPlayerConfig) ||
		errors.Is(err, player.ErrUnknownStrategyType) ||
		errors.Is(err, game.ErrUnknownBoardType) ||
		errors.Is(err, game.ErrInvalidBoard)
}
