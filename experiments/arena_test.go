package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"clisk/game"
	"clisk/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

func randomSpecs(names ...string) []player.Spec {
	specs := make([]player.Spec, len(names))
	for i, name := range names {
		specs[i] = player.Spec{Name: name, Type: player.RandomType}
	}
	return specs
}

func TestRunArena(t *testing.T) {
	t.Run("playing and storing games", func(t *testing.T) {
		out := t.TempDir()

		records, err := RunArena(ArenaConfig{
			Board:   game.GridBoard,
			Players: randomSpecs("ann", "bob"),
			Games:   3,
			Seed:    10,
			OutDir:  out,
		})

		require.NoError(t, err)
		require.Len(t, records, 3)
		for i, r := range records {
			require.Equal(t, int64(10+i), r.Seed)
			require.Equal(t, []string{"ann", "bob"}, r.Players)
			require.NotEmpty(t, r.ID)
			require.Greater(t, r.Turns, 0)
			if r.Winner != "" {
				require.Contains(t, []string{"ann", "bob"}, r.Winner)
			}
		}

		entries, err := os.ReadDir(out)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.FileExists(t, filepath.Join(out, entries[0].Name(), "setup.yaml"))
		require.FileExists(t, filepath.Join(out, entries[0].Name(), "game_records.csv"))
	})

	t.Run("reproducing games from their seed", func(t *testing.T) {
		cfg := ArenaConfig{Board: game.GridBoard, Players: randomSpecs("ann", "bob", "cat"), Games: 2, Seed: 4}

		first, err := RunArena(cfg)
		require.NoError(t, err)
		second, err := RunArena(cfg)
		require.NoError(t, err)

		for i := range first {
			require.Equal(t, first[i].Winner, second[i].Winner)
			require.Equal(t, first[i].Turns, second[i].Turns)
			require.Equal(t, first[i].Battles, second[i].Battles)
		}
	})

	t.Run("rejecting interactive players", func(t *testing.T) {
		_, err := RunArena(ArenaConfig{
			Board:   game.GridBoard,
			Players: []player.Spec{{Name: "ann", Type: player.RandomType}, {Name: "bob", Type: player.HumanType}},
			Games:   1,
		})
		require.ErrorIs(t, err, player.ErrInvalidPlayerConfig)
	})

	t.Run("rejecting bad configurations", func(t *testing.T) {
		_, err := RunArena(ArenaConfig{Board: game.GridBoard, Players: randomSpecs("ann"), Games: 1})
		require.ErrorIs(t, err, player.ErrInvalidPlayerConfig)

		_, err = RunArena(ArenaConfig{Board: game.GridBoard, Players: randomSpecs("ann", "bob")})
		require.ErrorIs(t, err, player.ErrInvalidPlayerConfig, "No games")

		_, err = RunArena(ArenaConfig{Board: "hex", Players: randomSpecs("ann", "bob"), Games: 1})
		require.ErrorIs(t, err, game.ErrUnknownBoardType)

		_, err = RunArena(ArenaConfig{Board: game.GridBoard, Players: []player.Spec{{Name: "ann", Type: "robot"}, {Name: "bob", Type: player.RandomType}}, Games: 1})
		require.ErrorIs(t, err, player.ErrUnknownStrategyType)
	})
}
