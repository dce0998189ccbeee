package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// lineConfig is A-B-C-D with regions left={A,B} and right={C,D}.
func lineConfig() *BoardConfig {
	return &BoardConfig{
		Name: "line",
		Territories: []TerritoryConfig{
			{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"},
		},
		Edges: [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}},
		Regions: []RegionConfig{
			{Name: "left", Value: 2, Territories: []string{"A", "B"}},
			{Name: "right", Value: 3, Territories: []string{"C", "D"}},
		},
	}
}

func newLineBoard(t *testing.T) *Board {
	t.Helper()
	b, err := NewBoard(lineConfig())
	require.NoError(t, err)
	return b
}

// own assigns each territory to an owner with the given troops.
func own(t *testing.T, b *Board, owners map[string]string, troops map[string]int) {
	t.Helper()
	for name, owner := range owners {
		require.NoError(t, b.Assign(name, owner))
	}
	for name, n := range troops {
		require.NoError(t, b.SetTroops(name, n))
	}
}

type recordingDrawer struct {
	snapshots []Snapshot
}

func (d *recordingDrawer) Draw(s Snapshot) {
	d.snapshots = append(d.snapshots, s)
}

func TestNewBoard(t *testing.T) {
	t.Run("building a valid board", func(t *testing.T) {
		b := newLineBoard(t)

		require.Equal(t, "line", b.Name)
		require.Equal(t, []string{"A", "B", "C", "D"}, b.Territories(), "Territories should keep configuration order")
		require.Len(t, b.Regions(), 2)
		for _, name := range b.Territories() {
			require.Equal(t, "", b.Owner(name), "Territories should start unowned")
			require.Equal(t, 0, b.Troops(name), "Territories should start empty")
		}
	})

	t.Run("deduplicating edges", func(t *testing.T) {
		cfg := lineConfig()
		cfg.Edges = append(cfg.Edges, [2]string{"B", "A"}, [2]string{"A", "B"})
		b, err := NewBoard(cfg)
		require.NoError(t, err)

		require.Equal(t, []string{"B"}, b.Neighbors("A"))
		require.Equal(t, []string{"A", "C"}, b.Neighbors("B"))
	})

	invalid := map[string]func(cfg *BoardConfig){
		"no territories":      func(cfg *BoardConfig) { cfg.Territories = nil },
		"unnamed territory":   func(cfg *BoardConfig) { cfg.Territories[0].Name = "" },
		"duplicate territory": func(cfg *BoardConfig) { cfg.Territories[1].Name = "A" },
		"edge to unknown":     func(cfg *BoardConfig) { cfg.Edges = append(cfg.Edges, [2]string{"A", "Z"}) },
		"self loop":           func(cfg *BoardConfig) { cfg.Edges = append(cfg.Edges, [2]string{"C", "C"}) },
		"negative region":     func(cfg *BoardConfig) { cfg.Regions[0].Value = -1 },
		"empty region":        func(cfg *BoardConfig) { cfg.Regions[1].Territories = nil },
		"region with unknown": func(cfg *BoardConfig) { cfg.Regions[1].Territories = []string{"C", "Z"} },
	}
	for name, mutate := range invalid {
		t.Run("rejecting "+name, func(t *testing.T) {
			cfg := lineConfig()
			mutate(cfg)
			_, err := NewBoard(cfg)
			require.ErrorIs(t, err, ErrInvalidBoard)
		})
	}

	t.Run("rejecting a nil config", func(t *testing.T) {
		_, err := NewBoard(nil)
		require.ErrorIs(t, err, ErrInvalidBoard)
	})
}

func TestParseBoardConfig(t *testing.T) {
	data := []byte(`
name: triangle
territories:
  - {name: X, pos: [0, 0]}
  - {name: Y, pos: [1, 0]}
  - {name: Z, pos: [0.5, 1]}
edges:
  - [X, Y]
  - [Y, Z]
  - [Z, X]
regions:
  - name: all
    value: 4
    territories: [X, Y, Z]
`)

	t.Run("parsing yaml", func(t *testing.T) {
		cfg, err := ParseBoardConfig(data)
		require.NoError(t, err)
		require.Equal(t, "triangle", cfg.Name)
		require.Len(t, cfg.Territories, 3)
		require.Equal(t, [2]float64{0.5, 1}, cfg.Territories[2].Pos)
		require.Equal(t, [2]string{"Z", "X"}, cfg.Edges[2])
		require.Equal(t, 4, cfg.Regions[0].Value)
	})

	t.Run("loading a board file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "triangle.yaml")
		require.NoError(t, os.WriteFile(path, data, 0644))

		b, err := LoadBoardFile(path)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"Y", "Z"}, b.Neighbors("X"))
	})

	t.Run("rejecting malformed yaml", func(t *testing.T) {
		_, err := ParseBoardConfig([]byte("territories: {"))
		require.Error(t, err)
	})

	t.Run("missing board file", func(t *testing.T) {
		_, err := LoadBoardFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestBoardQueries(t *testing.T) {
	b := newLineBoard(t)
	own(t, b,
		map[string]string{"A": "ann", "B": "ann", "C": "bob", "D": "ann"},
		map[string]int{"A": 3, "B": 1, "C": 2, "D": 5},
	)

	t.Run("filtering territories by owner", func(t *testing.T) {
		require.Equal(t, []string{"A", "B", "D"}, b.Territories("ann"))
		require.Equal(t, []string{"C"}, b.Territories("bob"))
		require.Empty(t, b.Territories("cat"))
	})

	t.Run("partitioning neighbors", func(t *testing.T) {
		require.Equal(t, []string{"A"}, b.FriendlyNeighbors("B"))
		require.Equal(t, []string{"C"}, b.HostileNeighbors("B"))
		require.Empty(t, b.FriendlyNeighbors("C"))
		require.Equal(t, []string{"B", "D"}, b.HostileNeighbors("C"))
	})

	t.Run("listing legal sources", func(t *testing.T) {
		require.Equal(t, []string{"D"}, b.AttackingTerritories("ann"), "A has no hostile neighbor and B has one troop")
		require.Equal(t, []string{"C"}, b.AttackingTerritories("bob"))
		require.Equal(t, []string{"A"}, b.MovingTerritories("ann"), "D has no friendly neighbor")
		require.Empty(t, b.MovingTerritories("bob"))
	})

	t.Run("listing players", func(t *testing.T) {
		require.Equal(t, []string{"ann", "bob"}, b.Players())
	})

	t.Run("unknown territories", func(t *testing.T) {
		require.False(t, b.Has("Z"))
		require.True(t, b.Has("A"))
		require.Nil(t, b.Neighbors("Z"))
		require.Equal(t, 0, b.Troops("Z"))
		require.Equal(t, "", b.Owner("Z"))
		require.ErrorIs(t, b.SetTroops("Z", 1), ErrUnknownTerritory)
		require.ErrorIs(t, b.Assign("Z", "ann"), ErrUnknownTerritory)
	})
}

func TestSetTroops(t *testing.T) {
	t.Run("rejecting a negative count", func(t *testing.T) {
		b := newLineBoard(t)
		require.NoError(t, b.SetTroops("A", 4))

		err := b.SetTroops("A", -1)

		require.ErrorIs(t, err, ErrInvalidTroopCount)
		require.Equal(t, 4, b.Troops("A"), "Troops should be unchanged")
	})

	t.Run("adding past zero", func(t *testing.T) {
		b := newLineBoard(t)
		require.NoError(t, b.SetTroops("A", 2))

		require.ErrorIs(t, b.AddTroops("A", -3), ErrInvalidTroopCount)
		require.Equal(t, 2, b.Troops("A"), "Troops should be unchanged")
		require.NoError(t, b.AddTroops("A", -2))
		require.Equal(t, 0, b.Troops("A"))
	})
}

func TestNeighborsAreSymmetric(t *testing.T) {
	for _, kind := range BoardTypes {
		t.Run(kind, func(t *testing.T) {
			b, err := NewBoardOfType(kind)
			require.NoError(t, err)

			for _, name := range b.Territories() {
				require.NotEmpty(t, b.Neighbors(name), "%s should have neighbors", name)
				for _, neighbor := range b.Neighbors(name) {
					require.Contains(t, b.Neighbors(neighbor), name, "%s borders %s but not the other way", name, neighbor)
				}
			}
		})
	}
}

func TestQueriesReturnCopies(t *testing.T) {
	b := newLineBoard(t)
	own(t, b,
		map[string]string{"A": "ann", "B": "ann", "C": "bob", "D": "bob"},
		map[string]int{"A": 2, "B": 3, "C": 4, "D": 5},
	)

	neighbors := b.Neighbors("B")
	neighbors[0] = "Z"
	clear(b.Neighbors("C"))
	b.FriendlyNeighbors("A")[0] = "Z"
	b.Territories("ann")[0] = "Z"
	s := b.Snapshot()
	s.Territories[0].Troops = -5
	s.Territories[0].Owner = "bob"

	require.Equal(t, []string{"A", "C"}, b.Neighbors("B"))
	require.Equal(t, []string{"B", "D"}, b.Neighbors("C"))
	require.Equal(t, []string{"B"}, b.Neighbors("A"))
	require.Equal(t, []string{"A", "B"}, b.Territories("ann"))
	require.Equal(t, 2, b.Troops("A"))
	require.Equal(t, "ann", b.Owner("A"))
	for _, name := range b.Territories() {
		for _, neighbor := range b.Neighbors(name) {
			require.Contains(t, b.Neighbors(neighbor), name, "%s borders %s but not the other way", name, neighbor)
		}
	}
}

func TestAttackingTerritoriesProperty(t *testing.T) {
	players := []string{"ann", "bob", "cat"}
	b, err := NewBoardOfType(ClassicBoard)
	require.NoError(t, err)
	rng := NewRand(7)

	for round := 0; round < 50; round++ {
		for _, name := range b.Territories() {
			require.NoError(t, b.Assign(name, players[rng.Intn(len(players))]))
			require.NoError(t, b.SetTroops(name, 1+rng.Intn(4)))
		}

		for _, p := range players {
			attacking := b.AttackingTerritories(p)
			for _, name := range attacking {
				require.Equal(t, p, b.Owner(name))
				require.Greater(t, b.Troops(name), 1, "%s should have more than one troop", name)
				require.NotEmpty(t, b.HostileNeighbors(name), "%s should have a hostile neighbor", name)
			}
			for _, name := range b.Territories(p) {
				if b.Troops(name) > 1 && len(b.HostileNeighbors(name)) > 0 {
					require.Contains(t, attacking, name)
				}
			}
		}
	}
}

func TestRegions(t *testing.T) {
	t.Run("deriving control from territories", func(t *testing.T) {
		b := newLineBoard(t)

		require.Empty(t, b.RegionsControlledBy([]string{"A", "C"}))

		regions := b.RegionsControlledBy([]string{"A", "B", "C"})
		require.Len(t, regions, 1)
		require.Equal(t, "left", regions[0].Name)

		require.Len(t, b.RegionsControlledBy(b.Territories()), 2)
	})

	t.Run("following ownership changes", func(t *testing.T) {
		b := newLineBoard(t)
		own(t, b, map[string]string{"A": "ann", "B": "ann", "C": "bob", "D": "bob"}, nil)
		require.Len(t, b.RegionsOf("ann"), 1)

		require.NoError(t, b.Assign("B", "bob"))

		require.Empty(t, b.RegionsOf("ann"))
		require.Len(t, b.RegionsOf("bob"), 1)
	})

	t.Run("returning copies", func(t *testing.T) {
		b := newLineBoard(t)
		regions := b.Regions()
		regions[0].Territories[0] = "Z"

		require.Equal(t, []string{"A", "B"}, b.Regions()[0].Territories)
	})
}

func TestDraw(t *testing.T) {
	t.Run("drawing without a drawer", func(t *testing.T) {
		b := newLineBoard(t)
		require.NotPanics(t, b.Draw)
	})

	t.Run("handing a snapshot to the drawer", func(t *testing.T) {
		b := newLineBoard(t)
		own(t, b,
			map[string]string{"A": "ann", "B": "ann", "C": "bob", "D": "bob"},
			map[string]int{"A": 1, "B": 2, "C": 3, "D": 4},
		)
		d := &recordingDrawer{}
		b.SetDrawer(d)

		b.Draw()

		require.Len(t, d.snapshots, 1)
		s := d.snapshots[0]
		require.Equal(t, "line", s.Board)
		require.Equal(t, TerritoryState{Name: "C", Owner: "bob", Troops: 3}, s.Territories[2])
		require.Len(t, s.Players, 2)
		require.Equal(t, 7, s.Players[1].Troops)
	})
}
