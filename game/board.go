package game

import "fmt"

// Territory is a node of the board graph. Ownership and troop count live here
// and nowhere else.
type Territory struct {
	Name     string
	Owner    string // Player name, empty while unowned
	Troops   int
	Pos      [2]float64
	Adjacent []string // Names of adjacent territories, in configuration order
}

// Region is a fixed group of territories granting Value bonus troops to a
// player who owns all of them.
type Region struct {
	Name        string
	Value       int
	Territories []string
}

// Board holds the territory graph and its mutable ownership/troop state.
type Board struct {
	Name        string
	territories []*Territory // Configuration order
	index       map[string]*Territory
	regions     []Region
	drawer      Drawer
}

var _ View = (*Board)(nil)

// SetDrawer attaches the display sink used by Draw.
func (b *Board) SetDrawer(d Drawer) {
	b.drawer = d
}

// Territories returns the names of all territories, or only those owned by
// owner when one is given.
func (b *Board) Territories(owner ...string) []string {
	filter := len(owner) > 0
	names := make([]string, 0, len(b.territories))
	for _, t := range b.territories {
		if filter && t.Owner != owner[0] {
			continue
		}
		names = append(names, t.Name)
	}
	return names
}

// Has reports whether name is a territory on the board.
func (b *Board) Has(name string) bool {
	_, ok := b.index[name]
	return ok
}

func (b *Board) territory(name string) (*Territory, error) {
	t, ok := b.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTerritory, name)
	}
	return t, nil
}

// Neighbors returns the territories adjacent to territory.
func (b *Board) Neighbors(territory string) []string {
	t, ok := b.index[territory]
	if !ok {
		return nil
	}
	return append([]string(nil), t.Adjacent...)
}

// FriendlyNeighbors returns the neighbors owned by territory's owner.
func (b *Board) FriendlyNeighbors(territory string) []string {
	return b.neighborsWhere(territory, true)
}

// HostileNeighbors returns the neighbors not owned by territory's owner.
func (b *Board) HostileNeighbors(territory string) []string {
	return b.neighborsWhere(territory, false)
}

func (b *Board) neighborsWhere(territory string, friendly bool) []string {
	t, ok := b.index[territory]
	if !ok {
		return nil
	}
	var neighbors []string
	for _, name := range t.Adjacent {
		if (b.index[name].Owner == t.Owner) == friendly {
			neighbors = append(neighbors, name)
		}
	}
	return neighbors
}

// AttackingTerritories returns the territories owner can attack from: more
// than one troop and at least one hostile neighbor.
func (b *Board) AttackingTerritories(owner string) []string {
	var names []string
	for _, t := range b.territories {
		if t.Owner == owner && t.Troops > 1 && len(b.HostileNeighbors(t.Name)) > 0 {
			names = append(names, t.Name)
		}
	}
	return names
}

// MovingTerritories returns the territories owner can move troops out of:
// more than one troop and at least one friendly neighbor.
func (b *Board) MovingTerritories(owner string) []string {
	var names []string
	for _, t := range b.territories {
		if t.Owner == owner && t.Troops > 1 && len(b.FriendlyNeighbors(t.Name)) > 0 {
			names = append(names, t.Name)
		}
	}
	return names
}

// Troops returns the troop count on territory, 0 for unknown names.
func (b *Board) Troops(territory string) int {
	if t, ok := b.index[territory]; ok {
		return t.Troops
	}
	return 0
}

// SetTroops sets the troop count on territory. The board is left untouched
// when n is negative.
func (b *Board) SetTroops(territory string, n int) error {
	t, err := b.territory(territory)
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: %d troops on %s", ErrInvalidTroopCount, n, territory)
	}
	t.Troops = n
	return nil
}

// AddTroops adds delta troops to territory, which may be negative as long as
// the result is not.
func (b *Board) AddTroops(territory string, delta int) error {
	return b.SetTroops(territory, b.Troops(territory)+delta)
}

// Owner returns the owner of territory, empty if unowned or unknown.
func (b *Board) Owner(territory string) string {
	if t, ok := b.index[territory]; ok {
		return t.Owner
	}
	return ""
}

// Assign gives territory to owner. Troops are not touched; callers keep the
// one-troop minimum.
func (b *Board) Assign(territory, owner string) error {
	t, err := b.territory(territory)
	if err != nil {
		return err
	}
	t.Owner = owner
	return nil
}

// Regions returns every region on the board.
func (b *Board) Regions() []Region {
	regions := make([]Region, len(b.regions))
	for i, r := range b.regions {
		regions[i] = Region{Name: r.Name, Value: r.Value, Territories: append([]string(nil), r.Territories...)}
	}
	return regions
}

// RegionsControlledBy returns the regions whose territories are all in
// territories.
func (b *Board) RegionsControlledBy(territories []string) []Region {
	held := make(map[string]struct{}, len(territories))
	for _, name := range territories {
		held[name] = struct{}{}
	}
	var regions []Region
	for _, r := range b.Regions() {
		controlled := true
		for _, name := range r.Territories {
			if _, ok := held[name]; !ok {
				controlled = false
				break
			}
		}
		if controlled {
			regions = append(regions, r)
		}
	}
	return regions
}

// RegionsOf returns the regions fully owned by owner.
func (b *Board) RegionsOf(owner string) []Region {
	return b.RegionsControlledBy(b.Territories(owner))
}

// Players returns the distinct owners on the board in territory order.
func (b *Board) Players() []string {
	var players []string
	for _, t := range b.territories {
		if t.Owner != "" && !contains(players, t.Owner) {
			players = append(players, t.Owner)
		}
	}
	return players
}

// Snapshot copies the current ownership and troop state.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{Board: b.Name}
	for _, t := range b.territories {
		s.Territories = append(s.Territories, TerritoryState{
			Name:   t.Name,
			Owner:  t.Owner,
			Troops: t.Troops,
			Pos:    t.Pos,
		})
	}
	for _, p := range b.Players() {
		s.Players = append(s.Players, b.Stats(p))
	}
	return s
}

// Draw hands the current state to the attached Drawer, if any.
func (b *Board) Draw() {
	if b.drawer == nil {
		return
	}
	b.drawer.Draw(b.Snapshot())
}
