package game

// View is the read-only side of a Board. Strategies receive a View so they can
// inspect the board without being able to mutate it.
type View interface {
	Territories(owner ...string) []string
	Neighbors(territory string) []string
	FriendlyNeighbors(territory string) []string
	HostileNeighbors(territory string) []string
	AttackingTerritories(owner string) []string
	MovingTerritories(owner string) []string
	Troops(territory string) int
	Owner(territory string) string
	Regions() []Region
	RegionsOf(owner string) []Region
	Stats(owner string) PlayerStats
	Draw()
}

// Drawer consumes the board state for display. It must not retain the snapshot.
type Drawer interface {
	Draw(s Snapshot)
}

// Snapshot is the state handed to a Drawer.
type Snapshot struct {
	Board       string
	Territories []TerritoryState
	Players     []PlayerStats
}

// TerritoryState is one row of a Snapshot.
type TerritoryState struct {
	Name   string
	Owner  string
	Troops int
	Pos    [2]float64
}

// Rand is the subset of *rand.Rand the game draws from. All randomness in a
// game comes from a single Rand so that a seed reproduces the whole game.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}
