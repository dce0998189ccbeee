package player

import "clisk/game"

// Random picks uniformly among legal choices. It attacks until it wins a
// territory or can't attack anymore, then moves troops at most once.
type Random struct {
	name         string
	rng          game.Rand
	lastAttacked string
	moved        bool
}

// NewRandom returns a random strategy drawing from rng. Share the game's rng
// to keep a seeded game reproducible.
func NewRandom(name string, rng game.Rand) *Random {
	return &Random{name: name, rng: rng}
}

func (r *Random) Reinforce(b game.View, troops int) (game.Placements, error) {
	// New turn
	r.lastAttacked = ""
	r.moved = false

	territories := b.Territories(r.name)
	placements := game.Placements{}
	if len(territories) == 0 {
		return placements, nil
	}
	for i := 0; i < troops; i++ {
		placements[r.choice(territories)]++
	}
	return placements, nil
}

func (r *Random) ContinueAttacking(b game.View) (bool, error) {
	if r.lastAttacked != "" && b.Owner(r.lastAttacked) == r.name {
		r.lastAttacked = ""
		return false, nil
	}
	return len(b.AttackingTerritories(r.name)) > 0, nil
}

func (r *Random) Attack(b game.View) (game.Attack, error) {
	from := r.choice(b.AttackingTerritories(r.name))
	if from == "" {
		return game.Attack{}, nil
	}
	to := r.choice(b.HostileNeighbors(from))
	r.lastAttacked = to
	return game.Attack{From: from, To: to}, nil
}

func (r *Random) ContinueMoving(b game.View) (bool, error) {
	return !r.moved && len(b.MovingTerritories(r.name)) > 0, nil
}

func (r *Random) Move(b game.View) (game.Maneuver, error) {
	from := r.choice(b.MovingTerritories(r.name))
	if from == "" {
		return game.Maneuver{}, nil
	}
	to := r.choice(b.FriendlyNeighbors(from))
	r.moved = true
	return game.Maneuver{From: from, To: to, Troops: b.Troops(from) - 1}, nil
}

func (r *Random) choice(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[r.rng.Intn(len(options))]
}
