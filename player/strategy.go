package player

import "clisk/game"

// Strategy makes the decisions of one player. Every decision must come from
// the legal candidates the board offers: owned territories for placements,
// AttackingTerritories/HostileNeighbors for attacks and
// MovingTerritories/FriendlyNeighbors for moves.
type Strategy interface {
	// Reinforce decides where to deploy the new troops. The placements
	// should add up to troops.
	Reinforce(b game.View, troops int) (game.Placements, error)
	// ContinueAttacking is asked before every attack of the turn.
	ContinueAttacking(b game.View) (bool, error)
	// Attack picks the next attack. A zero Attack ends the attack phase.
	Attack(b game.View) (game.Attack, error)
	// ContinueMoving is asked before every troop move of the turn.
	ContinueMoving(b game.View) (bool, error)
	// Move picks the next troop move. A zero Maneuver ends the turn.
	Move(b game.View) (game.Maneuver, error)
}

// Player is a named seat at the table and the strategy deciding for it.
type Player struct {
	Name     string
	Type     string
	Strategy Strategy
}
