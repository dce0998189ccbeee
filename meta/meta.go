// meta/meta.go
package meta

// STARTING_TROOPS is the troop allowance of each player in a two-player game.
const STARTING_TROOPS = 40

// STARTING_TROOPS_STEP is removed from the allowance for every extra player.
const STARTING_TROOPS_STEP = 5

// MIN_REINFORCEMENTS is the least a player with territories receives per turn.
const MIN_REINFORCEMENTS = 3

// TERRITORIES_PER_TROOP is how many owned territories earn one reinforcement.
const TERRITORIES_PER_TROOP = 3

// MAX_ATTACK_DICE and MAX_DEFEND_DICE cap the dice rolled in one battle.
const (
	MAX_ATTACK_DICE = 3
	MAX_DEFEND_DICE = 2
)

// MAX_TURNS caps arena games so a stalled matchup cannot run forever.
const MAX_TURNS = 300

// StartingTroops returns each player's starting allowance.
func StartingTroops(players int) int {
	return STARTING_TROOPS - STARTING_TROOPS_STEP*(players-2)
}
