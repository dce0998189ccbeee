package game

// Rules decides how many dice each side rolls and how a roll is scored.
type Rules interface {
	AttackDice(troops int) int
	DefendDice(troops int) int
	DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int)
}
