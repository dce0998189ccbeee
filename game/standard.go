package game

import "clisk/meta"

type StandardRules struct {
	MaxAttackDice int
	MaxDefendDice int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		MaxAttackDice: meta.MAX_ATTACK_DICE,
		MaxDefendDice: meta.MAX_DEFEND_DICE,
	}
}

// AttackDice leaves one troop behind on the attacking territory.
func (sr *StandardRules) AttackDice(troops int) int {
	return max(0, min(sr.MaxAttackDice, troops-1))
}

func (sr *StandardRules) DefendDice(troops int) int {
	return max(0, min(sr.MaxDefendDice, troops))
}

// DetermineAttackOutcome compares rolls sorted in descending order pairwise.
// Ties go to the defender.
func (sr *StandardRules) DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int) {
	battles := min(len(attackerRolls), len(defenderRolls))
	for i := 0; i < battles; i++ {
		if attackerRolls[i] > defenderRolls[i] {
			defenderLosses++
		} else {
			attackerLosses++
		}
	}
	return
}
