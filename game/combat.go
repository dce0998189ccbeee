package game

import (
	"sort"

	"golang.org/x/exp/rand"
)

const DieFaces = 6

// Battle is the outcome of a single roll of the dice.
type Battle struct {
	AttackerRolls  []int
	DefenderRolls  []int
	AttackerLosses int
	DefenderLosses int
}

// NewRand returns the random stream a whole game draws from.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(uint64(seed)))
}

// RollDice rolls num fair dice and returns them sorted highest first.
func RollDice(rng Rand, num int) []int {
	rolls := make([]int, num)
	for i := 0; i < num; i++ {
		rolls[i] = rng.Intn(DieFaces) + 1
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))
	return rolls
}

// ResolveBattle rolls attackDice against defendDice and scores the result
// under rules. The losses always add up to min(attackDice, defendDice).
func ResolveBattle(rng Rand, rules Rules, attackDice, defendDice int) Battle {
	b := Battle{
		AttackerRolls: RollDice(rng, attackDice),
		DefenderRolls: RollDice(rng, defendDice),
	}
	b.AttackerLosses, b.DefenderLosses = rules.DetermineAttackOutcome(b.AttackerRolls, b.DefenderRolls)
	return b
}
