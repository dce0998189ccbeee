package game

// Placements maps territories to the number of troops deployed on them.
type Placements map[string]int

// Total returns the number of troops placed.
func (p Placements) Total() int {
	total := 0
	for _, n := range p {
		total += n
	}
	return total
}

// Attack is a decision to attack To from From. The zero value means no attack.
type Attack struct {
	From string
	To   string
}

func (a Attack) IsZero() bool {
	return a.From == "" || a.To == ""
}

// Maneuver is a decision to move Troops from From to To. The zero value means
// no move.
type Maneuver struct {
	From   string
	To     string
	Troops int
}

func (m Maneuver) IsZero() bool {
	return m.From == "" || m.To == "" || m.Troops == 0
}
