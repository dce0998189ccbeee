package player

import "clisk/game"

// Interactive asks a person for every decision through an Input.
type Interactive struct {
	name string
	in   Input
}

func NewInteractive(name string, in Input) *Interactive {
	return &Interactive{name: name, in: in}
}

func (h *Interactive) Reinforce(b game.View, troops int) (game.Placements, error) {
	h.in.Say("DEPLOYMENT PHASE (%s)", h.name)
	b.Draw()

	territories := b.Territories(h.name)
	placements := game.Placements{}
	for left := troops; left > 0 && len(territories) > 0; {
		h.in.Say("%d troops left to deploy", left)
		territory, _, err := h.in.Choose("Enter a territory to deploy troops to: ", territories, false)
		if err != nil {
			return nil, err
		}
		n, _, err := h.in.Number("Enter number of troops to deploy: ", 1, left, false)
		if err != nil {
			return nil, err
		}
		placements[territory] += n
		left -= n
	}
	return placements, nil
}

func (h *Interactive) ContinueAttacking(b game.View) (bool, error) {
	if len(b.AttackingTerritories(h.name)) == 0 {
		h.in.Say("Cannot attack from any territory")
		return false, nil
	}
	return true, nil
}

func (h *Interactive) Attack(b game.View) (game.Attack, error) {
	h.in.Say("ATTACK PHASE (%s)", h.name)
	b.Draw()

	from, ok, err := h.in.Choose("Enter a territory to attack from: ", b.AttackingTerritories(h.name), true)
	if err != nil || !ok {
		return game.Attack{}, err
	}
	to, ok, err := h.in.Choose("Enter a territory to attack: ", b.HostileNeighbors(from), true)
	if err != nil || !ok {
		return game.Attack{}, err
	}
	return game.Attack{From: from, To: to}, nil
}

func (h *Interactive) ContinueMoving(b game.View) (bool, error) {
	if len(b.MovingTerritories(h.name)) == 0 {
		h.in.Say("Cannot move from any territory")
		return false, nil
	}
	return true, nil
}

func (h *Interactive) Move(b game.View) (game.Maneuver, error) {
	h.in.Say("MOVE PHASE (%s)", h.name)
	b.Draw()

	from, ok, err := h.in.Choose("Enter a territory to move from: ", b.MovingTerritories(h.name), true)
	if err != nil || !ok {
		return game.Maneuver{}, err
	}
	to, ok, err := h.in.Choose("Enter a territory to move to: ", b.FriendlyNeighbors(from), true)
	if err != nil || !ok {
		return game.Maneuver{}, err
	}
	n, ok, err := h.in.Number("Enter number of troops to move: ", 1, b.Troops(from)-1, true)
	if err != nil || !ok {
		return game.Maneuver{}, err
	}
	return game.Maneuver{From: from, To: to, Troops: n}, nil
}
