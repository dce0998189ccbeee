package engine

import (
	"fmt"

	"clisk/game"
	"clisk/meta"
	"clisk/player"
	"clisk/utils"
)

// CollectTroops returns the reinforcements owed to a player at the start of
// their turn: one per three territories (at least three) plus the value of
// every region they control.
func (g *Game) CollectTroops(name string) int {
	territories := g.Board.Territories(name)
	if len(territories) == 0 {
		return 0
	}
	troops := max(meta.MIN_REINFORCEMENTS, len(territories)/meta.TERRITORIES_PER_TROOP)
	g.logger.Debug().Msgf("player %s receives %d extra troops for owning %d territories", name, troops, len(territories))

	for _, region := range g.Board.RegionsControlledBy(territories) {
		g.logger.Debug().Msgf("player %s receives %d extra troops for owning %s", name, region.Value, region.Name)
		troops += region.Value
	}
	return troops
}

// Reinforce collects p's troops and deploys them where p's strategy says.
// The total is not checked against the award.
func (g *Game) Reinforce(p *player.Player) error {
	troops := g.CollectTroops(p.Name)
	placements, err := p.Strategy.Reinforce(g.Board, troops)
	if err != nil {
		return fmt.Errorf("player %s reinforcement: %w", p.Name, err)
	}
	for territory, n := range placements {
		if g.Board.Owner(territory) != p.Name || n < 0 {
			return fmt.Errorf("%w: player %s placing %d troops on %q", ErrIllegalDecision, p.Name, n, territory)
		}
	}

	// Board order keeps the log stable for a given seed
	for _, territory := range g.Board.Territories(p.Name) {
		n, ok := placements[territory]
		if !ok || n == 0 {
			continue
		}
		if err := g.Board.AddTroops(territory, n); err != nil {
			return err
		}
		g.logger.Debug().Msgf("player %s is placing %d troop(s) on %s", p.Name, n, territory)
	}
	g.Board.Draw()
	return nil
}

// AttackPhase lets p attack for as long as its strategy wants to. Each attack
// is fought to completion.
func (g *Game) AttackPhase(p *player.Player) error {
	for {
		more, err := p.Strategy.ContinueAttacking(g.Board)
		if err != nil {
			return fmt.Errorf("player %s attack: %w", p.Name, err)
		}
		if !more {
			return nil
		}

		attack, err := p.Strategy.Attack(g.Board)
		if err != nil {
			return fmt.Errorf("player %s attack: %w", p.Name, err)
		}
		if attack.IsZero() {
			return nil
		}
		if !utils.Contains(g.Board.AttackingTerritories(p.Name), attack.From) ||
			!utils.Contains(g.Board.HostileNeighbors(attack.From), attack.To) {
			return fmt.Errorf("%w: player %s attacking %q from %q", ErrIllegalDecision, p.Name, attack.To, attack.From)
		}

		captured, err := g.AttackToCompletion(attack.From, attack.To)
		if err != nil {
			return err
		}
		g.metrics.AddAttack(attack, captured)
		g.Board.Draw()
	}
}

// AttackToCompletion rolls battles between from and to until from is down to
// one troop or to is emptied. On capture the attacker takes to and moves all
// but one troop into it.
func (g *Game) AttackToCompletion(from, to string) (bool, error) {
	attacker := g.Board.Owner(from)
	defender := g.Board.Owner(to)
	if attacker == "" || attacker == defender {
		return false, fmt.Errorf("%w: %q (%s) cannot attack %q (%s)", ErrIllegalDecision, from, attacker, to, defender)
	}

	for {
		fromTroops := g.Board.Troops(from)
		toTroops := g.Board.Troops(to)

		if toTroops == 0 {
			if err := g.capture(from, to, attacker); err != nil {
				return false, err
			}
			return true, nil
		}
		if fromTroops <= 1 {
			g.logger.Debug().Msgf("player %s failed to take %s from %s", attacker, to, defender)
			return false, nil
		}

		g.logger.Debug().Msgf("player %s is attacking %s (o: %s, n: %d) from %s (o: %s, n: %d)",
			attacker, to, defender, toTroops, from, attacker, fromTroops)

		battle := game.ResolveBattle(g.rng, g.rules, g.rules.AttackDice(fromTroops), g.rules.DefendDice(toTroops))
		g.metrics.AddBattle(battle)
		g.logger.Debug().
			Ints("attacker", battle.AttackerRolls).
			Ints("defender", battle.DefenderRolls).
			Msgf("attacker loses %d troops, defender loses %d troops", battle.AttackerLosses, battle.DefenderLosses)

		if err := g.Board.SetTroops(from, fromTroops-battle.AttackerLosses); err != nil {
			return false, err
		}
		if err := g.Board.SetTroops(to, toTroops-battle.DefenderLosses); err != nil {
			return false, err
		}
	}
}

func (g *Game) capture(from, to, attacker string) error {
	if err := g.Board.Assign(to, attacker); err != nil {
		return err
	}
	moving := g.Board.Troops(from) - 1
	if err := g.Board.SetTroops(to, moving); err != nil {
		return err
	}
	if err := g.Board.SetTroops(from, 1); err != nil {
		return err
	}
	g.logger.Debug().Msgf("player %s won %s and is moving %d troops", attacker, to, moving)
	return nil
}

// FortifyPhase lets p move troops between adjacent territories it owns for
// as long as its strategy wants to.
func (g *Game) FortifyPhase(p *player.Player) error {
	for {
		more, err := p.Strategy.ContinueMoving(g.Board)
		if err != nil {
			return fmt.Errorf("player %s move: %w", p.Name, err)
		}
		if !more {
			return nil
		}

		move, err := p.Strategy.Move(g.Board)
		if err != nil {
			return fmt.Errorf("player %s move: %w", p.Name, err)
		}
		if move.IsZero() {
			return nil
		}
		if !utils.Contains(g.Board.MovingTerritories(p.Name), move.From) ||
			!utils.Contains(g.Board.FriendlyNeighbors(move.From), move.To) ||
			move.Troops < 1 || move.Troops >= g.Board.Troops(move.From) {
			return fmt.Errorf("%w: player %s moving %d troops from %q to %q",
				ErrIllegalDecision, p.Name, move.Troops, move.From, move.To)
		}

		if err := g.MoveTroops(move.From, move.To, move.Troops); err != nil {
			return err
		}
		g.metrics.AddManeuver(move)
		g.logger.Debug().Msgf("player %s is moving %d troops from %s to %s", p.Name, move.Troops, move.From, move.To)
		g.Board.Draw()
	}
}

// MoveTroops transfers troops from one territory to another. Nothing changes
// if from does not hold enough troops.
func (g *Game) MoveTroops(from, to string, troops int) error {
	if troops < 0 {
		return fmt.Errorf("%w: moving %d troops", game.ErrInvalidTroopCount, troops)
	}
	if !g.Board.Has(to) {
		return fmt.Errorf("%w: %q", game.ErrUnknownTerritory, to)
	}
	if err := g.Board.AddTroops(from, -troops); err != nil {
		return err
	}
	return g.Board.AddTroops(to, troops)
}
