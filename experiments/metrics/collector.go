package metrics

import (
	"time"

	"clisk/game"
)

type GameMetric struct {
	ID        string
	Seed      int64
	Board     string
	Players   []string
	Winner    string // Player name, "" if the game hit the turn cap
	Turns     int
	Battles   int // Dice rolls
	Attacks   int
	Captures  int
	Maneuvers int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Collector receives game events from the engine as they happen.
type Collector interface {
	Start()
	AddTurn(player string)
	AddBattle(battle game.Battle)
	AddAttack(attack game.Attack, captured bool)
	AddManeuver(move game.Maneuver)
	Complete(winner string) GameMetric
}

type collector struct {
	metric GameMetric
}

// NewCollector returns a collector counting the events of one game.
func NewCollector(id string, seed int64, board string, players []string) Collector {
	return &collector{metric: GameMetric{
		ID:      id,
		Seed:    seed,
		Board:   board,
		Players: append([]string(nil), players...),
	}}
}

func (m *collector) Start() {
	m.metric.StartTime = time.Now()
}

func (m *collector) AddTurn(string) {
	m.metric.Turns++
}

func (m *collector) AddBattle(game.Battle) {
	m.metric.Battles++
}

func (m *collector) AddAttack(_ game.Attack, captured bool) {
	m.metric.Attacks++
	if captured {
		m.metric.Captures++
	}
}

func (m *collector) AddManeuver(game.Maneuver) {
	m.metric.Maneuvers++
}

func (m *collector) Complete(winner string) GameMetric {
	m.metric.Winner = winner
	m.metric.EndTime = time.Now()
	m.metric.Duration = m.metric.EndTime.Sub(m.metric.StartTime)
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                      {}
func (m *dummyCollector) AddTurn(string)              {}
func (m *dummyCollector) AddBattle(game.Battle)       {}
func (m *dummyCollector) AddAttack(game.Attack, bool) {}
func (m *dummyCollector) AddManeuver(game.Maneuver)   {}
func (m *dummyCollector) Complete(string) GameMetric  { return GameMetric{} }
