package combat

import "bossfight/internal/util"

type Event struct {
	Round   int            `json:"round"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Ability is the tag identifying a hero's special power. The boss commits
// to one of these as its defence each round.
type Ability string

const (
	CriticalDamage Ability = "CRITICAL_DAMAGE"
	Boost          Ability = "BOOST"
	BlockAndRevert Ability = "BLOCK_AND_REVERT"
	Heal           Ability = "HEAL"
	Revive         Ability = "REVIVE"
	Hack           Ability = "HACK"
	Aggression     Ability = "AGGRESSION"
	Explosion      Ability = "EXPLOSION"
)

// Side names the winner of a battle.
type Side string

const (
	NoWinner  Side = "none"
	HeroesWin Side = "heroes"
	BossWins  Side = "boss"
)

// RoundContext carries what every attack and ability of one round reads:
// the round number, the entropy source and the event sink.
type RoundContext struct {
	Number int
	Rng    util.Entropy
	Emit   func(Event)
}

func (rc *RoundContext) emit(typ string, payload map[string]any) {
	if rc == nil || rc.Emit == nil {
		return
	}
	rc.Emit(Event{Round: rc.Number, Type: typ, Payload: payload})
}
