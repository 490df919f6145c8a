package combat

import (
	"encoding/json"

	"github.com/google/uuid"

	"bossfight/internal/util"
)

type EntityState struct {
	Name    string  `json:"name"`
	Ability Ability `json:"ability,omitempty"`
	Health  int     `json:"health"`
	Damage  int     `json:"damage"`
}

type SimResult struct {
	ID           string         `json:"id"`
	Seed         int64          `json:"seed"`
	Rounds       int            `json:"rounds"`
	Winner       Side           `json:"winner"`
	Boss         EntityState    `json:"boss"`
	Heroes       []EntityState  `json:"heroes"`
	DamageByHero map[string]int `json:"damage_by_hero"`
	Events       []Event        `json:"events,omitempty"`
}

// Battle owns one boss, its roster and the round counter.
type Battle struct {
	ID     string
	Seed   int64
	Round  int
	Boss   *Boss
	Heroes Roster
	Rng    util.Entropy
	Emit   func(Event)
	Record bool

	events       []Event
	damageByHero map[string]int
}

// NewBattle panics on an empty roster: the boss has nothing to defend
// against.
func NewBattle(boss *Boss, heroes Roster, rng util.Entropy) *Battle {
	if len(heroes) == 0 {
		panic("combat: battle needs at least one hero")
	}
	return &Battle{
		ID:           uuid.New().String(),
		Boss:         boss,
		Heroes:       heroes,
		Rng:          rng,
		damageByHero: map[string]int{},
	}
}

func (b *Battle) emit(ev Event) {
	if b.Record {
		b.events = append(b.events, ev)
	}
	if b.Emit != nil {
		b.Emit(ev)
	}
}

func (b *Battle) context() *RoundContext {
	return &RoundContext{Number: b.Round, Rng: b.Rng, Emit: b.emit}
}

// PlayRound resolves one full round: defence, boss attack, then every
// eligible hero attacks and uses its ability in roster order.
func (b *Battle) PlayRound() {
	b.Round++
	rc := b.context()

	b.Boss.ChooseDefence(b.Heroes, rc)
	b.Boss.Attack(b.Heroes, rc)

	for _, hero := range b.Heroes {
		if hero.Health() <= 0 || b.Boss.Health() <= 0 || b.Boss.Defence() == hero.Ability {
			continue
		}
		before := b.Boss.Health()
		hero.Attack(b.Boss, rc)
		hero.ApplySuperPower(b.Boss, b.Heroes, rc)
		b.damageByHero[hero.Name()] += before - b.Boss.Health()
	}

	rc.emit("RoundEnd", map[string]any{
		"boss_hp": b.Boss.Health(), "alive": b.Heroes.AliveCount(),
	})
}

// Outcome reports who has won so far. A dead boss takes priority over a
// dead roster.
func Outcome(boss *Boss, heroes Roster) Side {
	if boss.Health() <= 0 {
		return HeroesWin
	}
	if heroes.AllDead() {
		return BossWins
	}
	return NoWinner
}

// IsGameOver reports whether either side is finished and announces the
// winner when it is.
func (b *Battle) IsGameOver() bool {
	side := Outcome(b.Boss, b.Heroes)
	if side == NoWinner {
		return false
	}
	b.emit(Event{Round: b.Round, Type: "GameOver", Payload: map[string]any{"winner": string(side)}})
	return true
}

// Run plays rounds until the game is over or maxRounds have been played
// (0 means no limit). report, when set, sees the line-up before the first
// round and after every round.
func (b *Battle) Run(maxRounds int, report func(round int, boss *Boss, heroes Roster)) SimResult {
	b.emit(Event{Round: b.Round, Type: "Start", Payload: map[string]any{
		"id": b.ID, "boss": b.Boss.Name(), "heroes": len(b.Heroes),
	}})
	if report != nil {
		report(b.Round, b.Boss, b.Heroes)
	}
	for !b.IsGameOver() {
		if maxRounds > 0 && b.Round >= maxRounds {
			break
		}
		b.PlayRound()
		if report != nil {
			report(b.Round, b.Boss, b.Heroes)
		}
	}
	return b.Result()
}

// Result snapshots the battle as it stands.
func (b *Battle) Result() SimResult {
	res := SimResult{
		ID:           b.ID,
		Seed:         b.Seed,
		Rounds:       b.Round,
		Winner:       Outcome(b.Boss, b.Heroes),
		Boss:         EntityState{Name: b.Boss.Name(), Health: b.Boss.Health(), Damage: b.Boss.Damage()},
		DamageByHero: map[string]int{},
	}
	for _, h := range b.Heroes {
		res.Heroes = append(res.Heroes, EntityState{
			Name: h.Name(), Ability: h.Ability, Health: h.Health(), Damage: h.Damage(),
		})
	}
	for k, v := range b.damageByHero {
		res.DamageByHero[k] = v
	}
	if b.Record {
		res.Events = append([]Event(nil), b.events...)
	}
	return res
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
