package combat

import "bossfight/internal/util"

const (
	criticalMin = 2
	criticalMax = 6

	// magicBoostRounds is the last round in which a mage boosts allies.
	magicBoostRounds = 4

	spitfireFuryDamage = 80
	bomberBlastDamage  = 100
)

// ApplySuperPower runs the hero's special ability for the round. Abilities
// with nothing to act on do nothing.
func (h *Hero) ApplySuperPower(boss *Boss, heroes Roster, rc *RoundContext) {
	switch h.Ability {
	case CriticalDamage:
		h.criticalHit(boss, rc)
	case Boost:
		h.boostAllies(heroes, rc)
	case BlockAndRevert:
		h.revertBlocked(boss, rc)
	case Heal:
		h.healAllies(heroes, rc)
	case Revive:
		h.reviveFirstFallen(heroes, rc)
	case Hack:
		h.stealHealth(boss, heroes, rc)
	case Aggression:
		h.provoke(boss, heroes, rc)
	case Explosion:
		h.explode(boss, rc)
	}
}

func (h *Hero) criticalHit(boss *Boss, rc *RoundContext) {
	coeff := rc.Rng.Between(criticalMin, criticalMax)
	dmg := coeff * h.Damage()
	boss.Hurt(dmg)
	rc.emit("Critical", map[string]any{"hero": h.Name(), "coeff": coeff, "amount": dmg})
}

func (h *Hero) boostAllies(heroes Roster, rc *RoundContext) {
	if rc.Number > magicBoostRounds {
		return
	}
	for _, hero := range heroes {
		if hero.Health() <= 0 || hero.Ability == Revive || hero.Ability == Hack {
			continue
		}
		hero.SetDamage(hero.Damage() + h.BoostAmount)
	}
	rc.emit("Boost", map[string]any{"hero": h.Name(), "amount": h.BoostAmount})
}

// revertBlocked returns whatever the last block absorbed, even when the
// boss did not strike this hero this round.
func (h *Hero) revertBlocked(boss *Boss, rc *RoundContext) {
	boss.Hurt(h.BlockedDamage)
	rc.emit("Revert", map[string]any{"hero": h.Name(), "amount": h.BlockedDamage})
}

func (h *Hero) healAllies(heroes Roster, rc *RoundContext) {
	healed := 0
	for _, hero := range heroes {
		if hero == h || hero.Health() <= 0 {
			continue
		}
		hero.Hurt(-h.HealPoints)
		healed++
	}
	if healed > 0 {
		rc.emit("Heal", map[string]any{"hero": h.Name(), "amount": h.HealPoints, "count": healed})
	}
}

func (h *Hero) reviveFirstFallen(heroes Roster, rc *RoundContext) {
	if h.Health() <= 0 || h.HasRevived {
		return
	}
	fallen := heroes.FirstFallen()
	if fallen == nil {
		return
	}
	fallen.SetHealth(h.Health())
	h.SetHealth(0)
	h.HasRevived = true
	rc.emit("Revive", map[string]any{"hero": h.Name(), "target": fallen.Name(), "hp": fallen.Health()})
}

func (h *Hero) stealHealth(boss *Boss, heroes Roster, rc *RoundContext) {
	if rc.Number%2 != 0 || boss.Health() <= 0 {
		return
	}
	alive := heroes.Alive()
	if len(alive) == 0 {
		return
	}
	target := util.Choice(rc.Rng, alive)
	boss.Hurt(h.StealAmount)
	target.Hurt(-h.StealAmount)
	rc.emit("Steal", map[string]any{"hero": h.Name(), "target": target.Name(), "amount": h.StealAmount})
}

// provoke makes the boss strike the whole roster again and punishes it if
// that second strike killed anyone.
func (h *Hero) provoke(boss *Boss, heroes Roster, rc *RoundContext) {
	before := heroes.AliveCount()
	boss.Attack(heroes, rc)
	if heroes.AliveCount() < before {
		boss.Hurt(spitfireFuryDamage)
		rc.emit("Fury", map[string]any{"hero": h.Name(), "amount": spitfireFuryDamage})
	}
}

// explode only fires on negative health, which the clamped setter never
// stores, so it stays dormant in a normal game.
func (h *Hero) explode(boss *Boss, rc *RoundContext) {
	if h.Health() >= 0 {
		return
	}
	boss.Hurt(bomberBlastDamage)
	rc.emit("Explode", map[string]any{"hero": h.Name(), "amount": bomberBlastDamage})
}
