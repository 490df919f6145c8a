package combat

// magicBoostAmount is the damage a mage adds to each ally per boosted round.
const magicBoostAmount = 5

// Hero is a roster member. Ability selects which special power runs in
// ApplySuperPower; only the fields that power uses are meaningful.
type Hero struct {
	Entity
	Ability Ability

	BoostAmount   int  // BOOST
	HealPoints    int  // HEAL
	StealAmount   int  // HACK
	BlockedDamage int  // BLOCK_AND_REVERT: last block from a boss attack, never reset
	HasRevived    bool // REVIVE
}

func NewHero(ability Ability, name string, health, damage int) *Hero {
	return &Hero{Entity: NewEntity(name, health, damage), Ability: ability}
}

func NewWarrior(name string, health, damage int) *Hero {
	return NewHero(CriticalDamage, name, health, damage)
}

func NewMagic(name string, health, damage int) *Hero {
	h := NewHero(Boost, name, health, damage)
	h.BoostAmount = magicBoostAmount
	return h
}

func NewBerserk(name string, health, damage int) *Hero {
	return NewHero(BlockAndRevert, name, health, damage)
}

func NewMedic(name string, health, damage, healPoints int) *Hero {
	h := NewHero(Heal, name, health, damage)
	h.HealPoints = healPoints
	return h
}

func NewWitcher(name string, health, damage int) *Hero {
	return NewHero(Revive, name, health, damage)
}

func NewHacker(name string, health, damage, stealAmount int) *Hero {
	h := NewHero(Hack, name, health, damage)
	h.StealAmount = stealAmount
	return h
}

func NewSpitfire(name string, health, damage int) *Hero {
	return NewHero(Aggression, name, health, damage)
}

func NewBomber(name string, health, damage int) *Hero {
	return NewHero(Explosion, name, health, damage)
}

// Attack hits the boss for the hero's current damage.
func (h *Hero) Attack(boss *Boss, rc *RoundContext) {
	before := boss.Health()
	boss.Hurt(h.Damage())
	rc.emit("Hit", map[string]any{
		"caster": h.Name(), "target": boss.Name(), "dmg": before - boss.Health(), "hp": boss.Health(),
	})
}
