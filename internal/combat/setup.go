package combat

import (
	"fmt"

	"bossfight/internal/config"
)

// NewLineup builds the boss and the ordered roster described by cfg.
func NewLineup(cfg *config.RosterConfig) (*Boss, Roster) {
	boss := NewBoss(cfg.Boss.Name, cfg.Boss.Health, cfg.Boss.Damage)
	heroes := make(Roster, 0, len(cfg.Heroes))
	for _, def := range cfg.Heroes {
		heroes = append(heroes, newHeroFromDef(def))
	}
	return boss, heroes
}

func newHeroFromDef(def config.HeroDef) *Hero {
	switch def.Class {
	case config.ClassWarrior:
		return NewWarrior(def.Name, def.Health, def.Damage)
	case config.ClassMagic:
		return NewMagic(def.Name, def.Health, def.Damage)
	case config.ClassBerserk:
		return NewBerserk(def.Name, def.Health, def.Damage)
	case config.ClassMedic:
		return NewMedic(def.Name, def.Health, def.Damage, def.HealPoints)
	case config.ClassWitcher:
		return NewWitcher(def.Name, def.Health, def.Damage)
	case config.ClassHacker:
		return NewHacker(def.Name, def.Health, def.Damage, def.StealAmount)
	case config.ClassSpitfire:
		return NewSpitfire(def.Name, def.Health, def.Damage)
	case config.ClassBomber:
		return NewBomber(def.Name, def.Health, def.Damage)
	}
	// config.Parse rejects unknown classes.
	panic(fmt.Sprintf("combat: unknown hero class %q", def.Class))
}
