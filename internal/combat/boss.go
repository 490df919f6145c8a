package combat

import (
	"fmt"

	"bossfight/internal/util"
)

// berserkBlocks are the amounts a berserk can shave off a boss strike.
var berserkBlocks = []int{5, 10}

type Boss struct {
	Entity
	defence Ability
}

func NewBoss(name string, health, damage int) *Boss {
	return &Boss{Entity: NewEntity(name, health, damage)}
}

// Defence is the ability tag chosen for the current round, empty before
// the first round.
func (b *Boss) Defence() Ability { return b.defence }

// ChooseDefence picks one hero uniformly from the whole roster, dead or
// alive, and defends against its ability. heroes must not be empty.
func (b *Boss) ChooseDefence(heroes Roster, rc *RoundContext) {
	picked := util.Choice(rc.Rng, heroes)
	b.defence = picked.Ability
	rc.emit("Defence", map[string]any{
		"boss": b.Name(), "defence": string(b.defence), "hero": picked.Name(),
	})
}

// Attack strikes every living hero in roster order. A berserk blocks part
// of the blow unless the boss is defending against BLOCK_AND_REVERT.
func (b *Boss) Attack(heroes Roster, rc *RoundContext) {
	for _, hero := range heroes {
		if hero.Health() <= 0 {
			continue
		}
		dmg := b.Damage()
		if hero.Ability == BlockAndRevert && b.defence != hero.Ability {
			hero.BlockedDamage = util.Choice(rc.Rng, berserkBlocks)
			dmg -= hero.BlockedDamage
			rc.emit("Block", map[string]any{
				"hero": hero.Name(), "amount": hero.BlockedDamage,
			})
		}
		hero.Hurt(dmg)
		rc.emit("Hit", map[string]any{
			"caster": b.Name(), "target": hero.Name(), "dmg": dmg, "hp": hero.Health(),
		})
	}
}

func (b *Boss) String() string {
	defence := "None"
	if b.defence != "" {
		defence = string(b.defence)
	}
	return fmt.Sprintf("BOSS %s defence: %s", b.Entity.String(), defence)
}
