package combat

import "fmt"

// Entity holds the attributes shared by the boss and the heroes.
// Health never goes below zero; damage is stored as given.
type Entity struct {
	name   string
	health int
	damage int
}

func NewEntity(name string, health, damage int) Entity {
	e := Entity{name: name, damage: damage}
	e.SetHealth(health)
	return e
}

func (e *Entity) Name() string { return e.name }
func (e *Entity) Health() int  { return e.health }
func (e *Entity) Damage() int  { return e.damage }
func (e *Entity) Alive() bool  { return e.health > 0 }

func (e *Entity) SetHealth(v int) {
	if v < 0 {
		v = 0
	}
	e.health = v
}

func (e *Entity) SetDamage(v int) { e.damage = v }

// Hurt lowers health by amount. A negative amount heals.
func (e *Entity) Hurt(amount int) { e.SetHealth(e.health - amount) }

func (e *Entity) String() string {
	return fmt.Sprintf("%s health: %d damage: %d", e.name, e.health, e.damage)
}
