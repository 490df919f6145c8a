package report

import (
	"fmt"
	"io"

	direct "github.com/buger/goterm"

	"bossfight/internal/combat"
)

// Reporter turns battle state and events into status lines.
type Reporter struct {
	w       io.Writer
	color   bool
	Verbose bool // also print every hit, block and defence choice
}

func New(w io.Writer, color bool) *Reporter {
	return &Reporter{w: w, color: color}
}

func (r *Reporter) paint(s string, c int) string {
	if !r.color {
		return s
	}
	return direct.Color(s, c)
}

func (r *Reporter) entityLine(prefix string, e *combat.Entity) string {
	c := direct.CYAN
	if !e.Alive() {
		c = direct.RED
	}
	return fmt.Sprintf("%s%s health: %d damage: %d", prefix, r.paint(e.Name(), c), e.Health(), e.Damage())
}

// Statistics prints the round header, the boss and every hero.
func (r *Reporter) Statistics(round int, boss *combat.Boss, heroes combat.Roster) {
	defence := "None"
	if boss.Defence() != "" {
		defence = string(boss.Defence())
	}
	fmt.Fprintf(r.w, "ROUND %d ------------\n", round)
	fmt.Fprintf(r.w, "%s defence: %s\n", r.entityLine("BOSS ", &boss.Entity), r.paint(defence, direct.YELLOW))
	for _, h := range heroes {
		fmt.Fprintln(r.w, r.entityLine("", &h.Entity))
	}
}

// Narrate prints the line for ev, if it has one.
func (r *Reporter) Narrate(ev combat.Event) {
	if line := r.narration(ev); line != "" {
		fmt.Fprintln(r.w, line)
	}
}

func (r *Reporter) narration(ev combat.Event) string {
	p := ev.Payload
	switch ev.Type {
	case "Critical":
		return fmt.Sprintf("Warrior %v hit critically: %v", p["hero"], p["amount"])
	case "Boost":
		return fmt.Sprintf("Magic %v boosted all heroes damage by %v", p["hero"], p["amount"])
	case "Revert":
		return fmt.Sprintf("Berserk %v reverted: %v", p["hero"], p["amount"])
	case "Heal":
		return fmt.Sprintf("Medic %v healed %v allies by %v", p["hero"], p["count"], p["amount"])
	case "Revive":
		return fmt.Sprintf("Witcher %v gave their life to revive %v.", p["hero"], p["target"])
	case "Steal":
		return fmt.Sprintf("Hacker %v stole %v health from the boss and gave it to %v.", p["hero"], p["amount"], p["target"])
	case "Fury":
		return fmt.Sprintf("Spitfire %v is furious! Deals %v extra damage to the boss.", p["hero"], p["amount"])
	case "Explode":
		return fmt.Sprintf("Bomber %v exploded! Deals %v extra damage to the boss.", p["hero"], p["amount"])
	case "GameOver":
		if p["winner"] == string(combat.HeroesWin) {
			return r.paint("Heroes won!!!", direct.GREEN)
		}
		return r.paint("Boss won!!!", direct.RED)
	}
	if !r.Verbose {
		return ""
	}
	switch ev.Type {
	case "Defence":
		return fmt.Sprintf("%v defends against %v", p["boss"], p["defence"])
	case "Block":
		return fmt.Sprintf("Berserk %v blocked %v", p["hero"], p["amount"])
	case "Hit":
		// a block larger than the strike heals the target
		if dmg, ok := p["dmg"].(int); ok && dmg < 0 {
			return fmt.Sprintf("%v's strike heals %v by %d (HP %v)", p["caster"], p["target"], -dmg, p["hp"])
		}
		return fmt.Sprintf("%v hits %v for %v (HP %v)", p["caster"], p["target"], p["dmg"], p["hp"])
	}
	return ""
}
