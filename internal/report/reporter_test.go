package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"bossfight/internal/combat"
)

func TestStatisticsListsEveryone(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)
	boss := combat.NewBoss("Dragon", 1000, 50)
	heroes := combat.Roster{
		combat.NewWarrior("Prince", 280, 20),
		combat.NewMedic("Doc", 0, 5, 15),
	}

	r.Statistics(0, boss, heroes)

	want := "ROUND 0 ------------\n" +
		"BOSS Dragon health: 1000 damage: 50 defence: None\n" +
		"Prince health: 280 damage: 20\n" +
		"Doc health: 0 damage: 5\n"
	assert.Equal(t, want, buf.String())
}

func TestNarrate(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	r.Narrate(combat.Event{Round: 1, Type: "Critical", Payload: map[string]any{"hero": "Prince", "amount": 60}})
	r.Narrate(combat.Event{Round: 1, Type: "Hit", Payload: map[string]any{"caster": "Dragon", "target": "Prince", "dmg": 50, "hp": 230}})
	r.Narrate(combat.Event{Round: 1, Type: "GameOver", Payload: map[string]any{"winner": "heroes"}})

	assert.Equal(t, "Warrior Prince hit critically: 60\nHeroes won!!!\n", buf.String())
}

func TestNarrateVerbose(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)
	r.Verbose = true

	r.Narrate(combat.Event{Round: 1, Type: "Block", Payload: map[string]any{"hero": "Mars", "amount": 10}})
	r.Narrate(combat.Event{Round: 1, Type: "GameOver", Payload: map[string]any{"winner": "boss"}})

	assert.Equal(t, "Berserk Mars blocked 10\nBoss won!!!\n", buf.String())
}

func TestColorOnlyWhenAsked(t *testing.T) {
	var plain, colored bytes.Buffer
	boss := combat.NewBoss("Dragon", 1, 1)
	heroes := combat.Roster{combat.NewWarrior("Prince", 1, 1)}

	New(&plain, false).Statistics(1, boss, heroes)
	New(&colored, true).Statistics(1, boss, heroes)

	assert.NotContains(t, plain.String(), "\033[")
	assert.Contains(t, colored.String(), "\033[")
}

func TestNarrateNegativeHitAsHeal(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)
	r.Verbose = true

	r.Narrate(combat.Event{Round: 1, Type: "Hit", Payload: map[string]any{"caster": "Imp", "target": "Mars", "dmg": -2, "hp": 102}})

	assert.Equal(t, "Imp's strike heals Mars by 2 (HP 102)\n", buf.String())
}
