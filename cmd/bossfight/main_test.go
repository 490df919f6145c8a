package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bossfight/internal/combat"
	"bossfight/internal/config"
	"bossfight/internal/util"
)

func TestSummarize(t *testing.T) {
	st := stat{
		Wins:      map[combat.Side]int{combat.HeroesWin: 3, combat.BossWins: 1, combat.NoWinner: 1},
		SumRounds: 30,
		ByHero:    map[string]int{"B": 10, "A": 30},
	}

	s := summarize(st, 5, 42)

	assert.Equal(t, 5, s["runs"])
	assert.Equal(t, int64(42), s["seed"])
	assert.InDelta(t, 0.6, s["heroes_win_rate"], 1e-9)
	assert.InDelta(t, 0.2, s["boss_win_rate"], 1e-9)
	assert.Equal(t, 1, s["unfinished"])
	assert.InDelta(t, 6.0, s["avg_rounds"], 1e-9)
	assert.Equal(t, 40, s["total_damage"])

	byHero, ok := s["by_hero"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, byHero, 2)
	assert.Equal(t, "A", byHero[0]["hero"])
	assert.Equal(t, 30, byHero[0]["total"])
	assert.InDelta(t, 0.75, byHero[0]["ratio"], 1e-9)
	assert.Equal(t, "B", byHero[1]["hero"])
	assert.InDelta(t, 0.25, byHero[1]["ratio"], 1e-9)
}

func TestSummarizeWithoutDamage(t *testing.T) {
	st := stat{
		Wins:   map[combat.Side]int{combat.BossWins: 2},
		ByHero: map[string]int{"A": 0},
	}

	s := summarize(st, 2, 1)

	byHero := s["by_hero"].([]map[string]any)
	require.Len(t, byHero, 1)
	assert.Equal(t, 0.0, byHero[0]["ratio"])
	assert.Equal(t, 1.0, s["boss_win_rate"])
	assert.Equal(t, 0, s["total_damage"])
}

func TestRunBatchMatchesSequentialRuns(t *testing.T) {
	roster, err := config.Default()
	require.NoError(t, err)
	const seed, n = int64(77), 6
	out := filepath.Join(t.TempDir(), "summary.json")

	runBatch(roster, seed, n, 3, 0, out)

	want := stat{Wins: map[combat.Side]int{}, ByHero: map[string]int{}}
	for i := 0; i < n; i++ {
		boss, heroes := combat.NewLineup(roster)
		res := combat.NewBattle(boss, heroes, util.NewRand(seed+int64(i))).Run(0, nil)
		want.Wins[res.Winner]++
		want.SumRounds += res.Rounds
		for k, v := range res.DamageByHero {
			want.ByHero[k] += v
		}
	}

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, string(combat.MarshalPretty(summarize(want, n, seed))), string(got))
}

func TestIsTerminalFalseForFiles(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, isTerminal(f))
}
