package main

import (
	"flag"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"bossfight/internal/combat"
	"bossfight/internal/config"
	"bossfight/internal/logging"
	"bossfight/internal/report"
	"bossfight/internal/util"
)

func main() {
	var out string
	var seed int64
	var n, workers, maxRounds int
	var color, saveLog, verbose bool
	flag.Int64Var(&seed, "seed", 0, "seed (0 = current time)")
	flag.IntVar(&n, "n", 1, "number of battles")
	flag.IntVar(&workers, "workers", 8, "parallel battles in batch mode")
	flag.IntVar(&maxRounds, "max-rounds", 0, "stop a battle after this many rounds (0 = no limit)")
	flag.StringVar(&out, "out", "", "result file (single) or summary file (batch, default summary.json)")
	flag.BoolVar(&color, "color", isTerminal(os.Stdout), "colour the status lines (default: on when stdout is a terminal)")
	flag.BoolVar(&saveLog, "log", false, "include the full event log in the single-battle result")
	flag.BoolVar(&verbose, "v", false, "narrate every hit, block and defence choice")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	roster, err := config.Default()
	if err != nil {
		logging.Fatal("failed to load roster", err, nil)
	}

	if n <= 1 {
		runSingle(roster, seed, maxRounds, out, color, saveLog, verbose)
		return
	}
	if out == "" {
		out = "summary.json"
	}
	runBatch(roster, seed, n, workers, maxRounds, out)
}

// isTerminal reports whether f is a character device, so redirected output
// stays free of escape codes.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

func runSingle(roster *config.RosterConfig, seed int64, maxRounds int, out string, color, saveLog, verbose bool) {
	boss, heroes := combat.NewLineup(roster)
	battle := combat.NewBattle(boss, heroes, util.NewRand(seed))
	battle.Seed = seed
	battle.Record = saveLog

	rep := report.New(os.Stdout, color)
	rep.Verbose = verbose
	battle.Emit = rep.Narrate

	logging.Info("battle started", logging.Fields{"id": battle.ID, "seed": seed})
	res := battle.Run(maxRounds, rep.Statistics)
	logging.Info("battle finished", logging.Fields{
		"id": res.ID, "winner": res.Winner, "rounds": res.Rounds,
	})

	if out == "" {
		return
	}
	if err := os.WriteFile(out, combat.MarshalPretty(res), 0644); err != nil {
		logging.Fatal("failed to write result", err, logging.Fields{"out": out})
	}
}

type stat struct {
	Wins      map[combat.Side]int
	SumRounds int
	ByHero    map[string]int
}

func runBatch(roster *config.RosterConfig, seed int64, n, workers, maxRounds int, out string) {
	if workers < 1 {
		workers = 1
	}
	st := stat{Wins: map[combat.Side]int{}, ByHero: map[string]int{}}
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	jobs := make(chan int, n)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				boss, heroes := combat.NewLineup(roster)
				battle := combat.NewBattle(boss, heroes, util.NewRand(seed+int64(i)))
				battle.Seed = seed + int64(i)
				res := battle.Run(maxRounds, nil)

				mu.Lock()
				st.Wins[res.Winner]++
				st.SumRounds += res.Rounds
				for k, v := range res.DamageByHero {
					st.ByHero[k] += v
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	summary := summarize(st, n, seed)
	if err := os.WriteFile(out, combat.MarshalPretty(summary), 0644); err != nil {
		logging.Error("failed to write summary", err, logging.Fields{"out": out})
		os.Stdout.Write(combat.MarshalPretty(summary))
		return
	}
	logging.Info("batch finished", logging.Fields{
		"runs": n, "heroes_win_rate": summary["heroes_win_rate"], "out": filepath.Base(out),
	})
}

func summarize(st stat, n int, seed int64) map[string]any {
	total := 0
	for _, v := range st.ByHero {
		total += v
	}
	names := make([]string, 0, len(st.ByHero))
	for k := range st.ByHero {
		names = append(names, k)
	}
	sort.Strings(names)
	byHero := make([]map[string]any, 0, len(names))
	for _, k := range names {
		share := 0.0
		if total > 0 {
			share = float64(st.ByHero[k]) / float64(total)
		}
		byHero = append(byHero, map[string]any{"hero": k, "total": st.ByHero[k], "ratio": share})
	}
	return map[string]any{
		"runs":            n,
		"seed":            seed,
		"heroes_win_rate": float64(st.Wins[combat.HeroesWin]) / float64(n),
		"boss_win_rate":   float64(st.Wins[combat.BossWins]) / float64(n),
		"unfinished":      st.Wins[combat.NoWinner],
		"avg_rounds":      float64(st.SumRounds) / float64(n),
		"total_damage":    total,
		"by_hero":         byHero,
	}
}
