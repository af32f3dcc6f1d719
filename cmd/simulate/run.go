package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/osse101/Skirmish_Go/internal/combat"
	"github.com/osse101/Skirmish_Go/internal/domain"
	"github.com/osse101/Skirmish_Go/internal/mission"
)

// RunCommand auto-resolves a batch of encounters and prints a summary
type RunCommand struct {
	out io.Writer
}

func (c *RunCommand) Name() string { return "run" }

func (c *RunCommand) Description() string {
	return "Auto-resolve N encounters and report the win rate"
}

func (c *RunCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	var hero heroFlags
	hero.register(fs)
	n := fs.Int("n", 100, "number of encounters")
	roster := fs.String("enemies", "", "roster as type:count:level,... (default: level roster)")
	seed := fs.Int64("seed", 0, "base seed; run i uses seed+i (0: random)")
	quiet := fs.Bool("quiet", false, "print only the summary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 1 {
		return fmt.Errorf("-n must be at least 1")
	}

	bestiary, err := hero.bestiary()
	if err != nil {
		return err
	}

	snapshot := hero.snapshot()
	enemies, err := parseRoster(*roster, snapshot.Level())
	if err != nil {
		return err
	}
	if len(enemies) == 0 {
		enemies = mission.RosterForLevel(snapshot.Level())
	}
	if err := bestiary.ValidateRoster(enemies); err != nil {
		return err
	}

	base := *seed
	if base == 0 {
		if base, err = combat.NewSeed(); err != nil {
			return err
		}
	}

	var s summary
	for i := 0; i < *n; i++ {
		result, err := mission.NewEngine(bestiary, hero.maxRounds, base+int64(i)).Run(snapshot, enemies)
		if err != nil {
			return err
		}
		s.add(result)
		if !*quiet {
			fmt.Fprintf(c.out, "=== Encounter %d ===\n%s\n", i+1, mission.FormatLog(result))
		}
	}

	s.print(c.out)
	return nil
}

// summary aggregates a batch of results
type summary struct {
	runs      int
	victories int
	rounds    int
	xp        int
	gold      int
	winChance int
	items     int
}

func (s *summary) add(r *domain.CombatResult) {
	s.runs++
	if r.Victory {
		s.victories++
	}
	s.rounds += r.Rounds
	s.xp += r.XPGained
	s.gold += r.GoldGained
	s.winChance = r.WinChance
	s.items += len(r.ItemsGained)
}

func (s *summary) winRate() float64 {
	if s.runs == 0 {
		return 0
	}
	return 100 * float64(s.victories) / float64(s.runs)
}

func (s *summary) print(w io.Writer) {
	if s.runs == 0 {
		fmt.Fprintln(w, "no encounters run")
		return
	}
	runs := float64(s.runs)
	fmt.Fprintf(w, "Encounters:   %d\n", s.runs)
	fmt.Fprintf(w, "Victories:    %d (%.1f%% observed, %d%% expected)\n", s.victories, s.winRate(), s.winChance)
	fmt.Fprintf(w, "Avg rounds:   %.1f\n", float64(s.rounds)/runs)
	fmt.Fprintf(w, "Avg XP/gold:  %.1f / %.1f\n", float64(s.xp)/runs, float64(s.gold)/runs)
	fmt.Fprintf(w, "Items looted: %d\n", s.items)
}
