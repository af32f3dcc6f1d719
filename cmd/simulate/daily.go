package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/osse101/Skirmish_Go/internal/idle"
	"github.com/osse101/Skirmish_Go/internal/kvstore"
	"github.com/osse101/Skirmish_Go/internal/mission"
)

// DailyCommand replays consecutive idle days for one hero
type DailyCommand struct {
	out io.Writer
}

func (c *DailyCommand) Name() string { return "daily" }

func (c *DailyCommand) Description() string {
	return "Run the once-per-day idle result for consecutive days"
}

func (c *DailyCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	var hero heroFlags
	hero.register(fs)
	days := fs.Int("days", 7, "number of days")
	start := fs.String("start", "", "first day as YYYY-MM-DD (default: today)")
	tz := fs.String("tz", "UTC", "timezone for day boundaries")
	maxRuns := fs.Int("max-runs", 0, "runs per day (0: tier count)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	loc, err := time.LoadLocation(*tz)
	if err != nil {
		return err
	}

	day := time.Now().In(loc)
	if *start != "" {
		if day, err = time.ParseInLocation(idle.DateKeyLayout, *start, loc); err != nil {
			return err
		}
	}
	// noon keeps DST shifts from crossing a date boundary
	day = time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, loc)

	bestiary, err := hero.bestiary()
	if err != nil {
		return err
	}

	clock := day
	svc := idle.NewService(kvstore.NewMemory(), mission.NewService(bestiary, hero.maxRounds), loc, func() time.Time { return clock })

	ctx := context.Background()
	snapshot := hero.snapshot()
	xp, gold, wins, runs := 0, 0, 0, 0
	for i := 0; i < *days; i++ {
		clock = day.AddDate(0, 0, i)
		result, err := svc.GetOrRunDailyResult(ctx, snapshot, *maxRuns)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, mission.FormatDaily(result))
		xp += result.XPTotal
		gold += result.GoldTotal
		wins += result.Victories
		runs += len(result.Runs)
	}

	fmt.Fprintf(c.out, "Total over %d days: %d/%d victories, %d XP, %d gold\n", *days, wins, runs, xp, gold)
	return nil
}
