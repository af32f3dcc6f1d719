package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/osse101/Skirmish_Go/internal/mission"
)

// PlanCommand previews the mission for a hero level without fighting it
type PlanCommand struct {
	out io.Writer
}

func (c *PlanCommand) Name() string { return "plan" }

func (c *PlanCommand) Description() string {
	return "Show the roster, odds and rewards for a hero level"
}

func (c *PlanCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	var hero heroFlags
	hero.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	bestiary, err := hero.bestiary()
	if err != nil {
		return err
	}

	plan, err := mission.NewService(bestiary, hero.maxRounds).GenerateMission(context.Background(), hero.snapshot())
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Tier:       %d\n", plan.Tier)
	for _, e := range plan.Enemies {
		fmt.Fprintf(c.out, "Enemy:      %d x %s (level %d)\n", e.Count, e.Type, e.Level)
	}
	fmt.Fprintf(c.out, "Win chance: %d%%\n", plan.WinChance)
	fmt.Fprintf(c.out, "Victory:    %d XP, %d gold\n", plan.VictoryRewards.XP, plan.VictoryRewards.Gold)
	fmt.Fprintf(c.out, "Defeat:     %d XP, %d gold\n", plan.DefeatRewards.XP, plan.DefeatRewards.Gold)
	return nil
}
