// Command simulate runs auto-resolved encounters offline, without the HTTP
// service or a database.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/osse101/Skirmish_Go/internal/logger"
)

func main() {
	_ = godotenv.Load()
	logger.InitLoggerWithWriter(logger.NewConfig(
		os.Getenv("LOG_LEVEL"), logger.LogFormatText, "skirmish-simulate", "dev", "dev", false,
	), os.Stderr)

	registry := NewRegistry()
	registry.Register(&RunCommand{out: os.Stdout})
	registry.Register(&DailyCommand{out: os.Stdout})
	registry.Register(&PlanCommand{out: os.Stdout})

	if len(os.Args) < 2 {
		registry.PrintHelp(os.Stderr)
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		registry.PrintHelp(os.Stderr)
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmd.Name(), err)
		os.Exit(1)
	}
}
