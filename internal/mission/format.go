package mission

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/Skirmish_Go/internal/domain"
)

var printer = message.NewPrinter(language.English)

// FormatLog formats a combat result as plain text
func FormatLog(result *domain.CombatResult) string {
	var sb strings.Builder

	for _, line := range result.Log {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("---\n")
	if result.Victory {
		sb.WriteString("Outcome: victory")
	} else {
		sb.WriteString("Outcome: defeat")
	}
	sb.WriteString(printer.Sprintf(" after %d rounds (%d%% win chance)\n", result.Rounds, result.WinChance))

	sb.WriteString(printer.Sprintf("Rewards: %d XP, %d gold", result.XPGained, result.GoldGained))
	if len(result.ItemsGained) > 0 {
		sb.WriteString(", ")
		sb.WriteString(strings.Join(result.ItemsGained, ", "))
	}
	sb.WriteString("\n")

	return sb.String()
}

// FormatDaily formats a daily aggregate as plain text, one block per run
func FormatDaily(result *domain.DailyResult) string {
	var sb strings.Builder

	sb.WriteString(printer.Sprintf("Daily report %s for %s\n", result.DateKey, result.HeroID))
	for i := range result.Runs {
		sb.WriteString(printer.Sprintf("=== Run %d ===\n", i+1))
		sb.WriteString(FormatLog(&result.Runs[i]))
	}
	sb.WriteString(printer.Sprintf("Total: %d/%d victories, %d XP, %d gold\n",
		result.Victories, len(result.Runs), result.XPTotal, result.GoldTotal))

	return sb.String()
}
