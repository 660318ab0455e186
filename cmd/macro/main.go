/*
Macro is a command-line utility for computing daily calorie and
macronutrient targets.

USAGE

	macro [command]

COMMAND

	estimate - Computes daily targets from your measurements.
	update   - Updates measurements and recomputes targets.
	history  - Shows or exports logged estimates.
	summary  - Prints measurements and current targets.
*/
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ericstrs/macro/internal/ui"
	"github.com/joho/godotenv"
)

const usage = `USAGE

	macro [command]

COMMANDS

	estimate - Computes daily targets from your measurements.
	update   - Updates measurements and recomputes targets.
	history  - Shows or exports logged estimates.
	summary  - Prints measurements and current targets.

DESCRIPTION

	Macro is a command-line utility for computing daily calorie and
	macronutrient targets from age, height, weight, gender, and weekly
	exercise hours.

	Appending "help" after any command will print more command information.
`

func main() {
	if err := Run(); err != nil {
		log.Println(err)
	}
}

func Run() error {
	args := os.Args
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, `ERROR: Not enough arguments`)
		fmt.Fprintf(os.Stderr, usage)
		os.Exit(1)
	}

	// Optional .env file may carry MACRO_DB_PATH.
	godotenv.Load()

	switch strings.ToLower(args[1]) {
	case `estimate`:
		if err := ui.EstimateCmd(args); err != nil {
			return err
		}
	case `update`:
		if err := ui.UpdateCmd(args); err != nil {
			return err
		}
	case `history`:
		if err := ui.HistoryCmd(args); err != nil {
			return err
		}
	case `summary`:
		if err := ui.SummaryCmd(args); err != nil {
			return err
		}
	case `help`:
		fmt.Printf(usage)
	default:
		fmt.Fprintln(os.Stderr, `ERROR: Incorrect argument.`)
		fmt.Fprintf(os.Stderr, usage)
		os.Exit(1)
	}
	return nil
}
