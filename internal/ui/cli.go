package ui

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ericstrs/macro"
	"github.com/jmoiron/sqlx"
)

const (
	historyUsage = `USAGE

	macro history show   - Print logged estimates and averages.
	macro history export - Export logged estimates to a CSV file.
`
)

// EstimateCmd computes and prints the daily targets. On first run it
// prompts for the user's measurements and saves them; afterwards it
// reads them from the config file. When MACRO_DB_PATH is set, each
// result is appended to the estimates log.
func EstimateCmd(args []string) error {
	u, err := loadOrPromptConfig()
	if err != nil {
		return err
	}

	in, err := u.Input()
	if err != nil {
		return fmt.Errorf("ERROR: invalid profile: %w", err)
	}

	out, err := macro.Estimate(in)
	if err != nil {
		return fmt.Errorf("ERROR: couldn't compute targets: %w", err)
	}

	u.Targets = macro.Targets{
		Calories: out.Calories,
		Protein:  out.Protein,
		Carbs:    out.Carbs,
		Fats:     out.Fats,
	}
	if err := macro.SaveConfig(macro.DefaultConfigPath, u); err != nil {
		return fmt.Errorf("ERROR: couldn't save config: %w", err)
	}

	printTargets(out)

	// Append to the estimates log when a database is configured.
	if dbPath := os.Getenv("MACRO_DB_PATH"); dbPath != "" {
		db, err := sqlx.Connect("sqlite", dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := macro.CreateEstimatesTable(db); err != nil {
			return err
		}
		if err := macro.AddEstimate(db, in, out); err != nil {
			return err
		}
		fmt.Println("Added entry.")
	}

	return nil
}

// UpdateCmd re-prompts the user's measurements, recomputes the daily
// targets, and saves both to the config file.
func UpdateCmd(args []string) error {
	fmt.Println("Update your information.")

	u := &macro.UserInfo{}
	promptUserInfo(u)

	if err := computeAndSave(u); err != nil {
		return err
	}

	fmt.Println("Updated information:")
	printUserInfo(u)
	return nil
}

// HistoryCmd shows or exports the logged estimates.
func HistoryCmd(args []string) error {
	if len(args) < 3 {
		printUsageExit(`ERROR: Not enough arguments`, historyUsage)
	}
	dbPath := os.Getenv("MACRO_DB_PATH")
	if dbPath == "" {
		log.Fatal("Environment variable MACRO_DB_PATH must be set")
	}
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := macro.CreateEstimatesTable(db); err != nil {
		return err
	}

	switch strings.ToLower(args[2]) {
	case `show`:
		entries, err := macro.AllEntries(db)
		if err != nil {
			return err
		}
		df := macro.HistoryFrame(entries)
		fmt.Print(df.Table())

		avgCals, err := macro.AverageCalories(df)
		if err != nil {
			return err
		}
		avgProtein, err := macro.AverageProtein(df)
		if err != nil {
			return err
		}
		fmt.Printf("Average calorie target: %.2f kcal\n", avgCals)
		fmt.Printf("Average protein target: %.2f g\n", avgProtein)
	case `export`:
		path := "./history.csv"
		if len(args) > 3 {
			path = args[3]
		}
		if err := macro.ExportCSV(db, path); err != nil {
			return err
		}
		fmt.Println("Exported estimates to", path)
	case `help`:
		fmt.Printf(historyUsage)
	default:
		printUsageExit(`ERROR: Incorrect argument`, historyUsage)
	}
	return nil
}

// SummaryCmd prints the stored measurements and current targets.
func SummaryCmd(args []string) error {
	u, err := macro.LoadConfig(macro.DefaultConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no config file found. Run \"macro estimate\" first")
		}
		return fmt.Errorf("ERROR: reading config: %w", err)
	}

	printUserInfo(u)
	return nil
}

// loadOrPromptConfig reads the user's config file, prompting for and
// saving their measurements when no config exists yet.
func loadOrPromptConfig() (*macro.UserInfo, error) {
	u, err := macro.LoadConfig(macro.DefaultConfigPath)
	if err == nil {
		return u, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("ERROR: reading config: %w", err)
	}

	fmt.Println("Welcome! Please provide required information:")
	u = &macro.UserInfo{}
	promptUserInfo(u)

	if err := macro.SaveConfig(macro.DefaultConfigPath, u); err != nil {
		return nil, fmt.Errorf("ERROR: couldn't save config: %w", err)
	}
	fmt.Println("User info saved successfully.")

	return u, nil
}

// computeAndSave recomputes targets from u and writes the config file.
func computeAndSave(u *macro.UserInfo) error {
	in, err := u.Input()
	if err != nil {
		return err
	}
	out, err := macro.Estimate(in)
	if err != nil {
		return err
	}
	u.Targets = macro.Targets{
		Calories: out.Calories,
		Protein:  out.Protein,
		Carbs:    out.Carbs,
		Fats:     out.Fats,
	}
	return macro.SaveConfig(macro.DefaultConfigPath, u)
}

// printTargets prints the computed daily targets.
func printTargets(out macro.FitnessOutput) {
	fmt.Printf("Calories: %d kcal\n", out.Calories)
	fmt.Printf("Protein: %d g\n", out.Protein)
	fmt.Printf("Carbs: %d g\n", out.Carbs)
	fmt.Printf("Fats: %d g\n", out.Fats)

	if out.Carbs < 0 {
		fmt.Println("Warning: calorie target cannot cover the protein and fat allocations; carb target is negative.")
	}
}

// printUserInfo prints the user's stored profile.
func printUserInfo(u *macro.UserInfo) {
	fmt.Println("User Information:")
	fmt.Printf("Measurement System: %s\n", u.System)
	fmt.Printf("Gender: %s\n", u.Gender)

	switch u.System {
	case "metric":
		fmt.Printf("Weight: %.2f kg\n", macro.LbsToKg(u.Weight))
		fmt.Printf("Height: %.2f cm\n", macro.InchesToCm(u.Height))
	default:
		feet, inches := macro.InchesToFeetInches(u.Height)
		fmt.Printf("Weight: %.2f lbs\n", u.Weight)
		fmt.Printf("Height: %d' %.2f\"\n", feet, inches)
	}

	fmt.Printf("Age: %d\n", u.Age)
	fmt.Printf("Activity: %.1f hours/week\n", u.ActivityHours)
	printTargets(macro.FitnessOutput{
		Calories: u.Targets.Calories,
		Protein:  u.Targets.Protein,
		Carbs:    u.Targets.Carbs,
		Fats:     u.Targets.Fats,
	})
}

// printUsageExit prints error message and usage statement, then exits
// the program with error code 1.
func printUsageExit(m, s string) {
	fmt.Fprintln(os.Stderr, m)
	fmt.Fprintf(os.Stderr, s)
	os.Exit(1)
}
