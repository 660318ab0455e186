package macro

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const dateFormat = "2006-01-02"

const createEstimatesTableSQL = `CREATE TABLE IF NOT EXISTS estimates (
  id INTEGER PRIMARY KEY,
  date TEXT NOT NULL,
  weight_lbs REAL NOT NULL,
  activity_hours REAL NOT NULL,
  calories INTEGER NOT NULL,
  protein INTEGER NOT NULL,
  carbs INTEGER NOT NULL,
  fats INTEGER NOT NULL
)`

// Entry is one logged estimate.
type Entry struct {
	ID            int     `db:"id"`
	Date          string  `db:"date"`
	WeightLbs     float64 `db:"weight_lbs"`
	ActivityHours float64 `db:"activity_hours"`
	Calories      int     `db:"calories"`
	Protein       int     `db:"protein"`
	Carbs         int     `db:"carbs"`
	Fats          int     `db:"fats"`
}

// CreateEstimatesTable ensures the estimates log table exists.
func CreateEstimatesTable(db *sqlx.DB) error {
	_, err := db.Exec(createEstimatesTableSQL)
	return err
}

// AddEstimate appends today's computed targets to the estimates log.
func AddEstimate(db *sqlx.DB, in FitnessInput, out FitnessOutput) error {
	const insertSQL = `INSERT INTO estimates
  (date, weight_lbs, activity_hours, calories, protein, carbs, fats)
  VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := db.Exec(insertSQL, time.Now().Format(dateFormat),
		in.WeightLbs, in.ActivityHours,
		out.Calories, out.Protein, out.Carbs, out.Fats)
	return err
}

// AllEntries returns every logged estimate, oldest first.
func AllEntries(db *sqlx.DB) ([]Entry, error) {
	var entries []Entry
	err := db.Select(&entries, `SELECT * FROM estimates ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ExportCSV writes the estimates log as a CSV file at path,
// overwriting any previous export.
func ExportCSV(db *sqlx.DB, path string) error {
	entries, err := AllEntries(db)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString("date,weight,calories,protein,carbs,fats\n"); err != nil {
		return err
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s,%.2f,%d,%d,%d,%d\n",
			e.Date, e.WeightLbs, e.Calories, e.Protein, e.Carbs, e.Fats)
		if _, err := f.WriteString(line); err != nil {
			return err
		}
	}
	return nil
}
