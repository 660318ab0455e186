package macro

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("couldn't connect to database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := CreateEstimatesTable(db); err != nil {
		t.Fatalf("couldn't create estimates table: %v", err)
	}
	return db
}

func TestEstimatesLog(t *testing.T) {
	db := testDB(t)

	in := FitnessInput{Age: 30, HeightInches: 70, WeightLbs: 180, Gender: Male, ActivityHours: 5}
	out, err := Estimate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := AddEstimate(db, in, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in.WeightLbs = 178.5
	out2, err := Estimate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := AddEstimate(db, in, out2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := AllEntries(db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Calories != out.Calories || entries[0].Protein != out.Protein {
		t.Errorf("first entry = %+v, want targets %+v", entries[0], out)
	}
	if entries[1].WeightLbs != 178.5 {
		t.Errorf("second entry weight = %v, want 178.5", entries[1].WeightLbs)
	}
	if entries[0].Date == "" {
		t.Error("entry date is empty")
	}
}

func TestExportCSV(t *testing.T) {
	db := testDB(t)

	in := FitnessInput{Age: 30, HeightInches: 70, WeightLbs: 180, Gender: Male, ActivityHours: 5}
	out, err := Estimate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := AddEstimate(db, in, out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "history.csv")
	if err := ExportCSV(db, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 entries", len(lines))
	}
	if lines[0] != "date,weight,calories,protein,carbs,fats" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "180.00") {
		t.Errorf("unexpected entry line: %q", lines[1])
	}
}
