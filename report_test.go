package macro

import (
	"path/filepath"
	"testing"
)

func testEntries() []Entry {
	return []Entry{
		{Date: "2023-01-01", WeightLbs: 180, ActivityHours: 5, Calories: 2400, Protein: 130, Carbs: 290, Fats: 80},
		{Date: "2023-01-02", WeightLbs: 181, ActivityHours: 5, Calories: 2450, Protein: 131, Carbs: 295, Fats: 81},
		{Date: "2023-01-03", WeightLbs: 182, ActivityHours: 5, Calories: 2500, Protein: 132, Carbs: 300, Fats: 83},
	}
}

func TestHistoryFrame(t *testing.T) {
	df := HistoryFrame(testEntries())

	if got := df.NRows(); got != 3 {
		t.Fatalf("got %d rows, want 3", got)
	}
	if got := len(df.Series); got != 6 {
		t.Fatalf("got %d series, want 6", got)
	}

	avgCals, err := AverageCalories(df)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avgCals != 2450 {
		t.Errorf("average calories = %v, want 2450", avgCals)
	}

	avgProtein, err := AverageProtein(df)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avgProtein != 131 {
		t.Errorf("average protein = %v, want 131", avgProtein)
	}
}

func TestAverageCaloriesEmpty(t *testing.T) {
	df := HistoryFrame(nil)

	if _, err := AverageCalories(df); err == nil {
		t.Error("expected error for empty frame")
	}
}

func TestReadHistoryCSV(t *testing.T) {
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

	df, err := ReadHistoryCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := df.NRows(); got != 2 {
		t.Fatalf("got %d rows, want 2", got)
	}

	avg, err := AverageCalories(df)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != float64(out.Calories) {
		t.Errorf("average calories = %v, want %d", avg, out.Calories)
	}
}
