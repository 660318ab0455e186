package macro

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
)

// Dataframe columns for the history frame.
const (
	dateCol    = 0
	weightCol  = 1
	calsCol    = 2
	proteinCol = 3
	carbsCol   = 4
	fatsCol    = 5
)

// HistoryFrame loads logged estimates into a dataframe.
func HistoryFrame(entries []Entry) *dataframe.DataFrame {
	s1 := dataframe.NewSeriesString("date", nil)
	s2 := dataframe.NewSeriesString("weight", nil)
	s3 := dataframe.NewSeriesString("calories", nil)
	s4 := dataframe.NewSeriesString("protein", nil)
	s5 := dataframe.NewSeriesString("carbs", nil)
	s6 := dataframe.NewSeriesString("fats", nil)
	df := dataframe.NewDataFrame(s1, s2, s3, s4, s5, s6)

	for _, e := range entries {
		df.Append(nil, e.Date, fmt.Sprintf("%.2f", e.WeightLbs),
			strconv.Itoa(e.Calories), strconv.Itoa(e.Protein),
			strconv.Itoa(e.Carbs), strconv.Itoa(e.Fats))
	}

	return df
}

// ReadHistoryCSV reads an exported estimates CSV into a dataframe.
func ReadHistoryCSV(path string) (*dataframe.DataFrame, error) {
	csvfile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer csvfile.Close()

	ctx := context.TODO()
	return imports.LoadFromCSV(ctx, csvfile)
}

// AverageCalories returns the mean calorie target across the logged
// window.
func AverageCalories(df *dataframe.DataFrame) (float64, error) {
	return averageCol(df, calsCol)
}

// AverageProtein returns the mean protein target across the logged
// window.
func AverageProtein(df *dataframe.DataFrame) (float64, error) {
	return averageCol(df, proteinCol)
}

func averageCol(df *dataframe.DataFrame, col int) (float64, error) {
	n := df.NRows()
	if n < 1 {
		return 0, errors.New("not enough entries to produce metrics")
	}

	var sum float64
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(df.Series[col].Value(i).(string), 64)
		if err != nil {
			return 0, err
		}
		sum += v
	}

	return sum / float64(n), nil
}
