// Package macro computes daily calorie and macronutrient targets.
package macro

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	calsInProtein = 4 // Calories per gram of protein.
	calsInCarbs   = 4 // Calories per gram of carbohydrate.
	calsInFats    = 9 // Calories per gram of fat.

	proteinPerKg = 1.6 // Grams of protein per kilogram of bodyweight.
	fatCalShare  = 0.3 // Share of daily calories allotted to fat.
)

// Estimator failure classes. Callers match on these to decide which
// field to re-prompt for.
var (
	ErrInvalidGender       = errors.New("invalid gender")
	ErrInvalidNumericInput = errors.New("invalid numeric input")
)

// Gender is one of exactly two values used by the Mifflin-St Jeor
// equation. The zero value is not valid; use ParseGender.
type Gender int

const (
	Male Gender = iota + 1
	Female
)

// ParseGender normalizes s and returns the matching gender. Anything
// other than "male" or "female" is rejected; there is no fallback
// value.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidGender, s)
}

func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	}
	return "unknown"
}

// FitnessInput holds the five measurements the estimator works from.
// Height and weight are imperial; callers taking metric input convert
// before constructing the record.
type FitnessInput struct {
	Age           int     // years
	HeightInches  float64
	WeightLbs     float64
	Gender        Gender
	ActivityHours float64 // hours of exercise per week
}

// FitnessOutput holds the computed daily targets.
type FitnessOutput struct {
	Calories int // kcal/day
	Protein  int // g/day
	Carbs    int // g/day
	Fats     int // g/day
}

// validate rejects inputs the estimator has no defined result for.
func validate(in FitnessInput) error {
	if in.Gender != Male && in.Gender != Female {
		return fmt.Errorf("%w: %d", ErrInvalidGender, in.Gender)
	}
	if in.Age <= 0 {
		return fmt.Errorf("%w: age must be positive, got %d", ErrInvalidNumericInput, in.Age)
	}
	if !isFinitePositive(in.HeightInches) {
		return fmt.Errorf("%w: height must be a positive number, got %v", ErrInvalidNumericInput, in.HeightInches)
	}
	if !isFinitePositive(in.WeightLbs) {
		return fmt.Errorf("%w: weight must be a positive number, got %v", ErrInvalidNumericInput, in.WeightLbs)
	}
	if in.ActivityHours < 0 || math.IsNaN(in.ActivityHours) || math.IsInf(in.ActivityHours, 0) {
		return fmt.Errorf("%w: activity hours must be non-negative, got %v", ErrInvalidNumericInput, in.ActivityHours)
	}
	return nil
}

func isFinitePositive(n float64) bool {
	return n > 0 && !math.IsInf(n, 0)
}

// Mifflin calculates and returns the Basal Metabolic Rate (BMR) which
// is based on weight (kg), height (cm), age (years), and gender.
func Mifflin(weightKg, heightCm float64, age int, g Gender) float64 {
	factor := 5.0
	if g == Female {
		factor = -161
	}
	return (10 * weightKg) + (6.25 * heightCm) - (5 * float64(age)) + factor
}

// activityFactor returns the TDEE multiplier for hours of exercise per
// week. Buckets are inclusive on their upper bound.
func activityFactor(hours float64) float64 {
	switch {
	case hours <= 2:
		return 1.2
	case hours <= 5:
		return 1.375
	case hours <= 8:
		return 1.55
	case hours <= 11:
		return 1.725
	default:
		return 1.9
	}
}

// Estimate computes daily calorie and macronutrient targets for the
// given measurements. It is a pure function: identical input always
// yields identical output, and it performs no I/O.
//
// Macronutrients are allotted in order: protein from bodyweight, fat
// as a fixed share of total calories, and carbs as the remainder. The
// carb figure is a residual and may legitimately be negative when the
// calorie target cannot cover the protein and fat allocations.
func Estimate(in FitnessInput) (FitnessOutput, error) {
	if err := validate(in); err != nil {
		return FitnessOutput{}, err
	}

	heightCm := InchesToCm(in.HeightInches)
	weightKg := LbsToKg(in.WeightLbs)

	bmr := Mifflin(weightKg, heightCm, in.Age, in.Gender)
	tdee := bmr * activityFactor(in.ActivityHours)
	calories := math.Round(tdee)

	// Protein calories come from the rounded gram value, not the raw
	// product.
	protein := math.Round(weightKg * proteinPerKg)
	proteinCals := protein * calsInProtein

	// Fat share is taken from the rounded calorie total, not raw TDEE.
	fatCals := calories * fatCalShare
	fats := math.Round(fatCals / calsInFats)

	// Carbs are the residual. Not clamped.
	carbCals := calories - (proteinCals + fatCals)
	carbs := math.Round(carbCals / calsInCarbs)

	return FitnessOutput{
		Calories: int(calories),
		Protein:  int(protein),
		Carbs:    int(carbs),
		Fats:     int(fats),
	}, nil
}
