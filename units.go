package macro

import "math"

// LbsToKg converts pounds to kilograms.
func LbsToKg(lbs float64) float64 {
	return lbs * 0.453592
}

// KgToLbs converts kilograms to pounds.
func KgToLbs(kg float64) float64 {
	return kg / 0.453592
}

// InchesToCm converts inches to centimeters.
func InchesToCm(inches float64) float64 {
	return inches * 2.54
}

// CmToInches converts centimeters to inches.
func CmToInches(cm float64) float64 {
	return cm / 2.54
}

// FeetInchesToInches converts height from feet and inches to inches.
func FeetInchesToInches(feet int, inches float64) float64 {
	return (float64(feet) * 12) + inches
}

// InchesToFeetInches converts height from inches to feet and inches.
func InchesToFeetInches(inches float64) (int, float64) {
	feet := int(inches / 12)
	inchesRemainder := math.Mod(inches, 12)
	return feet, inchesRemainder
}
