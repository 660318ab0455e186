package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ericstrs/macro"
)

// promptUserInfo collects the user's measurements, converting metric
// entries to the imperial units the estimator works in.
func promptUserInfo(u *macro.UserInfo) {
	fmt.Println("Step 1: Your details.")

	u.System = "imperial"
	s := getSystem()
	if s == "1" {
		u.System = "metric"
	}

	u.Gender = getGender()
	u.Weight = getWeight(u.System)
	u.Height = getHeight(u.System)
	u.Age = getAge()
	u.ActivityHours = getActivityHours()
}

// getSystem prompts user for their preferred measurement system,
// validates their response, and returns a valid measurement system.
func getSystem() (s string) {
	for {
		s = promptSystem()

		if err := validateSystem(s); err != nil {
			fmt.Println("Invalid option. Please try again.")
			continue
		}

		break
	}
	return s
}

// promptSystem prompts and returns user's preferred measurement system.
func promptSystem() (s string) {
	fmt.Println("Set measurement system to:")
	fmt.Println("1. Metric (kg/cm)")
	fmt.Println("2. Imperial (lbs/inches)")
	fmt.Printf("Type number and <Enter>: ")
	fmt.Scanln(&s)
	return s
}

// validateSystem validates the user's preferred measurement system.
func validateSystem(s string) error {
	s = strings.ToLower(s)
	if s == "1" || s == "2" {
		return nil
	}

	return errors.New("Invalid option.")
}

// getGender prompts user for their gender, validates their response,
// and returns valid gender text.
func getGender() string {
	var s string
	for {
		fmt.Print("Enter gender (male/female): ")
		fmt.Scanln(&s)

		g, err := macro.ParseGender(s)
		if err != nil {
			fmt.Println("Must enter \"male\" or \"female\". Please try again.")
			continue
		}

		return g.String()
	}
}

// getWeight prompts user for weight, validates their response, and
// returns weight in pounds.
func getWeight(system string) float64 {
	var weight float64
	for {
		switch system {
		case "metric":
			fmt.Print("Enter weight (kgs): ")
			if _, err := fmt.Scan(&weight); err != nil {
				fmt.Printf("Error reading weight: %v. Please try again.\n", err)
				continue
			}
			weight = macro.KgToLbs(weight)
		default:
			fmt.Print("Enter weight (lbs): ")
			if _, err := fmt.Scan(&weight); err != nil {
				fmt.Printf("Error reading weight: %v. Please try again.\n", err)
				continue
			}
		}

		if weight <= 0 {
			fmt.Println("Weight must be positive. Please try again.")
			continue
		}

		break
	}

	return weight
}

// getHeight prompts user for height, validates their response, and
// returns their height in inches.
func getHeight(system string) float64 {
	var height float64
	for {
		switch system {
		case "metric":
			fmt.Print("Enter height (cm): ")
			if _, err := fmt.Scan(&height); err != nil {
				fmt.Printf("Error reading height: %v. Please try again.\n", err)
				continue
			}
			height = macro.CmToInches(height)
		default:
			// Prompt for feet portion.
			fmt.Print("What is your height (feet portion)? ")
			var feet int
			if _, err := fmt.Scan(&feet); err != nil {
				fmt.Printf("Error reading feet: %v. Please try again.\n", err)
				continue
			}

			// Prompt for inches portion.
			fmt.Print("What is your height (inches portion)? ")
			var inches float64
			if _, err := fmt.Scan(&inches); err != nil {
				fmt.Printf("Error reading inches: %v. Please try again.\n", err)
				continue
			}

			height = macro.FeetInchesToInches(feet, inches)
		}

		if height <= 0 {
			fmt.Println("Height must be positive. Please try again.")
			continue
		}

		break
	}

	return height
}

// getAge prompts user for age, validates their response, and returns
// valid age.
func getAge() (age int) {
	var err error
	for {
		ageStr := promptAge()

		age, err = validateAge(ageStr)
		if err != nil {
			fmt.Println("Invalid age. Please try again.")
			continue
		}

		break
	}
	return age
}

// promptAge prompts user for their age and returns age as a string.
func promptAge() (a string) {
	fmt.Print("Enter age: ")
	fmt.Scanln(&a)
	return a
}

// validateAge validates user age and returns conversion from string to
// int if valid.
func validateAge(ageStr string) (int, error) {
	a, err := strconv.Atoi(ageStr)
	if err != nil || a <= 0 {
		return 0, errors.New("Invalid age.")
	}

	return a, nil
}

// getActivityHours prompts user for weekly exercise hours, validates
// their response, and returns valid hours.
func getActivityHours() (hours float64) {
	for {
		fmt.Print("Enter hours of exercise per week: ")
		if _, err := fmt.Scan(&hours); err != nil {
			fmt.Printf("Error reading hours: %v. Please try again.\n", err)
			continue
		}

		if hours < 0 {
			fmt.Println("Hours must be non-negative. Please try again.")
			continue
		}

		break
	}

	return hours
}
