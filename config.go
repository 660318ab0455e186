package macro

import (
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultConfigPath is the path to the user config file.
const DefaultConfigPath = "./config.yaml"

// UserInfo is the stored user profile. Height and weight are kept in
// imperial units regardless of the measurement system used at entry.
type UserInfo struct {
	Gender        string  `yaml:"gender"`
	Weight        float64 `yaml:"weight"` // lbs
	Height        float64 `yaml:"height"` // inches
	Age           int     `yaml:"age"`
	ActivityHours float64 `yaml:"activity_hours"` // hours per week
	System        string  `yaml:"system"`
	Targets       Targets `yaml:"targets"`
}

// Targets holds the most recently computed daily targets.
type Targets struct {
	Calories int `yaml:"calories"`
	Protein  int `yaml:"protein"`
	Carbs    int `yaml:"carbs"`
	Fats     int `yaml:"fats"`
}

// SaveConfig writes u to the yaml config file at path.
func SaveConfig(path string, u *UserInfo) error {
	data, err := yaml.Marshal(u)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadConfig reads the yaml config file at path. A missing file is
// surfaced unchanged so callers can test it with os.IsNotExist and
// fall back to first-run prompting.
func LoadConfig(path string) (*UserInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var u UserInfo
	if err := yaml.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Input converts the stored profile into an estimator input.
func (u *UserInfo) Input() (FitnessInput, error) {
	g, err := ParseGender(u.Gender)
	if err != nil {
		return FitnessInput{}, err
	}
	return FitnessInput{
		Age:           u.Age,
		HeightInches:  u.Height,
		WeightLbs:     u.Weight,
		Gender:        g,
		ActivityHours: u.ActivityHours,
	}, nil
}
