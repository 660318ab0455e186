package macro

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := &UserInfo{
		Gender:        "male",
		Weight:        180,
		Height:        70,
		Age:           30,
		ActivityHours: 5,
		System:        "imperial",
		Targets:       Targets{Calories: 2451, Protein: 131, Carbs: 298, Fats: 82},
	}
	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != *want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("got %v, want file-not-found", err)
	}
}

func TestUserInfoInput(t *testing.T) {
	u := &UserInfo{Gender: "Female", Weight: 150, Height: 64, Age: 40, ActivityHours: 3}

	in, err := u.Input()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Gender != Female {
		t.Errorf("gender = %v, want female", in.Gender)
	}
	if in.WeightLbs != 150 || in.HeightInches != 64 || in.Age != 40 || in.ActivityHours != 3 {
		t.Errorf("unexpected input: %+v", in)
	}
}

func TestUserInfoInputBadGender(t *testing.T) {
	u := &UserInfo{Gender: "other", Weight: 150, Height: 64, Age: 40}

	_, err := u.Input()
	if !errors.Is(err, ErrInvalidGender) {
		t.Errorf("got %v, want ErrInvalidGender", err)
	}
}
