package services

import (
	"testing"

	"SahaayGo/models"
)

func moodRef(m models.Mood) *models.Mood {
	return &m
}

func TestResolveMoodIntensity(t *testing.T) {
	tests := []struct {
		name string
		mood *models.Mood
		want int
	}{
		{"anxious", moodRef(models.MoodAnxious), 8},
		{"frustrated", moodRef(models.MoodFrustrated), 7},
		{"sad", moodRef(models.MoodSad), 6},
		{"neutral", moodRef(models.MoodNeutral), 4},
		{"calm", moodRef(models.MoodCalm), 3},
		{"happy", moodRef(models.MoodHappy), 2},
		{"absent defaults to 5", nil, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveMoodIntensity(tt.mood); got != tt.want {
				t.Errorf("ResolveMoodIntensity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveMoodIntensityRange(t *testing.T) {
	for _, m := range models.AllMoods {
		got := ResolveMoodIntensity(&m)
		if got < 1 || got > 10 {
			t.Errorf("ResolveMoodIntensity(%s) = %d, out of range [1,10]", m, got)
		}
	}
}
