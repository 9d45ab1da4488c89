package models

import (
	"testing"
)

func TestParseMood(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mood
		wantErr bool
	}{
		{"anxious", "anxious", MoodAnxious, false},
		{"frustrated", "frustrated", MoodFrustrated, false},
		{"sad", "sad", MoodSad, false},
		{"neutral", "neutral", MoodNeutral, false},
		{"calm", "calm", MoodCalm, false},
		{"happy", "happy", MoodHappy, false},
		{"unknown value", "angry", "", true},
		{"empty", "", "", true},
		{"case sensitive", "Anxious", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMood(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMood(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseMood(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range AllCategories {
		got, err := ParseCategory(string(c))
		if err != nil {
			t.Errorf("ParseCategory(%q) unexpected error: %v", c, err)
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %v, want %v", c, got, c)
		}
	}

	if _, err := ParseCategory("meditation"); err == nil {
		t.Error("ParseCategory(\"meditation\") expected error, got nil")
	}
}

func TestSupportsMood(t *testing.T) {
	tool := CopingTool{
		ID:             "box-breathing",
		SupportedMoods: []Mood{MoodAnxious, MoodFrustrated},
	}

	if !tool.SupportsMood(MoodAnxious) {
		t.Error("expected box-breathing to support anxious")
	}
	if tool.SupportsMood(MoodHappy) {
		t.Error("expected box-breathing not to support happy")
	}
}
