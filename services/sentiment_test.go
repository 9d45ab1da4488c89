package services

import (
	"reflect"
	"testing"
)

func TestAnalyzeSentiment(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantCrisis   bool
		wantLowMood  bool
		wantStress   bool
		wantKeywords []string
	}{
		{
			name:         "crisis only",
			text:         "I'm having a panic attack, can't breathe",
			wantCrisis:   true,
			wantKeywords: []string{"panic"},
		},
		{
			name:         "low mood only",
			text:         "Feeling hopeless today, everything feels heavy",
			wantLowMood:  true,
			wantKeywords: []string{"hopeless"},
		},
		{
			name:         "stress only",
			text:         "Another deadline at work tomorrow",
			wantStress:   true,
			wantKeywords: []string{"deadline"},
		},
		{
			name:         "crisis and stress together",
			text:         "This deadline is making me panic",
			wantCrisis:   true,
			wantStress:   true,
			wantKeywords: []string{"panic", "deadline"},
		},
		{
			name:         "case insensitive",
			text:         "CAN'T BREATHE right now",
			wantCrisis:   true,
			wantKeywords: []string{"can't breathe"},
		},
		{
			name: "no signal",
			text: "Had a decent lunch with a friend",
		},
		{
			name: "empty text",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeSentiment(tt.text)
			if got.HasCrisis != tt.wantCrisis {
				t.Errorf("HasCrisis = %v, want %v", got.HasCrisis, tt.wantCrisis)
			}
			if got.HasLowMood != tt.wantLowMood {
				t.Errorf("HasLowMood = %v, want %v", got.HasLowMood, tt.wantLowMood)
			}
			if got.HasStress != tt.wantStress {
				t.Errorf("HasStress = %v, want %v", got.HasStress, tt.wantStress)
			}
			if len(tt.wantKeywords) == 0 {
				if len(got.Keywords) != 0 {
					t.Errorf("Keywords = %v, want empty", got.Keywords)
				}
			} else if !reflect.DeepEqual(got.Keywords, tt.wantKeywords) {
				t.Errorf("Keywords = %v, want %v", got.Keywords, tt.wantKeywords)
			}
		})
	}
}

// 同组命中多个词时只记录列表顺序里的第一个
func TestAnalyzeSentimentFirstMatchOnly(t *testing.T) {
	got := AnalyzeSentiment("I'm terrified and starting to panic")
	if !got.HasCrisis {
		t.Fatal("expected HasCrisis = true")
	}
	want := []string{"panic"}
	if !reflect.DeepEqual(got.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", got.Keywords, want)
	}
}
