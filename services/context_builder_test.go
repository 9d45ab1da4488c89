package services

import (
	"testing"
	"time"

	"SahaayGo/models"
)

func fixedClockBuilder(now time.Time) *ContextBuilder {
	b := NewContextBuilder()
	b.now = func() time.Time { return now }
	return b
}

func TestBuildCurrentMoodFromToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	b := fixedClockBuilder(now)

	checkIns := []models.CheckIn{
		{ID: "c1", Mood: "anxious", RecordDate: now.Add(-2 * time.Hour)},
		{ID: "c2", Mood: "calm", RecordDate: now.Add(-6 * time.Hour)},
		{ID: "c3", Mood: "happy", RecordDate: now.AddDate(0, 0, -1)},
	}

	rc, err := b.Build(checkIns, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if rc.CurrentMood == nil || *rc.CurrentMood != models.MoodAnxious {
		t.Errorf("CurrentMood = %v, want anxious", rc.CurrentMood)
	}
	if rc.MoodIntensity != 8 {
		t.Errorf("MoodIntensity = %d, want 8", rc.MoodIntensity)
	}
}

// 组件不做排序，序列顺序反过来时取到的就是另一条记录
func TestBuildPreservesCallerOrder(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	b := fixedClockBuilder(now)

	checkIns := []models.CheckIn{
		{ID: "c2", Mood: "calm", RecordDate: now.Add(-6 * time.Hour)},
		{ID: "c1", Mood: "anxious", RecordDate: now.Add(-2 * time.Hour)},
	}

	rc, err := b.Build(checkIns, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if rc.CurrentMood == nil || *rc.CurrentMood != models.MoodCalm {
		t.Errorf("CurrentMood = %v, want calm (first element in caller order)", rc.CurrentMood)
	}
}

func TestBuildNoCheckInsToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	b := fixedClockBuilder(now)

	checkIns := []models.CheckIn{
		{ID: "c1", Mood: "sad", RecordDate: now.AddDate(0, 0, -1)},
		{ID: "c2", Mood: "happy", RecordDate: now.AddDate(0, 0, -3)},
	}

	rc, err := b.Build(checkIns, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if rc.CurrentMood != nil {
		t.Errorf("CurrentMood = %v, want nil", *rc.CurrentMood)
	}
	if rc.MoodIntensity != 5 {
		t.Errorf("MoodIntensity = %d, want default 5", rc.MoodIntensity)
	}
}

func TestBuildInvalidMood(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	b := fixedClockBuilder(now)

	checkIns := []models.CheckIn{
		{ID: "c1", Mood: "furious", RecordDate: now.Add(-time.Hour)},
	}

	if _, err := b.Build(checkIns, nil); err == nil {
		t.Fatal("Build() expected error for invalid mood, got nil")
	}
}

func TestBuildChatSummary(t *testing.T) {
	b := fixedClockBuilder(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	messages := []models.ChatMessage{
		{Content: "one"},
		{Content: "two"},
		{Content: "three"},
		{Content: "four"},
		{Content: "five"},
		{Content: "six"},
		{Content: "seven"},
	}

	rc, err := b.Build(nil, messages)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := "one two three four five"
	if rc.RecentChatSummary != want {
		t.Errorf("RecentChatSummary = %q, want %q", rc.RecentChatSummary, want)
	}
}

func TestBuildKeywordsFromSummary(t *testing.T) {
	b := fixedClockBuilder(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	messages := []models.ChatMessage{
		{Content: "the deadline is close"},
		{Content: "I feel so alone"},
	}

	rc, err := b.Build(nil, messages)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(rc.ChatKeywords) != 2 {
		t.Fatalf("ChatKeywords = %v, want two entries", rc.ChatKeywords)
	}
	if rc.ChatKeywords[0] != "alone" || rc.ChatKeywords[1] != "deadline" {
		t.Errorf("ChatKeywords = %v, want [alone deadline]", rc.ChatKeywords)
	}
}

func TestBuildEmptyInputs(t *testing.T) {
	b := fixedClockBuilder(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	rc, err := b.Build(nil, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if rc.CurrentMood != nil {
		t.Error("CurrentMood should be nil for empty check-ins")
	}
	if rc.MoodIntensity != 5 {
		t.Errorf("MoodIntensity = %d, want 5", rc.MoodIntensity)
	}
	if rc.RecentChatSummary != "" {
		t.Errorf("RecentChatSummary = %q, want empty", rc.RecentChatSummary)
	}
	if len(rc.ChatKeywords) != 0 {
		t.Errorf("ChatKeywords = %v, want empty", rc.ChatKeywords)
	}
}
