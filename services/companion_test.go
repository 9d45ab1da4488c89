package services

import (
	"testing"
	"time"

	"SahaayGo/models"
)

func TestFormatCheckIns(t *testing.T) {
	checkIns := []models.CheckIn{
		{Mood: "anxious", RecordDate: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), Note: "rough morning"},
		{Mood: "sad", RecordDate: time.Date(2025, 3, 9, 21, 0, 0, 0, time.UTC)},
	}

	want := "- anxious (2025-03-10): rough morning\n- sad (2025-03-09)\n\nMood counts: anxious x1, sad x1"
	if got := formatCheckIns(checkIns); got != want {
		t.Errorf("formatCheckIns() = %q, want %q", got, want)
	}
}

// 心情统计按固定枚举顺序输出，与打卡顺序无关
func TestFormatCheckInsCountOrder(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	checkIns := []models.CheckIn{
		{Mood: "happy", RecordDate: day},
		{Mood: "anxious", RecordDate: day.AddDate(0, 0, -1)},
		{Mood: "happy", RecordDate: day.AddDate(0, 0, -2)},
	}

	want := "- happy (2025-03-10)\n- anxious (2025-03-09)\n- happy (2025-03-08)\n\nMood counts: anxious x1, happy x2"
	if got := formatCheckIns(checkIns); got != want {
		t.Errorf("formatCheckIns() = %q, want %q", got, want)
	}
}

func TestFormatCheckInsEmpty(t *testing.T) {
	want := "No check-ins in this period"
	if got := formatCheckIns(nil); got != want {
		t.Errorf("formatCheckIns(nil) = %q, want %q", got, want)
	}
}

func TestFormatToolUsages(t *testing.T) {
	usages := []models.ToolUsageSummary{
		{ToolID: "box-breathing", Title: "Box Breathing", UseCount: 3, TotalTime: 540},
		{ToolID: "body-scan", Title: "Body Scan", UseCount: 2, TotalTime: 3900},
	}

	want := "- Body Scan\n  practised 2 times, 1h 5min total\n\n- Box Breathing\n  practised 3 times, 9min total\n\n"
	if got := formatToolUsages(usages); got != want {
		t.Errorf("formatToolUsages() = %q, want %q", got, want)
	}

	// 入参顺序保持不变
	if usages[0].ToolID != "box-breathing" || usages[1].ToolID != "body-scan" {
		t.Error("formatToolUsages() mutated the input slice order")
	}
}

func TestFormatToolUsagesSkipsShortSessions(t *testing.T) {
	usages := []models.ToolUsageSummary{
		{ToolID: "cold-water", Title: "Cold Water Reset", UseCount: 2, TotalTime: 50},
	}

	want := "No exercises practised in this period"
	if got := formatToolUsages(usages); got != want {
		t.Errorf("formatToolUsages() = %q, want %q", got, want)
	}
}

func TestFormatToolUsagesEmpty(t *testing.T) {
	want := "No exercises practised in this period"
	if got := formatToolUsages(nil); got != want {
		t.Errorf("formatToolUsages(nil) = %q, want %q", got, want)
	}
}
