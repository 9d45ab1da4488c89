package services

import (
	"testing"

	"SahaayGo/models"
)

func TestScoreCrisisScenario(t *testing.T) {
	tool := models.CopingTool{
		ID:              "box-breathing",
		Category:        models.CategoryBreathing,
		SupportedMoods:  []models.Mood{models.MoodAnxious},
		IntensityLevel:  models.IntensityHigh,
		DurationMinutes: 2,
	}
	rc := models.RecommendationContext{
		CurrentMood:       moodRef(models.MoodAnxious),
		MoodIntensity:     8,
		RecentChatSummary: "I'm having a panic attack, can't breathe",
	}

	scorer := NewHeuristicScorer()
	if got := scorer.Score(tool, rc); got != 90 {
		t.Errorf("Score() = %d, want 90", got)
	}

	b := scorer.Breakdown(tool, rc)
	if b.Mood != 40 || b.Sentiment != 30 || b.Intensity != 20 || b.Duration != 0 {
		t.Errorf("Breakdown() = %+v, want mood 40 sentiment 30 intensity 20 duration 0", b)
	}
}

func TestScoreLowMoodScenario(t *testing.T) {
	tool := models.CopingTool{
		ID:              "evening-journal",
		Category:        models.CategoryReflection,
		SupportedMoods:  []models.Mood{models.MoodSad},
		IntensityLevel:  models.IntensityLow,
		DurationMinutes: 10,
	}
	rc := models.RecommendationContext{
		CurrentMood:       moodRef(models.MoodSad),
		MoodIntensity:     6,
		RecentChatSummary: "Feeling hopeless today, everything feels heavy",
	}

	if got := NewHeuristicScorer().Score(tool, rc); got != 85 {
		t.Errorf("Score() = %d, want 85", got)
	}
}

func TestScoreNeutralScenario(t *testing.T) {
	rc := models.RecommendationContext{
		CurrentMood:       nil,
		MoodIntensity:     5,
		RecentChatSummary: "",
	}

	tests := []struct {
		name  string
		level models.IntensityLevel
		want  int
	}{
		{"medium intensity", models.IntensityMedium, 30},
		{"low intensity", models.IntensityLow, 25},
		{"high intensity", models.IntensityHigh, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := models.CopingTool{
				ID:              "quick-tool",
				Category:        models.CategoryGrounding,
				IntensityLevel:  tt.level,
				DurationMinutes: 2,
			}
			if got := NewHeuristicScorer().Score(tool, rc); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

// 其它条件完全相同时，支持当前心情的技巧恰好高 20 分
func TestScoreMoodSupportDelta(t *testing.T) {
	rc := models.RecommendationContext{
		CurrentMood:   moodRef(models.MoodFrustrated),
		MoodIntensity: 7,
	}
	supported := models.CopingTool{
		ID:              "a",
		Category:        models.CategoryMovement,
		SupportedMoods:  []models.Mood{models.MoodFrustrated},
		IntensityLevel:  models.IntensityMedium,
		DurationMinutes: 5,
	}
	unsupported := supported
	unsupported.ID = "b"
	unsupported.SupportedMoods = []models.Mood{models.MoodHappy}

	scorer := NewHeuristicScorer()
	diff := scorer.Score(supported, rc) - scorer.Score(unsupported, rc)
	if diff != 20 {
		t.Errorf("score delta = %d, want 20", diff)
	}
}

// 文本同时命中危机词和压力词时，只有危机分支生效
func TestScoreSentimentPriority(t *testing.T) {
	rc := models.RecommendationContext{
		MoodIntensity:     5,
		RecentChatSummary: "this deadline is making me panic",
	}

	scorer := NewHeuristicScorer()

	breathing := models.CopingTool{ID: "a", Category: models.CategoryBreathing, IntensityLevel: models.IntensityLow, DurationMinutes: 10}
	if b := scorer.Breakdown(breathing, rc); b.Sentiment != 30 {
		t.Errorf("breathing sentiment = %d, want 30 (crisis branch)", b.Sentiment)
	}

	movement := models.CopingTool{ID: "b", Category: models.CategoryMovement, IntensityLevel: models.IntensityLow, DurationMinutes: 10}
	if b := scorer.Breakdown(movement, rc); b.Sentiment != 0 {
		t.Errorf("movement sentiment = %d, want 0 (stress branch skipped)", b.Sentiment)
	}

	// grounding 同属危机分支的目标分类，拿的是危机分，不是压力分
	grounding := models.CopingTool{ID: "c", Category: models.CategoryGrounding, IntensityLevel: models.IntensityLow, DurationMinutes: 10}
	if b := scorer.Breakdown(grounding, rc); b.Sentiment != 30 {
		t.Errorf("grounding sentiment = %d, want 30", b.Sentiment)
	}
}

func TestScoreDurationOnlyWithoutStrongMood(t *testing.T) {
	short := models.CopingTool{
		ID:              "a",
		Category:        models.CategoryBreathing,
		SupportedMoods:  []models.Mood{models.MoodAnxious, models.MoodNeutral},
		IntensityLevel:  models.IntensityLow,
		DurationMinutes: 2,
	}

	scorer := NewHeuristicScorer()

	anxious := models.RecommendationContext{CurrentMood: moodRef(models.MoodAnxious), MoodIntensity: 8}
	if b := scorer.Breakdown(short, anxious); b.Duration != 0 {
		t.Errorf("duration component = %d with anxious mood, want 0", b.Duration)
	}

	neutral := models.RecommendationContext{CurrentMood: moodRef(models.MoodNeutral), MoodIntensity: 4}
	if b := scorer.Breakdown(short, neutral); b.Duration != 10 {
		t.Errorf("duration component = %d with neutral mood, want 10", b.Duration)
	}

	absent := models.RecommendationContext{MoodIntensity: 5}
	if b := scorer.Breakdown(short, absent); b.Duration != 10 {
		t.Errorf("duration component = %d with absent mood, want 10", b.Duration)
	}
}

func TestScoreDurationTiers(t *testing.T) {
	rc := models.RecommendationContext{MoodIntensity: 5}
	scorer := NewHeuristicScorer()

	tests := []struct {
		minutes int
		want    int
	}{
		{2, 10},
		{3, 10},
		{4, 5},
		{5, 5},
		{6, 0},
		{15, 0},
	}

	for _, tt := range tests {
		tool := models.CopingTool{
			ID:              "d",
			Category:        models.CategoryReflection,
			IntensityLevel:  models.IntensityHigh,
			DurationMinutes: tt.minutes,
		}
		if b := scorer.Breakdown(tool, rc); b.Duration != tt.want {
			t.Errorf("duration %d min: component = %d, want %d", tt.minutes, b.Duration, tt.want)
		}
	}
}

func TestScoreUpperBound(t *testing.T) {
	// 四个分量的理论最大值正好等于上限
	tool := models.CopingTool{
		ID:              "max",
		Category:        models.CategoryBreathing,
		SupportedMoods:  []models.Mood{models.MoodNeutral},
		IntensityLevel:  models.IntensityMedium,
		DurationMinutes: 3,
	}
	rc := models.RecommendationContext{
		CurrentMood:       moodRef(models.MoodNeutral),
		MoodIntensity:     4,
		RecentChatSummary: "I feel like I'm falling apart",
	}

	if got := NewHeuristicScorer().Score(tool, rc); got != 100 {
		t.Errorf("Score() = %d, want 100", got)
	}
}

func TestScoreRange(t *testing.T) {
	scorer := NewHeuristicScorer()
	summaries := []string{"", "panic and deadline and hopeless", "just a normal day"}
	moods := []*models.Mood{nil, moodRef(models.MoodAnxious), moodRef(models.MoodNeutral), moodRef(models.MoodHappy)}

	for _, category := range models.AllCategories {
		for _, level := range []models.IntensityLevel{models.IntensityLow, models.IntensityMedium, models.IntensityHigh} {
			for _, minutes := range []int{1, 4, 20} {
				for _, mood := range moods {
					for _, summary := range summaries {
						tool := models.CopingTool{
							ID:              "grid",
							Category:        category,
							SupportedMoods:  []models.Mood{models.MoodAnxious},
							IntensityLevel:  level,
							DurationMinutes: minutes,
						}
						rc := models.RecommendationContext{
							CurrentMood:       mood,
							MoodIntensity:     ResolveMoodIntensity(mood),
							RecentChatSummary: summary,
						}
						got := scorer.Score(tool, rc)
						if got < 0 || got > 100 {
							t.Fatalf("Score() = %d out of range for category=%s level=%s minutes=%d", got, category, level, minutes)
						}
					}
				}
			}
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	tool := models.CopingTool{
		ID:              "repeat",
		Category:        models.CategoryCognitive,
		SupportedMoods:  []models.Mood{models.MoodSad},
		IntensityLevel:  models.IntensityMedium,
		DurationMinutes: 5,
	}
	rc := models.RecommendationContext{
		CurrentMood:       moodRef(models.MoodSad),
		MoodIntensity:     6,
		RecentChatSummary: "feeling drained and empty",
	}

	scorer := NewHeuristicScorer()
	first := scorer.Score(tool, rc)
	for i := 0; i < 10; i++ {
		if got := scorer.Score(tool, rc); got != first {
			t.Fatalf("Score() changed across calls: %d != %d", got, first)
		}
	}
}

func TestBreakdownTotalMatchesScore(t *testing.T) {
	tool := models.CopingTool{
		ID:              "check",
		Category:        models.CategoryGrounding,
		SupportedMoods:  []models.Mood{models.MoodAnxious},
		IntensityLevel:  models.IntensityHigh,
		DurationMinutes: 4,
	}
	rc := models.RecommendationContext{
		CurrentMood:       moodRef(models.MoodAnxious),
		MoodIntensity:     8,
		RecentChatSummary: "heart racing and can't cope",
	}

	scorer := NewHeuristicScorer()
	b := scorer.Breakdown(tool, rc)
	if b.Total != scorer.Score(tool, rc) {
		t.Errorf("Breakdown total = %d, Score = %d", b.Total, scorer.Score(tool, rc))
	}
}
