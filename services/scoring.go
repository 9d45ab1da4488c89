package services

import "SahaayGo/models"

// maxScore 单个技巧分数上限
const maxScore = 100

// ToolScorer 打分能力抽象，便于后续替换启发式实现
type ToolScorer interface {
	Score(tool models.CopingTool, rc models.RecommendationContext) int
}

// HeuristicScorer 启发式打分器
// 四个独立分量相加后封顶 100：心情匹配、情绪信号、紧迫度、时长偏好
type HeuristicScorer struct{}

func NewHeuristicScorer() *HeuristicScorer {
	return &HeuristicScorer{}
}

// Score 计算单个技巧的相关性分数，范围 [0,100]
func (s *HeuristicScorer) Score(tool models.CopingTool, rc models.RecommendationContext) int {
	total := moodScore(tool, rc) + sentimentScore(tool, rc) + intensityScore(tool, rc) + durationScore(tool, rc)
	if total > maxScore {
		total = maxScore
	}
	return total
}

// Breakdown 返回四个分量的明细，供调参和接口调试使用
func (s *HeuristicScorer) Breakdown(tool models.CopingTool, rc models.RecommendationContext) models.ScoreBreakdown {
	b := models.ScoreBreakdown{
		Mood:      moodScore(tool, rc),
		Sentiment: sentimentScore(tool, rc),
		Intensity: intensityScore(tool, rc),
		Duration:  durationScore(tool, rc),
	}
	b.Total = b.Mood + b.Sentiment + b.Intensity + b.Duration
	if b.Total > maxScore {
		b.Total = maxScore
	}
	return b
}

// 心情匹配分量：技巧支持当前心情 40，不支持 20，当天无打卡 0
func moodScore(tool models.CopingTool, rc models.RecommendationContext) int {
	if rc.CurrentMood == nil {
		return 0
	}
	if tool.SupportsMood(*rc.CurrentMood) {
		return 40
	}
	return 20
}

// 情绪信号分量：按危机 > 低落 > 压力的优先级只取第一个命中的分支
func sentimentScore(tool models.CopingTool, rc models.RecommendationContext) int {
	result := AnalyzeSentiment(rc.RecentChatSummary)
	switch {
	case result.HasCrisis:
		if tool.Category == models.CategoryBreathing || tool.Category == models.CategoryGrounding {
			return 30
		}
	case result.HasLowMood:
		if tool.Category == models.CategoryReflection || tool.Category == models.CategoryCognitive {
			return 30
		}
	case result.HasStress:
		if tool.Category == models.CategoryMovement || tool.Category == models.CategoryGrounding {
			return 30
		}
	}
	return 0
}

// 紧迫度分量：高紧迫偏向高强度技巧，低紧迫偏向低强度技巧
func intensityScore(tool models.CopingTool, rc models.RecommendationContext) int {
	switch {
	case rc.MoodIntensity >= 7:
		switch tool.IntensityLevel {
		case models.IntensityHigh:
			return 20
		case models.IntensityMedium:
			return 10
		}
	case rc.MoodIntensity >= 4:
		switch tool.IntensityLevel {
		case models.IntensityMedium:
			return 20
		case models.IntensityLow:
			return 15
		}
	default:
		switch tool.IntensityLevel {
		case models.IntensityLow:
			return 20
		case models.IntensityMedium:
			return 10
		}
	}
	return 0
}

// 时长分量：只在当天无打卡或心情为 neutral 时生效，短技巧加分
func durationScore(tool models.CopingTool, rc models.RecommendationContext) int {
	if rc.CurrentMood != nil && *rc.CurrentMood != models.MoodNeutral {
		return 0
	}
	switch {
	case tool.DurationMinutes <= 3:
		return 10
	case tool.DurationMinutes <= 5:
		return 5
	}
	return 0
}
