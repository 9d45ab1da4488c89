package services

import (
	"fmt"
	"strings"

	"SahaayGo/models"
)

// BuildReason 为单个技巧生成推荐理由
// 片段按心情、情绪信号、快速缓解的固定顺序拼接，没有片段时返回兜底文案
// 情绪信号片段与打分分量走同一套优先级，保证理由和分数一致
func BuildReason(tool models.CopingTool, rc models.RecommendationContext) string {
	var fragments []string

	if rc.CurrentMood != nil {
		fragments = append(fragments, fmt.Sprintf("you felt %s today", *rc.CurrentMood))
	}

	if frag := sentimentFragment(tool, rc); frag != "" {
		fragments = append(fragments, frag)
	}

	if rc.MoodIntensity >= 7 && tool.IntensityLevel == models.IntensityHigh {
		fragments = append(fragments, "this offers quick relief")
	}

	if len(fragments) == 0 {
		return fmt.Sprintf("This %s technique is gentle and effective.", tool.Category)
	}
	return "This technique is suggested because " + strings.Join(fragments, " and ") + "."
}

func sentimentFragment(tool models.CopingTool, rc models.RecommendationContext) string {
	result := AnalyzeSentiment(rc.RecentChatSummary)
	switch {
	case result.HasCrisis:
		if tool.Category == models.CategoryBreathing || tool.Category == models.CategoryGrounding {
			return "you mentioned feeling overwhelmed"
		}
	case result.HasLowMood:
		if tool.Category == models.CategoryReflection || tool.Category == models.CategoryCognitive {
			return "you expressed feelings of sadness or hopelessness"
		}
	case result.HasStress:
		if tool.Category == models.CategoryMovement || tool.Category == models.CategoryGrounding {
			return "you mentioned feeling stressed or tense"
		}
	}
	return ""
}
