package services

import (
	"sort"

	"SahaayGo/models"
)

// RecommendationService 技巧推荐编排器
// 对整个目录逐条打分和生成理由，按分数稳定降序返回全部条目
type RecommendationService struct {
	scorer ToolScorer
}

// NewRecommendationService 创建推荐服务，scorer 为 nil 时使用默认启发式打分器
func NewRecommendationService(scorer ToolScorer) *RecommendationService {
	if scorer == nil {
		scorer = NewHeuristicScorer()
	}
	return &RecommendationService{scorer: scorer}
}

// Recommend 对目录中每个技巧计算分数和理由，稳定降序排列
// 不过滤任何条目，展示层自行决定截断策略
func (s *RecommendationService) Recommend(catalog []models.CopingTool, rc models.RecommendationContext) []models.RecommendedTool {
	recommendations := make([]models.RecommendedTool, 0, len(catalog))
	for _, tool := range catalog {
		recommendations = append(recommendations, models.RecommendedTool{
			CopingTool: tool,
			Score:      s.scorer.Score(tool, rc),
			Reason:     BuildReason(tool, rc),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	return recommendations
}

// RecommendWithBreakdown 与 Recommend 相同，额外带上分量明细
// 仅当底层是启发式打分器时填充明细，其它实现返回不带明细的结果
func (s *RecommendationService) RecommendWithBreakdown(catalog []models.CopingTool, rc models.RecommendationContext) []models.RecommendedTool {
	recommendations := s.Recommend(catalog, rc)

	hs, ok := s.scorer.(*HeuristicScorer)
	if !ok {
		return recommendations
	}
	for i := range recommendations {
		b := hs.Breakdown(recommendations[i].CopingTool, rc)
		recommendations[i].Breakdown = &b
	}
	return recommendations
}
