package models

// RecommendationContext 单次推荐请求的上下文快照，按请求构建，不做持久化
type RecommendationContext struct {
	// CurrentMood 今天最近一次打卡的心情，没有打卡时为 nil
	CurrentMood *Mood `json:"currentMood,omitempty"`
	// MoodIntensity 由心情映射出的紧迫度，1-10，无打卡时默认5
	MoodIntensity int `json:"moodIntensity"`
	// RecentChatSummary 最近聊天文本拼接，供情感关键词扫描
	RecentChatSummary string `json:"recentChatSummary"`
	// ChatKeywords 扫描命中的关键词，每类至多一个
	ChatKeywords []string `json:"chatKeywords,omitempty"`
}

// ScoreBreakdown 四个评分分量的诊断拆解，用于调参和测试断言
type ScoreBreakdown struct {
	Mood      int `json:"mood"`      // 心情适配 0-40
	Sentiment int `json:"sentiment"` // 情感对齐 0-30
	Intensity int `json:"intensity"` // 强度匹配 0-20
	Duration  int `json:"duration"`  // 时长偏好 0-10
	Total     int `json:"total"`     // 截断后的总分 0-100
}

// RecommendedTool 目录条目加上得分与推荐理由，派生值，不落库
type RecommendedTool struct {
	CopingTool
	Score     int             `json:"score"`
	Reason    string          `json:"reason"`
	Breakdown *ScoreBreakdown `json:"breakdown,omitempty"`
}
