package services

import (
	"strings"
	"time"

	"SahaayGo/models"
)

// recentChatLimit 参与摘要的最近消息条数
const recentChatLimit = 5

// ContextBuilder 把原始打卡和聊天消息组装成推荐上下文
// 组件自身不排序，调用方必须按最近优先传入两个序列
type ContextBuilder struct {
	now func() time.Time
}

func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{now: time.Now}
}

// Build 组装推荐上下文
// 取当天第一条打卡作为当前心情，心情非法时返回错误
func (b *ContextBuilder) Build(checkIns []models.CheckIn, chatMessages []models.ChatMessage) (models.RecommendationContext, error) {
	rc := models.RecommendationContext{}

	today := b.now()
	for _, ci := range checkIns {
		if !sameDay(ci.RecordDate, today) {
			continue
		}
		mood, err := models.ParseMood(ci.Mood)
		if err != nil {
			return models.RecommendationContext{}, err
		}
		rc.CurrentMood = &mood
		break
	}

	rc.MoodIntensity = ResolveMoodIntensity(rc.CurrentMood)

	limit := len(chatMessages)
	if limit > recentChatLimit {
		limit = recentChatLimit
	}
	texts := make([]string, 0, limit)
	for _, msg := range chatMessages[:limit] {
		texts = append(texts, msg.Content)
	}
	rc.RecentChatSummary = strings.Join(texts, " ")
	rc.ChatKeywords = AnalyzeSentiment(rc.RecentChatSummary).Keywords

	return rc, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
