package services

import "strings"

// SentimentResult 聊天文本的情绪信号检测结果
// Keywords 按危机、低落、压力的扫描顺序收集，每组最多一个
type SentimentResult struct {
	Keywords   []string `json:"keywords"`
	HasCrisis  bool     `json:"hasCrisis"`
	HasLowMood bool     `json:"hasLowMood"`
	HasStress  bool     `json:"hasStress"`
}

// 三组固定关键词，组内按声明顺序扫描，命中第一个就停止
var (
	crisisKeywords = []string{
		"panic",
		"can't breathe",
		"overwhelmed",
		"can't cope",
		"losing control",
		"heart racing",
		"terrified",
		"crisis",
		"emergency",
		"falling apart",
	}

	lowMoodKeywords = []string{
		"hopeless",
		"worthless",
		"numb",
		"empty",
		"no point",
		"give up",
		"lonely",
		"alone",
		"crying",
		"miserable",
		"drained",
	}

	stressKeywords = []string{
		"overloaded",
		"deadline",
		"stressed",
		"pressure",
		"too much",
		"exhausted",
		"tense",
		"racing thoughts",
		"no time",
		"burned out",
	}
)

// AnalyzeSentiment 对文本做大小写不敏感的子串匹配
// 三组独立扫描，同一段文本可以同时命中多组
func AnalyzeSentiment(text string) SentimentResult {
	lower := strings.ToLower(text)
	result := SentimentResult{}

	if kw, ok := firstMatch(lower, crisisKeywords); ok {
		result.HasCrisis = true
		result.Keywords = append(result.Keywords, kw)
	}
	if kw, ok := firstMatch(lower, lowMoodKeywords); ok {
		result.HasLowMood = true
		result.Keywords = append(result.Keywords, kw)
	}
	if kw, ok := firstMatch(lower, stressKeywords); ok {
		result.HasStress = true
		result.Keywords = append(result.Keywords, kw)
	}

	return result
}

func firstMatch(lower string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}
