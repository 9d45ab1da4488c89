package models

import "fmt"

// Mood 心情类型，打卡记录的封闭枚举
type Mood string

const (
	MoodAnxious    Mood = "anxious"
	MoodFrustrated Mood = "frustrated"
	MoodSad        Mood = "sad"
	MoodNeutral    Mood = "neutral"
	MoodCalm       Mood = "calm"
	MoodHappy      Mood = "happy"
)

// AllMoods 全部合法的心情取值
var AllMoods = []Mood{
	MoodAnxious,
	MoodFrustrated,
	MoodSad,
	MoodNeutral,
	MoodCalm,
	MoodHappy,
}

// ParseMood 校验并转换心情字符串，枚举之外的取值视为调用方错误
func ParseMood(s string) (Mood, error) {
	for _, m := range AllMoods {
		if Mood(s) == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("无效的心情类型: %q", s)
}
