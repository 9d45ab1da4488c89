package services

import "SahaayGo/models"

// moodIntensityTable 心情到紧迫度的固定映射，范围 1-10
var moodIntensityTable = map[models.Mood]int{
	models.MoodAnxious:    8,
	models.MoodFrustrated: 7,
	models.MoodSad:        6,
	models.MoodNeutral:    4,
	models.MoodCalm:       3,
	models.MoodHappy:      2,
}

// defaultMoodIntensity 当天没有打卡时的默认紧迫度
const defaultMoodIntensity = 5

// ResolveMoodIntensity 将心情映射为紧迫度，mood 为 nil 时返回默认值
// 心情合法性在上下文构建阶段校验，这里查表即可
func ResolveMoodIntensity(mood *models.Mood) int {
	if mood == nil {
		return defaultMoodIntensity
	}
	if v, ok := moodIntensityTable[*mood]; ok {
		return v
	}
	return defaultMoodIntensity
}
