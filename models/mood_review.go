package models

import (
	"time"
)

// MoodReview 心情复盘结果，按用户+周期+时间段唯一
type MoodReview struct {
	ID        string    `gorm:"primaryKey"`
	UserID    string    `gorm:"index:idx_user_period_date,unique"`
	Period    string    `gorm:"type:varchar(20);index:idx_user_period_date,unique"`
	StartDate time.Time `gorm:"index:idx_user_period_date,unique"`
	EndDate   time.Time `gorm:"index:idx_user_period_date,unique"`
	Summary   string    `gorm:"type:text"`
	CreatedAt time.Time
}

func (MoodReview) TableName() string {
	return "mood_reviews"
}
