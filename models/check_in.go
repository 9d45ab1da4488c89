package models

import "time"

// CheckIn 心情打卡记录模型
type CheckIn struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Mood         string    `gorm:"type:varchar(20)" json:"mood"` // 取值见 models.AllMoods，入库前校验
	Note         string    `gorm:"type:text" json:"note"`
	Status       int       `gorm:"type:int" default:"0" json:"status"` // 0: 正常 1: 删除
	RecordDate   time.Time `json:"recordDate"`
	UserID       string    `gorm:"type:varchar(50);index" json:"user_id"`
	LastModified time.Time `json:"lastModified"`
}
