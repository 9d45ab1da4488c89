package models

import "time"

// ToolUsage 技巧使用记录，供复盘分析统计
type ToolUsage struct {
	ID              string    `gorm:"type:varchar(50);primaryKey"`
	UserID          string    `gorm:"type:varchar(50);index:idx_tool_usages_user_used"`
	ToolID          string    `gorm:"type:varchar(50);index:idx_tool_usages_tool"`
	UsedAt          time.Time `gorm:"index:idx_tool_usages_user_used"`
	DurationSeconds int       `gorm:"default:0"`
	LastModified    time.Time
}

// 表名
func (ToolUsage) TableName() string {
	return "tool_usages"
}
