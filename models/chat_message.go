package models

import "time"

// 消息角色
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage 陪伴聊天消息模型，推荐引擎读取其中的用户消息
type ChatMessage struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);index" json:"user_id"`
	Role      string    `gorm:"type:varchar(20)" json:"role"` // user / assistant
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
