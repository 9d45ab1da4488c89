package models

import "time"

// SyncUpdatesResponse 同步更新响应结构体
type SyncUpdatesResponse struct {
	CheckIns   []CheckInResponse   `json:"checkIns"`
	ToolUsages []ToolUsageResponse `json:"toolUsages"`
}

// CheckInResponse 心情打卡响应结构体
type CheckInResponse struct {
	ID           string    `json:"id"`
	Mood         string    `json:"mood"`
	Note         string    `json:"note"`
	RecordDate   time.Time `json:"recordDate"`
	LastModified time.Time `json:"lastModified"`
}

// ToolUsageResponse 技巧练习记录响应结构体
type ToolUsageResponse struct {
	ID              string    `json:"id"`
	ToolID          string    `json:"toolId"`
	UsedAt          time.Time `json:"usedAt"`
	DurationSeconds int       `json:"durationSeconds"`
	LastModified    time.Time `json:"lastModified"`
}

// ChatMessageResponse 聊天消息响应结构体
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecommendationsResponse 技巧推荐响应结构体
type RecommendationsResponse struct {
	Recommendations []RecommendedTool      `json:"recommendations"`
	Context         *RecommendationContext `json:"context,omitempty"`
}

// UserResponse 用户响应结构体
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	Energy   int    `json:"energy"`
}
