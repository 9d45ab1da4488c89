package models

import (
	"fmt"
	"time"
)

// SyncCheckInsRequest 心情打卡同步请求结构体
type SyncCheckInsRequest struct {
	ID           string    `json:"id"`
	Mood         string    `json:"mood"`
	Note         string    `json:"note"`
	RecordDate   time.Time `json:"recordDate"`
	LastModified time.Time `json:"lastModified"`
}

func (r *SyncCheckInsRequest) ConvertToUTC() {
	r.RecordDate = r.RecordDate.UTC()
	r.LastModified = r.LastModified.UTC()
}

// 校验心情取值，非法值直接拒绝整批同步
func (r *SyncCheckInsRequest) Validate() error {
	if _, err := ParseMood(r.Mood); err != nil {
		return err
	}
	return nil
}

// SyncToolUsagesRequest 技巧练习记录同步请求结构体
type SyncToolUsagesRequest struct {
	ID              string    `json:"id"`
	ToolID          string    `json:"toolId"`
	UsedAt          time.Time `json:"usedAt"`
	DurationSeconds int       `json:"durationSeconds"`
	LastModified    time.Time `json:"lastModified"`
}

func (r *SyncToolUsagesRequest) ConvertToUTC() {
	r.UsedAt = r.UsedAt.UTC()
	r.LastModified = r.LastModified.UTC()
}

// ReviewRequest 心情复盘请求结构体
type ReviewRequest struct {
	Period    string    `json:"period" binding:"required"` // day, week, month
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

func (r *ReviewRequest) Validate() error {
	validPeriods := map[string]bool{"day": true, "week": true, "month": true}
	if !validPeriods[r.Period] {
		return fmt.Errorf("invalid period, must be one of: day, week, month")
	}

	// 将时间转换为 UTC
	r.StartDate = r.StartDate.UTC()
	r.EndDate = r.EndDate.UTC()

	if r.StartDate.After(r.EndDate) {
		return fmt.Errorf("start date must be before end date")
	}
	return nil
}

// ToolUsageSummary 复盘用的技巧练习聚合
type ToolUsageSummary struct {
	ToolID    string `json:"toolId"`
	Title     string `json:"title"`
	UseCount  int    `json:"useCount"`
	TotalTime int    `json:"totalTime"` // 秒数
}
