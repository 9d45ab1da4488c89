package controllers

import (
	"net/http"
	"time"

	"SahaayGo/config"
	"SahaayGo/models"

	"github.com/gin-gonic/gin"
)

type SyncController struct{}

// GetUpdates 获取自上次同步以来的打卡和练习记录更新
func (sc *SyncController) GetUpdates(c *gin.Context) {
	// 获取用户ID
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	// 获取上次同步时间
	lastSyncDateStr := c.Query("lastSyncDate")
	var lastSyncDate time.Time
	var err error

	if lastSyncDateStr != "" {
		lastSyncDate, err = time.Parse(time.RFC3339, lastSyncDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的时间格式"})
			return
		}
	} else {
		// 如果没有提供上次同步时间，则使用很久以前的时间
		lastSyncDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	// 计算一个月前的时间
	oneMonthAgo := time.Now().AddDate(0, -1, 0)

	// 查询打卡记录更新
	var checkIns []models.CheckIn
	if err := config.DB.Where("user_id = ? AND last_modified > ? AND last_modified > ? AND status = 0",
		uid, lastSyncDate, oneMonthAgo).Find(&checkIns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取打卡记录更新失败"})
		return
	}

	checkInResponses := make([]models.CheckInResponse, len(checkIns))
	for i, checkIn := range checkIns {
		checkInResponses[i] = models.CheckInResponse{
			ID:           checkIn.ID,
			Mood:         checkIn.Mood,
			Note:         checkIn.Note,
			RecordDate:   checkIn.RecordDate,
			LastModified: checkIn.LastModified,
		}
	}

	// 查询练习记录更新
	var usages []models.ToolUsage
	if err := config.DB.Where("user_id = ? AND last_modified > ? AND last_modified > ?",
		uid, lastSyncDate, oneMonthAgo).Find(&usages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取练习记录更新失败"})
		return
	}

	usageResponses := make([]models.ToolUsageResponse, len(usages))
	for i, usage := range usages {
		usageResponses[i] = models.ToolUsageResponse{
			ID:              usage.ID,
			ToolID:          usage.ToolID,
			UsedAt:          usage.UsedAt,
			DurationSeconds: usage.DurationSeconds,
			LastModified:    usage.LastModified,
		}
	}

	// 返回响应
	c.JSON(http.StatusOK, models.SyncUpdatesResponse{
		CheckIns:   checkInResponses,
		ToolUsages: usageResponses,
	})
}
