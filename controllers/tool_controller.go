package controllers

import (
	"net/http"
	"time"

	"SahaayGo/config"
	"SahaayGo/models"
	"SahaayGo/utils"

	"github.com/gin-gonic/gin"
)

type ToolController struct{}

// ListTools 返回完整技巧目录
func (tc *ToolController) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": config.Catalog})
}

// LogUsage 记录一次技巧练习
func (tc *ToolController) LogUsage(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	toolID := c.Param("id")
	if !catalogHas(toolID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "技巧不存在"})
		return
	}

	var req struct {
		DurationSeconds int        `json:"durationSeconds"`
		UsedAt          *time.Time `json:"usedAt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DurationSeconds < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的练习时长"})
		return
	}

	usedAt := time.Now().UTC()
	if req.UsedAt != nil {
		usedAt = req.UsedAt.UTC()
	}

	usage := models.ToolUsage{
		ID:              utils.GenerateID(),
		UserID:          uid.(string),
		ToolID:          toolID,
		UsedAt:          usedAt,
		DurationSeconds: req.DurationSeconds,
		LastModified:    time.Now(),
	}

	if err := config.DB.Create(&usage).Error; err != nil {
		config.Logger.Errorw("保存练习记录失败", "error", err, "uid", uid, "toolId", toolID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存练习记录失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "练习记录保存成功", "id": usage.ID})
}

// SyncUsages 批量同步练习记录
// 以 lastModified 较新的一方为准，和打卡同步同一套策略
func (tc *ToolController) SyncUsages(c *gin.Context) {
	var usages []models.SyncToolUsagesRequest
	if err := c.ShouldBindJSON(&usages); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	for i := range usages {
		if !catalogHas(usages[i].ToolID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "技巧不存在: " + usages[i].ToolID})
			return
		}
		usages[i].ConvertToUTC()
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, usageReq := range usages {
		usage := models.ToolUsage{
			ID:              usageReq.ID,
			UserID:          uid.(string),
			ToolID:          usageReq.ToolID,
			UsedAt:          usageReq.UsedAt,
			DurationSeconds: usageReq.DurationSeconds,
			LastModified:    usageReq.LastModified,
		}

		var existingUsage models.ToolUsage
		if err := tx.Where("id = ?", usage.ID).First(&existingUsage).Error; err == nil {
			if usage.LastModified.After(existingUsage.LastModified) {
				usage.LastModified = time.Now()
				if err := tx.Save(&usage).Error; err != nil {
					tx.Rollback()
					c.JSON(http.StatusInternalServerError, gin.H{"error": "练习记录同步失败"})
					return
				}
			} else {
				continue
			}
		} else {
			usage.LastModified = time.Now()
			if err := tx.Create(&usage).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "练习记录同步失败"})
				return
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "练习记录同步失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "练习记录同步成功"})
}

// catalogHas 判断技巧是否在目录中
func catalogHas(toolID string) bool {
	for _, tool := range config.Catalog {
		if tool.ID == toolID {
			return true
		}
	}
	return false
}

// catalogTitle 根据技巧ID取标题，目录里没有就原样返回
func catalogTitle(toolID string) string {
	for _, tool := range config.Catalog {
		if tool.ID == toolID {
			return tool.Title
		}
	}
	return toolID
}
