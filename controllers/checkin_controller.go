package controllers

import (
	"net/http"
	"time"

	"SahaayGo/config"
	"SahaayGo/models"

	"github.com/gin-gonic/gin"
)

type CheckInController struct{}

// SyncCheckIns 处理心情打卡同步
// 以 lastModified 较新的一方为准，心情取值非法时整批拒绝
func (cc *CheckInController) SyncCheckIns(c *gin.Context) {
	var checkIns []models.SyncCheckInsRequest
	if err := c.ShouldBindJSON(&checkIns); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	// 获取用户ID
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	// 先整体校验再落库
	for i := range checkIns {
		if err := checkIns[i].Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		checkIns[i].ConvertToUTC()
	}

	// 开启事务
	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 更新或创建打卡记录
	for _, checkInReq := range checkIns {
		checkIn := models.CheckIn{
			ID:           checkInReq.ID,
			Mood:         checkInReq.Mood,
			Note:         checkInReq.Note,
			RecordDate:   checkInReq.RecordDate,
			LastModified: checkInReq.LastModified,
			UserID:       uid.(string),
		}

		// 检查是否已有同ID记录
		var existingCheckIn models.CheckIn
		if err := tx.Where("id = ?", checkIn.ID).First(&existingCheckIn).Error; err == nil {
			// 如果存在，比较 lastModified 时间戳
			if checkIn.LastModified.After(existingCheckIn.LastModified) {
				// 如果新数据更晚，更新打卡记录
				checkIn.LastModified = time.Now()
				if err := tx.Save(&checkIn).Error; err != nil {
					tx.Rollback()
					c.JSON(http.StatusInternalServerError, gin.H{"error": "打卡记录同步失败"})
					return
				}
			} else {
				// 如果旧数据更晚，忽略新数据
				continue
			}
		} else {
			// 如果不存在，创建新打卡记录
			checkIn.LastModified = time.Now()
			if err := tx.Create(&checkIn).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "打卡记录同步失败"})
				return
			}
		}
	}

	// 提交事务
	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "打卡记录同步失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "打卡记录同步成功"})
}
