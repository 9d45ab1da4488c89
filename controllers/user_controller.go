package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"SahaayGo/config"
	"SahaayGo/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct{}

func (uc *UserController) AddEnergy(c *gin.Context) {
	// 记录内部接口调用
	config.Logger.Infow("内部接口调用：增加安心值",
		"sourceIP", c.ClientIP(),
		"userAgent", c.Request.UserAgent(),
	)

	uid := c.Query("uid")
	amountStr := c.Query("amount")

	// 转换amount为整数
	amount, err := strconv.Atoi(amountStr)
	if err != nil || amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的安心值"})
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("获取用户信息失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取用户信息失败"})
		return
	}

	if err := config.DB.Model(&user).Update("energy", user.Energy+amount).Error; err != nil {
		config.Logger.Errorw("增加安心值失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "增加安心值失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "安心值增加成功",
		"newEnergy": user.Energy + amount,
	})
}

func (uc *UserController) GetEnergy(c *gin.Context) {
	uid := c.GetString("uid")

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("获取用户信息失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取用户信息失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"energy": user.Energy,
	})
}

func (uc *UserController) GetUser(c *gin.Context) {
	userID, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "用户未认证"})
		return
	}

	userIDStr, ok := userID.(string)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "用户ID格式错误"})
		return
	}

	fmt.Printf("请求用户ID: %s\n", userIDStr)

	var user models.User
	if err := config.DB.Where("id = ?", userIDStr).First(&user).Error; err != nil {
		config.Logger.Errorw("数据库查询失败",
			"error", err,
			"userID", userIDStr,
			"query", config.DB.ToSQL(func(tx *gorm.DB) *gorm.DB {
				return tx.Where("id = ?", userIDStr).First(&user)
			}),
		)
		c.JSON(http.StatusNotFound, gin.H{"error": "用户未找到"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"avatar":   user.Avatar,
			"energy":   user.Energy,
		},
	})
}

// UpdateUser 更新用户昵称和头像
func (uc *UserController) UpdateUser(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "用户未认证"})
		return
	}

	var req struct {
		Username *string `json:"username"`
		Avatar   *string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "没有需要更新的字段"})
		return
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", uid).Updates(updates).Error; err != nil {
		config.Logger.Errorw("更新用户信息失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新用户信息失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "用户信息更新成功"})
}
