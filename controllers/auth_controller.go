package controllers

import (
	"log"
	"net/http"
	"time"

	"SahaayGo/config"
	"SahaayGo/models"
	"SahaayGo/utils"

	"github.com/gin-gonic/gin"
)

// AuthController 认证控制器
type AuthController struct{}

// DeviceLoginRequest 设备匿名登录请求结构体
type DeviceLoginRequest struct {
	DeviceID string `json:"device_id" binding:"required"` // 客户端生成的设备标识
}

// DeviceLogin 设备匿名登录，同一设备重复登录返回同一账号
func (ac *AuthController) DeviceLogin(c *gin.Context) {
	var req DeviceLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 查找或创建用户
	var user models.User
	result := config.DB.Where("provider = ? AND provider_id = ?", "device", req.DeviceID).First(&user)
	if result.Error != nil {
		// 创建新用户
		user = models.User{
			ID:         utils.GenerateID(), // 确保这里生成了 ID
			Provider:   "device",
			ProviderID: req.DeviceID,
			CreatedAt:  time.Now(),
			Energy:     20, // 默认20点安心值
		}
		if err := config.DB.Create(&user).Error; err != nil {
			config.Logger.Errorw("用户创建失败",
				"error", err,
				"provider", "device",
				"deviceID", req.DeviceID,
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "用户创建失败"})
			return
		}
		config.Logger.Infow("用户创建成功",
			"userID", user.ID,
			"provider", "device",
		)
	}

	log.Printf("User ID before token generation: %s", user.ID)
	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"avatar":   user.Avatar,
		},
	})
}

// AppleLogin 苹果登录
func (ac *AuthController) AppleLogin(c *gin.Context) {
	var req struct {
		IdentityToken string `json:"identity_token" binding:"required"`
		Email         string `json:"email"` // 苹果首次登录会返回邮箱
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 验证苹果身份令牌
	appleID, err := utils.VerifyAppleIdentityToken(req.IdentityToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "身份验证失败"})
		return
	}

	// 查找或创建用户
	var user models.User
	result := config.DB.Where("provider = ? AND provider_id = ?", "apple", appleID).First(&user)
	if result.Error != nil {
		user = models.User{
			ID:         utils.GenerateID(), // 确保这里生成了 ID
			Provider:   "apple",
			ProviderID: appleID,
			Email:      req.Email, // 苹果首次登录会返回邮箱
			CreatedAt:  time.Now(),
			Energy:     20,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			config.Logger.Errorw("用户创建失败",
				"error", err,
				"provider", "apple",
				"appleID", appleID,
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "用户创建失败"})
			return
		}
		config.Logger.Infow("新用户创建成功",
			"userID", user.ID,
			"provider", "apple",
		)
	} else {
		log.Printf("找到现有用户，ID: %s", user.ID)
	}

	// 生成JWT
	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.GetDisplayName(),
			"email":    user.Email,
			"avatar":   user.Avatar,
		},
	})
}

// CreateTestUser 创建测试用户
func (ac *AuthController) CreateTestUser(c *gin.Context) {
	testUser := models.User{
		ID:         utils.GenerateID(), // 使用新的 ID 生成策略
		Username:   "test_user_1",
		Email:      "test_1@example.com",
		IsTestUser: true,
		Energy:     20,
	}

	if err := config.DB.Create(&testUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建测试用户失败"})
		return
	}

	// 生成 JWT
	token, err := utils.GenerateToken(testUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "令牌生成失败"})
		return
	}

	config.Logger.Infow("创建测试用户",
		"userID", testUser.ID,
		"username", testUser.Username,
	)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       testUser.ID,
			"username": testUser.Username,
			"email":    testUser.Email,
		},
	})
}
