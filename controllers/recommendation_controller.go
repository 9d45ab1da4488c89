package controllers

import (
	"net/http"
	"time"

	"SahaayGo/config"
	"SahaayGo/models"
	"SahaayGo/services"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	builder *services.ContextBuilder
	service *services.RecommendationService
}

func NewRecommendationController() *RecommendationController {
	return &RecommendationController{
		builder: services.NewContextBuilder(),
		service: services.NewRecommendationService(nil),
	}
}

// GetRecommendations 根据最近打卡和聊天内容推荐调节技巧
// 打卡取最近7天按时间倒序，聊天取最近5条用户发言
// debug=1 时附带上下文和分量明细
func (rc *RecommendationController) GetRecommendations(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	var checkIns []models.CheckIn
	if err := config.DB.Where("user_id = ? AND record_date > ? AND status = 0", uid, sevenDaysAgo).
		Order("record_date desc").
		Find(&checkIns).Error; err != nil {
		config.Logger.Errorw("获取打卡记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取打卡记录失败"})
		return
	}

	var messages []models.ChatMessage
	if err := config.DB.Where("user_id = ? AND role = ?", uid, models.RoleUser).
		Order("created_at desc").
		Limit(5).
		Find(&messages).Error; err != nil {
		config.Logger.Errorw("获取聊天记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取聊天记录失败"})
		return
	}

	recCtx, err := rc.builder.Build(checkIns, messages)
	if err != nil {
		// 入库前有校验，走到这里说明存量数据有问题
		config.Logger.Errorw("构建推荐上下文失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "构建推荐上下文失败"})
		return
	}

	debug := c.Query("debug") == "1"

	var recommendations []models.RecommendedTool
	if debug {
		recommendations = rc.service.RecommendWithBreakdown(config.Catalog, recCtx)
	} else {
		recommendations = rc.service.Recommend(config.Catalog, recCtx)
	}

	response := models.RecommendationsResponse{Recommendations: recommendations}
	if debug {
		response.Context = &recCtx
	}

	c.JSON(http.StatusOK, response)
}
