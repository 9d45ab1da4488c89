package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"SahaayGo/config"
	"SahaayGo/models"
	"SahaayGo/services"
	"SahaayGo/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// summaryTTL 对话摘要在 Redis 中的保存时长
const summaryTTL = 7 * 24 * time.Hour

type ChatController struct {
	chatService *services.ChatService
	wg          sync.WaitGroup // 添加 WaitGroup
}

func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// companionSessionID 每个用户一个陪伴会话
func companionSessionID(uid string) string {
	return fmt.Sprintf("%s_companion", uid)
}

// SendMessage 处理陪伴聊天请求，流式返回回复
func (c *ChatController) SendMessage(ctx *gin.Context) {
	// 获取用户信息
	uid, exists := ctx.Get("uid")
	if !exists {
		config.Logger.Errorw("未获取到用户ID")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	// 检查用户能量值
	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("获取用户信息失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取用户信息失败"})
		return
	}

	if user.Energy < 1 {
		ctx.JSON(http.StatusForbidden, gin.H{
			"error":           "安心值不足，请先兑换",
			"remainingEnergy": user.Energy,
		})
		return
	}

	// 扣除能量值
	if err := config.DB.Model(&user).Update("energy", user.Energy-1).Error; err != nil {
		config.Logger.Errorw("扣除安心值失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "扣除安心值失败"})
		return
	}

	var chatRequest struct {
		Message string `json:"message" binding:"required"`
	}

	// 绑定 JSON 请求
	if err := ctx.ShouldBindJSON(&chatRequest); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	sessionID := companionSessionID(uid.(string))

	// 从 Redis 中获取对话历史总结
	historySummary, err := config.RedisClient.Get(ctx, sessionID).Result()
	if err != nil {
		config.Logger.Errorw("获取对话历史总结失败",
			"error", err,
			"sessionID", sessionID,
			"uid", uid,
		)
	}

	// 设置流式响应头
	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("Access-Control-Allow-Origin", "*")
	ctx.Header("X-Accel-Buffering", "no") // 禁用 Nginx 缓冲

	// 处理聊天请求
	stream, err := c.chatService.GenerateCompanionResponse(
		ctx,
		chatRequest.Message,
		historySummary,
		uid.(string),
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to process chat: " + err.Error(),
		})
		return
	}

	// 发送流式响应
	var fullResponse strings.Builder
	for chunk := range stream {
		_, err := ctx.Writer.Write([]byte(chunk))
		if err != nil {
			log.Printf("Write error: %v", err)
			return
		}
		ctx.Writer.Flush() // 确保每个块都被立即发送
		fullResponse.WriteString(chunk)
	}

	// 异步落库并滚动更新摘要
	c.wg.Add(1)
	go func(userMessage, assistantMessage, previousSummary string) {
		defer c.wg.Done()

		bg := context.Background()
		now := time.Now()

		messages := []models.ChatMessage{
			{
				ID:        utils.GenerateID(),
				UserID:    uid.(string),
				Role:      models.RoleUser,
				Content:   userMessage,
				CreatedAt: now,
			},
			{
				ID:        utils.GenerateID(),
				UserID:    uid.(string),
				Role:      models.RoleAssistant,
				Content:   assistantMessage,
				CreatedAt: now.Add(time.Millisecond),
			},
		}
		if err := config.DB.Create(&messages).Error; err != nil {
			config.Logger.Errorw("保存聊天记录失败", "error", err, "uid", uid)
		}

		dialogue := fmt.Sprintf("User: %s\nSaathi: %s", userMessage, assistantMessage)
		summary, err := c.chatService.GenerateSummary(bg, dialogue, previousSummary)
		if err != nil {
			config.Logger.Errorw("更新对话摘要失败", "error", err, "uid", uid)
			return
		}
		if err := config.RedisClient.Set(bg, sessionID, summary, summaryTTL).Err(); err != nil {
			config.Logger.Errorw("写入对话摘要失败", "error", err, "sessionID", sessionID)
		}
	}(chatRequest.Message, fullResponse.String(), historySummary)
}

// GetMessages 获取最近的聊天记录，按时间倒序
func (c *ChatController) GetMessages(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}

	var messages []models.ChatMessage
	if err := config.DB.Where("user_id = ?", uid).
		Order("created_at desc").
		Limit(limit).
		Find(&messages).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取聊天记录失败"})
		return
	}

	responses := make([]models.ChatMessageResponse, len(messages))
	for i, msg := range messages {
		responses[i] = models.ChatMessageResponse{
			ID:        msg.ID,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"messages": responses})
}

// GenerateReview 处理心情复盘请求，流式返回复盘文本
func (c *ChatController) GenerateReview(ctx *gin.Context) {
	// 获取用户信息
	uid, exists := ctx.Get("uid")
	if !exists {
		config.Logger.Errorw("未获取到用户ID")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	// 检查用户能量值
	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("获取用户信息失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取用户信息失败"})
		return
	}

	// 解析请求参数
	var request models.ReviewRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	// 验证并转换时区
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	// 根据复盘周期计算需要扣除的能量值
	var energyCost int
	switch request.Period {
	case "day":
		energyCost = 1
	case "week":
		energyCost = 1
	case "month":
		energyCost = 3
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid period"})
		return
	}

	// 检查用户能量值是否足够
	if user.Energy < energyCost {
		ctx.JSON(http.StatusForbidden, gin.H{
			"error":           fmt.Sprintf("安心值不足，需要%d点，当前剩余%d点", energyCost, user.Energy),
			"remainingEnergy": user.Energy,
		})
		return
	}

	// 查询打卡记录
	var checkIns []models.CheckIn
	if err := config.DB.Where("user_id = ? AND record_date BETWEEN ? AND ? AND status = 0",
		uid, request.StartDate, request.EndDate).Find(&checkIns).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取打卡记录失败"})
		return
	}
	config.Logger.Debugw("查询到的打卡记录", "count", len(checkIns))

	// 查询并聚合练习记录
	var usages []models.ToolUsage
	if err := config.DB.Where("user_id = ? AND used_at BETWEEN ? AND ?",
		uid, request.StartDate, request.EndDate).Find(&usages).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取练习记录失败"})
		return
	}
	usageSummaries := summarizeToolUsages(usages)

	// 扣除能量值
	if err := config.DB.Model(&user).Update("energy", user.Energy-energyCost).Error; err != nil {
		config.Logger.Errorw("扣除安心值失败", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "扣除安心值失败"})
		return
	}

	// 查询上一次同周期的复盘总结
	var previousReview models.MoodReview
	err := config.DB.Where("user_id = ? AND period = ? AND start_date < ?",
		uid.(string), request.Period, request.StartDate).
		Order("start_date desc").
		First(&previousReview).Error

	var previousSummary string
	if err == nil {
		previousSummary = previousReview.Summary
	}

	// 设置流式响应头
	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("Access-Control-Allow-Origin", "*")
	ctx.Header("X-Accel-Buffering", "no")

	// 处理复盘请求
	stream, err := c.chatService.GenerateMoodReview(ctx, request.Period, checkIns, usageSummaries, previousSummary)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to process review: " + err.Error(),
		})
		return
	}

	// 发送流式响应
	var fullResponse strings.Builder
	for chunk := range stream {
		_, err := ctx.Writer.Write([]byte(chunk))
		if err != nil {
			log.Printf("Write error: %v", err)
			return
		}
		ctx.Writer.Flush()
		fullResponse.WriteString(chunk)
	}

	// 在协程中存储复盘结果
	c.wg.Add(1) // 增加 WaitGroup 计数
	go func() {
		defer c.wg.Done() // 完成后减少计数

		// 检查是否已存在相同记录
		var existingReview models.MoodReview
		err := config.DB.Where("user_id = ? AND period = ? AND start_date = ? AND end_date = ?",
			uid.(string), request.Period, request.StartDate, request.EndDate).First(&existingReview).Error

		if err == nil {
			// 如果记录已存在，更新 Summary
			if err := config.DB.Model(&existingReview).Update("summary", fullResponse.String()).Error; err != nil {
				config.Logger.Errorw("更新复盘结果失败",
					"error", err,
					"uid", uid,
					"period", request.Period,
				)
			}
		} else if err == gorm.ErrRecordNotFound {
			// 如果记录不存在，创建新记录
			review := models.MoodReview{
				ID:        uuid.New().String(),
				UserID:    uid.(string),
				Period:    request.Period,
				StartDate: request.StartDate,
				EndDate:   request.EndDate,
				Summary:   fullResponse.String(),
				CreatedAt: time.Now(),
			}

			if err := config.DB.Create(&review).Error; err != nil {
				config.Logger.Errorw("存储复盘结果失败",
					"error", err,
					"uid", uid,
					"period", request.Period,
				)
			}
		} else {
			// 其他错误
			config.Logger.Errorw("查询复盘记录失败",
				"error", err,
				"uid", uid,
				"period", request.Period,
			)
		}
	}()
}

// GetReviews 获取指定时间段的复盘记录
func (c *ChatController) GetReviews(ctx *gin.Context) {
	// 获取用户信息
	uid, exists := ctx.Get("uid")
	if !exists {
		config.Logger.Errorw("未获取到用户ID")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户ID"})
		return
	}

	// 查询参数
	period := ctx.Query("period")
	startDate := ctx.Query("startDate")
	endDate := ctx.Query("endDate")

	// 验证参数
	if period == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "缺少复盘周期参数"})
		return
	}
	if startDate == "" || endDate == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "缺少时间范围参数"})
		return
	}

	// 定义 ISO 8601 时间格式
	layout := "2006-01-02T15:04:05Z07:00"

	// 解析时间字符串为 time.Time
	startTimeParsed, err := time.Parse(layout, startDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的开始时间格式"})
		return
	}
	endTimeParsed, err := time.Parse(layout, endDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的结束时间格式"})
		return
	}

	// 构建查询
	query := config.DB.Where("user_id = ? AND period = ?", uid, period)
	query = query.Where("start_date = ? AND end_date = ?",
		startTimeParsed,
		endTimeParsed)

	// 查询结果
	var review models.MoodReview
	if err := query.First(&review).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "未找到对应的复盘记录"})
		} else {
			config.Logger.Errorw("获取复盘记录失败", "error", err, "uid", uid)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "获取复盘记录失败"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data": review,
	})
}

// summarizeToolUsages 按技巧聚合练习次数和总时长
func summarizeToolUsages(usages []models.ToolUsage) []models.ToolUsageSummary {
	grouped := make(map[string]*models.ToolUsageSummary)
	order := make([]string, 0)

	for _, usage := range usages {
		if s, exists := grouped[usage.ToolID]; exists {
			s.UseCount++
			s.TotalTime += usage.DurationSeconds
		} else {
			grouped[usage.ToolID] = &models.ToolUsageSummary{
				ToolID:    usage.ToolID,
				Title:     catalogTitle(usage.ToolID),
				UseCount:  1,
				TotalTime: usage.DurationSeconds,
			}
			order = append(order, usage.ToolID)
		}
	}

	summaries := make([]models.ToolUsageSummary, 0, len(order))
	for _, id := range order {
		summaries = append(summaries, *grouped[id])
	}
	return summaries
}

// 添加 Wait 方法用于优雅关闭
func (c *ChatController) Wait() {
	c.wg.Wait()
}
