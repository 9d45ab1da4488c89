package routes

import (
	"SahaayGo/controllers"
	"SahaayGo/middleware"
	"SahaayGo/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, chatService *services.ChatService) *controllers.ChatController {
	authController := controllers.AuthController{}
	chatController := controllers.NewChatController(chatService)
	checkInController := controllers.CheckInController{}
	syncController := controllers.SyncController{}
	toolController := controllers.ToolController{}
	recommendationController := controllers.NewRecommendationController()
	userController := controllers.UserController{}
	redeemController := controllers.RedeemController{}

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/device", authController.DeviceLogin)
		public.POST("/auth/apple", authController.AppleLogin)
		public.POST("/auth/test-user", authController.CreateTestUser)
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		// 陪伴聊天相关接口
		private.POST("/chat", chatController.SendMessage)
		private.GET("/chat/messages", chatController.GetMessages)

		// 心情复盘
		private.POST("/review", chatController.GenerateReview)
		private.GET("/reviews", chatController.GetReviews)

		// 打卡与练习记录同步
		private.POST("/sync/checkins", checkInController.SyncCheckIns)
		private.POST("/sync/tool-usages", toolController.SyncUsages)
		private.GET("/sync/updates", syncController.GetUpdates)

		// 技巧目录与推荐
		private.GET("/tools", toolController.ListTools)
		private.POST("/tools/:id/usage", toolController.LogUsage)
		private.GET("/recommendations", recommendationController.GetRecommendations)

		// 用户
		private.GET("/user", userController.GetUser)
		private.PATCH("/user", userController.UpdateUser)
		private.GET("/user/energy", userController.GetEnergy)
		private.POST("/redeem", redeemController.RedeemCode)
	}

	// 内部路由组（仅限服务器内部调用）
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware()) // 内部认证中间件
	{
		internal.GET("/user/add-energy", userController.AddEnergy)
		internal.GET("/redeem/generate", redeemController.CreateRedeemCode)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	return chatController
}
