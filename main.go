package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SahaayGo/config"
	"SahaayGo/middleware"
	"SahaayGo/routes"
	"SahaayGo/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// 初始化日志
	if err := config.InitLogger(); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	defer config.Logger.Sync()

	// 加载配置
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
		return
	}

	// 初始化数据库
	if err := config.InitDB(conf); err != nil {
		log.Fatalf("无法初始化数据库: %v", err)
		return
	}

	// 初始化Redis
	if err := config.InitRedis(conf); err != nil {
		log.Fatalf("无法初始化Redis: %v", err)
		return
	}

	// 加载技巧目录
	if err := config.InitCatalog(conf); err != nil {
		log.Fatalf("无法加载技巧目录: %v", err)
		return
	}

	// 初始化Deepseek客户端
	deepseekClient, err := services.NewDeepseekClient(conf.DeepseekAPIKey, conf.DeepseekAPIEndpoint)
	if err != nil {
		log.Fatalf("无法初始化Deepseek客户端: %v", err)
	}

	// 创建ChatService
	chatService := services.NewChatService(deepseekClient)

	// 设置Gin模式
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建Gin引擎
	r := gin.New()

	// 设置中间件
	middleware.SetupMiddleware(r)

	// 注册路由
	chatController := routes.RegisterRoutes(r, chatService)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	// 在goroutine中启动服务器
	go func() {
		log.Printf("启动服务器，监听端口: %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 创建超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务器关闭失败: %v", err)
	}

	log.Println("服务器已关闭")

	// 等待落库和摘要协程收尾
	log.Println("正在等待所有后台任务完成...")
	chatController.Wait()
	chatService.Wait()
	log.Println("所有后台任务已完成")
}
