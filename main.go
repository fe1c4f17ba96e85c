package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"monviso/config"
	"monviso/database"
	"monviso/middleware"
	"monviso/router"
	"monviso/service"
)

// @title MonViso 预算 API
// @version 1.0
// @description 个人预算后端：注册登录、引导流程、收支与储蓄目标管理、仪表盘汇总与交易流水
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
	mailTest    string
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
	flag.StringVar(&mailTest, "mail-test", "", "向指定地址发送测试邮件后退出")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("MonViso v1.0.0")
		return
	}

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		// 自动添加冒号前缀
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("命令行指定端口: %s", port)
	}

	// 打印配置信息
	config.PrintConfig()

	if mailTest != "" {
		if err := service.NewEmailService(&cfg.Email).SendTestEmail(mailTest); err != nil {
			log.Fatalf("测试邮件发送失败: %v", err)
		}
		log.Printf("测试邮件已发送至 %s", mailTest)
		return
	}

	// 初始化数据库
	if err := database.Init(cfg); err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}

	// 初始化 JWT
	middleware.InitJWT(cfg)

	// 设置路由
	r := router.SetupRouter(cfg)

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigc
		log.Printf("收到信号 %s，正在关闭服务...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("关闭服务失败: %v", err)
		}
	}()

	// 启动服务器
	log.Printf("==========================================")
	log.Printf("  💰 MonViso 已启动")
	log.Printf("==========================================")
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("  API接口:  http://localhost%s/api/", cfg.Server.Port)
	log.Printf("  指标:     http://localhost%s/metrics", cfg.Server.Port)
	log.Printf("==========================================")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("服务器启动失败: %v", err)
	}
	log.Println("服务已停止")
}
