package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	apporder "github.com/Meggatr0N/bookstore-api/internal/application/order"
	appuser "github.com/Meggatr0N/bookstore-api/internal/application/user"
	"github.com/Meggatr0N/bookstore-api/internal/domain/catalog"
	"github.com/Meggatr0N/bookstore-api/internal/domain/user"
	"github.com/Meggatr0N/bookstore-api/internal/infrastructure/config"
	"github.com/Meggatr0N/bookstore-api/internal/infrastructure/persistence/mysql"
	"github.com/Meggatr0N/bookstore-api/internal/infrastructure/persistence/redis"
	"github.com/Meggatr0N/bookstore-api/internal/interface/http/handler"
	"github.com/Meggatr0N/bookstore-api/internal/interface/http/middleware"
	"github.com/Meggatr0N/bookstore-api/pkg/jwt"
	"github.com/Meggatr0N/bookstore-api/pkg/metrics"
	"github.com/Meggatr0N/bookstore-api/pkg/response"
)

// main 主程序入口
// 说明：手动依赖注入，Wire配置见wire.go
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 4. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	authorRepo := mysql.NewAuthorRepo(db)
	categoryRepo := mysql.NewCategoryRepo(db)
	bookRepo := mysql.NewBookRepo(db)
	userRepo := mysql.NewUserRepo(db)
	orderRepo := mysql.NewOrderRepo(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	catalogService := catalog.NewService(authorRepo, categoryRepo, bookRepo)

	// 应用层
	authService := appuser.NewAuthService(userService, jwtManager, sessionStore)
	orderService := apporder.NewService(orderRepo, bookRepo, txManager)

	// 接口层
	userHandler := handler.NewUserHandler(authService, userService)
	authorHandler := handler.NewAuthorHandler(catalogService)
	categoryHandler := handler.NewCategoryHandler(catalogService)
	bookHandler := handler.NewBookHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 5. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	m := metrics.New()
	r.Use(m.Middleware())

	// 6. 注册路由
	registerRoutes(r, m, userHandler, authorHandler, categoryHandler, bookHandler, orderHandler, authMiddleware)

	// 7. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("服务启动: http://localhost%s\n", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	m *metrics.Metrics,
	userHandler *handler.UserHandler,
	authorHandler *handler.AuthorHandler,
	categoryHandler *handler.CategoryHandler,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := r.Group("/api/v1")
	{
		// 认证模块（公开接口）
		auth := v1.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
			auth.POST("/refresh", userHandler.Refresh)
			auth.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
		}

		// 用户模块
		users := v1.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			users.GET("/me", userHandler.Profile)
			users.PATCH("/me", userHandler.UpdateMe)

			// 管理员接口
			users.GET("", authMiddleware.RequireRole(user.RoleAdmin), userHandler.ListUsers)
			users.GET("/:id", authMiddleware.RequireRole(user.RoleAdmin), userHandler.GetUser)
			users.PATCH("/:id/role", authMiddleware.RequireRole(user.RoleAdmin), userHandler.ChangeRole)
			users.DELETE("/:id", authMiddleware.RequireRole(user.RoleAdmin), userHandler.DeleteUser)
		}

		// 作者模块：读开放给登录用户，写需要店员
		authors := v1.Group("/authors")
		authors.Use(authMiddleware.RequireAuth())
		{
			authors.GET("", authorHandler.List)
			authors.GET("/:id", authorHandler.Get)
			authors.GET("/:id/books", authorHandler.ListBooks)
			authors.POST("", authMiddleware.RequireRole(user.RoleStaff), authorHandler.Create)
			authors.PATCH("/:id", authMiddleware.RequireRole(user.RoleStaff), authorHandler.Update)
			authors.DELETE("/:id", authMiddleware.RequireRole(user.RoleStaff), authorHandler.Delete)
		}

		// 分类模块
		categories := v1.Group("/categories")
		categories.Use(authMiddleware.RequireAuth())
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
			categories.GET("/:id/books", categoryHandler.ListBooks)
			categories.POST("", authMiddleware.RequireRole(user.RoleStaff), categoryHandler.Create)
			categories.PATCH("/:id", authMiddleware.RequireRole(user.RoleStaff), categoryHandler.Update)
			categories.DELETE("/:id", authMiddleware.RequireRole(user.RoleStaff), categoryHandler.Delete)
		}

		// 图书模块
		books := v1.Group("/books")
		books.Use(authMiddleware.RequireAuth())
		{
			books.GET("", bookHandler.List)
			books.GET("/:id", bookHandler.Get)
			books.POST("", authMiddleware.RequireRole(user.RoleStaff), bookHandler.Create)
			books.PATCH("/:id", authMiddleware.RequireRole(user.RoleStaff), bookHandler.Update)
			books.DELETE("/:id", authMiddleware.RequireRole(user.RoleStaff), bookHandler.Delete)
		}

		// 订单模块：顾客操作本人订单，服务字段维护和删除需要店员
		orders := v1.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.List)
			orders.GET("/:id", orderHandler.Get)
			orders.PUT("/:id/contents", orderHandler.UpdateContents)
			orders.PATCH("/:id/service", authMiddleware.RequireRole(user.RoleStaff), orderHandler.UpdateService)
			orders.DELETE("/:id", authMiddleware.RequireRole(user.RoleStaff), orderHandler.Delete)
		}
	}
}
