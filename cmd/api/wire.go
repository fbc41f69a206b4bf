//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
// 运行 `wire gen ./cmd/api` 生成wire_gen.go

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	apporder "github.com/Meggatr0N/bookstore-api/internal/application/order"
	appuser "github.com/Meggatr0N/bookstore-api/internal/application/user"
	"github.com/Meggatr0N/bookstore-api/internal/domain/catalog"
	domainorder "github.com/Meggatr0N/bookstore-api/internal/domain/order"
	"github.com/Meggatr0N/bookstore-api/internal/domain/user"
	"github.com/Meggatr0N/bookstore-api/internal/infrastructure/config"
	"github.com/Meggatr0N/bookstore-api/internal/infrastructure/persistence/mysql"
	"github.com/Meggatr0N/bookstore-api/internal/infrastructure/persistence/redis"
	"github.com/Meggatr0N/bookstore-api/internal/interface/http/handler"
	"github.com/Meggatr0N/bookstore-api/internal/interface/http/middleware"
	"github.com/Meggatr0N/bookstore-api/pkg/jwt"
	"github.com/Meggatr0N/bookstore-api/pkg/metrics"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
	metrics.New,
)

// repositorySet 仓储层依赖
// wire.Bind把具体实现绑定到领域层接口
var repositorySet = wire.NewSet(
	mysql.NewAuthorRepo,
	wire.Bind(new(catalog.AuthorRepository), new(*mysql.AuthorRepo)),
	mysql.NewCategoryRepo,
	wire.Bind(new(catalog.CategoryRepository), new(*mysql.CategoryRepo)),
	mysql.NewBookRepo,
	wire.Bind(new(catalog.BookRepository), new(*mysql.BookRepo)),
	mysql.NewUserRepo,
	wire.Bind(new(user.Repository), new(*mysql.UserRepo)),
	mysql.NewOrderRepo,
	wire.Bind(new(domainorder.Repository), new(*mysql.OrderRepo)),
	mysql.NewTxManager,
	wire.Bind(new(domainorder.Transactor), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	catalog.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewAuthService,
	apporder.NewService,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	wire.Bind(new(appuser.SessionStore), new(*redis.SessionStore)),
	wire.Bind(new(middleware.TokenBlacklist), new(*redis.SessionStore)),
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewAuthorHandler,
	handler.NewCategoryHandler,
	handler.NewBookHandler,
	handler.NewOrderHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	m *metrics.Metrics,
	userHandler *handler.UserHandler,
	authorHandler *handler.AuthorHandler,
	categoryHandler *handler.CategoryHandler,
	bookHandler *handler.BookHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(m.Middleware())

	// Swagger文档，访问 /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, m, userHandler, authorHandler, categoryHandler, bookHandler, orderHandler, authMiddleware)

	return r
}

// InitializeApp 初始化整个应用
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
