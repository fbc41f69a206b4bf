package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Meggatr0N/bookstore-api/internal/infrastructure/config"
)

// NewDB 初始化MySQL连接
// 设计说明：连接池参数从配置读取，日志级别跟随服务运行模式
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&CategoryModel{},
		&BookModel{},
		&UserModel{},
		&OrderModel{},
		&OrderItemModel{},
	)
}

// ========== 数据库模型 ==========
// 模型携带GORM标签，与领域实体分离，仓储负责两者转换

// AuthorModel 作者表
type AuthorModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;uniqueIndex;not null"`
	Email     string `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AuthorModel) TableName() string {
	return "authors"
}

// CategoryModel 分类表
type CategoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;uniqueIndex;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel 图书表
// Price以分为单位存储，规避DECIMAL与浮点转换问题
type BookModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:200;uniqueIndex;not null"`
	Price       int64  `gorm:"not null"`
	Description string `gorm:"type:text"`
	Year        int
	IsActive    bool `gorm:"not null;default:true"`
	AuthorID    uint `gorm:"index;not null"`
	CategoryID  uint `gorm:"index;not null"`
	Author      *AuthorModel
	Category    *CategoryModel
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (BookModel) TableName() string {
	return "books"
}

// UserModel 用户表
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Fullname  string `gorm:"size:100;not null"`
	Email     string `gorm:"size:100;uniqueIndex;not null"`
	Password  string `gorm:"size:100;not null"`
	Role      string `gorm:"size:20;not null;default:'user'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// OrderModel 订单表
type OrderModel struct {
	ID           uint      `gorm:"primaryKey"`
	DatePlaced   time.Time `gorm:"index;not null"`
	CustomerID   uint      `gorm:"index;not null"`
	TotalPrice   int64     `gorm:"not null"`
	Paid         bool      `gorm:"not null;default:false"`
	DeliveryDate *time.Time
	Complete     bool             `gorm:"not null;default:false"`
	Items        []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel 订单明细表
type OrderItemModel struct {
	ID       uint `gorm:"primaryKey"`
	OrderID  uint `gorm:"index;not null"`
	BookID   uint `gorm:"index;not null"`
	Quantity int  `gorm:"not null"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
