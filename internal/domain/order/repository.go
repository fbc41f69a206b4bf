package order

import (
	"context"
	"time"
)

// ListParams 订单列表查询参数
// CustomerID非零时只返回该顾客的订单（普通用户查自己的订单走这条路径）
type ListParams struct {
	CustomerID    uint
	Paid          *bool
	Complete      *bool
	PlacedAfter   *time.Time
	PlacedBefore  *time.Time
	DeliverAfter  *time.Time
	DeliverBefore *time.Time
	MinTotalPrice *int64
	MaxTotalPrice *int64
	LatestFirst   bool
	Page          int
	Limit         int
}

// Repository 订单仓储接口
// 明细行的增删独立成方法，供全量替换订单内容的流程使用
type Repository interface {
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	FindByIDForCustomer(ctx context.Context, id, customerID uint) (*Order, error)
	List(ctx context.Context, params ListParams) ([]*Order, int64, error)
	UpdateFields(ctx context.Context, id uint, changes map[string]any) error
	Delete(ctx context.Context, id uint) error

	CreateItem(ctx context.Context, item *LineItem) error
	DeleteItems(ctx context.Context, orderID uint) error
}

// Transactor 事务边界抽象
// 由基础设施层的事务管理器实现，应用层用例通过它保证
// 订单与明细的写入要么全部成功要么全部回滚
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
