package order

import "time"

// Order 订单聚合根
// 设计说明：TotalPrice以分为单位，由订单明细数量乘以图书单价累加得出，
// 任何明细变动后都必须重算
type Order struct {
	ID           uint
	DatePlaced   time.Time
	CustomerID   uint
	TotalPrice   int64 // 单位：分
	Paid         bool
	DeliveryDate *time.Time
	Complete     bool
	Items        []LineItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LineItem 订单明细行
type LineItem struct {
	ID       uint
	OrderID  uint
	BookID   uint
	Quantity int
}
