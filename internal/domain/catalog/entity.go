package catalog

import "time"

// 图书目录领域实体
// 设计说明：价格统一使用分（int64）存储，避免浮点运算误差；
// 接口层负责与小数金额的互相转换

// Author 作者
type Author struct {
	ID        uint
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Category 图书分类
type Category struct {
	ID        uint
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Book 图书
type Book struct {
	ID          uint
	Name        string
	Price       int64 // 单位：分
	Description string
	Year        int
	IsActive    bool
	AuthorID    uint
	CategoryID  uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
