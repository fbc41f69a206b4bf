package order

import (
	"github.com/Meggatr0N/bookstore-api/internal/domain/catalog"
	domainorder "github.com/Meggatr0N/bookstore-api/internal/domain/order"
)

// Service 订单应用服务
// 编排下单、替换订单内容、服务字段维护等跨聚合流程，
// 涉及订单与明细双写的操作全部包在事务里
type Service struct {
	orders domainorder.Repository
	books  catalog.BookRepository
	tx     domainorder.Transactor
}

func NewService(orders domainorder.Repository, books catalog.BookRepository, tx domainorder.Transactor) *Service {
	return &Service{
		orders: orders,
		books:  books,
		tx:     tx,
	}
}
