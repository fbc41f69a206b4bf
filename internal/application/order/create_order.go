package order

import (
	"context"
	"errors"
	"time"

	"github.com/Meggatr0N/bookstore-api/internal/domain/catalog"
	domainorder "github.com/Meggatr0N/bookstore-api/internal/domain/order"
	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
)

// ItemInput 下单明细行输入
// 指针字段用于区分"未提供"和"零值"，缺字段的行视为无效
type ItemInput struct {
	BookID   *uint
	Quantity *int
}

// Create 创建订单
// 整个流程在一个事务内完成：
// 1. 先落订单行，拿到订单ID
// 2. 逐行校验图书存在并写入明细，缺字段或数量非正的行直接跳过
// 3. 引用了不存在图书的行导致整单回滚
// 4. 没有任何有效明细同样回滚，订单行不留痕
// 5. 总价 = Σ(图书单价 × 数量)，以分累加后写回订单
func (s *Service) Create(ctx context.Context, customerID uint, items []ItemInput) (*domainorder.Order, error) {
	var created *domainorder.Order

	err := s.tx.Transaction(ctx, func(txCtx context.Context) error {
		o := &domainorder.Order{
			DatePlaced: time.Now(),
			CustomerID: customerID,
		}
		if err := s.orders.Create(txCtx, o); err != nil {
			return err
		}

		var total int64
		persisted := 0

		for _, item := range items {
			if item.BookID == nil || item.Quantity == nil || *item.Quantity <= 0 {
				continue
			}

			book, err := s.books.FindByID(txCtx, *item.BookID)
			if err != nil {
				if errors.Is(err, catalog.ErrBookNotFound) {
					return apperrors.NotFoundf("Book with ID %d not found", *item.BookID)
				}
				return err
			}

			if err := s.orders.CreateItem(txCtx, &domainorder.LineItem{
				OrderID:  o.ID,
				BookID:   book.ID,
				Quantity: *item.Quantity,
			}); err != nil {
				return err
			}

			total += book.Price * int64(*item.Quantity)
			persisted++
		}

		if persisted == 0 {
			return domainorder.ErrEmptyData
		}

		if err := s.orders.UpdateFields(txCtx, o.ID, map[string]any{"total_price": total}); err != nil {
			return err
		}

		full, err := s.orders.FindByID(txCtx, o.ID)
		if err != nil {
			return err
		}
		created = full
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
