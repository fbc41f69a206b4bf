package order

import (
	"context"
	"errors"

	"github.com/Meggatr0N/bookstore-api/internal/domain/catalog"
	domainorder "github.com/Meggatr0N/bookstore-api/internal/domain/order"
	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
)

// UpdateContents 全量替换订单内容
// customerID非零时只允许操作本人订单（店员传零操作任意订单）。
// 语义是替换而非合并：新明细全部校验通过后，旧明细整批删除、
// 新明细整批写入，总价重算。与下单不同，这里缺字段的行不跳过
// 而是整单拒绝，替换语义下静默丢行会让调用方误以为全部生效
func (s *Service) UpdateContents(ctx context.Context, orderID, customerID uint, items []ItemInput) (*domainorder.Order, error) {
	var updated *domainorder.Order

	err := s.tx.Transaction(ctx, func(txCtx context.Context) error {
		var err error
		if customerID != 0 {
			_, err = s.orders.FindByIDForCustomer(txCtx, orderID, customerID)
		} else {
			_, err = s.orders.FindByID(txCtx, orderID)
		}
		if err != nil {
			return err
		}

		if len(items) == 0 {
			return domainorder.ErrEmptyData
		}

		// 先全部校验再动数据，任何一行不合格都不碰旧明细
		var (
			total    int64
			newItems []domainorder.LineItem
		)
		for _, item := range items {
			if item.BookID == nil || item.Quantity == nil || *item.Quantity <= 0 {
				return domainorder.ErrIncorrectData
			}

			// 替换流程里引用不存在的图书算请求数据问题，按BadRequest处理
			book, err := s.books.FindByID(txCtx, *item.BookID)
			if err != nil {
				if errors.Is(err, catalog.ErrBookNotFound) {
					return apperrors.BadRequestf("Book ID %d not found", *item.BookID)
				}
				return err
			}

			newItems = append(newItems, domainorder.LineItem{
				OrderID:  orderID,
				BookID:   book.ID,
				Quantity: *item.Quantity,
			})
			total += book.Price * int64(*item.Quantity)
		}

		if err := s.orders.DeleteItems(txCtx, orderID); err != nil {
			return err
		}
		for i := range newItems {
			if err := s.orders.CreateItem(txCtx, &newItems[i]); err != nil {
				return err
			}
		}

		if err := s.orders.UpdateFields(txCtx, orderID, map[string]any{"total_price": total}); err != nil {
			return err
		}

		full, err := s.orders.FindByID(txCtx, orderID)
		if err != nil {
			return err
		}
		updated = full
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
