package order

import (
	"context"

	domainorder "github.com/Meggatr0N/bookstore-api/internal/domain/order"
	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
)

// List 订单列表（店员视角，可查所有顾客）
func (s *Service) List(ctx context.Context, params domainorder.ListParams) ([]*domainorder.Order, int64, error) {
	return s.orders.List(ctx, params)
}

// ListOwn 顾客查询自己的订单
func (s *Service) ListOwn(ctx context.Context, customerID uint, params domainorder.ListParams) ([]*domainorder.Order, int64, error) {
	params.CustomerID = customerID
	return s.orders.List(ctx, params)
}

// Get 查询任意订单
func (s *Service) Get(ctx context.Context, id uint) (*domainorder.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// GetOwn 顾客查询自己的订单详情
func (s *Service) GetOwn(ctx context.Context, id, customerID uint) (*domainorder.Order, error) {
	return s.orders.FindByIDForCustomer(ctx, id, customerID)
}

// UpdateServiceFields 店员维护订单服务字段
// 补丁与现值完全一致时拒绝
func (s *Service) UpdateServiceFields(ctx context.Context, id uint, patch domainorder.ServicePatch) (*domainorder.Order, error) {
	current, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := patch.Diff(current)
	if len(changes) == 0 {
		return nil, apperrors.ErrNoChanges
	}

	if err := s.orders.UpdateFields(ctx, id, changes); err != nil {
		return nil, err
	}

	return s.orders.FindByID(ctx, id)
}

// Delete 删除订单及全部明细，包在事务里保证不留孤儿明细
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.tx.Transaction(ctx, func(txCtx context.Context) error {
		if _, err := s.orders.FindByID(txCtx, id); err != nil {
			return err
		}
		return s.orders.Delete(txCtx, id)
	})
}
