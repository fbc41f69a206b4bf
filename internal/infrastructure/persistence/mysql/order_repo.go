package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Meggatr0N/bookstore-api/internal/domain/order"
	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
)

// OrderRepo 订单仓储的MySQL实现
// 订单与明细分布在两张表，读取时预加载明细，删除时显式清理明细
type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Create(ctx context.Context, o *order.Order) error {
	model := orderToModel(o)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to create order")
	}
	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	o.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *OrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	if err := getDB(ctx, r.db).Preload("Items").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to find order")
	}
	return orderToEntity(&model), nil
}

// FindByIDForCustomer 按主键查询并校验归属
// 非本人的订单返回NotFound而不是Forbidden，不泄露订单存在性
func (r *OrderRepo) FindByIDForCustomer(ctx context.Context, id, customerID uint) (*order.Order, error) {
	var model OrderModel
	err := getDB(ctx, r.db).Preload("Items").
		Where("id = ? AND customer_id = ?", id, customerID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to find order")
	}
	return orderToEntity(&model), nil
}

func (r *OrderRepo) List(ctx context.Context, params order.ListParams) ([]*order.Order, int64, error) {
	query := getDB(ctx, r.db).Model(&OrderModel{})

	if params.CustomerID != 0 {
		query = query.Where("customer_id = ?", params.CustomerID)
	}
	if params.Paid != nil {
		query = query.Where("paid = ?", *params.Paid)
	}
	if params.Complete != nil {
		query = query.Where("complete = ?", *params.Complete)
	}
	if params.PlacedAfter != nil {
		query = query.Where("date_placed >= ?", *params.PlacedAfter)
	}
	if params.PlacedBefore != nil {
		query = query.Where("date_placed <= ?", *params.PlacedBefore)
	}
	if params.DeliverAfter != nil {
		query = query.Where("delivery_date >= ?", *params.DeliverAfter)
	}
	if params.DeliverBefore != nil {
		query = query.Where("delivery_date <= ?", *params.DeliverBefore)
	}
	if params.MinTotalPrice != nil {
		query = query.Where("total_price >= ?", *params.MinTotalPrice)
	}
	if params.MaxTotalPrice != nil {
		query = query.Where("total_price <= ?", *params.MaxTotalPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to count orders")
	}

	if params.LatestFirst {
		query = query.Order("id DESC")
	} else {
		query = query.Order("id ASC")
	}

	limit := normalizeLimit(params.Limit)

	var models []OrderModel
	if err := query.Preload("Items").Offset(offset(params.Page, limit)).Limit(limit).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to list orders")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = orderToEntity(&models[i])
	}
	return orders, total, nil
}

func (r *OrderRepo) UpdateFields(ctx context.Context, id uint, changes map[string]any) error {
	result := getDB(ctx, r.db).Model(&OrderModel{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, apperrors.ErrCodeDatabaseError, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

// Delete 删除订单及其全部明细
func (r *OrderRepo) Delete(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)

	if err := db.Where("order_id = ?", id).Delete(&OrderItemModel{}).Error; err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to delete order items")
	}

	result := db.Delete(&OrderModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, apperrors.ErrCodeDatabaseError, "failed to delete order")
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepo) CreateItem(ctx context.Context, item *order.LineItem) error {
	model := &OrderItemModel{
		OrderID:  item.OrderID,
		BookID:   item.BookID,
		Quantity: item.Quantity,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to create order item")
	}
	item.ID = model.ID
	return nil
}

func (r *OrderRepo) DeleteItems(ctx context.Context, orderID uint) error {
	if err := getDB(ctx, r.db).Where("order_id = ?", orderID).Delete(&OrderItemModel{}).Error; err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeDatabaseError, "failed to delete order items")
	}
	return nil
}

func orderToModel(o *order.Order) *OrderModel {
	return &OrderModel{
		ID:           o.ID,
		DatePlaced:   o.DatePlaced,
		CustomerID:   o.CustomerID,
		TotalPrice:   o.TotalPrice,
		Paid:         o.Paid,
		DeliveryDate: o.DeliveryDate,
		Complete:     o.Complete,
	}
}

func orderToEntity(m *OrderModel) *order.Order {
	items := make([]order.LineItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = order.LineItem{
			ID:       it.ID,
			OrderID:  it.OrderID,
			BookID:   it.BookID,
			Quantity: it.Quantity,
		}
	}
	return &order.Order{
		ID:           m.ID,
		DatePlaced:   m.DatePlaced,
		CustomerID:   m.CustomerID,
		TotalPrice:   m.TotalPrice,
		Paid:         m.Paid,
		DeliveryDate: m.DeliveryDate,
		Complete:     m.Complete,
		Items:        items,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
