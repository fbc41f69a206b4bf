package dto

import (
	"time"

	approrder "github.com/Meggatr0N/bookstore-api/internal/application/order"
	"github.com/Meggatr0N/bookstore-api/internal/domain/order"
)

// CreateOrderItemRequest 下单明细行
// 下单时两个字段在校验层就是必填，不合格的请求直接拒绝
type CreateOrderItemRequest struct {
	BookID   uint `json:"book_id" binding:"required" example:"1"`
	Quantity int  `json:"quantity" binding:"required,gt=0" example:"2"`
}

// OrderItemRequest 替换订单内容的明细行
// 指针字段保留"字段缺失"信息，缺字段的行由业务层整单拒绝
type OrderItemRequest struct {
	BookID   *uint `json:"book_id" example:"1"`
	Quantity *int  `json:"quantity" example:"2"`
}

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	Items []CreateOrderItemRequest `json:"items" binding:"required,dive"`
}

// UpdateOrderContentsRequest 全量替换订单内容
type UpdateOrderContentsRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required"`
}

func (r CreateOrderRequest) ToInputs() []approrder.ItemInput {
	inputs := make([]approrder.ItemInput, len(r.Items))
	for i := range r.Items {
		item := r.Items[i]
		inputs[i] = approrder.ItemInput{
			BookID:   &item.BookID,
			Quantity: &item.Quantity,
		}
	}
	return inputs
}

func (r UpdateOrderContentsRequest) ToInputs() []approrder.ItemInput {
	inputs := make([]approrder.ItemInput, len(r.Items))
	for i, item := range r.Items {
		inputs[i] = approrder.ItemInput{
			BookID:   item.BookID,
			Quantity: item.Quantity,
		}
	}
	return inputs
}

// UpdateOrderServiceRequest 店员维护订单服务字段
type UpdateOrderServiceRequest struct {
	Paid         *bool      `json:"paid"`
	DeliveryDate *time.Time `json:"delivery_date"`
	Complete     *bool      `json:"complete"`
}

func (r UpdateOrderServiceRequest) ToPatch() order.ServicePatch {
	return order.ServicePatch{
		Paid:         r.Paid,
		DeliveryDate: r.DeliveryDate,
		Complete:     r.Complete,
	}
}

// OrderItemResponse 订单明细响应
type OrderItemResponse struct {
	ID       uint `json:"id"`
	BookID   uint `json:"book_id"`
	Quantity int  `json:"quantity"`
}

// OrderResponse 订单响应
type OrderResponse struct {
	ID           uint                `json:"id"`
	DatePlaced   time.Time           `json:"date_placed"`
	CustomerID   uint                `json:"customer_id"`
	TotalPrice   float64             `json:"total_price"`
	Paid         bool                `json:"paid"`
	DeliveryDate *time.Time          `json:"delivery_date"`
	Complete     bool                `json:"complete"`
	Items        []OrderItemResponse `json:"items"`
}

func NewOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:       item.ID,
			BookID:   item.BookID,
			Quantity: item.Quantity,
		}
	}
	return OrderResponse{
		ID:           o.ID,
		DatePlaced:   o.DatePlaced,
		CustomerID:   o.CustomerID,
		TotalPrice:   CentsToPrice(o.TotalPrice),
		Paid:         o.Paid,
		DeliveryDate: o.DeliveryDate,
		Complete:     o.Complete,
		Items:        items,
	}
}

func NewOrderResponseList(orders []*order.Order) []OrderResponse {
	list := make([]OrderResponse, len(orders))
	for i, o := range orders {
		list[i] = NewOrderResponse(o)
	}
	return list
}
