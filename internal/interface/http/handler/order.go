package handler

import (
	"github.com/gin-gonic/gin"

	approrder "github.com/Meggatr0N/bookstore-api/internal/application/order"
	domainorder "github.com/Meggatr0N/bookstore-api/internal/domain/order"
	"github.com/Meggatr0N/bookstore-api/internal/interface/http/dto"
	"github.com/Meggatr0N/bookstore-api/internal/interface/http/middleware"
	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
	"github.com/Meggatr0N/bookstore-api/pkg/response"
)

// OrderHandler 订单接口
// 权限模型：顾客只能操作自己的订单，店员可以查看和维护所有订单
type OrderHandler struct {
	orders *approrder.Service
}

func NewOrderHandler(svc *approrder.Service) *OrderHandler {
	return &OrderHandler{orders: svc}
}

// Create 下单
// @Summary 下单
// @Description 明细行引用的图书必须存在，总价按图书单价自动计算
// @Tags 订单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOrderRequest true "订单明细"
// @Success 201 {object} response.Response{data=dto.OrderResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	o, err := h.orders.Create(c.Request.Context(), middleware.GetUserID(c), req.ToInputs())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewOrderResponse(o))
}

// Get 查看订单
// @Summary 查看订单
// @Description 顾客只能查自己的订单，店员可查任意订单
// @Tags 订单
// @Produce json
// @Security BearerAuth
// @Param id path int true "订单ID"
// @Success 200 {object} response.Response{data=dto.OrderResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var o *domainorder.Order
	if middleware.IsStaff(c) {
		o, err = h.orders.Get(c.Request.Context(), id)
	} else {
		o, err = h.orders.GetOwn(c.Request.Context(), id, middleware.GetUserID(c))
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewOrderResponse(o))
}

// List 订单列表
// @Summary 订单列表
// @Description 顾客只看到自己的订单；店员可查全部并按顾客过滤
// @Tags 订单
// @Produce json
// @Security BearerAuth
// @Param customer_id query int false "顾客过滤（仅店员）"
// @Param paid query bool false "支付状态过滤"
// @Param complete query bool false "完成状态过滤"
// @Param placed_after query string false "下单时间下限"
// @Param placed_before query string false "下单时间上限"
// @Param deliver_after query string false "配送日期下限"
// @Param deliver_before query string false "配送日期上限"
// @Param min_total query number false "总价下限"
// @Param max_total query number false "总价上限"
// @Param latest_first query bool false "按下单时间倒序"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页条数" default(10)
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /api/v1/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	paid, err := parseBoolQuery(c, "paid")
	if err != nil {
		response.Error(c, err)
		return
	}
	complete, err := parseBoolQuery(c, "complete")
	if err != nil {
		response.Error(c, err)
		return
	}
	placedAfter, err := parseDateQuery(c, "placed_after")
	if err != nil {
		response.Error(c, err)
		return
	}
	placedBefore, err := parseDateQuery(c, "placed_before")
	if err != nil {
		response.Error(c, err)
		return
	}
	deliverAfter, err := parseDateQuery(c, "deliver_after")
	if err != nil {
		response.Error(c, err)
		return
	}
	deliverBefore, err := parseDateQuery(c, "deliver_before")
	if err != nil {
		response.Error(c, err)
		return
	}
	minTotal, err := parsePriceQuery(c, "min_total")
	if err != nil {
		response.Error(c, err)
		return
	}
	maxTotal, err := parsePriceQuery(c, "max_total")
	if err != nil {
		response.Error(c, err)
		return
	}
	latestFirst, err := parseBoolQuery(c, "latest_first")
	if err != nil {
		response.Error(c, err)
		return
	}

	params := domainorder.ListParams{
		Paid:          paid,
		Complete:      complete,
		PlacedAfter:   placedAfter,
		PlacedBefore:  placedBefore,
		DeliverAfter:  deliverAfter,
		DeliverBefore: deliverBefore,
		MinTotalPrice: minTotal,
		MaxTotalPrice: maxTotal,
		LatestFirst:   latestFirst != nil && *latestFirst,
		Page:          page,
		Limit:         limit,
	}

	var (
		orders []*domainorder.Order
		total  int64
	)
	if middleware.IsStaff(c) {
		customerID, err := parseUintQuery(c, "customer_id")
		if err != nil {
			response.Error(c, err)
			return
		}
		params.CustomerID = customerID
		orders, total, err = h.orders.List(c.Request.Context(), params)
		if err != nil {
			response.Error(c, err)
			return
		}
	} else {
		orders, total, err = h.orders.ListOwn(c.Request.Context(), middleware.GetUserID(c), params)
		if err != nil {
			response.Error(c, err)
			return
		}
	}

	response.SuccessWithPage(c, dto.NewOrderResponseList(orders), total, page, limit)
}

// UpdateContents 全量替换订单内容
// @Summary 替换订单内容
// @Description 旧明细全部删除后整批写入新明细，总价重算；缺字段的行导致整单拒绝
// @Tags 订单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "订单ID"
// @Param request body dto.UpdateOrderContentsRequest true "新明细"
// @Success 200 {object} response.Response{data=dto.OrderResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/orders/{id}/contents [put]
func (h *OrderHandler) UpdateContents(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateOrderContentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	// 顾客传自己的ID限定归属，店员传零可操作任意订单
	customerID := middleware.GetUserID(c)
	if middleware.IsStaff(c) {
		customerID = 0
	}

	o, err := h.orders.UpdateContents(c.Request.Context(), id, customerID, req.ToInputs())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewOrderResponse(o))
}

// UpdateService 维护订单服务字段
// @Summary 维护订单服务字段
// @Description 店员调整支付状态、配送日期、完成状态
// @Tags 订单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "订单ID"
// @Param request body dto.UpdateOrderServiceRequest true "服务字段"
// @Success 200 {object} response.Response{data=dto.OrderResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/orders/{id}/service [patch]
func (h *OrderHandler) UpdateService(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateOrderServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	o, err := h.orders.UpdateServiceFields(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.NewOrderResponse(o))
}

// Delete 删除订单
// @Summary 删除订单
// @Description 订单与全部明细一并删除
// @Tags 订单
// @Produce json
// @Security BearerAuth
// @Param id path int true "订单ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Order deleted"})
}
