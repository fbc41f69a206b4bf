package order

import apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"

var (
	ErrOrderNotFound = apperrors.NotFound("Order not found")

	// 创建订单时所有明细行均无效，订单不落库
	ErrEmptyData = apperrors.BadRequest("Empty entered data")

	// 替换订单内容时明细行缺少book_id或quantity
	ErrIncorrectData = apperrors.BadRequest("Incorrect data")
)
