package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Meggatr0N/bookstore-api/internal/interface/http/dto"
	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
)

// 查询参数解析辅助函数
// 非法值一律返回BadRequest，不做静默兜底

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.BadRequest("Invalid ID")
	}
	return uint(id), nil
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func parseBoolQuery(c *gin.Context, key string) (*bool, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, apperrors.BadRequestf("Invalid value for %s", key)
	}
	return &v, nil
}

func parseUintQuery(c *gin.Context, key string) (uint, error) {
	s := c.Query(key)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, apperrors.BadRequestf("Invalid value for %s", key)
	}
	return uint(v), nil
}

func parseIntQuery(c *gin.Context, key string) (int, error) {
	s := c.Query(key)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.BadRequestf("Invalid value for %s", key)
	}
	return v, nil
}

// parsePriceQuery 金额参数，小数转分
func parsePriceQuery(c *gin.Context, key string) (*int64, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, apperrors.BadRequestf("Invalid value for %s", key)
	}
	cents := dto.PriceToCents(v)
	return &cents, nil
}

// parseDateQuery 日期参数，支持RFC3339和2006-01-02两种格式
func parseDateQuery(c *gin.Context, key string) (*time.Time, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, apperrors.BadRequestf("Invalid value for %s", key)
	}
	return &t, nil
}
