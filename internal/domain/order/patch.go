package order

import "time"

// ServicePatch 订单服务字段补丁
// 店员只能改动支付状态、配送日期、完成状态这三个服务字段，
// 顾客身份、下单时间、金额一律不可改
type ServicePatch struct {
	Paid         *bool
	DeliveryDate *time.Time
	Complete     *bool
}

// Diff 计算与当前订单的差异，键为数据库列名
func (p ServicePatch) Diff(current *Order) map[string]any {
	changes := make(map[string]any)
	if p.Paid != nil && *p.Paid != current.Paid {
		changes["paid"] = *p.Paid
	}
	if p.DeliveryDate != nil {
		if current.DeliveryDate == nil || !p.DeliveryDate.Equal(*current.DeliveryDate) {
			changes["delivery_date"] = *p.DeliveryDate
		}
	}
	if p.Complete != nil && *p.Complete != current.Complete {
		changes["complete"] = *p.Complete
	}
	return changes
}
