package catalog

// 差量更新补丁
// 设计说明：指针字段区分"未提供"和"零值"两种语义；
// Diff方法对比当前实体，只返回真正发生变化的列，
// 全部字段都与现值相同视为无效更新，由服务层拒绝

// AuthorPatch 作者更新补丁
type AuthorPatch struct {
	Name  *string
	Email *string
}

// Diff 计算与当前实体的差异，键为数据库列名
func (p AuthorPatch) Diff(current *Author) map[string]any {
	changes := make(map[string]any)
	if p.Name != nil && *p.Name != current.Name {
		changes["name"] = *p.Name
	}
	if p.Email != nil && *p.Email != current.Email {
		changes["email"] = *p.Email
	}
	return changes
}

// CategoryPatch 分类更新补丁
type CategoryPatch struct {
	Name     *string
	IsActive *bool
}

func (p CategoryPatch) Diff(current *Category) map[string]any {
	changes := make(map[string]any)
	if p.Name != nil && *p.Name != current.Name {
		changes["name"] = *p.Name
	}
	if p.IsActive != nil && *p.IsActive != current.IsActive {
		changes["is_active"] = *p.IsActive
	}
	return changes
}

// BookPatch 图书更新补丁
// Price单位为分，与实体保持一致
type BookPatch struct {
	Name        *string
	Price       *int64
	Description *string
	Year        *int
	IsActive    *bool
	AuthorID    *uint
	CategoryID  *uint
}

func (p BookPatch) Diff(current *Book) map[string]any {
	changes := make(map[string]any)
	if p.Name != nil && *p.Name != current.Name {
		changes["name"] = *p.Name
	}
	if p.Price != nil && *p.Price != current.Price {
		changes["price"] = *p.Price
	}
	if p.Description != nil && *p.Description != current.Description {
		changes["description"] = *p.Description
	}
	if p.Year != nil && *p.Year != current.Year {
		changes["year"] = *p.Year
	}
	if p.IsActive != nil && *p.IsActive != current.IsActive {
		changes["is_active"] = *p.IsActive
	}
	if p.AuthorID != nil && *p.AuthorID != current.AuthorID {
		changes["author_id"] = *p.AuthorID
	}
	if p.CategoryID != nil && *p.CategoryID != current.CategoryID {
		changes["category_id"] = *p.CategoryID
	}
	return changes
}
