package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 图书目录集成测试
// 覆盖：权限边界、重名冲突、差量更新、引用完整性

func TestCatalogPermissions(t *testing.T) {
	requireIntegration(t)

	_, userToken := RegisterTestUser(t, "catalog_user")

	// 普通用户不能创建作者
	resp := PostJSON(t, BaseURL+"/authors", map[string]string{
		"name": uniqueName("forbidden"),
	}, userToken)
	assert.NotEqual(t, 0, resp.Code)
	assert.Equal(t, "Permission denied", resp.Message)

	// 未登录连列表都看不了
	resp = GetJSON(t, BaseURL+"/authors", "")
	assert.NotEqual(t, 0, resp.Code)
}

func TestAuthorCRUD(t *testing.T) {
	requireIntegration(t)

	staff := StaffToken(t)
	name := uniqueName("author_crud")

	createResp := PostJSON(t, BaseURL+"/authors", map[string]string{"name": name}, staff)
	require.Equal(t, 0, createResp.Code, "创建作者失败: %s", createResp.Message)

	var author AuthorData
	require.NoError(t, json.Unmarshal(createResp.Data, &author))

	t.Run("重名冲突", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/authors", map[string]string{"name": name}, staff)
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("无变化的更新被拒绝", func(t *testing.T) {
		resp := PatchJSON(t, fmt.Sprintf("%s/authors/%d", BaseURL, author.ID),
			map[string]string{"name": name}, staff)
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("差量更新", func(t *testing.T) {
		newName := uniqueName("author_renamed")
		resp := PatchJSON(t, fmt.Sprintf("%s/authors/%d", BaseURL, author.ID),
			map[string]string{"name": newName}, staff)
		require.Equal(t, 0, resp.Code, "更新失败: %s", resp.Message)

		var updated AuthorData
		require.NoError(t, json.Unmarshal(resp.Data, &updated))
		assert.Equal(t, newName, updated.Name)
	})
}

func TestBookReferentialChecks(t *testing.T) {
	requireIntegration(t)

	staff := StaffToken(t)

	t.Run("作者不存在", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"name":        uniqueName("orphan_book"),
			"price":       9.99,
			"author_id":   99999999,
			"category_id": 99999999,
		}, staff)
		assert.NotEqual(t, 0, resp.Code)
		assert.Equal(t, "Author not found", resp.Message)
	})

	t.Run("价格小数转换", func(t *testing.T) {
		bookID := CreateTestBook(t, staff, 5.55)

		resp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID), staff)
		require.Equal(t, 0, resp.Code)

		var book BookData
		require.NoError(t, json.Unmarshal(resp.Data, &book))
		assert.InDelta(t, 5.55, book.Price, 0.0001)
	})
}
