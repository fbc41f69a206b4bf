package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Meggatr0N/bookstore-api/internal/domain/catalog"
	domainorder "github.com/Meggatr0N/bookstore-api/internal/domain/order"
	apperrors "github.com/Meggatr0N/bookstore-api/pkg/errors"
)

// fakeBookRepo 只实现订单流程需要的查询
type fakeBookRepo struct {
	books map[uint]*catalog.Book
}

func (r *fakeBookRepo) Create(_ context.Context, _ *catalog.Book) error { return nil }

func (r *fakeBookRepo) FindByID(_ context.Context, id uint) (*catalog.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, catalog.ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookRepo) List(_ context.Context, _ catalog.BookListParams) ([]*catalog.Book, int64, error) {
	return nil, 0, nil
}

func (r *fakeBookRepo) UpdateFields(_ context.Context, _ uint, _ map[string]any) error { return nil }
func (r *fakeBookRepo) Delete(_ context.Context, _ uint) error                         { return nil }

// fakeOrderRepo 内存版订单仓储
type fakeOrderRepo struct {
	orders     map[uint]*domainorder.Order
	items      map[uint][]domainorder.LineItem
	nextID     uint
	nextItemID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:     make(map[uint]*domainorder.Order),
		items:      make(map[uint][]domainorder.LineItem),
		nextID:     1,
		nextItemID: 1,
	}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *domainorder.Order) error {
	o.ID = r.nextID
	r.nextID++
	copied := *o
	r.orders[o.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uint) (*domainorder.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domainorder.ErrOrderNotFound
	}
	copied := *o
	copied.Items = append([]domainorder.LineItem(nil), r.items[id]...)
	return &copied, nil
}

func (r *fakeOrderRepo) FindByIDForCustomer(ctx context.Context, id, customerID uint) (*domainorder.Order, error) {
	o, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.CustomerID != customerID {
		return nil, domainorder.ErrOrderNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, params domainorder.ListParams) ([]*domainorder.Order, int64, error) {
	list := make([]*domainorder.Order, 0, len(r.orders))
	for id := range r.orders {
		o, _ := r.FindByID(ctx, id)
		if params.CustomerID != 0 && o.CustomerID != params.CustomerID {
			continue
		}
		if params.Paid != nil && o.Paid != *params.Paid {
			continue
		}
		list = append(list, o)
	}
	return list, int64(len(list)), nil
}

func (r *fakeOrderRepo) UpdateFields(_ context.Context, id uint, changes map[string]any) error {
	o, ok := r.orders[id]
	if !ok {
		return domainorder.ErrOrderNotFound
	}
	if v, ok := changes["total_price"].(int64); ok {
		o.TotalPrice = v
	}
	if v, ok := changes["paid"].(bool); ok {
		o.Paid = v
	}
	if v, ok := changes["delivery_date"].(time.Time); ok {
		o.DeliveryDate = &v
	}
	if v, ok := changes["complete"].(bool); ok {
		o.Complete = v
	}
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.orders[id]; !ok {
		return domainorder.ErrOrderNotFound
	}
	delete(r.orders, id)
	delete(r.items, id)
	return nil
}

func (r *fakeOrderRepo) CreateItem(_ context.Context, item *domainorder.LineItem) error {
	item.ID = r.nextItemID
	r.nextItemID++
	r.items[item.OrderID] = append(r.items[item.OrderID], *item)
	return nil
}

func (r *fakeOrderRepo) DeleteItems(_ context.Context, orderID uint) error {
	delete(r.items, orderID)
	return nil
}

// fakeTx 用快照/恢复模拟事务回滚语义
type fakeTx struct {
	repo *fakeOrderRepo
}

func (t *fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ordersSnap := make(map[uint]*domainorder.Order, len(t.repo.orders))
	for id, o := range t.repo.orders {
		copied := *o
		ordersSnap[id] = &copied
	}
	itemsSnap := make(map[uint][]domainorder.LineItem, len(t.repo.items))
	for id, items := range t.repo.items {
		itemsSnap[id] = append([]domainorder.LineItem(nil), items...)
	}
	nextID, nextItemID := t.repo.nextID, t.repo.nextItemID

	if err := fn(ctx); err != nil {
		t.repo.orders = ordersSnap
		t.repo.items = itemsSnap
		t.repo.nextID, t.repo.nextItemID = nextID, nextItemID
		return err
	}
	return nil
}

func newTestService() (*Service, *fakeOrderRepo) {
	orderRepo := newFakeOrderRepo()
	bookRepo := &fakeBookRepo{books: map[uint]*catalog.Book{
		1: {ID: 1, Name: "Go in Action", Price: 555},  // 5.55
		2: {ID: 2, Name: "Learning Go", Price: 2050},  // 20.50
		3: {ID: 3, Name: "The Go PL", Price: 3999},    // 39.99
	}}
	return NewService(orderRepo, bookRepo, &fakeTx{repo: orderRepo}), orderRepo
}

func item(bookID uint, qty int) ItemInput {
	return ItemInput{BookID: &bookID, Quantity: &qty}
}

func TestCreateOrder(t *testing.T) {
	svc, _ := newTestService()

	// 5.55×2 + 20.50×1 = 31.60
	o, err := svc.Create(context.Background(), 7, []ItemInput{
		item(1, 2),
		item(2, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), o.CustomerID)
	assert.Equal(t, int64(3160), o.TotalPrice)
	assert.Len(t, o.Items, 2)
	assert.False(t, o.Paid)
	assert.False(t, o.Complete)
	assert.False(t, o.DatePlaced.IsZero())
}

func TestCreateOrderUnknownBook(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create(context.Background(), 7, []ItemInput{
		item(1, 2),
		item(999, 1),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Book with ID 999 not found")

	// 整单回滚，订单行不留痕
	assert.Empty(t, repo.orders)
}

func TestCreateOrderEmptyData(t *testing.T) {
	svc, repo := newTestService()

	t.Run("空明细", func(t *testing.T) {
		_, err := svc.Create(context.Background(), 7, nil)
		assert.ErrorIs(t, err, domainorder.ErrEmptyData)
	})

	t.Run("全是无效行", func(t *testing.T) {
		qty := 0
		_, err := svc.Create(context.Background(), 7, []ItemInput{
			{BookID: nil, Quantity: &qty},
			item(1, 0),
		})
		assert.ErrorIs(t, err, domainorder.ErrEmptyData)
	})

	assert.Empty(t, repo.orders)
}

func TestCreateOrderSkipsInvalidLines(t *testing.T) {
	svc, _ := newTestService()

	// 下单时缺字段的行跳过，有效行正常入单
	o, err := svc.Create(context.Background(), 7, []ItemInput{
		item(1, 2),
		{BookID: nil, Quantity: intPtr(3)},
	})
	require.NoError(t, err)
	assert.Len(t, o.Items, 1)
	assert.Equal(t, int64(1110), o.TotalPrice)
}

func TestUpdateContents(t *testing.T) {
	svc, _ := newTestService()

	o, err := svc.Create(context.Background(), 7, []ItemInput{item(1, 2)})
	require.NoError(t, err)

	// 全量替换：旧明细消失，总价重算
	updated, err := svc.UpdateContents(context.Background(), o.ID, 7, []ItemInput{
		item(2, 1),
		item(3, 2),
	})
	require.NoError(t, err)

	assert.Len(t, updated.Items, 2)
	assert.Equal(t, int64(2050+3999*2), updated.TotalPrice)
	for _, it := range updated.Items {
		assert.NotEqual(t, uint(1), it.BookID)
	}
}

func TestUpdateContentsIncorrectData(t *testing.T) {
	svc, _ := newTestService()

	o, err := svc.Create(context.Background(), 7, []ItemInput{item(1, 2)})
	require.NoError(t, err)

	// 替换时缺字段的行不跳过，整单拒绝并回滚
	_, err = svc.UpdateContents(context.Background(), o.ID, 7, []ItemInput{
		item(2, 1),
		{BookID: nil, Quantity: intPtr(1)},
	})
	assert.ErrorIs(t, err, domainorder.ErrIncorrectData)

	// 原明细保持不变
	current, err := svc.Get(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Len(t, current.Items, 1)
	assert.Equal(t, uint(1), current.Items[0].BookID)
	assert.Equal(t, int64(1110), current.TotalPrice)
}

func TestUpdateContentsUnknownBook(t *testing.T) {
	svc, _ := newTestService()

	o, err := svc.Create(context.Background(), 7, []ItemInput{item(1, 2)})
	require.NoError(t, err)

	_, err = svc.UpdateContents(context.Background(), o.ID, 7, []ItemInput{item(999, 1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Book ID 999 not found")

	// 下单时查不到图书是404，替换时是请求数据问题，按400处理
	appErr := apperrors.GetAppError(err)
	assert.Equal(t, 400, appErr.HTTPStatus())
	assert.Equal(t, apperrors.ErrCodeBadRequest, appErr.Code)
}

func TestUpdateContentsOwnership(t *testing.T) {
	svc, _ := newTestService()

	o, err := svc.Create(context.Background(), 7, []ItemInput{item(1, 2)})
	require.NoError(t, err)

	// 其他顾客操作返回NotFound
	_, err = svc.UpdateContents(context.Background(), o.ID, 8, []ItemInput{item(2, 1)})
	assert.ErrorIs(t, err, domainorder.ErrOrderNotFound)

	// 店员（customerID=0）可以操作任意订单
	_, err = svc.UpdateContents(context.Background(), o.ID, 0, []ItemInput{item(2, 1)})
	assert.NoError(t, err)
}

func TestUpdateServiceFields(t *testing.T) {
	svc, _ := newTestService()

	o, err := svc.Create(context.Background(), 7, []ItemInput{item(1, 2)})
	require.NoError(t, err)

	paid := true
	delivery := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateServiceFields(context.Background(), o.ID, domainorder.ServicePatch{
		Paid:         &paid,
		DeliveryDate: &delivery,
	})
	require.NoError(t, err)
	assert.True(t, updated.Paid)
	require.NotNil(t, updated.DeliveryDate)
	assert.True(t, delivery.Equal(*updated.DeliveryDate))

	// 与现值一致的补丁被拒绝
	_, err = svc.UpdateServiceFields(context.Background(), o.ID, domainorder.ServicePatch{Paid: &paid})
	assert.ErrorIs(t, err, apperrors.ErrNoChanges)
}

func TestDeleteOrder(t *testing.T) {
	svc, repo := newTestService()

	o, err := svc.Create(context.Background(), 7, []ItemInput{item(1, 2)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), o.ID))
	assert.Empty(t, repo.orders)
	assert.Empty(t, repo.items)

	assert.ErrorIs(t, svc.Delete(context.Background(), o.ID), domainorder.ErrOrderNotFound)
}

func TestListOwn(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), 7, []ItemInput{item(1, 1)})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 8, []ItemInput{item(2, 1)})
	require.NoError(t, err)

	orders, total, err := svc.ListOwn(context.Background(), 7, domainorder.ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, orders, 1)
	assert.Equal(t, uint(7), orders[0].CustomerID)
}

func intPtr(v int) *int { return &v }
