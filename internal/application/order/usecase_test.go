package order

import (
	"context"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/storefront/internal/domain/customer"
	"github.com/xiebiao/storefront/internal/domain/order"
	"github.com/xiebiao/storefront/internal/domain/product"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/postgres"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

type testEnv struct {
	db     *gorm.DB
	place  *PlaceOrderUseCase
	total  *OrderTotalUseCase
	pay    *PayOrderUseCase
	events *fakePublisher
}

// fakePublisher 记录发布的路由键
type fakePublisher struct {
	keys []string
}

func (f *fakePublisher) Publish(_ context.Context, routingKey string, _ interface{}) error {
	f.keys = append(f.keys, routingKey)
	return nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, postgres.AutoMigrate(db))

	orderRepo := postgres.NewOrderRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	productRepo := postgres.NewProductRepository(db)
	txManager := postgres.NewTxManager(db)
	events := &fakePublisher{}

	return &testEnv{
		db:     db,
		place:  NewPlaceOrderUseCase(orderRepo, customerRepo, productRepo, txManager, events),
		total:  NewOrderTotalUseCase(orderRepo, productRepo),
		pay:    NewPayOrderUseCase(orderRepo, customerRepo, txManager, events),
		events: events,
	}
}

func (e *testEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}

func (e *testEnv) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	c, err := customer.New("1", "John Smith", "john@example.com", "", "")
	require.NoError(t, err)
	require.NoError(t, postgres.NewCustomerRepository(e.db).Create(ctx, c))

	p, err := product.New("SKU-1", "Widget", "19.99", "", "")
	require.NoError(t, err)
	require.NoError(t, postgres.NewProductRepository(e.db).Create(ctx, p))
}

func TestPlaceOrder_Success(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	o, err := env.place.Execute(context.Background(), PlaceOrderRequest{
		CustNo: "1", SKU: "SKU-1", Qty: "3",
	})
	require.NoError(t, err)
	require.NotZero(t, o.OrderNo) // 订单号由序列分配并回填

	assert.EqualValues(t, 1, env.count(t, &postgres.OrderModel{}))
	assert.EqualValues(t, 1, env.count(t, &postgres.LineItemModel{}))
	assert.Equal(t, []string{EventOrderPlaced}, env.events.keys)
}

func TestPlaceOrder_CustomerMissing(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	_, err := env.place.Execute(context.Background(), PlaceOrderRequest{
		CustNo: "99", SKU: "SKU-1", Qty: "1",
	})
	require.Error(t, err)
	assert.Equal(t, "customer does not exist", apperrors.GetAppError(err).Message)
	assert.EqualValues(t, 0, env.count(t, &postgres.OrderModel{}))
	assert.Empty(t, env.events.keys)
}

func TestPlaceOrder_ProductMissing(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	_, err := env.place.Execute(context.Background(), PlaceOrderRequest{
		CustNo: "1", SKU: "NOPE", Qty: "1",
	})
	require.Error(t, err)
	assert.Equal(t, "product does not exist", apperrors.GetAppError(err).Message)
	assert.EqualValues(t, 0, env.count(t, &postgres.OrderModel{}))
}

func TestPlaceOrder_InvalidQty(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	_, err := env.place.Execute(context.Background(), PlaceOrderRequest{
		CustNo: "1", SKU: "SKU-1", Qty: "0",
	})
	require.Error(t, err)
	assert.Equal(t, "qty must be a positive number", err.Error())
	assert.EqualValues(t, 0, env.count(t, &postgres.OrderModel{}))
}

func TestOrderTotal_FollowsCurrentPrice(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)
	ctx := context.Background()

	o, err := env.place.Execute(ctx, PlaceOrderRequest{CustNo: "1", SKU: "SKU-1", Qty: "3"})
	require.NoError(t, err)

	resp, err := env.total.Execute(ctx, orderNoString(o.OrderNo))
	require.NoError(t, err)
	assert.Equal(t, "59.97", resp.Total.StringFixed(2))
	assert.Equal(t, "CREATED", resp.Status)

	// 明细不存价格快照：改价后金额跟着变
	productRepo := postgres.NewProductRepository(env.db)
	p, err := product.ParsePrice("10.00")
	require.NoError(t, err)
	require.NoError(t, productRepo.UpdatePrice(ctx, "SKU-1", p))

	resp, err = env.total.Execute(ctx, orderNoString(o.OrderNo))
	require.NoError(t, err)
	assert.Equal(t, "30.00", resp.Total.StringFixed(2))
}

func TestOrderTotal_Missing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.total.Execute(context.Background(), "9999")
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
	assert.Equal(t, "order does not exist", apperrors.GetAppError(err).Message)
}

func TestPayOrder_OnlyOnce(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)
	ctx := context.Background()

	o, err := env.place.Execute(ctx, PlaceOrderRequest{CustNo: "1", SKU: "SKU-1", Qty: "1"})
	require.NoError(t, err)

	req := PayOrderRequest{CustNo: "1", OrderNo: orderNoString(o.OrderNo)}
	require.NoError(t, env.pay.Execute(ctx, req))
	assert.Equal(t, []string{EventOrderPlaced, EventOrderPaid}, env.events.keys)

	// 重复支付被拒绝，支付表仍只有一行
	err = env.pay.Execute(ctx, req)
	assert.ErrorIs(t, err, order.ErrOrderAlreadyPaid)
	assert.Equal(t, "order already paid", apperrors.GetAppError(err).Message)
	assert.EqualValues(t, 1, env.count(t, &postgres.PaymentModel{}))
}

func TestPayOrder_MissingOrder(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	err := env.pay.Execute(context.Background(), PayOrderRequest{CustNo: "1", OrderNo: "9999"})
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
	assert.EqualValues(t, 0, env.count(t, &postgres.PaymentModel{}))
}

func orderNoString(orderNo uint64) string {
	return strconv.FormatUint(orderNo, 10)
}
