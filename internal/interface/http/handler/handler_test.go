package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	appaccount "github.com/xiebiao/storefront/internal/application/account"
	appcustomer "github.com/xiebiao/storefront/internal/application/customer"
	apporder "github.com/xiebiao/storefront/internal/application/order"
	appproduct "github.com/xiebiao/storefront/internal/application/product"
	"github.com/xiebiao/storefront/internal/domain/order"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/postgres"
	"github.com/xiebiao/storefront/pkg/validate"
)

// newTestRouter 组装完整HTTP栈（内存SQLite，Redis与事件都关闭）
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, postgres.AutoMigrate(db))

	txManager := postgres.NewTxManager(db)
	customerRepo := postgres.NewCustomerRepository(db)
	productRepo := postgres.NewProductRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	accountRepo := postgres.NewAccountRepository(db)

	customerHandler := NewCustomerHandler(
		appcustomer.NewRegisterCustomerUseCase(customerRepo),
		appcustomer.NewListCustomersUseCase(customerRepo),
		appcustomer.NewRemoveCustomerUseCase(customerRepo, orderRepo, txManager),
	)
	productHandler := NewProductHandler(
		appproduct.NewAddProductUseCase(productRepo, nil),
		appproduct.NewListProductsUseCase(productRepo, nil),
		appproduct.NewEditProductUseCase(productRepo, nil),
		appproduct.NewRemoveProductUseCase(productRepo, orderRepo, txManager, nil),
		appproduct.NewListSuppliersUseCase(productRepo),
	)
	orderHandler := NewOrderHandler(
		apporder.NewPlaceOrderUseCase(orderRepo, customerRepo, productRepo, txManager, nil),
		apporder.NewOrderTotalUseCase(orderRepo, productRepo),
		apporder.NewPayOrderUseCase(orderRepo, customerRepo, txManager, nil),
	)
	accountHandler := NewAccountHandler(
		appaccount.NewListAccountsUseCase(accountRepo),
		appaccount.NewUpdateBalanceUseCase(accountRepo),
		appaccount.NewRemoveAccountUseCase(accountRepo),
	)

	r := gin.New()
	r.LoadHTMLGlob("../../../../web/templates/*.html")

	r.GET("/ping", Ping)

	r.GET("/customers", customerHandler.ListCustomers)
	r.GET("/customers/:page", customerHandler.ListCustomers)
	r.GET("/customer/add", customerHandler.ShowAddForm)
	r.POST("/customer/add", customerHandler.AddCustomer)
	r.GET("/customer/remove", customerHandler.ShowRemoveForm)
	r.POST("/customer/remove", customerHandler.RemoveCustomer)

	r.GET("/products", productHandler.ListProducts)
	r.GET("/products/:page", productHandler.ListProducts)
	r.GET("/product/add", productHandler.ShowAddForm)
	r.POST("/product/add", productHandler.AddProduct)
	r.GET("/product/:sku/edit", productHandler.ShowEditForm)
	r.POST("/product/:sku/edit", productHandler.EditProduct)
	r.GET("/product/remove", productHandler.ShowRemoveForm)
	r.POST("/product/remove", productHandler.RemoveProduct)
	r.GET("/suppliers", productHandler.ListSuppliers)

	r.GET("/product/order/:sku", orderHandler.ShowOrderForm)
	r.POST("/product/order/:sku", orderHandler.PlaceOrder)
	r.GET("/pay/:order_no/:cust_no", orderHandler.ShowPayment)
	r.POST("/pay/:order_no/:cust_no", orderHandler.PayOrder)

	r.GET("/", accountHandler.ListAccounts)
	r.GET("/accounts", accountHandler.ListAccounts)
	r.GET("/accounts/:account_number/update", accountHandler.ShowUpdateForm)
	r.POST("/accounts/:account_number/update", accountHandler.UpdateBalance)
	r.POST("/accounts/:account_number/delete", accountHandler.DeleteAccount)

	return r, db
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getWithAccept(r *gin.Engine, path, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedCustomer(t *testing.T, r *gin.Engine, custNo string) {
	t.Helper()
	w := postForm(r, "/customer/add", url.Values{
		"cust_no": {custNo},
		"name":    {"John Smith"},
		"email":   {"john@example.com"},
	})
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())
}

func seedProduct(t *testing.T, r *gin.Engine, sku, price string) {
	t.Helper()
	w := postForm(r, "/product/add", url.Values{
		"sku":   {sku},
		"name":  {"Widget"},
		"price": {price},
	})
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())
}

func TestErrorMessage(t *testing.T) {
	// FieldError与AppError输出裸文案（不带业务错误码），
	// 未知错误统一兜底，不向浏览器泄露内部细节
	assert.Equal(t, "qty is required",
		errorMessage(&validate.FieldError{Field: "qty", Message: "qty is required"}))
	assert.Equal(t, "order already paid", errorMessage(order.ErrOrderAlreadyPaid))
	assert.Equal(t, "internal server error", errorMessage(errors.New("pq: connection refused")))
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)

	w := getWithAccept(r, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	// 监控探针依赖这个精确载荷
	assert.JSONEq(t, `{"message":"pong!","status":"success"}`, w.Body.String())
}

func TestAddCustomer(t *testing.T) {
	r, _ := newTestRouter(t)

	// 成功：302跳转客户列表
	w := postForm(r, "/customer/add", url.Values{
		"cust_no": {"1"},
		"name":    {"John Smith"},
		"email":   {"john@example.com"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/customers/1", w.Header().Get("Location"))

	// 失败：HTTP 400纯文本说明
	w = postForm(r, "/customer/add", url.Values{
		"cust_no": {"2"},
		"name":    {"John2"},
		"email":   {"j@e.com"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name must contain only letters", w.Body.String())
}

func TestListCustomers_ContentNegotiation(t *testing.T) {
	r, _ := newTestRouter(t)
	seedCustomer(t, r, "1")

	// Accept: application/json → JSON信封
	w := getWithAccept(r, "/customers", "application/json")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Code int `json:"code"`
		Data struct {
			Total int64 `json:"total"`
			Page  int   `json:"page"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
	assert.EqualValues(t, 1, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Page)

	// 浏览器Accept（同时含text/html）→ HTML页面
	w = getWithAccept(r, "/customers", "text/html,application/json;q=0.9")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "John Smith")
}

func TestListCustomers_BadPageParam(t *testing.T) {
	r, _ := newTestRouter(t)
	seedCustomer(t, r, "1")

	// 非数字、≤0的页码都按第1页处理
	for _, page := range []string{"abc", "0", "-1"} {
		w := getWithAccept(r, "/customers/"+page, "application/json")
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data struct {
				Page int `json:"page"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Data.Page)
	}
}

func TestOrderAndPayFlow(t *testing.T) {
	r, _ := newTestRouter(t)
	seedCustomer(t, r, "1")
	seedProduct(t, r, "SKU-1", "19.99")

	// 下单：302跳转支付页
	w := postForm(r, "/product/order/SKU-1", url.Values{
		"cust_no": {"1"},
		"qty":     {"2"},
	})
	require.Equal(t, http.StatusFound, w.Code, w.Body.String())
	location := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/pay/"), location)

	// 支付页JSON：金额按当前价格计算
	w = getWithAccept(r, location, "application/json")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Status string `json:"status"`
			Total  string `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CREATED", resp.Data.Status)
	assert.Equal(t, "39.98", resp.Data.Total)

	// 支付：302跳转商品列表
	w = postForm(r, location, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/products/1", w.Header().Get("Location"))

	// 重复支付：400 order already paid
	w = postForm(r, location, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "order already paid", w.Body.String())
}

func TestPlaceOrder_MissingCustomer(t *testing.T) {
	r, _ := newTestRouter(t)
	seedProduct(t, r, "SKU-1", "19.99")

	w := postForm(r, "/product/order/SKU-1", url.Values{
		"cust_no": {"99"},
		"qty":     {"1"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "customer does not exist", w.Body.String())
}

func TestEditProduct(t *testing.T) {
	r, _ := newTestRouter(t)
	seedProduct(t, r, "SKU-1", "19.99")

	// 改价成功
	w := postForm(r, "/product/SKU-1/edit", url.Values{"price": {"25.00"}})
	assert.Equal(t, http.StatusFound, w.Code)

	// 两个字段都为空
	w = postForm(r, "/product/SKU-1/edit", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no changes made", w.Body.String())
}

func TestRemoveProduct_Missing(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postForm(r, "/product/remove", url.Values{"sku": {"NOPE"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "product does not exist", w.Body.String())
}

func TestAccountRoutes(t *testing.T) {
	r, db := newTestRouter(t)
	require.NoError(t, db.Create(&postgres.AccountModel{
		AccountNumber: 1,
		BranchName:    "Main Branch",
		Balance:       decimal.RequireFromString("10.00"),
	}).Error)

	// 列表JSON
	w := getWithAccept(r, "/accounts", "application/json")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []struct {
			AccountNumber int64  `json:"account_number"`
			Balance       string `json:"balance"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "10.00", resp.Data[0].Balance)

	// 更新余额后删除
	w = postForm(r, "/accounts/1/update", url.Values{"balance": {"99.50"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/accounts", w.Header().Get("Location"))

	w = postForm(r, "/accounts/1/delete", nil)
	assert.Equal(t, http.StatusFound, w.Code)

	w = postForm(r, "/accounts/1/delete", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "account does not exist", w.Body.String())
}
