//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 说明：
// 1. Wire在编译期生成依赖组装代码，零运行时开销、类型安全
// 2. 工作流程：编写本文件 → `wire gen ./cmd/api` → 生成wire_gen.go
// 3. main.go中的手动组装与这张依赖图保持一致
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appaccount "github.com/xiebiao/storefront/internal/application/account"
	appcustomer "github.com/xiebiao/storefront/internal/application/customer"
	apporder "github.com/xiebiao/storefront/internal/application/order"
	appproduct "github.com/xiebiao/storefront/internal/application/product"
	"github.com/xiebiao/storefront/internal/infrastructure/config"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/postgres"
	"github.com/xiebiao/storefront/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/storefront/internal/interface/http/handler"
	"github.com/xiebiao/storefront/internal/interface/http/middleware"
	"github.com/xiebiao/storefront/pkg/metrics"
	"github.com/xiebiao/storefront/pkg/mq"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,            // 加载配置文件
	postgres.NewDB,         // 创建PostgreSQL连接
	metrics.NewHTTPMetrics, // HTTP指标
	provideCatalogCache,    // 列表页缓存（可选）
	provideEventPublisher,  // 事件发布（可选）
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	postgres.NewCustomerRepository,
	postgres.NewProductRepository,
	postgres.NewOrderRepository,
	postgres.NewAccountRepository,
	postgres.NewTxManager,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appcustomer.NewRegisterCustomerUseCase,
	appcustomer.NewListCustomersUseCase,
	appcustomer.NewRemoveCustomerUseCase,
	appproduct.NewAddProductUseCase,
	appproduct.NewListProductsUseCase,
	appproduct.NewEditProductUseCase,
	appproduct.NewRemoveProductUseCase,
	appproduct.NewListSuppliersUseCase,
	apporder.NewPlaceOrderUseCase,
	apporder.NewOrderTotalUseCase,
	apporder.NewPayOrderUseCase,
	appaccount.NewListAccountsUseCase,
	appaccount.NewUpdateBalanceUseCase,
	appaccount.NewRemoveAccountUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewCustomerHandler,
	handler.NewProductHandler,
	handler.NewOrderHandler,
	handler.NewAccountHandler,
)

// provideCatalogCache 从配置创建列表页缓存
// Redis未启用时返回nil，用例层做nil判断直接走数据库
func provideCatalogCache(cfg *config.Config) (appproduct.CatalogCache, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return redis.NewCatalogCache(client, cfg.Redis.CacheTTL), nil
}

// provideEventPublisher 从配置创建事件发布者
// 未启用时返回nil，下单/支付只落库不发消息
func provideEventPublisher(cfg *config.Config) (apporder.EventPublisher, error) {
	if !cfg.Events.Enabled {
		return nil, nil
	}
	return mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
}

// provideGinEngine 创建并配置Gin引擎
// 路由注册与main.go的registerRoutes保持一致，另挂Swagger UI
func provideGinEngine(
	cfg *config.Config,
	httpMetrics *metrics.HTTPMetrics,
	customerHandler *handler.CustomerHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	accountHandler *handler.AccountHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics(httpMetrics))
	r.LoadHTMLGlob("web/templates/*.html")

	// 健康检查与指标
	r.GET("/ping", handler.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(httpMetrics.Registry(), promhttp.HandlerOpts{})))

	// Swagger文档路由
	// 访问 http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 客户模块
	r.GET("/customers", customerHandler.ListCustomers)
	r.GET("/customers/:page", customerHandler.ListCustomers)
	r.GET("/customer/add", customerHandler.ShowAddForm)
	r.POST("/customer/add", customerHandler.AddCustomer)
	r.GET("/customer/remove", customerHandler.ShowRemoveForm)
	r.POST("/customer/remove", customerHandler.RemoveCustomer)

	// 商品模块
	r.GET("/products", productHandler.ListProducts)
	r.GET("/products/:page", productHandler.ListProducts)
	r.GET("/product/add", productHandler.ShowAddForm)
	r.POST("/product/add", productHandler.AddProduct)
	r.GET("/product/:sku/edit", productHandler.ShowEditForm)
	r.POST("/product/:sku/edit", productHandler.EditProduct)
	r.GET("/product/remove", productHandler.ShowRemoveForm)
	r.POST("/product/remove", productHandler.RemoveProduct)
	r.GET("/suppliers", productHandler.ListSuppliers)

	// 订单与支付模块
	r.GET("/product/order/:sku", orderHandler.ShowOrderForm)
	r.POST("/product/order/:sku", orderHandler.PlaceOrder)
	r.GET("/pay/:order_no/:cust_no", orderHandler.ShowPayment)
	r.POST("/pay/:order_no/:cust_no", orderHandler.PayOrder)

	// 账户模块
	r.GET("/", accountHandler.ListAccounts)
	r.GET("/accounts", accountHandler.ListAccounts)
	r.GET("/accounts/:account_number/update", accountHandler.ShowUpdateForm)
	r.POST("/accounts/:account_number/update", accountHandler.UpdateBalance)
	r.POST("/accounts/:account_number/delete", accountHandler.DeleteAccount)

	return r
}

// InitializeApp 初始化整个应用
// wire.Build在编译期分析依赖链：
// *gin.Engine → Handler → UseCase → Repository → *gorm.DB → *config.Config
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)

	// 占位返回值，实际代码由wire_gen.go生成
	return nil, nil
}
