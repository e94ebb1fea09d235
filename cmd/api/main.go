package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

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

// main 主程序入口
// 说明：手动依赖注入（wire.go里有同一张依赖图的Wire描述）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// 2. 初始化数据库连接
	db, err := postgres.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis列表页缓存（可选）
	var catalogCache appproduct.CatalogCache
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			log.Fatalf("初始化Redis失败: %v", err)
		}
		catalogCache = redis.NewCatalogCache(redisClient, cfg.Redis.CacheTTL)
	}

	// 4. 初始化事件发布（可选）
	var events apporder.EventPublisher
	if cfg.Events.Enabled {
		publisher, err := mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Fatalf("初始化RabbitMQ失败: %v", err)
		}
		defer publisher.Close()
		events = publisher
	}

	// 5. 依赖注入（手动组装）
	// Repository ← UseCase ← Handler

	// 基础设施层
	txManager := postgres.NewTxManager(db)
	customerRepo := postgres.NewCustomerRepository(db)
	productRepo := postgres.NewProductRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	httpMetrics := metrics.NewHTTPMetrics()

	// 应用层
	registerCustomer := appcustomer.NewRegisterCustomerUseCase(customerRepo)
	listCustomers := appcustomer.NewListCustomersUseCase(customerRepo)
	removeCustomer := appcustomer.NewRemoveCustomerUseCase(customerRepo, orderRepo, txManager)

	addProduct := appproduct.NewAddProductUseCase(productRepo, catalogCache)
	listProducts := appproduct.NewListProductsUseCase(productRepo, catalogCache)
	editProduct := appproduct.NewEditProductUseCase(productRepo, catalogCache)
	removeProduct := appproduct.NewRemoveProductUseCase(productRepo, orderRepo, txManager, catalogCache)
	listSuppliers := appproduct.NewListSuppliersUseCase(productRepo)

	placeOrder := apporder.NewPlaceOrderUseCase(orderRepo, customerRepo, productRepo, txManager, events)
	orderTotal := apporder.NewOrderTotalUseCase(orderRepo, productRepo)
	payOrder := apporder.NewPayOrderUseCase(orderRepo, customerRepo, txManager, events)

	listAccounts := appaccount.NewListAccountsUseCase(accountRepo)
	updateBalance := appaccount.NewUpdateBalanceUseCase(accountRepo)
	removeAccount := appaccount.NewRemoveAccountUseCase(accountRepo)

	// 接口层
	customerHandler := handler.NewCustomerHandler(registerCustomer, listCustomers, removeCustomer)
	productHandler := handler.NewProductHandler(addProduct, listProducts, editProduct, removeProduct, listSuppliers)
	orderHandler := handler.NewOrderHandler(placeOrder, orderTotal, payOrder)
	accountHandler := handler.NewAccountHandler(listAccounts, updateBalance, removeAccount)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics(httpMetrics))
	r.LoadHTMLGlob("web/templates/*.html")

	// 7. 注册路由
	registerRoutes(r, httpMetrics, customerHandler, productHandler, orderHandler, accountHandler)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   指标: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	httpMetrics *metrics.HTTPMetrics,
	customerHandler *handler.CustomerHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	accountHandler *handler.AccountHandler,
) {
	// 健康检查与指标
	r.GET("/ping", handler.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(httpMetrics.Registry(), promhttp.HandlerOpts{})))

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
}
