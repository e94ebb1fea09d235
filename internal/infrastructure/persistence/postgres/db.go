package postgres

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/storefront/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架，驱动为PostgreSQL
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	// 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 连接数据库
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true, // 驱动错误翻译为gorm.ErrDuplicatedKey等
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// AutoMigrate 自动迁移表结构
// 注意：AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func AutoMigrate(db *gorm.DB) error {
	// 注意：这里使用GORM的模型定义（带tag），不是domain层的实体
	return db.AutoMigrate(
		&CustomerModel{},
		&ProductModel{},
		&SupplierModel{},
		&DeliveryModel{},
		&OrderModel{},
		&LineItemModel{},
		&PaymentModel{},
		&ProcessModel{},
		&AccountModel{},
	)
}

// CustomerModel GORM客户模型
// 设计说明：
// 1. cust_no是业务主键，由客户注册时自报，不自增
// 2. domain/customer/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type CustomerModel struct {
	CustNo    int64     `gorm:"primaryKey;autoIncrement:false;comment:客户编号"`
	Name      string    `gorm:"size:80;not null;comment:姓名"`
	Email     string    `gorm:"size:254;not null;comment:邮箱"`
	Phone     string    `gorm:"size:15;comment:电话"`
	Address   string    `gorm:"size:255;comment:地址"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (CustomerModel) TableName() string {
	return "customers"
}

// ProductModel GORM商品模型
// 设计说明:
// 1. 价格使用decimal(10,2)存储，应用层用shopspring/decimal精确计算
// 2. SKU是业务主键，防止重复
type ProductModel struct {
	SKU         string          `gorm:"primaryKey;size:25;comment:商品编码"`
	Name        string          `gorm:"size:200;not null;comment:商品名"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:单价"`
	EAN         string          `gorm:"size:13;comment:EAN条码"`
	Description string          `gorm:"size:200;comment:描述"`
	CreatedAt   time.Time       `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (ProductModel) TableName() string {
	return "products"
}

// SupplierModel GORM供应商模型
type SupplierModel struct {
	TIN     string `gorm:"primaryKey;size:20;comment:税号"`
	Name    string `gorm:"size:200;comment:供应商名"`
	Address string `gorm:"size:255;comment:地址"`
	SKU     string `gorm:"index;size:25;comment:供应的商品"`
}

// TableName 指定表名
func (SupplierModel) TableName() string {
	return "suppliers"
}

// DeliveryModel GORM配送记录模型
// 复合主键(tin, address)；通过TIN关联供应商，商品级联删除时
// 经suppliers子查询一并清理
type DeliveryModel struct {
	TIN     string `gorm:"primaryKey;size:20;comment:供应商税号"`
	Address string `gorm:"primaryKey;size:255;comment:送达地址"`
}

// TableName 指定表名
func (DeliveryModel) TableName() string {
	return "deliveries"
}

// OrderModel GORM订单模型
// 设计说明:
// 1. 订单号使用数据库自增序列（PostgreSQL bigserial），由数据库保证
//    并发下单时的唯一性，插入后回填到实体
// 2. 与LineItemModel是一对多关系
type OrderModel struct {
	OrderNo uint64    `gorm:"primaryKey;autoIncrement;comment:订单号"`
	CustNo  int64     `gorm:"index;not null;comment:客户编号"`
	Date    time.Time `gorm:"column:order_date;not null;comment:下单日期"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// LineItemModel GORM订单明细模型
// 设计说明:
// 1. 复合主键(order_no, sku)，同一订单同一商品只有一行
// 2. 不存价格快照：订单金额按商品当前价格实时计算
type LineItemModel struct {
	OrderNo uint64 `gorm:"primaryKey;comment:订单号"`
	SKU     string `gorm:"primaryKey;size:25;comment:商品编码"`
	Qty     int    `gorm:"not null;comment:数量"`
}

// TableName 指定表名
func (LineItemModel) TableName() string {
	return "line_items"
}

// PaymentModel GORM支付记录模型
// 设计说明:
// 1. order_no是主键：一个订单最多一条支付记录，数据库层兜底
//    "只能支付一次"的约束
type PaymentModel struct {
	OrderNo uint64    `gorm:"primaryKey;autoIncrement:false;comment:订单号"`
	CustNo  int64     `gorm:"index;not null;comment:客户编号"`
	PaidAt  time.Time `gorm:"not null;comment:支付时间"`
}

// TableName 指定表名
func (PaymentModel) TableName() string {
	return "payments"
}

// ProcessModel GORM订单处理关联模型
// 员工与订单的关联表，仅作为客户级联删除的清理目标
type ProcessModel struct {
	SSN     int64  `gorm:"primaryKey;autoIncrement:false;comment:员工编号"`
	OrderNo uint64 `gorm:"primaryKey;comment:订单号"`
}

// TableName 指定表名
func (ProcessModel) TableName() string {
	return "order_process"
}

// AccountModel GORM账户模型
type AccountModel struct {
	AccountNumber int64           `gorm:"primaryKey;autoIncrement:false;comment:账号"`
	BranchName    string          `gorm:"size:120;comment:开户网点"`
	Balance       decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:余额"`
}

// TableName 指定表名
func (AccountModel) TableName() string {
	return "accounts"
}
