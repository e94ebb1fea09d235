package product

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/storefront/pkg/validate"
)

// Product 商品实体（聚合根）
// 设计说明：
// 1. sku是业务主键（≤25字符），数据库主键兜底唯一性
// 2. 价格使用decimal(10,2)存储，表单输入统一规范化小数分隔符，
//    最多2位小数（避免浮点精度问题）
// 3. EAN可选，填写时必须恰好13位数字
// 4. 删除商品会级联清理订单明细、供应商关联与对应配送记录
type Product struct {
	SKU         string
	Name        string
	Price       decimal.Decimal
	EAN         string // 可选，13位数字
	Description string // 可选，≤200字符
	CreatedAt   time.Time
}

// New 创建新商品（工厂方法）
// 入参是未经处理的表单原始值；返回第一个违反的字段规则，
// 校验通过前不发生任何数据库调用
func New(sku, name, rawPrice, ean, description string) (*Product, error) {
	if err := validate.Required("sku", sku); err != nil {
		return nil, err
	}
	if err := validate.MaxLen("sku", sku, 25); err != nil {
		return nil, err
	}

	if err := validate.Required("name", name); err != nil {
		return nil, err
	}
	if err := validate.MaxLen("name", name, 200); err != nil {
		return nil, err
	}

	price, perr := validate.Money("price", rawPrice)
	if perr != nil {
		return nil, perr
	}

	ean = strings.TrimSpace(ean)
	if ean != "" {
		if err := validate.ExactDigits("ean", ean, 13); err != nil {
			return nil, err
		}
	}

	if err := validate.MaxLen("description", description, 200); err != nil {
		return nil, err
	}

	return &Product{
		SKU:         sku,
		Name:        name,
		Price:       price,
		EAN:         ean,
		Description: description,
		CreatedAt:   time.Now(),
	}, nil
}

// ParsePrice 解析价格字段（编辑商品时复用）
func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := validate.Money("price", raw)
	if err != nil {
		return decimal.Zero, err
	}
	return price, nil
}

// ValidateDescription 校验描述字段（编辑商品时复用）
func ValidateDescription(desc string) error {
	if err := validate.MaxLen("description", desc, 200); err != nil {
		return err
	}
	return nil
}
