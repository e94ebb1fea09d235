package postgres

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/xiebiao/storefront/internal/domain/product"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// productRepository 商品仓储实现(PostgreSQL)
// 设计说明:
// 1. 实现domain/product/repository.go定义的接口
// 2. 同时承担supplier、delivery两张附属表的读写（同一聚合的
//    基础设施细节，不值得拆独立仓储）
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) product.Repository {
	return &productRepository{db: db}
}

// Create 创建商品
func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	model := &ProductModel{
		SKU:         p.SKU,
		Name:        p.Name,
		Price:       p.Price,
		EAN:         p.EAN,
		Description: p.Description,
	}

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return product.ErrSKUDuplicate
		}
		return apperrors.Wrap(err, "创建商品失败")
	}

	p.CreatedAt = model.CreatedAt
	return nil
}

// FindBySKU 根据SKU查找商品
func (r *productRepository) FindBySKU(ctx context.Context, sku string) (*product.Product, error) {
	var model ProductModel
	db := getDB(ctx, r.db)
	err := db.Where("sku = ?", sku).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "查询商品失败")
	}

	return toProductEntity(&model), nil
}

// List 分页查询商品列表（按sku升序）
func (r *productRepository) List(ctx context.Context, page, pageSize int) ([]*product.Product, int64, error) {
	var models []ProductModel
	var total int64

	db := getDB(ctx, r.db)
	query := db.Model(&ProductModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询商品总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.Order("sku ASC").Limit(pageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询商品列表失败")
	}

	products := make([]*product.Product, len(models))
	for i := range models {
		products[i] = toProductEntity(&models[i])
	}

	return products, total, nil
}

// UpdatePrice 更新商品价格
func (r *productRepository) UpdatePrice(ctx context.Context, sku string, price decimal.Decimal) error {
	db := getDB(ctx, r.db)
	result := db.Model(&ProductModel{}).Where("sku = ?", sku).Update("price", price)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新商品价格失败")
	}

	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

// UpdateDescription 更新商品描述
func (r *productRepository) UpdateDescription(ctx context.Context, sku string, description string) error {
	db := getDB(ctx, r.db)
	result := db.Model(&ProductModel{}).Where("sku = ?", sku).Update("description", description)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新商品描述失败")
	}

	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

// Delete 删除商品行本身
// 注意：级联清理（明细行、供应商、配送记录）由应用层在同一事务内先行执行
func (r *productRepository) Delete(ctx context.Context, sku string) error {
	db := getDB(ctx, r.db)
	result := db.Where("sku = ?", sku).Delete(&ProductModel{})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除商品失败")
	}

	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

// DeleteDeliveriesBySKU 删除供应该商品的供应商的配送记录
// deliveries不直接存sku，通过suppliers子查询关联
func (r *productRepository) DeleteDeliveriesBySKU(ctx context.Context, sku string) error {
	db := getDB(ctx, r.db)
	subQuery := db.Session(&gorm.Session{NewDB: true}).
		Model(&SupplierModel{}).Select("tin").Where("sku = ?", sku)
	if err := db.Where("tin IN (?)", subQuery).Delete(&DeliveryModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除配送记录失败")
	}
	return nil
}

// DeleteSuppliersBySKU 删除供应该商品的供应商
func (r *productRepository) DeleteSuppliersBySKU(ctx context.Context, sku string) error {
	db := getDB(ctx, r.db)
	if err := db.Where("sku = ?", sku).Delete(&SupplierModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除供应商失败")
	}
	return nil
}

// ListSuppliers 查询全部供应商（后台页面，量小不分页）
func (r *productRepository) ListSuppliers(ctx context.Context) ([]*product.Supplier, error) {
	var models []SupplierModel
	db := getDB(ctx, r.db)
	if err := db.Order("tin ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询供应商列表失败")
	}

	suppliers := make([]*product.Supplier, len(models))
	for i, m := range models {
		suppliers[i] = &product.Supplier{
			TIN:     m.TIN,
			Name:    m.Name,
			Address: m.Address,
			SKU:     m.SKU,
		}
	}
	return suppliers, nil
}

// toProductEntity GORM模型 → 领域实体
func toProductEntity(model *ProductModel) *product.Product {
	return &product.Product{
		SKU:         model.SKU,
		Name:        model.Name,
		Price:       model.Price,
		EAN:         model.EAN,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
	}
}
