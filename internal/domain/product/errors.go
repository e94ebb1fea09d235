package product

import (
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// 商品领域错误定义
var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = apperrors.New(apperrors.ErrCodeProductNotFound, "product does not exist")

	// ErrSKUDuplicate SKU已存在
	ErrSKUDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "sku already exists")

	// ErrNoChanges 编辑商品时价格与描述都未提供
	ErrNoChanges = apperrors.New(apperrors.ErrCodeInvalidParams, "no changes made")
)
