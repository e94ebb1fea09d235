package customer

import (
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// 客户领域错误定义
var (
	// ErrCustomerNotFound 客户不存在
	ErrCustomerNotFound = apperrors.New(apperrors.ErrCodeCustomerNotFound, "customer does not exist")

	// ErrCustNoDuplicate 客户编号已存在
	ErrCustNoDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "customer number already exists")
)
