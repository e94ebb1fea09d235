package order

import (
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodeOrderNotFound, "order does not exist")

	// ErrOrderAlreadyPaid 订单已支付（pay-once不变式）
	ErrOrderAlreadyPaid = apperrors.New(apperrors.ErrCodeAlreadyPaid, "order already paid")
)
