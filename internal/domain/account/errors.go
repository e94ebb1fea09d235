package account

import (
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

var (
	// ErrAccountNotFound 账户不存在
	ErrAccountNotFound = apperrors.New(apperrors.ErrCodeAccountNotFound, "account does not exist")
)
