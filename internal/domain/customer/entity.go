package customer

import (
	"strconv"
	"strings"
	"time"

	"github.com/xiebiao/storefront/pkg/validate"
)

// Customer 客户实体（聚合根）
// 设计说明：
// 1. cust_no是业务主键，由录入方指定（不是数据库自增），数据库唯一索引兜底
// 2. 领域实体不带GORM tag，infrastructure层的Repository负责模型转换
// 3. 删除客户会级联清理其支付、订单明细、订单（见Repository与用例层）
type Customer struct {
	CustNo    int64
	Name      string
	Email     string
	Phone     string // 可选
	Address   string // 可选
	CreatedAt time.Time
}

// New 创建新客户（工厂方法）
// 所有入参都是未经处理的表单原始值，在这里完成全部字段校验：
// - cust_no: 必填、数字
// - name: 必填、≤80字符、仅字母
// - email: 必填、≤254字符
// - phone: 可选，若填写则≤15字符、纯数字
// - address: 可选，≤255字符
// 返回第一个违反的规则；校验通过前不发生任何数据库调用
func New(rawCustNo, name, email, phone, address string) (*Customer, error) {
	if err := validate.Required("cust_no", rawCustNo); err != nil {
		return nil, err
	}
	if err := validate.Integer("cust_no", rawCustNo); err != nil {
		return nil, err
	}
	custNo, convErr := strconv.ParseInt(strings.TrimSpace(rawCustNo), 10, 64)
	if convErr != nil {
		return nil, &validate.FieldError{Field: "cust_no", Message: "cust_no must be numeric"}
	}

	if err := validate.Required("name", name); err != nil {
		return nil, err
	}
	if err := validate.MaxLen("name", name, 80); err != nil {
		return nil, err
	}
	if err := validate.Alphabetic("name", name); err != nil {
		return nil, err
	}

	if err := validate.Required("email", email); err != nil {
		return nil, err
	}
	if err := validate.MaxLen("email", email, 254); err != nil {
		return nil, err
	}

	phone = strings.TrimSpace(phone)
	if phone != "" {
		if err := validate.MaxLen("phone", phone, 15); err != nil {
			return nil, err
		}
		if err := validate.Digits("phone", phone); err != nil {
			return nil, err
		}
	}

	if err := validate.MaxLen("address", address, 255); err != nil {
		return nil, err
	}

	return &Customer{
		CustNo:    custNo,
		Name:      name,
		Email:     email,
		Phone:     phone,
		Address:   address,
		CreatedAt: time.Now(),
	}, nil
}

// ParseCustNo 解析表单里的cust_no字段（删除、下单、支付等场景复用）
func ParseCustNo(raw string) (int64, error) {
	if err := validate.Required("cust_no", raw); err != nil {
		return 0, err
	}
	if err := validate.Integer("cust_no", raw); err != nil {
		return 0, err
	}
	custNo, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &validate.FieldError{Field: "cust_no", Message: "cust_no must be numeric"}
	}
	return custNo, nil
}
