package customer

import (
	"testing"
)

// TestNew_Valid 合法表单创建客户
func TestNew_Valid(t *testing.T) {
	c, err := New("42", "John Smith", "john@example.com", "123456789", "Main Street 1")
	if err != nil {
		t.Fatalf("期望通过，实际%v", err)
	}
	if c.CustNo != 42 {
		t.Errorf("期望cust_no=42，实际%d", c.CustNo)
	}
	if c.Name != "John Smith" {
		t.Errorf("姓名不匹配: %q", c.Name)
	}
}

// TestNew_OptionalFields phone与address可以为空
func TestNew_OptionalFields(t *testing.T) {
	if _, err := New("1", "Jane", "jane@example.com", "", ""); err != nil {
		t.Fatalf("期望通过，实际%v", err)
	}
}

// TestNew_FirstViolationWins 返回第一个违反的规则
func TestNew_FirstViolationWins(t *testing.T) {
	cases := []struct {
		name    string
		custNo  string
		cname   string
		email   string
		phone   string
		address string
		want    string
	}{
		{"cust_no缺失", "", "John", "j@e.com", "", "", "cust_no is required"},
		{"cust_no非数字", "4a", "John", "j@e.com", "", "", "cust_no must be numeric"},
		{"name缺失", "1", "", "j@e.com", "", "", "name is required"},
		{"name带数字", "1", "John2", "j@e.com", "", "", "name must contain only letters"},
		{"email缺失", "1", "John", "", "", "", "email is required"},
		{"phone非数字", "1", "John", "j@e.com", "12a", "", "phone must be numeric"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.custNo, tc.cname, tc.email, tc.phone, tc.address)
			if err == nil {
				t.Fatal("期望失败，实际通过")
			}
			if err.Error() != tc.want {
				t.Errorf("期望%q，实际%q", tc.want, err.Error())
			}
		})
	}
}

// TestNew_LengthLimits 长度上限
func TestNew_LengthLimits(t *testing.T) {
	long := make([]byte, 81)
	for i := range long {
		long[i] = 'a'
	}
	_, err := New("1", string(long), "j@e.com", "", "")
	if err == nil || err.Error() != "name must be at most 80 characters long" {
		t.Errorf("name超长错误文案不匹配: %v", err)
	}
}
