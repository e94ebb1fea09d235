package order

import (
	"testing"

	"github.com/shopspring/decimal"
)

// TestPay_StateMachine CREATED→PAID只允许一次转换
func TestPay_StateMachine(t *testing.T) {
	o := New(1, "SKU-1", 2)
	o.OrderNo = 10

	if o.Status != StatusCreated {
		t.Fatalf("新订单期望CREATED，实际%s", o.Status)
	}

	p, err := o.Pay()
	if err != nil {
		t.Fatalf("首次支付期望成功，实际%v", err)
	}
	if p.OrderNo != 10 || p.CustNo != 1 {
		t.Errorf("支付记录字段不匹配: %+v", p)
	}
	if o.Status != StatusPaid {
		t.Errorf("支付后期望PAID，实际%s", o.Status)
	}

	// 重复支付被拒绝
	if _, err := o.Pay(); err != ErrOrderAlreadyPaid {
		t.Errorf("期望ErrOrderAlreadyPaid，实际%v", err)
	}
}

// TestTotal 金额 = Σ 当前单价×数量
func TestTotal(t *testing.T) {
	o := New(1, "SKU-1", 3)
	prices := map[string]decimal.Decimal{
		"SKU-1": decimal.RequireFromString("19.99"),
	}

	if got := o.Total(prices); got.String() != "59.97" {
		t.Errorf("期望59.97，实际%s", got.String())
	}

	// 多行明细同样成立
	o.Items = append(o.Items, LineItem{SKU: "SKU-2", Qty: 2})
	prices["SKU-2"] = decimal.RequireFromString("0.50")

	if got := o.Total(prices); got.String() != "60.97" {
		t.Errorf("期望60.97，实际%s", got.String())
	}
}

// TestParseQty qty必须是正整数
func TestParseQty(t *testing.T) {
	qty, err := ParseQty("3")
	if err != nil || qty != 3 {
		t.Errorf("期望3，实际%d err=%v", qty, err)
	}

	cases := map[string]string{
		"":    "qty is required",
		"abc": "qty must be numeric",
		"0":   "qty must be a positive number",
		"-2":  "qty must be a positive number",
	}
	for raw, want := range cases {
		_, err := ParseQty(raw)
		if err == nil || err.Error() != want {
			t.Errorf("%q期望%q，实际%v", raw, want, err)
		}
	}
}

// TestStatusString 状态枚举可读输出
func TestStatusString(t *testing.T) {
	if StatusCreated.String() != "CREATED" || StatusPaid.String() != "PAID" {
		t.Error("状态字符串不匹配")
	}
	if OrderStatus(99).String() != "UNKNOWN" {
		t.Error("未知状态应输出UNKNOWN")
	}
}
