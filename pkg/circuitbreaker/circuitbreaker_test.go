package circuitbreaker

import (
	"errors"
	"testing"
	"time"
)

// TestCircuitBreaker_ClosedState 关闭状态下请求正常通过
func TestCircuitBreaker_ClosedState(t *testing.T) {
	cb := NewCircuitBreaker("test", Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	for i := 0; i < 10; i++ {
		if err := cb.Execute(func() error { return nil }); err != nil {
			t.Fatalf("期望成功，实际失败: %v", err)
		}
	}

	if cb.State() != StateClosed {
		t.Errorf("期望状态为CLOSED，实际%s", cb.State())
	}
	if counts := cb.Counts(); counts.TotalSuccesses != 10 {
		t.Errorf("期望成功10次，实际%d次", counts.TotalSuccesses)
	}
}

// TestCircuitBreaker_OpenState 连续失败触发熔断后快速失败
func TestCircuitBreaker_OpenState(t *testing.T) {
	cb := NewCircuitBreaker("test", Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	for i := 0; i < 5; i++ {
		_ = cb.Execute(func() error { return errors.New("redis unavailable") })
	}

	if cb.State() != StateOpen {
		t.Fatalf("期望状态为OPEN，实际%s", cb.State())
	}

	// 熔断期间不调用实际函数
	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	if err != ErrOpenState {
		t.Errorf("期望ErrOpenState，实际%v", err)
	}
	if called {
		t.Error("熔断器打开时不应该调用实际函数")
	}
}

// TestCircuitBreaker_HalfOpenRecovery 超时转半开，探测成功后恢复关闭
func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreaker("test", Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     100 * time.Millisecond,
		ReadyToTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errors.New("fail") })
	}
	if cb.State() != StateOpen {
		t.Fatalf("期望状态为OPEN，实际%s", cb.State())
	}

	time.Sleep(150 * time.Millisecond)

	// 半开状态需要连续MaxRequests次探测成功才转回CLOSED
	calls := 0
	for i := 0; i < 3; i++ {
		if err := cb.Execute(func() error { calls++; return nil }); err != nil {
			t.Errorf("半开状态第%d次探测请求期望成功，实际%v", i+1, err)
		}
	}
	if calls != 3 {
		t.Errorf("半开状态应该放行%d次探测请求，实际%d次", 3, calls)
	}
	if cb.State() != StateClosed {
		t.Errorf("期望状态转回CLOSED，实际%s", cb.State())
	}
}

// TestCircuitBreaker_HalfOpenToOpen 半开探测失败立即转回打开
func TestCircuitBreaker_HalfOpenToOpen(t *testing.T) {
	cb := NewCircuitBreaker("test", Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     100 * time.Millisecond,
		ReadyToTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errors.New("fail") })
	}

	time.Sleep(150 * time.Millisecond)

	_ = cb.Execute(func() error { return errors.New("still fail") })

	if cb.State() != StateOpen {
		t.Errorf("期望状态转回OPEN，实际%s", cb.State())
	}
}

// TestCircuitBreaker_StateChangeCallback 状态变化回调
func TestCircuitBreaker_StateChangeCallback(t *testing.T) {
	var changes []string

	cb := NewCircuitBreaker("test", Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     100 * time.Millisecond,
		ReadyToTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	cb.SetStateChangeCallback(func(name string, from State, to State) {
		changes = append(changes, from.String()+"->"+to.String())
	})

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errors.New("fail") })
	}
	time.Sleep(150 * time.Millisecond)
	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return nil })
	}

	want := []string{"CLOSED->OPEN", "OPEN->HALF_OPEN", "HALF_OPEN->CLOSED"}
	if len(changes) != len(want) {
		t.Fatalf("期望%d次状态变化，实际%d次: %v", len(want), len(changes), changes)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("第%d次状态变化期望%s，实际%s", i, want[i], changes[i])
		}
	}
}
