package sdk

import "time"

// Clock hands out the block timestamp. The contract never calls time.Now
// directly so tests can warp forward at will.
type Clock interface {
	Now() int64
}

// SystemClock is what the simulator runs on.
type SystemClock struct{}

func (SystemClock) Now() int64 {
	return time.Now().Unix()
}

// MockClock starts at a fixed point and only moves when told to.
type MockClock struct {
	now int64
}

func NewMockClock(start int64) *MockClock {
	return &MockClock{now: start}
}

func (c *MockClock) Now() int64 {
	return c.now
}

// Advance pushes the clock forward by the given number of seconds.
// Example payload: clock.Advance(24 * 3600)
func (c *MockClock) Advance(seconds int64) {
	c.now += seconds
}
