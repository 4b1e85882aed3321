package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now is a thin wrapper around NowFunc.
func Now() time.Time { return NowFunc() }

// Func is an injectable time source.
type Func func() time.Time

// Fixed returns a time source that always reports t.
func Fixed(t time.Time) Func {
	return func() time.Time { return t }
}

// OrDefault returns fn, or Now when fn is nil.
func OrDefault(fn Func) Func {
	if fn == nil {
		return Now
	}
	return fn
}
