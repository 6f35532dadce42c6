package pdf

// Limiter bounds the number of concurrently open browser pages. There is
// no queue: when every slot is taken, acquisition fails immediately and
// the request is rejected rather than waiting.
type Limiter struct {
	slots chan struct{}
}

// NewLimiter creates a Limiter with n slots. n < 1 is treated as 1.
func NewLimiter(n int) *Limiter {
	if n < 1 {
		n = 1
	}
	return &Limiter{slots: make(chan struct{}, n)}
}

// TryAcquire claims a slot, reporting false when none is free.
func (l *Limiter) TryAcquire() bool {
	select {
	case l.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

// Release frees a previously acquired slot.
func (l *Limiter) Release() {
	select {
	case <-l.slots:
	default:
	}
}

// Cap returns the slot capacity.
func (l *Limiter) Cap() int { return cap(l.slots) }
