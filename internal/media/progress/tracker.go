// Package progress turns byte counts into upload percentages.
package progress

import "sync"

// Tracker reports integer percentages that never decrease. 100 is reported
// once, by Complete; nothing is reported after Fail or Complete.
type Tracker struct {
	mu       sync.Mutex
	total    int64
	report   func(int)
	last     int
	started  bool
	finished bool
}

func NewTracker(total int64, report func(int)) *Tracker {
	if report == nil {
		report = func(int) {}
	}
	return &Tracker{total: total, report: report, last: -1}
}

// Start reports 0.
func (t *Tracker) Start() {
	t.emit(0)
}

// Written records the number of bytes transferred so far. Values are capped
// at 99 until Complete.
func (t *Tracker) Written(n int64) {
	if t.total <= 0 {
		return
	}
	pct := int(n * 100 / t.total)
	if pct > 99 {
		pct = 99
	}
	if pct < 0 {
		pct = 0
	}
	t.emit(pct)
}

func (t *Tracker) Complete() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished {
		return
	}
	t.finished = true
	t.last = 100
	t.report(100)
}

func (t *Tracker) Fail() {
	t.mu.Lock()
	t.finished = true
	t.mu.Unlock()
}

func (t *Tracker) emit(pct int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished || pct <= t.last {
		return
	}
	t.last = pct
	t.report(pct)
}
