// ABOUTME: Wall-clock position tracking for playback
// ABOUTME: Anchor timestamp plus pure arithmetic stands in for a sample counter
package player

import (
	"sync"
	"time"
)

// positionClock derives the playback position from a wall-clock anchor.
//
// The output device offers no current-sample query, so position is
// reconstructed as "now minus anchor". The interface stays stable so the
// backing mechanism can later be swapped for a true sample counter.
type positionClock struct {
	mu     sync.Mutex
	anchor time.Time        // zero value means no anchor set
	now    func() time.Time // nil means time.Now; tests substitute a fake
}

func (c *positionClock) nowTime() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

// start anchors position 0 at the current instant, unless an anchor is
// already set (resuming keeps the prior anchor so a seek offset survives).
func (c *positionClock) start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.anchor.IsZero() {
		c.anchor = c.nowTime()
	}
}

// startAt anchors the clock so that elapsed reports offset immediately.
func (c *positionClock) startAt(offset time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.anchor = c.nowTime().Add(-offset)
}

// reset clears the anchor; elapsed reports 0 afterwards.
func (c *positionClock) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.anchor = time.Time{}
}

// elapsed returns the time since the anchor, or 0 with no anchor set.
func (c *positionClock) elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.anchor.IsZero() {
		return 0
	}
	return c.nowTime().Sub(c.anchor)
}

// running reports whether an anchor is set.
func (c *positionClock) running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.anchor.IsZero()
}
