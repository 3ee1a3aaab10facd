package engine

import "time"

// SetClockForTest overrides the orchestrator's clock so tests can control
// cache expiry decisions.
func (o *Orchestrator) SetClockForTest(now func() time.Time) {
	o.now = now
}
