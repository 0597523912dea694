package ring

import (
	"ringrush/internal/physics"
)

// overlapTracker maintains the level-triggered "needle currently overlaps the
// target" flag from the collision backend's begin/end notifications. The
// state machine queries the current value; events are never queued.
type overlapTracker struct {
	needle, target physics.SensorID
	overlapping    bool
}

func newOverlapTracker(needle, target physics.SensorID) *overlapTracker {
	return &overlapTracker{needle: needle, target: target}
}

// Handle consumes a contact event. Events for other sensor pairs are
// ignored; duplicate events for the same transition are harmless since
// re-setting the stored value is a no-op.
func (t *overlapTracker) Handle(ev physics.Event) {
	if !ev.Involves(t.needle, t.target) {
		return
	}
	switch ev.Kind {
	case physics.ContactBegin:
		t.overlapping = true
	case physics.ContactEnd:
		t.overlapping = false
	}
}

// Overlapping returns the flag as of the last processed event.
func (t *overlapTracker) Overlapping() bool {
	return t.overlapping
}
