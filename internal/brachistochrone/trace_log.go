package brachistochrone

import "fmt"

type Event uint8

const (
	EventNone    Event = iota // nothing happened (first point, failed step)
	EventRefract              // ray refracted into the next stratum
	EventReflect              // total internal reflection, vertical direction flipped
	EventEnd                  // ray reached the release height again
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventRefract:
		return "refract"
	case EventReflect:
		return "reflect"
	case EventEnd:
		return "end"
	}
	return fmt.Sprintf("Event(%d)", uint8(e))
}

// TraceLog is one entry per stratum crossing.
type TraceLog struct {
	Step  int    // 1-based step number
	Event Event  // what happened at the interface
	Point Point2 // position after the step
	Angle Real   // ray angle after the step
	Time  Real   // cumulative descent time at Point
}

type traceLogCache struct {
	logs []TraceLog
}

func (c *traceLogCache) add(l TraceLog) {
	c.logs = append(c.logs, l)
}

func (c *traceLogCache) count(e Event) int {
	n := 0
	for _, l := range c.logs {
		if l.Event == e {
			n++
		}
	}
	return n
}

// first returns the first entry with the given event.
func (c *traceLogCache) first(e Event) (TraceLog, bool) {
	for _, l := range c.logs {
		if l.Event == e {
			return l, true
		}
	}
	return TraceLog{}, false
}
