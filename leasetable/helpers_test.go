package leasetable

import (
	"time"

	"github.com/juju/clock/testclock"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// testRegistry returns a small tree: body > arm > gripper, plus a
// standalone camera.
func testRegistry() *Registry {
	r, _ := NewRegistry([]ResourceDef{
		{Name: "body"},
		{Name: "arm", Parent: "body"},
		{Name: "gripper", Parent: "arm"},
		{Name: "camera"},
	})

	return r
}

func testTable(p CascadePolicy) (*Table, *testclock.Clock) {
	c := testclock.NewClock(t0)
	t := NewTable(testRegistry(), Config{Clock: c, Policy: p})

	return t, c
}
