package observability

import (
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	p := NoopPlacementHooks{}
	p.OnPlaceStart("tooltip-1", "west")
	p.OnPlaceComplete("tooltip-1", "west", 120, 40, false, time.Millisecond)
	p.OnRenderSkipped("tooltip-1", "disabled")

	a := NoopAnimationHooks{}
	a.OnTransitionStart("tooltip-1", 50*time.Millisecond)
	a.OnTransitionInterrupt("tooltip-1")
	a.OnTransitionDone("tooltip-1")

	c := NoopContentHooks{}
	c.OnContentGenerated("tooltip-1", 3, false)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Placement().(NoopPlacementHooks); !ok {
		t.Error("Placement() should return NoopPlacementHooks by default")
	}
	if _, ok := Animation().(NoopAnimationHooks); !ok {
		t.Error("Animation() should return NoopAnimationHooks by default")
	}
	if _, ok := Content().(NoopContentHooks); !ok {
		t.Error("Content() should return NoopContentHooks by default")
	}

	customPlacement := &testPlacementHooks{}
	SetPlacementHooks(customPlacement)
	if Placement() != PlacementHooks(customPlacement) {
		t.Error("SetPlacementHooks should set custom hooks")
	}

	customAnimation := &testAnimationHooks{}
	SetAnimationHooks(customAnimation)
	if Animation() != AnimationHooks(customAnimation) {
		t.Error("SetAnimationHooks should set custom hooks")
	}

	customContent := &testContentHooks{}
	SetContentHooks(customContent)
	if Content() != ContentHooks(customContent) {
		t.Error("SetContentHooks should set custom hooks")
	}

	// nil registrations are ignored
	SetPlacementHooks(nil)
	if Placement() != PlacementHooks(customPlacement) {
		t.Error("SetPlacementHooks(nil) should keep the previous hooks")
	}

	Reset()
	if _, ok := Placement().(NoopPlacementHooks); !ok {
		t.Error("Reset() should restore noop placement hooks")
	}
}

func TestHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testPlacementHooks{}
	SetPlacementHooks(h)

	Placement().OnPlaceStart("tooltip-1", "north")
	Placement().OnPlaceComplete("tooltip-1", "north", 0, 35, true, time.Millisecond)
	Placement().OnRenderSkipped("tooltip-1", "empty series")

	if h.starts != 1 || h.completes != 1 || h.skips != 1 {
		t.Errorf("events = %d/%d/%d, want 1/1/1", h.starts, h.completes, h.skips)
	}
}

// Test hook implementations that count invocations.

type testPlacementHooks struct {
	starts, completes, skips int
}

func (h *testPlacementHooks) OnPlaceStart(string, string) { h.starts++ }
func (h *testPlacementHooks) OnPlaceComplete(string, string, float64, float64, bool, time.Duration) {
	h.completes++
}
func (h *testPlacementHooks) OnRenderSkipped(string, string) { h.skips++ }

type testAnimationHooks struct {
	starts, interrupts, dones int
}

func (h *testAnimationHooks) OnTransitionStart(string, time.Duration) { h.starts++ }
func (h *testAnimationHooks) OnTransitionInterrupt(string)            { h.interrupts++ }
func (h *testAnimationHooks) OnTransitionDone(string)                 { h.dones++ }

type testContentHooks struct {
	generated int
}

func (h *testContentHooks) OnContentGenerated(string, int, bool) { h.generated++ }
