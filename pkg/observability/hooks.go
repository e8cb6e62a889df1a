// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about placement cycles, transitions,
// and content generation.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the engine dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, plain logging)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPlacementHooks(&myPlacementHooks{})
//	    observability.SetAnimationHooks(&myAnimationHooks{})
//	    // ... run application
//	}
//
// The engine calls hooks to emit events:
//
//	observability.Placement().OnPlaceStart(overlayID, gravity)
//	// ... measure, compute, mutate ...
//	observability.Placement().OnPlaceComplete(overlayID, gravity, pos, elapsed)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Placement Hooks
// =============================================================================

// PlacementHooks receives events from placement cycles.
type PlacementHooks interface {
	// OnPlaceStart fires when a placement cycle is scheduled.
	OnPlaceStart(overlayID, gravity string)

	// OnPlaceComplete fires after the mutation phase has been issued.
	// left/top are the final absolute position, snapped reports whether
	// the position was applied with zero duration.
	OnPlaceComplete(overlayID, gravity string, left, top float64, snapped bool, elapsed time.Duration)

	// OnRenderSkipped fires when a render call degrades to a no-op
	// (disabled instance or no displayable series).
	OnRenderSkipped(overlayID, reason string)
}

// =============================================================================
// Animation Hooks
// =============================================================================

// AnimationHooks receives events from the transition engine.
type AnimationHooks interface {
	// OnTransitionStart fires when a transition is scheduled on a node.
	OnTransitionStart(nodeID string, duration time.Duration)

	// OnTransitionInterrupt fires when an in-flight transition is
	// replaced or cancelled before completing.
	OnTransitionInterrupt(nodeID string)

	// OnTransitionDone fires when a transition reaches its target.
	OnTransitionDone(nodeID string)
}

// =============================================================================
// Content Hooks
// =============================================================================

// ContentHooks receives events from content generation.
type ContentHooks interface {
	// OnContentGenerated records a content generation, with the number
	// of series rows that survived filtering and whether the result was
	// served from the content cache.
	OnContentGenerated(overlayID string, rows int, cached bool)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPlacementHooks is a no-op implementation of PlacementHooks.
type NoopPlacementHooks struct{}

func (NoopPlacementHooks) OnPlaceStart(string, string) {}
func (NoopPlacementHooks) OnPlaceComplete(string, string, float64, float64, bool, time.Duration) {
}
func (NoopPlacementHooks) OnRenderSkipped(string, string) {}

// NoopAnimationHooks is a no-op implementation of AnimationHooks.
type NoopAnimationHooks struct{}

func (NoopAnimationHooks) OnTransitionStart(string, time.Duration) {}
func (NoopAnimationHooks) OnTransitionInterrupt(string)            {}
func (NoopAnimationHooks) OnTransitionDone(string)                 {}

// NoopContentHooks is a no-op implementation of ContentHooks.
type NoopContentHooks struct{}

func (NoopContentHooks) OnContentGenerated(string, int, bool) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	placementHooks PlacementHooks = NoopPlacementHooks{}
	animationHooks AnimationHooks = NoopAnimationHooks{}
	contentHooks   ContentHooks   = NoopContentHooks{}
	hooksMu        sync.RWMutex
)

// SetPlacementHooks registers custom placement hooks.
// This should be called once at application startup before any renders.
func SetPlacementHooks(h PlacementHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		placementHooks = h
	}
}

// SetAnimationHooks registers custom animation hooks.
// This should be called once at application startup before any renders.
func SetAnimationHooks(h AnimationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		animationHooks = h
	}
}

// SetContentHooks registers custom content hooks.
// This should be called once at application startup before any renders.
func SetContentHooks(h ContentHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		contentHooks = h
	}
}

// Placement returns the registered placement hooks.
func Placement() PlacementHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return placementHooks
}

// Animation returns the registered animation hooks.
func Animation() AnimationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return animationHooks
}

// Content returns the registered content hooks.
func Content() ContentHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return contentHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	placementHooks = NoopPlacementHooks{}
	animationHooks = NoopAnimationHooks{}
	contentHooks = NoopContentHooks{}
}
