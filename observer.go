package clustervis

import (
	"time"

	"github.com/michaelkatsweb/clustervis/kmeans"
	"github.com/michaelkatsweb/clustervis/quality"
)

// RunMetadata accompanies every update event.
type RunMetadata struct {
	// Iteration is the 1-based ordinal of the step that produced the update.
	Iteration int

	// Elapsed is the wall time since the run started.
	Elapsed time.Duration
}

// Observer receives lifecycle events from a Driver. Implementations must not
// call back into the Driver from a callback; callbacks run synchronously on
// the ticking goroutine.
type Observer interface {
	// OnStart is called once per run, after validation succeeds.
	OnStart(cfg kmeans.Config, numPoints int)

	// OnUpdate is called after every completed iteration.
	OnUpdate(res kmeans.IterationResult, meta RunMetadata)

	// OnComplete is called when the run converges or hits the iteration cap.
	OnComplete(history []kmeans.IterationResult, report quality.Report)

	// OnError is called when a run fails; the driver transitions to Stopped.
	OnError(err error)
}

// ObserverFuncs adapts plain functions to the Observer interface.
// Nil fields are no-ops.
type ObserverFuncs struct {
	StartFunc    func(cfg kmeans.Config, numPoints int)
	UpdateFunc   func(res kmeans.IterationResult, meta RunMetadata)
	CompleteFunc func(history []kmeans.IterationResult, report quality.Report)
	ErrorFunc    func(err error)
}

// OnStart implements Observer.
func (o ObserverFuncs) OnStart(cfg kmeans.Config, numPoints int) {
	if o.StartFunc != nil {
		o.StartFunc(cfg, numPoints)
	}
}

// OnUpdate implements Observer.
func (o ObserverFuncs) OnUpdate(res kmeans.IterationResult, meta RunMetadata) {
	if o.UpdateFunc != nil {
		o.UpdateFunc(res, meta)
	}
}

// OnComplete implements Observer.
func (o ObserverFuncs) OnComplete(history []kmeans.IterationResult, report quality.Report) {
	if o.CompleteFunc != nil {
		o.CompleteFunc(history, report)
	}
}

// OnError implements Observer.
func (o ObserverFuncs) OnError(err error) {
	if o.ErrorFunc != nil {
		o.ErrorFunc(err)
	}
}
