// Package clustervis provides an interactive, client-driven k-means
// clustering engine with a frame-stepped driver for animated visualization.
//
// The core pieces:
//
//   - kmeans: the clustering engine (init strategies, one-iteration Step,
//     convergence detection, predict)
//   - quality: inertia, silhouette, cluster sizes, elbow-method k selection
//   - view: zoom/pan coordinate transform and hit-testing
//   - Driver (this package): advances the engine one iteration per tick,
//     maintains run/pause/stop state, and fans lifecycle events out to
//     observers
//
// # Quick Start
//
//	d := clustervis.NewDriver(
//	    clustervis.WithObserver(obs),
//	    clustervis.WithLogger(clustervis.NewTextLogger(slog.LevelInfo)),
//	)
//
//	err := d.Start(points, kmeans.Config{
//	    K:             3,
//	    MaxIterations: 50,
//	    Tolerance:     1e-4,
//	    Seed:          42,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// One tick per animation frame; the driver holds no timer.
//	for d.State() == clustervis.StateRunning {
//	    if err := d.Tick(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// Hosts without their own frame scheduler can use Playback to pace ticks at
// a fixed frame rate. All computation inside a tick is synchronous and
// bounded by O(n·k), so it fits an interactive frame budget.
package clustervis
