// Package dashboard provides the read-only project portfolio dataset and the
// derived views the ProjectHealth pages render: KPIs, filtered project lists,
// health distributions, task loads, upcoming tasks, and the timeline.
//
// # Architecture boundaries
//
// The dataset is static and in-memory. A [Provider] never mutates it; every
// operation recomputes its result from the raw slices. The session store and
// the route guards know nothing about this package; access control happens at
// the route layer.
//
// # What this package must NOT do
//
//   - Import authshell or decide who may read what.
//   - Persist anything.
package dashboard
