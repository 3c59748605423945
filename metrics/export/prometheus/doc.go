// Package prometheus provides Prometheus collectors for authshell metrics.
//
// [NewPrometheusExporter] accepts an [authshell.Store] and exposes an
// [http.Handler] that renders all counters and histograms in Prometheus text
// exposition format. Counter names are prefixed authshell_*_total; the single
// histogram is authshell_authenticate_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry; callers mount the Handler.
//   - Mutate store state.
package prometheus
