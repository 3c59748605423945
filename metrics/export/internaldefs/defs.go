package internaldefs

import (
	authshell "github.com/projecthealth/authshell"
)

// CounterDef names one exported counter.
type CounterDef struct {
	ID   authshell.MetricID
	Name string
	Help string
}

// HistogramDef names one exported histogram.
type HistogramDef struct {
	ID   authshell.MetricID
	Name string
	Help string
}

// CounterDefs lists every counter in exposition order.
var CounterDefs = []CounterDef{
	{ID: authshell.MetricLoginSuccess, Name: "authshell_login_success_total", Help: "Successful login attempts."},
	{ID: authshell.MetricLoginFailure, Name: "authshell_login_failure_total", Help: "Failed login attempts."},
	{ID: authshell.MetricSignupSuccess, Name: "authshell_signup_success_total", Help: "Successful signup attempts."},
	{ID: authshell.MetricSignupFailure, Name: "authshell_signup_failure_total", Help: "Failed signup attempts."},
	{ID: authshell.MetricLogout, Name: "authshell_logout_total", Help: "Logout operations."},
	{ID: authshell.MetricAuthRejectedInFlight, Name: "authshell_auth_rejected_in_flight_total", Help: "Authentication attempts rejected because another was in flight."},
	{ID: authshell.MetricAuthCancelled, Name: "authshell_auth_cancelled_total", Help: "Authentication attempts cancelled by the caller."},
	{ID: authshell.MetricRestoreSuccess, Name: "authshell_restore_success_total", Help: "Sessions restored from the persisted slot."},
	{ID: authshell.MetricRestoreEmpty, Name: "authshell_restore_empty_total", Help: "Restorations finding no persisted record."},
	{ID: authshell.MetricRestoreCorrupt, Name: "authshell_restore_corrupt_total", Help: "Corrupt persisted records discarded at restoration."},
	{ID: authshell.MetricPersistFailure, Name: "authshell_persist_failure_total", Help: "Persistence backend write failures."},
}

// HistogramDefs lists every histogram in exposition order.
var HistogramDefs = []HistogramDef{
	{ID: authshell.MetricAuthenticateLatency, Name: "authshell_authenticate_latency_seconds", Help: "Authenticate latency histogram."},
}

// HistogramBounds are the upper bucket bounds in seconds, matching the core
// histogram layout around the default 800ms authenticate window.
var HistogramBounds = []string{
	"0.05",
	"0.1",
	"0.2",
	"0.4",
	"0.8",
	"1.6",
	"3.2",
	"+Inf",
}

// HistogramBoundSuffix mirrors HistogramBounds with OTel-safe names.
var HistogramBoundSuffix = []string{
	"0_05",
	"0_1",
	"0_2",
	"0_4",
	"0_8",
	"1_6",
	"3_2",
	"inf",
}

// NormalizeBuckets pads or trims a raw bucket slice to the fixed width.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into cumulative counts.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
