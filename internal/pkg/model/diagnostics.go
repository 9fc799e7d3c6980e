package model

// WarningCode categorizes advisory warnings emitted during consolidation.
type WarningCode string

const (
	// WarnStaleTbillBenchmark: the secondary-market bid yield has drifted far
	// from the last auction's cutoff yield.
	WarnStaleTbillBenchmark WarningCode = "stale_tbill_benchmark"
	// WarnSSBPastDeadline: the latest savings bond can no longer be applied for.
	WarnSSBPastDeadline WarningCode = "ssb_past_deadline"
	// WarnCheckIncomplete: a freshness check itself could not be completed.
	WarnCheckIncomplete WarningCode = "check_incomplete"
)

// Warning is a non-fatal advisory carried alongside the combined dataset.
type Warning struct {
	Code    WarningCode
	Message string
}

// FetchFailure records one source that could not be reduced to canonical
// rows. Failures are accumulated so partial results stay usable.
type FetchFailure struct {
	Product string
	Error   string
}
