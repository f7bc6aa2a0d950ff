package metrics

import (
	"math"

	"SignalPipe/internal/signal"
)

// Record is the success output document for a pipeline run. It is built once
// and written immediately; nothing mutates it afterwards.
type Record struct {
	Version       string  `json:"version"`
	RowsProcessed int     `json:"rows_processed"`
	Metric        string  `json:"metric"`
	Value         float64 `json:"value"`
	LatencyMs     int64   `json:"latency_ms"`
	Seed          int64   `json:"seed"`
	Status        string  `json:"status"`
}

// ErrorRecord is the failure output document. It deliberately carries no
// row or value fields.
type ErrorRecord struct {
	Version      string `json:"version"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// NewRecord assembles the success record from a completed run.
func NewRecord(rows int, signals []int, version string, seed, latencyMs int64) Record {
	return Record{
		Version:       version,
		RowsProcessed: rows,
		Metric:        "signal_rate",
		Value:         round4(signal.Rate(signals)),
		LatencyMs:     latencyMs,
		Seed:          seed,
		Status:        "success",
	}
}

// NewErrorRecord assembles the failure record for a run that did not complete.
func NewErrorRecord(version, message string) ErrorRecord {
	return ErrorRecord{Version: version, Status: "error", ErrorMessage: message}
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
