// Package domain holds the classification types, ports, and request
// validation shared by the HTTP and RPC transports
package domain

import "time"

// Segment labels produced by the scorer. The set is open-ended; these are
// the labels the bundled keyword scorer emits
const (
	SegmentHighValue = "High-Value"
	SegmentMidValue  = "Mid-Value"
	SegmentAtRisk    = "At-Risk"

	// SegmentUnknown is the lenient-mode sentinel when scoring fails
	SegmentUnknown = "unknown"
)

// Record is one persisted classification row. Rows are append-only;
// id and processed_at are assigned by the store at insert time
type Record struct {
	ID          int64     `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Segment     string    `json:"segment"`
	Confidence  float64   `json:"confidence"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Input is a validated classification request. Both fields are trimmed,
// non-empty, and within the configured length bound; nothing downstream
// re-inspects raw payload bytes
type Input struct {
	CustomerID string `json:"customer_id" validate:"required"`
	ReviewText string `json:"review_text" validate:"required"`
}

// Score is the scorer's verdict for one text
type Score struct {
	Segment    string
	Confidence float64
}

// Result is the response built fresh per accepted request
type Result struct {
	RequestID        string   `json:"request_id"`
	CustomerID       string   `json:"customer_id"`
	Segment          string   `json:"segment"`
	Confidence       float64  `json:"confidence"`
	HistoryCount     int      `json:"history_count"`
	Recent           []Record `json:"recent_classifications"`
	ProcessingTimeMS float64  `json:"processing_time_ms"`
}
