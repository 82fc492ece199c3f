package dtos

import "encoding/json"

// Sync actions accepted by the /api/health/sync envelope.
const (
	SyncActionUpload   = "upload"
	SyncActionDownload = "download"
)

// SyncRequest is the action envelope the client posts to /api/health/sync.
// Records is required for upload; SinceTimestamp is optional for download
// (absent means "download everything").
type SyncRequest struct {
	Action         string               `json:"action"`
	Records        []ClientHealthRecord `json:"records,omitempty"`
	SinceTimestamp *int64               `json:"sinceTimestamp,omitempty"`
}

// ClientHealthRecord is a health record in client wire form. ID is the
// client-generated external identifier used for deduplication. All wire
// timestamps are epoch milliseconds; Timestamp, when present, is the
// client-observed creation time.
type ClientHealthRecord struct {
	ExternalID string          `json:"id"`
	TestType   string          `json:"testType"`
	TestName   string          `json:"testName"`
	TestDate   int64           `json:"testDate"`
	Answers    json.RawMessage `json:"answers,omitempty"`
	Result     json.RawMessage `json:"result,omitempty"`
	Timestamp  *int64          `json:"timestamp,omitempty"`
}

// HealthRecordView is a stored record reshaped for the client. Timestamp
// repeats TestDate as a plain number for the client's local sorting.
type HealthRecordView struct {
	ExternalID string          `json:"id"`
	TestType   string          `json:"testType"`
	TestName   string          `json:"testName"`
	TestDate   int64           `json:"testDate"`
	Answers    json.RawMessage `json:"answers"`
	Result     json.RawMessage `json:"result"`
	Timestamp  int64           `json:"timestamp"`
}

// UploadResult reports how a submitted batch was reconciled against the
// store. Uploaded + Skipped equals Total only when the whole batch was
// processed; on a mid-batch failure the counts cover the records processed
// before the failure.
type UploadResult struct {
	Uploaded int `json:"uploaded"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}

// DownloadResult carries the records newer than the client's high-water mark
// (test_date descending) and the SyncTime the client should echo back as
// sinceTimestamp on its next download.
type DownloadResult struct {
	Records  []HealthRecordView `json:"records"`
	SyncTime int64              `json:"syncTime"`
}
