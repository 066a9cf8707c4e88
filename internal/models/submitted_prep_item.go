package models

import "time"

// SubmittedPrepItem is one completed prep line captured when a prep sheet is submitted.
// Rows are never updated after insert.
type SubmittedPrepItem struct {
	ID           string    `json:"id" db:"submitted_prep_item_id"`
	PrepName     string    `json:"prep_name" db:"prep_name"`
	ParLabel     string    `json:"par_label" db:"par_label"`
	ParAmount    string    `json:"par_amount" db:"par_amount"`
	PrepComplete string    `json:"prep_complete" db:"prep_complete"`
	UserSubmit   string    `json:"user_submit" db:"user_submit"` // display name at submission time
	Notes        string    `json:"notes" db:"notes"`
	Date         time.Time `json:"date" db:"submitted_at"`
	StationName  string    `json:"station_name" db:"station_name"`
}

// SubmissionBatch groups the items submitted for one station within the same minute.
// It is derived on read and never stored.
type SubmissionBatch struct {
	ID          string              `json:"id"`
	StationName string              `json:"station_name"`
	Date        time.Time           `json:"date"`
	SubmittedBy string              `json:"submitted_by"`
	Items       []SubmittedPrepItem `json:"items"`
}

// SubmissionDay holds the batches of one local calendar day.
type SubmissionDay struct {
	Day     time.Time         `json:"day"`
	Batches []SubmissionBatch `json:"batches"`
}

// PrepSheetEntry is one line of a prep sheet as filled in by staff.
type PrepSheetEntry struct {
	PrepName     string `json:"prep_name"`
	ParLabel     string `json:"par_label"`
	ParAmount    string `json:"par_amount"`
	PrepComplete string `json:"prep_complete"`
	Notes        string `json:"notes"`
	Viewable     bool   `json:"viewable"`
}

// SubmitFailure describes one entry that could not be written.
type SubmitFailure struct {
	PrepName string `json:"prep_name"`
	Error    string `json:"error"`
}

// SubmitResult is the outcome of a prep sheet submission.
// Written items stay written even when others failed.
type SubmitResult struct {
	BatchID   string          `json:"batch_id"`
	Submitted []string        `json:"submitted"`
	Failures  []SubmitFailure `json:"failures"`
}

// PrepSheetSubmittedEvent is published after a prep sheet submission.
type PrepSheetSubmittedEvent struct {
	EventID     string `json:"event_id"`
	BatchID     string `json:"batch_id"`
	StationName string `json:"station_name"`
	SubmittedBy string `json:"submitted_by"`
	Timestamp   int64  `json:"timestamp"` // Unix seconds
	ItemCount   int    `json:"item_count"`
	FailedCount int    `json:"failed_count"`
}
