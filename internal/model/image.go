// Package model defines domain entities for the application.
package model

import "time"

// Outcome is the per-image result of processing one uploaded image.
type Outcome string

const (
	// OutcomeUnique means the image's numeric content was new and the record
	// was stored.
	OutcomeUnique Outcome = "unique"
	// OutcomeDuplicate means the numeric content exactly matched a previously
	// accepted image for the same user; nothing was stored.
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeNoSignal means the recognized text contained no digits; the image
	// was skipped without storing or counting it as a duplicate.
	OutcomeNoSignal Outcome = "no_signal"
	// OutcomeOcrFailure means text recognition failed for this image. The
	// failure is isolated to the image and does not abort the batch.
	OutcomeOcrFailure Outcome = "ocr_failure"
)

// IsValid checks if the outcome is one of the defined values.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeUnique, OutcomeDuplicate, OutcomeNoSignal, OutcomeOcrFailure:
		return true
	}
	return false
}

// ImageRecord is one accepted image's extraction result. The record stores
// the raw recognized text, not the derived fingerprint; fingerprints are
// recomputed from the text on every comparison. Records are never mutated
// or deleted.
type ImageRecord struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	RecognizedText string    `json:"recognized_text"`
	CreatedAt      time.Time `json:"created_at"`
}
