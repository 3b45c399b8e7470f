// Package ocr provides text recognition for uploaded images.
package ocr

import "context"

// Engine is the OCR provider contract: one encoded image in, recognized
// plain text out. Implementations must be safe for sequential reuse; the
// ingestion loop calls Recognize once per image.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, image []byte) (string, error)
}
