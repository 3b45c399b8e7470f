// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/imgvet/imgvet/internal/fingerprint"
	"github.com/imgvet/imgvet/internal/metrics"
	"github.com/imgvet/imgvet/internal/model"
	"github.com/imgvet/imgvet/internal/ocr"
)

// Service errors.
var (
	ErrEmptyUsername = errors.New("username is required")
	ErrNoImages      = errors.New("batch contains no images")
	ErrBatchTooLarge = errors.New("batch exceeds the image limit")
)

// RecordStore is the persistence contract the ingestion flow depends on.
// *repository.Repository satisfies it; tests substitute an in-memory store.
type RecordStore interface {
	ResolveUser(ctx context.Context, username string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListRecognizedTexts(ctx context.Context, userID string) ([]string, error)
	ListImages(ctx context.Context, userID string) ([]*model.ImageRecord, error)
	AppendImage(ctx context.Context, record *model.ImageRecord) error
	CountImages(ctx context.Context, userID string) (int64, error)
}

// IngestService processes batches of uploaded images: it runs OCR, rejects
// numeric duplicates and commits accepted results to the record store.
type IngestService struct {
	store          RecordStore
	engine         ocr.Engine
	metrics        metrics.Recorder
	maxBatchImages int
}

// NewIngestService creates a new IngestService.
func NewIngestService(store RecordStore, engine ocr.Engine, recorder metrics.Recorder, maxBatchImages int) *IngestService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &IngestService{
		store:          store,
		engine:         engine,
		metrics:        recorder,
		maxBatchImages: maxBatchImages,
	}
}

// ImageUpload is one uploaded image in a batch, in upload order.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// IngestInput defines input for processing one batch.
type IngestInput struct {
	Username string
	Images   []ImageUpload
}

// ImageResult is the per-image outcome. Err carries the diagnostic message
// for OutcomeOcrFailure and is empty otherwise.
type ImageResult struct {
	Filename string
	Outcome  model.Outcome
	Err      string
}

// BatchResult summarizes one processed batch.
type BatchResult struct {
	User           *model.User
	Images         []ImageResult
	NewCount       int
	DuplicateCount int
	// TotalCount is the user's accepted image count after the batch,
	// including images accepted in earlier batches.
	TotalCount int64
}

// Ingest processes a batch sequentially, in upload order.
//
// The user's history is loaded once at the start of the batch; images
// accepted during the batch extend an in-memory working copy, so each image
// is checked against everything accepted before it, in this batch or any
// prior one. An OCR failure is isolated to its image. A storage failure
// aborts the batch; records already appended stay committed, each append is
// its own durable unit.
func (s *IngestService) Ingest(ctx context.Context, input IngestInput) (*BatchResult, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if len(input.Images) == 0 {
		return nil, ErrNoImages
	}
	if s.maxBatchImages > 0 && len(input.Images) > s.maxBatchImages {
		return nil, ErrBatchTooLarge
	}

	batchStart := time.Now()

	user, err := s.store.ResolveUser(ctx, username)
	if err != nil {
		s.metrics.IncBatchFailed()
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	texts, err := s.store.ListRecognizedTexts(ctx, user.ID)
	if err != nil {
		s.metrics.IncBatchFailed()
		return nil, fmt.Errorf("load history: %w", err)
	}

	history := make([]fingerprint.Fingerprint, 0, len(texts)+len(input.Images))
	for _, text := range texts {
		history = append(history, fingerprint.Extract(text))
	}

	result := &BatchResult{
		User:   user,
		Images: make([]ImageResult, 0, len(input.Images)),
	}

	for _, upload := range input.Images {
		ocrStart := time.Now()
		text, err := s.engine.Recognize(ctx, upload.Data)
		s.metrics.ObserveOcrDuration(time.Since(ocrStart))
		if err != nil {
			s.metrics.IncOcrFailure()
			result.Images = append(result.Images, ImageResult{
				Filename: upload.Filename,
				Outcome:  model.OutcomeOcrFailure,
				Err:      err.Error(),
			})
			continue
		}

		candidate := fingerprint.Extract(text)

		switch fingerprint.Classify(candidate, history) {
		case fingerprint.VerdictNoSignal:
			s.metrics.IncImageNoSignal()
			result.Images = append(result.Images, ImageResult{
				Filename: upload.Filename,
				Outcome:  model.OutcomeNoSignal,
			})

		case fingerprint.VerdictDuplicate:
			s.metrics.IncImageDuplicate()
			result.DuplicateCount++
			result.Images = append(result.Images, ImageResult{
				Filename: upload.Filename,
				Outcome:  model.OutcomeDuplicate,
			})

		case fingerprint.VerdictUnique:
			record := &model.ImageRecord{
				ID:             ulid.Make().String(),
				UserID:         user.ID,
				RecognizedText: text,
				CreatedAt:      time.Now().UTC(),
			}
			if err := s.store.AppendImage(ctx, record); err != nil {
				s.metrics.IncBatchFailed()
				return nil, fmt.Errorf("append image record: %w", err)
			}
			history = append(history, candidate)
			s.metrics.IncImageAccepted()
			result.NewCount++
			result.Images = append(result.Images, ImageResult{
				Filename: upload.Filename,
				Outcome:  model.OutcomeUnique,
			})
		}
	}

	total, err := s.store.CountImages(ctx, user.ID)
	if err != nil {
		s.metrics.IncBatchFailed()
		return nil, fmt.Errorf("count image records: %w", err)
	}
	result.TotalCount = total

	s.metrics.ObserveBatchSize(len(input.Images))
	s.metrics.ObserveBatchDuration(time.Since(batchStart))
	s.metrics.IncBatchCompleted()

	return result, nil
}
